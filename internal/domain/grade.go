package domain

import "strings"

// Grade is a single play's letter grade as reported by the game.
type Grade int8

const (
	GradeUnknown Grade = iota
	GradeF
	GradeD
	GradeC
	GradeB
	GradeA
	GradeAPlus
	GradeS
	GradeSS
	GradeSSS
)

var gradeNames = map[Grade]string{
	GradeUnknown: "?",
	GradeF:       "F",
	GradeD:       "D",
	GradeC:       "C",
	GradeB:       "B",
	GradeA:       "A",
	GradeAPlus:   "A+",
	GradeS:       "S",
	GradeSS:      "SS",
	GradeSSS:     "SSS",
}

func (g Grade) String() string {
	name, ok := gradeNames[g]
	if !ok {
		return "?"
	}
	return name
}

// ParseGrade accepts the raw grade strings that appear in score dumps
// ("sss", "a+", "b", ...). Anything unrecognized maps to GradeUnknown.
func ParseGrade(s string) Grade {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "F":
		return GradeF
	case "D", "D+":
		return GradeD
	case "C", "C+":
		return GradeC
	case "B", "B+":
		return GradeB
	case "A":
		return GradeA
	case "A+":
		return GradeAPlus
	case "S":
		return GradeS
	case "SS":
		return GradeSS
	case "SSS":
		return GradeSSS
	}
	return GradeUnknown
}

var gradeWeights = map[Grade]float64{
	GradeF:     0.1,
	GradeD:     0.2,
	GradeC:     0.4,
	GradeB:     0.6,
	GradeA:     0.8,
	GradeAPlus: 0.9,
	GradeS:     1.0,
	GradeSS:    1.1,
	GradeSSS:   1.2,
}

// Weight is the experience multiplier for the grade.
func (g Grade) Weight() float64 {
	w, ok := gradeWeights[g]
	if !ok {
		return 0.8
	}
	return w
}
