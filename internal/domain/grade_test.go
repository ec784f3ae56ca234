package domain

import "testing"

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in   string
		want Grade
	}{
		{in: "sss", want: GradeSSS},
		{in: "SS", want: GradeSS},
		{in: " s ", want: GradeS},
		{in: "a+", want: GradeAPlus},
		{in: "A", want: GradeA},
		{in: "b+", want: GradeB},
		{in: "c+", want: GradeC},
		{in: "d+", want: GradeD},
		{in: "f", want: GradeF},
		{in: "", want: GradeUnknown},
		{in: "x", want: GradeUnknown},
	}
	for _, tt := range tests {
		if got := ParseGrade(tt.in); got != tt.want {
			t.Errorf("ParseGrade(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGradeOrdering(t *testing.T) {
	order := []Grade{GradeF, GradeD, GradeC, GradeB, GradeA, GradeAPlus, GradeS, GradeSS, GradeSSS}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("%v should rank below %v", order[i-1], order[i])
		}
	}
}

func TestGradeWeight(t *testing.T) {
	if got := GradeSSS.Weight(); got != 1.2 {
		t.Errorf("SSS weight = %v, want 1.2", got)
	}
	if got := GradeUnknown.Weight(); got != 0.8 {
		t.Errorf("unknown grade weight = %v, want the 0.8 default", got)
	}
}
