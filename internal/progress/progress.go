// Package progress computes per-level and per-grade completion bonuses
// from a profile's best-grade charts. The summed bonus is the seed value
// of the starting-rating calculation.
package progress

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pumptrack/statserver/internal/domain"
)

const maxLevel = 28

var tiers = []domain.Grade{domain.GradeA, domain.GradeAPlus, domain.GradeS, domain.GradeSS}

// countsToward implements grade inheritance: a better grade counts for
// every tier it subsumes, SS and SSS share a tier.
func countsToward(achieved, tier domain.Grade) bool {
	switch achieved {
	case domain.GradeSSS, domain.GradeSS:
		return tier == domain.GradeSS || tier == domain.GradeS ||
			tier == domain.GradeAPlus || tier == domain.GradeA
	case domain.GradeS:
		return tier == domain.GradeS || tier == domain.GradeAPlus || tier == domain.GradeA
	case domain.GradeAPlus:
		return tier == domain.GradeAPlus || tier == domain.GradeA
	case domain.GradeA:
		return tier == domain.GradeA
	}
	return false
}

// minimumRequired is how many distinct charts of a level a player must
// complete for full credit, saturating at the catalog total.
func minimumRequired(total int) int {
	t := float64(total)
	v := 1 + t/20 + math.Sqrt(math.Max(t-1, 0))*0.7
	return int(math.Round(math.Min(t, v)))
}

// rawBonus is the per-level bonus before the completion coefficient.
func rawBonus(level int) float64 {
	return 30 * (1 + math.Pow(2, float64(level)/4)) / 11
}

// Fill computes the progress table for every profile. Level population
// counts come from the track catalog.
func Fill(profiles []*domain.Profile, singlesLevels, doublesLevels map[int]int) {
	for _, p := range profiles {
		p.Progress = build(p, singlesLevels, doublesLevels)
	}
}

func build(p *domain.Profile, singlesLevels, doublesLevels map[int]int) *domain.Progress {
	prog := &domain.Progress{
		ByType: make(map[domain.ChartType]map[domain.Grade]*domain.GradeProgress, 2),
	}
	for _, ct := range []domain.ChartType{domain.ChartTypeSingle, domain.ChartTypeDouble} {
		population := singlesLevels
		if ct == domain.ChartTypeDouble {
			population = doublesLevels
		}
		byGrade := make(map[domain.Grade]*domain.GradeProgress, len(tiers))
		for _, tier := range tiers {
			gp := buildTier(p, ct, tier, population)
			byGrade[tier] = gp
			prog.Bonus += gp.Bonus
		}
		prog.ByType[ct] = byGrade
	}
	return prog
}

func buildTier(p *domain.Profile, ct domain.ChartType, tier domain.Grade, population map[int]int) *domain.GradeProgress {
	perLevel := make(map[int]mapset.Set[int64])
	for _, mark := range p.BestGrades {
		if mark.Type != ct || !countsToward(mark.Grade, tier) {
			continue
		}
		set, ok := perLevel[mark.Level]
		if !ok {
			set = mapset.NewThreadUnsafeSet[int64]()
			perLevel[mark.Level] = set
		}
		set.Add(mark.ChartID)
	}

	gp := &domain.GradeProgress{Levels: make(map[int]domain.LevelProgress)}
	best := -1.0
	for level := 1; level <= maxLevel; level++ {
		total := population[level]
		if total == 0 {
			continue
		}
		achieved := 0
		if set, ok := perLevel[level]; ok {
			achieved = set.Cardinality()
		}
		required := minimumRequired(total)
		coefficient := math.Min(1, float64(achieved)/float64(required))
		raw := rawBonus(level)
		gp.Levels[level] = domain.LevelProgress{
			Achieved:    achieved,
			Required:    required,
			Coefficient: coefficient,
			RawBonus:    raw,
		}
		if product := coefficient * raw; product > best {
			best = product
			gp.BestLevel = level
			gp.Bonus = product
		}
	}
	return gp
}
