// Package recommend turns classifier probabilities into ranked, explained
// role recommendations. This stage performs ranking and composition only —
// scores come from the classifier, buckets from the gap analyzer.
package recommend

import (
	"math"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// RankedRole pairs a role with its suitability percentage and the tie-break
// overlap count.
type RankedRole struct {
	Role                  types.RoleProfile
	SuitabilityPercentage int
	Overlap               int
}

// Rank converts per-class probabilities to percentages and orders roles
// descending. Ties on percentage break by raw skill-overlap count descending,
// then by role ID ascending, so the ordering is fully deterministic.
func Rank(probabilities []float64, classes []string, roles map[string]types.RoleProfile, levels map[string]int) []RankedRole {
	ranked := make([]RankedRole, 0, len(classes))
	for i, class := range classes {
		role := roles[class]
		ranked = append(ranked, RankedRole{
			Role:                  role,
			SuitabilityPercentage: toPercentage(probabilities[i]),
			Overlap:               gap.OverlapCount(role, levels),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.SuitabilityPercentage != b.SuitabilityPercentage {
			return a.SuitabilityPercentage > b.SuitabilityPercentage
		}
		if a.Overlap != b.Overlap {
			return a.Overlap > b.Overlap
		}
		return a.Role.ID < b.Role.ID
	})

	return ranked
}

// TopK returns the first k ranked roles (all of them when k exceeds the
// list).
func TopK(ranked []RankedRole, k int) []RankedRole {
	if k <= 0 || k >= len(ranked) {
		return ranked
	}
	return ranked[:k]
}

// toPercentage converts a probability to a 0-100 percentage, rounding half
// away from zero.
func toPercentage(probability float64) int {
	return int(math.Round(probability * 100))
}
