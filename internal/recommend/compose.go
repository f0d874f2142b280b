package recommend

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Compose assembles the final recommendation list for the selected roles,
// attaching the gap buckets and a templated explanation. Output order is the
// classifier's ranked order; no re-ranking happens here.
func Compose(selected []RankedRole, levels map[string]int) []types.Recommendation {
	recommendations := make([]types.Recommendation, 0, len(selected))

	for _, ranked := range selected {
		details := gap.Analyze(ranked.Role, levels)
		recommendations = append(recommendations, types.Recommendation{
			Role: types.RoleRef{
				ID:    ranked.Role.ID,
				Title: ranked.Role.Title,
			},
			SuitabilityPercentage: ranked.SuitabilityPercentage,
			MatchExplanation:      explain(ranked.SuitabilityPercentage, details),
			SkillMatchDetails:     details,
		})
	}

	return recommendations
}

// explain templates a human-readable explanation from the percentage band
// and the bucket counts.
func explain(percentage int, details types.SkillMatchDetails) string {
	var band string
	switch {
	case percentage >= 80:
		band = "Excellent match! The model predicts strong alignment with this role's requirements."
	case percentage >= 60:
		band = "Good match! You have most of the required skills for this role."
	case percentage >= 40:
		band = "Moderate match. Some skill development is recommended to qualify for this role."
	default:
		band = "Limited match. Significant skill gaps exist for this role."
	}

	return fmt.Sprintf("%s %d of %d required skills matched, %d below the required level, %d missing.",
		band,
		len(details.MatchedSkills),
		len(details.MatchedSkills)+len(details.WeakSkills)+len(details.MissingSkills),
		len(details.WeakSkills),
		len(details.MissingSkills),
	)
}
