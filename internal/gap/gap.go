// Package gap compares a candidate's skill proficiencies against a role's
// required profile, partitioning the requirements into matched, weak and
// missing buckets.
package gap

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyze partitions the role's required skills exactly into three disjoint
// buckets:
//
//	matched: candidate proficiency >= required level
//	weak:    0 < candidate proficiency < required level
//	missing: candidate proficiency == 0 (skill absent)
//
// Skills outside the role's declared requirement list never appear in any
// bucket. Levels come from the candidate profile; 0 marks absence and is used
// only here.
func Analyze(role types.RoleProfile, levels map[string]int) types.SkillMatchDetails {
	details := types.SkillMatchDetails{
		MatchedSkills: []types.SkillMatch{},
		WeakSkills:    []types.SkillMatch{},
		MissingSkills: []types.SkillMatch{},
	}

	for _, required := range role.RequiredSkills {
		userLevel := levels[required.Skill]
		match := types.SkillMatch{
			Skill:         required.Skill,
			UserLevel:     userLevel,
			RequiredLevel: required.Level,
		}

		switch {
		case userLevel >= required.Level:
			details.MatchedSkills = append(details.MatchedSkills, match)
		case userLevel > 0:
			details.WeakSkills = append(details.WeakSkills, match)
		default:
			details.MissingSkills = append(details.MissingSkills, match)
		}
	}

	return details
}

// OverlapCount returns how many of the candidate's skills appear in the
// role's required list. Used as the first ranking tie-breaker.
func OverlapCount(role types.RoleProfile, levels map[string]int) int {
	count := 0
	for _, required := range role.RequiredSkills {
		if levels[required.Skill] > 0 {
			count++
		}
	}
	return count
}
