package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func testRole() types.RoleProfile {
	return types.RoleProfile{
		ID:    "data_engineer",
		Title: "Data Engineer",
		RequiredSkills: []types.RequiredSkill{
			{Skill: "SQL", Level: 4, Weight: 1.5},
			{Skill: "Python", Level: 3, Weight: 1.2},
			{Skill: "Spark", Level: 3, Weight: 1.0},
			{Skill: "Kafka", Level: 3, Weight: 1.0},
		},
	}
}

func TestAnalyze_PartitionsBuckets(t *testing.T) {
	levels := map[string]int{
		"SQL":    5, // at or above required: matched
		"Python": 2, // below required but present: weak
		"Spark":  0, // explicit zero behaves like absent
		// Kafka absent: missing
	}

	details := Analyze(testRole(), levels)

	require.Len(t, details.MatchedSkills, 1)
	assert.Equal(t, "SQL", details.MatchedSkills[0].Skill)
	assert.Equal(t, 5, details.MatchedSkills[0].UserLevel)
	assert.Equal(t, 4, details.MatchedSkills[0].RequiredLevel)

	require.Len(t, details.WeakSkills, 1)
	assert.Equal(t, "Python", details.WeakSkills[0].Skill)

	require.Len(t, details.MissingSkills, 2)
	missing := []string{details.MissingSkills[0].Skill, details.MissingSkills[1].Skill}
	assert.ElementsMatch(t, []string{"Spark", "Kafka"}, missing)
}

func TestAnalyze_ExactLevelCountsAsMatched(t *testing.T) {
	details := Analyze(testRole(), map[string]int{"SQL": 4})

	require.Len(t, details.MatchedSkills, 1)
	assert.Equal(t, "SQL", details.MatchedSkills[0].Skill)
}

func TestAnalyze_BucketsCoverRequirementsExactly(t *testing.T) {
	role := testRole()
	levels := map[string]int{"SQL": 3, "Python": 4, "Rust": 5}

	details := Analyze(role, levels)

	total := len(details.MatchedSkills) + len(details.WeakSkills) + len(details.MissingSkills)
	assert.Equal(t, len(role.RequiredSkills), total)

	// Skills outside the requirement list never leak into buckets.
	for _, bucket := range [][]types.SkillMatch{details.MatchedSkills, details.WeakSkills, details.MissingSkills} {
		for _, m := range bucket {
			assert.NotEqual(t, "Rust", m.Skill)
		}
	}
}

func TestAnalyze_EmptyRequirements(t *testing.T) {
	role := types.RoleProfile{ID: "generalist", Title: "Generalist"}

	details := Analyze(role, map[string]int{"Python": 5})

	assert.NotNil(t, details.MatchedSkills)
	assert.NotNil(t, details.WeakSkills)
	assert.NotNil(t, details.MissingSkills)
	assert.Empty(t, details.MatchedSkills)
	assert.Empty(t, details.WeakSkills)
	assert.Empty(t, details.MissingSkills)
}

func TestOverlapCount_CountsPresentSkills(t *testing.T) {
	role := testRole()

	assert.Equal(t, 0, OverlapCount(role, nil))
	assert.Equal(t, 2, OverlapCount(role, map[string]int{"SQL": 1, "Python": 5, "Rust": 3}))
	assert.Equal(t, 4, OverlapCount(role, map[string]int{"SQL": 1, "Python": 1, "Spark": 1, "Kafka": 1}))
}
