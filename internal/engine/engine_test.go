package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/roles"
)

// testConfig points at the repository configuration artifacts, reachable two
// levels up from this package.
func testConfig() *config.Config {
	return &config.Config{
		TaxonomyPath: "../../configs/taxonomy.json",
		RolesPath:    "../../configs/roles.json",
		ModelPath:    "../../configs/model.json",
		TopK:         3,
	}
}

const sampleResume = `John Smith
john@example.com

SKILLS
Python, SQL, Docker

EXPERIENCE
Data Engineer at Acme Corp
01/2020 - Present

EDUCATION
B.Sc, State University, 2018
`

func TestNew_LoadsRepositoryArtifacts(t *testing.T) {
	eng, err := New(testConfig())

	require.NoError(t, err)
	require.NotNil(t, eng)
}

func TestNew_RejectsTaxonomyModelMismatch(t *testing.T) {
	taxonomyPath := filepath.Join(t.TempDir(), "taxonomy.json")
	content := `{"version": 1, "skills": [{"name": "Python", "category": "technical"}]}`
	require.NoError(t, os.WriteFile(taxonomyPath, []byte(content), 0644))

	cfg := testConfig()
	cfg.TaxonomyPath = taxonomyPath

	_, err := New(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape check")
}

func TestAnalyze_FullPipeline(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	result, err := eng.Analyze(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)

	// Extracted data
	assert.Equal(t, "John Smith", result.ExtractedData.Contact.Name)
	assert.Equal(t, "john@example.com", result.ExtractedData.Contact.Email)

	technical := make(map[string]bool)
	for _, s := range result.ExtractedData.Skills.Technical {
		technical[s.Name] = true
		assert.GreaterOrEqual(t, s.Proficiency, 1)
		assert.LessOrEqual(t, s.Proficiency, 5)
		assert.GreaterOrEqual(t, s.Confidence, 0.6)
		assert.LessOrEqual(t, s.Confidence, 0.95)
	}
	assert.True(t, technical["Python"])
	assert.True(t, technical["SQL"])
	assert.True(t, technical["Docker"])

	require.Len(t, result.ExtractedData.Experience, 1)
	assert.Equal(t, "Data Engineer", result.ExtractedData.Experience[0].Title)
	assert.Equal(t, "Acme Corp", result.ExtractedData.Experience[0].Company)
	assert.Equal(t, "2020-01", result.ExtractedData.Experience[0].StartDate)
	assert.Equal(t, "present", result.ExtractedData.Experience[0].EndDate)

	require.Len(t, result.ExtractedData.Education, 1)
	assert.Equal(t, "B.Sc", result.ExtractedData.Education[0].Degree)

	// Recommendations
	require.Len(t, result.Recommendations, 3)
	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			result.Recommendations[i-1].SuitabilityPercentage,
			result.Recommendations[i].SuitabilityPercentage)
	}
	for _, rec := range result.Recommendations {
		assert.NotEmpty(t, rec.Role.ID)
		assert.NotEmpty(t, rec.MatchExplanation)
	}

	// Profile summary
	assert.Equal(t, len(result.ExtractedData.Skills.Technical)+len(result.ExtractedData.Skills.Soft),
		result.ProfileSummary.TotalSkills)
	assert.Equal(t, 1, result.ProfileSummary.ExperienceCount)
	assert.Equal(t, 1, result.ProfileSummary.EducationCount)
}

func TestAnalyze_SingleMentionScoresBaseline(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	result, err := eng.Analyze(context.Background(), "SKILLS\nDocker\n")
	require.NoError(t, err)

	require.Len(t, result.ExtractedData.Skills.Technical, 1)
	docker := result.ExtractedData.Skills.Technical[0]
	assert.Equal(t, "Docker", docker.Name)
	assert.Equal(t, 2, docker.Proficiency, "one listing is one mention, not two")
	assert.InDelta(t, 0.68, docker.Confidence, 1e-9)
}

func TestAnalyze_RepeatedMentionRaisesFloor(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	result, err := eng.Analyze(context.Background(), "SKILLS\nDocker\nDocker\n")
	require.NoError(t, err)

	require.Len(t, result.ExtractedData.Skills.Technical, 1)
	docker := result.ExtractedData.Skills.Technical[0]
	assert.Equal(t, 3, docker.Proficiency)
	assert.InDelta(t, 0.76, docker.Confidence, 1e-9)
}

func TestAnalyze_GapBucketsCoverRoleRequirements(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	roleProfiles, err := roles.Load("../../configs/roles.json")
	require.NoError(t, err)

	result, err := eng.Analyze(context.Background(), sampleResume)
	require.NoError(t, err)

	for _, rec := range result.Recommendations {
		role, ok := roleProfiles[rec.Role.ID]
		require.True(t, ok)

		details := rec.SkillMatchDetails
		total := len(details.MatchedSkills) + len(details.WeakSkills) + len(details.MissingSkills)
		assert.Equal(t, len(role.RequiredSkills), total, "role: %s", rec.Role.ID)
	}
}

func TestAnalyze_DeterministicForSameInput(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	first, err := eng.Analyze(context.Background(), sampleResume)
	require.NoError(t, err)
	second, err := eng.Analyze(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)

	first.RunID, second.RunID = "", ""
	assert.Equal(t, first, second)
}

func TestAnalyze_NoHeadersFallback(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	result, err := eng.Analyze(context.Background(), "seasoned python and sql developer shipping docker images")
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, s := range result.ExtractedData.Skills.Technical {
		names[s.Name] = true
	}
	assert.True(t, names["Python"])
	assert.True(t, names["SQL"])
	assert.True(t, names["Docker"])
}

func TestAnalyze_EmptyResume(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	result, err := eng.Analyze(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, result.ExtractedData.Skills.Technical)
	assert.Empty(t, result.ExtractedData.Skills.Soft)
	assert.NotNil(t, result.ExtractedData.Experience)
	assert.Len(t, result.Recommendations, 3, "ranking still runs on a zero vector")
}

func TestAnalyze_CancelledContext(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = eng.Analyze(ctx, sampleResume)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_QualifierRaisesProficiency(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	// The filler line keeps the qualifier outside SQL's evidence window.
	resume := "Summary line\n\nSKILLS\nExpert in Python\n" +
		"data warehousing, reporting dashboards and stakeholder presentations over the last decade\n" +
		"SQL"
	result, err := eng.Analyze(context.Background(), resume)
	require.NoError(t, err)

	levels := make(map[string]int)
	for _, s := range result.ExtractedData.Skills.Technical {
		levels[s.Name] = s.Proficiency
	}
	assert.Equal(t, 5, levels["Python"])
	assert.Greater(t, levels["Python"], levels["SQL"])
}

func TestSummarize_TruncatesLongBlocks(t *testing.T) {
	block := strings.Join([]string{"1", "2", "3", "4", "5", "6", "7"}, "\n")

	got := summarize(block)

	assert.Equal(t, "1\n2\n3\n4\n5", got)
}
