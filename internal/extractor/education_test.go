package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func educationSection(block string) []types.Section {
	return []types.Section{{Type: types.SectionEducation, Header: "EDUCATION", RawBlock: block}}
}

func TestExtractEducation_SingleLineEntry(t *testing.T) {
	e := newTestExtractor(t)

	entries := e.extractEducation(educationSection("B.Sc, University of Lagos, 2019"))

	require.Len(t, entries, 1)
	assert.Equal(t, "B.Sc", entries[0].Degree)
	assert.Equal(t, "University of Lagos", entries[0].Institution)
	assert.Equal(t, "2019", entries[0].Year)
}

func TestExtractEducation_DegreeAloneUsesAdjacentLine(t *testing.T) {
	e := newTestExtractor(t)

	entries := e.extractEducation(educationSection("Master of Science\nStanford University, 2021"))

	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "2021", entries[0].Year)
}

func TestExtractEducation_LongestKeywordWins(t *testing.T) {
	e := newTestExtractor(t)

	entries := e.extractEducation(educationSection("Bachelor of Engineering, Tech Institute, 2015"))

	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Engineering", entries[0].Degree)
}

func TestExtractEducation_ImplausibleYearKeptAsPeriod(t *testing.T) {
	e := newTestExtractor(t)

	entries := e.extractEducation(educationSection("Diploma, Trade School, 1902"))

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Year)
	assert.Equal(t, "1902", entries[0].Period)
}

func TestExtractEducation_NoDegreeKeyword(t *testing.T) {
	e := newTestExtractor(t)

	assert.Empty(t, e.extractEducation(educationSection("Attended some courses online")))
}

func TestExtractEducation_DeduplicatesSameDegree(t *testing.T) {
	e := newTestExtractor(t)

	block := "B.Sc, University of Lagos, 2019\nB.Sc, University of Lagos, 2019"
	entries := e.extractEducation(educationSection(block))

	assert.Len(t, entries, 1)
}

func TestMatchDegree_WordBoundary(t *testing.T) {
	e := newTestExtractor(t)

	// "bachelor" inside a longer word must not match.
	degree, _ := e.matchDegree("bachelorette party planner")
	assert.Empty(t, degree)

	degree, _ = e.matchDegree("MBA, Harvard Business School")
	assert.Equal(t, "MBA", degree)
}
