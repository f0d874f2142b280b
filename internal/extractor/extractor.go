package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extraction is the raw output of one extraction pass. Skill mentions are not
// yet canonicalized or deduplicated; that happens in matching and scoring.
type Extraction struct {
	Contact    types.Contact
	Summary    string
	Mentions   []types.SkillMention
	Experience []types.ExperienceEntry
	Education  []types.EducationEntry
}

// Extractor extracts typed facts from segmented resume text. It is read-only
// after construction and safe to share across concurrent analysis runs.
type Extractor struct {
	tax      *taxonomy.Taxonomy
	patterns *Patterns
	rangeRe  *regexp.Regexp

	// Clock supplies the processing date used to close open "present" date
	// ranges. Overridable in tests.
	Clock func() time.Time
}

// New builds an Extractor. A nil patterns table uses the defaults.
func New(tax *taxonomy.Taxonomy, patterns *Patterns) *Extractor {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	e := &Extractor{
		tax:      tax,
		patterns: patterns,
		Clock:    time.Now,
	}
	e.rangeRe = e.compileDateRangeRe()
	return e
}

// Extract runs all extractors over the section sequence. It never returns an
// error: malformed content degrades to empty fields, never a failed resume.
func (e *Extractor) Extract(sections []types.Section, raw types.RawResumeText) Extraction {
	var out Extraction

	out.Contact = e.extractContact(sections, raw)
	out.Summary = e.extractSummary(sections)
	out.Mentions = e.extractSkillMentions(sections, raw)
	out.Experience = e.extractExperience(sections)
	out.Education = e.extractEducation(sections)

	return out
}

// extractSummary returns the first summary block's text.
func (e *Extractor) extractSummary(sections []types.Section) string {
	for _, section := range sections {
		if section.Type == types.SectionSummary && section.RawBlock != "" {
			return section.RawBlock
		}
	}
	return ""
}

// isFallbackBody reports whether segmentation degraded to a single unlabeled
// section, in which case every extractor scans the whole body.
func isFallbackBody(sections []types.Section) bool {
	return len(sections) == 1 && sections[0].Type == types.SectionOther && sections[0].Header == ""
}

// sectionsOfType returns the blocks to scan for a given extractor: the
// matching sections when any exist, or the whole body in the fallback case.
func sectionsOfType(sections []types.Section, sectionType types.SectionType) []types.Section {
	var matched []types.Section
	for _, s := range sections {
		if s.Type == sectionType {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 && isFallbackBody(sections) {
		return sections
	}
	return matched
}

// contextWindow slices an evidence window around a byte offset, clamped to
// the text and widened to rune boundaries.
func contextWindow(text string, offset, tokenLen, radius int) string {
	start := offset - radius
	if start < 0 {
		start = 0
	}
	end := offset + tokenLen + radius
	if end > len(text) {
		end = len(text)
	}
	for start > 0 && !isRuneStart(text[start]) {
		start--
	}
	for end < len(text) && !isRuneStart(text[end]) {
		end++
	}
	return strings.TrimSpace(text[start:end])
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
