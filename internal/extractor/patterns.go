// Package extractor pulls typed facts (contact details, skill mentions,
// work history, education) out of segmented resume sections. All pattern
// tables live in data, not logic, so they can be extended without code
// changes; extraction never fails on malformed input.
package extractor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/segmenter"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Patterns is the externally configurable rule table driving extraction.
// Zero-valued fields fall back to the built-in defaults.
type Patterns struct {
	// SectionHeaders maps section type names to header synonyms; it feeds the
	// segmenter lexicon.
	SectionHeaders map[string][]string `json:"section_headers,omitempty"`

	// DegreeKeywords are matched case-insensitively inside education blocks.
	DegreeKeywords []string `json:"degree_keywords,omitempty"`

	// PresentWords mark open-ended date ranges.
	PresentWords []string `json:"present_words,omitempty"`

	// TitleCompanyDelims split a heading line into title and company, tried
	// in order.
	TitleCompanyDelims []string `json:"title_company_delims,omitempty"`
}

// DefaultPatterns returns the built-in rule table.
func DefaultPatterns() *Patterns {
	return &Patterns{
		DegreeKeywords: []string{
			"bachelor of technology", "bachelor of engineering", "bachelor of science",
			"bachelor of arts", "master of science", "master of engineering",
			"master of business administration", "bachelor", "master", "b.tech", "m.tech",
			"b.sc", "m.sc", "b.s.", "m.s.", "bs", "ms", "mba", "phd", "ph.d", "doctorate",
			"associate degree", "associate", "diploma",
		},
		PresentWords: []string{"present", "current", "now", "ongoing"},
		TitleCompanyDelims: []string{
			" at ", " @ ", " | ", " - ", " – ", " — ", ", ",
		},
	}
}

// LoadPatterns reads a pattern override file and merges it over the defaults.
func LoadPatterns(path string) (*Patterns, error) {
	defaults := DefaultPatterns()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patterns file %s: %w", path, err)
	}

	var overrides Patterns
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse patterns JSON: %w", err)
	}

	if len(overrides.SectionHeaders) > 0 {
		defaults.SectionHeaders = overrides.SectionHeaders
	}
	if len(overrides.DegreeKeywords) > 0 {
		defaults.DegreeKeywords = overrides.DegreeKeywords
	}
	if len(overrides.PresentWords) > 0 {
		defaults.PresentWords = overrides.PresentWords
	}
	if len(overrides.TitleCompanyDelims) > 0 {
		defaults.TitleCompanyDelims = overrides.TitleCompanyDelims
	}

	return defaults, nil
}

// Lexicon converts the configured section headers into a segmenter lexicon,
// or returns the segmenter default when no override is present.
func (p *Patterns) Lexicon() segmenter.Lexicon {
	if len(p.SectionHeaders) == 0 {
		return segmenter.DefaultLexicon()
	}

	lexicon := make(segmenter.Lexicon, len(p.SectionHeaders))
	for name, headers := range p.SectionHeaders {
		lexicon[types.SectionType(name)] = headers
	}
	return lexicon
}
