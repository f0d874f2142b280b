// Package segmenter splits normalized resume text into labeled sections using
// an explicit finite-state scan over lines. The scanner state is the section
// type currently being accumulated; a recognized header line transitions the
// state, everything else appends to the open section.
package segmenter

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxHeaderLen is the longest line still considered a candidate header.
// Real section headers are short; anything longer is body text.
const maxHeaderLen = 48

// Lexicon maps section types to the header synonyms that open them.
// Synonyms are matched case-insensitively after trimming decoration.
type Lexicon map[types.SectionType][]string

// DefaultLexicon returns the built-in header synonym table. It can be
// replaced wholesale through the extractor pattern configuration.
func DefaultLexicon() Lexicon {
	return Lexicon{
		types.SectionSummary: {
			"summary", "professional summary", "profile", "objective", "about me", "about",
		},
		types.SectionSkills: {
			"skills", "technical skills", "core skills", "key skills", "skills & tools",
			"technologies", "core competencies", "technical proficiencies",
		},
		types.SectionExperience: {
			"experience", "work experience", "professional experience", "work history",
			"employment", "employment history", "career history", "internships",
		},
		types.SectionEducation: {
			"education", "academic background", "academics", "qualifications",
			"education & training", "academic qualifications",
		},
	}
}

// Segmenter is a reusable, read-only section scanner.
type Segmenter struct {
	synonyms map[string]types.SectionType // folded synonym -> section type
}

// New builds a Segmenter from a lexicon. A nil lexicon uses the default.
func New(lexicon Lexicon) *Segmenter {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}

	synonyms := make(map[string]types.SectionType)
	for sectionType, headers := range lexicon {
		for _, h := range headers {
			synonyms[strings.ToLower(h)] = sectionType
		}
	}

	return &Segmenter{synonyms: synonyms}
}

// Segment scans the original (casing-preserved) resume text line by line and
// returns the ordered section sequence. Lines before the first recognized
// header form an implicit summary section; text with no recognized header at
// all degrades to a single `other` section so downstream extraction can still
// run against the whole body.
func (s *Segmenter) Segment(text string) []types.Section {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	var sections []types.Section
	state := types.SectionSummary // implicit leading section
	header := ""
	var block []string
	sawHeader := false

	flush := func() {
		raw := strings.TrimSpace(strings.Join(block, "\n"))
		if raw == "" && header == "" {
			block = nil
			return
		}
		sections = append(sections, types.Section{Type: state, Header: header, RawBlock: raw})
		block = nil
	}

	for _, line := range lines {
		if sectionType, headerText, ok := s.classifyHeader(line); ok {
			flush()
			state = sectionType
			header = headerText
			sawHeader = true
			continue
		}
		block = append(block, line)
	}
	flush()

	if !sawHeader {
		// Degrade gracefully: the whole body becomes one `other` section and
		// extraction falls back to pattern scans over it.
		return []types.Section{{Type: types.SectionOther, RawBlock: text}}
	}

	return sections
}

// classifyHeader applies the header heuristic: a short line, mostly uppercase
// or title-case, whose trimmed text matches a known synonym.
func (s *Segmenter) classifyHeader(line string) (types.SectionType, string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimRight(trimmed, ":_ \t")
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return "", "", false
	}
	if !looksLikeHeader(trimmed) {
		return "", "", false
	}

	if sectionType, ok := s.synonyms[strings.ToLower(trimmed)]; ok {
		return sectionType, trimmed, true
	}
	return "", "", false
}

// looksLikeHeader reports whether the line's casing is header-like: every
// word starts uppercase, or the line is mostly uppercase letters.
func looksLikeHeader(line string) bool {
	letters, uppers := 0, 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters == 0 {
		return false
	}
	// Mostly uppercase ("WORK EXPERIENCE")
	if float64(uppers)/float64(letters) >= 0.6 {
		return true
	}

	// Title case ("Work Experience")
	for _, word := range strings.Fields(line) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) && !isMinorWord(word) {
			return false
		}
	}
	return true
}

// isMinorWord allows lowercase connectives inside title-case headers.
func isMinorWord(word string) bool {
	switch strings.ToLower(word) {
	case "and", "of", "the", "&":
		return true
	}
	return false
}
