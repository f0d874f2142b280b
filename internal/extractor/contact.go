package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// extractContact pulls name, email and phone from the resume. Email and phone
// are matched anywhere in the original text; the name heuristic only trusts
// the first few lines of the leading section.
func (e *Extractor) extractContact(sections []types.Section, raw types.RawResumeText) types.Contact {
	var contact types.Contact

	if email := emailRe.FindString(raw.Original); email != "" {
		contact.Email = email
	}
	if phone := phoneRe.FindString(raw.Original); phone != "" {
		contact.Phone = normalizePhone(phone)
	}

	contact.Name = findName(sections)

	return contact
}

// findName looks for a short title-case line with no digits among the first
// lines of the leading summary/other section.
func findName(sections []types.Section) string {
	if len(sections) == 0 {
		return ""
	}
	first := sections[0]
	if first.Type != types.SectionSummary && first.Type != types.SectionOther {
		return ""
	}

	lines := strings.Split(first.RawBlock, "\n")
	limit := 3
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

// looksLikeName accepts 2-4 capitalized words without digits or separators.
func looksLikeName(line string) bool {
	if line == "" || strings.ContainsAny(line, "@0123456789|,:/") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		r := []rune(word)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// normalizePhone strips formatting, keeping digits and a leading plus.
func normalizePhone(phone string) string {
	var sb strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
