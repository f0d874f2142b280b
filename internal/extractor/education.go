package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// extractEducation detects degree keywords inside education blocks. The
// institution is the remaining non-degree, non-year text on the same line, or
// the adjacent line when the degree stands alone. A 4-digit token in a
// plausible year range becomes Year; otherwise the raw trailing text is kept
// uninterpreted as Period.
func (e *Extractor) extractEducation(sections []types.Section) []types.EducationEntry {
	var entries []types.EducationEntry
	seen := make(map[string]bool)

	for _, section := range sectionsOfType(sections, types.SectionEducation) {
		lines := strings.Split(section.RawBlock, "\n")
		for i, line := range lines {
			line = ingestion.StripBullet(line)
			degree, rest := e.matchDegree(line)
			if degree == "" {
				continue
			}

			entry := types.EducationEntry{Degree: degree}

			institution, trailing := splitInstitution(rest)
			if institution == "" && i+1 < len(lines) {
				// Degree stands alone; look at the adjacent line.
				institution, trailing = splitInstitution(ingestion.StripBullet(lines[i+1]))
			}
			entry.Institution = institution

			if year := plausibleYear(line + " " + trailing); year != "" {
				entry.Year = year
			} else if trailing != "" {
				entry.Period = trailing
			}

			key := strings.ToLower(entry.Degree + "|" + entry.Institution)
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, entry)
		}
	}

	return entries
}

// matchDegree finds the first (longest) degree keyword in a line,
// case-insensitively. Returns the matched keyword as it appeared plus the
// remaining text.
func (e *Extractor) matchDegree(line string) (string, string) {
	lowered := strings.ToLower(line)

	best := -1
	bestLen := 0
	for _, keyword := range e.patterns.DegreeKeywords {
		idx := indexWord(lowered, keyword)
		if idx < 0 {
			continue
		}
		if best == -1 || idx < best || (idx == best && len(keyword) > bestLen) {
			best = idx
			bestLen = len(keyword)
		}
	}
	if best < 0 {
		return "", ""
	}

	degree := strings.TrimSpace(line[best : best+bestLen])
	rest := strings.TrimSpace(line[:best] + " " + line[best+bestLen:])
	return degree, rest
}

// indexWord finds a keyword at a word boundary inside lowered text.
func indexWord(lowered, keyword string) int {
	from := 0
	for {
		idx := strings.Index(lowered[from:], keyword)
		if idx < 0 {
			return -1
		}
		idx += from
		beforeOK := idx == 0 || !isWordByte(lowered[idx-1])
		after := idx + len(keyword)
		afterOK := after >= len(lowered) || !isWordByte(lowered[after])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + len(keyword)
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// splitInstitution separates the institution name from trailing detail
// (years, GPA, locations) on a degree line fragment.
func splitInstitution(rest string) (string, string) {
	rest = strings.TrimSpace(strings.Trim(rest, ",|-–— \t"))
	if rest == "" {
		return "", ""
	}

	// Leading connectives left over from degree removal ("of Science in ...").
	for _, prefix := range []string{"of ", "in ", "from ", "at "} {
		if strings.HasPrefix(strings.ToLower(rest), prefix) {
			rest = strings.TrimSpace(rest[len(prefix):])
		}
	}

	// Split off anything from the first year token onward.
	if loc := yearRe.FindStringIndex(rest); loc != nil {
		inst := strings.TrimSpace(strings.Trim(rest[:loc[0]], ",|-–— \t"))
		trailing := strings.TrimSpace(rest[loc[0]:])
		return inst, trailing
	}

	return rest, ""
}

// plausibleYear returns the last 4-digit token within a sane graduation range.
func plausibleYear(text string) string {
	matches := yearRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	last := matches[len(matches)-1]
	year, _ := time.Parse("2006", last)
	if year.Year() >= 1950 && year.Year() <= time.Now().Year()+6 {
		return last
	}
	return ""
}
