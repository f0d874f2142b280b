package extractor

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const monthAlt = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

// dateEndpoint matches one side of a range: MM/YYYY or "Month YYYY".
const dateEndpoint = `(?:\d{1,2}\s*/\s*(?:19|20)\d{2}|` + monthAlt + `\s+(?:19|20)\d{2})`

// compileDateRangeRe builds the full-range matcher, numeric or month-name,
// optionally open-ended. The open-end word list comes from the pattern table.
func (e *Extractor) compileDateRangeRe() *regexp.Regexp {
	presentAlt := strings.Join(e.patterns.PresentWords, "|")
	return regexp.MustCompile(`(?i)(` + dateEndpoint + `)\s*(?:[-–—]+|to|until)\s*(` + dateEndpoint + `|` + presentAlt + `)`)
}

// extractExperience detects date ranges inside experience blocks and attaches
// the nearest preceding heading as title/company. A malformed or unparseable
// range still yields an entry with empty dates and duration 0 — the heading
// text is never discarded.
func (e *Extractor) extractExperience(sections []types.Section) []types.ExperienceEntry {
	rangeRe := e.rangeRe
	now := e.Clock()

	var entries []types.ExperienceEntry
	seen := make(map[string]bool)

	for _, section := range sectionsOfType(sections, types.SectionExperience) {
		lines := strings.Split(section.RawBlock, "\n")
		for i, line := range lines {
			loc := rangeRe.FindStringSubmatchIndex(line)
			if loc == nil {
				continue
			}

			startTok := line[loc[2]:loc[3]]
			endTok := line[loc[4]:loc[5]]

			heading := strings.TrimSpace(strings.Trim(line[:loc[0]], " \t,|-–—("))
			if heading == "" {
				heading = precedingHeading(lines, i)
			}

			title, company := e.splitTitleCompany(heading)
			entry := types.ExperienceEntry{Title: title, Company: company}

			start, startOK := parseMonthYear(startTok)
			end, endOK, open := e.parseRangeEnd(endTok, now)
			if startOK && endOK && !end.Before(start) {
				entry.StartDate = start.Format("2006-01")
				if open {
					entry.EndDate = "present"
				} else {
					entry.EndDate = end.Format("2006-01")
				}
				entry.DurationMonths = monthsBetween(start, end)
			}

			key := fmt.Sprintf("%s|%s|%s", strings.ToLower(entry.Title), strings.ToLower(entry.Company), entry.StartDate)
			if entry.Title == "" && entry.Company == "" && entry.StartDate == "" {
				continue
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, entry)
		}
	}

	// Most recent first; undated entries sort last.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartDate > entries[j].StartDate
	})

	return entries
}

// precedingHeading walks back to the nearest non-empty, non-bullet line.
func precedingHeading(lines []string, idx int) string {
	for i := idx - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || ingestion.IsBulletLine(lines[i]) {
			continue
		}
		return line
	}
	return ""
}

// splitTitleCompany splits a heading into title and company on the first
// configured delimiter. A heading with no delimiter keeps the whole phrase as
// title with an empty company.
func (e *Extractor) splitTitleCompany(heading string) (string, string) {
	heading = strings.TrimSpace(heading)
	if heading == "" {
		return "", ""
	}

	for _, delim := range e.patterns.TitleCompanyDelims {
		if idx := strings.Index(heading, delim); idx > 0 {
			title := strings.TrimSpace(heading[:idx])
			company := strings.TrimSpace(heading[idx+len(delim):])
			if title != "" && company != "" {
				return title, company
			}
		}
	}

	return heading, ""
}

// parseRangeEnd resolves the end token: a date, or an open-range word that
// closes at the processing date.
func (e *Extractor) parseRangeEnd(token string, now time.Time) (time.Time, bool, bool) {
	lowered := strings.ToLower(strings.TrimSpace(token))
	for _, word := range e.patterns.PresentWords {
		if lowered == word {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true, true
		}
	}
	t, ok := parseMonthYear(token)
	return t, ok, false
}

var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseMonthYear parses "MM/YYYY" or "Month YYYY" with month granularity.
func parseMonthYear(token string) (time.Time, bool) {
	token = strings.ToLower(strings.TrimSpace(token))

	if idx := strings.Index(token, "/"); idx > 0 {
		month, err1 := strconv.Atoi(strings.TrimSpace(token[:idx]))
		year, err2 := strconv.Atoi(strings.TrimSpace(token[idx+1:]))
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
	}

	fields := strings.Fields(token)
	if len(fields) != 2 || len(fields[0]) < 3 {
		return time.Time{}, false
	}
	month, ok := monthNames[fields[0][:3]]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSuffix(fields[1], "."))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// monthsBetween returns the month-granular span, never negative.
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}
