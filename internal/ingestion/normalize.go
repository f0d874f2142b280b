// Package ingestion normalizes raw resume text before segmentation.
// Binary decoding (PDF/DOCX to text) happens upstream; this package only sees
// plain UTF-8 text.
package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// Normalize produces the immutable RawResumeText for one analysis run.
// Original keeps line structure and casing (the segmenter's header heuristics
// need both); Normalized is lower-cased with newlines and whitespace collapsed
// for document-level skill scanning.
func Normalize(raw string) types.RawResumeText {
	cleaned := CleanText(raw)

	normalized := strings.ToLower(cleaned)
	normalized = strings.ReplaceAll(normalized, "\n", " ")
	normalized = multiSpaceRe.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	return types.RawResumeText{
		Original:   cleaned,
		Normalized: normalized,
	}
}

// CleanText cleans text content while preserving line structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")

	// Reduce 3+ consecutive blank lines to one blank line
	result = blankLinesRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses runs of spaces inside the
// line. Bullet markers and leading indentation are preserved so the extractor
// can still split on them.
func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// IsBulletLine reports whether a line starts with a common bullet marker.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "▪ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// StripBullet removes a leading bullet marker from a line, if present.
func StripBullet(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "▪ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
		}
	}
	return trimmed
}
