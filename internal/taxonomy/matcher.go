package taxonomy

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// minContainmentKeyLen guards the containment pass against very short keys
// ("go", "ml") matching inside unrelated words.
const minContainmentKeyLen = 4

// Match canonicalizes a raw skill token against the taxonomy. Match order:
// exact, then case-insensitive exact, then alias containment. The first
// successful match wins. An unmatched token is not an error — it is simply
// outside the taxonomy-bounded scoring.
func (t *Taxonomy) Match(rawToken string) (types.TaxonomyEntry, bool) {
	token := normalizeToken(rawToken)
	if token == "" {
		return types.TaxonomyEntry{}, false
	}

	// Pass 1: exact
	if idx, ok := t.exact[token]; ok {
		return t.entries[idx], true
	}

	// Pass 2: case-insensitive exact
	folded := strings.ToLower(token)
	if idx, ok := t.folded[folded]; ok {
		return t.entries[idx], true
	}

	// Pass 3: containment, longest key first for determinism
	for _, sk := range t.scanKeys {
		if len(sk.key) < minContainmentKeyLen {
			continue
		}
		if strings.Contains(folded, sk.key) || (len(folded) >= minContainmentKeyLen && strings.Contains(sk.key, folded)) {
			return t.entries[sk.entry], true
		}
	}

	return types.TaxonomyEntry{}, false
}

// normalizeToken trims whitespace and surrounding punctuation from a raw
// token. Interior punctuation stays: it is significant for C++, CI/CD,
// Node.js and similar names.
func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	token = strings.Trim(token, ".,;:()[]{}\"'`|•·-–—")
	return strings.TrimSpace(token)
}

// InlineHit is one occurrence of a taxonomy key found in free text.
type InlineHit struct {
	Entry  types.TaxonomyEntry
	Token  string // the alias/name that matched, lower-cased
	Offset int    // byte offset of the match in the scanned text
}

// ScanText finds taxonomy key occurrences in normalized (lower-cased) text
// using word-boundary matching. Every occurrence is reported; callers decide
// how to merge duplicates.
func (t *Taxonomy) ScanText(normalized string) []InlineHit {
	if normalized == "" {
		return nil
	}

	var hits []InlineHit
	seenSpan := make(map[int]map[int]bool) // entry -> offset -> claimed

	for _, sk := range t.scanKeys {
		for _, loc := range sk.re.FindAllStringIndex(normalized, -1) {
			// The boundary pattern consumes one rune either side; recover the
			// key's own offset.
			start := loc[0]
			if start > 0 || !strings.HasPrefix(normalized[loc[0]:], sk.key) {
				start = loc[0] + strings.Index(normalized[loc[0]:loc[1]], sk.key)
			}
			if seenSpan[sk.entry] == nil {
				seenSpan[sk.entry] = make(map[int]bool)
			}
			if seenSpan[sk.entry][start] {
				continue
			}
			seenSpan[sk.entry][start] = true
			hits = append(hits, InlineHit{Entry: t.entries[sk.entry], Token: sk.key, Offset: start})
		}
	}

	return hits
}
