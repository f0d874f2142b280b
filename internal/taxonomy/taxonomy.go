// Package taxonomy loads the fixed skill taxonomy and canonicalizes raw skill
// tokens against it. The taxonomy is read-only after loading; entry order in
// the file defines the positional encoding consumed by the classifier.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Taxonomy is the closed set of recognized skills with lookup indexes built
// at load time. Safe for concurrent use: nothing mutates it after New.
type Taxonomy struct {
	entries []types.TaxonomyEntry

	position map[string]int // canonical name -> vector position
	exact    map[string]int // canonical names and aliases, case-sensitive
	folded   map[string]int // canonical names and aliases, lower-cased
	scanKeys []scanKey      // compiled word-boundary scanners, longest key first
}

type scanKey struct {
	key   string
	entry int
	re    *regexp.Regexp
}

// Load reads and validates a taxonomy JSON artifact.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	var file types.TaxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}

	return New(file.Skills)
}

// New builds a Taxonomy from validated entries. Duplicate canonical names are
// a configuration error.
func New(entries []types.TaxonomyEntry) (*Taxonomy, error) {
	t := &Taxonomy{
		entries:  entries,
		position: make(map[string]int, len(entries)),
		exact:    make(map[string]int),
		folded:   make(map[string]int),
	}

	for i, entry := range entries {
		if _, dup := t.position[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate taxonomy entry: %s", entry.Name)
		}
		t.position[entry.Name] = i

		keys := append([]string{entry.Name}, entry.Aliases...)
		for _, key := range keys {
			t.exact[key] = i
			lower := strings.ToLower(key)
			if _, exists := t.folded[lower]; !exists {
				t.folded[lower] = i
			}
			t.scanKeys = append(t.scanKeys, scanKey{
				key:   lower,
				entry: i,
				re:    compileBoundary(lower),
			})
		}
	}

	// Longer keys scan first so "machine learning" wins over any shorter
	// key it contains.
	sortScanKeys(t.scanKeys)

	return t, nil
}

// compileBoundary builds a word-boundary pattern tolerant of tokens that end
// in non-word runes (C++, CI/CD, Node.js), which `\b` cannot anchor.
func compileBoundary(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9+#])` + regexp.QuoteMeta(key) + `(?:$|[^a-z0-9+#])`)
}

func sortScanKeys(keys []scanKey) {
	// insertion sort by length descending, then key ascending for determinism
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0; j-- {
			a, b := keys[j-1], keys[j]
			if len(b.key) > len(a.key) || (len(b.key) == len(a.key) && b.key < a.key) {
				keys[j-1], keys[j] = b, a
			} else {
				break
			}
		}
	}
}

// Len returns the number of canonical entries (the classifier vector size).
func (t *Taxonomy) Len() int { return len(t.entries) }

// Entries returns the ordered canonical entries.
func (t *Taxonomy) Entries() []types.TaxonomyEntry { return t.entries }

// Names returns canonical names in vector order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// PositionOf returns the vector position of a canonical name, or -1.
func (t *Taxonomy) PositionOf(canonical string) int {
	if pos, ok := t.position[canonical]; ok {
		return pos
	}
	return -1
}

// Vector encodes a canonical-name -> proficiency map positionally over the
// taxonomy. Absent skills encode as 0.
func (t *Taxonomy) Vector(levels map[string]int) []float64 {
	vector := make([]float64, len(t.entries))
	for name, level := range levels {
		if pos, ok := t.position[name]; ok {
			vector[pos] = float64(level)
		}
	}
	return vector
}
