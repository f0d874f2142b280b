package extractor

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// evidenceRadius is the number of bytes kept either side of an inline skill
// hit as proficiency evidence.
const evidenceRadius = 60

// extractSkillMentions produces one SkillMention per detected token
// occurrence. Skills sections are tokenized on commas, bullets and newlines;
// every section is additionally scanned inline against taxonomy aliases so
// skills outside an explicit header are not missed. Within one section each
// occurrence counts once: inline hits for entries the section's token split
// already covered are suppressed, so a skill listed a single time yields a
// single mention. Duplicates across sections are retained — merging happens
// downstream. A final pass over the normalized document recovers entries whose
// names were split across a line end and so invisible to every per-section
// scan.
func (e *Extractor) extractSkillMentions(sections []types.Section, raw types.RawResumeText) []types.SkillMention {
	var mentions []types.SkillMention
	fallback := isFallbackBody(sections)

	for _, section := range sections {
		covered := make(map[string]bool)

		// Explicit skills sections (or the whole body in the fallback case):
		// split into candidate tokens.
		if section.Type == types.SectionSkills || fallback {
			for _, line := range strings.Split(section.RawBlock, "\n") {
				line = ingestion.StripBullet(line)
				if line == "" {
					continue
				}
				for _, token := range splitSkillTokens(line) {
					mentions = append(mentions, types.SkillMention{
						RawToken:      token,
						SourceSection: section.Type,
						Context:       strings.ToLower(line),
					})
					if entry, ok := e.tax.Match(token); ok {
						covered[entry.Name] = true
					}
				}
			}
		}

		// Inline scan, taxonomy-bounded, skipping entries the token split
		// already produced for this section.
		lowered := strings.ToLower(section.RawBlock)
		for _, hit := range e.tax.ScanText(lowered) {
			if covered[hit.Entry.Name] {
				continue
			}
			mentions = append(mentions, types.SkillMention{
				RawToken:      hit.Entry.Name,
				SourceSection: section.Type,
				Context:       contextWindow(lowered, hit.Offset, len(hit.Token), evidenceRadius),
			})
		}
	}

	return append(mentions, e.recoverLineBrokenMentions(mentions, raw)...)
}

// recoverLineBrokenMentions scans the normalized document (newlines collapsed
// to spaces) for taxonomy entries no per-section scan saw, which happens when
// a multi-word name breaks across a line end.
func (e *Extractor) recoverLineBrokenMentions(mentions []types.SkillMention, raw types.RawResumeText) []types.SkillMention {
	if raw.Normalized == "" {
		return nil
	}

	seen := make(map[string]bool, len(mentions))
	for _, mention := range mentions {
		if entry, ok := e.tax.Match(mention.RawToken); ok {
			seen[entry.Name] = true
		}
	}

	var recovered []types.SkillMention
	for _, hit := range e.tax.ScanText(raw.Normalized) {
		if seen[hit.Entry.Name] {
			continue
		}
		recovered = append(recovered, types.SkillMention{
			RawToken:      hit.Entry.Name,
			SourceSection: types.SectionOther,
			Context:       contextWindow(raw.Normalized, hit.Offset, len(hit.Token), evidenceRadius),
		})
	}
	return recovered
}

// splitSkillTokens splits a skills line into candidate tokens on common list
// delimiters. Empty fragments are dropped.
func splitSkillTokens(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', ';', '|', '•', '·', '/':
			// '/' stays a delimiter for lists like "Python/Java"; interior
			// slashes in canonical names (CI/CD) are recovered by the inline
			// scan, which does not tokenize.
			return true
		}
		return false
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
