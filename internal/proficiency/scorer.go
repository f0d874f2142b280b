// Package proficiency estimates a 1-5 strength score for each matched skill
// from textual evidence. The weights here are deliberately simple and are
// documented in DESIGN.md; they are the one heuristic surface of the engine.
package proficiency

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Baseline is the score for a skill mentioned once with no qualifiers and no
// linked experience. A matched skill never scores below 1 and never 0.
const Baseline = 2

// qualifierTiers maps strength qualifiers found in evidence context to a
// score tier. A qualifier, when present, dominates the other signals; the
// highest tier seen across all mentions wins.
var qualifierTiers = []struct {
	level int
	words []string
}{
	{5, []string{"expert", "expertise", "mastery", "architect", "lead "}},
	{4, []string{"advanced", "senior", "proficient", "extensive", "strong", "deep knowledge"}},
	{3, []string{"intermediate", "experienced", "hands-on", "working knowledge", "practical"}},
	{2, []string{"basic", "familiar", "beginner", "exposure", "introduced"}},
	{1, []string{"learning", "studied", "coursework", "academic"}},
}

// Frequency floors: more distinct mentions raise the no-qualifier score.
const (
	mentionsForThree = 2
	mentionsForFour  = 4
)

// experienceBoostMonths is the accumulated work duration above which a skill
// seen inside experience blocks earns a single +1 boost.
const experienceBoostMonths = 24

// Score computes the proficiency for one canonical skill from its merged
// mentions and the candidate's work history. The result is always in [1,5].
func Score(mentions []types.SkillMention, experience []types.ExperienceEntry) int {
	if len(mentions) == 0 {
		return Baseline
	}

	score := Baseline
	if tier := highestQualifierTier(mentions); tier > 0 {
		score = tier
	} else {
		switch {
		case len(mentions) >= mentionsForFour:
			score = 4
		case len(mentions) >= mentionsForThree:
			score = 3
		}
	}

	if mentionedInExperience(mentions) && totalDurationMonths(experience) >= experienceBoostMonths {
		score++
	}

	return clamp(score, 1, 5)
}

// Confidence derives a mention-count confidence in [0.6, 0.95].
func Confidence(mentions int) float64 {
	confidence := 0.6 + 0.08*float64(mentions)
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}

// highestQualifierTier scans every mention's evidence context and returns the
// strongest qualifier tier found, or 0 when none is present.
func highestQualifierTier(mentions []types.SkillMention) int {
	best := 0
	for _, mention := range mentions {
		context := strings.ToLower(mention.Context)
		for _, tier := range qualifierTiers {
			if tier.level <= best {
				continue
			}
			for _, word := range tier.words {
				if strings.Contains(context, word) {
					best = tier.level
					break
				}
			}
		}
	}
	return best
}

// mentionedInExperience reports whether any mention came from a work-history
// section, which links the skill to the candidate's accumulated experience.
func mentionedInExperience(mentions []types.SkillMention) bool {
	for _, mention := range mentions {
		if mention.SourceSection == types.SectionExperience {
			return true
		}
	}
	return false
}

func totalDurationMonths(experience []types.ExperienceEntry) int {
	total := 0
	for _, entry := range experience {
		total += entry.DurationMonths
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
