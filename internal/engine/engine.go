// Package engine wires the parsing and matching pipeline together. An Engine
// is built once at startup from read-only configuration artifacts and shared
// by all analysis runs; each run owns its own CandidateProfile and result.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/classifier"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extractor"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/proficiency"
	"github.com/jonathan/resume-analyzer/internal/recommend"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/segmenter"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Engine is the shared, read-only analysis pipeline.
type Engine struct {
	tax   *taxonomy.Taxonomy
	roles map[string]types.RoleProfile
	model classifier.Model
	seg   *segmenter.Segmenter
	ext   *extractor.Extractor
	topK  int
}

// New loads every configuration artifact and verifies they are mutually
// consistent. Any failure here is fatal: the engine must not start with a
// taxonomy, role set and model that disagree.
func New(cfg *config.Config) (*Engine, error) {
	patterns, err := extractor.LoadPatterns(cfg.PatternsPath)
	if err != nil {
		return nil, fmt.Errorf("loading patterns: %w", err)
	}

	tax, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("loading taxonomy: %w", err)
	}

	roleProfiles, err := roles.Load(cfg.RolesPath)
	if err != nil {
		return nil, fmt.Errorf("loading roles: %w", err)
	}

	model, features, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	if err := classifier.CheckShape(features, tax.Names()); err != nil {
		return nil, fmt.Errorf("model/taxonomy shape check: %w", err)
	}
	for _, class := range model.Classes() {
		if _, ok := roleProfiles[class]; !ok {
			return nil, fmt.Errorf("model class %q has no role profile", class)
		}
	}

	e := &Engine{
		tax:   tax,
		roles: roleProfiles,
		model: model,
		seg:   segmenter.New(patterns.Lexicon()),
		ext:   extractor.New(tax, patterns),
		topK:  cfg.TopK,
	}

	logger.Info().
		Int("taxonomy_entries", tax.Len()).
		Int("roles", len(roleProfiles)).
		Int("model_classes", len(model.Classes())).
		Int("top_k", e.topK).
		Msg("engine initialized")

	return e, nil
}

// Analyze runs the full pipeline over one resume's plain text. It never fails
// on malformed resume content — extraction degrades to empty fields — and
// only returns an error when the classifier rejects the encoded vector, which
// indicates broken configuration, not a bad resume.
func (e *Engine) Analyze(ctx context.Context, text string) (*types.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()

	raw := ingestion.Normalize(text)
	sections := e.seg.Segment(raw.Original)
	extraction := e.ext.Extract(sections, raw)

	profile := e.buildProfile(extraction)

	levels := make(map[string]int, len(profile.Skills))
	for _, s := range profile.Skills {
		levels[s.Skill.Name] = s.Proficiency
	}

	probabilities, err := e.model.Predict(e.tax.Vector(levels))
	if err != nil {
		return nil, fmt.Errorf("classifier rejected input: %w", err)
	}

	ranked := recommend.Rank(probabilities, e.model.Classes(), e.roles, levels)
	selected := recommend.TopK(ranked, e.topK)
	recommendations := recommend.Compose(selected, levels)

	result := &types.AnalysisResult{
		RunID:           runID,
		ExtractedData:   composeExtractedData(profile),
		Recommendations: recommendations,
		ProfileSummary:  composeProfileSummary(profile),
	}

	logger.Info().
		Str("run_id", runID).
		Int("sections", len(sections)).
		Int("skills", len(profile.Skills)).
		Int("experience_entries", len(profile.Experience)).
		Int("recommendations", len(recommendations)).
		Msg("analysis complete")

	return result, nil
}

// buildProfile canonicalizes skill mentions against the taxonomy, merges
// duplicates, and scores proficiency. Iteration follows taxonomy order so
// identical input always yields an identical profile.
func (e *Engine) buildProfile(extraction extractor.Extraction) *types.CandidateProfile {
	merged := make(map[string][]types.SkillMention)
	for _, mention := range extraction.Mentions {
		entry, ok := e.tax.Match(mention.RawToken)
		if !ok {
			continue // unknown token: not part of taxonomy-bounded scoring
		}
		merged[entry.Name] = append(merged[entry.Name], mention)
	}

	var skills []types.SkillInstance
	for _, entry := range e.tax.Entries() {
		mentions, ok := merged[entry.Name]
		if !ok {
			continue
		}
		skills = append(skills, types.SkillInstance{
			Skill:       entry,
			Proficiency: proficiency.Score(mentions, extraction.Experience),
			Mentions:    len(mentions),
			Confidence:  proficiency.Confidence(len(mentions)),
		})
	}

	// Strongest first; name breaks ties.
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Proficiency != skills[j].Proficiency {
			return skills[i].Proficiency > skills[j].Proficiency
		}
		return skills[i].Skill.Name < skills[j].Skill.Name
	})

	return &types.CandidateProfile{
		Contact:    extraction.Contact,
		Summary:    extraction.Summary,
		Skills:     skills,
		Experience: extraction.Experience,
		Education:  extraction.Education,
	}
}

func composeExtractedData(profile *types.CandidateProfile) types.ExtractedData {
	data := types.ExtractedData{
		Contact:    profile.Contact,
		Summary:    summarize(profile.Summary),
		Experience: profile.Experience,
		Education:  profile.Education,
	}
	if data.Experience == nil {
		data.Experience = []types.ExperienceEntry{}
	}
	if data.Education == nil {
		data.Education = []types.EducationEntry{}
	}

	data.Skills.Technical = []types.SkillOutput{}
	data.Skills.Soft = []types.SkillOutput{}
	for _, s := range profile.Skills {
		out := types.SkillOutput{
			Name:        s.Skill.Name,
			Proficiency: s.Proficiency,
			Confidence:  s.Confidence,
		}
		if s.Skill.Category == types.CategorySoft {
			data.Skills.Soft = append(data.Skills.Soft, out)
		} else {
			data.Skills.Technical = append(data.Skills.Technical, out)
		}
	}

	return data
}

func composeProfileSummary(profile *types.CandidateProfile) types.ProfileSummary {
	summary := types.ProfileSummary{
		TotalSkills:     len(profile.Skills),
		ExperienceCount: len(profile.Experience),
		EducationCount:  len(profile.Education),
	}
	for i, s := range profile.Skills {
		if i == 5 {
			break
		}
		summary.TopSkills = append(summary.TopSkills, s.Skill.Name)
	}
	return summary
}

// summarize truncates the summary block to its first few lines for output.
func summarize(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
