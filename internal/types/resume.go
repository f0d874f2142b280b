// Package types provides type definitions for structured data used throughout the resume-analyzer engine.
package types

// SectionType identifies the kind of resume section a block of text belongs to.
type SectionType string

const (
	SectionSummary    SectionType = "summary"
	SectionSkills     SectionType = "skills"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionOther      SectionType = "other"
)

// RawResumeText holds both the original resume text (line structure and casing
// preserved) and a normalized form (lower-cased, whitespace-collapsed) used for
// document-level skill scanning. Immutable once produced.
type RawResumeText struct {
	Original   string
	Normalized string
}

// Section is one labeled block of resume text, produced by the segmenter.
// A resume may contain zero or more sections of each type; unclassified text
// collapses into SectionOther.
type Section struct {
	Type     SectionType `json:"type"`
	Header   string      `json:"header,omitempty"` // the header line that opened the section, if any
	RawBlock string      `json:"raw_block"`
}

// SkillMention is a single detected occurrence of a skill token in the resume.
// Mentions are transient: they feed the taxonomy matcher and proficiency
// scorer and are never part of the composed result.
type SkillMention struct {
	RawToken      string
	SourceSection SectionType
	Context       string // surrounding text used as proficiency evidence
}

// ExperienceEntry is one extracted work-history item. StartDate/EndDate use
// "YYYY-MM" form; EndDate is "present" for open-ended ranges. A malformed date
// range leaves both dates empty with DurationMonths 0 — the entry itself is
// still retained.
type ExperienceEntry struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	DurationMonths int    `json:"duration_months"`
}

// EducationEntry is one extracted education item. Year holds a plausible
// 4-digit year when one was found; otherwise Period keeps the raw trailing
// text uninterpreted.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
	Period      string `json:"period,omitempty"`
}

// Contact holds contact details pulled from the resume header area.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SkillInstance is one canonical skill attributed to the candidate with its
// estimated proficiency. At most one instance exists per canonical skill per
// resume; mentions are merged before scoring.
type SkillInstance struct {
	Skill       TaxonomyEntry
	Proficiency int     // 1..5, never 0 for a matched skill
	Mentions    int     // distinct mention count across the document
	Confidence  float64 // derived from mention count
}

// CandidateProfile is the aggregate parsing output for one resume. It is owned
// by a single analysis run and must not be mutated after construction.
type CandidateProfile struct {
	Contact    Contact
	Summary    string
	Skills     []SkillInstance
	Experience []ExperienceEntry
	Education  []EducationEntry
}

// SkillLevel returns the candidate's proficiency for a canonical skill name,
// or 0 when the skill is absent. The 0 level is only meaningful for gap
// comparison; matched skills always score at least 1.
func (p *CandidateProfile) SkillLevel(canonical string) int {
	for _, s := range p.Skills {
		if s.Skill.Name == canonical {
			return s.Proficiency
		}
	}
	return 0
}
