package types

// SkillOutput is one skill in the composed result, carrying the name and the
// proficiency estimate that backed the recommendation scoring.
type SkillOutput struct {
	Name        string  `json:"name"`
	Proficiency int     `json:"proficiency_score"`
	Confidence  float64 `json:"confidence"`
}

// ExtractedSkills splits the candidate's skills by taxonomy category.
type ExtractedSkills struct {
	Technical []SkillOutput `json:"technical"`
	Soft      []SkillOutput `json:"soft"`
}

// ExtractedData is the structured view of everything parsed out of the resume.
type ExtractedData struct {
	Contact    Contact           `json:"contact"`
	Summary    string            `json:"summary,omitempty"`
	Skills     ExtractedSkills   `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
}

// SkillMatch is one required skill compared against the candidate's level.
// UserLevel is 0 only for missing skills.
type SkillMatch struct {
	Skill         string `json:"skill"`
	UserLevel     int    `json:"user_level"`
	RequiredLevel int    `json:"required_level"`
}

// SkillMatchDetails partitions a role's required skills into the three gap
// buckets. The buckets are pairwise disjoint and together cover exactly the
// role's required skill list.
type SkillMatchDetails struct {
	MatchedSkills []SkillMatch `json:"matched_skills"`
	WeakSkills    []SkillMatch `json:"weak_skills"`
	MissingSkills []SkillMatch `json:"missing_skills"`
}

// RoleRef identifies the recommended role in composed output.
type RoleRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Recommendation is one ranked role recommendation with its gap analysis.
// Recomputed per request, never mutated after creation.
type Recommendation struct {
	Role                  RoleRef           `json:"role"`
	SuitabilityPercentage int               `json:"suitability_percentage"`
	MatchExplanation      string            `json:"match_explanation"`
	SkillMatchDetails     SkillMatchDetails `json:"skill_match_details"`
}

// ProfileSummary carries aggregate counts surfaced alongside recommendations.
type ProfileSummary struct {
	TotalSkills     int      `json:"total_skills"`
	ExperienceCount int      `json:"experience_count"`
	EducationCount  int      `json:"education_count"`
	TopSkills       []string `json:"top_skills,omitempty"`
}

// AnalysisResult is the full composed output of one analysis run.
type AnalysisResult struct {
	RunID           string           `json:"run_id"`
	ExtractedData   ExtractedData    `json:"extracted_data"`
	Recommendations []Recommendation `json:"recommendations"`
	ProfileSummary  ProfileSummary   `json:"profile_summary"`
}
