package types

import (
	"github.com/go-playground/validator/v10"
)

// RequiredSkill is one skill a role calls for, with the minimum proficiency
// level expected and its weight in suitability scoring.
type RequiredSkill struct {
	Skill  string  `json:"skill" validate:"required,min=1"`
	Level  int     `json:"level" validate:"gte=1,lte=5"`
	Weight float64 `json:"weight" validate:"gt=0"`
}

// RoleProfile describes one job role the engine can recommend. Role profiles
// are loaded from configuration at startup and are read-only during scoring.
type RoleProfile struct {
	ID             string          `json:"id" validate:"required,min=1"`
	Title          string          `json:"title" validate:"required,min=1"`
	Category       string          `json:"category,omitempty"`
	Description    string          `json:"description,omitempty"`
	RequiredSkills []RequiredSkill `json:"required_skills" validate:"dive"`
}

// RolesFile is the on-disk shape of the job-role configuration artifact.
type RolesFile struct {
	Version  int           `json:"version" validate:"gte=1"`
	JobRoles []RoleProfile `json:"job_roles" validate:"required,min=1,dive"`
}

// Validate validates the roles file using the struct validator.
func (f *RolesFile) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}
