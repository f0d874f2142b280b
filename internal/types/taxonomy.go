package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillCategory partitions taxonomy entries into technical and soft skills.
type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
)

// TaxonomyEntry is one canonical skill in the fixed taxonomy. Entries are
// loaded once at process start and never modified at runtime; file order
// defines the positional encoding used by the classifier.
type TaxonomyEntry struct {
	Name     string        `json:"name" validate:"required,min=1"`
	Category SkillCategory `json:"category" validate:"required,oneof=technical soft"`
	Aliases  []string      `json:"aliases,omitempty"`
}

// TaxonomyFile is the on-disk shape of the taxonomy configuration artifact.
type TaxonomyFile struct {
	Version int             `json:"version" validate:"gte=1"`
	Skills  []TaxonomyEntry `json:"skills" validate:"required,min=1,dive"`
}

// Validate validates the taxonomy file using the struct validator.
func (f *TaxonomyFile) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}
