// Package types provides type definitions for structured data used throughout the career-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SuccessProfile represents the structured statement of what a target role requires.
type SuccessProfile struct {
	TargetCompany string     `json:"target_company,omitempty"`
	TargetRole    string     `json:"target_role,omitempty"`
	MustHave      []string   `json:"must_have" validate:"required"`
	NiceToHave    []string   `json:"nice_to_have,omitempty"`
	KeyThemes     []KeyTheme `json:"key_themes,omitempty" validate:"omitempty,dive"`
}

// KeyTheme is a named cluster of tags representing one aspect of a job's requirements.
type KeyTheme struct {
	Theme string   `json:"theme" validate:"required,min=1"`
	Tags  []string `json:"tags" validate:"required,min=1"`
}

// Validate checks the structural invariants of a success profile.
// MustHave may be empty (no gaps can then be computed), but every theme
// present must carry a non-empty tag list.
func (p *SuccessProfile) Validate() error {
	if p == nil {
		return fmt.Errorf("success profile is nil")
	}
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	for i, theme := range p.KeyThemes {
		if theme.Theme == "" {
			return fmt.Errorf("key_themes[%d].theme must not be empty", i)
		}
		if len(theme.Tags) == 0 {
			return fmt.Errorf("key_themes[%d].tags must not be empty", i)
		}
	}
	return nil
}
