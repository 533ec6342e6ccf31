package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessProfileValidate_Valid(t *testing.T) {
	profile := &SuccessProfile{
		TargetCompany: "Acme",
		TargetRole:    "Engineer",
		MustHave:      []string{"Python"},
		KeyThemes: []KeyTheme{
			{Theme: "Technical", Tags: []string{"python", "api"}},
		},
	}

	assert.NoError(t, profile.Validate())
}

func TestSuccessProfileValidate_EmptyMustHaveAllowed(t *testing.T) {
	profile := &SuccessProfile{MustHave: []string{}}

	assert.NoError(t, profile.Validate())
}

func TestSuccessProfileValidate_NilProfile(t *testing.T) {
	var profile *SuccessProfile

	assert.Error(t, profile.Validate())
}

func TestSuccessProfileValidate_ThemeWithoutTags(t *testing.T) {
	profile := &SuccessProfile{
		MustHave:  []string{"Python"},
		KeyThemes: []KeyTheme{{Theme: "Technical"}},
	}

	assert.Error(t, profile.Validate())
}

func TestSuccessProfileValidate_EmptyThemeName(t *testing.T) {
	profile := &SuccessProfile{
		MustHave:  []string{"Python"},
		KeyThemes: []KeyTheme{{Theme: "", Tags: []string{"python"}}},
	}

	assert.Error(t, profile.Validate())
}
