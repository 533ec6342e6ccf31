// Package structure resolves the section plan and contact-field set used
// when synthesizing a resume, from saved preferences or defaults.
package structure

import "github.com/jonathan/career-tailor/internal/types"

// DefaultContactFields is the contact-field set used before a user confirms
// a structure of their own.
var DefaultContactFields = []string{"name", "email", "phone", "location", "linkedin"}

// DefaultStructure returns the default four-section plan.
func DefaultStructure() types.ResumeStructure {
	return types.ResumeStructure{
		ContactFields: append([]string(nil), DefaultContactFields...),
		Sections: []types.Section{
			{Type: types.SectionSummary, Label: "Summary"},
			{Type: types.SectionExperience, Label: "Professional Experience"},
			{Type: types.SectionSkill, Label: "Skills"},
			{Type: types.SectionEducation, Label: "Education"},
		},
		IncludeRoleSummaries: false,
	}
}

// Resolve returns the saved structure verbatim when one exists, or the
// default plan otherwise. The second return value reports whether the
// returned structure has been confirmed by the user; the confirmation
// workflow itself belongs to the caller. Saved structures may contain
// non-standard section types naming library-entry categories; those are
// resolved against matched entries at synthesis time, not here.
func Resolve(saved *types.ResumeStructure) (types.ResumeStructure, bool) {
	if saved == nil {
		return DefaultStructure(), false
	}
	return *saved, true
}
