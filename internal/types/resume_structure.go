// Package types provides type definitions for structured data used throughout the career-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Standard section types. Any other value names a library-entry category
// (e.g. "project") resolved against matched library entries at synthesis time.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionSkill      = "skill"
	SectionEducation  = "education"
)

// Section is one ordered entry of a resume structure.
type Section struct {
	Type  string `json:"type" validate:"required,min=1"`
	Label string `json:"label" validate:"required,min=1"`
}

// ResumeStructure describes the section ordering, labels and contact-field
// set used when synthesizing a resume. One per user; created lazily on first
// confirmed generation and mutated only by explicit update.
type ResumeStructure struct {
	ContactFields        []string  `json:"contact_fields" validate:"required,min=1"`
	Sections             []Section `json:"sections" validate:"required,min=1,dive"`
	IncludeRoleSummaries bool      `json:"include_role_summaries"`
}

// GeneratedResume is one generated resume document. Markup is immutable after
// creation; RenderedPath is set exactly once when rendering succeeds.
type GeneratedResume struct {
	ID            string `json:"id"`
	TargetCompany string `json:"target_company"`
	TargetRole    string `json:"target_role"`
	Markup        string `json:"markup"`
	RenderedPath  string `json:"rendered_path,omitempty"`
}
