// Package types provides type definitions for structured data used throughout the career-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IntermediateResume is the transient, render-ready model recovered by parsing
// a markup document. It exists only in memory between parse and render.
type IntermediateResume struct {
	Name       string            `json:"name"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Location   string            `json:"location,omitempty"`
	LinkedIn   string            `json:"linkedin,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
}

// ExperienceEntry is one parsed experience group (company + title).
type ExperienceEntry struct {
	Company   string   `json:"company"`
	Title     string   `json:"title,omitempty"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry is one parsed education record.
type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Year   string `json:"year,omitempty"`
}
