// Package types provides type definitions for structured data used throughout the career-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role represents an employment role owning an ordered collection of accomplishments.
type Role struct {
	ID              string           `json:"id"`
	Company         string           `json:"company"`
	Title           string           `json:"title"`
	Location        string           `json:"location,omitempty"`
	StartDate       string           `json:"start_date"` // MM/YYYY
	EndDate         string           `json:"end_date,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	Accomplishments []Accomplishment `json:"accomplishments"`
}

// Accomplishment is a single dated, tagged bullet of work history tied to a role.
// Identity is immutable; text and tags may change.
type Accomplishment struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

// LibraryEntry is a non-role artifact (project, certification, award, etc.).
// Only entries with at least one tag are matching-eligible.
type LibraryEntry struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Date     string   `json:"date,omitempty"`
	Location string   `json:"location,omitempty"`
	URL      string   `json:"url,omitempty"`
	Bullets  []string `json:"bullets"`
	Tags     []string `json:"tags"`
}

// Skill is a named skill with an optional category used for grouping.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Education is a single education record.
type Education struct {
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// Contact holds the contact details rendered into the resume header.
type Contact struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
}
