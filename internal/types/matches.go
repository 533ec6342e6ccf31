// Package types provides type definitions for structured data used throughout the career-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ItemTypeAccomplishment is the item type for role-owned accomplishments.
// Library entries carry their own category string (e.g. "project", "certification").
const ItemTypeAccomplishment = "accomplishment"

// MatchItem is a matching-eligible item presented to the engine: either a
// role accomplishment or a tagged library entry, flattened to the display
// fields a ranked match needs. For library entries Company holds the entry
// subtitle rather than an employer name.
type MatchItem struct {
	ID             string   `json:"id"`
	ItemType       string   `json:"item_type"`
	IsLibraryEntry bool     `json:"is_library_entry"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	Company        string   `json:"company,omitempty"`
	Title          string   `json:"title,omitempty"`
	Location       string   `json:"location,omitempty"`
	StartDate      string   `json:"start_date,omitempty"` // MM/YYYY
	EndDate        string   `json:"end_date,omitempty"`   // MM/YYYY or empty for current
	RoleSummary    string   `json:"role_summary,omitempty"`
}

// RankedMatch is a scored item produced by the matching engine. Created fresh
// per matching call; persisted only embedded in a generated resume's markup.
type RankedMatch struct {
	ItemID         string   `json:"item_id"`
	ItemType       string   `json:"item_type"`
	IsLibraryEntry bool     `json:"is_library_entry"`
	Text           string   `json:"text"`
	Company        string   `json:"company,omitempty"`
	Title          string   `json:"title,omitempty"`
	Location       string   `json:"location,omitempty"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	RoleSummary    string   `json:"role_summary,omitempty"`
	Score          int      `json:"score"` // 0-100
	MatchedThemes  []string `json:"matched_themes"`
	Reasoning      string   `json:"reasoning,omitempty"`
}

// Gap is a must-have requirement with no sufficiently strong matching item.
// BestItemText is nil when no item matched the requirement at all.
type Gap struct {
	Requirement  string  `json:"requirement"`
	BestScore    int     `json:"best_score"`
	BestItemText *string `json:"best_item_text"`
}

// MatchSummary aggregates counts over a match result.
type MatchSummary struct {
	TotalItems    int `json:"total_items"`
	StrongMatches int `json:"strong_matches"` // score >= 80
	GoodMatches   int `json:"good_matches"`   // score 60-79
	GapCount      int `json:"gap_count"`
}

// MatchResult is the complete output of a matching call.
type MatchResult struct {
	Matches []RankedMatch `json:"matches"`
	Gaps    []Gap         `json:"gaps"`
	Summary MatchSummary  `json:"summary"`
}
