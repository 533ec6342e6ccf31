// Package matching scores accomplishments and library entries against a
// success profile, ranks them, and detects unmet requirements.
package matching

import (
	"context"
	"sort"
	"strings"

	"github.com/jonathan/career-tailor/internal/types"
)

// Engine ranks matching-eligible items against a success profile. The scoring
// strategy is fixed at construction time.
type Engine struct {
	scorer Scorer
}

// NewEngine creates a matching engine using the given scoring strategy.
func NewEngine(scorer Scorer) *Engine {
	return &Engine{scorer: scorer}
}

// Match scores the items, ranks them, and computes coverage gaps.
// It either returns a complete result or a typed error, never a partial
// result. An empty item set is a successful empty-match result where every
// must-have requirement becomes a zero-score gap.
func (e *Engine) Match(ctx context.Context, profile *types.SuccessProfile, items []types.MatchItem) (*types.MatchResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, &ValidationError{Field: "profile", Message: "invalid success profile", Cause: err}
	}

	if len(items) == 0 {
		gaps := make([]types.Gap, 0, len(profile.MustHave))
		for _, req := range profile.MustHave {
			gaps = append(gaps, types.Gap{Requirement: req})
		}
		return &types.MatchResult{
			Matches: []types.RankedMatch{},
			Gaps:    gaps,
			Summary: types.MatchSummary{GapCount: len(gaps)},
		}, nil
	}

	scores, err := e.scorer.ScoreItems(ctx, profile, items)
	if err != nil {
		if _, ok := err.(*ScoringUnavailableError); ok {
			return nil, err
		}
		return nil, &ScoringUnavailableError{Message: "scoring strategy failed", Cause: err}
	}
	if len(scores) != len(items) {
		return nil, &ScoringUnavailableError{Message: "scorer returned an incomplete score set"}
	}

	scored := make([]types.RankedMatch, 0, len(items))
	for i, item := range items {
		scored = append(scored, types.RankedMatch{
			ItemID:         item.ID,
			ItemType:       item.ItemType,
			IsLibraryEntry: item.IsLibraryEntry,
			Text:           item.Text,
			Company:        item.Company,
			Title:          item.Title,
			Location:       item.Location,
			StartDate:      item.StartDate,
			EndDate:        item.EndDate,
			RoleSummary:    item.RoleSummary,
			Score:          scores[i].Score,
			MatchedThemes:  scores[i].MatchedThemes,
			Reasoning:      scores[i].Reasoning,
		})
	}

	gaps := detectGaps(profile, scored)
	matches := rankAndFilter(scored)

	return &types.MatchResult{
		Matches: matches,
		Gaps:    gaps,
		Summary: summarize(scored, gaps),
	}, nil
}

// rankAndFilter discards items below the minimum score, sorts descending by
// score (stable, preserving input order on ties) and truncates to the cap.
func rankAndFilter(scored []types.RankedMatch) []types.RankedMatch {
	matches := make([]types.RankedMatch, 0, len(scored))
	for _, m := range scored {
		if m.Score >= minMatchScore {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// detectGaps records one gap per must-have requirement whose best matching
// item scores below the gap threshold. An item matches a requirement when one
// of its matched themes covers it: the theme name, or any tag of that theme,
// contains the requirement string (or vice versa), case-insensitive. A
// requirement appears in at most one gap.
func detectGaps(profile *types.SuccessProfile, scored []types.RankedMatch) []types.Gap {
	themeTags := make(map[string][]string, len(profile.KeyThemes))
	for _, theme := range profile.KeyThemes {
		themeTags[strings.ToLower(theme.Theme)] = theme.Tags
	}

	gaps := make([]types.Gap, 0)
	for _, req := range profile.MustHave {
		bestScore := 0
		var bestText *string
		for i := range scored {
			if !themesCoverRequirement(scored[i].MatchedThemes, themeTags, req) {
				continue
			}
			if scored[i].Score > bestScore || bestText == nil {
				bestScore = scored[i].Score
				bestText = &scored[i].Text
			}
		}
		if bestScore < gapThreshold {
			gaps = append(gaps, types.Gap{
				Requirement:  req,
				BestScore:    bestScore,
				BestItemText: bestText,
			})
		}
	}
	return gaps
}

// themesCoverRequirement reports whether any matched theme covers the
// requirement, either through its name or through one of its tags.
func themesCoverRequirement(themes []string, themeTags map[string][]string, requirement string) bool {
	req := strings.ToLower(strings.TrimSpace(requirement))
	if req == "" {
		return false
	}
	for _, theme := range themes {
		th := strings.ToLower(strings.TrimSpace(theme))
		if th == "" {
			continue
		}
		if strings.Contains(th, req) || strings.Contains(req, th) {
			return true
		}
		for _, tag := range themeTags[th] {
			if tagsMatch(tag, req) {
				return true
			}
		}
	}
	return false
}

// summarize computes the aggregate counts over every scored item, not just
// the ranked survivors, keeping the quality buckets consistent with TotalItems
// regardless of the filter and cap.
func summarize(scored []types.RankedMatch, gaps []types.Gap) types.MatchSummary {
	summary := types.MatchSummary{
		TotalItems: len(scored),
		GapCount:   len(gaps),
	}
	for _, m := range scored {
		switch {
		case m.Score >= 80:
			summary.StrongMatches++
		case m.Score >= 60:
			summary.GoodMatches++
		}
	}
	return summary
}
