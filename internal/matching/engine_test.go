package matching

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-tailor/internal/types"
)

// stubScorer returns canned scores or a canned error.
type stubScorer struct {
	scores []ItemScore
	err    error
}

func (s *stubScorer) ScoreItems(_ context.Context, _ *types.SuccessProfile, _ []types.MatchItem) ([]ItemScore, error) {
	return s.scores, s.err
}

func testProfile() *types.SuccessProfile {
	return &types.SuccessProfile{
		TargetCompany: "Acme",
		TargetRole:    "Engineer",
		MustHave:      []string{"Python"},
		KeyThemes: []types.KeyTheme{
			{Theme: "Technical", Tags: []string{"python", "api"}},
		},
	}
}

func TestMatch_RejectsInvalidProfile(t *testing.T) {
	engine := NewEngine(NewTagOverlapScorer())
	profile := &types.SuccessProfile{
		MustHave:  []string{"Python"},
		KeyThemes: []types.KeyTheme{{Theme: "Technical", Tags: nil}},
	}

	result, err := engine.Match(context.Background(), profile, []types.MatchItem{{ID: "a"}})

	require.Error(t, err)
	assert.Nil(t, result)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestMatch_EmptyItemsIsSuccessWithGaps(t *testing.T) {
	engine := NewEngine(NewTagOverlapScorer())
	profile := testProfile()
	profile.MustHave = []string{"Python", "AWS"}

	result, err := engine.Match(context.Background(), profile, nil)

	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	require.Len(t, result.Gaps, 2)
	assert.Equal(t, "Python", result.Gaps[0].Requirement)
	assert.Equal(t, 0, result.Gaps[0].BestScore)
	assert.Nil(t, result.Gaps[0].BestItemText)
	assert.Equal(t, 2, result.Summary.GapCount)
	assert.Equal(t, 0, result.Summary.TotalItems)
}

func TestMatch_ScorerFailureAbortsWholeCall(t *testing.T) {
	engine := NewEngine(&stubScorer{err: errors.New("boom")})

	result, err := engine.Match(context.Background(), testProfile(), []types.MatchItem{{ID: "a"}})

	require.Error(t, err)
	assert.Nil(t, result)
	var sue *ScoringUnavailableError
	assert.ErrorAs(t, err, &sue)
}

func TestMatch_IncompleteScoreSetIsAnError(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{{Score: 90}}})
	items := []types.MatchItem{{ID: "a"}, {ID: "b"}}

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestMatch_FiltersBelowMinimumScore(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{
		{Score: 40},
		{Score: 39},
	}})
	items := []types.MatchItem{
		{ID: "keep", Text: "kept"},
		{ID: "drop", Text: "dropped"},
	}

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "keep", result.Matches[0].ItemID)
}

func TestMatch_SortsDescendingPreservingInputOrderOnTies(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{
		{Score: 70},
		{Score: 90},
		{Score: 70},
	}})
	items := []types.MatchItem{
		{ID: "first-70"},
		{ID: "ninety"},
		{ID: "second-70"},
	}

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	require.Len(t, result.Matches, 3)
	assert.Equal(t, "ninety", result.Matches[0].ItemID)
	assert.Equal(t, "first-70", result.Matches[1].ItemID)
	assert.Equal(t, "second-70", result.Matches[2].ItemID)
}

func TestMatch_CapsRankedMatches(t *testing.T) {
	var scores []ItemScore
	var items []types.MatchItem
	for i := 0; i < 20; i++ {
		scores = append(scores, ItemScore{Score: 100 - i})
		items = append(items, types.MatchItem{ID: fmt.Sprintf("item-%d", i)})
	}
	engine := NewEngine(&stubScorer{scores: scores})

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	assert.Len(t, result.Matches, maxMatches)
	assert.Equal(t, "item-0", result.Matches[0].ItemID)
	assert.Equal(t, "item-14", result.Matches[len(result.Matches)-1].ItemID)
}

func TestMatch_SummaryCountsAllScoredItemsDespiteCap(t *testing.T) {
	// 20 strong items: the ranked list caps at 15 but the summary buckets
	// still count every scored item.
	var scores []ItemScore
	var items []types.MatchItem
	for i := 0; i < 20; i++ {
		scores = append(scores, ItemScore{Score: 100 - i, MatchedThemes: []string{"Technical"}})
		items = append(items, types.MatchItem{ID: fmt.Sprintf("item-%d", i)})
	}
	engine := NewEngine(&stubScorer{scores: scores})

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	assert.Len(t, result.Matches, maxMatches)
	assert.Equal(t, 20, result.Summary.TotalItems)
	assert.Equal(t, 20, result.Summary.StrongMatches)
	assert.Equal(t, 0, result.Summary.GoodMatches)
}

func TestMatch_GapRecordedWhenBestScoreBelowThreshold(t *testing.T) {
	// An item half-covers the Technical theme (score 50). "Python" is a tag
	// of that theme, so the requirement is attributed, but 50 < 60 leaves
	// it a gap carrying the best item's text.
	engine := NewEngine(NewTagOverlapScorer())
	items := []types.MatchItem{
		{ID: "a", Text: "Built a REST API", Tags: []string{"api"}},
	}

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	require.Len(t, result.Gaps, 1)
	gap := result.Gaps[0]
	assert.Equal(t, "Python", gap.Requirement)
	assert.Equal(t, 50, gap.BestScore)
	require.NotNil(t, gap.BestItemText)
	assert.Equal(t, "Built a REST API", *gap.BestItemText)
}

func TestMatch_NoGapAtThreshold(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{
		{Score: 60, MatchedThemes: []string{"Technical"}},
	}})
	items := []types.MatchItem{{ID: "a", Text: "Shipped Python services"}}

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	assert.Empty(t, result.Gaps)
	assert.Equal(t, 0, result.Summary.GapCount)
}

func TestMatch_GapWhenNoItemCoversRequirement(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{
		{Score: 95, MatchedThemes: []string{"Technical"}},
	}})
	profile := testProfile()
	profile.MustHave = []string{"Kubernetes"}
	items := []types.MatchItem{{ID: "a", Text: "Python work"}}

	result, err := engine.Match(context.Background(), profile, items)

	require.NoError(t, err)
	require.Len(t, result.Gaps, 1)
	assert.Equal(t, "Kubernetes", result.Gaps[0].Requirement)
	assert.Equal(t, 0, result.Gaps[0].BestScore)
	assert.Nil(t, result.Gaps[0].BestItemText)
}

func TestMatch_RequirementAttributedThroughThemeName(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{
		{Score: 45, MatchedThemes: []string{"Leadership"}},
	}})
	profile := &types.SuccessProfile{
		MustHave: []string{"Leadership"},
		KeyThemes: []types.KeyTheme{
			{Theme: "Leadership", Tags: []string{"mentoring"}},
		},
	}
	items := []types.MatchItem{{ID: "a", Text: "Mentored juniors"}}

	result, err := engine.Match(context.Background(), profile, items)

	require.NoError(t, err)
	require.Len(t, result.Gaps, 1)
	assert.Equal(t, 45, result.Gaps[0].BestScore)
	require.NotNil(t, result.Gaps[0].BestItemText)
	assert.Equal(t, "Mentored juniors", *result.Gaps[0].BestItemText)
}

func TestMatch_SummaryCounts(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{
		{Score: 85, MatchedThemes: []string{"Technical"}},
		{Score: 70, MatchedThemes: []string{"Technical"}},
		{Score: 45, MatchedThemes: []string{"Technical"}},
		{Score: 10},
	}})
	items := []types.MatchItem{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	assert.Equal(t, 4, result.Summary.TotalItems)
	assert.Equal(t, 1, result.Summary.StrongMatches)
	assert.Equal(t, 1, result.Summary.GoodMatches)
	assert.Empty(t, result.Gaps)
	assert.Len(t, result.Matches, 3)
}

func TestMatch_CarriesDisplayFieldsThrough(t *testing.T) {
	engine := NewEngine(&stubScorer{scores: []ItemScore{
		{Score: 88, MatchedThemes: []string{"Technical"}, Reasoning: "strong"},
	}})
	items := []types.MatchItem{{
		ID:        "a",
		ItemType:  types.ItemTypeAccomplishment,
		Text:      "Built the thing",
		Company:   "Acme",
		Title:     "Engineer",
		Location:  "Remote",
		StartDate: "01/2020",
	}}

	result, err := engine.Match(context.Background(), testProfile(), items)

	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	m := result.Matches[0]
	assert.Equal(t, "a", m.ItemID)
	assert.Equal(t, "Acme", m.Company)
	assert.Equal(t, "Engineer", m.Title)
	assert.Equal(t, "Remote", m.Location)
	assert.Equal(t, "01/2020", m.StartDate)
	assert.Equal(t, 88, m.Score)
	assert.Equal(t, "strong", m.Reasoning)
}

func TestMatch_Idempotent(t *testing.T) {
	engine := NewEngine(NewTagOverlapScorer())
	items := []types.MatchItem{
		{ID: "a", Text: "x", Tags: []string{"python", "api"}},
		{ID: "b", Text: "y", Tags: []string{"api"}},
	}

	first, err := engine.Match(context.Background(), testProfile(), items)
	require.NoError(t, err)
	second, err := engine.Match(context.Background(), testProfile(), items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
