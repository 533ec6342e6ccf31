package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-tailor/internal/types"
)

func TestScoreItem_MaxOverlapNotAverage(t *testing.T) {
	// One theme fully covered, one not at all: score is the max (100), not
	// the average.
	item := types.MatchItem{Tags: []string{"python", "api"}}
	themes := []types.KeyTheme{
		{Theme: "Technical", Tags: []string{"python", "api"}},
		{Theme: "Leadership", Tags: []string{"mentoring", "hiring"}},
	}

	score := scoreItem(&item, themes)

	assert.Equal(t, 100, score.Score)
	assert.Equal(t, []string{"Technical"}, score.MatchedThemes)
}

func TestScoreItem_PartialOverlap(t *testing.T) {
	item := types.MatchItem{Tags: []string{"python"}}
	themes := []types.KeyTheme{
		{Theme: "Technical", Tags: []string{"python", "api"}},
	}

	score := scoreItem(&item, themes)

	assert.Equal(t, 50, score.Score)
	assert.Equal(t, []string{"Technical"}, score.MatchedThemes)
}

func TestScoreItem_RoundsToNearest(t *testing.T) {
	// 1 of 3 theme tags covered: 33.33 rounds to 33; 2 of 3: 66.67 rounds
	// to 67.
	themes := []types.KeyTheme{
		{Theme: "Technical", Tags: []string{"go", "sql", "aws"}},
	}

	one := types.MatchItem{Tags: []string{"go"}}
	two := types.MatchItem{Tags: []string{"go", "sql"}}

	assert.Equal(t, 33, scoreItem(&one, themes).Score)
	assert.Equal(t, 67, scoreItem(&two, themes).Score)
}

func TestScoreItem_BaselineWithoutThemes(t *testing.T) {
	item := types.MatchItem{Tags: []string{"anything"}}

	score := scoreItem(&item, nil)

	assert.Equal(t, baselineScore, score.Score)
	assert.Empty(t, score.MatchedThemes)
}

func TestScoreItem_NoOverlap(t *testing.T) {
	item := types.MatchItem{Tags: []string{"cooking"}}
	themes := []types.KeyTheme{
		{Theme: "Technical", Tags: []string{"python"}},
	}

	score := scoreItem(&item, themes)

	assert.Equal(t, 0, score.Score)
	assert.Empty(t, score.MatchedThemes)
}

func TestScoreItem_MatchedThemesInProfileOrder(t *testing.T) {
	item := types.MatchItem{Tags: []string{"python", "mentoring"}}
	themes := []types.KeyTheme{
		{Theme: "Leadership", Tags: []string{"mentoring"}},
		{Theme: "Technical", Tags: []string{"python", "api"}},
	}

	score := scoreItem(&item, themes)

	assert.Equal(t, []string{"Leadership", "Technical"}, score.MatchedThemes)
}

func TestTagsMatch_CaseInsensitiveSubstring(t *testing.T) {
	assert.True(t, tagsMatch("Python", "python"))
	assert.True(t, tagsMatch("python3", "python"))
	assert.True(t, tagsMatch("python", "python3"))
	assert.True(t, tagsMatch(" aws ", "AWS"))
	assert.False(t, tagsMatch("java", "go"))
	assert.False(t, tagsMatch("", "go"))
	assert.False(t, tagsMatch("go", ""))
}

func TestTagOverlapScorer_OneScorePerItem(t *testing.T) {
	profile := &types.SuccessProfile{
		MustHave: []string{"Go"},
		KeyThemes: []types.KeyTheme{
			{Theme: "Technical", Tags: []string{"go"}},
		},
	}
	items := []types.MatchItem{
		{ID: "a", Tags: []string{"go"}},
		{ID: "b", Tags: []string{"java"}},
		{ID: "c", Tags: nil},
	}

	scores, err := NewTagOverlapScorer().ScoreItems(context.Background(), profile, items)

	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 100, scores[0].Score)
	assert.Equal(t, 0, scores[1].Score)
	assert.Equal(t, 0, scores[2].Score)
}

func TestTagOverlapScorer_Deterministic(t *testing.T) {
	profile := &types.SuccessProfile{
		MustHave: []string{"Go"},
		KeyThemes: []types.KeyTheme{
			{Theme: "Technical", Tags: []string{"go", "sql"}},
		},
	}
	items := []types.MatchItem{
		{ID: "a", Tags: []string{"go"}},
		{ID: "b", Tags: []string{"sql", "go"}},
	}

	scorer := NewTagOverlapScorer()
	first, err := scorer.ScoreItems(context.Background(), profile, items)
	require.NoError(t, err)
	second, err := scorer.ScoreItems(context.Background(), profile, items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
