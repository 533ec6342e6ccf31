// Package matching scores accomplishments and library entries against a
// success profile, ranks them, and detects unmet requirements.
package matching

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/career-tailor/internal/types"
)

// Engine constants. These are fixed, not configurable per call: downstream
// output parity depends on them.
const (
	// minMatchScore is the lowest score an item may have and still appear
	// in the ranked matches.
	minMatchScore = 40
	// gapThreshold is the score a requirement's best item must reach to
	// avoid being recorded as a gap.
	gapThreshold = 60
	// maxMatches caps the ranked match list.
	maxMatches = 15
	// baselineScore is assigned to every item when the profile carries no
	// key themes.
	baselineScore = 50
)

// ItemScore is the per-item output of a scoring strategy.
type ItemScore struct {
	Score         int      // 0-100
	MatchedThemes []string // theme names with any overlap, in profile order
	Reasoning     string   // optional explanation (external strategy only)
}

// Scorer is the polymorphic scoring capability. Implementations must return
// exactly one ItemScore per input item, in input order.
type Scorer interface {
	ScoreItems(ctx context.Context, profile *types.SuccessProfile, items []types.MatchItem) ([]ItemScore, error)
}

// TagOverlapScorer is the deterministic strategy: an item's score is the
// maximum single-theme tag overlap across all themes, expressed 0-100.
type TagOverlapScorer struct{}

// NewTagOverlapScorer returns the deterministic tag-overlap scorer.
func NewTagOverlapScorer() *TagOverlapScorer {
	return &TagOverlapScorer{}
}

// ScoreItems scores every item against the profile's key themes.
func (s *TagOverlapScorer) ScoreItems(_ context.Context, profile *types.SuccessProfile, items []types.MatchItem) ([]ItemScore, error) {
	scores := make([]ItemScore, 0, len(items))
	for i := range items {
		scores = append(scores, scoreItem(&items[i], profile.KeyThemes))
	}
	return scores, nil
}

// scoreItem computes the maximum theme overlap for one item. With no themes
// every item receives the fixed baseline score.
func scoreItem(item *types.MatchItem, themes []types.KeyTheme) ItemScore {
	if len(themes) == 0 {
		return ItemScore{Score: baselineScore}
	}

	best := 0.0
	var matched []string
	for _, theme := range themes {
		overlap := themeOverlap(item.Tags, theme.Tags)
		if overlap > 0 {
			matched = append(matched, theme.Theme)
		}
		if overlap > best {
			best = overlap
		}
	}

	return ItemScore{
		Score:         int(math.Round(best * 100)),
		MatchedThemes: matched,
	}
}

// themeOverlap returns |item.tags intersect theme.tags| / |theme.tags|.
func themeOverlap(itemTags, themeTags []string) float64 {
	if len(themeTags) == 0 {
		return 0
	}
	hits := 0
	for _, themeTag := range themeTags {
		for _, itemTag := range itemTags {
			if tagsMatch(itemTag, themeTag) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(themeTags))
}

// tagsMatch reports whether two tags match: case-insensitive, and tolerant
// of either tag containing the other as a substring.
func tagsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
