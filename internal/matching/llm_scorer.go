package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/career-tailor/internal/llm"
	"github.com/jonathan/career-tailor/internal/prompts"
	"github.com/jonathan/career-tailor/internal/types"
)

// scoreCallTimeout bounds a single external scoring call. A hung service must
// surface as a scoring-unavailable failure, never stall the whole match.
const scoreCallTimeout = 30 * time.Second

// LLMScorer is the external-reasoner strategy: scoring and reasoning text are
// delegated to a semantic-judgment service. It satisfies the same Scorer
// contract as the deterministic strategy; any service failure aborts the
// whole call with ScoringUnavailableError.
type LLMScorer struct {
	client  llm.Client
	timeout time.Duration
}

// NewLLMScorer creates an external-reasoner scorer over the given client.
func NewLLMScorer(client llm.Client) *LLMScorer {
	return &LLMScorer{client: client, timeout: scoreCallTimeout}
}

// llmScoreResponse is the expected JSON shape returned by the service.
type llmScoreResponse struct {
	Score         int      `json:"score"`
	MatchedThemes []string `json:"matched_themes"`
	Reasoning     string   `json:"reasoning"`
}

// ScoreItems scores each item via the external service. Timeouts and
// cancellation surface as ScoringUnavailableError; there is no partial result.
func (s *LLMScorer) ScoreItems(ctx context.Context, profile *types.SuccessProfile, items []types.MatchItem) ([]ItemScore, error) {
	scores := make([]ItemScore, 0, len(items))
	for i := range items {
		select {
		case <-ctx.Done():
			return nil, &ScoringUnavailableError{Message: "scoring cancelled", Cause: ctx.Err()}
		default:
		}

		score, err := s.scoreItem(ctx, profile, &items[i])
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, nil
}

func (s *LLMScorer) scoreItem(ctx context.Context, profile *types.SuccessProfile, item *types.MatchItem) (ItemScore, error) {
	prompt := buildScoringPrompt(profile, item)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	jsonResp, err := s.client.GenerateJSON(callCtx, prompt, llm.TierLite)
	if err != nil {
		message := "external scoring call failed"
		if errors.Is(err, context.DeadlineExceeded) {
			message = "external scoring call timed out"
		}
		return ItemScore{}, &ScoringUnavailableError{Message: message, Cause: err}
	}

	var resp llmScoreResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &resp); err != nil {
		return ItemScore{}, &ScoringUnavailableError{
			Message: fmt.Sprintf("failed to parse scoring response (content: %s)", jsonResp),
			Cause:   err,
		}
	}

	if resp.Score < 0 {
		resp.Score = 0
	}
	if resp.Score > 100 {
		resp.Score = 100
	}

	return ItemScore{
		Score:         resp.Score,
		MatchedThemes: resp.MatchedThemes,
		Reasoning:     resp.Reasoning,
	}, nil
}

// buildScoringPrompt constructs the judgment prompt for one item.
func buildScoringPrompt(profile *types.SuccessProfile, item *types.MatchItem) string {
	var themeLines []string
	for _, theme := range profile.KeyThemes {
		themeLines = append(themeLines, fmt.Sprintf("  - %s: %s", theme.Theme, strings.Join(theme.Tags, ", ")))
	}
	themesStr := strings.Join(themeLines, "\n")
	if themesStr == "" {
		themesStr = "  (none)"
	}

	mustHaveStr := strings.Join(profile.MustHave, ", ")
	if mustHaveStr == "" {
		mustHaveStr = "Not specified"
	}

	tagsStr := strings.Join(item.Tags, ", ")
	if tagsStr == "" {
		tagsStr = "(untagged)"
	}

	template := prompts.MustGet("matching.json", "score-item-relevance")
	return prompts.Format(template, map[string]string{
		"TargetCompany": profile.TargetCompany,
		"TargetRole":    profile.TargetRole,
		"MustHave":      mustHaveStr,
		"KeyThemes":     themesStr,
		"ItemText":      item.Text,
		"ItemTags":      tagsStr,
	})
}
