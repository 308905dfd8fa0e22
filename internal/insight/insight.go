// ABOUTME: Insight client that turns check-in context into wellness text via Gemini.
// ABOUTME: Every outcome, including failure, is returned as a uniform Response.
package insight

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/harperreed/velamind/internal/models"
)

// User-facing messages.
const (
	MsgMissingKey        = "API key not configured. Please add GEMINI_API_KEY to your environment or .env file."
	MsgMissingKeyShort   = "API key not configured."
	MsgUnableInsight     = "Unable to generate insight. Please try again."
	MsgFailedInsight     = "Failed to generate insight. Please check your internet connection and try again."
	MsgNotEnoughData     = "Not enough data yet. Keep logging your mood to see patterns!"
	MsgUnablePatterns    = "Unable to analyze patterns."
	MsgFailedPatterns    = "Failed to analyze patterns. Please try again later."
	ErrTextMissingAPIKey = "Missing API key"
)

// DefaultUserName is used in prompts when no profile name is known.
const DefaultUserName = "Friend"

// ErrNoText is returned by a Generator when the reply carries no text.
var ErrNoText = errors.New("response contained no text")

// Response is the normalized result of an insight request.
type Response struct {
	Text    string `json:"text"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Generator performs exactly one text-generation round trip.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client builds prompts and normalizes generator results.
type Client struct {
	apiKey string
	gen    Generator
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for failed requests.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client. With an empty apiKey the generator is never called.
func NewClient(apiKey string, gen Generator, opts ...Option) *Client {
	c := &Client{apiKey: apiKey, gen: gen, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != "" && c.gen != nil
}

// GenerateWellnessInsight asks for a short supportive insight about the
// current check-in. mood10 and recentMoods are on the 1-10 scale.
func (c *Client) GenerateWellnessInsight(ctx context.Context, mood10 float64, journalContext, goal string, recentMoods []float64) Response {
	if !c.HasKey() {
		return Response{Text: MsgMissingKey, Success: false, Error: ErrTextMissingAPIKey}
	}

	text, err := c.gen.Generate(ctx, wellnessPrompt(mood10, journalContext, goal, recentMoods))
	switch {
	case errors.Is(err, ErrNoText):
		c.logger.Warn("insight response had no text")
		return Response{Text: MsgUnableInsight, Success: false}
	case err != nil:
		c.logger.Warn("insight request failed", zap.Error(err))
		return Response{Text: MsgFailedInsight, Success: false, Error: err.Error()}
	case text == "":
		return Response{Text: MsgUnableInsight, Success: false}
	}
	return Response{Text: text, Success: true}
}

// InsightForCheckIn builds the prompt inputs from a check-in and the
// existing collection, then calls GenerateWellnessInsight.
func (c *Client) InsightForCheckIn(ctx context.Context, entry *models.CheckIn, goal string, history []*models.CheckIn) Response {
	return c.GenerateWellnessInsight(ctx,
		models.MoodOnTenScale(entry.Mood),
		BuildJournalContext(entry),
		goal,
		RecentMoods(history, RecentMoodWindow),
	)
}

// AnalyzeMoodPatterns asks for a short trend analysis of the newest
// check-ins. Fewer than two check-ins short-circuit without a request.
func (c *Client) AnalyzeMoodPatterns(ctx context.Context, checkIns []*models.CheckIn, userName string) Response {
	if len(checkIns) < 2 {
		return Response{Text: MsgNotEnoughData, Success: true}
	}
	if !c.HasKey() {
		return Response{Text: MsgMissingKeyShort, Success: false, Error: ErrTextMissingAPIKey}
	}

	text, err := c.gen.Generate(ctx, patternPrompt(checkIns, userName))
	switch {
	case errors.Is(err, ErrNoText):
		c.logger.Warn("pattern response had no text")
		return Response{Text: MsgUnablePatterns, Success: false}
	case err != nil:
		c.logger.Warn("pattern request failed", zap.Error(err))
		return Response{Text: MsgFailedPatterns, Success: false, Error: err.Error()}
	case text == "":
		return Response{Text: MsgUnablePatterns, Success: false}
	}
	return Response{Text: text, Success: true}
}
