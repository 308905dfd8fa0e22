// ABOUTME: MCP tool implementations for check-ins, profile, stats and insights.
// ABOUTME: Handlers validate input at the boundary and delegate to the record store.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/velamind/internal/insight"
	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/stats"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_checkin",
		Description: "Log a wellness check-in (mood 1-8, optional energy 1-5, sleep 0-5, tags, journal)",
	}, s.handleSaveCheckIn)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_checkins",
		Description: "List recent check-ins, newest first",
	}, s.handleListCheckIns)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today",
		Description: "Get today's check-in if one has been logged",
	}, s.handleGetToday)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_checkin",
		Description: "Delete a check-in by ID or ID prefix",
	}, s.handleDeleteCheckIn)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get streak, total check-ins, average mood and recent entries",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user's profile from onboarding",
	}, s.handleGetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_profile",
		Description: "Create or replace the user's profile and complete onboarding",
	}, s.handleSaveProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_insight",
		Description: "Generate a short wellness insight for today's check-in or a given check-in",
	}, s.handleGenerateInsight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "analyze_patterns",
		Description: "Analyze mood trends across recent check-ins",
	}, s.handleAnalyzePatterns)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clear_all_data",
		Description: "Delete the profile, every check-in and the onboarding flag",
	}, s.handleClearAll)
}

// Tool input/output types

type saveCheckInInput struct {
	Mood        int      `json:"mood" jsonschema:"mood from 1 (awful) to 8 (amazing)"`
	Energy      *int     `json:"energy,omitempty" jsonschema:"energy from 1 (drained) to 5 (supercharged)"`
	Sleep       *int     `json:"sleep,omitempty" jsonschema:"sleep quality from 0 (terrible) to 5 (perfect)"`
	Symptoms    []string `json:"symptoms,omitempty" jsonschema:"symptom tags such as headache, fatigue, anxiety, stress"`
	Activities  []string `json:"activities,omitempty" jsonschema:"activity tags such as exercise, meditation, reading"`
	Journal     string   `json:"journal,omitempty" jsonschema:"free-text journal entry, up to 500 characters"`
	Gratitude   string   `json:"gratitude,omitempty" jsonschema:"something the user is grateful for, up to 200 characters"`
	WithInsight bool     `json:"with_insight,omitempty" jsonschema:"generate an AI insight before saving"`
}

type checkInOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Insight string `json:"insight,omitempty"`
	Message string `json:"message"`
}

type listCheckInsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"max results (default 20)"`
}

type listCheckInsOutput struct {
	CheckIns []*models.CheckIn `json:"check_ins"`
	Total    int               `json:"total"`
}

type todayOutput struct {
	CheckIn *models.CheckIn `json:"check_in,omitempty"`
	Message string          `json:"message"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"check-in ID or unique prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type emptyInput struct{}

type profileOutput struct {
	Profile             *models.UserProfile `json:"profile,omitempty"`
	OnboardingCompleted bool                `json:"onboarding_completed"`
	Message             string              `json:"message"`
}

type saveProfileInput struct {
	Name string `json:"name" jsonschema:"the user's first name"`
	Age  int    `json:"age" jsonschema:"age in years"`
	Goal string `json:"goal" jsonschema:"one of the wellness goals offered at onboarding"`
}

type generateInsightInput struct {
	CheckInID string `json:"checkin_id,omitempty" jsonschema:"check-in ID or prefix; defaults to today's check-in"`
}

type clearAllInput struct {
	Confirm bool `json:"confirm" jsonschema:"must be true to delete everything"`
}

// Tool handlers

func (s *Server) handleSaveCheckIn(ctx context.Context, req *mcp.CallToolRequest, input saveCheckInInput) (*mcp.CallToolResult, checkInOutput, error) {
	entry := models.NewCheckIn(input.Mood, time.Now()).
		WithDate(s.repo.Today()).
		WithJournal(input.Journal).
		WithGratitude(input.Gratitude)
	if input.Energy != nil {
		entry.WithEnergy(*input.Energy)
	}
	if input.Sleep != nil {
		entry.WithSleep(*input.Sleep)
	}
	if len(input.Symptoms) > 0 {
		entry.WithSymptoms(input.Symptoms...)
	}
	if len(input.Activities) > 0 {
		entry.WithActivities(input.Activities...)
	}
	if err := validateEntry(entry); err != nil {
		return nil, checkInOutput{}, err
	}

	if input.WithInsight {
		resp := s.insights.InsightForCheckIn(ctx, entry, s.goal(ctx), s.repo.GetCheckIns(ctx))
		if resp.Success {
			entry.WithInsight(resp.Text)
		}
	}

	if err := s.repo.SaveCheckIn(ctx, entry); err != nil {
		return nil, checkInOutput{}, fmt.Errorf("failed to save check-in: %w", err)
	}

	return nil, checkInOutput{
		ID:      entry.ID,
		Date:    entry.Date,
		Insight: entry.AIInsight,
		Message: fmt.Sprintf("Logged %s %s for %s (ID: %s)", models.MoodEmoji(entry.Mood), models.MoodLabel(entry.Mood), entry.Date, models.ShortID(entry.ID)),
	}, nil
}

func (s *Server) handleListCheckIns(ctx context.Context, req *mcp.CallToolRequest, input listCheckInsInput) (*mcp.CallToolResult, listCheckInsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}
	all := s.repo.GetCheckIns(ctx)
	return nil, listCheckInsOutput{
		CheckIns: all[:min(input.Limit, len(all))],
		Total:    len(all),
	}, nil
}

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, todayOutput, error) {
	c, ok := s.repo.GetTodayCheckIn(ctx)
	if !ok {
		return nil, todayOutput{Message: "No check-in yet today."}, nil
	}
	return nil, todayOutput{CheckIn: c, Message: fmt.Sprintf("Today's mood: %s", models.MoodLabel(c.Mood))}, nil
}

func (s *Server) handleDeleteCheckIn(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	c, err := s.repo.FindCheckIn(ctx, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.DeleteCheckIn(ctx, c.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete check-in: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted check-in %s from %s", models.ShortID(c.ID), c.Date)}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, stats.Summary, error) {
	return nil, stats.Summarize(s.repo.GetCheckIns(ctx), s.today()), nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, profileOutput, error) {
	out := profileOutput{OnboardingCompleted: s.repo.IsOnboardingComplete(ctx)}
	p, ok := s.repo.GetProfile(ctx)
	if !ok {
		out.Message = "No profile yet. Use save_profile to onboard."
		return nil, out, nil
	}
	out.Profile = p
	out.Message = fmt.Sprintf("%s, %d, working on: %s", p.Name, p.Age, p.Goal)
	return nil, out, nil
}

func (s *Server) handleSaveProfile(ctx context.Context, req *mcp.CallToolRequest, input saveProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, errors.New("name is required")
	}
	if input.Age <= 0 {
		return nil, simpleOutput{}, errors.New("age must be a positive number")
	}
	if !models.IsValidGoal(input.Goal) {
		return nil, simpleOutput{}, fmt.Errorf("unknown goal %q", input.Goal)
	}

	p := models.NewUserProfile(input.Name, input.Age, input.Goal, time.Now())
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}
	if err := s.repo.MarkOnboardingComplete(ctx); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Welcome, %s!", p.Name)}, nil
}

func (s *Server) handleGenerateInsight(ctx context.Context, req *mcp.CallToolRequest, input generateInsightInput) (*mcp.CallToolResult, insight.Response, error) {
	var entry *models.CheckIn
	if input.CheckInID != "" {
		c, err := s.repo.FindCheckIn(ctx, input.CheckInID)
		if err != nil {
			return nil, insight.Response{}, err
		}
		entry = c
	} else {
		c, ok := s.repo.GetTodayCheckIn(ctx)
		if !ok {
			return nil, insight.Response{}, errors.New("no check-in today; log one with save_checkin first")
		}
		entry = c
	}

	history := withoutCheckIn(s.repo.GetCheckIns(ctx), entry.ID)
	return nil, s.insights.InsightForCheckIn(ctx, entry, s.goal(ctx), history), nil
}

func (s *Server) handleAnalyzePatterns(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, insight.Response, error) {
	name := ""
	if p, ok := s.repo.GetProfile(ctx); ok {
		name = p.Name
	}
	return nil, s.insights.AnalyzeMoodPatterns(ctx, s.repo.GetCheckIns(ctx), name), nil
}

func (s *Server) handleClearAll(ctx context.Context, req *mcp.CallToolRequest, input clearAllInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !input.Confirm {
		return nil, simpleOutput{}, errors.New("refusing to clear data without confirm=true")
	}
	if err := s.repo.ClearAll(ctx); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to clear data: %w", err)
	}
	return nil, simpleOutput{Message: "All data cleared."}, nil
}

// goal returns the profile goal, or empty to let the prompt use its default.
func (s *Server) goal(ctx context.Context) string {
	if p, ok := s.repo.GetProfile(ctx); ok {
		return p.Goal
	}
	return ""
}

func validateEntry(c *models.CheckIn) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.ValidateTags()
}

func withoutCheckIn(all []*models.CheckIn, id string) []*models.CheckIn {
	out := make([]*models.CheckIn, 0, len(all))
	for _, c := range all {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
