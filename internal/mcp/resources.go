// ABOUTME: MCP resource implementations for the wellness journal.
// ABOUTME: Provides velamind://checkins/recent, velamind://today, and velamind://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/stats"
)

// Resource URIs.
const (
	URIRecent  = "velamind://checkins/recent"
	URIToday   = "velamind://today"
	URISummary = "velamind://summary"
)

const recentResourceLimit = 10

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         URIRecent,
		Name:        "Recent Check-ins",
		Description: "Last 10 check-ins, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         URIToday,
		Name:        "Today's Check-in",
		Description: "Today's date and check-in, if logged",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         URISummary,
		Name:        "Wellness Summary",
		Description: "Streak, average mood, profile and the 7-day mood trend",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	all := s.repo.GetCheckIns(ctx)
	return jsonResource(URIRecent, map[string]any{
		"check_ins": all[:min(recentResourceLimit, len(all))],
		"total":     len(all),
	})
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]any{"date": s.repo.Today()}
	if c, ok := s.repo.GetTodayCheckIn(ctx); ok {
		result["check_in"] = c
	}
	return jsonResource(URIToday, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	all := s.repo.GetCheckIns(ctx)

	type trendPoint struct {
		Date  string `json:"date"`
		Mood  int    `json:"mood"`
		Label string `json:"label"`
		Color string `json:"color"`
	}
	trend := make([]trendPoint, 0, stats.DefaultTrendWindow)
	for _, c := range stats.MoodTrend(all, stats.DefaultTrendWindow) {
		trend = append(trend, trendPoint{
			Date:  c.Date,
			Mood:  c.Mood,
			Label: models.MoodLabel(c.Mood),
			Color: stats.MoodColor(c.Mood),
		})
	}

	result := map[string]any{
		"summary": stats.Summarize(all, s.today()),
		"trend":   trend,
	}
	if p, ok := s.repo.GetProfile(ctx); ok {
		result["profile"] = p
	}
	return jsonResource(URISummary, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
