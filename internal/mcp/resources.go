// ABOUTME: MCP resource implementations for the habit tracker.
// ABOUTME: Provides habits://profile, habits://streaks, and habits://today.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/habits/internal/models"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://profile",
		Name:        "Profile",
		Description: "Weights, goal, and daily targets",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://streaks",
		Name:        "Current Streaks",
		Description: "Consecutive-day counters per goal category",
		MIMEType:    "application/json",
	}, s.handleStreaksResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://today",
		Name:        "Today's Entry",
		Description: "The daily log entry for today, if any",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

func (s *Server) readResource(uri string, v any) (*mcp.ReadResourceResult, error) {
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

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.app.Local.Profile()
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if p == nil {
		return s.readResource("habits://profile", map[string]string{"message": "No profile yet - run setup."})
	}
	return s.readResource("habits://profile", p)
}

func (s *Server) handleStreaksResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	streaks, err := s.app.Streaks()
	if err != nil {
		return nil, fmt.Errorf("failed to read streaks: %w", err)
	}
	return s.readResource("habits://streaks", streaks)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	logs, err := s.app.DailyLogs()
	if err != nil {
		return nil, fmt.Errorf("failed to read daily logs: %w", err)
	}

	today := time.Now().Format(models.DateLayout)
	entry, ok := logs[today]
	if !ok {
		return s.readResource("habits://today", map[string]string{"message": "Nothing logged today."})
	}
	return s.readResource("habits://today", entry)
}
