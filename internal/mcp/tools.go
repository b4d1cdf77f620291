// ABOUTME: MCP tool implementations for the habit tracker.
// ABOUTME: Exposes daily logging, streaks, milestones, rewards, and sync.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/habits/internal/app"
	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/syncer"
	"github.com/harperreed/habits/internal/validate"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_day",
		Description: "Record a day's habits (weight, steps, exercise, water, wellness checklist)",
	}, s.handleLogDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streaks",
		Description: "Get the current consecutive-day streak counters",
	}, s.handleGetStreaks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_milestones",
		Description: "List all milestones with achieved/claimed status",
	}, s.handleListMilestones)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "claim_milestone",
		Description: "Claim an achieved milestone and record the attached reward",
	}, s.handleClaimMilestone)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_reward",
		Description: "Attach a self-chosen reward to a streak, weight, or combo target",
	}, s.handleAddReward)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_achievements",
		Description: "List claimed achievements with their reward snapshots",
	}, s.handleListAchievements)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sync_now",
		Description: "Force a sync with the remote store, clearing offline mode",
	}, s.handleSyncNow)
}

// Tool inputs and outputs

type logDayInput struct {
	Date            string   `json:"date,omitempty" jsonschema:"description=Calendar date YYYY-MM-DD (default today)"`
	Weight          *float64 `json:"weight,omitempty" jsonschema:"description=Weight reading"`
	Steps           int      `json:"steps,omitempty" jsonschema:"description=Step count"`
	ExerciseMinutes int      `json:"exercise_minutes,omitempty" jsonschema:"description=Exercise minutes"`
	ExerciseTypes   []string `json:"exercise_types,omitempty" jsonschema:"description=Exercise type tags (required when minutes > 0)"`
	WaterLiters     float64  `json:"water_liters,omitempty" jsonschema:"description=Water intake in liters"`
	WellnessItems   []string `json:"wellness_items,omitempty" jsonschema:"description=Wellness checklist tags (up to 5)"`
	Confirm         bool     `json:"confirm,omitempty" jsonschema:"description=Accept values outside the usual range"`
}

type logDayOutput struct {
	Date      string             `json:"date"`
	Goals     map[string]bool    `json:"goals"`
	Streaks   models.StreakState `json:"streaks"`
	Unclaimed int                `json:"unclaimed_milestones"`
	Message   string             `json:"message"`
}

type claimInput struct {
	Kind      string  `json:"kind" jsonschema:"description=Milestone kind: streak or weight,required"`
	Threshold float64 `json:"threshold" jsonschema:"description=Milestone threshold value,required"`
}

type addRewardInput struct {
	Kind         string  `json:"kind" jsonschema:"description=Target kind: streak weight or combo,required"`
	StreakTarget int     `json:"streak_target,omitempty" jsonschema:"description=Streak days target"`
	WeightTarget float64 `json:"weight_target,omitempty" jsonschema:"description=Weight loss target"`
	Description  string  `json:"description" jsonschema:"description=Free-text reward,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type milestoneStatus struct {
	models.Milestone
	Achieved bool `json:"achieved"`
	Claimed  bool `json:"claimed"`
}

// Tool handlers

func (s *Server) handleLogDay(ctx context.Context, req *mcp.CallToolRequest, input logDayInput) (*mcp.CallToolResult, logDayOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	summary, err := s.app.LogDay(ctx, app.LogInput{
		Date:            date,
		Weight:          input.Weight,
		Steps:           input.Steps,
		ExerciseMinutes: input.ExerciseMinutes,
		ExerciseTypes:   input.ExerciseTypes,
		WaterLiters:     input.WaterLiters,
		WellnessItems:   input.WellnessItems,
		Confirmed:       input.Confirm,
	})
	if err != nil {
		var confirm *validate.ConfirmationError
		if errors.As(err, &confirm) {
			return nil, logDayOutput{}, fmt.Errorf("%v - re-run with confirm=true to accept", confirm)
		}
		return nil, logDayOutput{}, fmt.Errorf("failed to log day: %w", err)
	}

	return nil, logDayOutput{
		Date: date,
		Goals: map[string]bool{
			"steps":    summary.Result.Steps,
			"exercise": summary.Result.Exercise,
			"water":    summary.Result.Water,
			"wellness": summary.Result.Wellness,
		},
		Streaks:   summary.Streaks,
		Unclaimed: len(summary.Unclaimed),
		Message:   fmt.Sprintf("Logged %s (overall streak: %d)", date, summary.Streaks.Overall),
	}, nil
}

func (s *Server) handleGetStreaks(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, *models.StreakState, error) {
	streaks, err := s.app.Streaks()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get streaks: %w", err)
	}
	return nil, streaks, nil
}

func (s *Server) handleListMilestones(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	xs, err := s.app.Milestones()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	unclaimed, err := s.app.Unclaimed()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check milestones: %w", err)
	}
	achievements, err := s.app.Achievements()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check achievements: %w", err)
	}

	unclaimedKeys := make(map[string]bool, len(unclaimed))
	for _, m := range unclaimed {
		unclaimedKeys[m.Key()] = true
	}
	claimedKeys := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		claimedKeys[fmt.Sprintf("%s:%g", a.Kind, a.Threshold)] = true
	}

	out := make([]milestoneStatus, 0, len(xs))
	for _, m := range xs {
		claimed := claimedKeys[m.Key()]
		out = append(out, milestoneStatus{
			Milestone: m,
			Achieved:  claimed || unclaimedKeys[m.Key()],
			Claimed:   claimed,
		})
	}
	return nil, out, nil
}

func (s *Server) handleClaimMilestone(ctx context.Context, req *mcp.CallToolRequest, input claimInput) (*mcp.CallToolResult, simpleOutput, error) {
	achievement, ok, err := s.app.Claim(ctx, models.MilestoneKind(input.Kind), input.Threshold)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to claim: %w", err)
	}
	if !ok {
		return nil, simpleOutput{Message: "Nothing to claim: milestone is not achieved yet or already claimed."}, nil
	}
	msg := fmt.Sprintf("Claimed %q", achievement.Title)
	if achievement.Reward != "" {
		msg += fmt.Sprintf(" - enjoy your reward: %s", achievement.Reward)
	}
	return nil, simpleOutput{Message: msg}, nil
}

func (s *Server) handleAddReward(ctx context.Context, req *mcp.CallToolRequest, input addRewardInput) (*mcp.CallToolResult, simpleOutput, error) {
	r, err := s.app.AddReward(ctx, models.MilestoneKind(input.Kind), input.StreakTarget, input.WeightTarget, input.Description)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add reward: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s reward (ID: %s)", r.Kind, r.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListAchievements(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	achievements, err := s.app.Achievements()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	if len(achievements) == 0 {
		return nil, map[string]any{"message": "No achievements claimed yet."}, nil
	}
	return nil, achievements, nil
}

func (s *Server) handleSyncNow(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	if s.app.Sync == nil {
		return nil, simpleOutput{Message: "No remote backend configured; running local-only."}, nil
	}
	if err := s.app.Sync.ForceSync(ctx); err != nil {
		if errors.Is(err, syncer.ErrSyncBusy) {
			return nil, simpleOutput{Message: "A sync is already in progress."}, nil
		}
		return nil, simpleOutput{}, fmt.Errorf("sync failed: %w", err)
	}
	return nil, simpleOutput{Message: "Synced."}, nil
}
