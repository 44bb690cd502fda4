// Package mcp exposes workout planning over the Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("fitplan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("fitplan workout planner. Read and update the training profile, generate weekly workout plans, "+
			"browse past plans, the exercise catalog and the goal templates. Plans and profiles are scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetProfile, Handler: h.getProfile},
		server.ServerTool{Tool: toolUpdateProfile, Handler: h.updateProfile},
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolGetCurrentPlan, Handler: h.getCurrentPlan},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolGetPlanHistory, Handler: h.getPlanHistory},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetGoalTemplates, Handler: h.getGoalTemplates},
	)

	s.AddResources(
		server.ServerResource{Resource: resCurrentPlan, Handler: h.currentPlan},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resGoalTemplates, Handler: h.goalTemplates},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resCurrentPlan = mcp.NewResource(
	"fitplan://current_plan",
	"Current Plan",
	mcp.WithResourceDescription("The user's current weekly workout plan"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"fitplan://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("Every exercise the generator can pick, with muscles, equipment and difficulty"),
	mcp.WithMIMEType("application/json"),
)

var resGoalTemplates = mcp.NewResource(
	"fitplan://goal_templates",
	"Goal Templates",
	mcp.WithResourceDescription("Unscaled sets, reps, rest and frequency for each training goal"),
	mcp.WithMIMEType("application/json"),
)
