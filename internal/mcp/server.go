// Package mcp exposes the pacing engine and workout catalog as MCP tools
// so coaching assistants can compute paces and prescriptions directly.
// Every tool is a pure function over the static tables; no database is
// involved.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all calculator tools registered.
func New(version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("StrideCoach", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("StrideCoach training calculator. Compute VDOT training paces from race results, browse the workout catalog, select phase sessions, and build structured session prescriptions."),
	)

	h := &handlers{log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetTrainingPaces, Handler: h.getTrainingPaces},
		server.ServerTool{Tool: toolEstimateVDOT, Handler: h.estimateVDOT},
		server.ServerTool{Tool: toolPredictRaceTime, Handler: h.predictRaceTime},
		server.ServerTool{Tool: toolListWorkoutTypes, Handler: h.listWorkoutTypes},
		server.ServerTool{Tool: toolGetWorkoutType, Handler: h.getWorkoutType},
		server.ServerTool{Tool: toolGetPhaseSessions, Handler: h.getPhaseSessions},
		server.ServerTool{Tool: toolBuildPrescription, Handler: h.buildPrescription},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutCatalog, Handler: h.workoutCatalog},
		server.ServerResource{Resource: resRaceDistances, Handler: h.raceDistances},
	)

	return s
}

// handlers holds dependencies for MCP tool handlers.
type handlers struct {
	log *slog.Logger
}
