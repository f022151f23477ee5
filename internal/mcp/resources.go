package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/stridecoach/internal/catalog"
	"github.com/claude/stridecoach/internal/pacing"
)

// --- Resource definitions ---

var resWorkoutCatalog = mcp.NewResource(
	"stridecoach://workout_catalog",
	"Workout Catalog",
	mcp.WithResourceDescription("Every workout type with its intent, pace label, interval structure, coaching cues and progression rules"),
	mcp.WithMIMEType("application/json"),
)

var resRaceDistances = mcp.NewResource(
	"stridecoach://race_distances",
	"Race Distances",
	mcp.WithResourceDescription("Race distance labels accepted for VDOT estimation, with their lengths in meters"),
	mcp.WithMIMEType("application/json"),
)

// --- Resource handlers ---

func (h *handlers) workoutCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(catalog.All())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) raceDistances(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	distances := map[string]float64{}
	for _, label := range pacing.RaceDistances() {
		if meters, ok := pacing.RaceDistanceMeters(label); ok {
			distances[label] = meters
		}
	}

	data, err := json.Marshal(distances)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
