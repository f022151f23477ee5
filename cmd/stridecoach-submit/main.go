package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/stridecoach/internal/submit"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "StrideCoach server URL (e.g. https://stridecoach.tail1234.ts.net)")
	raceDir := flag.String("path", "", "directory containing race result .json files")
	athleteID := flag.String("athlete", "", "athlete UUID to attach results to")
	apiKey := flag.String("api-key", os.Getenv("STRIDECOACH_API_KEY"), "API key (or set STRIDECOACH_API_KEY)")
	dryRun := flag.Bool("dry-run", false, "parse and validate but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("stridecoach-submit", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *raceDir == "" || *athleteID == "" {
		fmt.Fprintf(os.Stderr, "Usage: stridecoach-submit -server <URL> -athlete <UUID> -path <race dir> [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *serverURL == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
		os.Exit(1)
	}

	// Strip trailing slash from server URL
	*serverURL = strings.TrimRight(*serverURL, "/")

	info, err := os.Stat(*raceDir)
	if err != nil || !info.IsDir() {
		log.Error("race directory not found", "path", *raceDir)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".stridecoach-submit")

	state, err := submit.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	// Create client (nil-safe in dry-run mode)
	var client *submit.Client
	if !*dryRun {
		client = submit.NewClient(*serverURL, *apiKey)
	}

	if *dryRun {
		log.Info("DRY RUN mode — files will be parsed and validated but not sent")
	}

	sub := submit.New(client, state, *raceDir, *athleteID, *dryRun, log)
	stats, err := sub.Run()
	if err != nil {
		log.Error("submission failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("submission complete")
}

func printStats(stats *submit.Stats) {
	fmt.Println()
	fmt.Println("=== Submission Summary ===")
	fmt.Printf("  Files total:      %d\n", stats.FilesTotal)
	fmt.Printf("  Files submitted:  %d\n", stats.FilesSubmitted)
	fmt.Printf("  Files skipped:    %d (already submitted)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored:    %d\n", stats.FilesErrored)

	if len(stats.RejectedDistances) > 0 {
		fmt.Printf("\n  Rejected distances (not recognized):\n")
		for _, d := range stats.RejectedDistances {
			fmt.Printf("    - %s\n", d)
		}
	}
	fmt.Println()
}
