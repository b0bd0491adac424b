// Command injuryctl runs the injury analysis pipeline from the terminal.
//
// Usage:
//
//	injuryctl all
//	injuryctl team --team "Duke" --force
//	injuryctl matchup --team1 "Duke" --team2 "Kansas"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hoopsight/hoopsight/internal/anthropic"
	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/internal/injury"
	"github.com/hoopsight/hoopsight/internal/news"
	"github.com/hoopsight/hoopsight/internal/roster"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "injuryctl",
		Short: "College basketball injury analysis CLI",
	}

	root.AddCommand(allCmd())
	root.AddCommand(teamCmd())
	root.AddCommand(matchupCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func allCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Extract current injuries nationwide",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(func(ctx context.Context, svc injury.Service) (interface{}, error) {
				return svc.AllInjuries(ctx, force)
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Bypass the result cache")
	return cmd
}

func teamCmd() *cobra.Command {
	var team string
	var force bool
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Extract injuries and impact for one team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if team == "" {
				return fmt.Errorf("--team is required")
			}
			return runAnalysis(func(ctx context.Context, svc injury.Service) (interface{}, error) {
				return svc.TeamInjuries(ctx, team, force)
			})
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().BoolVar(&force, "force", false, "Bypass the result cache")
	return cmd
}

func matchupCmd() *cobra.Command {
	var team1, team2 string
	cmd := &cobra.Command{
		Use:   "matchup",
		Short: "Analyze both sides of an upcoming game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if team1 == "" || team2 == "" {
				return fmt.Errorf("--team1 and --team2 are required")
			}
			return runAnalysis(func(ctx context.Context, svc injury.Service) (interface{}, error) {
				return svc.MatchupInjuries(ctx, team1, team2)
			})
		},
	}
	cmd.Flags().StringVar(&team1, "team1", "", "First team name")
	cmd.Flags().StringVar(&team2, "team2", "", "Second team name")
	return cmd
}

// runAnalysis wires the pipeline, runs one analysis, and prints the result as
// indented JSON on stdout.
func runAnalysis(fn func(ctx context.Context, svc injury.Service) (interface{}, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.InjuryEnabled() {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	llm := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger)
	fetcher := news.NewFetcher(cfg.SeasonYear, logger)
	diskCache := injury.NewCache(cfg.InjuryCacheDir, logger)
	svc := injury.NewAnalyzer(fetcher, llm, diskCache, roster.Default(), logger)

	result, err := fn(ctx, svc)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
