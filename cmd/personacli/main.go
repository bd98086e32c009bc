package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reddit-persona/internal/config"
	"reddit-persona/internal/lexicon"
	"reddit-persona/internal/reddit"
	"reddit-persona/internal/report"
	"reddit-persona/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "personacli",
		Short: "Genera personas de usuario a partir de actividad publica de Reddit",
	}

	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		limit     int
		outputDir string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "generate [profile-url-or-username]",
		Short: "Genera el reporte de persona para un perfil de Reddit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Printf("warning: loading .env: %v", err)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, _ := zap.NewProduction()
			defer logger.Sync()

			username, err := reddit.ParseProfileURL(args[0])
			if err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			store, err := lexicon.Default()
			if err != nil {
				return fmt.Errorf("lexicon init: %w", err)
			}

			scoring := service.ScoringConfig{
				MinMatches:            cfg.MinMatches,
				MinConfidence:         cfg.MinConfidence,
				MaxCitations:          cfg.MaxCitations,
				RecencyBoostFactor:    cfg.RecencyBoostFactor,
				RecencyWindowFraction: cfg.RecencyWindowFraction,
			}
			if err := scoring.Validate(); err != nil {
				return fmt.Errorf("scoring config: %w", err)
			}

			if limit <= 0 || limit > cfg.FetchLimit {
				limit = cfg.FetchLimit
			}

			client := reddit.NewClient(cfg.RedditBaseURL, cfg.UserAgent, cfg.RequestInterval, logger)

			fmt.Printf("Fetching activity for u/%s (limit %d)...\n", username, limit)
			items, err := client.FetchItems(context.Background(), username, limit)
			if err != nil {
				return fmt.Errorf("fetch items: %w", err)
			}
			fmt.Printf("Fetched %d items\n", len(items))

			assembler := service.NewAssembler(store, scoring, logger)
			persona := assembler.Assemble(username, items)

			path, err := report.Save(persona, outputDir, format)
			if err != nil {
				return fmt.Errorf("save report: %w", err)
			}

			assigned := 0
			for _, res := range persona.Dimensions {
				if !res.Assignment.Sentinel() {
					assigned++
				}
			}
			fmt.Printf("Persona generated: %d/%d dimensions with evidence\n", assigned, len(persona.Dimensions))
			fmt.Printf("Report saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "max items to fetch (0 uses FETCH_LIMIT)")
	cmd.Flags().StringVar(&outputDir, "output", "output", "output directory for the report")
	cmd.Flags().StringVar(&format, "format", report.FormatText, "report format: text, markdown or html")

	return cmd
}
