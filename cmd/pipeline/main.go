package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bank-reviews-insights/internal/analytics"
	"bank-reviews-insights/internal/pipeline/config"
	"bank-reviews-insights/internal/pipeline/repository"
	"bank-reviews-insights/internal/pipeline/service"
	"bank-reviews-insights/internal/pipeline/source"
	"bank-reviews-insights/pkg/logger"
	"bank-reviews-insights/pkg/postgres"
	"bank-reviews-insights/pkg/telegram"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var (
	configPath string
	inputPath  string
)

// deps is the wired object graph shared by the pipeline subcommands.
type deps struct {
	cfg       *config.Config
	log       *logger.Logger
	ingestion service.IngestionService
	enrich    service.EnrichmentService
	close     func()
}

func buildDeps(ctx context.Context, needSentiment bool) (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	closeFn := func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = appLogger.Sync()
	}

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			closeFn()
			return nil, fmt.Errorf("failed to initialize Telegram notifier: %w", err)
		}
	}

	reviewRepo := repository.NewReviewRepository(db.DB)
	runRepo := repository.NewPipelineRunRepository(db.DB)

	var sentimentRepo repository.SentimentRepository
	if needSentiment {
		sentimentRepo, err = buildSentimentRepo(ctx, cfg, appLogger)
		if err != nil {
			closeFn()
			return nil, err
		}
	}

	return &deps{
		cfg:       cfg,
		log:       appLogger,
		ingestion: service.NewIngestionService(cfg, reviewRepo, runRepo, notifier, appLogger),
		enrich:    service.NewEnrichmentService(cfg, reviewRepo, runRepo, sentimentRepo, notifier, appLogger),
		close:     closeFn,
	}, nil
}

func buildSentimentRepo(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SentimentRepository, error) {
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		return repository.NewGeminiSentimentRepository(cfg, log, genAiClient)
	case "http", "":
		return repository.NewInferenceAPIRepository(cfg, log)
	default:
		return nil, fmt.Errorf("invalid ai provider %q", cfg.AI.Provider)
	}
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load raw reviews from a CSV file into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputPath == "" {
			return fmt.Errorf("--input is required")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := buildDeps(ctx, false)
		if err != nil {
			return err
		}
		defer d.close()

		rows, err := source.ReadBaseRows(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		summary, err := d.ingestion.LoadReviews(ctx, rows)
		if err != nil {
			return err
		}
		d.log.Info("base load finished",
			logger.IntField("inserted", summary.Inserted),
			logger.IntField("total_reviews", int(summary.TotalReviews)),
		)
		return nil
	},
}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Classify raw reviews from a CSV file and apply the enrichment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputPath == "" {
			return fmt.Errorf("--input is required")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := buildDeps(ctx, true)
		if err != nil {
			return err
		}
		defer d.close()

		rows, err := source.ReadBaseRows(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		summary, err := d.enrich.Enrich(ctx, rows)
		if err != nil {
			return err
		}
		d.log.Info("enrichment finished",
			logger.IntField("updated", summary.Updated),
			logger.IntField("unmatched", summary.Unmatched),
		)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply pre-scored enrichment rows from a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputPath == "" {
			return fmt.Errorf("--input is required")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := buildDeps(ctx, false)
		if err != nil {
			return err
		}
		defer d.close()

		rows, err := source.ReadScoredRows(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		summary, err := d.enrich.ApplyScored(ctx, rows)
		if err != nil {
			return err
		}
		d.log.Info("scored apply finished",
			logger.IntField("updated", summary.Updated),
			logger.IntField("unmatched", summary.Unmatched),
		)
		return nil
	},
}

var topK int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a scored CSV export into theme drivers and pain points",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputPath == "" {
			return fmt.Errorf("--input is required")
		}

		rows, err := source.ReadScoredRows(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		stats := make([]analytics.ReviewStat, 0, len(rows))
		for _, row := range rows {
			stats = append(stats, analytics.ReviewStat{
				Bank:      row.Bank,
				Theme:     row.ThemePrimary,
				Sentiment: strings.ToUpper(strings.TrimSpace(row.SentimentLabel)),
				Rating:    row.Rating,
			})
		}

		summary := analytics.SummarizeThemes(stats, analytics.DefaultSummaryConfig())
		drivers, pains := analytics.TopDriversAndPainPoints(summary, topK)

		report := struct {
			Summary []analytics.ThemeSummary `json:"theme_summary"`
			Drivers []analytics.PriorityRow  `json:"top_drivers"`
			Pains   []analytics.PriorityRow  `json:"top_pain_points"`
		}{Summary: summary, Drivers: drivers, Pains: pains}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "pipeline"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-pipeline.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Path to the input CSV file")

	rootCmd.AddCommand(loadCmd, enrichCmd, applyCmd, reportCmd)
	reportCmd.Flags().IntVarP(&topK, "top", "k", 3, "Number of top drivers and pain points per bank")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing pipeline CLI: %v", err)
	}
}
