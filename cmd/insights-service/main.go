package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-reviews-insights/internal/insights/cache"
	"bank-reviews-insights/internal/insights/config"
	delivery "bank-reviews-insights/internal/insights/delivery/http"
	_ "bank-reviews-insights/internal/insights/docs"
	"bank-reviews-insights/internal/insights/repository"
	"bank-reviews-insights/internal/insights/service"
	"bank-reviews-insights/internal/nlp"
	pipelineconfig "bank-reviews-insights/internal/pipeline/config"
	pipelinerepo "bank-reviews-insights/internal/pipeline/repository"
	"bank-reviews-insights/pkg/logger"
	"bank-reviews-insights/pkg/postgres"
	"bank-reviews-insights/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the insights service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Insights Service", logger.Field("name", cfg.App.Name))

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
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	filterTTL := time.Duration(cfg.Cache.FilterTTLSeconds) * time.Second
	if filterTTL <= 0 {
		filterTTL = 5 * time.Minute
	}
	queryTTL := time.Duration(cfg.Cache.QueryTTLSeconds) * time.Second
	if queryTTL <= 0 {
		queryTTL = time.Minute
	}

	insightsRepo := repository.NewInsightsRepository(db.DB)
	insightsSvc := service.NewInsightsService(
		appLogger,
		insightsRepo,
		cache.NewFilterCache(filterTTL),
		cache.NewRedisQueryCache(redisClient.Client, queryTTL),
	)

	var predictSvc service.PredictService
	if cfg.Predict.Enabled {
		predictSvc, err = buildPredictService(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize prediction service", logger.ErrorField(err))
		}
	}

	// Periodic filter cache warm-up.
	c := cron.New()
	if cfg.Cache.WarmCron != "" {
		if _, err := c.AddFunc(cfg.Cache.WarmCron, func() {
			warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			insightsSvc.WarmFilters(warmCtx)
		}); err != nil {
			appLogger.Fatal("Invalid cache warm schedule", logger.ErrorField(err))
		}
		c.Start()
		defer c.Stop()
	}

	e := echo.New()
	e.HideBanner = true

	insightsHandler := delivery.NewInsightsHandler(insightsSvc, predictSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	insightsHandler.RegisterRoutes(apiV1)

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func buildPredictService(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (service.PredictService, error) {
	// The sentiment collaborators are shared with the batch pipeline and
	// take its configuration shape.
	pipelineCfg := &pipelineconfig.Config{
		AI:           cfg.AI,
		InferenceAPI: cfg.InferenceAPI,
		Gemini:       cfg.Gemini,
		Pipeline:     cfg.Pipeline,
	}

	var (
		sentimentRepo pipelinerepo.SentimentRepository
		err           error
	)
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		sentimentRepo, err = pipelinerepo.NewGeminiSentimentRepository(pipelineCfg, appLogger, genAiClient)
		if err != nil {
			return nil, err
		}
	case "http", "":
		sentimentRepo, err = pipelinerepo.NewInferenceAPIRepository(pipelineCfg, appLogger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid ai provider %q", cfg.AI.Provider)
	}

	var themeCfg *nlp.ThemeConfig
	if cfg.Predict.EnableThemes {
		tc := nlp.DefaultThemeConfig()
		themeCfg = &tc
	}
	return service.NewPredictService(appLogger, sentimentRepo, cfg.Pipeline.NeutralMargin, themeCfg), nil
}

// @title Bank Reviews Insights API
// @version 1.0
// @description Exploration API over enriched bank app reviews.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "insights-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-insights.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing insights-service CLI: %s\n", err)
		os.Exit(1)
	}
}
