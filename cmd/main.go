package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/ai"
	"github.com/selivandex/worldmap-intel/internal/adapters/config"
	"github.com/selivandex/worldmap-intel/internal/adapters/currency"
	"github.com/selivandex/worldmap-intel/internal/adapters/database"
	"github.com/selivandex/worldmap-intel/internal/adapters/economic"
	metricsAdapter "github.com/selivandex/worldmap-intel/internal/adapters/metrics"
	"github.com/selivandex/worldmap-intel/internal/adapters/news"
	redisAdapter "github.com/selivandex/worldmap-intel/internal/adapters/redis"
	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/internal/analysis"
	"github.com/selivandex/worldmap-intel/internal/api"
	"github.com/selivandex/worldmap-intel/internal/budget"
	"github.com/selivandex/worldmap-intel/internal/cache"
	"github.com/selivandex/worldmap-intel/internal/countries"
	"github.com/selivandex/worldmap-intel/internal/health"
	"github.com/selivandex/worldmap-intel/internal/intelligence"
	"github.com/selivandex/worldmap-intel/internal/workers"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/metrics"
	"github.com/selivandex/worldmap-intel/pkg/worker"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := initConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("worldmap intelligence service starting",
		zap.String("port", cfg.Server.Port),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Bool("database", cfg.Database.Enabled),
		zap.Bool("clickhouse", cfg.ClickHouse.Enabled),
	)

	probes := health.NewProbes()

	backend, closeCache := initCache(ctx, cfg, probes)
	defer closeCache()

	directory, closeDB := initDirectory(ctx, cfg, probes)
	defer closeDB()

	metricsBuffer, chDB := initMetrics(ctx, cfg, probes)
	var recorder metrics.Recorder
	if metricsBuffer != nil {
		recorder = metricsBuffer
	}

	dispatcher := initDispatcher(cfg, recorder)

	orchestrator := intelligence.NewOrchestrator(
		directory,
		cache.NewStore(backend),
		initSources(cfg),
		dispatcher,
		intelligence.TTLs{
			News:      cfg.Cache.NewsTTL,
			Economic:  cfg.Cache.EconomicTTL,
			Currency:  cfg.Cache.CurrencyTTL,
			Composite: cfg.Cache.CompositeTTL,
			Degraded:  cfg.Cache.DegradedTTL,
		},
		recorder,
	)

	gin.SetMode(cfg.Server.Mode)
	server := api.NewServer(cfg.Server.Port, api.NewRouter(api.Deps{
		Intelligence: orchestrator,
		Directory:    directory,
		Usage:        dispatcher,
		Probes:       probes,
	}))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	workerGroup := worker.NewGroup(ctx)
	if cfg.Warmup.Enabled {
		workerGroup.Add(workers.NewCacheWarmer(orchestrator, cfg.Warmup.Countries), cfg.Warmup.Interval)
	}
	workerGroup.Start()

	probes.SetReady(true)
	logger.Info("service ready")

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("API server failed", zap.Error(err))
		}
	}

	return performGracefulShutdown(cfg, probes, server, workerGroup, metricsBuffer, chDB)
}

func initConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// initCache returns the redis backend when enabled, otherwise an in-process one.
// Redis connects lazily, so an unreachable server at startup is not fatal.
func initCache(ctx context.Context, cfg *config.Config, probes *health.Probes) (cache.Backend, func()) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, using in-memory cache")
		mem := cache.NewMemoryBackend()
		probes.Register("cache", mem.Health, false)
		return mem, func() {}
	}

	client := redisAdapter.New(&cfg.Redis)
	if err := client.Connect(ctx); err != nil {
		logger.Warn("redis not reachable yet, cache will miss until it is", zap.Error(err))
	}
	// cache is an optimization; the service stays ready without it
	probes.Register("redis", client.Health, false)

	return client, func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close redis", zap.Error(err))
		}
	}
}

func initDirectory(ctx context.Context, cfg *config.Config, probes *health.Probes) (countries.Directory, func()) {
	if !cfg.Database.Enabled {
		return countries.Builtin(), func() {}
	}

	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		logger.Warn("database unavailable, using builtin country table", zap.Error(err))
		return countries.Builtin(), func() {}
	}

	if err := db.Migrate(cfg.Database.MigrationsPath); err != nil {
		logger.Error("migrations failed", zap.Error(err))
	}
	probes.Register("database", db.Health, false)

	dir := countries.LoadOrBuiltin(ctx, countries.NewRepository(db.DB()))
	return dir, func() { _ = db.Close() }
}

func initMetrics(ctx context.Context, cfg *config.Config, probes *health.Probes) (*metrics.BufferedMetrics, *database.DB) {
	if !cfg.ClickHouse.Enabled {
		return nil, nil
	}

	chDB, err := database.NewClickHouse(ctx, &cfg.ClickHouse)
	if err != nil {
		logger.Warn("ClickHouse not available, usage analytics disabled", zap.Error(err))
		return nil, nil
	}

	repo := metricsAdapter.NewClickHouseRepository(chDB.DB())
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Warn("ClickHouse schema setup failed, usage analytics disabled", zap.Error(err))
		_ = chDB.Close()
		return nil, nil
	}
	probes.Register("clickhouse", chDB.Health, false)

	buffer := metrics.NewBufferedMetrics(metrics.BufferConfig{
		Writer:        metricsAdapter.NewWriter(repo),
		BatchSize:     cfg.ClickHouse.BatchSize,
		FlushInterval: cfg.ClickHouse.FlushInterval,
		MaxBufferSize: cfg.ClickHouse.BatchSize * 50,
	})

	return buffer, chDB
}

func initPremiumProvider(cfg *config.Config) ai.Provider {
	if !cfg.AI.EnablePremiumFeature {
		logger.Info("premium analysis disabled")
		return nil
	}

	openaiProvider := func() ai.Provider {
		return ai.NewOpenAIProvider(ai.OpenAIOptions{
			APIKey:      cfg.AI.OpenAI.APIKey,
			Model:       cfg.AI.OpenAI.Model,
			MaxTokens:   cfg.AI.OpenAI.MaxTokens,
			Temperature: cfg.AI.OpenAI.Temperature,
			Timeout:     cfg.AI.OpenAI.Timeout,
		})
	}
	claudeProvider := func() ai.Provider {
		return ai.NewClaudeProvider(ai.ClaudeOptions{
			APIKey:      cfg.AI.Anthropic.APIKey,
			Model:       cfg.AI.Anthropic.Model,
			MaxTokens:   cfg.AI.Anthropic.MaxTokens,
			Temperature: cfg.AI.Anthropic.Temperature,
			Timeout:     cfg.AI.Anthropic.Timeout,
		})
	}

	var provider ai.Provider
	switch {
	case cfg.AI.Provider == "anthropic" && cfg.AI.Anthropic.Enabled():
		provider = claudeProvider()
	case cfg.AI.OpenAI.Enabled():
		provider = openaiProvider()
	case cfg.AI.Anthropic.Enabled():
		provider = claudeProvider()
	default:
		logger.Warn("no premium AI provider configured, all analysis will be basic")
		return nil
	}

	logger.Info("premium analysis provider configured", zap.String("provider", provider.GetName()))
	return provider
}

func initDispatcher(cfg *config.Config, recorder metrics.Recorder) *analysis.Dispatcher {
	ledger := budget.NewLedger(cfg.AI.MonthlyBudgetDecimal())

	return analysis.NewDispatcher(
		initPremiumProvider(cfg),
		ledger,
		analysis.DispatcherConfig{
			PremiumCountries:    cfg.AI.PremiumAllowlist(),
			BiasAnalysisPremium: cfg.AI.BiasAnalysisPremium,
			SampleRate:          cfg.AI.PremiumSampleRate,
			CostPerCall:         cfg.AI.CostPerCallDecimal(),
		},
		analysis.WithRecorder(recorder),
	)
}

func initSources(cfg *config.Config) intelligence.Sources {
	client := upstream.NewClient(cfg.Upstream.Timeout)

	var providers []news.Provider
	if cfg.News.APIKey != "" {
		providers = append(providers, news.NewNewsAPIProvider(cfg.News.APIKey, cfg.News.BaseURL, client))
	} else {
		logger.Warn("NEWS_API_KEY not set, news will come from RSS only")
	}
	providers = append(providers, news.NewRSSProvider(cfg.News.RSSURL, cfg.News.RSSEnabled, client.HTTP()))

	return intelligence.Sources{
		News: news.NewConnector(providers, news.ConnectorConfig{
			TargetCount: cfg.News.TargetCount,
			MinLength:   cfg.News.MinLength,
			PageSize:    cfg.News.PageSize,
			Lookback:    cfg.News.Lookback,
		}),
		Economic: economic.NewWorldBankConnector(cfg.Economic.BaseURL, cfg.Economic.LookbackYears, client),
		Currency: currency.NewExchangeRateConnector(cfg.Currency.BaseURL, client),
	}
}

func performGracefulShutdown(
	cfg *config.Config,
	probes *health.Probes,
	server *api.Server,
	workerGroup *worker.Group,
	metricsBuffer *metrics.BufferedMetrics,
	chDB *database.DB,
) error {
	logger.Info("starting graceful shutdown...")
	probes.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error

	if err := server.Stop(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("api server: %w", err))
	}

	workerGroup.Stop(10 * time.Second)

	if metricsBuffer != nil {
		if err := metricsBuffer.Close(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("metrics buffer: %w", err))
		}
	}
	if chDB != nil {
		if err := chDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("clickhouse: %w", err))
		}
	}

	if len(errs) > 0 {
		logger.Error("graceful shutdown finished with errors", zap.Error(errors.Join(errs...)))
		return errors.Join(errs...)
	}

	logger.Info("graceful shutdown completed")
	return nil
}
