package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iota-uz/commerce-admin/internal/assets"
	"github.com/iota-uz/commerce-admin/internal/server"
	"github.com/iota-uz/commerce-admin/modules"
	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/configuration"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/graphql"
	"github.com/iota-uz/commerce-admin/pkg/logging"
	"github.com/iota-uz/commerce-admin/pkg/metrics"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		tracingCleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer tracingCleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	var redisClient *redis.Client
	if conf.RedisURL != "" {
		opts, err := redis.ParseURL(conf.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}

	client := graphql.NewClient(
		conf.API.URL,
		graphql.WithToken(conf.API.Token),
		graphql.WithTimeout(conf.API.Timeout),
		graphql.WithRequestIDHeader(conf.RequestIDHeader),
	)
	app := application.New(&application.ApplicationOptions{
		GraphQL:            client,
		EventBus:           eventbus.NewEventPublisher(logger),
		Bundle:             application.LoadBundle(),
		SupportedLanguages: conf.Languages(),
	})

	opts := modules.Options{
		PageSize:     conf.PageSize,
		MaxPageSize:  conf.MaxPageSize,
		Flash:        notifier.NewFlashStore(conf.FlashCookieKey, []byte(conf.SessionKey)),
		MenuCacheTTL: conf.Storage.MenuCacheTTL,
		Middlewares:  server.RateLimit(conf, redisClient, logger),
		Logger:       logger,
	}
	if conf.Storage.FilterPresets == "redis" {
		opts.PresetStore = filters.NewRedisTabStore(redisClient)
	}
	if conf.Storage.MenuCache == "redis" {
		opts.MenuCache = redisClient
	}
	if err := modules.Load(app, modules.BuiltInModules(opts)...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	if conf.API.ValidateOperations {
		if err := validateOperations(app); err != nil {
			log.Fatalf("failed to validate operations: %v", err)
		}
	}
	app.RegisterControllers(assets.NewStaticFilesController(assets.HashFS, conf.GoAppEnvironment == configuration.Production))
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		log.Printf("Listening on: %s\n", conf.Origin)
		if err := serverInstance.Start(conf.SocketAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := serverInstance.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

func validateOperations(app application.Application) error {
	schema, err := graphql.LoadSchema()
	if err != nil {
		return err
	}
	docs := make([]fs.FS, 0, len(app.Operations()))
	for _, ops := range app.Operations() {
		docs = append(docs, ops)
	}
	return graphql.ValidateDocuments(schema, docs...)
}
