package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/configuration"
	"github.com/iota-uz/commerce-admin/pkg/httpapi"
	"github.com/iota-uz/commerce-admin/pkg/middleware"
	"github.com/iota-uz/commerce-admin/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger, middleware.LoggerOptions{
			RequestIDHeader: conf.RequestIDHeader,
			RealIPHeader:    conf.RealIPHeader,
		}),
		middleware.OpsGuard(middleware.OpsGuardConfig{
			Options:      conf.OpsGuard,
			Production:   conf.GoAppEnvironment == configuration.Production,
			RealIPHeader: conf.RealIPHeader,
			Paths:        []string{conf.Prometheus.Path},
		}),
	)

	serverInstance := server.NewHTTPServer(
		app,
		http.HandlerFunc(NotFound),
		http.HandlerFunc(MethodNotAllowed),
	)
	return serverInstance, nil
}

// RateLimit builds the mutation throttle shared by the module controllers.
// A redis store that cannot be created falls back to memory.
func RateLimit(conf *configuration.Configuration, client *redis.Client, logger *logrus.Logger) []mux.MiddlewareFunc {
	if !conf.RateLimit.Enabled {
		return nil
	}
	var store limiter.Store
	switch conf.RateLimit.Storage {
	case "redis":
		s, err := middleware.NewRedisStore(client)
		if err != nil {
			logger.WithError(err).Warn("Failed to create Redis store for rate limiting, falling back to memory")
			s = middleware.NewMemoryStore()
		}
		store = s
	default:
		store = middleware.NewMemoryStore()
	}
	return []mux.MiddlewareFunc{
		middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.MutationRPM,
			Store:             store,
		}),
	}
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	httpapi.Respond(w, r, http.StatusNotFound, httpapi.CodeNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpapi.Respond(w, r, http.StatusMethodNotAllowed, httpapi.CodeMethodNotAllowed)
}
