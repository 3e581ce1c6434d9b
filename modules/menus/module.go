package menus

import (
	"embed"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/cache"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/gql"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/controllers"
	"github.com/iota-uz/commerce-admin/modules/menus/services"
	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/inflight"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
)

//go:embed presentation/locales/*.toml
var localeFiles embed.FS

type ModuleOptions struct {
	PageSize int
	// CacheTTL bounds how long a fetched menu is served without a
	// roundtrip. Zero disables caching.
	CacheTTL time.Duration
	// Redis shares the menu cache between instances. Nil keeps it in memory.
	Redis *redis.Client
	// Guard rejects overlapping mutations of the same menu.
	Guard       *inflight.Guard
	Flash       *notifier.FlashStore
	Middlewares []mux.MiddlewareFunc
	// Logger records an action log entry per successful mutation.
	Logger *logrus.Logger
}

func NewModule(opts ModuleOptions) application.Module {
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if opts.Guard == nil {
		opts.Guard = inflight.New()
	}
	if opts.Flash == nil {
		opts.Flash = notifier.NewFlashStore("flash", nil)
	}
	return &Module{opts: opts}
}

type Module struct {
	opts ModuleOptions
}

func (m *Module) cache() cache.Cache {
	if m.opts.Redis != nil {
		return cache.NewRedisCache(m.opts.Redis, m.opts.CacheTTL)
	}
	return cache.NewMemoryCache(m.opts.CacheTTL)
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)
	app.RegisterOperations(&gql.Operations)

	menuCache := m.cache()
	cache.RegisterInvalidation(app.EventPublisher(), menuCache)
	if m.opts.Logger != nil {
		services.RegisterActionLog(app.EventPublisher(), m.opts.Logger)
	}
	repo := cache.NewCachedRepository(gql.NewMenuRepository(app.GraphQL()), menuCache)

	app.RegisterServices(
		services.NewMenuService(repo, app.EventPublisher(), m.opts.Guard, m.opts.PageSize),
	)
	app.RegisterControllers(
		controllers.NewMenusController(controllers.MenusControllerConfig{
			App:         app,
			Flash:       m.opts.Flash,
			Middlewares: m.opts.Middlewares,
		}),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "menus"
}
