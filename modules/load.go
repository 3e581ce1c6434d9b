package modules

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/commerce-admin/modules/menus"
	"github.com/iota-uz/commerce-admin/modules/pages"
	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
)

type Options struct {
	PageSize    int
	MaxPageSize int
	Flash       *notifier.FlashStore
	// PresetStore keeps saved list filters. Nil keeps them in memory.
	PresetStore filters.TabStore
	// MenuCache shares fetched menus through redis. Nil caches in memory.
	MenuCache    *redis.Client
	MenuCacheTTL time.Duration
	// Middlewares wrap every module controller, e.g. rate limiting.
	Middlewares []mux.MiddlewareFunc
	Logger      *logrus.Logger
}

func BuiltInModules(opts Options) []application.Module {
	return []application.Module{
		pages.NewModule(pages.ModuleOptions{
			PageSize:    opts.PageSize,
			MaxPageSize: opts.MaxPageSize,
			PresetStore: opts.PresetStore,
			Flash:       opts.Flash,
			Middlewares: opts.Middlewares,
		}),
		menus.NewModule(menus.ModuleOptions{
			PageSize:    opts.PageSize,
			CacheTTL:    opts.MenuCacheTTL,
			Redis:       opts.MenuCache,
			Flash:       opts.Flash,
			Middlewares: opts.Middlewares,
			Logger:      opts.Logger,
		}),
	}
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return errors.Wrapf(err, "register module %s", module.Name())
		}
	}
	return nil
}
