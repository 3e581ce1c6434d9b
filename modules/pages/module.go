package pages

import (
	"embed"

	"github.com/gorilla/mux"

	"github.com/iota-uz/commerce-admin/modules/pages/infrastructure/gql"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/controllers"
	pagefilters "github.com/iota-uz/commerce-admin/modules/pages/presentation/filters"
	"github.com/iota-uz/commerce-admin/modules/pages/services"
	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
)

//go:embed presentation/locales/*.toml
var localeFiles embed.FS

type ModuleOptions struct {
	PageSize    int
	MaxPageSize int
	// PresetStore keeps saved filter presets. Defaults to memory.
	PresetStore filters.TabStore
	Flash       *notifier.FlashStore
	Middlewares []mux.MiddlewareFunc
}

func NewModule(opts ModuleOptions) application.Module {
	if opts.PresetStore == nil {
		opts.PresetStore = filters.NewMemoryTabStore()
	}
	if opts.Flash == nil {
		opts.Flash = notifier.NewFlashStore("flash", nil)
	}
	return &Module{opts: opts}
}

type Module struct {
	opts ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)
	app.RegisterOperations(&gql.Operations)
	app.RegisterServices(
		services.NewPageService(gql.NewPageRepository(app.GraphQL()), m.opts.PageSize, m.opts.MaxPageSize),
		services.NewPageTypeService(gql.NewPageTypeRepository(app.GraphQL())),
	)
	app.RegisterControllers(
		controllers.NewPagesController(controllers.PagesControllerConfig{
			App:         app,
			Presets:     pagefilters.NewStorageUtils(m.opts.PresetStore),
			Flash:       m.opts.Flash,
			Middlewares: m.opts.Middlewares,
		}),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "pages"
}
