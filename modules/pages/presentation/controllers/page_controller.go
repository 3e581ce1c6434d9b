package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/iota-uz/commerce-admin/components/filter"
	"github.com/iota-uz/commerce-admin/modules/pages/domain/pagetype"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/controllers/dtos"
	pagefilters "github.com/iota-uz/commerce-admin/modules/pages/presentation/filters"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/mappers"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/templates/pages"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/urls"
	"github.com/iota-uz/commerce-admin/modules/pages/services"
	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/intl"
	"github.com/iota-uz/commerce-admin/pkg/middleware"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
	"github.com/iota-uz/commerce-admin/pkg/shared"
)

const pageTypeSearchParam = "search"

type PagesControllerConfig struct {
	App         application.Application
	Presets     *filters.TabUtils
	Flash       *notifier.FlashStore
	Middlewares []mux.MiddlewareFunc
}

type PagesController struct {
	app             application.Application
	pageService     *services.PageService
	pageTypeService *services.PageTypeService
	presets         *filters.TabUtils
	flash           *notifier.FlashStore
	middlewares     []mux.MiddlewareFunc
}

func NewPagesController(cfg PagesControllerConfig) application.Controller {
	return &PagesController{
		app:             cfg.App,
		pageService:     cfg.App.Service(services.PageService{}).(*services.PageService),
		pageTypeService: cfg.App.Service(services.PageTypeService{}).(*services.PageTypeService),
		presets:         cfg.Presets,
		flash:           cfg.Flash,
		middlewares:     cfg.Middlewares,
	}
}

func (c *PagesController) Key() string {
	return urls.PageListPath
}

func (c *PagesController) Register(r *mux.Router) {
	router := r.PathPrefix(urls.PageListPath).Subrouter()
	for _, mw := range c.middlewares {
		router.Use(mw)
	}
	router.Use(
		middleware.ProvideLocalizer(c.app),
		middleware.NavItems(c.app),
		middleware.WithPageContext(c.flash),
	)

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/page-types", c.PageTypes).Methods(http.MethodGet)
	router.HandleFunc("/filters", c.ApplyFilters).Methods(http.MethodPost)
	router.HandleFunc("/presets", c.SavePreset).Methods(http.MethodPost)
	router.HandleFunc("/presets/{tab:[0-9]+}/delete", c.DeletePreset).Methods(http.MethodPost)
}

func (c *PagesController) serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	requestID := composables.UseRequestID(r.Context())
	composables.UseLogger(r.Context()).WithError(err).Error(msg)
	l, _ := intl.UseLocalizer(r.Context())
	http.Error(w, intl.T(l, "Errors.Internal", map[string]any{"RequestID": requestID}), http.StatusInternalServerError)
}

func pageTypeSearchURL(index int) string {
	return shared.WithQuery(urls.PageTypesPath, url.Values{"index": {strconv.Itoa(index)}})
}

func pageTypeFetchMoreURL(index int, search string, info pagetype.PageInfo) string {
	if !info.HasNextPage || info.EndCursor == "" {
		return ""
	}
	q := url.Values{"index": {strconv.Itoa(index)}, "after": {info.EndCursor}}
	if search != "" {
		q.Set(pageTypeSearchParam, search)
	}
	return shared.WithQuery(urls.PageTypesPath, q)
}

// mergePageTypes appends the entries of extra missing from base.
func mergePageTypes(base, extra []pagetype.PageType) []pagetype.PageType {
	seen := make(map[string]bool, len(base))
	out := make([]pagetype.PageType, 0, len(base)+len(extra))
	for _, pt := range base {
		seen[pt.ID] = true
		out = append(out, pt)
	}
	for _, pt := range extra {
		if !seen[pt.ID] {
			seen[pt.ID] = true
			out = append(out, pt)
		}
	}
	return out
}

func presetTabs(tabs []filters.Tab, current int) []filter.TabLink {
	links := make([]filter.TabLink, 0, len(tabs))
	for i, tab := range tabs {
		q, err := url.ParseQuery(tab.Data)
		if err != nil {
			q = url.Values{}
		}
		q.Set(filters.ActiveTabParam, strconv.Itoa(i+1))
		links = append(links, filter.TabLink{
			Name:      tab.Name,
			Href:      shared.WithQuery(urls.PageListPath, q),
			DeleteURL: urls.DeletePresetURL(i + 1),
			Selected:  current == i+1,
		})
	}
	return links
}

func (c *PagesController) filterPanel(r *http.Request, params urls.PageListURLQueryParams) (filter.PanelProps[pagefilters.PageListFilterKey], error) {
	ctx := r.Context()
	logger := composables.UseLogger(ctx)
	pageCtx := composables.UsePageCtx(ctx)

	found, err := c.pageTypeService.SearchPageTypes(ctx, "", 0, "")
	if err != nil {
		return filter.PanelProps[pagefilters.PageListFilterKey]{}, err
	}
	// Labels of selected page types outside the first search page.
	selected, err := c.pageTypeService.GetPageTypes(ctx, params.PageTypes)
	if err != nil {
		logger.WithError(err).Warn("failed to resolve selected page types")
	}

	opts := pagefilters.GetFilterOpts(pagefilters.PageListFilterOptsProps{
		Params:    &params.PageListURLFilters,
		PageTypes: mergePageTypes(found.Nodes, selected),
		PageTypesProps: filters.SearchWithFetchMoreProps{
			HasMore:      found.PageInfo.HasNextPage,
			SearchURL:    pageTypeSearchURL(0),
			FetchMoreURL: pageTypeFetchMoreURL(0, "", found.PageInfo),
			SearchParam:  pageTypeSearchParam,
		},
	})

	tabs, err := c.presets.GetFilterTabs(ctx)
	if err != nil {
		logger.WithError(err).Warn("failed to load filter presets")
		tabs = nil
	}
	q := r.URL.Query()
	current := pagefilters.Utils.GetFiltersCurrentTab(q, tabs)

	hidden := map[string]string{}
	if params.Query != "" {
		hidden["query"] = params.Query
	}
	if params.Sort != "" {
		hidden["sort"] = string(params.Sort)
		hidden["asc"] = strconv.FormatBool(params.Asc)
	}

	return filter.PanelProps[pagefilters.PageListFilterKey]{
		ApplyURL:      urls.PageFiltersPath,
		SavePresetURL: urls.PagePresetsPath,
		ResetURL:      urls.PageListPath,
		Elements:      pagefilters.CreateFilterStructure(pageCtx.GetLocalizer(), opts),
		Tabs:          presetTabs(tabs, current),
		CurrentTab:    current,
		CustomTab:     current == len(tabs)+1,
		PresetData:    pagefilters.Utils.GetActiveFilters(q).Encode(),
		Hidden:        hidden,
		Labels:        pages.FilterLabels(pageCtx),
	}, nil
}

func (c *PagesController) List(w http.ResponseWriter, r *http.Request) {
	params, err := urls.ParsePageListURLQueryParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := c.pageService.ListPages(r.Context(), mappers.FindParamsFromURL(params))
	if err != nil {
		c.serverError(w, r, err, "failed to list pages")
		return
	}
	props := &pages.IndexPageProps{
		Params: params,
		Pages:  mappers.PagesToViewModels(result.Pages),
		Pager:  mappers.PagerFromResult(params, result),
	}
	if shared.IsHxRequest(r) {
		templ.Handler(pages.PagesTable(props), templ.WithStreaming()).ServeHTTP(w, r)
		return
	}
	panel, err := c.filterPanel(r, params)
	if err != nil {
		c.serverError(w, r, err, "failed to build page filters")
		return
	}
	props.Filter = panel
	templ.Handler(pages.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}

// PageTypes serves the autocomplete options of the page type filter, both
// for a new search and for the next page of an existing one.
func (c *PagesController) PageTypes(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseQuery(&dtos.PageTypeSearchDTO{}, r)
	if err != nil || dto.Index < 0 {
		http.Error(w, "invalid page type search", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	found, err := c.pageTypeService.SearchPageTypes(ctx, dto.Search, 0, dto.After)
	if err != nil {
		c.serverError(w, r, err, "failed to search page types")
		return
	}

	var selected []filters.Choice
	// A fetch-more request appends below options that are already rendered.
	if dto.After == "" {
		ids := r.URL.Query()[fmt.Sprintf("filters[%d].value", dto.Index)]
		nodes, err := c.pageTypeService.GetPageTypes(ctx, ids)
		if err != nil {
			composables.UseLogger(ctx).WithError(err).Warn("failed to resolve selected page types")
		}
		selected = filters.SelectedChoices(filters.MapSingleValueNodeToChoice(nodes), ids)
	}

	choices := filters.RankChoices(filters.MapNodeToChoice(found.Nodes), dto.Search)
	next := pageTypeFetchMoreURL(dto.Index, dto.Search, found.PageInfo)
	templ.Handler(pages.PageTypeOptions(dto.Index, choices, selected, next)).ServeHTTP(w, r)
}

// ApplyFiltersURL merges the submitted elements into a list URL. Pagination
// and the active preset are reset.
func ApplyFiltersURL(dto *dtos.ApplyFiltersDTO) string {
	params := urls.PageListURLQueryParams{
		PageListURLSort: urls.PageListURLSort{Sort: urls.PageListURLSortField(dto.Sort), Asc: dto.Asc},
		Search:          urls.Search{Query: dto.Query},
	}
	for _, el := range dto.Elements() {
		f := pagefilters.GetFilterQueryParam(el)
		if f.PageTypes != nil {
			params.PageTypes = f.PageTypes
		}
	}
	return urls.PageListURL(params)
}

func (c *PagesController) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.ApplyFiltersDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	shared.Redirect(w, r, ApplyFiltersURL(dto))
}

func (c *PagesController) SavePreset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dto, err := composables.UseForm(&dtos.SavePresetDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs, ok := dto.Ok(ctx); !ok {
		for _, msg := range errs {
			composables.UseNotifier(ctx).Notify(notifier.Notification{Status: notifier.StatusError, Text: msg})
		}
		shared.Redirect(w, r, shared.WithQuery(urls.PageListPath, pagefilters.Utils.GetActiveFilters(parseData(dto.Data))))
		return
	}

	data := pagefilters.Utils.GetActiveFilters(parseData(dto.Data))
	if err := c.presets.SaveFilterTab(ctx, dto.Name, data.Encode()); err != nil {
		c.serverError(w, r, err, "failed to save filter preset")
		return
	}
	tabs, err := c.presets.GetFilterTabs(ctx)
	if err != nil {
		c.serverError(w, r, err, "failed to load filter presets")
		return
	}
	composables.UseNotifier(ctx).Notify(notifier.Notification{
		Status: notifier.StatusSuccess,
		Text:   composables.UsePageCtx(ctx).T("Pages.Filters.PresetSaved"),
	})
	data.Set(filters.ActiveTabParam, strconv.Itoa(len(tabs)))
	shared.Redirect(w, r, shared.WithQuery(urls.PageListPath, data))
}

func (c *PagesController) DeletePreset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tab, err := strconv.Atoi(mux.Vars(r)["tab"])
	if err != nil {
		http.Error(w, "invalid preset", http.StatusBadRequest)
		return
	}
	if err := c.presets.DeleteFilterTab(ctx, tab); err != nil {
		if errors.Is(err, filters.ErrTabNotFound) {
			http.NotFound(w, r)
			return
		}
		c.serverError(w, r, err, "failed to delete filter preset")
		return
	}
	composables.UseNotifier(ctx).Notify(notifier.Notification{
		Status: notifier.StatusSuccess,
		Text:   composables.UsePageCtx(ctx).T("Pages.Filters.PresetDeleted"),
	})
	shared.Redirect(w, r, urls.PageListPath)
}

func parseData(raw string) url.Values {
	q, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return q
}
