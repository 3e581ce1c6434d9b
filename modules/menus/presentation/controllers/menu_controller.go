package controllers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/controllers/dtos"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/mappers"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/templates/menus"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/urls"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/viewmodels"
	"github.com/iota-uz/commerce-admin/modules/menus/services"
	"github.com/iota-uz/commerce-admin/pkg/application"
	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/intl"
	"github.com/iota-uz/commerce-admin/pkg/middleware"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
	"github.com/iota-uz/commerce-admin/pkg/shared"
)

type MenusControllerConfig struct {
	App   application.Application
	Flash *notifier.FlashStore
	// Middlewares run before the page middlewares, e.g. rate limiting.
	Middlewares []mux.MiddlewareFunc
}

type MenusController struct {
	app         application.Application
	menuService *services.MenuService
	flash       *notifier.FlashStore
	middlewares []mux.MiddlewareFunc
}

func NewMenusController(cfg MenusControllerConfig) application.Controller {
	return &MenusController{
		app:         cfg.App,
		menuService: cfg.App.Service(services.MenuService{}).(*services.MenuService),
		flash:       cfg.Flash,
		middlewares: cfg.Middlewares,
	}
}

func (c *MenusController) Key() string {
	return urls.MenuListPath
}

func (c *MenusController) Register(r *mux.Router) {
	router := r.PathPrefix(urls.MenuListPath).Subrouter()
	for _, mw := range c.middlewares {
		router.Use(mw)
	}
	router.Use(
		middleware.ProvideLocalizer(c.app),
		middleware.NavItems(c.app),
		middleware.WithPageContext(c.flash),
	)

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Details).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Submit).Methods(http.MethodPost)
	router.HandleFunc("/{id}/delete", c.Delete).Methods(http.MethodPost)
	router.HandleFunc("/{id}/items", c.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/{id}/items/{itemID}", c.UpdateItem).Methods(http.MethodPost)
	router.HandleFunc("/{id}/items/{itemID}/open", c.Open).Methods(http.MethodGet)
	router.HandleFunc("/{id}/close", c.Close).Methods(http.MethodGet)
}

func (c *MenusController) serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	requestID := composables.UseRequestID(r.Context())
	composables.UseLogger(r.Context()).WithError(err).Error(msg)
	l, _ := intl.UseLocalizer(r.Context())
	http.Error(w, intl.T(l, "Errors.Internal", map[string]any{"RequestID": requestID}), http.StatusInternalServerError)
}

// fail maps repository errors to a response.
func (c *MenusController) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, menu.ErrMenuNotFound):
		http.NotFound(w, r)
	case errors.Is(err, menu.ErrUnknownMenuItemType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		c.serverError(w, r, err, msg)
	}
}

func notify(r *http.Request, status notifier.Status, key string) {
	ctx := r.Context()
	composables.UseNotifier(ctx).Notify(notifier.Notification{
		Status: status,
		Text:   composables.UsePageCtx(ctx).T(key),
	})
}

func (c *MenusController) List(w http.ResponseWriter, r *http.Request) {
	result, err := c.menuService.List(r.Context(), r.URL.Query().Get("after"))
	if err != nil {
		c.serverError(w, r, err, "failed to list menus")
		return
	}
	props := &menus.ListPageProps{List: mappers.ListToViewModel(result)}
	templ.Handler(menus.List(props), templ.WithStreaming()).ServeHTTP(w, r)
}

// detailsProps loads the menu and prepares the dialogs state asks for.
func (c *MenusController) detailsProps(r *http.Request, id string, state urls.UIState) (*menus.DetailsPageProps, error) {
	m, err := c.menuService.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	vm, err := mappers.MenuToViewModel(m)
	if err != nil {
		return nil, err
	}
	props := &menus.DetailsPageProps{
		Menu:       vm,
		State:      state,
		Busy:       c.menuService.Busy(id, services.KindUpdate),
		DeleteBusy: c.menuService.Busy(id, services.KindDelete),
	}
	switch state.Dialog {
	case urls.DialogAddItem:
		props.Item = mappers.AddItemDialog(id, state)
		props.Item.Disabled = c.menuService.Busy(id, services.KindItemCreate)
	case urls.DialogEditItem:
		props.Item = mappers.EditItemDialog(id, m, state)
		props.Item.Disabled = c.menuService.Busy(id, services.KindItemUpdate)
	}
	return props, nil
}

func (c *MenusController) renderDetails(w http.ResponseWriter, r *http.Request, props *menus.DetailsPageProps, status int) {
	templ.Handler(menus.Details(props), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (c *MenusController) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	params, err := urls.ParseMenuURLQueryParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props, err := c.detailsProps(r, id, urls.StateFromParams(params))
	if err != nil {
		c.fail(w, r, err, "failed to load menu")
		return
	}
	templ.Handler(menus.Details(props), templ.WithStreaming()).ServeHTTP(w, r)
}

// Submit saves the editor: the rename plus the moves and removals that turn
// the saved tree into the edited one. Mutation errors and impossible
// placements re-render the page with the messages.
func (c *MenusController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := shared.ParseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	dto, err := composables.UseForm(&dtos.SubmitDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs, ok := dto.Ok(ctx); !ok {
		props, err := c.detailsProps(r, id, urls.UIState{})
		if err != nil {
			c.fail(w, r, err, "failed to load menu")
			return
		}
		for _, msg := range errs {
			props.Errors = append(props.Errors, msg)
		}
		c.renderDetails(w, r, props, http.StatusUnprocessableEntity)
		return
	}

	var mutationErrs []menu.MutationError
	if dto.HasTree() {
		edited, err := dto.EditedTree()
		if errors.Is(err, menu.ErrInvalidPlacement) {
			props, err := c.detailsProps(r, id, urls.UIState{})
			if err != nil {
				c.fail(w, r, err, "failed to load menu")
				return
			}
			props.Errors = []string{composables.UsePageCtx(ctx).T("Menus.Details.Errors.Placement")}
			c.renderDetails(w, r, props, http.StatusUnprocessableEntity)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mutationErrs, err = c.menuService.SubmitTree(ctx, id, dto.Name, edited)
		if err != nil {
			c.fail(w, r, err, "failed to save menu")
			return
		}
	} else {
		mutationErrs, err = c.menuService.Submit(ctx, id, dto.ToSubmitData())
		if err != nil {
			c.fail(w, r, err, "failed to save menu")
			return
		}
	}
	if len(mutationErrs) > 0 {
		props, err := c.detailsProps(r, id, urls.UIState{})
		if err != nil {
			c.fail(w, r, err, "failed to load menu")
			return
		}
		props.Errors = mappers.Messages(mutationErrs)
		c.renderDetails(w, r, props, http.StatusUnprocessableEntity)
		return
	}
	notify(r, notifier.StatusSuccess, "Menus.Details.Updated")
	shared.Redirect(w, r, urls.MenuURL(id, urls.MenuURLQueryParams{}))
}

func (c *MenusController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	errs, err := c.menuService.Delete(r.Context(), id)
	if err != nil {
		c.fail(w, r, err, "failed to delete menu")
		return
	}
	if len(errs) > 0 {
		state := urls.Reduce(urls.UIState{}, urls.OpenRemove{})
		props, err := c.detailsProps(r, id, state)
		if err != nil {
			c.fail(w, r, err, "failed to load menu")
			return
		}
		props.DeleteErrors = mappers.Messages(errs)
		c.renderDetails(w, r, props, http.StatusUnprocessableEntity)
		return
	}
	notify(r, notifier.StatusSuccess, "Menus.Delete.Deleted")
	shared.Redirect(w, r, urls.MenuListPath)
}

// renderItemDialog answers a failed item form. htmx gets the dialog alone,
// a plain form post gets the whole page with the dialog open.
func (c *MenusController) renderItemDialog(w http.ResponseWriter, r *http.Request, id string, state urls.UIState, fill func(d *viewmodels.ItemDialog)) {
	props, err := c.detailsProps(r, id, state)
	if err != nil {
		c.fail(w, r, err, "failed to load menu")
		return
	}
	fill(props.Item)
	if shared.IsHxRequest(r) {
		templ.Handler(menus.ItemDialog(props.Item), templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}
	c.renderDetails(w, r, props, http.StatusUnprocessableEntity)
}

// itemForm decodes and validates an item dialog post. It writes the
// response itself and returns false when the form cannot be submitted.
func (c *MenusController) itemForm(w http.ResponseWriter, r *http.Request, id string, state urls.UIState) (menu.MenuItemDialogFormData, bool) {
	dto, err := composables.UseForm(&dtos.MenuItemDialogFormDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return menu.MenuItemDialogFormData{}, false
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		c.renderItemDialog(w, r, id, state, func(d *viewmodels.ItemDialog) {
			d.Name, d.LinkType, d.LinkValue = dto.Name, dto.LinkType, dto.LinkValue
			d.Errors = errs
		})
		return menu.MenuItemDialogFormData{}, false
	}
	data, err := dto.ToFormData()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return menu.MenuItemDialogFormData{}, false
	}
	return data, true
}

func (c *MenusController) CreateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	state := urls.Reduce(urls.UIState{}, urls.OpenAddItem{})
	data, ok := c.itemForm(w, r, id, state)
	if !ok {
		return
	}
	errs, err := c.menuService.CreateItem(r.Context(), id, data)
	if err != nil {
		c.fail(w, r, err, "failed to create menu item")
		return
	}
	if len(errs) > 0 {
		c.renderItemDialog(w, r, id, state, func(d *viewmodels.ItemDialog) {
			d.Name, d.LinkType, d.LinkValue = data.Name, string(data.LinkType), data.LinkValue
			d.Messages = mappers.Messages(errs)
		})
		return
	}
	notify(r, notifier.StatusSuccess, "Menus.Item.Created")
	shared.Replace(w, r, urls.MenuURL(id, urls.Reduce(state, urls.Close{}).Params()))
}

func (c *MenusController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	itemID := shared.PathVar(r, "itemID")
	state := urls.Reduce(urls.UIState{}, urls.OpenEditItem{ID: itemID})
	data, ok := c.itemForm(w, r, id, state)
	if !ok {
		return
	}
	errs, err := c.menuService.UpdateItem(r.Context(), id, itemID, data)
	if err != nil {
		c.fail(w, r, err, "failed to update menu item")
		return
	}
	if len(errs) > 0 {
		c.renderItemDialog(w, r, id, state, func(d *viewmodels.ItemDialog) {
			d.Name, d.LinkType, d.LinkValue = data.Name, string(data.LinkType), data.LinkValue
			d.Messages = mappers.Messages(errs)
		})
		return
	}
	notify(r, notifier.StatusSuccess, "Menus.Item.Updated")
	shared.Redirect(w, r, urls.MenuURL(id, urls.MenuURLQueryParams{}))
}

// Open follows the link stored on a menu item. Only links already saved in
// the menu are followed; an item without one is not found.
func (c *MenusController) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	m, err := c.menuService.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err, "failed to load menu")
		return
	}
	item, found := menu.Lookup(m.Items, shared.PathVar(r, "itemID"))
	if !found || item.Link == nil {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, urls.ItemDestination(item.Link).URL, http.StatusFound)
}

// Close drops the dialog state from the menu URL without a history entry.
func (c *MenusController) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	params, err := urls.ParseMenuURLQueryParams(r.URL.Query())
	if err != nil {
		params = urls.MenuURLQueryParams{}
	}
	next := urls.Reduce(urls.StateFromParams(params), urls.Close{})
	shared.Replace(w, r, urls.MenuURL(id, next.Params()))
}
