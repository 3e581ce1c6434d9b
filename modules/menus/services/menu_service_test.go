package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/cache"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
	"github.com/iota-uz/commerce-admin/pkg/inflight"
)

type stubRepo struct {
	current     *menu.Menu
	result      *menu.UpdateResult
	itemErrors  []menu.MutationError
	err         error
	gotUpdate   *menu.UpdateParams
	gotCreate   *menu.MenuItemCreateInput
	gotItemID   string
	gotItem     *menu.MenuItemInput
	block       chan struct{}
	entered     chan struct{}
	updateCtxOK bool
}

func (r *stubRepo) List(ctx context.Context, params *menu.ListParams) (*menu.ListResult, error) {
	return &menu.ListResult{}, r.err
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*menu.Menu, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.current, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) ([]menu.MutationError, error) {
	return r.itemErrors, r.err
}

func (r *stubRepo) Update(ctx context.Context, params *menu.UpdateParams) (*menu.UpdateResult, error) {
	r.gotUpdate = params
	if r.entered != nil {
		r.entered <- struct{}{}
	}
	if r.block != nil {
		<-r.block
	}
	r.updateCtxOK = ctx.Err() == nil
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

func (r *stubRepo) CreateItem(ctx context.Context, input *menu.MenuItemCreateInput) ([]menu.MutationError, error) {
	r.gotCreate = input
	return r.itemErrors, r.err
}

func (r *stubRepo) UpdateItem(ctx context.Context, id string, input *menu.MenuItemInput) ([]menu.MutationError, error) {
	r.gotItemID = id
	r.gotItem = input
	return r.itemErrors, r.err
}

type recorder struct {
	updated []string
	deleted []string
}

func newService(repo menu.Repository) (*MenuService, *recorder) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	bus := eventbus.NewEventPublisher(log)
	rec := &recorder{}
	bus.Subscribe(func(e *menu.UpdatedEvent) { rec.updated = append(rec.updated, e.MenuID) })
	bus.Subscribe(func(e *menu.DeletedEvent) { rec.deleted = append(rec.deleted, e.MenuID) })
	return NewMenuService(repo, bus, inflight.New(), 20), rec
}

func TestMenuService_SubmitErrorOrder(t *testing.T) {
	repo := &stubRepo{result: &menu.UpdateResult{
		UpdateErrors:     []menu.MutationError{{Field: "name", Message: "u1"}, {Field: "name", Message: "u2"}},
		MoveErrors:       []menu.MutationError{{Field: "moves", Message: "m1"}},
		BulkDeleteErrors: []menu.MutationError{{Field: "ids", Message: "d1"}, {Field: "ids", Message: "d1"}},
	}}
	svc, rec := newService(repo)

	errs, err := svc.Submit(context.Background(), "menu-1", menu.SubmitData{
		Name: "Footer",
		Operations: []menu.TreeOperation{
			{Type: menu.OperationRemove, ID: "x"},
			{Type: menu.OperationMove, ID: "a", ParentID: "b", SortOrder: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"d1", "d1", "m1", "u1", "u2"}, messages(errs))
	require.Equal(t, []string{"menu-1"}, rec.updated, "saves that reached the API publish")

	require.Equal(t, &menu.UpdateParams{
		ID:        "menu-1",
		Name:      "Footer",
		Moves:     []menu.Move{{ItemID: "a", ParentID: "b", SortOrder: 1}},
		RemoveIDs: []string{"x"},
	}, repo.gotUpdate)
}

func TestMenuService_SubmitSuccessPublishes(t *testing.T) {
	repo := &stubRepo{result: &menu.UpdateResult{}}
	svc, rec := newService(repo)
	errs, err := svc.Submit(context.Background(), "menu-1", menu.SubmitData{Name: "Footer"})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, []string{"menu-1"}, rec.updated)
}

func TestMenuService_SubmitTransportError(t *testing.T) {
	boom := errors.New("boom")
	svc, _ := newService(&stubRepo{err: boom})
	_, err := svc.Submit(context.Background(), "menu-1", menu.SubmitData{})
	require.ErrorIs(t, err, boom)
}

func TestMenuService_SubmitTree(t *testing.T) {
	repo := &stubRepo{
		current: &menu.Menu{ID: "menu-1", Items: []*menu.MenuItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}},
		result:  &menu.UpdateResult{},
	}
	svc, _ := newService(repo)
	_, err := svc.SubmitTree(context.Background(), "menu-1", "Footer", []*menu.MenuItem{
		{ID: "b", Children: []*menu.MenuItem{{ID: "a"}}},
	})
	require.NoError(t, err)
	require.Equal(t, []menu.Move{
		{ItemID: "b", SortOrder: 0},
		{ItemID: "a", ParentID: "b", SortOrder: 0},
	}, repo.gotUpdate.Moves)
	require.Equal(t, []string{"c"}, repo.gotUpdate.RemoveIDs)
}

func TestMenuService_ConcurrentSubmitIsRejected(t *testing.T) {
	repo := &stubRepo{
		result:  &menu.UpdateResult{},
		block:   make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	svc, _ := newService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan []menu.MutationError)
	go func() {
		errs, _ := svc.Submit(ctx, "menu-1", menu.SubmitData{Name: "first"})
		done <- errs
	}()
	<-repo.entered
	require.True(t, svc.Busy("menu-1", KindUpdate))

	errs, err := svc.Submit(context.Background(), "menu-1", menu.SubmitData{Name: "second"})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Equal(t, menu.CodeBusy, errs[0].Code)

	// Other menus and other kinds are not blocked.
	require.False(t, svc.Busy("menu-2", KindUpdate))
	require.False(t, svc.Busy("menu-1", KindItemCreate))

	// The request going away does not cancel the running mutation.
	cancel()
	close(repo.block)
	require.Empty(t, <-done)
	require.True(t, repo.updateCtxOK)
	require.Equal(t, "first", repo.gotUpdate.Name)
	require.False(t, svc.Busy("menu-1", KindUpdate))
}

func TestMenuService_Items(t *testing.T) {
	repo := &stubRepo{}
	svc, rec := newService(repo)
	ctx := context.Background()

	errs, err := svc.CreateItem(ctx, "menu-1", menu.MenuItemDialogFormData{Name: "Blog", LinkType: menu.TypeLink, LinkValue: "https://x.io"})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, &menu.MenuItemCreateInput{
		MenuItemInput: menu.MenuItemInput{Name: "Blog", URL: "https://x.io"},
		Menu:          "menu-1",
	}, repo.gotCreate)

	_, err = svc.UpdateItem(ctx, "menu-1", "item-1", menu.MenuItemDialogFormData{Name: "Shoes", LinkType: menu.TypeCategory, LinkValue: "c1"})
	require.NoError(t, err)
	require.Equal(t, "item-1", repo.gotItemID)
	require.Equal(t, &menu.MenuItemInput{Name: "Shoes", Category: "c1"}, repo.gotItem)
	require.Equal(t, []string{"menu-1", "menu-1"}, rec.updated)

	_, err = svc.CreateItem(ctx, "menu-1", menu.MenuItemDialogFormData{Name: "x", LinkType: "product"})
	require.ErrorIs(t, err, menu.ErrUnknownMenuItemType)

	repo.itemErrors = []menu.MutationError{{Field: "name", Code: menu.CodeRequired}}
	errs, err = svc.UpdateItem(ctx, "menu-1", "item-1", menu.MenuItemDialogFormData{Name: "", LinkType: menu.TypePage, LinkValue: "p"})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Len(t, rec.updated, 3)

	repo.err = errors.New("boom")
	_, err = svc.CreateItem(ctx, "menu-1", menu.MenuItemDialogFormData{Name: "x", LinkType: menu.TypePage, LinkValue: "p"})
	require.Error(t, err)
	require.Len(t, rec.updated, 3, "transport failures do not publish")
}

func TestMenuService_Delete(t *testing.T) {
	repo := &stubRepo{}
	svc, rec := newService(repo)
	errs, err := svc.Delete(context.Background(), "menu-1")
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, []string{"menu-1"}, rec.deleted)

	repo.itemErrors = []menu.MutationError{{Code: menu.CodeNotFound}}
	errs, _ = svc.Delete(context.Background(), "menu-2")
	require.Len(t, errs, 1)
	require.Equal(t, []string{"menu-1"}, rec.deleted)
	require.Equal(t, []string{"menu-2"}, rec.updated)
}

func messages(errs []menu.MutationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

// renamingAPI applies renames but rejects every move.
type renamingAPI struct {
	stubRepo
	name string
}

func (a *renamingAPI) GetByID(ctx context.Context, id string) (*menu.Menu, error) {
	return &menu.Menu{ID: id, Name: a.name, Items: []*menu.MenuItem{{ID: "a"}, {ID: "b"}}}, nil
}

func (a *renamingAPI) Update(ctx context.Context, params *menu.UpdateParams) (*menu.UpdateResult, error) {
	a.name = params.Name
	result := &menu.UpdateResult{}
	if len(params.Moves) > 0 {
		result.MoveErrors = []menu.MutationError{{Field: "moves", Message: "cannot move"}}
	}
	return result, nil
}

func TestMenuService_PartialSaveRefreshesCache(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	bus := eventbus.NewEventPublisher(log)
	menuCache := cache.NewMemoryCache(time.Hour)
	cache.RegisterInvalidation(bus, menuCache)
	api := &renamingAPI{name: "Old"}
	svc := NewMenuService(cache.NewCachedRepository(api, menuCache), bus, inflight.New(), 20)
	ctx := context.Background()

	m, err := svc.GetByID(ctx, "menu-1")
	require.NoError(t, err)
	require.Equal(t, "Old", m.Name)

	errs, err := svc.Submit(ctx, "menu-1", menu.SubmitData{
		Name:       "New",
		Operations: []menu.TreeOperation{{Type: menu.OperationMove, ID: "b", SortOrder: 0}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"cannot move"}, messages(errs))

	m, err = svc.GetByID(ctx, "menu-1")
	require.NoError(t, err)
	require.Equal(t, "New", m.Name)
}
