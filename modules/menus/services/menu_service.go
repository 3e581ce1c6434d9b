package services

import (
	"context"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
	"github.com/iota-uz/commerce-admin/pkg/inflight"
	"github.com/iota-uz/commerce-admin/pkg/metrics"
)

// Mutation kinds guarded per menu.
const (
	KindDelete     = "delete"
	KindUpdate     = "update"
	KindItemCreate = "item-create"
	KindItemUpdate = "item-update"
)

type MenuService struct {
	repo      menu.Repository
	publisher eventbus.EventBus
	guard     *inflight.Guard
	pageSize  int
}

func NewMenuService(repo menu.Repository, publisher eventbus.EventBus, guard *inflight.Guard, pageSize int) *MenuService {
	if guard == nil {
		guard = inflight.New()
	}
	return &MenuService{repo: repo, publisher: publisher, guard: guard, pageSize: pageSize}
}

func busyError() []menu.MutationError {
	return []menu.MutationError{{Code: menu.CodeBusy, Message: "Another save of this menu is still running"}}
}

// run executes fn unless the same mutation kind is already running for
// menuID. fn gets a context that outlives the request so a closed dialog
// never aborts a sent mutation.
func (s *MenuService) run(ctx context.Context, menuID, kind string, fn func(ctx context.Context) ([]menu.MutationError, error)) ([]menu.MutationError, error) {
	release, ok := s.guard.TryAcquire(menuID, kind)
	if !ok {
		composables.UseLogger(ctx).WithField("menu-id", menuID).WithField("kind", kind).Warn("rejected concurrent menu mutation")
		metrics.ObserveMutation(kind, metrics.OutcomeBusy)
		return busyError(), nil
	}
	defer release()
	errs, err := fn(context.WithoutCancel(ctx))
	switch {
	case err != nil:
		metrics.ObserveMutation(kind, metrics.OutcomeFailed)
	case len(errs) > 0:
		metrics.ObserveMutation(kind, metrics.OutcomeRejected)
	default:
		metrics.ObserveMutation(kind, metrics.OutcomeOK)
	}
	return errs, err
}

func (s *MenuService) Busy(menuID, kind string) bool {
	return s.guard.Busy(menuID, kind)
}

func (s *MenuService) List(ctx context.Context, after string) (*menu.ListResult, error) {
	return s.repo.List(ctx, &menu.ListParams{First: s.pageSize, After: after})
}

func (s *MenuService) GetByID(ctx context.Context, id string) (*menu.Menu, error) {
	return s.repo.GetByID(ctx, id)
}

// changed announces a mutation that reached the API. Cached copies of the
// menu are stale from here on, whatever errors the API reported.
func (s *MenuService) changed(menuID string, errs []menu.MutationError) {
	s.publisher.Publish(&menu.UpdatedEvent{MenuID: menuID, Rejected: len(errs)})
}

func (s *MenuService) Delete(ctx context.Context, id string) ([]menu.MutationError, error) {
	return s.run(ctx, id, KindDelete, func(ctx context.Context) ([]menu.MutationError, error) {
		errs, err := s.repo.Delete(ctx, id)
		switch {
		case err != nil:
			return nil, err
		case len(errs) > 0:
			s.changed(id, errs)
		default:
			s.publisher.Publish(&menu.DeletedEvent{MenuID: id})
		}
		return errs, nil
	})
}

// Submit saves one editor session: the rename, the moves and the removals go
// out as a single combined mutation. The returned list is the bulk delete
// errors, then the move errors, then the update errors.
func (s *MenuService) Submit(ctx context.Context, id string, data menu.SubmitData) ([]menu.MutationError, error) {
	return s.run(ctx, id, KindUpdate, func(ctx context.Context) ([]menu.MutationError, error) {
		result, err := s.repo.Update(ctx, &menu.UpdateParams{
			ID:        id,
			Name:      data.Name,
			Moves:     menu.GetMoves(data),
			RemoveIDs: menu.GetRemoveIDs(data),
		})
		if err != nil {
			return nil, err
		}
		errs := result.Errors()
		s.changed(id, errs)
		return errs, nil
	})
}

// SubmitTree diffs edited against the current menu and submits the result.
func (s *MenuService) SubmitTree(ctx context.Context, id, name string, edited []*menu.MenuItem) ([]menu.MutationError, error) {
	baseline, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	moves, removeIDs := menu.Diff(baseline.Items, edited)
	return s.Submit(ctx, id, menu.SubmitData{Name: name, Operations: menu.Operations(moves, removeIDs)})
}

func (s *MenuService) CreateItem(ctx context.Context, menuID string, data menu.MenuItemDialogFormData) ([]menu.MutationError, error) {
	input, err := menu.GetMenuItemCreateInputData(menuID, data)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, menuID, KindItemCreate, func(ctx context.Context) ([]menu.MutationError, error) {
		errs, err := s.repo.CreateItem(ctx, input)
		if err != nil {
			return nil, err
		}
		s.changed(menuID, errs)
		return errs, nil
	})
}

func (s *MenuService) UpdateItem(ctx context.Context, menuID, itemID string, data menu.MenuItemDialogFormData) ([]menu.MutationError, error) {
	input, err := menu.GetMenuItemInputData(data)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, menuID, KindItemUpdate, func(ctx context.Context) ([]menu.MutationError, error) {
		errs, err := s.repo.UpdateItem(ctx, itemID, input)
		if err != nil {
			return nil, err
		}
		s.changed(menuID, errs)
		return errs, nil
	})
}
