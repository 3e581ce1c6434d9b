// Package menu models navigation menus: an ordered forest of items, each
// pointing at a category, collection, page or external URL.
package menu

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrMenuNotFound        = errors.New("menu not found")
	ErrUnknownMenuItemType = errors.New("unknown menu item type")
)

type MenuItemType string

const (
	TypeCategory   MenuItemType = "category"
	TypeCollection MenuItemType = "collection"
	TypePage       MenuItemType = "page"
	TypeLink       MenuItemType = "link"
)

var itemTypes = []MenuItemType{TypeCategory, TypeCollection, TypePage, TypeLink}

func ItemTypes() []MenuItemType {
	return append([]MenuItemType(nil), itemTypes...)
}

// ParseMenuItemType is the only way a raw tag becomes a MenuItemType.
func ParseMenuItemType(s string) (MenuItemType, error) {
	for _, t := range itemTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownMenuItemType, "%q", s)
}

// Link is what a menu item points at. The set of implementations is closed.
type Link interface {
	Type() MenuItemType
	// Value is the linked node id, or the URL for external links.
	Value() string
	// Label is the human readable name of the target.
	Label() string
	sealed()
}

type CategoryLink struct {
	ID   string
	Name string
}

type CollectionLink struct {
	ID   string
	Name string
}

type PageLink struct {
	ID    string
	Title string
}

type URLLink struct {
	URL string
}

func (l CategoryLink) Type() MenuItemType { return TypeCategory }
func (l CategoryLink) Value() string      { return l.ID }
func (l CategoryLink) Label() string      { return l.Name }
func (CategoryLink) sealed()              {}

func (l CollectionLink) Type() MenuItemType { return TypeCollection }
func (l CollectionLink) Value() string      { return l.ID }
func (l CollectionLink) Label() string      { return l.Name }
func (CollectionLink) sealed()              {}

func (l PageLink) Type() MenuItemType { return TypePage }
func (l PageLink) Value() string      { return l.ID }
func (l PageLink) Label() string      { return l.Title }
func (PageLink) sealed()              {}

func (l URLLink) Type() MenuItemType { return TypeLink }
func (l URLLink) Value() string      { return l.URL }
func (l URLLink) Label() string      { return l.URL }
func (URLLink) sealed()              {}

// LinkCases holds one handler per link variant. MatchLink calls exactly one.
type LinkCases[T any] struct {
	Category   func(CategoryLink) T
	Collection func(CollectionLink) T
	Page       func(PageLink) T
	URL        func(URLLink) T
}

func MatchLink[T any](link Link, cases LinkCases[T]) T {
	switch l := link.(type) {
	case CategoryLink:
		return cases.Category(l)
	case CollectionLink:
		return cases.Collection(l)
	case PageLink:
		return cases.Page(l)
	case URLLink:
		return cases.URL(l)
	}
	// Link is sealed, so this is reached only for a nil link.
	panic(fmt.Sprintf("menu: unmatched link %T", link))
}

// NewLink builds the variant for t. Labels are unknown at this point and left
// empty.
func NewLink(t MenuItemType, value string) (Link, error) {
	switch t {
	case TypeCategory:
		return CategoryLink{ID: value}, nil
	case TypeCollection:
		return CollectionLink{ID: value}, nil
	case TypePage:
		return PageLink{ID: value}, nil
	case TypeLink:
		return URLLink{URL: value}, nil
	}
	return nil, errors.Wrapf(ErrUnknownMenuItemType, "%q", t)
}

type MenuItem struct {
	ID   string
	Name string
	// Link is nil for items that point nowhere.
	Link     Link
	Children []*MenuItem
}

type Menu struct {
	ID    string
	Name  string
	Slug  string
	Items []*MenuItem
}

type Summary struct {
	ID        string
	Name      string
	Slug      string
	ItemCount int
}

type ListParams struct {
	First int
	After string
}

type ListResult struct {
	Menus       []Summary
	HasNextPage bool
	EndCursor   string
	TotalCount  int
}

// UpdateParams is one combined save of the editor: rename, moves and
// removals travel in a single request.
type UpdateParams struct {
	ID        string
	Name      string
	Moves     []Move
	RemoveIDs []string
}

// UpdateResult keeps the error list of each sub-mutation apart.
type UpdateResult struct {
	BulkDeleteErrors []MutationError
	MoveErrors       []MutationError
	UpdateErrors     []MutationError
}

// Errors concatenates the sub-mutation errors: bulk delete, then move, then
// update. Duplicates are kept.
func (r *UpdateResult) Errors() []MutationError {
	out := make([]MutationError, 0, len(r.BulkDeleteErrors)+len(r.MoveErrors)+len(r.UpdateErrors))
	out = append(out, r.BulkDeleteErrors...)
	out = append(out, r.MoveErrors...)
	return append(out, r.UpdateErrors...)
}

type Repository interface {
	List(ctx context.Context, params *ListParams) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*Menu, error)
	Delete(ctx context.Context, id string) ([]MutationError, error)
	Update(ctx context.Context, params *UpdateParams) (*UpdateResult, error)
	CreateItem(ctx context.Context, input *MenuItemCreateInput) ([]MutationError, error)
	UpdateItem(ctx context.Context, id string, input *MenuItemInput) ([]MutationError, error)
}
