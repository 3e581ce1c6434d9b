package urls

import (
	"net/url"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	pageurls "github.com/iota-uz/commerce-admin/modules/pages/presentation/urls"
	"github.com/iota-uz/commerce-admin/pkg/shared"
)

const (
	MenuListPath       = "/navigation"
	CategoryListPath   = "/categories"
	CollectionListPath = "/collections"
)

type MenuURLQueryParams struct {
	Action Dialog `form:"action,omitempty"`
	ID     string `form:"id,omitempty"`
}

func ParseMenuURLQueryParams(q url.Values) (MenuURLQueryParams, error) {
	var p MenuURLQueryParams
	if err := shared.Decoder.Decode(&p, q); err != nil {
		return MenuURLQueryParams{}, err
	}
	return p, nil
}

func (p MenuURLQueryParams) Values() url.Values {
	v, err := shared.Encoder.Encode(p)
	if err != nil {
		return url.Values{}
	}
	return v
}

func menuPath(id string) string {
	return MenuListPath + "/" + url.PathEscape(id)
}

func MenuListURL(after string) string {
	if after == "" {
		return MenuListPath
	}
	return shared.WithQuery(MenuListPath, url.Values{"after": {after}})
}

func MenuURL(id string, params MenuURLQueryParams) string {
	return shared.WithQuery(menuPath(id), params.Values())
}

// MenuCloseURL closes whatever dialog params describe.
func MenuCloseURL(id string, params MenuURLQueryParams) string {
	return shared.WithQuery(menuPath(id)+"/close", params.Values())
}

func MenuDeleteURL(id string) string {
	return menuPath(id) + "/delete"
}

func MenuItemsURL(id string) string {
	return menuPath(id) + "/items"
}

func MenuItemURL(id, itemID string) string {
	return MenuItemsURL(id) + "/" + url.PathEscape(itemID)
}

// MenuItemOpenURL follows the stored link of an item.
func MenuItemOpenURL(id, itemID string) string {
	return MenuItemURL(id, itemID) + "/open"
}

func CategoryURL(id string) string {
	return CategoryListPath + "/" + url.PathEscape(id)
}

func CollectionURL(id string) string {
	return CollectionListPath + "/" + url.PathEscape(id)
}

// Destination is where clicking a menu item leads. External destinations
// open in a new tab.
type Destination struct {
	URL      string
	External bool
}

// HandleItemClick resolves the target of an item given its link value and
// type. Only a type outside the known set fails, with
// menu.ErrUnknownMenuItemType.
func HandleItemClick(value string, t menu.MenuItemType) (Destination, error) {
	link, err := menu.NewLink(t, value)
	if err != nil {
		return Destination{}, err
	}
	return ItemDestination(link), nil
}

// ItemDestination is the target of a stored link.
func ItemDestination(link menu.Link) Destination {
	return menu.MatchLink(link, menu.LinkCases[Destination]{
		Category:   func(l menu.CategoryLink) Destination { return Destination{URL: CategoryURL(l.ID)} },
		Collection: func(l menu.CollectionLink) Destination { return Destination{URL: CollectionURL(l.ID)} },
		Page:       func(l menu.PageLink) Destination { return Destination{URL: pageurls.PageURL(l.ID)} },
		URL:        func(l menu.URLLink) Destination { return Destination{URL: l.URL, External: true} },
	})
}
