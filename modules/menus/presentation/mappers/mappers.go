package mappers

import (
	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/urls"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/viewmodels"
)

// Placeholder stands in for names that have not loaded.
const Placeholder = "..."

// MenuName is the name shown in titles and the delete confirmation.
func MenuName(m *menu.Menu) string {
	if m == nil || m.Name == "" {
		return Placeholder
	}
	return m.Name
}

func SummaryToViewModel(s menu.Summary) *viewmodels.MenuSummary {
	return &viewmodels.MenuSummary{
		ID:        s.ID,
		Name:      s.Name,
		Slug:      s.Slug,
		ItemCount: s.ItemCount,
		URL:       urls.MenuURL(s.ID, urls.MenuURLQueryParams{}),
	}
}

func ListToViewModel(result *menu.ListResult) *viewmodels.MenuList {
	out := &viewmodels.MenuList{
		Menus:      make([]*viewmodels.MenuSummary, 0, len(result.Menus)),
		TotalCount: result.TotalCount,
	}
	for _, s := range result.Menus {
		out.Menus = append(out.Menus, SummaryToViewModel(s))
	}
	if result.HasNextPage && result.EndCursor != "" {
		out.NextURL = urls.MenuListURL(result.EndCursor)
	}
	return out
}

func MenuItemToViewModel(menuID string, item *menu.MenuItem) *viewmodels.MenuItem {
	vm := &viewmodels.MenuItem{
		ID:       item.ID,
		Name:     item.Name,
		EditURL:  urls.MenuURL(menuID, urls.Reduce(urls.UIState{}, urls.OpenEditItem{ID: item.ID}).Params()),
		Children: MenuItemsToViewModels(menuID, item.Children),
	}
	if item.Link != nil {
		vm.Type = string(item.Link.Type())
		vm.Value = item.Link.Value()
		vm.Label = item.Link.Label()
		vm.OpenURL = urls.MenuItemOpenURL(menuID, item.ID)
		vm.External = item.Link.Type() == menu.TypeLink
	}
	return vm
}

func MenuItemsToViewModels(menuID string, items []*menu.MenuItem) []*viewmodels.MenuItem {
	out := make([]*viewmodels.MenuItem, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, MenuItemToViewModel(menuID, it))
		}
	}
	return out
}

// placeRows numbers the editor rows in pre-order and collects the parents
// they can pick from.
func placeRows(items []*viewmodels.MenuItem, parentID string, path []string, row *int, parents *[]*viewmodels.ParentOption) {
	for i, it := range items {
		it.Row, it.ParentID, it.Position = *row, parentID, i
		*row++
		itemPath := append(append([]string(nil), path...), it.ID)
		*parents = append(*parents, &viewmodels.ParentOption{ID: it.ID, Name: it.Name, Depth: len(path), Path: itemPath})
		placeRows(it.Children, it.ID, itemPath, row, parents)
	}
}

func MenuToViewModel(m *menu.Menu) (*viewmodels.Menu, error) {
	tree, err := treejson.MarshalItems(m.Items)
	if err != nil {
		return nil, err
	}
	vm := &viewmodels.Menu{
		ID:    m.ID,
		Name:  MenuName(m),
		Slug:  m.Slug,
		Items: MenuItemsToViewModels(m.ID, m.Items),
		Tree:  string(tree),
	}
	row := 0
	placeRows(vm.Items, "", nil, &row, &vm.Parents)
	return vm, nil
}

// AddItemDialog is the empty create form.
func AddItemDialog(menuID string, state urls.UIState) *viewmodels.ItemDialog {
	return &viewmodels.ItemDialog{
		Open:      state.Is(urls.DialogAddItem),
		ActionURL: urls.MenuItemsURL(menuID),
		CloseURL:  urls.MenuCloseURL(menuID, state.Params()),
		LinkType:  string(menu.TypeCategory),
	}
}

// EditItemDialog pre-populates the edit form from the item the state
// targets. A target missing from the tree still opens the dialog with
// placeholder values.
func EditItemDialog(menuID string, m *menu.Menu, state urls.UIState) *viewmodels.ItemDialog {
	var items []*menu.MenuItem
	if m != nil {
		items = m.Items
	}
	item, found := menu.Lookup(items, state.TargetID)
	data := menu.InitialFormData(item, found)
	return &viewmodels.ItemDialog{
		Open:      state.Is(urls.DialogEditItem),
		Edit:      true,
		ActionURL: urls.MenuItemURL(menuID, state.TargetID),
		CloseURL:  urls.MenuCloseURL(menuID, state.Params()),
		Name:      data.Name,
		LinkType:  string(data.LinkType),
		LinkValue: data.LinkValue,
		LinkLabel: menu.InitialMenuItemLabel(item),
	}
}

// Messages flattens mutation errors for display.
func Messages(errs []menu.MutationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := e.Message
		if msg == "" {
			msg = string(e.Code)
		}
		if e.Field != "" {
			msg = e.Field + ": " + msg
		}
		out = append(out, msg)
	}
	return out
}
