// Package treejson reads and writes menus as plain JSON. The editor posts the
// edited tree in this shape, the cache stores menus with it and menuctl uses
// it for files.
package treejson

import (
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
)

type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Type     string  `json:"type,omitempty"`
	Value    string  `json:"value,omitempty"`
	Label    string  `json:"label,omitempty"`
	Children []*Item `json:"children,omitempty"`
}

type Menu struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug,omitempty"`
	Items []*Item `json:"items"`
}

func FromItems(items []*menu.MenuItem) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		j := &Item{ID: it.ID, Name: it.Name, Children: FromItems(it.Children)}
		if it.Link != nil {
			j.Type = string(it.Link.Type())
			j.Value = it.Link.Value()
			j.Label = it.Link.Label()
		}
		out = append(out, j)
	}
	return out
}

func labeled(link menu.Link, label string) menu.Link {
	return menu.MatchLink(link, menu.LinkCases[menu.Link]{
		Category:   func(l menu.CategoryLink) menu.Link { l.Name = label; return l },
		Collection: func(l menu.CollectionLink) menu.Link { l.Name = label; return l },
		Page:       func(l menu.PageLink) menu.Link { l.Title = label; return l },
		URL:        func(l menu.URLLink) menu.Link { return l },
	})
}

// ToItems rejects unknown link types with menu.ErrUnknownMenuItemType.
func ToItems(items []*Item) ([]*menu.MenuItem, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]*menu.MenuItem, 0, len(items))
	for _, j := range items {
		if j == nil {
			continue
		}
		if j.ID == "" {
			return nil, errors.New("menu item without id")
		}
		it := &menu.MenuItem{ID: j.ID, Name: j.Name}
		if j.Type != "" {
			t, err := menu.ParseMenuItemType(j.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "item %s", j.ID)
			}
			link, err := menu.NewLink(t, j.Value)
			if err != nil {
				return nil, err
			}
			it.Link = labeled(link, j.Label)
		}
		children, err := ToItems(j.Children)
		if err != nil {
			return nil, err
		}
		it.Children = children
		out = append(out, it)
	}
	return out, nil
}

func MarshalItems(items []*menu.MenuItem) ([]byte, error) {
	return json.Marshal(FromItems(items))
}

func UnmarshalItems(data []byte) ([]*menu.MenuItem, error) {
	var items []*Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "decode menu items")
	}
	return ToItems(items)
}

func MarshalMenu(m *menu.Menu) ([]byte, error) {
	return json.Marshal(&Menu{ID: m.ID, Name: m.Name, Slug: m.Slug, Items: FromItems(m.Items)})
}

// UnmarshalMenu accepts either a menu object or a bare item array.
func UnmarshalMenu(data []byte) (*menu.Menu, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decode menu")
	}
	var j Menu
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &j.Items); err != nil {
			return nil, errors.Wrap(err, "decode menu items")
		}
	} else if err := json.Unmarshal(raw, &j); err != nil {
		return nil, errors.Wrap(err, "decode menu")
	}
	items, err := ToItems(j.Items)
	if err != nil {
		return nil, err
	}
	return &menu.Menu{ID: j.ID, Name: j.Name, Slug: j.Slug, Items: items}, nil
}
