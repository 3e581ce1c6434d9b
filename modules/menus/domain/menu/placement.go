package menu

import (
	"sort"

	"github.com/go-faster/errors"
)

var ErrInvalidPlacement = errors.New("invalid item placement")

// Placement is where the editor form puts one item: under ParentID (empty for
// the top level) at Position among its siblings, or nowhere when Remove is
// set.
type Placement struct {
	ID       string
	ParentID string
	Position int
	Remove   bool
}

// Arrange builds the edited forest described by placements, ready for Diff.
// Siblings are ordered by Position, ties keep the order of placements.
// Children of a removed item go with it unless placed elsewhere. A parent that
// is not itself placed, or a parent chain that loops, fails with
// ErrInvalidPlacement. Later placements of an id already seen are ignored.
func Arrange(placements []Placement) ([]*MenuItem, error) {
	byID := make(map[string]Placement, len(placements))
	order := make([]string, 0, len(placements))
	for _, p := range placements {
		if p.ID == "" {
			continue
		}
		if _, seen := byID[p.ID]; seen {
			continue
		}
		byID[p.ID] = p
		order = append(order, p.ID)
	}

	children := make(map[string][]Placement)
	for _, id := range order {
		p := byID[id]
		if p.Remove {
			continue
		}
		if p.ParentID != "" {
			if _, ok := byID[p.ParentID]; !ok {
				return nil, errors.Wrapf(ErrInvalidPlacement, "%q has unknown parent %q", p.ID, p.ParentID)
			}
		}
		children[p.ParentID] = append(children[p.ParentID], p)
	}

	reached := make(map[string]bool)
	var build func(parentID string) []*MenuItem
	build = func(parentID string) []*MenuItem {
		siblings := children[parentID]
		sort.SliceStable(siblings, func(i, j int) bool { return siblings[i].Position < siblings[j].Position })
		out := make([]*MenuItem, 0, len(siblings))
		for _, p := range siblings {
			reached[p.ID] = true
			out = append(out, &MenuItem{ID: p.ID, Children: build(p.ID)})
		}
		return out
	}
	items := build("")

	// Whatever was not reached hangs below a removed item or sits in a loop.
	for _, id := range order {
		if reached[id] || byID[id].Remove {
			continue
		}
		seen := map[string]bool{id: true}
		for cur := byID[id].ParentID; ; cur = byID[cur].ParentID {
			if byID[cur].Remove {
				break
			}
			if seen[cur] {
				return nil, errors.Wrapf(ErrInvalidPlacement, "%q is placed inside itself", id)
			}
			seen[cur] = true
		}
	}
	return items, nil
}
