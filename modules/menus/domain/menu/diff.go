package menu

type position struct {
	parentID string
	index    int
}

func positions(items []*MenuItem) map[string]position {
	out := make(map[string]position)
	Walk(items, func(item, parent *MenuItem, index int) {
		p := position{index: index}
		if parent != nil {
			p.parentID = parent.ID
		}
		out[item.ID] = p
	})
	return out
}

// workTree is a skeleton copy of a forest that moves are replayed on while
// diffing. The root node has an empty id.
type workTree struct {
	root *MenuItem
}

func newWorkTree(items []*MenuItem) *workTree {
	var copyItems func(items []*MenuItem) []*MenuItem
	copyItems = func(items []*MenuItem) []*MenuItem {
		out := make([]*MenuItem, 0, len(items))
		for _, item := range items {
			if item != nil {
				out = append(out, &MenuItem{ID: item.ID, Children: copyItems(item.Children)})
			}
		}
		return out
	}
	return &workTree{root: &MenuItem{Children: copyItems(items)}}
}

// find returns the node with id and its current parent.
func (w *workTree) find(id string) (node, parent *MenuItem, index int, ok bool) {
	var search func(p *MenuItem) bool
	search = func(p *MenuItem) bool {
		for i, c := range p.Children {
			if c.ID == id {
				node, parent, index = c, p, i
				return true
			}
			if search(c) {
				return true
			}
		}
		return false
	}
	ok = search(w.root)
	return node, parent, index, ok
}

func (w *workTree) node(id string) (*MenuItem, bool) {
	if id == "" {
		return w.root, true
	}
	n, _, _, ok := w.find(id)
	return n, ok
}

// move detaches id and inserts it at index among the children of parentID.
func (w *workTree) move(id, parentID string, index int) {
	n, from, i, ok := w.find(id)
	if !ok {
		return
	}
	from.Children = append(from.Children[:i:i], from.Children[i+1:]...)
	to, ok := w.node(parentID)
	if !ok {
		return
	}
	if index > len(to.Children) {
		index = len(to.Children)
	}
	to.Children = append(to.Children[:index:index], append([]*MenuItem{n}, to.Children[index:]...)...)
}

// Diff compares an edited tree with its baseline. Moves are computed against
// a working copy of the baseline: the edited tree is walked in pre-order and
// an item is moved whenever its place in the working copy differs from its
// place in edited, so applying the moves in order and then the removals
// reproduces edited. SortOrder counts only baseline items. Items missing from
// edited are removed; only the top-most item of a removed subtree is
// reported. Items unknown to the baseline are ignored together with their
// subtrees.
func Diff(baseline, edited []*MenuItem) (moves []Move, removeIDs []string) {
	before := positions(baseline)
	after := positions(edited)
	work := newWorkTree(baseline)
	placed := make(map[string]bool)

	moves = []Move{}
	var place func(parentID string, items []*MenuItem)
	place = func(parentID string, items []*MenuItem) {
		index := 0
		for _, item := range items {
			if item == nil || placed[item.ID] {
				continue
			}
			if _, ok := before[item.ID]; !ok {
				continue
			}
			placed[item.ID] = true
			_, parent, at, _ := work.find(item.ID)
			if parent.ID != parentID || at != index {
				moves = append(moves, Move{ItemID: item.ID, ParentID: parentID, SortOrder: index})
				work.move(item.ID, parentID, index)
			}
			place(item.ID, item.Children)
			index++
		}
	}
	place("", edited)

	removeIDs = []string{}
	var collect func(items []*MenuItem)
	collect = func(items []*MenuItem) {
		for _, item := range items {
			if item == nil {
				continue
			}
			if _, kept := after[item.ID]; !kept {
				// Descendants kept elsewhere already have a move.
				removeIDs = append(removeIDs, item.ID)
				continue
			}
			collect(item.Children)
		}
	}
	collect(baseline)
	return moves, removeIDs
}
