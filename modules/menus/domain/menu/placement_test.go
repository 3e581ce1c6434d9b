package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrange(t *testing.T) {
	items, err := Arrange([]Placement{
		{ID: "a"},
		{ID: "a1", ParentID: "a", Position: 1},
		{ID: "a2", ParentID: "a", Position: 0},
		{ID: "b", Position: 0},
		{ID: "c", Position: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/a", "a/a2", "a/a1", "/b", "/c"}, shape(items))
}

func TestArrange_RemovalTakesChildren(t *testing.T) {
	items, err := Arrange([]Placement{
		{ID: "a", Remove: true},
		{ID: "a1", ParentID: "a"},
		{ID: "a2", ParentID: "a", Position: 1},
		{ID: "a2x", ParentID: "a2"},
		{ID: "b", Position: 1},
		{ID: "c", ParentID: "a", Position: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/b"}, shape(items))

	// A child placed elsewhere survives the removal of its old parent.
	items, err = Arrange([]Placement{
		{ID: "a", Remove: true},
		{ID: "a1", ParentID: "b"},
		{ID: "b", Position: 1},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/b", "b/a1"}, shape(items))
}

func TestArrange_Invalid(t *testing.T) {
	_, err := Arrange([]Placement{{ID: "a", ParentID: "zz"}})
	require.ErrorIs(t, err, ErrInvalidPlacement)

	_, err = Arrange([]Placement{{ID: "a", ParentID: "a"}})
	require.ErrorIs(t, err, ErrInvalidPlacement)

	_, err = Arrange([]Placement{
		{ID: "root"},
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
	})
	require.ErrorIs(t, err, ErrInvalidPlacement)
	require.Contains(t, err.Error(), "placed inside itself")
}

func TestArrange_FeedsDiff(t *testing.T) {
	baseline := sampleTree()
	placements := []Placement{}
	Walk(baseline, func(item, parent *MenuItem, index int) {
		p := Placement{ID: item.ID, Position: index}
		if parent != nil {
			p.ParentID = parent.ID
		}
		placements = append(placements, p)
	})

	edited, err := Arrange(placements)
	require.NoError(t, err)
	moves, removeIDs := Diff(baseline, edited)
	require.Empty(t, moves)
	require.Empty(t, removeIDs)

	// b goes under c ahead of c1, a2 is dropped.
	for i := range placements {
		switch placements[i].ID {
		case "b":
			placements[i].ParentID, placements[i].Position = "c", 0
		case "a2":
			placements[i].Remove = true
		}
	}
	edited, err = Arrange(placements)
	require.NoError(t, err)
	moves, removeIDs = Diff(baseline, edited)
	require.Equal(t, []Move{
		{ItemID: "c", SortOrder: 1},
		{ItemID: "b", ParentID: "c", SortOrder: 0},
	}, moves)
	require.Equal(t, []string{"a2"}, removeIDs)
	require.Equal(t, shape(edited), shape(apply(baseline, moves, removeIDs)))
}
