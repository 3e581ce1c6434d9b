package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMovesAndRemoveIDs(t *testing.T) {
	data := SubmitData{
		Name: "Footer",
		Operations: []TreeOperation{
			{Type: OperationMove, ID: "a", ParentID: "b", SortOrder: 2},
			{Type: OperationRemove, ID: "c"},
			{Type: OperationMove, ID: "d", SortOrder: 0},
			{Type: OperationRemove, ID: "e"},
			{Type: "noop", ID: "f"},
		},
	}
	require.Equal(t, []Move{
		{ItemID: "a", ParentID: "b", SortOrder: 2},
		{ItemID: "d", SortOrder: 0},
	}, GetMoves(data))
	require.Equal(t, []string{"c", "e"}, GetRemoveIDs(data))

	require.Empty(t, GetMoves(SubmitData{}))
	require.NotNil(t, GetRemoveIDs(SubmitData{}))
}

func TestOperations_RoundTrip(t *testing.T) {
	moves := []Move{{ItemID: "a", ParentID: "b", SortOrder: 1}}
	removeIDs := []string{"x"}
	data := SubmitData{Operations: Operations(moves, removeIDs)}
	require.Equal(t, moves, GetMoves(data))
	require.Equal(t, removeIDs, GetRemoveIDs(data))
}
