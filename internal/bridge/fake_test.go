package bridge

import (
	"context"
	"testing"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake_Windows(t *testing.T) {
	f := NewFake()

	ws, err := f.Windows(context.Background())

	require.NoError(t, err)
	require.Len(t, ws, 2)
	// Sorted by title: "About Order Entry" before "Order Entry - Demo".
	assert.Equal(t, FakeAboutHandle, ws[0].Handle)
	assert.Equal(t, FakeOrderEntryHandle, ws[1].Handle)
}

func TestFake_TreeShape(t *testing.T) {
	f := NewFake()

	root, err := f.Tree(context.Background(), FakeOrderEntryHandle)

	require.NoError(t, err)
	assert.Equal(t, "frame", root.Info.Role)
	assert.Equal(t, FakeOrderEntryHandle, root.Info.Handle)

	flat := root.Flatten()
	assert.Greater(t, len(flat), 8)
	for _, n := range flat[1:] {
		require.NotNil(t, n.Parent, "node %q", n.Label())
		assert.Equal(t, n.Parent.Depth+1, n.Depth)
	}

	// The fixture must satisfy the search paths the UI exercises.
	loc, err := inspect.ParseLocator("text=Save, type=JButton")
	require.NoError(t, err)
	matches, err := loc.Match(flat)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Saves the order", matches[0].Info.Description)
}

func TestFake_TreeDepths(t *testing.T) {
	f := NewFake()

	root, err := f.Tree(context.Background(), FakeOrderEntryHandle)

	require.NoError(t, err)
	assert.Equal(t, 0, root.Depth)
	byLabel := map[string]int{}
	for _, n := range root.Flatten() {
		byLabel[n.Label()] = n.Depth
	}
	// Depth must equal the link count back to the frame, not the order the
	// fixture happened to be wired in.
	assert.Equal(t, 1, byLabel["root pane"])
	assert.Equal(t, 3, byLabel["menu bar"])
	assert.Equal(t, 4, byLabel["menu | File"])
	assert.Equal(t, 5, byLabel["menu item | Exit"])
	assert.Equal(t, 4, byLabel["push button | Save"])
}

func TestFake_TreeProperties(t *testing.T) {
	f := NewFake()
	root, err := f.Tree(context.Background(), FakeOrderEntryHandle)
	require.NoError(t, err)

	var table *inspect.Node
	root.Walk(func(n *inspect.Node) bool {
		if n.Info.Role == "table" {
			table = n
			return false
		}
		return true
	})
	require.NotNil(t, table)

	props := inspect.Properties(table, root)
	m := map[string]string{}
	for _, p := range props {
		m[p.Key] = p.Value
	}
	assert.Equal(t, "true", m["IsTableInterfaceAvailable"])
	assert.Contains(t, m["AvailableInterfaces"], "Table")
	assert.Equal(t, "frame | Order Entry - Demo", m["RootElement"])
}

func TestFake_TreeUnknownHandle(t *testing.T) {
	f := NewFake()

	_, err := f.Tree(context.Background(), 0xDEAD)

	assert.Error(t, err)
}

func TestFake_HighlightRecords(t *testing.T) {
	f := NewFake()
	b := inspect.Bounds{X: 1, Y: 2, Width: 3, Height: 4}

	require.NoError(t, f.Highlight(context.Background(), b))

	highlights := f.Highlights()
	require.Len(t, highlights, 1)
	assert.Equal(t, b, highlights[0])
}

func TestFake_ClosedRejectsCalls(t *testing.T) {
	f := NewFake()
	require.NoError(t, f.Close())

	_, err := f.Windows(context.Background())
	assert.Error(t, err)
	_, err = f.Tree(context.Background(), FakeOrderEntryHandle)
	assert.Error(t, err)
}
