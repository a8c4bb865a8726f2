package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyMap(props []Property) map[string]string {
	m := make(map[string]string, len(props))
	for _, p := range props {
		m[p.Key] = p.Value
	}
	return m
}

func TestProperties_BasicFields(t *testing.T) {
	root := fixtureTree()
	button := root.Children[0].Children[0]
	button.Info.Description = "Saves the order"
	button.Info.LocalizedRole = "botão"
	button.Info.IndexInParent = 0
	button.Info.ChildrenCount = 0
	button.Info.Bounds = Bounds{X: 10, Y: 20, Width: 80, Height: 24}
	button.Info.AccessibleComponent = true
	button.Info.AccessibleAction = true
	button.Info.TextLength = -1
	button.Info.Handle = 0xA10

	props := Properties(button, root)
	m := propertyMap(props)

	assert.Equal(t, "Save", m["Name"])
	assert.Equal(t, "Saves the order", m["Description"])
	assert.Equal(t, "push button", m["Role"])
	assert.Equal(t, "botão", m["LocalizedRole"])
	assert.Equal(t, "2", m["Depth"])
	assert.Equal(t, "10", m["X"])
	assert.Equal(t, "24", m["H"])
	assert.Equal(t, "(10, 20, 80, 24)", m["Location"])
	assert.Equal(t, "0xA10", m["hWnd"])
	assert.Equal(t, "panel | ", m["Parent"])
	assert.Equal(t, "frame | Orders", m["RootElement"])
	assert.Equal(t, "true", m["IsVisible"])
	assert.Equal(t, "0", m["Children"])
}

func TestProperties_InterfaceSummary(t *testing.T) {
	root := fixtureTree()
	button := root.Children[0].Children[0]
	button.Info.AccessibleComponent = true
	button.Info.AccessibleAction = true
	button.Info.AccessibleText = true
	button.Info.TextLength = 4

	m := propertyMap(Properties(button, root))

	assert.Equal(t, "true", m["IsComponentInterfaceAvailable"])
	assert.Equal(t, "true", m["IsActionInterfaceAvailable"])
	assert.Equal(t, "false", m["IsSelectionInterfaceAvailable"])
	assert.Equal(t, "false", m["IsTableInterfaceAvailable"])
	assert.Equal(t, "Component, Action, Text", m["AvailableInterfaces"])
	assert.Equal(t, "4", m["Length"])
}

func TestProperties_EmptyOptionalFields(t *testing.T) {
	root := fixtureTree()
	label := root.Children[0].Children[1]
	label.Info.TextLength = -1

	m := propertyMap(Properties(label, root))

	assert.Equal(t, "", m["Length"], "no text interface")
	assert.Equal(t, "", m["hWnd"])
	assert.Equal(t, "", m["KeyBindings"])
	assert.Equal(t, "", m["AvailableInterfaces"])
	assert.Equal(t, "false", m["IsVisible"])
}

func TestProperties_RowOrderStable(t *testing.T) {
	root := fixtureTree()
	button := root.Children[0].Children[0]

	props := Properties(button, root)

	require.NotEmpty(t, props)
	assert.Equal(t, "Name", props[0].Key)
	assert.Equal(t, "Description", props[1].Key)
	assert.Equal(t, "VisibleDescendants", props[len(props)-1].Key)
}
