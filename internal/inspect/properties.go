package inspect

import (
	"fmt"
	"strconv"
	"strings"
)

// Property is one row of the detail table for a selected element.
type Property struct {
	Key   string
	Value string
}

// interfaceFlags pairs the mirrored Is*InterfaceAvailable keys with their
// short names used in the AvailableInterfaces summary.
var interfaceFlags = []struct {
	key   string
	short string
	get   func(ElementInfo) bool
}{
	{"IsComponentInterfaceAvailable", "Component", func(i ElementInfo) bool { return i.AccessibleComponent }},
	{"IsActionInterfaceAvailable", "Action", func(i ElementInfo) bool { return i.AccessibleAction }},
	{"IsSelectionInterfaceAvailable", "Selection", func(i ElementInfo) bool { return i.AccessibleSelection }},
	{"IsTextInterfaceAvailable", "Text", func(i ElementInfo) bool { return i.AccessibleText }},
	{"IsValueInterfaceAvailable", "Value", func(i ElementInfo) bool { return i.AccessibleValue }},
	{"IsTableInterfaceAvailable", "Table", func(i ElementInfo) bool { return i.AccessibleTable }},
	{"IsHypertextInterfaceAvailable", "Hypertext", func(i ElementInfo) bool { return i.AccessibleHypertext }},
}

// Properties assembles the ordered property table for node. root is the tree
// root the node belongs to, used for the RootElement summary row.
func Properties(node, root *Node) []Property {
	info := node.Info
	b := info.Bounds

	props := []Property{
		{"Name", info.Name},
		{"Description", info.Description},
		{"LocalizedRole", info.LocalizedRole},
		{"Role", info.Role},
		{"LocalizedStates", info.LocalizedStates},
		{"States", info.States},
		{"IndexInParent", strconv.Itoa(info.IndexInParent)},
		{"Length", textLength(info)},
		{"Depth", strconv.Itoa(node.Depth)},
		{"X", strconv.Itoa(b.X)},
		{"Y", strconv.Itoa(b.Y)},
		{"W", strconv.Itoa(b.Width)},
		{"H", strconv.Itoa(b.Height)},
		{"Location", fmt.Sprintf("(%d, %d, %d, %d)", b.X, b.Y, b.Width, b.Height)},
		{"AccessibleComponent", strconv.FormatBool(info.AccessibleComponent)},
		{"AccessibleAction", strconv.FormatBool(info.AccessibleAction)},
		{"AccessibleSelection", strconv.FormatBool(info.AccessibleSelection)},
		{"AccessibleText", strconv.FormatBool(info.AccessibleText)},
		{"AccessibleValue", strconv.FormatBool(info.AccessibleValue)},
	}

	available := make([]string, 0, len(interfaceFlags))
	for _, f := range interfaceFlags {
		set := f.get(info)
		props = append(props, Property{f.key, strconv.FormatBool(set)})
		if set {
			available = append(available, f.short)
		}
	}
	props = append(props, Property{"AvailableInterfaces", strings.Join(available, ", ")})

	props = append(props,
		Property{"IsVisible", strconv.FormatBool(node.IsVisible())},
		Property{"KeyBindings", strings.Join(info.KeyBindings, "; ")},
		Property{"hWnd", handleValue(info.Handle)},
		Property{"Parent", summaryOf(node.Parent)},
		Property{"RootElement", summaryOf(root)},
		Property{"Children", strconv.Itoa(info.ChildrenCount)},
		Property{"VisibleDescendants", strconv.Itoa(node.VisibleDescendants())},
	)

	return props
}

func textLength(info ElementInfo) string {
	if !info.AccessibleText || info.TextLength < 0 {
		return ""
	}
	return strconv.Itoa(info.TextLength)
}

func handleValue(h uintptr) string {
	if h == 0 {
		return ""
	}
	return fmt.Sprintf("0x%X", uint64(h))
}

// summaryOf renders "role | name" for a related node, empty when absent.
func summaryOf(n *Node) string {
	if n == nil {
		return ""
	}
	role := firstNonEmpty(n.Info.LocalizedRole, n.Info.Role)
	return fmt.Sprintf("%s | %s", role, n.Info.Name)
}
