package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/inspect"
)

// Fake is an in-memory Bridge with a fixed Swing-like window set. It backs
// demo mode and the test suite; every call is deterministic.
type Fake struct {
	mu         sync.Mutex
	closed     bool
	highlights []inspect.Bounds
}

// NewFake returns a Fake bridge.
func NewFake() *Fake {
	return &Fake{}
}

// Handles of the simulated windows.
const (
	FakeOrderEntryHandle uintptr = 0xA10
	FakeAboutHandle      uintptr = 0xB22
)

func (f *Fake) Windows(_ context.Context) ([]Window, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return SortWindows([]Window{
		{Handle: FakeOrderEntryHandle, Title: "Order Entry - Demo", PID: 4242},
		{Handle: FakeAboutHandle, Title: "About Order Entry", PID: 4242},
	}), nil
}

func (f *Fake) Tree(_ context.Context, handle uintptr) (*inspect.Node, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	switch handle {
	case FakeOrderEntryHandle:
		return orderEntryTree(), nil
	case FakeAboutHandle:
		return aboutTree(), nil
	default:
		return nil, fmt.Errorf("no java window with handle 0x%X", uint64(handle))
	}
}

func (f *Fake) Highlight(_ context.Context, b inspect.Bounds) error {
	if err := f.check(); err != nil {
		return err
	}
	f.mu.Lock()
	f.highlights = append(f.highlights, b)
	f.mu.Unlock()
	return nil
}

// Highlights returns the regions highlighted so far, oldest first.
func (f *Fake) Highlights() []inspect.Bounds {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]inspect.Bounds, len(f.highlights))
	copy(out, f.highlights)
	return out
}

func (f *Fake) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *Fake) check() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return fmt.Errorf("bridge is closed")
	}
	return nil
}

const visibleStates = "enabled,focusable,visible,showing"

// node builds an element with the usual component interface set; extra
// flags are adjusted by the callers.
func node(role, name string, b inspect.Bounds) *inspect.Node {
	return &inspect.Node{Info: inspect.ElementInfo{
		Name:                name,
		Role:                role,
		LocalizedRole:       role,
		States:              visibleStates,
		LocalizedStates:     visibleStates,
		Bounds:              b,
		AccessibleComponent: true,
		TextLength:          -1,
	}}
}

// attach wires parent/child links and sibling indexes. Depths are assigned
// by numberDepths once the whole tree is assembled; the builders attach
// leaves first, so a parent's depth is not yet known here.
func attach(parent *inspect.Node, children ...*inspect.Node) *inspect.Node {
	for i, c := range children {
		c.Parent = parent
		c.Info.IndexInParent = i
	}
	parent.Children = children
	parent.Info.ChildrenCount = len(children)
	return parent
}

// numberDepths walks the finished tree top-down and stamps each node's depth
// from its parent. The pre-order walk guarantees parents are numbered first.
func numberDepths(root *inspect.Node) *inspect.Node {
	root.Walk(func(n *inspect.Node) bool {
		if n.Parent != nil {
			n.Depth = n.Parent.Depth + 1
		}
		return true
	})
	return root
}

// orderEntryTree is a frame with a menu bar, a small form and action
// buttons, shaped like a plain Swing application.
func orderEntryTree() *inspect.Node {
	frame := node("frame", "Order Entry - Demo", inspect.Bounds{X: 100, Y: 100, Width: 800, Height: 600})
	frame.Info.Handle = FakeOrderEntryHandle

	rootPane := node("root pane", "", inspect.Bounds{X: 104, Y: 128, Width: 792, Height: 568})
	layered := node("layered pane", "", inspect.Bounds{X: 104, Y: 128, Width: 792, Height: 568})

	menuBar := node("menu bar", "", inspect.Bounds{X: 104, Y: 128, Width: 792, Height: 24})
	fileMenu := node("menu", "File", inspect.Bounds{X: 104, Y: 128, Width: 48, Height: 24})
	fileMenu.Info.AccessibleAction = true
	fileMenu.Info.AccessibleSelection = true
	exitItem := node("menu item", "Exit", inspect.Bounds{})
	exitItem.Info.AccessibleAction = true
	exitItem.Info.States = "enabled"
	exitItem.Info.LocalizedStates = "enabled"
	attach(fileMenu, exitItem)
	attach(menuBar, fileMenu)

	form := node("panel", "orderForm", inspect.Bounds{X: 104, Y: 152, Width: 792, Height: 500})

	customerLabel := node("label", "Customer:", inspect.Bounds{X: 120, Y: 170, Width: 80, Height: 20})
	customerField := node("text", "customer", inspect.Bounds{X: 210, Y: 168, Width: 240, Height: 24})
	customerField.Info.AccessibleText = true
	customerField.Info.TextLength = 0
	customerField.Info.KeyBindings = []string{"ctrl+A"}

	itemsTable := node("table", "items", inspect.Bounds{X: 120, Y: 210, Width: 560, Height: 320})
	itemsTable.Info.AccessibleTable = true
	itemsTable.Info.AccessibleSelection = true

	saveButton := node("push button", "Save", inspect.Bounds{X: 120, Y: 550, Width: 90, Height: 28})
	saveButton.Info.AccessibleAction = true
	saveButton.Info.Description = "Saves the order"
	cancelButton := node("push button", "Cancel", inspect.Bounds{X: 220, Y: 550, Width: 90, Height: 28})
	cancelButton.Info.AccessibleAction = true

	attach(form, customerLabel, customerField, itemsTable, saveButton, cancelButton)
	attach(layered, menuBar, form)
	attach(rootPane, layered)
	attach(frame, rootPane)
	return numberDepths(frame)
}

func aboutTree() *inspect.Node {
	frame := node("frame", "About Order Entry", inspect.Bounds{X: 300, Y: 240, Width: 360, Height: 200})
	frame.Info.Handle = FakeAboutHandle

	rootPane := node("root pane", "", inspect.Bounds{X: 304, Y: 268, Width: 352, Height: 168})
	text := node("label", "Order Entry 1.0", inspect.Bounds{X: 330, Y: 290, Width: 300, Height: 20})
	okButton := node("push button", "OK", inspect.Bounds{X: 440, Y: 390, Width: 80, Height: 26})
	okButton.Info.AccessibleAction = true

	attach(rootPane, text, okButton)
	attach(frame, rootPane)
	return numberDepths(frame)
}
