package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/bridge"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/inspect"
)

type treeModel struct {
	win  bridge.Window
	root *inspect.Node

	// flat is the full pre-order snapshot used by locator search; rows is
	// the currently visible subset given the collapse state.
	flat      []*inspect.Node
	collapsed map[*inspect.Node]bool
	rows      []*inspect.Node

	idx     int
	propIdx int

	loading   bool
	spinner   spinner.Model
	status    string
	statusErr bool

	search    textinput.Model
	searching bool
}

func newTreeModel(win bridge.Window) treeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.CharLimit = 200
	in.Width = 48

	return treeModel{
		win:       win,
		collapsed: make(map[*inspect.Node]bool),
		loading:   true,
		spinner:   s,
		search:    in,
	}
}

func loadTreeCmd(ctx context.Context, b bridge.Bridge, handle uintptr) tea.Cmd {
	return func() tea.Msg {
		root, err := b.Tree(ctx, handle)
		return treeLoadedMsg{handle: handle, root: root, err: err}
	}
}

func (m *treeModel) setRoot(root *inspect.Node) {
	m.root = root
	m.flat = root.Flatten()
	m.idx = 0
	m.propIdx = 0
	m.rebuildRows()
}

// rebuildRows recomputes the visible rows, skipping the children of
// collapsed nodes.
func (m *treeModel) rebuildRows() {
	m.rows = m.rows[:0]
	if m.root == nil {
		return
	}
	var walk func(n *inspect.Node)
	walk = func(n *inspect.Node) {
		m.rows = append(m.rows, n)
		if m.collapsed[n] {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(m.root)
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *treeModel) selected() *inspect.Node {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return nil
	}
	return m.rows[m.idx]
}

// reveal expands every ancestor of n and moves the cursor to it.
func (m *treeModel) reveal(n *inspect.Node) {
	for p := n.Parent; p != nil; p = p.Parent {
		delete(m.collapsed, p)
	}
	m.rebuildRows()
	for i, row := range m.rows {
		if row == n {
			m.idx = i
			m.propIdx = 0
			return
		}
	}
}

func (m treeModel) updateSub(msg tea.Msg) (treeModel, tea.Cmd) {
	var cmds []tea.Cmd
	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m rootModel) updateTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.tree

	switch {
	case keyMatches(msg, keys.esc):
		m.scr = screenWindows
		return m, nil

	case keyMatches(msg, keys.up):
		if t.idx > 0 {
			t.idx--
			t.propIdx = 0
		}

	case keyMatches(msg, keys.down):
		if t.idx < len(t.rows)-1 {
			t.idx++
			t.propIdx = 0
		}

	case keyMatches(msg, keys.left):
		if n := t.selected(); n != nil {
			if len(n.Children) > 0 && !t.collapsed[n] {
				t.collapsed[n] = true
				t.rebuildRows()
			} else if n.Parent != nil {
				t.reveal(n.Parent)
			}
		}

	case keyMatches(msg, keys.right):
		if n := t.selected(); n != nil && t.collapsed[n] {
			delete(t.collapsed, n)
			t.rebuildRows()
		}

	case keyMatches(msg, keys.enter):
		if n := t.selected(); n != nil {
			return m, highlightCmd(m.ctx, m.bridge, n.Info.Bounds)
		}

	case keyMatches(msg, keys.propPrev):
		if t.propIdx > 0 {
			t.propIdx--
		}

	case keyMatches(msg, keys.propNext):
		if n := t.selected(); n != nil {
			if props := inspect.Properties(n, t.root); t.propIdx < len(props)-1 {
				t.propIdx++
			}
		}

	case keyMatches(msg, keys.copyValue):
		if n := t.selected(); n != nil {
			props := inspect.Properties(n, t.root)
			if t.propIdx < len(props) {
				return m, copyCmd(props[t.propIdx].Value, m.tr.T("window.title.copied_value"))
			}
		}

	case keyMatches(msg, keys.copyLocator):
		if n := t.selected(); n != nil {
			loc := inspect.SynthesizeLocator(n, t.flat)
			return m, copyCmd(loc, m.tr.T("ui.locator.copied"))
		}

	case keyMatches(msg, keys.search):
		t.searching = true
		t.search.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m rootModel) updateTreeSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.tree

	switch {
	case keyMatches(msg, keys.esc):
		t.searching = false
		t.search.Blur()
		return m, nil

	case keyMatches(msg, keys.enter):
		t.searching = false
		t.search.Blur()
		m.runLocatorSearch()
		return m, nil
	}

	var cmd tea.Cmd
	t.search, cmd = t.search.Update(msg)
	return m, cmd
}

// runLocatorSearch resolves the search input against the full tree and
// either selects the single match or reports the outcome in the status line.
func (m *rootModel) runLocatorSearch() {
	t := &m.tree
	t.statusErr = false

	loc, err := inspect.ParseLocator(t.search.Value())
	if err != nil {
		t.status = m.tr.T("ui.locator.invalid")
		t.statusErr = true
		return
	}

	matches, err := loc.Match(t.flat)
	if err != nil {
		t.status = m.tr.T("ui.locator.invalid")
		t.statusErr = true
		return
	}

	switch len(matches) {
	case 0:
		t.status = m.tr.T("ui.locator.not_found")
		t.statusErr = true
	case 1:
		t.status = ""
		t.reveal(matches[0])
	default:
		t.status = m.tr.TData("ui.locator.many_found", map[string]any{"Count": len(matches)})
		t.statusErr = true
	}
}

func highlightCmd(ctx context.Context, b bridge.Bridge, bounds inspect.Bounds) tea.Cmd {
	return func() tea.Msg {
		if bounds.Width <= 0 || bounds.Height <= 0 {
			return highlightDoneMsg{}
		}
		return highlightDoneMsg{err: b.Highlight(ctx, bounds)}
	}
}

func copyCmd(text, status string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{status: status}
	}
}

func (m rootModel) viewTree() string {
	tr := m.tr
	t := m.tree

	out := titleStyle.Render(tr.T("app.title")) + "  " + t.win.Title
	if m.demo {
		out += "  " + bannerStyle.Render(tr.T("app.demo.banner"))
	}
	out += "\n\n"

	if t.loading {
		out += t.spinner.View() + " " + tr.T("ui.loading.default") + "\n"
		return appStyle.Render(out)
	}

	out += lipgloss.JoinHorizontal(lipgloss.Top, m.viewTreeRows(), " ", m.viewProps())

	if t.searching {
		out += "\n" + tr.T("ui.locator.title") + ": " + t.search.View()
	}
	if t.status != "" {
		style := statusStyle
		if t.statusErr {
			style = errorStyle
		}
		out += "\n" + style.Render(t.status)
	}

	out += "\n" + helpStyle.Render(tr.T("ui.help.tree"))
	return appStyle.Render(out)
}

// viewTreeRows renders a window of tree rows around the cursor.
func (m rootModel) viewTreeRows() string {
	t := m.tree
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}

	start := 0
	if t.idx >= visible {
		start = t.idx - visible + 1
	}
	end := start + visible
	if end > len(t.rows) {
		end = len(t.rows)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		n := t.rows[i]
		marker := "  "
		if len(n.Children) > 0 {
			if t.collapsed[n] {
				marker = "+ "
			} else {
				marker = "- "
			}
		}
		line := strings.Repeat("  ", n.Depth) + marker + n.Label()
		if i == t.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m rootModel) viewProps() string {
	t := m.tree
	n := t.selected()
	if n == nil {
		return ""
	}

	props := inspect.Properties(n, t.root)
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	start := 0
	if t.propIdx >= visible {
		start = t.propIdx - visible + 1
	}
	end := start + visible
	if end > len(props) {
		end = len(props)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.tr.T("ui.properties.title")) + "\n")
	for i := start; i < end; i++ {
		p := props[i]
		line := propKeyStyle.Render(p.Key) + ": " + p.Value
		if i == t.propIdx {
			line = selectedStyle.Render(p.Key + ": " + p.Value)
		}
		b.WriteString(line + "\n")
	}
	return panelStyle.Render(b.String())
}
