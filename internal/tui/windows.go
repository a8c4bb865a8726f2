package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/bridge"
)

type windowsModel struct {
	windows []bridge.Window
	idx     int
	loading bool
	spinner spinner.Model
	errText string
}

func newWindowsModel() windowsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return windowsModel{spinner: s, loading: true}
}

func loadWindowsCmd(ctx context.Context, b bridge.Bridge) tea.Cmd {
	return func() tea.Msg {
		ws, err := b.Windows(ctx)
		return windowsLoadedMsg{windows: ws, err: err}
	}
}

func keyMatches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}

func (m rootModel) updateWindowsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, keys.up):
		if m.windows.idx > 0 {
			m.windows.idx--
		}
	case keyMatches(msg, keys.down):
		if m.windows.idx < len(m.windows.windows)-1 {
			m.windows.idx++
		}
	case keyMatches(msg, keys.reload):
		m.windows.loading = true
		m.windows.errText = ""
		return m, tea.Batch(m.windows.spinner.Tick, loadWindowsCmd(m.ctx, m.bridge))
	case keyMatches(msg, keys.enter):
		if m.windows.idx < len(m.windows.windows) {
			win := m.windows.windows[m.windows.idx]
			m.tree = newTreeModel(win)
			m.scr = screenTree
			return m, tea.Batch(m.tree.spinner.Tick, loadTreeCmd(m.ctx, m.bridge, win.Handle))
		}
	}
	return m, nil
}

func (m windowsModel) updateSub(msg tea.Msg) (windowsModel, tea.Cmd) {
	if !m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m rootModel) viewWindows() string {
	tr := m.tr
	out := titleStyle.Render(tr.T("app.title"))
	if m.demo {
		out += "  " + bannerStyle.Render(tr.T("app.demo.banner"))
	}
	out += "\n\n" + tr.T("ui.windows.title") + "\n\n"

	switch {
	case m.windows.loading:
		out += m.windows.spinner.View() + " " + tr.T("ui.loading.default") + "\n"
	case m.windows.errText != "":
		out += errorStyle.Render(m.windows.errText) + "\n"
	case len(m.windows.windows) == 0:
		out += tr.T("ui.windows.empty") + "\n"
	default:
		for i, w := range m.windows.windows {
			cursor := "  "
			line := fmt.Sprintf("%s (pid %d)", w.Title, w.PID)
			if i == m.windows.idx {
				cursor = cursorStyle.Render("> ")
				line = selectedStyle.Render(line)
			}
			out += cursor + line + "\n"
		}
	}

	out += "\n" + helpStyle.Render(tr.T("ui.help.windows"))
	return appStyle.Render(out)
}
