package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/bridge"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/i18n"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/logger"
)

type screen int

const (
	screenWindows screen = iota
	screenTree
)

type rootModel struct {
	ctx    context.Context
	bridge bridge.Bridge
	tr     *i18n.Translator
	log    *logger.Logger
	demo   bool

	scr     screen
	windows windowsModel
	tree    treeModel

	width  int
	height int
}

func newRootModel(ctx context.Context, br bridge.Bridge, tr *i18n.Translator, log *logger.Logger, demo bool) rootModel {
	return rootModel{
		ctx:     ctx,
		bridge:  br,
		tr:      tr,
		log:     log,
		demo:    demo,
		scr:     screenWindows,
		windows: newWindowsModel(),
	}
}

func (m rootModel) Init() tea.Cmd {
	if m.bridge == nil {
		return nil
	}
	return tea.Batch(m.windows.spinner.Tick, loadWindowsCmd(m.ctx, m.bridge))
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case windowsLoadedMsg:
		m.windows.loading = false
		m.windows.windows = msg.windows
		m.windows.errText = ""
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("window enumeration failed")
			m.windows.errText = m.tr.TData("errors.list_windows.body", map[string]any{"Error": msg.err.Error()})
		}
		if m.windows.idx >= len(m.windows.windows) {
			m.windows.idx = 0
		}
		return m, nil

	case treeLoadedMsg:
		if m.scr != screenTree || msg.handle != m.tree.win.Handle {
			// A stale load finishing after the user navigated away.
			return m, nil
		}
		m.tree.loading = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("tree loading failed")
			m.tree.status = m.tr.TData("errors.load_tree.body", map[string]any{"Error": msg.err.Error()})
			m.tree.statusErr = true
			return m, nil
		}
		m.tree.setRoot(msg.root)
		return m, nil

	case highlightDoneMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("highlight failed")
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("clipboard write failed")
			return m, nil
		}
		m.tree.status = msg.status
		m.tree.statusErr = false
		return m, clearStatusCmd()

	case clearStatusMsg:
		if !m.tree.statusErr {
			m.tree.status = ""
		}
		return m, nil
	}

	// Spinners and the search input own the remaining message types.
	var cmd tea.Cmd
	switch m.scr {
	case screenWindows:
		m.windows, cmd = m.windows.updateSub(msg)
	case screenTree:
		m.tree, cmd = m.tree.updateSub(msg)
	}
	return m, cmd
}

func (m rootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scr == screenTree && m.tree.searching {
		return m.updateTreeSearchKey(msg)
	}

	if keyMatches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.bridge == nil {
		return m, nil
	}

	switch m.scr {
	case screenWindows:
		return m.updateWindowsKey(msg)
	case screenTree:
		return m.updateTreeKey(msg)
	}
	return m, nil
}

func (m rootModel) View() string {
	if m.bridge == nil {
		return m.viewMissingDLL()
	}
	switch m.scr {
	case screenTree:
		return m.viewTree()
	default:
		return m.viewWindows()
	}
}

func (m rootModel) viewMissingDLL() string {
	body := titleStyle.Render(m.tr.T("wab.title")) + "\n\n" +
		errorStyle.Render(m.tr.T("wab.path.not.set")) + "\n\n" +
		helpStyle.Render("q "+m.tr.T("action.quit"))
	return appStyle.Render(body)
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
