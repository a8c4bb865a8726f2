// Package tui implements the terminal user interface of the viewer: a Java
// window picker, the accessibility tree browser with a property panel, and
// the locator search bar.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/bridge"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/i18n"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/logger"
)

// TUI drives the interactive session. A nil bridge puts the interface in
// the unresolved-DLL mode, where it only renders the setup prompt.
type TUI struct {
	bridge bridge.Bridge
	tr     *i18n.Translator
	log    *logger.Logger
	demo   bool
}

// New builds the TUI. br may be nil when no Access Bridge DLL could be
// resolved; demo marks the simulated-application mode for the banner.
func New(br bridge.Bridge, tr *i18n.Translator, log *logger.Logger, demo bool) (*TUI, error) {
	if tr == nil {
		return nil, errors.New("translator is required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{bridge: br, tr: tr, log: log, demo: demo}, nil
}

// Run blocks until the user quits or ctx is canceled.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(ctx, t.bridge, t.tr, t.log, t.demo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
