package tui

import (
	"github.com/BrunoMoraes-Z/jab-viewer/internal/bridge"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/inspect"
)

type windowsLoadedMsg struct {
	windows []bridge.Window
	err     error
}

type treeLoadedMsg struct {
	handle uintptr
	root   *inspect.Node
	err    error
}

type highlightDoneMsg struct {
	err error
}

type copiedMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}
