// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

// Package bridge defines the boundary to the native Java Access Bridge.
//
// The native library is consumed as a black box: this package only fixes the
// Go-side contract (window enumeration, tree snapshots, highlighting) and
// the DLL discovery rules. A real implementation needs the
// WindowsAccessBridge DLL and lives behind the [Bridge] interface; the
// package ships [Fake], a deterministic in-memory implementation used by
// tests and by demo mode.
package bridge

import (
	"context"
	"sort"
	"strings"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/inspect"
)

// Window is one Java top-level window.
type Window struct {
	Handle uintptr
	Title  string
	PID    uint32
}

// Bridge is the contract every Access Bridge implementation satisfies.
type Bridge interface {
	// Windows enumerates the currently visible Java top-level windows,
	// deduplicated by handle and sorted by title.
	Windows(ctx context.Context) ([]Window, error)

	// Tree builds a full accessibility-tree snapshot for the window with
	// the given handle. Heavy on very large applications; callers run it
	// off the UI loop.
	Tree(ctx context.Context, handle uintptr) (*inspect.Node, error)

	// Highlight draws a temporary marker around the given screen region.
	// Implementations without a native overlay return nil.
	Highlight(ctx context.Context, b inspect.Bounds) error

	// Close releases native resources.
	Close() error
}

// SortWindows deduplicates ws by handle and orders the result by lowercased
// title, then handle. Implementations apply it before returning from
// Windows so the list is stable across reloads.
func SortWindows(ws []Window) []Window {
	byHandle := make(map[uintptr]Window, len(ws))
	for _, w := range ws {
		byHandle[w.Handle] = w
	}

	out := make([]Window, 0, len(byHandle))
	for _, w := range byHandle {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := strings.ToLower(out[i].Title), strings.ToLower(out[j].Title)
		if ti != tj {
			return ti < tj
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}
