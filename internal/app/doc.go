// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

// Package app wires the viewer together at startup: configuration
// resolution, localization, Access Bridge construction, and the terminal UI.
// It runs once, synchronously, before any screen is shown.
package app
