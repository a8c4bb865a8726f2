// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

// Package config resolves the viewer's startup configuration.
//
// Values are assembled from layered sources in strict precedence order
// (earlier sources win):
//  1. Environment variables (JAB_VIEWER_LANG, RC_JAVA_ACCESS_BRIDGE_DLL)
//  2. A config file (config.toml or config.ini) in the base directory
//  3. Built-in defaults
//
// Every condition short of an internal bug is non-fatal: an unset variable,
// a missing file, or an unreadable file simply falls through to the next
// layer, so [Resolve] always hands the caller a usable [AppConfig]. The main
// entry point is [Resolve].
package config
