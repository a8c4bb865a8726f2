// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

// Package i18n provides localized user-facing strings for the viewer.
//
// Message catalogues are TOML files embedded into the binary, one per
// supported language. Lookup never fails: an unsupported language code
// silently falls back to English, and an unknown message key is returned
// verbatim so the UI always has something to render.
package i18n
