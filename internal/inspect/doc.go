// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

// Package inspect holds the bridge-independent model of an accessibility
// tree: node snapshots, the property table shown for a selected element,
// and the locator mini-language used to search the tree.
package inspect
