// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

package config

import (
	"fmt"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/i18n"
)

// Source identifies where a resolved configuration value came from.
// It is diagnostic only and never changes resolution behavior.
type Source string

const (
	// SourceEnvironment marks a value taken from an environment variable.
	SourceEnvironment Source = "environment"
	// SourceConfigFile marks a value read from config.toml or config.ini.
	SourceConfigFile Source = "config-file"
	// SourceDefault marks a built-in fallback value.
	SourceDefault Source = "default"
)

// FieldSources records per-field provenance of a resolved [AppConfig].
type FieldSources struct {
	// Language is the origin of AppConfig.Language.
	Language Source
	// DLLPath is the origin of AppConfig.DLLPath. SourceDefault here means
	// the path is unresolved and AppConfig.DLLPath is empty.
	DLLPath Source
}

// AppConfig is the fully resolved startup configuration.
type AppConfig struct {
	// Language is the UI language code. Always a supported code; anything
	// unrecognized in the sources is clamped to i18n.DefaultLanguage.
	Language string

	// DLLPath is the path to the WindowsAccessBridge DLL. Empty when no
	// source provides one; the UI layer is responsible for prompting.
	DLLPath string

	// Sources tracks where each field above was resolved from.
	Sources FieldSources
}

// Options carries the explicit inputs of [Resolve]. Base directory and the
// environment snapshot are injected rather than read from process globals so
// resolution is repeatable in tests.
type Options struct {
	// BaseDir anchors config file discovery and default-file creation:
	// the executable's directory for a packaged build, the working
	// directory for a source run.
	BaseDir string

	// Frozen reports whether the process runs as a packaged binary.
	// Only a frozen run synthesizes a default config file.
	Frozen bool

	// Environ is the environment snapshot to resolve overrides from.
	// When nil the process environment is used.
	Environ map[string]string
}

// Resolve builds the startup configuration for the given options.
//
// Precedence per field is environment > config file > default. When no
// config file exists in opts.BaseDir (including the unreadable-file case)
// and the run is frozen, a default config.toml is written so later runs
// have a stable file to edit; a failed write is swallowed, matching the
// file's advisory role.
//
// Resolve never fails on missing or malformed input. The only error return
// is an internal merge failure.
func Resolve(opts Options) (*AppConfig, error) {
	cfg, err := newConfigBuilder(opts).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error resolving configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig is the lowest-precedence layer. The DLL path is deliberately
// left empty: there is no sensible built-in default, the caller prompts.
func defaultConfig() values {
	return values{Language: i18n.DefaultLanguage}
}
