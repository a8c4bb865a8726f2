// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment variable names recognized by the resolver.
const (
	// EnvLanguage overrides the UI language ("en" or "pt").
	EnvLanguage = "JAB_VIEWER_LANG"
	// EnvDLLPath overrides the WindowsAccessBridge DLL location.
	EnvDLLPath = "RC_JAVA_ACCESS_BRIDGE_DLL"
)

// envConfig maps the two recognized variables via caarlos0/env struct tags.
type envConfig struct {
	Language string `env:"JAB_VIEWER_LANG"`
	DLLPath  string `env:"RC_JAVA_ACCESS_BRIDGE_DLL"`
}

// resolveEnv reads the environment layer from the given snapshot, or from
// the process environment when environ is nil. Unset variables produce empty
// fields; absence is an expected outcome, not an error.
func resolveEnv(environ map[string]string) (values, error) {
	if environ == nil {
		environ = environToMap(os.Environ())
	}

	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Environment: environ}); err != nil {
		return values{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return values{Language: ec.Language, DLLPath: ec.DLLPath}, nil
}

func environToMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
