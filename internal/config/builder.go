package config

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/i18n"
)

// values is one layer's contribution to the resolved configuration.
// Empty fields mean "this layer has no opinion".
type values struct {
	Language string
	DLLPath  string
}

type layer struct {
	source Source
	values values
}

type configBuilder struct {
	opts      Options
	layers    []layer
	fileFound bool
	err       error
}

func newConfigBuilder(opts Options) *configBuilder {
	return &configBuilder{
		opts:   opts,
		layers: make([]layer, 0, 3),
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	envVals, err := resolveEnv(b.opts.Environ)
	if err != nil {
		b.err = err
		return b
	}

	b.layers = append(b.layers, layer{source: SourceEnvironment, values: envVals})
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	fileVals, found := loadFile(b.opts.BaseDir)
	if !found {
		return b
	}

	b.fileFound = true
	b.layers = append(b.layers, layer{source: SourceConfigFile, values: fileVals})
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.layers = append(b.layers, layer{source: SourceDefault, values: defaultConfig()})
	return b
}

// build merges the collected layers in precedence order (earlier layers win)
// and, on a frozen first run without a config file, synthesizes the default
// file for subsequent runs to edit.
func (b *configBuilder) build() (*AppConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := values{}
	for _, l := range b.layers {
		if err := mergo.Merge(&merged, l.values); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	cfg := &AppConfig{
		Language: i18n.Normalize(merged.Language),
		DLLPath:  merged.DLLPath,
		Sources: FieldSources{
			Language: b.sourceOf(func(v values) string { return v.Language }),
			DLLPath:  b.sourceOf(func(v values) string { return v.DLLPath }),
		},
	}

	// An unsupported language was clamped, so the winning layer no longer
	// describes the value actually in effect.
	if !i18n.IsSupported(merged.Language) {
		cfg.Sources.Language = SourceDefault
	}

	if !b.fileFound && b.opts.Frozen {
		// Best effort, identical to later runs in outcome. Failure to write
		// leaves the process on built-in defaults, which is already the
		// resolved state.
		_, _ = writeDefault(b.opts.BaseDir)
	}

	return cfg, nil
}

// sourceOf returns the provenance of a field: the first layer, in precedence
// order, that contributes a non-empty value.
func (b *configBuilder) sourceOf(field func(values) string) Source {
	for _, l := range b.layers {
		if field(l.values) != "" {
			return l.source
		}
	}
	return SourceDefault
}
