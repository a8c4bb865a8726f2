package app

import (
	"context"
	"fmt"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/bridge"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/config"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/i18n"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/logger"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/tui"
)

// Options carries the startup inputs decided by the entry point.
type Options struct {
	// BaseDir anchors config file discovery; see config.Options.
	BaseDir string
	// Frozen marks a packaged-binary run; see config.Options.
	Frozen bool
	// Demo runs against the simulated Java application instead of the
	// native bridge.
	Demo bool
	// Environ optionally overrides the environment snapshot, for tests.
	Environ map[string]string
}

// App is the assembled viewer, ready to run.
type App struct {
	cfg    *config.AppConfig
	tr     *i18n.Translator
	bridge bridge.Bridge
	ui     *tui.TUI
	log    *logger.Logger
}

// New performs the startup bootstrap. The only fatal outcomes are an
// internal configuration failure and a native bridge that exists but cannot
// initialize; an unresolved DLL path is NOT fatal and instead produces a UI
// that prompts for setup.
func New(opts Options, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	cfg, err := config.Resolve(config.Options{
		BaseDir: opts.BaseDir,
		Frozen:  opts.Frozen,
		Environ: opts.Environ,
	})
	if err != nil {
		return nil, fmt.Errorf("error resolving config: %w", err)
	}
	log.Info().
		Str("language", cfg.Language).
		Str("language_source", string(cfg.Sources.Language)).
		Str("dll_path", cfg.DLLPath).
		Str("dll_path_source", string(cfg.Sources.DLLPath)).
		Bool("demo", opts.Demo).
		Msg("configuration resolved")

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	br, err := buildBridge(opts, cfg, tr, log)
	if err != nil {
		return nil, err
	}

	ui, err := tui.New(br, tr, log, opts.Demo)
	if err != nil {
		return nil, fmt.Errorf("error creating ui: %w", err)
	}

	return &App{cfg: cfg, tr: tr, bridge: br, ui: ui, log: log}, nil
}

func buildBridge(opts Options, cfg *config.AppConfig, tr *i18n.Translator, log *logger.Logger) (bridge.Bridge, error) {
	if opts.Demo {
		return bridge.NewFake(), nil
	}

	dll := bridge.ProbeDLL(cfg.DLLPath, nil)
	if dll == "" {
		// Surfaced by the UI as the setup prompt, never as a failure here.
		log.Warn().Msg("no access bridge dll resolved")
		return nil, nil
	}

	br, err := bridge.New(dll)
	if err != nil {
		return nil, fmt.Errorf("%s: %w",
			tr.TData("errors.jab_init.body", map[string]any{"Error": err.Error()}), err)
	}
	return br, nil
}

// Config exposes the resolved configuration, mainly for diagnostics.
func (a *App) Config() *config.AppConfig {
	return a.cfg
}

// Run blocks on the UI until the user quits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.bridge != nil {
			if err := a.bridge.Close(); err != nil {
				a.log.Warn().Err(err).Msg("bridge close failed")
			}
		}
	}()

	return a.ui.Run(ctx)
}
