package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BrunoMoraes-Z/jab-viewer/internal/app"
	"github.com/BrunoMoraes-Z/jab-viewer/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string

	// buildPackaged is set to a non-empty value by the release build
	// (-ldflags "-X main.buildPackaged=1"). A packaged run anchors its
	// config beside the executable and synthesizes a default config file
	// on first start; a source run does neither.
	buildPackaged string
)

func main() {
	demo := flag.Bool("demo", false, "browse a simulated Java application instead of the native bridge")
	configDir := flag.String("config-dir", "", "directory for config.toml/config.ini (default: executable directory when packaged, working directory otherwise)")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	log := logger.New("jabviewer")

	frozen := buildPackaged != ""
	baseDir := *configDir
	if baseDir == "" {
		baseDir = defaultBaseDir(frozen)
	}

	a, err := app.New(app.Options{
		BaseDir: baseDir,
		Frozen:  frozen,
		Demo:    *demo,
	}, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := a.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("viewer exited with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultBaseDir(frozen bool) string {
	if frozen {
		if execPath, err := os.Executable(); err == nil {
			return filepath.Dir(execPath)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
