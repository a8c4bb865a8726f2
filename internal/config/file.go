package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// File names probed in baseDir, in precedence order.
const (
	ConfigFileTOML = "config.toml"
	ConfigFileINI  = "config.ini"
)

// defaultFileContent is what a first frozen run writes beside the binary.
const defaultFileContent = "[app]\nlanguage = \"en\"\n"

// tomlConfig mirrors the single recognized [app] section. Unknown keys and
// sections are ignored by the decoder.
type tomlConfig struct {
	App struct {
		Language string `toml:"language"`
		DLLPath  string `toml:"dll_path"`
	} `toml:"app"`
}

// loadFile discovers and parses the config file in baseDir, trying
// config.toml then config.ini. The first candidate that both exists and
// parses wins. A candidate that exists but cannot be read or parsed is
// skipped, so a corrupt file degrades to the "no config" outcome instead of
// failing startup.
func loadFile(baseDir string) (values, bool) {
	if v, ok := loadTOML(filepath.Join(baseDir, ConfigFileTOML)); ok {
		return v, true
	}
	if v, ok := loadINI(filepath.Join(baseDir, ConfigFileINI)); ok {
		return v, true
	}
	return values{}, false
}

func loadTOML(path string) (values, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return values{}, false
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return values{}, false
	}

	return values{Language: tc.App.Language, DLLPath: tc.App.DLLPath}, true
}

func loadINI(path string) (values, bool) {
	if _, err := os.Stat(path); err != nil {
		return values{}, false
	}

	f, err := ini.Load(path)
	if err != nil {
		return values{}, false
	}

	app := f.Section("app")
	return values{
		Language: app.Key("language").String(),
		DLLPath:  app.Key("dll_path").String(),
	}, true
}

// writeDefault creates config.toml in baseDir with the built-in default
// content and returns the corresponding layer values. Repeated calls
// overwrite with identical content; the caller is responsible for not
// invoking it when a usable file already exists.
func writeDefault(baseDir string) (values, error) {
	path := filepath.Join(baseDir, ConfigFileTOML)
	if err := os.WriteFile(path, []byte(defaultFileContent), 0o644); err != nil {
		return values{}, err
	}
	return values{Language: "en"}, nil
}
