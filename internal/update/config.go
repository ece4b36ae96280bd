package update

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type RuntimeConfig struct {
	AgendaDays   int
	PreviewCount int
	PaneWidth    int
	HistoryLimit int
	LogLevel     string
	LogFile      string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		AgendaDays:   1,
		PreviewCount: 5,
		PaneWidth:    58,
		HistoryLimit: 200,
		LogLevel:     "info",
		LogFile:      "",
	}
}

// fileConfig mirrors the TOML layout of the config file.
type fileConfig struct {
	Agenda struct {
		Days         int `toml:"days"`
		PreviewCount int `toml:"preview-count"`
	} `toml:"agenda"`
	UI struct {
		PaneWidth    int `toml:"pane-width"`
		HistoryLimit int `toml:"history-limit"`
	} `toml:"ui"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"log"`
}

// DefaultConfigPath returns ~/.config/mtc/config.toml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "mtc", "config.toml"), nil
}

// LoadRuntimeConfig overlays the keys defined in the TOML file at path onto
// base. A missing file leaves base untouched.
func LoadRuntimeConfig(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	meta, err := toml.Decode(string(data), &fc)
	if err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("agenda", "days") && fc.Agenda.Days > 0 {
		cfg.AgendaDays = fc.Agenda.Days
	}
	if meta.IsDefined("agenda", "preview-count") && fc.Agenda.PreviewCount > 0 {
		cfg.PreviewCount = fc.Agenda.PreviewCount
	}
	if meta.IsDefined("ui", "pane-width") && fc.UI.PaneWidth > 0 {
		cfg.PaneWidth = fc.UI.PaneWidth
	}
	if meta.IsDefined("ui", "history-limit") && fc.UI.HistoryLimit > 0 {
		cfg.HistoryLimit = fc.UI.HistoryLimit
	}
	if meta.IsDefined("log", "level") {
		cfg.LogLevel = strings.TrimSpace(fc.Log.Level)
	}
	if meta.IsDefined("log", "file") {
		cfg.LogFile = strings.TrimSpace(fc.Log.File)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("MTC_AGENDA_DAYS"); ok && v > 0 {
		cfg.AgendaDays = v
	}
	if v, ok := getEnvInt("MTC_PREVIEW_COUNT"); ok && v > 0 {
		cfg.PreviewCount = v
	}
	if v, ok := getEnvInt("MTC_PANE_WIDTH"); ok && v > 0 {
		cfg.PaneWidth = v
	}
	if v, ok := getEnvInt("MTC_HISTORY_LIMIT"); ok && v > 0 {
		cfg.HistoryLimit = v
	}
	if v := strings.TrimSpace(os.Getenv("MTC_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("MTC_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
