package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir    = ".cmdshadow"
	DefaultAuditFile    = "audit.conf"
	DefaultSettingsFile = "config.yaml"
	DefaultLogFile      = "runs.jsonl"
)

type Config struct {
	ConfigDir    string
	AuditPath    string
	SettingsPath string
	LogPath      string
	Settings     Settings
}

// Settings are tool options from the YAML settings file. They shape how
// the fact snapshot is built; the audit directives live in a separate
// line-oriented file (see directives.go).
type Settings struct {
	// RCFiles are parsed for alias and function definitions.
	RCFiles []string `yaml:"rc_files"`
	// Path overrides the PATH environment variable when set.
	Path string `yaml:"path"`
	// Workers bounds concurrent fact lookups. Default: 1 (serial).
	Workers int `yaml:"workers"`
	// Color is "auto", "always" or "never". Default: "auto".
	Color string `yaml:"color"`
	// LogPath overrides the run-log location.
	LogPath string `yaml:"log_path"`
}

// DefaultSettings returns the settings used when no config.yaml exists.
func DefaultSettings() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Settings{
		RCFiles: []string{
			filepath.Join(home, ".bashrc"),
			filepath.Join(home, ".bash_aliases"),
			filepath.Join(home, ".profile"),
		},
		Workers: 1,
		Color:   "auto",
	}
}

func Load(auditPath, logPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)

	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigDir:    configDir,
		SettingsPath: filepath.Join(configDir, DefaultSettingsFile),
	}

	settings, err := loadSettings(cfg.SettingsPath)
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings

	if auditPath != "" {
		cfg.AuditPath = auditPath
	} else {
		cfg.AuditPath = filepath.Join(configDir, DefaultAuditFile)
	}

	switch {
	case logPath != "":
		cfg.LogPath = logPath
	case cfg.Settings.LogPath != "":
		cfg.LogPath = cfg.Settings.LogPath
	default:
		cfg.LogPath = filepath.Join(configDir, DefaultLogFile)
	}

	return cfg, nil
}

// loadSettings reads the YAML settings file. A missing file is not an
// error: defaults apply.
func loadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	if settings.Workers < 1 {
		settings.Workers = 1
	}
	if settings.Color == "" {
		settings.Color = "auto"
	}
	return settings, nil
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
