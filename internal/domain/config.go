package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Store    StoreConfig `toml:"store"`
	Board    BoardConfig `toml:"board"`
	Log      LogConfig   `toml:"log"`
	TUI      TUIConfig   `toml:"tui"`
}

// StoreConfig holds remote store settings from [store] section.
type StoreConfig struct {
	BaseURL string `toml:"base_url,omitempty"` // Base URL of the task store
	Timeout string `toml:"timeout,omitempty"`  // Per-request timeout, Go duration syntax
}

// RequestTimeout returns the parsed timeout, falling back to the default.
func (c StoreConfig) RequestTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	return DefaultStoreTimeout
}

// BoardConfig holds board settings from [board] section.
type BoardConfig struct {
	DefaultView   string `toml:"default_view,omitempty"` // "daily" (default) or "weekly"
	ConfirmDelete bool   `toml:"confirm_delete"`         // Ask before deleting tasks and goals
}

// View returns the configured default view kind.
func (c BoardConfig) View() PeriodKind {
	if k, err := ParsePeriodKind(c.DefaultView); err == nil {
		return k
	}
	return KindDaily
}

// TUIConfig holds TUI settings from [tui] section.
type TUIConfig struct {
	ToastSeconds int  `toml:"toast_seconds,omitempty"` // How long notifications stay visible
	Mouse        bool `toml:"mouse"`                   // Enable mouse drag and click
}

// ToastDuration returns how long a notification stays visible.
func (c TUIConfig) ToastDuration() time.Duration {
	if c.ToastSeconds <= 0 {
		return DefaultToastSeconds * time.Second
	}
	return time.Duration(c.ToastSeconds) * time.Second
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultBaseURL      = "http://127.0.0.1:5001"
	DefaultStoreTimeout = 10 * time.Second
	DefaultLogLevel     = "info"
	DefaultToastSeconds = 3
)

// Directory and file names for quadrant.
const (
	AppDirName            = "quadrant"        // Directory name under XDG config/state homes
	ConfigFileName        = "config.toml"     // Global config file name
	ProjectConfigFileName = ".quadrant.toml"  // Project config file name
	LogFileName           = "quadrant.log"    // Log file name
	EnvServer             = "QUADRANT_SERVER" // Overrides store.base_url
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path in dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// StateDir returns the state directory path.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// LogPath returns the path to the log file under a state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultStoreTimeout.String(),
		},
		Board: BoardConfig{
			DefaultView:   string(KindDaily),
			ConfirmDelete: true,
		},
		TUI: TUIConfig{
			ToastSeconds: DefaultToastSeconds,
			Mouse:        true,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// RenderConfigTemplate renders the commented config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
