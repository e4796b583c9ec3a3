// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/quadrant/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	getenv        func(string) string
	projectDir    string // Directory holding .quadrant.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/quadrant)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		getenv:        os.Getenv,
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		getenv:        func(string) string { return "" },
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// WithEnv replaces the environment lookup.
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (project + global).
// Precedence: default <- global <- project <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	if l.projectDir != "" {
		project, err := l.loadFile(domain.ProjectConfigPath(l.projectDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if project != nil {
			base = mergeConfigs(base, project)
		}
	}

	if server := l.getenv(domain.EnvServer); server != "" {
		base.Store.BaseURL = server
	}

	return base, nil
}

// LoadGlobal returns only the global configuration, applied over defaults.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}
	return mergeConfigs(domain.NewDefaultConfig(), global), nil
}

// loadFile loads a configuration layer from a file.
func (l *Loader) loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToLayer(raw), nil
}

// layer is one config file. Nil fields were not set in the file,
// so booleans can be turned off by a higher-precedence file.
type layer struct {
	BaseURL       *string
	Timeout       *string
	DefaultView   *string
	LogLevel      *string
	ConfirmDelete *bool
	Mouse         *bool
	ToastSeconds  *int
	Warnings      []string
}

// convertRawToLayer converts the raw map to a layer and collects warnings.
func convertRawToLayer(raw map[string]any) *layer {
	res := &layer{}
	var warnings []string

	section := func(name string, value any, keys map[string]func(any) bool) {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("expected table for [%s]", name))
			return
		}
		for k, v := range m {
			set, known := keys[k]
			if !known {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", name, k))
				continue
			}
			if !set(v) {
				warnings = append(warnings, fmt.Sprintf("invalid value for %s.%s: %v", name, k, v))
			}
		}
	}

	for name, value := range raw {
		switch name {
		case "store":
			section(name, value, map[string]func(any) bool{
				"base_url": setString(&res.BaseURL),
				"timeout":  setString(&res.Timeout),
			})
		case "board":
			section(name, value, map[string]func(any) bool{
				"default_view":   setString(&res.DefaultView),
				"confirm_delete": setBool(&res.ConfirmDelete),
			})
		case "tui":
			section(name, value, map[string]func(any) bool{
				"toast_seconds": setInt(&res.ToastSeconds),
				"mouse":         setBool(&res.Mouse),
			})
		case "log":
			section(name, value, map[string]func(any) bool{
				"level": setString(&res.LogLevel),
			})
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", name))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func setString(dst **string) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		if ok {
			*dst = &s
		}
		return ok
	}
}

func setBool(dst **bool) func(any) bool {
	return func(v any) bool {
		b, ok := v.(bool)
		if ok {
			*dst = &b
		}
		return ok
	}
}

func setInt(dst **int) func(any) bool {
	return func(v any) bool {
		n, ok := v.(int64)
		if ok {
			i := int(n)
			*dst = &i
		}
		return ok
	}
}

// mergeConfigs applies a layer over base, returning a new config.
func mergeConfigs(base *domain.Config, override *layer) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.BaseURL != nil && *override.BaseURL != "" {
		result.Store.BaseURL = *override.BaseURL
	}
	if override.Timeout != nil && *override.Timeout != "" {
		result.Store.Timeout = *override.Timeout
	}
	if override.DefaultView != nil && *override.DefaultView != "" {
		result.Board.DefaultView = *override.DefaultView
	}
	if override.ConfirmDelete != nil {
		result.Board.ConfirmDelete = *override.ConfirmDelete
	}
	if override.ToastSeconds != nil {
		result.TUI.ToastSeconds = *override.ToastSeconds
	}
	if override.Mouse != nil {
		result.TUI.Mouse = *override.Mouse
	}
	if override.LogLevel != nil && *override.LogLevel != "" {
		result.Log.Level = *override.LogLevel
	}

	return &result
}
