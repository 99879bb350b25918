package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	file          string
	createMissing bool
	loaded        string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile reads path instead of searching the config directories.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) { m.file = path }
}

// WithCreateMissing writes a default config file when none exists.
func WithCreateMissing() ManagerOption {
	return func(m *Manager) { m.createMissing = true }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{viper: viper.New()}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigType("toml")
	if m.file != "" {
		v.SetConfigFile(m.file)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// DOCKYARD_DRAG_THRESHOLD overrides drag.threshold and so on.
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DOCKYARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKYARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		m.loaded = m.viper.ConfigFileUsed()
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}
	if !m.createMissing {
		return nil
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	m.loaded = m.viper.ConfigFileUsed()
	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.file != "" {
		return m.file
	}
	path, _ := GetConfigFile()
	return path
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configPath(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch IndicatorType(strings.ToLower(strings.TrimSpace(string(config.Indicators.Type)))) {
	case "", IndicatorClassic:
		config.Indicators.Type = IndicatorClassic
	case IndicatorSegmented:
		config.Indicators.Type = IndicatorSegmented
	case IndicatorNone:
		config.Indicators.Type = IndicatorNone
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the loaded configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the file the configuration was read from, or "" when
// only defaults and environment apply.
func (m *Manager) ConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

func (m *Manager) createDefaultConfig() error {
	configFile := m.file
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return fmt.Errorf("failed to set config file mode: %w", err)
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setDockingDefaults(defaults)
	m.setDragDefaults(defaults)
	m.setIndicatorDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setDockingDefaults(defaults *Config) {
	d := defaults.Docking
	m.viper.SetDefault("docking.flags.hide_title_bar_when_tabs_visible", d.Flags.HideTitleBarWhenTabsVisible)
	m.viper.SetDefault("docking.flags.always_show_tabs", d.Flags.AlwaysShowTabs)
	m.viper.SetDefault("docking.separator_thickness", d.SeparatorThickness)
	m.viper.SetDefault("docking.title_bar_height", d.TitleBarHeight)
	m.viper.SetDefault("docking.tab_bar_height", d.TabBarHeight)
	m.viper.SetDefault("docking.tab_width", d.TabWidth)
	m.viper.SetDefault("docking.minimum_item_width", d.MinimumItemWidth)
	m.viper.SetDefault("docking.minimum_item_height", d.MinimumItemHeight)
	m.viper.SetDefault("docking.icon_scale", d.IconScale)
}

func (m *Manager) setDragDefaults(defaults *Config) {
	m.viper.SetDefault("drag.threshold", defaults.Drag.Threshold)
	m.viper.SetDefault("drag.defer_floating_windows", defaults.Drag.DeferFloatingWindows)
}

func (m *Manager) setIndicatorDefaults(defaults *Config) {
	m.viper.SetDefault("indicators.type", string(defaults.Indicators.Type))
	m.viper.SetDefault("indicators.hot_band", defaults.Indicators.HotBand)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
