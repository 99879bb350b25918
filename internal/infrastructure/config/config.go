// Package config loads the dockyard configuration file and converts it into
// the explicit options taken by the docking packages.
package config

// Config represents the complete configuration for dockyard.
type Config struct {
	Docking    DockingConfig    `mapstructure:"docking" yaml:"docking" toml:"docking" json:"docking"`
	Drag       DragConfig       `mapstructure:"drag" yaml:"drag" toml:"drag" json:"drag"`
	Indicators IndicatorsConfig `mapstructure:"indicators" yaml:"indicators" toml:"indicators" json:"indicators"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// DockingConfig controls group chrome and layout spacing. Sizes are in
// frontend units: pixels, or cells for the terminal frontend.
type DockingConfig struct {
	Flags              DockingFlags `mapstructure:"flags" yaml:"flags" toml:"flags" json:"flags"`
	SeparatorThickness int          `mapstructure:"separator_thickness" yaml:"separator_thickness" toml:"separator_thickness" json:"separator_thickness" jsonschema:"minimum=0,default=5"`
	TitleBarHeight     int          `mapstructure:"title_bar_height" yaml:"title_bar_height" toml:"title_bar_height" json:"title_bar_height" jsonschema:"minimum=0,default=30"`
	TabBarHeight       int          `mapstructure:"tab_bar_height" yaml:"tab_bar_height" toml:"tab_bar_height" json:"tab_bar_height" jsonschema:"minimum=0,default=30"`
	TabWidth           int          `mapstructure:"tab_width" yaml:"tab_width" toml:"tab_width" json:"tab_width" jsonschema:"minimum=1,default=120"`
	// MinimumItemWidth and MinimumItemHeight bound every docked group.
	MinimumItemWidth  int `mapstructure:"minimum_item_width" yaml:"minimum_item_width" toml:"minimum_item_width" json:"minimum_item_width" jsonschema:"minimum=0,default=80"`
	MinimumItemHeight int `mapstructure:"minimum_item_height" yaml:"minimum_item_height" toml:"minimum_item_height" json:"minimum_item_height" jsonschema:"minimum=0,default=90"`
	// IconScale selects the title bar icon variant (1, 1.5 or 2).
	IconScale float64 `mapstructure:"icon_scale" yaml:"icon_scale" toml:"icon_scale" json:"icon_scale" jsonschema:"exclusiveMinimum=0,default=1"`
}

// DockingFlags toggles docking policies.
type DockingFlags struct {
	// HideTitleBarWhenTabsVisible makes the free part of the tab bar the
	// drag handle.
	HideTitleBarWhenTabsVisible bool `mapstructure:"hide_title_bar_when_tabs_visible" yaml:"hide_title_bar_when_tabs_visible" toml:"hide_title_bar_when_tabs_visible" json:"hide_title_bar_when_tabs_visible"`
	AlwaysShowTabs              bool `mapstructure:"always_show_tabs" yaml:"always_show_tabs" toml:"always_show_tabs" json:"always_show_tabs"`
}

// DragConfig controls the drag state machine.
type DragConfig struct {
	// Threshold is the pointer travel before a press becomes a drag.
	Threshold int `mapstructure:"threshold" yaml:"threshold" toml:"threshold" json:"threshold" jsonschema:"minimum=1,default=4"`
	// DeferFloatingWindows keeps dragged groups docked until they are
	// dropped over nothing.
	DeferFloatingWindows bool `mapstructure:"defer_floating_windows" yaml:"defer_floating_windows" toml:"defer_floating_windows" json:"defer_floating_windows"`
}

// IndicatorType selects the drop indicator style.
type IndicatorType string

const (
	IndicatorClassic   IndicatorType = "classic"
	IndicatorSegmented IndicatorType = "segmented"
	IndicatorNone      IndicatorType = "none"
)

// IndicatorsConfig controls the drop indicator overlay.
type IndicatorsConfig struct {
	Type IndicatorType `mapstructure:"type" yaml:"type" toml:"type" json:"type" jsonschema:"enum=classic,enum=segmented,enum=none,default=classic"`
	// HotBand is the width of the outer-edge drop band.
	HotBand int `mapstructure:"hot_band" yaml:"hot_band" toml:"hot_band" json:"hot_band" jsonschema:"minimum=1,default=20"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}
