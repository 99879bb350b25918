package config

import (
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/drag"
	"github.com/bnema/dockyard/internal/ui/indicators"
)

// DockOptions converts the docking section.
func (c *Config) DockOptions() dock.Options {
	opts := dock.DefaultOptions()
	d := c.Docking

	var flags dock.Flags
	if d.Flags.HideTitleBarWhenTabsVisible {
		flags |= dock.FlagHideTitleBarWhenTabsVisible
	}
	if d.Flags.AlwaysShowTabs {
		flags |= dock.FlagAlwaysShowTabs
	}

	opts.Flags = flags
	opts.SeparatorThickness = d.SeparatorThickness
	opts.TitleBarHeight = d.TitleBarHeight
	opts.TabBarHeight = d.TabBarHeight
	opts.TabWidth = d.TabWidth
	opts.MinimumItemSize = geom.Size{Width: d.MinimumItemWidth, Height: d.MinimumItemHeight}
	opts.IconScale = d.IconScale
	return opts
}

// DragOptions converts the drag section.
func (c *Config) DragOptions() drag.Options {
	return drag.Options{
		Threshold:            c.Drag.Threshold,
		DeferFloatingWindows: c.Drag.DeferFloatingWindows,
	}
}

// IndicatorOptions converts the indicators section. The type was checked
// by validation; an unknown one falls back to classic.
func (c *Config) IndicatorOptions() []indicators.Option {
	kind, err := indicators.ParseType(string(c.Indicators.Type))
	if err != nil {
		kind = indicators.TypeClassic
	}
	return []indicators.Option{
		indicators.WithType(kind),
		indicators.WithHotBand(c.Indicators.HotBand),
	}
}

// LoggingConfig converts the logging section. Invalid levels fall back to
// the default.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
		cfg.Level = level
	}
	if c.Logging.Format == "json" {
		cfg.Format = "json"
	}
	return cfg
}
