package config

import (
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/drag"
	"github.com/bnema/dockyard/internal/ui/indicators"
)

// DefaultConfig returns the built-in configuration. Docking values match
// dock.DefaultOptions.
func DefaultConfig() *Config {
	opts := dock.DefaultOptions()
	return &Config{
		Docking: DockingConfig{
			SeparatorThickness: opts.SeparatorThickness,
			TitleBarHeight:     opts.TitleBarHeight,
			TabBarHeight:       opts.TabBarHeight,
			TabWidth:           opts.TabWidth,
			MinimumItemWidth:   opts.MinimumItemSize.Width,
			MinimumItemHeight:  opts.MinimumItemSize.Height,
			IconScale:          opts.IconScale,
		},
		Drag: DragConfig{
			Threshold: drag.DefaultThreshold,
		},
		Indicators: IndicatorsConfig{
			Type:    IndicatorClassic,
			HotBand: indicators.DefaultHotBand,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
