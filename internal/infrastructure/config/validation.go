package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config validation failed")
	// ErrNoConfigFile is returned when watching without a config file.
	ErrNoConfigFile = errors.New("no config file in use")
)

// Validate checks cfg the way Load does.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	return validateConfig(cfg)
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDocking(config)...)
	validationErrors = append(validationErrors, validateDrag(config)...)
	validationErrors = append(validationErrors, validateIndicators(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDocking(config *Config) []string {
	var validationErrors []string
	d := config.Docking
	nonNegative := []struct {
		key   string
		value int
	}{
		{"docking.separator_thickness", d.SeparatorThickness},
		{"docking.title_bar_height", d.TitleBarHeight},
		{"docking.tab_bar_height", d.TabBarHeight},
		{"docking.minimum_item_width", d.MinimumItemWidth},
		{"docking.minimum_item_height", d.MinimumItemHeight},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			validationErrors = append(validationErrors, f.key+" must be non-negative")
		}
	}
	if d.TabWidth <= 0 {
		validationErrors = append(validationErrors, "docking.tab_width must be positive")
	}
	if d.IconScale <= 0 {
		validationErrors = append(validationErrors, "docking.icon_scale must be positive")
	}
	return validationErrors
}

func validateDrag(config *Config) []string {
	if config.Drag.Threshold < 1 {
		return []string{"drag.threshold must be at least 1"}
	}
	return nil
}

func validateIndicators(config *Config) []string {
	var validationErrors []string
	switch config.Indicators.Type {
	case IndicatorClassic, IndicatorSegmented, IndicatorNone:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("indicators.type must be one of classic, segmented, none (got %q)", config.Indicators.Type))
	}
	if config.Indicators.HotBand < 1 {
		validationErrors = append(validationErrors, "indicators.hot_band must be at least 1")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level: "+err.Error())
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
