package dock

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/geom"
)

// Flags toggle docking policies.
type Flags uint32

const (
	// FlagHideTitleBarWhenTabsVisible hides a group's title bar while its
	// tab bar is shown; the free part of the tab bar becomes the drag area.
	FlagHideTitleBarWhenTabsVisible Flags = 1 << iota
	// FlagAlwaysShowTabs shows the tab bar even for a single tab.
	FlagAlwaysShowTabs
)

// Has reports whether every flag in x is set.
func (f Flags) Has(x Flags) bool { return f&x == x }

// Options is the explicit docking configuration handed to the Registry.
type Options struct {
	Flags              Flags
	TitleBarHeight     int
	TabBarHeight       int
	TabWidth           int
	SeparatorThickness int
	MinimumItemSize    geom.Size
	IconScale          float64

	// MeasureTab returns the width of a tab showing title. Frontends that
	// know their font metrics set it; TabWidth is used otherwise.
	MeasureTab func(title string) int
}

// DefaultOptions returns pixel-based defaults.
func DefaultOptions() Options {
	return Options{
		TitleBarHeight:     30,
		TabBarHeight:       30,
		TabWidth:           120,
		SeparatorThickness: 5,
		MinimumItemSize:    geom.HardcodedMinimumSize,
		IconScale:          1,
	}
}

// Validate reports every invalid field at once.
func (o Options) Validate() error {
	var errs []string

	if o.TitleBarHeight < 0 {
		errs = append(errs, "title bar height must be >= 0")
	}
	if o.TabBarHeight < 0 {
		errs = append(errs, "tab bar height must be >= 0")
	}
	if o.TabWidth <= 0 && o.MeasureTab == nil {
		errs = append(errs, "tab width must be > 0")
	}
	if o.SeparatorThickness < 0 {
		errs = append(errs, "separator thickness must be >= 0")
	}
	if o.MinimumItemSize.Width < 0 || o.MinimumItemSize.Height < 0 {
		errs = append(errs, "minimum item size must not be negative")
	}
	if o.IconScale <= 0 {
		errs = append(errs, "icon scale must be > 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidOptions, strings.Join(errs, "\n  - "))
	}
	return nil
}

func (o Options) tabWidth(title string) int {
	if o.MeasureTab != nil {
		return o.MeasureTab(title)
	}
	return o.TabWidth
}
