// Package scenario replays scripted docking sessions on the headless
// frontend. A scenario declares a main window, its dock widgets and a list
// of steps (dock, float, drag, ...) and produces a snapshot of the final
// layouts.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/layout"
)

var (
	// ErrInvalidScenario is returned when a scenario file fails validation.
	ErrInvalidScenario = errors.New("invalid scenario")
	// ErrUnknownWidget is returned when a step names an undeclared widget.
	ErrUnknownWidget = errors.New("unknown dock widget")
	// ErrNotDocked is returned when a step needs a widget that is closed.
	ErrNotDocked = errors.New("dock widget is not docked")
	// ErrNoSeparator is returned when a separator index is out of range.
	ErrNoSeparator = errors.New("no such separator")
)

// Op names a step.
type Op string

const (
	OpDock      Op = "dock"
	OpFloat     Op = "float"
	OpDrag      Op = "drag"
	OpSelect    Op = "select"
	OpSeparator Op = "separator"
	OpResize    Op = "resize"
	OpClose     Op = "close"
)

// Source is the part of a group a drag starts from.
type Source string

const (
	SourceTitleBar Source = "title_bar"
	SourceTab      Source = "tab"
)

// Scenario is a scripted session.
type Scenario struct {
	Name   string    `yaml:"name"`
	Window geom.Size `yaml:"window"`
	// Indicators overrides the configured indicator type when set.
	Indicators string `yaml:"indicators"`
	// DeferFloatingWindows overrides the configured drag mode when set.
	DeferFloatingWindows *bool    `yaml:"defer_floating_windows"`
	Widgets              []Widget `yaml:"widgets"`
	Steps                []Step   `yaml:"steps"`
}

// Widget declares a dock widget.
type Widget struct {
	Name       string    `yaml:"name"`
	Title      string    `yaml:"title"`
	Affinities []string  `yaml:"affinities"`
	MinSize    geom.Size `yaml:"min_size"`
}

// Step is one action. Which fields apply depends on Op.
type Step struct {
	Op     Op     `yaml:"op"`
	Widget string `yaml:"widget"`

	// dock
	Location   string `yaml:"location"`
	RelativeTo string `yaml:"relative_to"`

	// drag
	Source Source       `yaml:"source"`
	Path   []geom.Point `yaml:"path"`
	Cancel bool         `yaml:"cancel"`

	// separator
	Index int `yaml:"index"`
	Delta int `yaml:"delta"`

	// resize
	Size geom.Size `yaml:"size"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario without running it.
func (sc *Scenario) Validate() error {
	var errs []string

	if sc.Window.Width <= 0 || sc.Window.Height <= 0 {
		errs = append(errs, "window size must be positive")
	}
	names := make(map[string]bool, len(sc.Widgets))
	for i, w := range sc.Widgets {
		switch {
		case w.Name == "":
			errs = append(errs, fmt.Sprintf("widgets[%d]: name is required", i))
		case names[w.Name]:
			errs = append(errs, fmt.Sprintf("widgets[%d]: duplicate name %q", i, w.Name))
		}
		names[w.Name] = true
	}
	for i, s := range sc.Steps {
		if msg := s.validate(names); msg != "" {
			errs = append(errs, fmt.Sprintf("steps[%d] (%s): %s", i, s.Op, msg))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidScenario, strings.Join(errs, "\n  - "))
	}
	return nil
}

func (s Step) validate(widgets map[string]bool) string {
	needsWidget := s.Op != OpSeparator && s.Op != OpResize
	if needsWidget && !widgets[s.Widget] {
		return fmt.Sprintf("unknown widget %q", s.Widget)
	}

	switch s.Op {
	case OpDock:
		loc, err := parseLocation(s.Location)
		if err != nil {
			return err.Error()
		}
		if loc == layout.LocationNone && s.RelativeTo == "" {
			return "center needs relative_to"
		}
		if s.RelativeTo != "" && !widgets[s.RelativeTo] {
			return fmt.Sprintf("unknown relative_to widget %q", s.RelativeTo)
		}
	case OpDrag:
		if s.Source != "" && s.Source != SourceTitleBar && s.Source != SourceTab {
			return fmt.Sprintf("unknown source %q", s.Source)
		}
		if len(s.Path) == 0 {
			return "path needs at least one point"
		}
	case OpResize:
		if s.Size.Width <= 0 || s.Size.Height <= 0 {
			return "size must be positive"
		}
	case OpSeparator:
		if s.Index < 0 {
			return "index must not be negative"
		}
	case OpFloat, OpSelect, OpClose:
	default:
		return "unknown op"
	}
	return ""
}

// parseLocation maps a scenario location. "center" means tabbed into the
// relative_to widget's group.
func parseLocation(s string) (layout.Location, error) {
	switch strings.ToLower(s) {
	case "left":
		return layout.LocationLeft, nil
	case "top":
		return layout.LocationTop, nil
	case "right", "":
		return layout.LocationRight, nil
	case "bottom":
		return layout.LocationBottom, nil
	case "center":
		return layout.LocationNone, nil
	default:
		return layout.LocationNone, fmt.Errorf("unknown location %q", s)
	}
}
