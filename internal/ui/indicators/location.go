// Package indicators resolves where a drag would drop and publishes the
// drop indicators shown to the user.
package indicators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/ui/layout"
)

// ErrUnknownType is returned by ParseType.
var ErrUnknownType = errors.New("unknown indicator type")

// DropLocation is a drop zone. Inner zones are relative to the hovered
// group, outer zones to the whole drop area.
type DropLocation int

const (
	DropLocationNone DropLocation = iota
	DropLocationLeft
	DropLocationTop
	DropLocationRight
	DropLocationBottom
	DropLocationCenter
	DropLocationOuterLeft
	DropLocationOuterTop
	DropLocationOuterRight
	DropLocationOuterBottom
)

var locationNames = [...]string{
	DropLocationNone:        "none",
	DropLocationLeft:        "left",
	DropLocationTop:         "top",
	DropLocationRight:       "right",
	DropLocationBottom:      "bottom",
	DropLocationCenter:      "center",
	DropLocationOuterLeft:   "outer-left",
	DropLocationOuterTop:    "outer-top",
	DropLocationOuterRight:  "outer-right",
	DropLocationOuterBottom: "outer-bottom",
}

func (l DropLocation) String() string {
	if l < 0 || int(l) >= len(locationNames) {
		return "unknown"
	}
	return locationNames[l]
}

// IsOuter reports whether l targets an edge of the drop area.
func (l DropLocation) IsOuter() bool {
	return l >= DropLocationOuterLeft && l <= DropLocationOuterBottom
}

// LayoutLocation maps l to the insertion side. Center and None map to
// layout.LocationNone.
func (l DropLocation) LayoutLocation() layout.Location {
	switch l {
	case DropLocationLeft, DropLocationOuterLeft:
		return layout.LocationLeft
	case DropLocationTop, DropLocationOuterTop:
		return layout.LocationTop
	case DropLocationRight, DropLocationOuterRight:
		return layout.LocationRight
	case DropLocationBottom, DropLocationOuterBottom:
		return layout.LocationBottom
	default:
		return layout.LocationNone
	}
}

func outer(l DropLocation) DropLocation {
	return l + DropLocationOuterLeft - DropLocationLeft
}

// Type selects how indicators are drawn. Every type resolves zones the
// same way.
type Type int

const (
	// TypeClassic shows indicator icons over the area and the hovered group.
	TypeClassic Type = iota
	// TypeSegmented highlights edge segments.
	TypeSegmented
	// TypeNone shows no indicator at all.
	TypeNone
)

func (t Type) String() string {
	switch t {
	case TypeClassic:
		return "classic"
	case TypeSegmented:
		return "segmented"
	case TypeNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseType parses a configuration value, case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "":
		return TypeClassic, nil
	case "segmented":
		return TypeSegmented, nil
	case "none":
		return TypeNone, nil
	default:
		return TypeNone, fmt.Errorf("%q: %w", s, ErrUnknownType)
	}
}
