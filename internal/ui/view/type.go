// Package view bridges platform view handles and the controllers that own
// them. Frontends implement Native; the core only talks to Wrapper.
package view

import "strings"

// Type is the closed set of view kinds. Values are bit flags so a frontend
// can advertise the kinds it supports as a mask.
type Type uint32

const (
	TypeNone  Type = 0
	TypeGroup Type = 1 << (iota - 1)
	TypeTitleBar
	TypeTabBar
	TypeStack
	TypeFloatingWindow
	TypeSeparator
	TypeDockWidget
	TypeLayoutItem
	TypeSideBar
	TypeMainWindow
	TypeViewWrapper
	TypeDropArea
	TypeMDILayout
	TypeRubberBand
	TypeDropAreaIndicatorOverlay
	TypeMDIArea

	typeFirst = TypeGroup
	typeLast  = TypeMDIArea
)

// AllTypes lists every non-None kind in declaration order.
func AllTypes() []Type {
	out := make([]Type, 0, 16)
	for t := typeFirst; t <= typeLast; t <<= 1 {
		out = append(out, t)
	}
	return out
}

// class says how a kind participates in controller lookup.
type class int

const (
	classUnknown class = iota
	// classController kinds are backed by a domain controller.
	classController
	// classInternal kinds never match a controller.
	classInternal
	// classWrapper matches every wrapper.
	classWrapper
	// classBare kinds have no controller; the native is Marked instead.
	classBare
)

func classify(t Type) class {
	switch t {
	case TypeGroup, TypeTitleBar, TypeTabBar, TypeStack, TypeFloatingWindow,
		TypeSeparator, TypeDockWidget, TypeSideBar, TypeMainWindow,
		TypeDropArea, TypeMDILayout, TypeMDIArea:
		return classController
	case TypeNone, TypeLayoutItem, TypeDropAreaIndicatorOverlay:
		return classInternal
	case TypeRubberBand:
		return classBare
	case TypeViewWrapper:
		return classWrapper
	}
	return classUnknown
}

// IsValid reports whether t is one of the declared kinds.
func (t Type) IsValid() bool { return classify(t) != classUnknown }

var typeNames = map[Type]string{
	TypeNone:                     "none",
	TypeGroup:                    "group",
	TypeTitleBar:                 "title-bar",
	TypeTabBar:                   "tab-bar",
	TypeStack:                    "stack",
	TypeFloatingWindow:           "floating-window",
	TypeSeparator:                "separator",
	TypeDockWidget:               "dock-widget",
	TypeLayoutItem:               "layout-item",
	TypeSideBar:                  "side-bar",
	TypeMainWindow:               "main-window",
	TypeViewWrapper:              "view-wrapper",
	TypeDropArea:                 "drop-area",
	TypeMDILayout:                "mdi-layout",
	TypeRubberBand:               "rubber-band",
	TypeDropAreaIndicatorOverlay: "drop-indicator-overlay",
	TypeMDIArea:                  "mdi-area",
}

// String returns the kind name, or the set of names for a mask.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	var parts []string
	for _, k := range AllTypes() {
		if t&k != 0 {
			parts = append(parts, typeNames[k])
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
