package view

// Factory creates natives for controllers. Each method returns nil when
// the frontend does not implement that kind; callers skip the feature.
type Factory interface {
	CreateDockWidget(c Controller, parent Native) Native
	CreateGroup(c Controller, parent Native) Native
	CreateTitleBar(c Controller, parent Native) Native
	CreateTabBar(c Controller, parent Native) Native
	CreateStack(c Controller, parent Native) Native
	CreateSeparator(c Controller, parent Native) Native
	CreateFloatingWindow(c Controller, parent Native) Native
	CreateRubberBand(parent Native) Native
	CreateSideBar(c Controller, parent Native) Native
	CreateDropArea(c Controller, parent Native) Native
	CreateMDILayout(c Controller, parent Native) Native
	CreateIndicatorOverlay(c Controller, parent Native) Native
	// IconForButtonType returns a platform icon, or nil.
	IconForButtonType(t ButtonType, scale float64) Icon
}

// Icon is an opaque platform icon handle.
type Icon any

// ButtonType identifies a title bar button.
type ButtonType int

const (
	ButtonClose ButtonType = iota
	ButtonFloat
	ButtonMinimize
	ButtonMaximize
	ButtonNormal
	ButtonAutoHide
	ButtonUnautoHide
)

// String returns the button name.
func (b ButtonType) String() string {
	switch b {
	case ButtonClose:
		return "close"
	case ButtonFloat:
		return "float"
	case ButtonMinimize:
		return "minimize"
	case ButtonMaximize:
		return "maximize"
	case ButtonNormal:
		return "normal"
	case ButtonAutoHide:
		return "auto-hide"
	case ButtonUnautoHide:
		return "unauto-hide"
	default:
		return "unknown"
	}
}

// IconName returns the resource name of the icon for b at the given scale,
// e.g. "close", "min-1.5x" or "dock-float-2x". Unknown buttons map to "".
func IconName(b ButtonType, scale float64) string {
	var name string
	switch b {
	case ButtonAutoHide:
		name = "auto-hide"
	case ButtonUnautoHide:
		name = "unauto-hide"
	case ButtonClose:
		name = "close"
	case ButtonMinimize:
		name = "min"
	case ButtonMaximize:
		name = "max"
	case ButtonNormal, ButtonFloat:
		name = "dock-float"
	default:
		return ""
	}

	switch {
	case fuzzyEqual(scale, 1.5):
		name += "-1.5x"
	case fuzzyEqual(scale, 2):
		name += "-2x"
	}
	return name
}

func fuzzyEqual(a, b float64) bool {
	d := a - b
	return d > -1e-9 && d < 1e-9
}

// NullFactory implements no view kind at all. Controllers built with it
// run headless.
type NullFactory struct{}

var _ Factory = NullFactory{}

func (NullFactory) CreateDockWidget(Controller, Native) Native       { return nil }
func (NullFactory) CreateGroup(Controller, Native) Native            { return nil }
func (NullFactory) CreateTitleBar(Controller, Native) Native         { return nil }
func (NullFactory) CreateTabBar(Controller, Native) Native           { return nil }
func (NullFactory) CreateStack(Controller, Native) Native            { return nil }
func (NullFactory) CreateSeparator(Controller, Native) Native        { return nil }
func (NullFactory) CreateFloatingWindow(Controller, Native) Native   { return nil }
func (NullFactory) CreateRubberBand(Native) Native                   { return nil }
func (NullFactory) CreateSideBar(Controller, Native) Native          { return nil }
func (NullFactory) CreateDropArea(Controller, Native) Native         { return nil }
func (NullFactory) CreateMDILayout(Controller, Native) Native        { return nil }
func (NullFactory) CreateIndicatorOverlay(Controller, Native) Native { return nil }
func (NullFactory) IconForButtonType(ButtonType, float64) Icon       { return nil }
