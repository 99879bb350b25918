package dock

import "errors"

var (
	// ErrNilController is returned when a required controller is missing.
	ErrNilController = errors.New("required controller is nil")
	// ErrInvalidOptions is returned by Options.Validate.
	ErrInvalidOptions = errors.New("invalid docking options")
	// ErrDuplicateName is returned when a dock widget or main window name
	// is reused.
	ErrDuplicateName = errors.New("name already registered")
	// ErrNotInGroup is returned when a dock widget is not a tab of the group.
	ErrNotInGroup = errors.New("dock widget is not in this group")
	// ErrAlreadyInGroup is returned when adding a dock widget that still
	// belongs to a group.
	ErrAlreadyInGroup = errors.New("dock widget already belongs to a group")
	// ErrIndexOutOfBounds is returned when a tab index is out of range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrWindowClosed is returned when operating on a closed floating window.
	ErrWindowClosed = errors.New("floating window is closed")
	// ErrForeignGroup is returned when a group is not hosted by the drop area.
	ErrForeignGroup = errors.New("group does not belong to this drop area")
	// ErrGroupAttached is returned when inserting a group that still has a host.
	ErrGroupAttached = errors.New("group is still hosted by a drop area")
	// ErrAffinityMismatch is returned when a drop area or group does not
	// accept the affinities of what is being docked.
	ErrAffinityMismatch = errors.New("affinities do not match")
	// ErrNoMDIArea is returned when a main window was built without one.
	ErrNoMDIArea = errors.New("main window has no MDI area")
)
