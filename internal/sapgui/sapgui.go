// Package sapgui drives a running SAP GUI instance through its scripting
// surface. The concrete COM backend is pluggable; everything above it works
// against the capability interfaces defined here, which model the small
// slice of the scripting object tree this tool actually touches.
package sapgui

import (
	"fmt"
	"runtime"
)

// ROTEntryName is the running-object-table name the SAP GUI registers
// its scripting wrapper under.
const ROTEntryName = "SAPGUI"

// VKey is a SAP GUI virtual key code as accepted by SendVKey.
type VKey int

// Virtual key codes used by this tool. These are host key codes, not
// keyboard scancodes; 7 and 20 select detail vs list result screens and
// must not be confused.
const (
	VKeyEnter    VKey = 0  // Enter
	VKeyChoose   VKey = 2  // F2, drill into the selected row
	VKeyBack     VKey = 3  // F3
	VKeyDisplay  VKey = 7  // F7, open detail view
	VKeyOverview VKey = 20 // Ctrl+F8, open list view
)

// ControlKind tags the scripting type of a control. Lookups fail closed
// when the control found under a name is not of the expected kind.
type ControlKind int

const (
	KindTextField ControlKind = iota
	KindCTextField
	KindComboBox
	KindStatusBar
	KindTable
	KindUserArea
	KindOther
)

func (k ControlKind) String() string {
	switch k {
	case KindTextField:
		return "GuiTextField"
	case KindCTextField:
		return "GuiCTextField"
	case KindComboBox:
		return "GuiComboBox"
	case KindStatusBar:
		return "GuiStatusbar"
	case KindTable:
		return "GuiTableControl"
	case KindUserArea:
		return "GuiUserArea"
	default:
		return "GuiComponent"
	}
}

// Engine is the scripting engine root obtained from the running-object
// entry. It owns every open connection of the GUI process.
type Engine interface {
	Connections() ([]Connection, error)
}

// Connection is one connection to an application server.
type Connection interface {
	Sessions() ([]Session, error)
}

// Session is one (possibly unauthenticated) session within a connection.
// A session is a stateful, single-cursor resource: exactly one transaction
// may be in flight at a time and callers must serialize access externally.
type Session interface {
	// User returns the logged-in user name, empty when nobody is
	// authenticated on this session.
	User() (string, error)

	StartTransaction(code string) error
	EndTransaction() error

	// ActiveWindow returns the currently active screen. The handle
	// tracks the session: after a transition it shows the new screen.
	ActiveWindow() (Window, error)
}

// Window is the active screen of a session.
type Window interface {
	Title() (string, error)
	SendVKey(key VKey) error

	// FindControl resolves a control by its stable screen name. Results
	// must not be cached across scrolls or screen transitions; the host
	// invalidates them freely.
	FindControl(name string) (Control, error)
}

// Control is the common surface of every resolved screen control. The
// concrete capability is reached by asserting to one of the interfaces
// below, with Kind as the authoritative type tag.
type Control interface {
	Name() string
	Kind() ControlKind
}

// TextControl is a readable/writable text field (both the plain and the
// code-completion "C" variant).
type TextControl interface {
	Control
	Text() (string, error)
	SetText(text string) error
}

// ComboControl is a dropdown exposing the key of the selected entry.
type ComboControl interface {
	Control
	Key() (string, error)
}

// StatusBarControl carries the transient message line at the bottom of a
// window. Its text is the only failure-reason channel the host offers.
type StatusBarControl interface {
	Control
	Message() (string, error)
}

// AreaControl is a container whose children can be enumerated, used to
// discover the single table control of a list screen.
type AreaControl interface {
	Control
	Children() ([]Control, error)
}

// TableControl is a virtualized table. Only one row is materialized per
// scroll position; RowMax is the scrollbar maximum, an inclusive upper
// bound on the logical row index.
type TableControl interface {
	Control
	RowMax() (int, error)
	ScrollTo(pos int) error

	// VisibleRow returns the row materialized at the fixed display slot.
	VisibleRow() (TableRow, error)
}

// TableRow is one materialized table row. It is invalidated by the next
// scroll of its table.
type TableRow interface {
	Text(column int) (string, error)
	CText(column int) (string, error)
	Select() error
}

// AttachFunc is set by a backend package via init(). On Windows this is
// the COM bridge to the SAPGUI running-object entry; tests install fakes
// directly and never go through Attach.
var AttachFunc func() (Engine, error)

// ErrUnsupported is returned when no scripting backend is compiled in.
var ErrUnsupported = fmt.Errorf("sap-hr-cli has no SAP GUI scripting backend on %s/%s", runtime.GOOS, runtime.GOARCH)

// Attach connects to the scripting engine of the running SAP GUI.
func Attach() (Engine, error) {
	if AttachFunc == nil {
		return nil, ErrUnsupported
	}
	return AttachFunc()
}
