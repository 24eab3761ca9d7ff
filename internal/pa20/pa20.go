// Package pa20 runs parameterized record lookups against the PA20
// "display HR master data" transaction and classifies their outcome. The
// host has no structured success/failure channel: a lookup succeeded iff
// the window title changed after the trigger key, and the status-bar text
// is the only hint at why one failed.
package pa20

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
)

const (
	// TransactionCode is the PA20 transaction identifier.
	TransactionCode = "PA20"

	// TransactionTitle is the window title of the record-lookup screen.
	// Seeing it again after the trigger key means the lookup failed.
	TransactionTitle = "Afficher données de base personnel"

	// Input fields of the record-lookup screen.
	FieldEmployeeID = "RP50G-PERNR"
	FieldInfotype   = "RP50G-CHOIC"
	FieldSubtype    = "RP50G-SUBTY"

	userAreaName = "usr"
)

// ViewMode selects between the list and detail result screens. The two
// modes are reached by distinct virtual keys; confusing them produces a
// wrong or missing transition.
type ViewMode int

const (
	ModeDetail ViewMode = iota
	ModeList
)

func (m ViewMode) String() string {
	if m == ModeList {
		return "list"
	}
	return "detail"
}

func (m ViewMode) vkey() sapgui.VKey {
	if m == ModeList {
		return sapgui.VKeyOverview
	}
	return sapgui.VKeyDisplay
}

// Query fully determines one record lookup. Immutable once constructed.
type Query struct {
	EmployeeID int
	Infotype   string // 4-digit infotype code
	Subtype    string // optional, may be empty
	Mode       ViewMode
}

// NoResultError means the lookup produced no result screen. The employee
// ID may be wrong, the infotype may hold no record, or the user may lack
// permission; the host does not say which, so StatusMessage is preserved
// as the sole disambiguator.
type NoResultError struct {
	EmployeeID    int
	Infotype      string
	Subtype       string
	Mode          ViewMode
	StatusMessage string
}

func (e *NoResultError) Error() string {
	return fmt.Sprintf(
		"personal data not accessible: employee=%d infotype=%s subtype=%q mode=%s status=%q",
		e.EmployeeID, e.Infotype, e.Subtype, e.Mode, e.StatusMessage)
}

// noDataPrefix/noDataSuffix frame the one status message that some
// mappers deliberately recover from: "no data exists for this infotype in
// the selected period".
const (
	noDataPrefix = "Aucune donnée existe pour"
	noDataSuffix = "(dans période sélectionnée)"
)

// IsNoData reports whether err is a failed lookup whose status message is
// the literal "no data exists for this record type/period" text. It is
// the only sanctioned escape from the no-raw-text-in-mappers rule; the
// mappers that use it each apply their own absence policy.
func IsNoData(err error) bool {
	nores, ok := err.(*NoResultError)
	if !ok {
		return false
	}
	msg := nores.StatusMessage
	return len(msg) >= len(noDataPrefix)+len(noDataSuffix) &&
		msg[:len(noDataPrefix)] == noDataPrefix &&
		msg[len(msg)-len(noDataSuffix):] == noDataSuffix
}

// Client runs PA20 lookups against one scripting engine. The underlying
// session is a single-cursor resource; callers must not run two lookups
// concurrently.
type Client struct {
	engine sapgui.Engine
}

// NewClient returns a client over the given engine.
func NewClient(engine sapgui.Engine) *Client {
	return &Client{engine: engine}
}

// Run performs one lookup and returns the result window. The active
// authenticated session is located fresh on every call: sessions come and
// go with the human driving the GUI.
func (c *Client) Run(q Query) (sapgui.Window, error) {
	session, err := sapgui.ActiveSession(c.engine)
	if err != nil {
		return nil, err
	}
	window, err := sapgui.BeginTransaction(session, TransactionCode, TransactionTitle)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("employee", q.EmployeeID).
		Str("infotype", q.Infotype).
		Str("subtype", q.Subtype).
		Stringer("mode", q.Mode).
		Msg("accessing personal data")

	if err := sapgui.SetCText(window, FieldEmployeeID, strconv.Itoa(q.EmployeeID)); err != nil {
		return nil, err
	}
	if err := sapgui.SetCText(window, FieldInfotype, q.Infotype); err != nil {
		return nil, err
	}
	if err := sapgui.SetCText(window, FieldSubtype, q.Subtype); err != nil {
		return nil, err
	}
	if err := window.SendVKey(q.Mode.vkey()); err != nil {
		return nil, err
	}

	// An unchanged title means we never left the lookup screen.
	title, err := window.Title()
	if err != nil {
		return nil, err
	}
	if title == TransactionTitle {
		nores := &NoResultError{
			EmployeeID:    q.EmployeeID,
			Infotype:      q.Infotype,
			Subtype:       q.Subtype,
			Mode:          q.Mode,
			StatusMessage: sapgui.StatusText(window),
		}
		log.Warn().Str("status", nores.StatusMessage).Msg("unable to access infotype")
		return nil, nores
	}
	return window, nil
}

// Detail opens the single-record detail screen of an infotype.
func (c *Client) Detail(employeeID int, infotype, subtype string) (sapgui.Window, error) {
	return c.Run(Query{EmployeeID: employeeID, Infotype: infotype, Subtype: subtype, Mode: ModeDetail})
}

// Entries opens the list screen of an infotype and returns a cursor over
// its rows. The cursor reflects live screen state: enumerate it once, and
// not after drilling into a row.
func (c *Client) Entries(employeeID int, infotype, subtype string) (*sapgui.RowCursor, error) {
	window, err := c.Run(Query{EmployeeID: employeeID, Infotype: infotype, Subtype: subtype, Mode: ModeList})
	if err != nil {
		return nil, err
	}
	name, err := tableName(window)
	if err != nil {
		return nil, err
	}
	return sapgui.EnumerateRows(window, name)
}

// tableName discovers the single table control of a list screen under the
// usr area. The name is captured once and used for every re-resolution
// during enumeration.
func tableName(window sapgui.Window) (string, error) {
	area, err := sapgui.Find[sapgui.AreaControl](window, userAreaName, sapgui.KindUserArea)
	if err != nil {
		return "", err
	}
	children, err := area.Children()
	if err != nil {
		return "", err
	}
	name := ""
	for _, child := range children {
		if child.Kind() != sapgui.KindTable {
			continue
		}
		if name != "" {
			return "", fmt.Errorf("list screen has more than one table control")
		}
		name = child.Name()
	}
	if name == "" {
		return "", &sapgui.ControlNotFoundError{Name: userAreaName, Kind: sapgui.KindTable}
	}
	return name, nil
}
