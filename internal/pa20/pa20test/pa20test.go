// Package pa20test builds saptest hosts pre-scripted with the PA20
// record-lookup screen, for tests that exercise the mappers end to end.
package pa20test

import (
	"github.com/Xiaoy312/sap-hr-cli/internal/pa20"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui/saptest"
)

// Request identifies one scripted lookup: the values the code under test
// writes into the lookup screen, plus the view mode it triggers.
type Request struct {
	Employee string
	Infotype string
	Subtype  string
	List     bool
}

// Response is what a scripted lookup produces. A nil Screen means the
// lookup screen does not transition; Status is then shown on its status
// bar, which is how the real host reports "no data" and every other
// refusal.
type Response struct {
	Screen *saptest.Screen
	Status string
}

// NewSession returns a logged-in session whose PA20 transaction behaves
// per the given script. Unscripted lookups fail with a generic status.
func NewSession(user string, script map[Request]Response) *saptest.Session {
	session := saptest.NewSession(user)

	lookup := saptest.NewScreen(pa20.TransactionTitle,
		&saptest.TextField{ControlName: pa20.FieldEmployeeID, CText: true},
		&saptest.TextField{ControlName: pa20.FieldInfotype, CText: true},
		&saptest.TextField{ControlName: pa20.FieldSubtype, CText: true},
	)
	lookup.OnVKey = func(s *saptest.Session, key sapgui.VKey) {
		var list bool
		switch key {
		case sapgui.VKeyDisplay:
			list = false
		case sapgui.VKeyOverview:
			list = true
		default:
			return
		}
		req := Request{
			Employee: lookup.Field(pa20.FieldEmployeeID),
			Infotype: lookup.Field(pa20.FieldInfotype),
			Subtype:  lookup.Field(pa20.FieldSubtype),
			List:     list,
		}
		resp, ok := script[req]
		if !ok {
			lookup.SetStatus("Le numéro de personnel n'existe pas")
			return
		}
		if resp.Screen == nil {
			lookup.SetStatus(resp.Status)
			return
		}
		s.Active = resp.Screen
	}

	session.Screens[pa20.TransactionCode] = lookup
	return session
}

// NewEngine wraps NewSession in a single-connection host.
func NewEngine(user string, script map[Request]Response) *saptest.Host {
	return saptest.NewHost(NewSession(user, script))
}

// DetailScreen returns a result screen holding the given controls.
func DetailScreen(title string, controls ...sapgui.Control) *saptest.Screen {
	return saptest.NewScreen(title, controls...)
}

// ListScreen returns a result screen holding one table under a usr user
// area, the layout the entries cursor discovers tables in.
func ListScreen(title, tableName string, rows ...[]string) *saptest.Screen {
	table := saptest.NewTable(tableName, rows...)
	screen := saptest.NewScreen(title)
	screen.Add(&saptest.Area{ControlName: "usr", Members: []sapgui.Control{table}})
	screen.Add(table)
	return screen
}

// NoData returns the refusal a lookup gets when the infotype holds no
// record for the selected period, rendered exactly as the host words it.
func NoData(infotypeLabel string) Response {
	return Response{Status: "Aucune donnée existe pour " + infotypeLabel + " (dans période sélectionnée)"}
}
