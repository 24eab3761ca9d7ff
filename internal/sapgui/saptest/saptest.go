// Package saptest provides a scriptable in-memory implementation of the
// sapgui host surface for tests. Screens are plain data; transitions are
// scripted through per-screen virtual-key handlers; table handles go stale
// on every scroll, matching the invalidation behavior of the real host.
package saptest

import (
	"fmt"

	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
)

// Host is a fake scripting engine root.
type Host struct {
	Conns []*Conn
}

func (h *Host) Connections() ([]sapgui.Connection, error) {
	conns := make([]sapgui.Connection, len(h.Conns))
	for i, c := range h.Conns {
		conns[i] = c
	}
	return conns, nil
}

// NewHost wraps the given sessions in a single connection.
func NewHost(sessions ...*Session) *Host {
	return &Host{Conns: []*Conn{{Open: sessions}}}
}

// Conn is a fake connection holding open sessions.
type Conn struct {
	Open []*Session
}

func (c *Conn) Sessions() ([]sapgui.Session, error) {
	sessions := make([]sapgui.Session, len(c.Open))
	for i, s := range c.Open {
		sessions[i] = s
	}
	return sessions, nil
}

// Session is a fake session. Screens maps transaction codes to the screen
// shown when that transaction starts; starting an unknown code lands on
// the Menu screen, whose title will not match any expected one.
type Session struct {
	UserName string
	Screens  map[string]*Screen
	Menu     *Screen

	Active  *Screen
	Started []string
	Ended   int
}

// NewSession returns a logged-in session positioned on an easy-access menu
// screen.
func NewSession(user string) *Session {
	menu := NewScreen("SAP Easy Access")
	return &Session{
		UserName: user,
		Screens:  map[string]*Screen{},
		Menu:     menu,
		Active:   menu,
	}
}

func (s *Session) User() (string, error) { return s.UserName, nil }

func (s *Session) StartTransaction(code string) error {
	s.Started = append(s.Started, code)
	if screen, ok := s.Screens[code]; ok {
		s.Active = screen
		return nil
	}
	s.Menu.SetStatus(fmt.Sprintf("La transaction %s n'existe pas", code))
	s.Active = s.Menu
	return nil
}

func (s *Session) EndTransaction() error {
	s.Ended++
	s.Active = s.Menu
	return nil
}

func (s *Session) ActiveWindow() (sapgui.Window, error) {
	return &Window{session: s}, nil
}

// Window tracks the session's active screen, so its title and controls
// change when a scripted key handler swaps the screen.
type Window struct {
	session *Session
}

func (w *Window) Title() (string, error) { return w.session.Active.TitleText, nil }

func (w *Window) SendVKey(key sapgui.VKey) error {
	screen := w.session.Active
	screen.Keys = append(screen.Keys, key)
	if screen.OnVKey != nil {
		screen.OnVKey(w.session, key)
	}
	return nil
}

func (w *Window) FindControl(name string) (sapgui.Control, error) {
	control, ok := w.session.Active.Controls[name]
	if !ok {
		return nil, fmt.Errorf("the control could not be found by id %s", name)
	}
	// Tables hand out a fresh handle per resolution so staleness can be
	// asserted against the generation counter.
	if table, ok := control.(*Table); ok {
		return table.handle(), nil
	}
	return control, nil
}

// Screen is one scripted screen: a title, named controls, and an optional
// virtual-key handler driving transitions.
type Screen struct {
	TitleText string
	Controls  map[string]sapgui.Control
	OnVKey    func(session *Session, key sapgui.VKey)
	Keys      []sapgui.VKey
}

// NewScreen returns a screen with the given title and a status bar.
func NewScreen(title string, controls ...sapgui.Control) *Screen {
	screen := &Screen{TitleText: title, Controls: map[string]sapgui.Control{}}
	screen.Add(&StatusBar{})
	for _, c := range controls {
		screen.Add(c)
	}
	return screen
}

// Add registers a control under its name and returns the screen.
func (s *Screen) Add(control sapgui.Control) *Screen {
	s.Controls[control.Name()] = control
	return s
}

// SetStatus sets the status-bar message text.
func (s *Screen) SetStatus(message string) {
	if bar, ok := s.Controls["sbar"].(*StatusBar); ok {
		bar.MessageText = message
	}
}

// Field reads back the text of a named text control, for assertions on
// what the code under test wrote.
func (s *Screen) Field(name string) string {
	if f, ok := s.Controls[name].(*TextField); ok {
		return f.Value
	}
	return ""
}
