package saptest

import (
	"fmt"

	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
)

// TextField is a fake text field. CText selects the code-completion
// variant, which the real host types separately.
type TextField struct {
	ControlName string
	Value       string
	CText       bool
}

func (f *TextField) Name() string { return f.ControlName }

func (f *TextField) Kind() sapgui.ControlKind {
	if f.CText {
		return sapgui.KindCTextField
	}
	return sapgui.KindTextField
}

func (f *TextField) Text() (string, error) { return f.Value, nil }

func (f *TextField) SetText(text string) error {
	f.Value = text
	return nil
}

// ComboBox is a fake dropdown exposing the key of its selected entry.
type ComboBox struct {
	ControlName string
	Selected    string
}

func (c *ComboBox) Name() string             { return c.ControlName }
func (c *ComboBox) Kind() sapgui.ControlKind { return sapgui.KindComboBox }
func (c *ComboBox) Key() (string, error)     { return c.Selected, nil }

// StatusBar is the fake status bar, always named sbar.
type StatusBar struct {
	MessageText string
}

func (b *StatusBar) Name() string             { return "sbar" }
func (b *StatusBar) Kind() sapgui.ControlKind { return sapgui.KindStatusBar }
func (b *StatusBar) Message() (string, error) { return b.MessageText, nil }

// Area is a fake container, typically the usr user area of a list screen.
type Area struct {
	ControlName string
	Members     []sapgui.Control
}

func (a *Area) Name() string             { return a.ControlName }
func (a *Area) Kind() sapgui.ControlKind { return sapgui.KindUserArea }

func (a *Area) Children() ([]sapgui.Control, error) {
	return append([]sapgui.Control(nil), a.Members...), nil
}

// Table is a fake virtualized table. All logical rows are scripted up
// front, but reads only ever see the row at the current scroll position.
// Every scroll bumps the generation counter, so handles and rows resolved
// before the scroll fail on use.
type Table struct {
	TableName string
	Cells     [][]string

	pos      int
	gen      int
	Selected int // logical index of the selected row, -1 when none
}

// NewTable returns a table over the given rows with nothing selected.
func NewTable(name string, rows ...[]string) *Table {
	return &Table{TableName: name, Cells: rows, Selected: -1}
}

func (t *Table) Name() string             { return t.TableName }
func (t *Table) Kind() sapgui.ControlKind { return sapgui.KindTable }

// Pos returns the current scroll position, for assertions on how far an
// enumeration actually walked.
func (t *Table) Pos() int { return t.pos }

func (t *Table) handle() *tableHandle { return &tableHandle{table: t, gen: t.gen} }

// tableHandle is one resolution of the table. It is invalidated by any
// scroll it did not perform itself.
type tableHandle struct {
	table *Table
	gen   int
}

func (h *tableHandle) Name() string             { return h.table.TableName }
func (h *tableHandle) Kind() sapgui.ControlKind { return sapgui.KindTable }

func (h *tableHandle) stale() error {
	if h.gen != h.table.gen {
		return fmt.Errorf("table %s: reference no longer valid", h.table.TableName)
	}
	return nil
}

func (h *tableHandle) RowMax() (int, error) {
	if err := h.stale(); err != nil {
		return 0, err
	}
	return len(h.table.Cells) - 1, nil
}

func (h *tableHandle) ScrollTo(pos int) error {
	if err := h.stale(); err != nil {
		return err
	}
	if pos < 0 || pos >= len(h.table.Cells) {
		return fmt.Errorf("table %s: scroll position %d out of range", h.table.TableName, pos)
	}
	h.table.pos = pos
	// The scrolling handle stays usable; every other one goes stale.
	h.table.gen++
	h.gen++
	return nil
}

func (h *tableHandle) VisibleRow() (sapgui.TableRow, error) {
	if err := h.stale(); err != nil {
		return nil, err
	}
	return &tableRow{table: h.table, gen: h.gen, pos: h.table.pos}, nil
}

// tableRow is the row materialized at the display slot. Stale as soon as
// its table scrolls again.
type tableRow struct {
	table *Table
	gen   int
	pos   int
}

func (r *tableRow) stale() error {
	if r.gen != r.table.gen {
		return fmt.Errorf("table %s: row reference no longer valid", r.table.TableName)
	}
	return nil
}

func (r *tableRow) cell(column int) (string, error) {
	if err := r.stale(); err != nil {
		return "", err
	}
	cells := r.table.Cells[r.pos]
	if column < 0 || column >= len(cells) {
		return "", fmt.Errorf("table %s: no cell at column %d", r.table.TableName, column)
	}
	return cells[column], nil
}

func (r *tableRow) Text(column int) (string, error)  { return r.cell(column) }
func (r *tableRow) CText(column int) (string, error) { return r.cell(column) }

func (r *tableRow) Select() error {
	if err := r.stale(); err != nil {
		return err
	}
	r.table.Selected = r.pos
	return nil
}
