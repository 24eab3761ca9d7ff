package sapgui

// EnumerateRows walks the logical rows of a virtualized table. The host
// materializes exactly one visible row per scroll position, so N rows are
// walked one scroll step at a time; the scrollbar maximum is read once up
// front and fixes the sequence length for the whole enumeration.
//
// The cursor is finite and not restartable: it reflects live, mutable
// external state, and a second pass may see different data or fail
// outright once the screen has moved on.
func EnumerateRows(window Window, tableName string) (*RowCursor, error) {
	table, err := Find[TableControl](window, tableName, KindTable)
	if err != nil {
		return nil, err
	}
	max, err := table.RowMax()
	if err != nil {
		return nil, err
	}
	return &RowCursor{window: window, table: tableName, max: max}, nil
}

// RowCursor enumerates table rows in the manner of bufio.Scanner: Next
// advances, Row returns the current view, Err reports what stopped a
// prematurely ended enumeration.
type RowCursor struct {
	window Window
	table  string
	max    int // inclusive upper bound, read exactly once
	next   int
	row    RowView
	err    error
	done   bool
}

// Next advances to the next logical row, re-resolving the table by name
// first: scrolling, or navigating to another page and back, all reset the
// previous table reference.
func (c *RowCursor) Next() bool {
	if c.done || c.err != nil || c.next > c.max {
		return false
	}

	table, err := Find[TableControl](c.window, c.table, KindTable)
	if err != nil {
		c.err = err
		return false
	}
	if err := table.ScrollTo(c.next); err != nil {
		c.err = err
		return false
	}
	row, err := table.VisibleRow()
	if err != nil {
		c.err = err
		return false
	}

	c.row = RowView{cursor: c, row: row}
	c.next++
	return true
}

// Row returns the view of the row Next advanced to. Valid until the next
// call to Next.
func (c *RowCursor) Row() RowView { return c.row }

// Err returns the first error that stopped the enumeration, nil after a
// clean end.
func (c *RowCursor) Err() error { return c.err }

// RowView exposes the cells of one materialized row by column index, in
// the two text flavors the host distinguishes.
type RowView struct {
	cursor *RowCursor
	row    TableRow
}

// Text reads the plain-text cell at the given column.
func (v RowView) Text(column int) (string, error) { return v.row.Text(column) }

// CText reads the code-text cell at the given column.
func (v RowView) CText(column int) (string, error) { return v.row.CText(column) }

// InspectDetail marks the row selected and drills into its detail screen.
// The window it returns is the detail view; the enumeration this view came
// from is invalidated and will yield no further rows.
func (v RowView) InspectDetail() (Window, error) {
	v.cursor.done = true
	if err := v.row.Select(); err != nil {
		return nil, err
	}
	if err := v.cursor.window.SendVKey(VKeyChoose); err != nil {
		return nil, err
	}
	return v.cursor.window, nil
}
