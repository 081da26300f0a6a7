package components

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Table renders a fixed header and rows of string cells to a bordered
// grid, the way a CLI report table looks, rather than a scrollable
// interactive grid.
type Table struct {
	Header []string
	Rows   [][]string
	cursor int
}

// NewTable builds a Table with the given header.
func NewTable(header []string) Table {
	return Table{Header: header}
}

// SetRows replaces the table's rows and clamps the cursor into range.
func (t *Table) SetRows(rows [][]string) {
	t.Rows = rows
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// CursorUp moves the selected row up one, clamped at the top.
func (t *Table) CursorUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// CursorDown moves the selected row down one, clamped at the bottom.
func (t *Table) CursorDown() {
	if t.cursor < len(t.Rows)-1 {
		t.cursor++
	}
}

// Cursor reports the selected row index.
func (t *Table) Cursor() int { return t.cursor }

// SelectedRow returns the row under the cursor, or nil if there are no
// rows.
func (t *Table) SelectedRow() []string {
	if t.cursor < 0 || t.cursor >= len(t.Rows) {
		return nil
	}
	return t.Rows[t.cursor]
}

// View renders the table as a bordered grid, with the selected row
// marked in its first cell.
func (t *Table) View() string {
	var b strings.Builder
	w := tablewriter.NewWriter(&b)
	w.SetHeader(t.Header)
	w.SetAutoWrapText(false)
	for i, row := range t.Rows {
		marked := make([]string, len(row))
		copy(marked, row)
		if i == t.cursor && len(marked) > 0 {
			marked[0] = "> " + marked[0]
		}
		w.Append(marked)
	}
	w.Render()
	return b.String()
}
