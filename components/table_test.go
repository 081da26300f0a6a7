package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breezetui/breeze/components"
)

func TestTableViewContainsHeaderAndRows(t *testing.T) {
	tb := components.NewTable([]string{"NAME", "AGE"})
	tb.SetRows([][]string{
		{"alice", "30"},
		{"bob", "40"},
	})

	view := tb.View()
	assert.Contains(t, view, "NAME")
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "bob")
}

func TestTableCursorMarksSelectedRow(t *testing.T) {
	tb := components.NewTable([]string{"NAME"})
	tb.SetRows([][]string{{"alice"}, {"bob"}})

	tb.CursorDown()
	assert.Equal(t, 1, tb.Cursor())
	assert.Contains(t, tb.View(), "> bob")
}

func TestTableCursorClampsOnShrink(t *testing.T) {
	tb := components.NewTable([]string{"NAME"})
	tb.SetRows([][]string{{"a"}, {"b"}, {"c"}})
	tb.CursorDown()
	tb.CursorDown()
	assert.Equal(t, 2, tb.Cursor())

	tb.SetRows([][]string{{"x"}})
	assert.Equal(t, 0, tb.Cursor())
}

func TestTableSelectedRow(t *testing.T) {
	tb := components.NewTable([]string{"NAME"})
	tb.SetRows([][]string{{"alice"}, {"bob"}})
	tb.CursorDown()
	assert.Equal(t, []string{"bob"}, tb.SelectedRow())
}
