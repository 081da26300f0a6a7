package components_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breezetui/breeze/components"
)

type stringItem string

func (s stringItem) FilterValue() string { return string(s) }

func items(ss ...string) []components.Item {
	out := make([]components.Item, len(ss))
	for i, s := range ss {
		out[i] = stringItem(s)
	}
	return out
}

func TestFilterListUnfilteredShowsEverything(t *testing.T) {
	l := components.NewFilterList(items("apple", "banana", "cherry"))
	assert.Equal(t, 3, l.Len())
	sel, ok := l.Selected()
	assert.True(t, ok)
	assert.Equal(t, "apple", sel.FilterValue())
}

func TestFilterListNarrowsResults(t *testing.T) {
	l := components.NewFilterList(items("apple", "banana", "grape"))
	l.Filter("ap")
	assert.LessOrEqual(t, l.Len(), 2)
	for _, it := range l.Items() {
		assert.True(t, strings.Contains(it.FilterValue(), "a"))
	}
}

func TestFilterListCursorClampsAtBounds(t *testing.T) {
	l := components.NewFilterList(items("one", "two"))
	l.CursorUp()
	assert.Equal(t, 0, l.Cursor())

	l.CursorDown()
	l.CursorDown()
	l.CursorDown()
	assert.Equal(t, 1, l.Cursor())
}

func TestFilterListClearingFilterRestoresAll(t *testing.T) {
	l := components.NewFilterList(items("apple", "banana", "cherry"))
	l.Filter("ba")
	l.Filter("")
	assert.Equal(t, 3, l.Len())
}

func TestFilterListViewShowsCount(t *testing.T) {
	l := components.NewFilterList(items("a", "b"))
	view := l.View()
	assert.Contains(t, view, "2 shown")
}
