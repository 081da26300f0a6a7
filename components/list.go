package components

import (
	"fmt"

	humanize "github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Item is anything a FilterList can browse: it just needs a string to
// match filter terms against.
type Item interface {
	FilterValue() string
}

// Rank records which of an Item's source positions matched a filter
// term, for highlighting.
type Rank struct {
	Index          int
	MatchedIndexes []int
}

// FilterList holds an ordered item set, a cursor, and an optional active
// filter term; View renders a plain numbered list, leaving styling to
// the caller via the style package.
type FilterList struct {
	items    []Item
	filtered []Rank
	term     string
	cursor   int
}

// NewFilterList builds a FilterList over items, unfiltered, cursor at 0.
func NewFilterList(items []Item) FilterList {
	l := FilterList{items: items}
	l.resetFilter()
	return l
}

// SetItems replaces the item set, re-applying the current filter term if
// any, and resets the cursor to the top.
func (l *FilterList) SetItems(items []Item) {
	l.items = items
	l.Filter(l.term)
}

// Items returns every item currently visible (post-filter).
func (l *FilterList) Items() []Item {
	return lo.Map(l.filtered, func(r Rank, _ int) Item { return l.items[r.Index] })
}

// Len returns how many items are currently visible.
func (l *FilterList) Len() int { return len(l.filtered) }

// Selected returns the item under the cursor, or false if the list is
// empty.
func (l *FilterList) Selected() (Item, bool) {
	if l.cursor < 0 || l.cursor >= len(l.filtered) {
		var zero Item
		return zero, false
	}
	return l.items[l.filtered[l.cursor].Index], true
}

// SelectedRank returns the match-index metadata for the selected item,
// for highlighting which runes matched the filter term.
func (l *FilterList) SelectedRank() (Rank, bool) {
	if l.cursor < 0 || l.cursor >= len(l.filtered) {
		return Rank{}, false
	}
	return l.filtered[l.cursor], true
}

// CursorUp moves the cursor up one row, clamped at the top.
func (l *FilterList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// CursorDown moves the cursor down one row, clamped at the bottom.
func (l *FilterList) CursorDown() {
	if l.cursor < len(l.filtered)-1 {
		l.cursor++
	}
}

// Cursor reports the current cursor row.
func (l *FilterList) Cursor() int { return l.cursor }

// Filter re-ranks items against term using fuzzy matching, sorted by
// match quality, and resets the cursor to the top.
func (l *FilterList) Filter(term string) {
	l.term = term
	if term == "" {
		l.resetFilter()
		return
	}
	targets := lo.Map(l.items, func(it Item, _ int) string { return it.FilterValue() })
	matches := fuzzy.Find(term, targets)
	l.filtered = make([]Rank, len(matches))
	for i, m := range matches {
		l.filtered[i] = Rank{Index: m.Index, MatchedIndexes: m.MatchedIndexes}
	}
	// fuzzy.Find already orders by its own score; break ties so a match
	// starting earlier in the string sorts first.
	for start := 0; start < len(matches); {
		end := start + 1
		for end < len(matches) && matches[end].Score == matches[start].Score {
			end++
		}
		slices.SortStableFunc(l.filtered[start:end], func(a, b Rank) bool {
			return firstMatch(a) < firstMatch(b)
		})
		start = end
	}
	l.cursor = 0
}

func firstMatch(r Rank) int {
	if len(r.MatchedIndexes) == 0 {
		return -1
	}
	return r.MatchedIndexes[0]
}

func (l *FilterList) resetFilter() {
	l.filtered = make([]Rank, len(l.items))
	for i := range l.items {
		l.filtered[i] = Rank{Index: i}
	}
	l.cursor = 0
}

// View renders a plain, numbered list with the cursor row marked, and a
// humanized item-count footer.
func (l *FilterList) View() string {
	var out string
	for i, r := range l.filtered {
		marker := "  "
		if i == l.cursor {
			marker = "> "
		}
		out += fmt.Sprintf("%s%s\n", marker, l.items[r.Index].FilterValue())
	}
	out += fmt.Sprintf("\n%s shown\n", humanize.Comma(int64(len(l.filtered))))
	return out
}
