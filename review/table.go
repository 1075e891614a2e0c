package review

import (
	"fmt"
	"sort"
	"strings"
)

// NoResults is rendered as a single full-width row when the visible set is empty.
const NoResults = "No results."

type Column string

const (
	ColumnName   Column = "name"
	ColumnTopic  Column = "topic"
	ColumnDate   Column = "date"
	ColumnType   Column = "type"
	ColumnStatus Column = "status"
	ColumnRating Column = "rating"
)

// Callbacks are supplied by the page that owns the table. The table applies
// every status/rating mutation to its local rows first and then invokes the
// matching callback exactly once; it never calls storage itself and never
// catches what the callbacks do.
type Callbacks struct {
	OnStatusChange func(id, status string)
	OnRatingChange func(id string, rating int)
	OnRowOpen      func(entry Entry)
}

// SelectionState lets a parent own the selection instead of the table. When
// present it is the single source of truth: reads go through Get, every
// change the table makes goes through Set.
type SelectionState struct {
	Get func() map[string]bool
	Set func(map[string]bool)
}

type Table struct {
	entries      []Entry
	sortColumn   Column
	sortDesc     bool
	typeFilter   EntryType // "" = all
	statusFilter string    // "" = all
	selection    map[string]bool
	external     *SelectionState
	callbacks    Callbacks
}

type Option func(*Table)

// WithSelectionState injects parent-owned selection. Chosen at construction
// time so parent and table never reconcile two copies of the same state.
func WithSelectionState(s SelectionState) Option {
	return func(t *Table) {
		t.external = &s
	}
}

func NewTable(entries []Entry, cb Callbacks, opts ...Option) *Table {
	t := &Table{
		entries:   append([]Entry(nil), entries...),
		selection: make(map[string]bool),
		callbacks: cb,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetEntries replaces the row set, e.g. after a reload. Selection entries for
// rows that no longer exist are dropped.
func (t *Table) SetEntries(entries []Entry) {
	t.entries = append([]Entry(nil), entries...)

	keep := make(map[string]bool, len(entries))
	for _, e := range entries {
		keep[e.ID] = true
	}
	sel := t.selectionMap()
	next := make(map[string]bool, len(sel))
	for id := range sel {
		if keep[id] {
			next[id] = true
		}
	}
	t.setSelection(next)
}

// Entries returns the full row set in its current manual order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Rows returns the visible rows: filters applied, then the active sort. The
// sort is stable and operates on the filtered set only.
func (t *Table) Rows() []Entry {
	rows := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if t.typeFilter != "" && e.Type != t.typeFilter {
			continue
		}
		if t.statusFilter != "" && e.Status != t.statusFilter {
			continue
		}
		rows = append(rows, e)
	}

	if t.sortColumn != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			less := lessByColumn(rows[i], rows[j], t.sortColumn)
			if t.sortDesc {
				return lessByColumn(rows[j], rows[i], t.sortColumn)
			}
			return less
		})
	}
	return rows
}

func lessByColumn(a, b Entry, col Column) bool {
	switch col {
	case ColumnName:
		return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
	case ColumnTopic:
		return strings.ToLower(a.Topic) < strings.ToLower(b.Topic)
	case ColumnDate:
		return a.SubmissionDate.Before(b.SubmissionDate)
	case ColumnType:
		return a.Type < b.Type
	case ColumnStatus:
		return a.Status < b.Status
	case ColumnRating:
		return a.Rating < b.Rating
	}
	return false
}

// ToggleSort activates ascending sort on the column, or flips the direction
// when the column is already active. Only one sort column is active at a time.
func (t *Table) ToggleSort(col Column) {
	if t.sortColumn == col {
		t.sortDesc = !t.sortDesc
		return
	}
	t.sortColumn = col
	t.sortDesc = false
}

func (t *Table) ClearSort() {
	t.sortColumn = ""
	t.sortDesc = false
}

func (t *Table) SortState() (Column, bool) {
	return t.sortColumn, t.sortDesc
}

func (t *Table) SetTypeFilter(ft EntryType) {
	t.typeFilter = ft
}

func (t *Table) TypeFilter() EntryType {
	return t.typeFilter
}

func (t *Table) SetStatusFilter(status string) {
	t.statusFilter = status
}

func (t *Table) selectionMap() map[string]bool {
	if t.external != nil {
		if sel := t.external.Get(); sel != nil {
			return sel
		}
		return map[string]bool{}
	}
	return t.selection
}

func (t *Table) setSelection(sel map[string]bool) {
	if t.external != nil {
		t.external.Set(sel)
		return
	}
	t.selection = sel
}

func (t *Table) IsSelected(id string) bool {
	return t.selectionMap()[id]
}

func (t *Table) ToggleRow(id string) {
	next := copySelection(t.selectionMap())
	if next[id] {
		delete(next, id)
	} else {
		next[id] = true
	}
	t.setSelection(next)
}

// ToggleAll selects every visible row, or deselects exactly those rows when
// all of them are already selected. Rows hidden by the active filter are
// never touched.
func (t *Table) ToggleAll() {
	rows := t.Rows()
	sel := t.selectionMap()

	all := len(rows) > 0
	for _, r := range rows {
		if !sel[r.ID] {
			all = false
			break
		}
	}

	next := copySelection(sel)
	for _, r := range rows {
		if all {
			delete(next, r.ID)
		} else {
			next[r.ID] = true
		}
	}
	t.setSelection(next)
}

func (t *Table) SelectedIDs() []string {
	sel := t.selectionMap()
	ids := make([]string, 0, len(sel))
	for id, on := range sel {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func copySelection(sel map[string]bool) map[string]bool {
	next := make(map[string]bool, len(sel))
	for id, on := range sel {
		if on {
			next[id] = true
		}
	}
	return next
}

// Move splices the row at index from out of the manual order and reinserts it
// at index to, preserving every other relative ordering. Indexes address the
// full entry list, not the filtered view.
func (t *Table) Move(from, to int) error {
	if from < 0 || from >= len(t.entries) || to < 0 || to >= len(t.entries) {
		return fmt.Errorf("move out of range: %d -> %d with %d rows", from, to, len(t.entries))
	}
	if from == to {
		return nil
	}
	moved := t.entries[from]
	rest := append(append([]Entry(nil), t.entries[:from]...), t.entries[from+1:]...)
	t.entries = append(append(append([]Entry(nil), rest[:to]...), moved), rest[to:]...)
	return nil
}

// MoveTo drags the row with id onto the position currently held by targetID.
func (t *Table) MoveTo(id, targetID string) error {
	from := t.indexOf(id)
	to := t.indexOf(targetID)
	if from < 0 || to < 0 {
		return fmt.Errorf("unknown row id in move: %q -> %q", id, targetID)
	}
	return t.Move(from, to)
}

func (t *Table) indexOf(id string) int {
	for i, e := range t.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// SetStatus applies the new status to the local row and invokes the status
// callback once. The apply is optimistic: a failing persistence call behind
// the callback is the caller's to surface, the row keeps the new value.
func (t *Table) SetStatus(id, status string) error {
	i := t.indexOf(id)
	if i < 0 {
		return fmt.Errorf("unknown row id: %q", id)
	}
	t.entries[i].Status = status
	if t.callbacks.OnStatusChange != nil {
		t.callbacks.OnStatusChange(id, status)
	}
	return nil
}

// SetRating applies a committed star value. Out-of-range values are rejected,
// never clamped or rounded.
func (t *Table) SetRating(id string, rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating %d out of range [0,5]", rating)
	}
	i := t.indexOf(id)
	if i < 0 {
		return fmt.Errorf("unknown row id: %q", id)
	}
	t.entries[i].Rating = rating
	if t.callbacks.OnRatingChange != nil {
		t.callbacks.OnRatingChange(id, rating)
	}
	return nil
}

// OpenRow fires the row-detail callback for a click anywhere on the row
// outside its interactive controls.
func (t *Table) OpenRow(id string) error {
	i := t.indexOf(id)
	if i < 0 {
		return fmt.Errorf("unknown row id: %q", id)
	}
	if t.callbacks.OnRowOpen != nil {
		t.callbacks.OnRowOpen(t.entries[i])
	}
	return nil
}
