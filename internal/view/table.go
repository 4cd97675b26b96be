package view

import "github.com/doroshv/wifi-heatmapper/internal/survey"

// Table ties the flattened rows, the view state, and the sort/page
// parameters together and exposes the user-triggerable actions of the
// table view. All methods are synchronous; every state change is picked up
// by the next Projection call, which recomputes the derived view from
// scratch.
type Table struct {
	rows     []Row
	state    *State
	sort     Sort
	page     int
	pageSize int
	quality  QualityFunc
}

// NewTable creates an empty table with the given page size and
// signal-quality collaborator. A nil quality function falls back to
// survey.SignalQuality.
func NewTable(pageSize int, quality QualityFunc) *Table {
	if quality == nil {
		quality = survey.SignalQuality
	}
	return &Table{
		state:    NewState(),
		pageSize: pageSize,
		quality:  quality,
	}
}

// SetData replaces the underlying records and mapping table and rebuilds
// the flattened rows. Selection, filter, sort, and page survive a data
// reload; selection is positional, so callers replacing the data with a
// differently ordered set should clear it first.
func (t *Table) SetData(points []survey.Point, mappings []survey.APMapping) {
	t.rows = Flatten(points, mappings, t.quality)
}

// State returns the view state for direct inspection in the host UI.
func (t *Table) State() *State { return t.state }

// Sort returns the active sort specification.
func (t *Table) Sort() Sort { return t.sort }

// CycleSort advances the sort cycle for the given column. The selection is
// positional and is deliberately left alone: after a reorder it refers to
// whatever rows now occupy the selected positions. Keying selection by
// point ID would remove that drift; the positional scheme is kept to match
// the original behavior.
func (t *Table) CycleSort(key string) {
	t.sort.Cycle(key)
}

// SetFilter replaces the free-text filter and resets to the first page.
// Selection positions are re-evaluated against the new filtered sequence;
// positions past its end resolve to nothing.
func (t *Table) SetFilter(filter string) {
	if filter == t.state.Filter() {
		return
	}
	t.state.SetFilter(filter)
	t.page = 0
}

// ToggleColumn flips the visibility of a column.
func (t *Table) ToggleColumn(key string) {
	t.state.ToggleColumn(key)
}

// ToggleSelect flips the selection of a position in the ordered, filtered
// sequence.
func (t *Table) ToggleSelect(pos int) {
	t.state.ToggleSelect(pos)
}

// SelectAll selects every row of the ordered, filtered sequence, across
// all pages.
func (t *Table) SelectAll() {
	t.state.SelectAll(len(Order(t.rows, t.state.Filter(), t.sort)))
}

// ClearSelection empties the selection.
func (t *Table) ClearSelection() {
	t.state.ClearSelection()
}

// NextPage advances one page if one exists. The internal index is first
// synced to the clamped displayed page, so navigation stays in step after
// the row set shrinks under the current page.
func (t *Table) NextPage() {
	p := t.Projection()
	t.page = p.Page
	if p.HasNext {
		t.page++
	}
}

// PrevPage goes back one page if one exists.
func (t *Table) PrevPage() {
	p := t.Projection()
	t.page = p.Page
	if p.HasPrev {
		t.page--
	}
}

// Projection derives the current rendered view.
func (t *Table) Projection() Projection {
	return Query(t.rows, t.state, t.sort, t.page, t.pageSize)
}

// SelectedRows resolves the current selection to rows, in sequence order.
// Positions beyond the current filtered sequence are skipped.
func (t *Table) SelectedRows() []*Row {
	order := Order(t.rows, t.state.Filter(), t.sort)
	var rows []*Row
	for _, pos := range t.state.SelectedPositions() {
		if pos < len(order) {
			rows = append(rows, &t.rows[order[pos]])
		}
	}
	return rows
}

// SelectedIDs resolves the current selection to the identifiers of the
// underlying survey points, in sequence order.
func (t *Table) SelectedIDs() []string {
	rows := t.SelectedRows()
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}
