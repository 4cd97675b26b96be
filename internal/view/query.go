package view

import (
	"sort"
	"strings"
)

// Direction is the sort direction of the active sort column.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

// Sort is the sort specification: at most one active column. The zero value
// means "no sort", which preserves filtered input order.
type Sort struct {
	Column string
	Dir    Direction
}

// Cycle advances the sort state for a column click: unsorted → ascending →
// descending → unsorted. Selecting a different column starts its cycle at
// ascending and drops the previous column entirely. Non-sortable and
// unknown columns are ignored.
func (s *Sort) Cycle(key string) {
	c := ColumnByKey(key)
	if c == nil || !c.Sortable {
		return
	}

	if s.Column != key {
		s.Column = key
		s.Dir = Ascending
		return
	}

	switch s.Dir {
	case Ascending:
		s.Dir = Descending
	case Descending:
		*s = Sort{}
	default:
		s.Dir = Ascending
	}
}

// matchesFilter reports whether any of the row's column values, rendered as
// display text, contains the filter substring. Matching is case-insensitive
// and considers every column, hidden or not.
func matchesFilter(r *Row, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for i := range Columns {
		if strings.Contains(strings.ToLower(Columns[i].CellString(r)), needle) {
			return true
		}
	}
	return false
}

// Order returns indices into rows for the filtered, sorted sequence the
// view presents. With no active sort the filtered rows keep their input
// order; otherwise the sort is stable on the active column's natural value
// ordering.
func Order(rows []Row, filter string, srt Sort) []int {
	order := make([]int, 0, len(rows))
	for i := range rows {
		if matchesFilter(&rows[i], filter) {
			order = append(order, i)
		}
	}

	c := ColumnByKey(srt.Column)
	if c == nil || srt.Dir == Unsorted {
		return order
	}

	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := &rows[order[a]], &rows[order[b]]
		if srt.Dir == Descending {
			ra, rb = rb, ra
		}
		if c.Numeric {
			return c.Number(ra) < c.Number(rb)
		}
		return c.CellString(ra) < c.CellString(rb)
	})
	return order
}

// ProjectedRow is one visible row of the rendered table.
type ProjectedRow struct {
	Position int      // position in the full ordered, filtered sequence (selection key)
	ID       string   // identifier of the underlying survey point
	Cells    []string // one value per visible column
	Selected bool
	Disabled bool
}

// Projection is the read-only surface handed to the rendering layer:
// visible columns, the current page of visible rows with selection marks,
// and pagination state.
type Projection struct {
	Columns       []Column
	Rows          []ProjectedRow
	Page          int // zero-based, clamped to the filtered row count
	PageCount     int
	Total         int // all rows
	TotalFiltered int // rows passing the filter
	HasPrev       bool
	HasNext       bool
}

// Query derives the rendered view from the flattened rows and the view
// state. It is pure: repeated calls with the same inputs produce the same
// projection, and no input is mutated.
func Query(rows []Row, st *State, srt Sort, page, pageSize int) Projection {
	if pageSize <= 0 {
		pageSize = 1
	}

	order := Order(rows, st.Filter(), srt)

	pageCount := (len(order) + pageSize - 1) / pageSize
	if page >= pageCount {
		page = pageCount - 1
	}
	if page < 0 {
		page = 0
	}

	var visible []Column
	for _, c := range Columns {
		if st.ColumnVisible(c.Key) {
			visible = append(visible, c)
		}
	}

	start := page * pageSize
	end := min(start+pageSize, len(order))

	p := Projection{
		Columns:       visible,
		Page:          page,
		PageCount:     pageCount,
		Total:         len(rows),
		TotalFiltered: len(order),
		HasPrev:       page > 0,
		HasNext:       end < len(order),
	}

	for pos := start; pos < end; pos++ {
		r := &rows[order[pos]]
		cells := make([]string, len(visible))
		for i := range visible {
			cells[i] = visible[i].CellString(r)
		}
		p.Rows = append(p.Rows, ProjectedRow{
			Position: pos,
			ID:       r.ID,
			Cells:    cells,
			Selected: st.IsSelected(pos),
			Disabled: r.Disabled,
		})
	}
	return p
}
