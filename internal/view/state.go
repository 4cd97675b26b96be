package view

import "sort"

// State holds the transient view state layered over the immutable survey
// data: the selection set, per-column visibility, and the free-text filter.
// It is created with static defaults, mutated only through the methods
// below, and never persisted.
//
// Selection is keyed by row position in the currently ordered, filtered
// sequence, not by record identifier. A row-order change (re-sort,
// re-filter) therefore shifts what the selection refers to. This mirrors
// the original design; callers that need drift-free selection should clear
// it when the order changes.
type State struct {
	selected map[int]struct{}
	visible  map[string]bool
	filter   string
}

// NewState creates view state with the registry's default column
// visibility, an empty selection, and no filter.
func NewState() *State {
	visible := make(map[string]bool, len(Columns))
	for _, c := range Columns {
		visible[c.Key] = c.Visible || !c.Hideable
	}
	return &State{
		selected: make(map[int]struct{}),
		visible:  visible,
	}
}

// ToggleSelect flips the selection of the row at the given position.
func (s *State) ToggleSelect(pos int) {
	if pos < 0 {
		return
	}
	if _, ok := s.selected[pos]; ok {
		delete(s.selected, pos)
		return
	}
	s.selected[pos] = struct{}{}
}

// IsSelected reports whether the row at the given position is selected.
func (s *State) IsSelected(pos int) bool {
	_, ok := s.selected[pos]
	return ok
}

// SelectAll selects every position in [0, n).
func (s *State) SelectAll(n int) {
	s.selected = make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		s.selected[i] = struct{}{}
	}
}

// ClearSelection empties the selection set.
func (s *State) ClearSelection() {
	s.selected = make(map[int]struct{})
}

// SelectionCount returns the number of selected positions.
func (s *State) SelectionCount() int {
	return len(s.selected)
}

// SelectedPositions returns the selected positions in ascending order.
func (s *State) SelectedPositions() []int {
	positions := make([]int, 0, len(s.selected))
	for pos := range s.selected {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// SetFilter replaces the free-text filter. An empty string matches all rows.
func (s *State) SetFilter(filter string) {
	s.filter = filter
}

// Filter returns the current free-text filter.
func (s *State) Filter() string {
	return s.filter
}

// ColumnVisible reports whether the column with the given key is visible.
// Unknown keys are not visible.
func (s *State) ColumnVisible(key string) bool {
	return s.visible[key]
}

// ToggleColumn flips the visibility of a column. Unknown and non-hideable
// columns are left unchanged.
func (s *State) ToggleColumn(key string) {
	c := ColumnByKey(key)
	if c == nil || !c.Hideable {
		return
	}
	s.visible[key] = !s.visible[key]
}
