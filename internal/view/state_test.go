package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateDefaults(t *testing.T) {
	st := NewState()

	assert.Zero(t, st.SelectionCount())
	assert.Empty(t, st.Filter())

	// Every registry column has an explicit default; non-hideable columns
	// are always visible regardless of their default.
	for _, c := range Columns {
		if !c.Hideable {
			assert.True(t, st.ColumnVisible(c.Key), "non-hideable column %q must be visible", c.Key)
		} else {
			assert.Equal(t, c.Visible, st.ColumnVisible(c.Key), "column %q default", c.Key)
		}
	}

	assert.False(t, st.ColumnVisible("no-such-column"))
}

func TestStateSelection(t *testing.T) {
	st := NewState()

	st.ToggleSelect(2)
	st.ToggleSelect(0)
	assert.True(t, st.IsSelected(0))
	assert.True(t, st.IsSelected(2))
	assert.False(t, st.IsSelected(1))
	assert.Equal(t, []int{0, 2}, st.SelectedPositions())

	st.ToggleSelect(2)
	assert.False(t, st.IsSelected(2))

	st.ToggleSelect(-1)
	assert.Equal(t, 1, st.SelectionCount())

	st.SelectAll(4)
	assert.Equal(t, 4, st.SelectionCount())

	st.ClearSelection()
	assert.Zero(t, st.SelectionCount())
}

func TestStateToggleColumn(t *testing.T) {
	st := NewState()

	st.ToggleColumn("ssid")
	assert.False(t, st.ColumnVisible("ssid"))
	st.ToggleColumn("ssid")
	assert.True(t, st.ColumnVisible("ssid"))

	// The AP column is not hideable.
	st.ToggleColumn("ap")
	assert.True(t, st.ColumnVisible("ap"))

	// Unknown keys never become visible.
	st.ToggleColumn("bogus")
	assert.False(t, st.ColumnVisible("bogus"))
}
