package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

type recordingMutator struct {
	deleted   [][]string
	updates   []recordedUpdate
	deleteErr error
	updateErr error
}

type recordedUpdate struct {
	id    string
	patch survey.PointPatch
}

func (m *recordingMutator) DeletePoints(_ context.Context, ids []string) error {
	m.deleted = append(m.deleted, ids)
	return m.deleteErr
}

func (m *recordingMutator) UpdatePoint(_ context.Context, id string, patch survey.PointPatch) error {
	m.updates = append(m.updates, recordedUpdate{id: id, patch: patch})
	return m.updateErr
}

func actionFixture(t *testing.T, disabled ...bool) (*Table, *recordingMutator, *Coordinator) {
	t.Helper()

	points := make([]survey.Point, len(disabled))
	for i, d := range disabled {
		points[i] = testPoint(string(rune('a'+i)), "AA:BB", -60, d)
	}

	tbl := NewTable(10, nil)
	tbl.SetData(points, nil)

	m := &recordingMutator{}
	return tbl, m, NewCoordinator(tbl, m)
}

func TestDeleteSelectedConfirmed(t *testing.T) {
	tbl, m, c := actionFixture(t, false, false, false)
	tbl.ToggleSelect(0)
	tbl.ToggleSelect(2)

	var prompt string
	n, err := c.DeleteSelected(context.Background(), func(p string) bool {
		prompt = p
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, prompt, "2")

	// Exactly one batch call carrying both identifiers.
	require.Len(t, m.deleted, 1)
	assert.Equal(t, []string{"a", "c"}, m.deleted[0])

	// Selection is cleared once the delete has been issued.
	assert.Zero(t, tbl.State().SelectionCount())
}

func TestDeleteSelectedCancelled(t *testing.T) {
	tbl, m, c := actionFixture(t, false, false)
	tbl.ToggleSelect(0)

	// A declining gate still receives the prompt; the host UI relies on
	// that to show the confirmation modal.
	var prompt string
	n, err := c.DeleteSelected(context.Background(), func(p string) bool {
		prompt = p
		return false
	})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, prompt, "1")
	assert.Empty(t, m.deleted)
	assert.Equal(t, 1, tbl.State().SelectionCount())
}

func TestDeleteSelectedEmptySelection(t *testing.T) {
	_, m, c := actionFixture(t, false, false)

	n, err := c.DeleteSelected(context.Background(), func(string) bool {
		t.Fatal("confirmation gate must not run for an empty selection")
		return true
	})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, m.deleted)
}

func TestDeleteSelectedPropagatesError(t *testing.T) {
	tbl, m, c := actionFixture(t, false)
	m.deleteErr = errors.New("store offline")
	tbl.ToggleSelect(0)

	_, err := c.DeleteSelected(context.Background(), func(string) bool { return true })
	require.Error(t, err)

	// No rollback semantics, but the selection is only cleared on success.
	assert.Equal(t, 1, tbl.State().SelectionCount())
}

func TestToggleDisableAllEnabled(t *testing.T) {
	tbl, m, c := actionFixture(t, false, false)
	tbl.SelectAll()

	n, target, err := c.ToggleDisableSelected(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, target)

	require.Len(t, m.updates, 2)
	for _, u := range m.updates {
		require.NotNil(t, u.patch.Disabled)
		assert.True(t, *u.patch.Disabled)
	}
}

func TestToggleDisableMixedSelectionDisablesAll(t *testing.T) {
	tbl, m, c := actionFixture(t, true, false)
	tbl.SelectAll()

	_, target, err := c.ToggleDisableSelected(context.Background())
	require.NoError(t, err)
	assert.True(t, target, "a mixed selection is not uniformly disabled, so it gets disabled")

	require.Len(t, m.updates, 2)
	for _, u := range m.updates {
		require.NotNil(t, u.patch.Disabled)
		assert.True(t, *u.patch.Disabled)
	}
}

func TestToggleDisableUniformlyDisabledReenables(t *testing.T) {
	tbl, m, c := actionFixture(t, true, true)
	tbl.SelectAll()

	_, target, err := c.ToggleDisableSelected(context.Background())
	require.NoError(t, err)
	assert.False(t, target)

	require.Len(t, m.updates, 2)
	for _, u := range m.updates {
		require.NotNil(t, u.patch.Disabled)
		assert.False(t, *u.patch.Disabled)
	}
}

func TestToggleDisableEmptySelection(t *testing.T) {
	_, m, c := actionFixture(t, false, true)

	n, _, err := c.ToggleDisableSelected(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, m.updates)
}

func TestToggleDisableContinuesPastErrors(t *testing.T) {
	tbl, m, c := actionFixture(t, false, false, false)
	m.updateErr = errors.New("store offline")
	tbl.SelectAll()

	n, _, err := c.ToggleDisableSelected(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, m.updates, 3, "every point must still be attempted")
}
