package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

// Mutator is the external collaborator the bulk actions call into. The
// storage layer implements it; tests substitute a recorder. Calls are
// synchronous and carry no retry or rollback semantics here: a returned
// error is surfaced to the caller and the view state is not rolled back.
type Mutator interface {
	// DeletePoints removes the given survey points in one batch request.
	DeletePoints(ctx context.Context, ids []string) error

	// UpdatePoint applies a partial update to a single survey point.
	UpdatePoint(ctx context.Context, id string, patch survey.PointPatch) error
}

// ConfirmFunc is the confirmation gate for destructive bulk actions. It
// receives a human-readable prompt and reports whether the user approved.
type ConfirmFunc func(prompt string) bool

// Coordinator translates the current selection into calls against the
// external mutation collaborator. Both actions are no-ops on an empty
// selection; the host UI is expected to disable their affordances in that
// case as well.
type Coordinator struct {
	table   *Table
	mutator Mutator
}

// NewCoordinator creates a coordinator operating on the given table.
func NewCoordinator(table *Table, mutator Mutator) *Coordinator {
	return &Coordinator{table: table, mutator: mutator}
}

// DeleteSelected resolves the selection to point identifiers and issues a
// single batch delete, but only after the confirmation gate approves.
// It returns the number of points deleted; zero when the selection was
// empty or the gate declined. The selection is cleared optimistically once
// the delete has been issued.
func (c *Coordinator) DeleteSelected(ctx context.Context, confirm ConfirmFunc) (int, error) {
	ids := c.table.SelectedIDs()
	if len(ids) == 0 {
		return 0, nil
	}

	if !confirm(fmt.Sprintf("Delete %d selected survey points?", len(ids))) {
		return 0, nil
	}

	if err := c.mutator.DeletePoints(ctx, ids); err != nil {
		return 0, fmt.Errorf("deleting selected points: %w", err)
	}

	c.table.ClearSelection()
	return len(ids), nil
}

// ToggleDisableSelected flips the disabled flag of the selected points as
// one uniform action. The target state is derived from the selection: only
// a uniformly disabled selection is re-enabled; a mixed or all-enabled
// selection is disabled. Each point receives its own update call. Errors
// do not stop the loop; they are joined and returned after every point has
// been attempted.
func (c *Coordinator) ToggleDisableSelected(ctx context.Context) (int, bool, error) {
	rows := c.table.SelectedRows()
	if len(rows) == 0 {
		return 0, false, nil
	}

	allDisabled := true
	for _, r := range rows {
		if !r.Disabled {
			allDisabled = false
			break
		}
	}
	target := !allDisabled

	var errs []error
	for _, r := range rows {
		disabled := target
		if err := c.mutator.UpdatePoint(ctx, r.ID, survey.PointPatch{Disabled: &disabled}); err != nil {
			errs = append(errs, fmt.Errorf("updating point %s: %w", r.ID, err))
		}
	}
	return len(rows), target, errors.Join(errs...)
}
