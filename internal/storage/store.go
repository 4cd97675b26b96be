package storage

import (
	"context"

	_ "github.com/mattn/go-sqlite3"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

// Store provides an interface for managing survey data storage operations.
// It holds survey points and access point name mappings. The table view
// treats the store as an external collaborator: it reads snapshots of both
// tables and issues deletions and partial updates against them.
type Store interface {
	// Points returns all survey points ordered by capture time ascending.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//
	// Returns:
	//   - points: Slice of survey points
	//   - error: If retrieval fails or context is cancelled
	Points(ctx context.Context) (points []survey.Point, err error)

	// Mappings returns all access point name mappings in insertion order.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//
	// Returns:
	//   - mappings: Slice of mapping rows
	//   - error: If retrieval fails or context is cancelled
	Mappings(ctx context.Context) (mappings []survey.APMapping, err error)

	// InsertPoint stores a new survey point. A point without an ID is
	// assigned one; the effective ID is returned.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//   - p: The survey point to store
	//
	// Returns:
	//   - id: Identifier of the stored point
	//   - error: If storage fails or context is cancelled
	InsertPoint(ctx context.Context, p survey.Point) (id string, err error)

	// SaveMapping stores an access point name mapping. Address uniqueness
	// is not enforced; duplicate addresses are stored as supplied.
	SaveMapping(ctx context.Context, m survey.APMapping) error

	// DeletePoints removes the given survey points in a single atomic
	// batch. Unknown identifiers are ignored.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//   - ids: Identifiers of the points to remove
	//
	// Returns:
	//   - error: If deletion fails or context is cancelled
	DeletePoints(ctx context.Context, ids []string) error

	// UpdatePoint applies a partial update to a single survey point.
	// Nil patch fields are left unchanged.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//   - id: Identifier of the point to update
	//   - patch: Fields to change
	//
	// Returns:
	//   - error: If the update fails, the point does not exist, or the
	//     context is cancelled
	UpdatePoint(ctx context.Context, id string, patch survey.PointPatch) error

	// Close releases all database connections and resources.
	// After Close is called, the store instance cannot be reused.
	// It is safe to call Close multiple times.
	Close() error
}
