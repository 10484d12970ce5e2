// Package records persists classified reports and serves the top-scoring ones.
package records

import "context"

// System defines the public contract for record operations.
type System interface {
	Handler() *Handler

	// Insert stores rec and returns its assigned id. Failures wrap ErrStore.
	Insert(ctx context.Context, rec NewRecord) (int64, error)
	// Top returns up to n records ordered by score descending.
	Top(ctx context.Context, n int) ([]Record, error)
}
