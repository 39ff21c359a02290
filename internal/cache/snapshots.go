// internal/cache/snapshots.go
package cache

import (
	"context"

	"womenrisehub/internal/models"
)

// Snapshots is the persistent cache for the project collection: one
// serialized snapshot under one key, overwritten wholesale on every
// mutation. Load returns (nil, nil) when no snapshot exists.
type Snapshots interface {
	Load(ctx context.Context) ([]models.Project, error)
	Store(ctx context.Context, projects []models.Project) error
	Clear(ctx context.Context) error
}
