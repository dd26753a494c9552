package applications

import (
	"context"
	"errors"
)

// ErrNotFound marks a lookup for an application that does not exist.
var ErrNotFound = errors.New("application not found")

// Repo persists application records. Implementations exist for DynamoDB,
// Postgres and an in-memory map used in dev and tests.
type Repo interface {
	Save(ctx context.Context, app Application) error
	Get(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, limit int) ([]Application, error)
}
