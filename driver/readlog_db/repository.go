package readlog_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository uses. Declared as an
// interface so driver tests can substitute a pgxmock pool.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// ReadlogDBRepository owns every SQL query in the service. All user-facing
// queries filter on user_id; the id always comes from the authenticated
// context, never from the request body.
type ReadlogDBRepository struct {
	pool DBPool
}

func NewReadlogDBRepository(pool DBPool) *ReadlogDBRepository {
	return &ReadlogDBRepository{pool: pool}
}
