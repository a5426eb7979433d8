package stats_port

//go:generate mockgen -source=stats_port.go -destination=../../mocks/mock_stats_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
)

// StatsPort reads the daily rollup. Date strings are "YYYY-MM-DD" and all
// bounds are inclusive.
type StatsPort interface {
	TotalCount(ctx context.Context, userID uuid.UUID) (int, error)
	CountSince(ctx context.Context, userID uuid.UUID, since string) (int, error)
	BookmarkCount(ctx context.Context, userID uuid.UUID) (int, error)
	DailyCounts(ctx context.Context, userID uuid.UUID, from, to string) (map[string]int, error)
	RebuildRollup(ctx context.Context, userID uuid.UUID) error
}
