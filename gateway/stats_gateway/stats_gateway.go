package stats_gateway

import (
	"context"
	"errors"

	"readlog/driver/readlog_db"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// StatsGateway reads and repairs the daily rollup through the repository.
type StatsGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewStatsGateway(repo *readlog_db.ReadlogDBRepository) *StatsGateway {
	return &StatsGateway{repo: repo}
}

func (g *StatsGateway) TotalCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if g.repo == nil {
		return 0, errors.New("database connection not available")
	}
	total, err := g.repo.SumBlogCountTotal(ctx, userID)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to read total count", "error", err)
		return 0, errors.New("failed to read statistics")
	}
	return total, nil
}

func (g *StatsGateway) CountSince(ctx context.Context, userID uuid.UUID, since string) (int, error) {
	if g.repo == nil {
		return 0, errors.New("database connection not available")
	}
	total, err := g.repo.SumBlogCountSince(ctx, userID, since)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to read count since boundary", "error", err, "since", since)
		return 0, errors.New("failed to read statistics")
	}
	return total, nil
}

func (g *StatsGateway) BookmarkCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if g.repo == nil {
		return 0, errors.New("database connection not available")
	}
	total, err := g.repo.CountBookmarks(ctx, userID)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to count bookmarks", "error", err)
		return 0, errors.New("failed to read statistics")
	}
	return total, nil
}

func (g *StatsGateway) DailyCounts(ctx context.Context, userID uuid.UUID, from, to string) (map[string]int, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}
	counts, err := g.repo.FetchDailyCounts(ctx, userID, from, to)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to read daily counts", "error", err, "from", from, "to", to)
		return nil, errors.New("failed to read statistics")
	}
	return counts, nil
}

func (g *StatsGateway) RebuildRollup(ctx context.Context, userID uuid.UUID) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}
	if err := g.repo.RebuildDailyStats(ctx, userID); err != nil {
		logger.SafeErrorContext(ctx, "failed to rebuild rollup", "error", err)
		return errors.New("failed to rebuild statistics")
	}
	return nil
}
