package stats_usecase

import (
	"context"
	"time"

	"readlog/domain"
	"readlog/port/article_port"
	"readlog/port/stats_port"
	"readlog/utils/logger"

	"golang.org/x/sync/errgroup"
)

const recentPostsLimit = 5

// StatsUsecase assembles the dashboard headline block. Totals come from the
// daily rollup; recentPosts needs per-article detail so it reads the article
// store directly. The five reads are independent and run in parallel.
type StatsUsecase struct {
	statsGateway         stats_port.StatsPort
	recentArticleGateway article_port.FetchRecentArticlesPort
	now                  func() time.Time
}

func NewStatsUsecase(
	statsGateway stats_port.StatsPort,
	recentArticleGateway article_port.FetchRecentArticlesPort,
) *StatsUsecase {
	return &StatsUsecase{
		statsGateway:         statsGateway,
		recentArticleGateway: recentArticleGateway,
		now:                  time.Now,
	}
}

func (u *StatsUsecase) Execute(ctx context.Context, timezone string) (*domain.StatsSummary, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	loc := domain.ResolveLocation(timezone)
	now := u.now()
	monthStart := domain.MonthStartIn(now, loc)
	weekStart := domain.WeekStartIn(now, loc)

	summary := &domain.StatsSummary{RecentPosts: []domain.Article{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.Total, err = u.statsGateway.TotalCount(gctx, user.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		summary.ThisMonth, err = u.statsGateway.CountSince(gctx, user.UserID, monthStart)
		return err
	})
	g.Go(func() error {
		var err error
		summary.ThisWeek, err = u.statsGateway.CountSince(gctx, user.UserID, weekStart)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Bookmarks, err = u.statsGateway.BookmarkCount(gctx, user.UserID)
		return err
	})
	g.Go(func() error {
		recent, err := u.recentArticleGateway.Execute(gctx, user.UserID, recentPostsLimit)
		if err != nil {
			return err
		}
		if recent != nil {
			summary.RecentPosts = recent
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.SafeErrorContext(ctx, "failed to assemble stats", "error", err, "timezone", timezone)
		return nil, err
	}

	return summary, nil
}
