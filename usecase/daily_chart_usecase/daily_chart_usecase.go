package daily_chart_usecase

import (
	"context"
	"math"
	"time"

	"readlog/domain"
	"readlog/port/stats_port"
	"readlog/utils/logger"
)

const chartDays = 7

// DailyChartUsecase renders the 7-day activity chart from the daily rollup.
// Days without a rollup row are zero-filled so the chart never has gaps.
type DailyChartUsecase struct {
	statsGateway stats_port.StatsPort
	now          func() time.Time
}

func NewDailyChartUsecase(statsGateway stats_port.StatsPort) *DailyChartUsecase {
	return &DailyChartUsecase{
		statsGateway: statsGateway,
		now:          time.Now,
	}
}

func (u *DailyChartUsecase) Execute(ctx context.Context, timezone string) (*domain.DailyChart, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	loc := domain.ResolveLocation(timezone)
	days := domain.LastNDaysIn(u.now(), loc, chartDays)

	windowFrom := days[0].Format(domain.DateLayout)
	windowTo := days[chartDays-1].Format(domain.DateLayout)
	priorFrom := days[0].AddDate(0, 0, -chartDays).Format(domain.DateLayout)
	priorTo := days[0].AddDate(0, 0, -1).Format(domain.DateLayout)

	counts, err := u.statsGateway.DailyCounts(ctx, user.UserID, windowFrom, windowTo)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to read chart window", "error", err)
		return nil, err
	}
	priorCounts, err := u.statsGateway.DailyCounts(ctx, user.UserID, priorFrom, priorTo)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to read prior chart window", "error", err)
		return nil, err
	}

	chart := &domain.DailyChart{ChartData: make([]domain.DailyChartEntry, 0, chartDays)}

	current := 0
	for _, day := range days {
		date := day.Format(domain.DateLayout)
		count := counts[date]
		current += count
		chart.ChartData = append(chart.ChartData, domain.DailyChartEntry{
			Date:     date,
			Day:      day.Format("Mon"),
			Count:    count,
			FullDate: day.Format("Jan 2"),
		})
	}

	prior := 0
	for _, count := range priorCounts {
		prior += count
	}

	trend := trendPercentage(current, prior)
	chart.Summary = domain.DailyChartSummary{
		TotalCount:      current,
		TrendPercentage: trend,
		IsPositive:      trend >= 0,
	}
	return chart, nil
}

// trendPercentage compares the charted week against the week before it. A
// zero prior window reads as +100% when the current week has activity and 0%
// when both weeks are empty.
func trendPercentage(current, prior int) float64 {
	if prior == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := float64(current-prior) / float64(prior) * 100
	return math.Round(change*10) / 10
}
