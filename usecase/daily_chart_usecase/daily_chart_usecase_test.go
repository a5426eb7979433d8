package daily_chart_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"readlog/domain"
	"readlog/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authedContext(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "reader@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

// Wednesday 2025-03-12 15:00 UTC; the chart window is 03-06..03-12 and the
// prior window 02-27..03-05.
var fixedNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

func usecaseFor(t *testing.T, counts, priorCounts map[string]int) (*DailyChartUsecase, uuid.UUID) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	statsPort := mocks.NewMockStatsPort(ctrl)
	statsPort.EXPECT().DailyCounts(gomock.Any(), userID, "2025-03-06", "2025-03-12").Return(counts, nil)
	statsPort.EXPECT().DailyCounts(gomock.Any(), userID, "2025-02-27", "2025-03-05").Return(priorCounts, nil)

	u := NewDailyChartUsecase(statsPort)
	u.now = func() time.Time { return fixedNow }
	return u, userID
}

func TestExecute_SevenZeroFilledEntriesOldestFirst(t *testing.T) {
	u, userID := usecaseFor(t,
		map[string]int{"2025-03-10": 2, "2025-03-12": 1},
		map[string]int{},
	)

	chart, err := u.Execute(authedContext(userID), "UTC")
	require.NoError(t, err)
	require.Len(t, chart.ChartData, 7)

	assert.Equal(t, domain.DailyChartEntry{Date: "2025-03-06", Day: "Thu", Count: 0, FullDate: "Mar 6"}, chart.ChartData[0])
	assert.Equal(t, domain.DailyChartEntry{Date: "2025-03-10", Day: "Mon", Count: 2, FullDate: "Mar 10"}, chart.ChartData[4])
	assert.Equal(t, domain.DailyChartEntry{Date: "2025-03-12", Day: "Wed", Count: 1, FullDate: "Mar 12"}, chart.ChartData[6])

	for i := 1; i < len(chart.ChartData); i++ {
		assert.Less(t, chart.ChartData[i-1].Date, chart.ChartData[i].Date)
	}
}

func TestExecute_TrendAgainstPriorWindow(t *testing.T) {
	tests := []struct {
		name         string
		counts       map[string]int
		priorCounts  map[string]int
		wantTotal    int
		wantTrend    float64
		wantPositive bool
	}{
		{
			name:         "half of prior week",
			counts:       map[string]int{"2025-03-10": 2},
			priorCounts:  map[string]int{"2025-03-01": 4},
			wantTotal:    2,
			wantTrend:    -50,
			wantPositive: false,
		},
		{
			name:         "growth",
			counts:       map[string]int{"2025-03-10": 3},
			priorCounts:  map[string]int{"2025-03-01": 2},
			wantTotal:    3,
			wantTrend:    50,
			wantPositive: true,
		},
		{
			name:         "zero prior window with activity",
			counts:       map[string]int{"2025-03-12": 1},
			priorCounts:  map[string]int{},
			wantTotal:    1,
			wantTrend:    100,
			wantPositive: true,
		},
		{
			name:         "both windows empty",
			counts:       map[string]int{},
			priorCounts:  map[string]int{},
			wantTotal:    0,
			wantTrend:    0,
			wantPositive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, userID := usecaseFor(t, tt.counts, tt.priorCounts)

			chart, err := u.Execute(authedContext(userID), "UTC")
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, chart.Summary.TotalCount)
			assert.InDelta(t, tt.wantTrend, chart.Summary.TrendPercentage, 0.01)
			assert.Equal(t, tt.wantPositive, chart.Summary.IsPositive)
		})
	}
}

func TestExecute_WindowFollowsTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	// 2025-03-13 01:00 in Tokyo while still 2025-03-12 in UTC.
	nowTokyoEdge := time.Date(2025, 3, 12, 16, 0, 0, 0, time.UTC)

	statsPort := mocks.NewMockStatsPort(ctrl)
	statsPort.EXPECT().DailyCounts(gomock.Any(), userID, "2025-03-07", "2025-03-13").Return(map[string]int{}, nil)
	statsPort.EXPECT().DailyCounts(gomock.Any(), userID, "2025-02-28", "2025-03-06").Return(map[string]int{}, nil)

	u := NewDailyChartUsecase(statsPort)
	u.now = func() time.Time { return nowTokyoEdge }

	chart, err := u.Execute(authedContext(userID), "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-13", chart.ChartData[6].Date)
}

func TestExecute_GatewayErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	wantErr := errors.New("rollup read failed")

	statsPort := mocks.NewMockStatsPort(ctrl)
	statsPort.EXPECT().DailyCounts(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, wantErr)

	u := NewDailyChartUsecase(statsPort)
	u.now = func() time.Time { return fixedNow }

	_, err := u.Execute(authedContext(userID), "UTC")
	assert.ErrorIs(t, err, wantErr)
}

func TestExecute_RequiresUserContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewDailyChartUsecase(mocks.NewMockStatsPort(ctrl))

	_, err := u.Execute(context.Background(), "UTC")
	assert.ErrorIs(t, err, domain.ErrInvalidUserContext)
}
