package domain

// StatsSummary is the dashboard headline block. ThisMonth and ThisWeek are
// rollup sums from the calendar boundary in the caller's timezone.
type StatsSummary struct {
	Total       int       `json:"total"`
	ThisMonth   int       `json:"thisMonth"`
	ThisWeek    int       `json:"thisWeek"`
	Bookmarks   int       `json:"bookmarks"`
	RecentPosts []Article `json:"recentPosts"`
}

// DailyChartEntry is one day of the 7-day activity chart.
type DailyChartEntry struct {
	Date     string `json:"date"`
	Day      string `json:"day"`
	Count    int    `json:"count"`
	FullDate string `json:"fullDate"`
}

// DailyChartSummary compares the charted week against the week before it.
type DailyChartSummary struct {
	TotalCount      int     `json:"totalCount"`
	TrendPercentage float64 `json:"trendPercentage"`
	IsPositive      bool    `json:"isPositive"`
}

// DailyChart always carries exactly seven entries, oldest first, ending on
// today in the requested timezone.
type DailyChart struct {
	ChartData []DailyChartEntry `json:"chartData"`
	Summary   DailyChartSummary `json:"summary"`
}
