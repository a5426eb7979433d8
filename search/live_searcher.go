package search

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"readlog/config"
	"readlog/domain"
	"readlog/port/article_port"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// Snapshot is the externally visible search state at one point in time.
type Snapshot struct {
	Results     []domain.Article `json:"results"`
	Loading     bool             `json:"loading"`
	Error       string           `json:"error"`
	HasSearched bool             `json:"hasSearched"`
}

// LiveSearcher is the debounced as-you-type search state machine, one
// instance per session. Queries below the minimum length short-circuit
// locally without touching the store. At or above it, a single debounce
// timer is restarted on every keystroke; when it fires, exactly one list
// query runs, tagged with a generation number so a completion for a
// superseded query can never overwrite newer state. Result titles and
// descriptions carry <mark> highlighting for the query.
type LiveSearcher struct {
	fetchArticlesGateway article_port.FetchArticlesPort
	userID               uuid.UUID
	cfg                  config.SearchConfig

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	state      Snapshot
}

func NewLiveSearcher(
	fetchArticlesGateway article_port.FetchArticlesPort,
	userID uuid.UUID,
	cfg config.SearchConfig,
) *LiveSearcher {
	return &LiveSearcher{
		fetchArticlesGateway: fetchArticlesGateway,
		userID:               userID,
		cfg:                  cfg,
		state:                Snapshot{Results: []domain.Article{}},
	}
}

// SetQuery registers a keystroke. It returns immediately; the query, if any,
// runs after the debounce interval of input quiescence.
func (s *LiveSearcher) SetQuery(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if utf8.RuneCountInString(query) < s.cfg.MinQueryLength {
		s.state = Snapshot{Results: []domain.Article{}}
		return
	}

	gen := s.generation
	s.state.Loading = true
	s.state.Error = ""
	s.timer = time.AfterFunc(s.cfg.DebounceInterval, func() {
		s.run(ctx, query, gen)
	})
}

func (s *LiveSearcher) run(ctx context.Context, query string, gen uint64) {
	results, _, err := s.fetchArticlesGateway.Execute(ctx, s.userID, domain.ArticleQuery{
		Page:       1,
		PageSize:   s.cfg.ResultLimit,
		SearchTerm: query,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer keystroke superseded this query while it was in flight.
	if gen != s.generation {
		logger.SafeInfo("discarding stale search result", "query", query)
		return
	}

	s.state.Loading = false
	s.state.HasSearched = true
	if err != nil {
		logger.SafeErrorContext(ctx, "search query failed", "error", err, "query", query)
		s.state.Results = []domain.Article{}
		s.state.Error = "search failed"
		return
	}

	if results == nil {
		results = []domain.Article{}
	}
	for i := range results {
		results[i] = HighlightArticle(results[i], query)
	}
	s.state.Results = results
	s.state.Error = ""
}

// State returns a copy of the current search state.
func (s *LiveSearcher) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Results = make([]domain.Article, len(s.state.Results))
	copy(snapshot.Results, s.state.Results)
	return snapshot
}

// Close stops any pending debounce timer.
func (s *LiveSearcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
