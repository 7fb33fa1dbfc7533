package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/profootgn/league-api/internal/platform/logging"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	refreshTaskStandings     = "standings"
	refreshTaskStandingsLive = "standings_live"
	refreshTaskTopScorers    = "top_scorers"
)

type StatsRefreshResult struct {
	TaskCount    int                      `json:"task_count"`
	SuccessCount int                      `json:"success_count"`
	FailedCount  int                      `json:"failed_count"`
	WorkerCount  int                      `json:"worker_count"`
	Tasks        []StatsRefreshTaskResult `json:"tasks"`
}

type StatsRefreshTaskResult struct {
	Task       string `json:"task"`
	Status     string `json:"status"`
	Rows       int    `json:"rows"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// StatsRefreshService precomputes the expensive aggregates on a schedule so
// the first request after a quiet period never pays for a cold table.
type StatsRefreshService struct {
	standings  *StandingsService
	topScorers *TopScorerService
	limit      int
	workers    int
	logger     *logging.Logger
}

func NewStatsRefreshService(standings *StandingsService, topScorers *TopScorerService, limit, workers int, logger *logging.Logger) *StatsRefreshService {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsRefreshService{
		standings:  standings,
		topScorers: topScorers,
		limit:      limit,
		workers:    workers,
		logger:     logger,
	}
}

// RefreshAll recomputes both standings projections and the scorer chart on
// a worker pool. Task failures are reported, not fatal.
func (s *StatsRefreshService) RefreshAll(ctx context.Context) (StatsRefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsRefreshService.RefreshAll")
	defer span.End()

	tasks := []string{refreshTaskStandings, refreshTaskStandingsLive, refreshTaskTopScorers}
	result := StatsRefreshResult{TaskCount: len(tasks), WorkerCount: s.workers}

	results := make(chan StatsRefreshTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return StatsRefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := StatsRefreshTaskResult{Task: task}

			rows, err := s.runTask(ctx, task)
			row.Rows = rows
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = refreshStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = refreshStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return StatsRefreshResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].Task < result.Tasks[j].Task
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *StatsRefreshService) runTask(ctx context.Context, task string) (int, error) {
	switch task {
	case refreshTaskStandings:
		rows, err := s.standings.Refresh(ctx, false)
		return len(rows), err
	case refreshTaskStandingsLive:
		rows, err := s.standings.Refresh(ctx, true)
		return len(rows), err
	case refreshTaskTopScorers:
		rows, err := s.topScorers.Ranking(ctx, s.limit, false)
		return len(rows), err
	default:
		return 0, fmt.Errorf("unknown refresh task %q", task)
	}
}

// Run refreshes on the given interval until ctx is canceled. An immediate
// first pass warms everything at startup.
func (s *StatsRefreshService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	s.refreshAndLog(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshAndLog(ctx)
		}
	}
}

func (s *StatsRefreshService) refreshAndLog(ctx context.Context) {
	result, err := s.RefreshAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "stats refresh failed", "error", err)
		return
	}
	if result.FailedCount > 0 {
		s.logger.WarnContext(ctx, "stats refresh finished with failures",
			"success", result.SuccessCount, "failed", result.FailedCount)
		return
	}
	s.logger.DebugContext(ctx, "stats refresh finished",
		"tasks", result.TaskCount, "workers", result.WorkerCount)
}
