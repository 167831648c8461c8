package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-dataset-loader/internal/logger"
)

const (
	defaultFlushInterval = 30 * time.Second
	finalFlushTimeout    = 10 * time.Second
)

type flushJob struct {
	datasetService DatasetService
	interval       time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewFlushJob creates a flushJob that calls datasetService.Flush on a
// ticker. The job is idle until Start or Run is called.
func NewFlushJob(datasetService DatasetService, interval time.Duration, logger *logger.Logger) FlushJob {
	return &flushJob{datasetService: datasetService, interval: interval, logger: logger}
}

// Start implements FlushJob. It stops any previously running job, then
// launches a background goroutine that flushes every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *flushJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.loop(jobCtx, interval)
	}()
}

// Stop implements FlushJob. Safe to call when the job is not running.
func (j *flushJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements FlushJob. A final flush is attempted when ctx ends so that
// items staged right before shutdown are not left behind longer than needed.
func (j *flushJob) Run(ctx context.Context) error {
	j.logger.Info().Dur("interval", j.interval).Msg("flush job started")
	j.loop(ctx, j.interval)

	finalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
	defer cancel()
	j.flush(finalCtx)

	j.logger.Info().Msg("flush job stopped")
	return nil
}

func (j *flushJob) loop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultFlushInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.flush(ctx)
		}
	}
}

func (j *flushJob) flush(ctx context.Context) {
	result, err := j.datasetService.Flush(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "flushJob.flush").Int("uploaded", result.Items).Msg("flush failed")
	}
}
