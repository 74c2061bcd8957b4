// Package task runs the simulated file-copy job driven by the progress dialog.
package task

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSteps is the number of steps the progress dialog counts through.
const DefaultSteps = 10000

// Job is a cancellable countdown of Total steps.
type Job struct {
	Total     int
	StepDelay time.Duration
	// LogEvery controls how often progress is written at debug level;
	// 0 disables progress logging.
	LogEvery int
	Logger   zerolog.Logger
}

// NewJob returns a job over DefaultSteps steps with a short per-step delay.
func NewJob(logger zerolog.Logger) Job {
	return Job{
		Total:     DefaultSteps,
		StepDelay: 200 * time.Microsecond,
		LogEvery:  1000,
		Logger:    logger,
	}
}

// Run executes the job, calling onProgress after each step with the number
// of completed steps. It returns the completed count and ctx.Err() if the
// context was cancelled before the last step.
func (j Job) Run(ctx context.Context, onProgress func(done, total int)) (int, error) {
	var tick <-chan time.Time
	if j.StepDelay > 0 {
		ticker := time.NewTicker(j.StepDelay)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; i < j.Total; i++ {
		select {
		case <-ctx.Done():
			j.Logger.Info().Int("done", i).Int("total", j.Total).Msg("job cancelled")
			return i, ctx.Err()
		default:
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				j.Logger.Info().Int("done", i).Int("total", j.Total).Msg("job cancelled")
				return i, ctx.Err()
			case <-tick:
			}
		}

		done := i + 1
		if onProgress != nil {
			onProgress(done, j.Total)
		}
		if j.LogEvery > 0 && done%j.LogEvery == 0 {
			j.Logger.Debug().Int("done", done).Int("total", j.Total).Msg("progress")
		}
	}
	j.Logger.Info().Int("total", j.Total).Msg("job finished")
	return j.Total, nil
}
