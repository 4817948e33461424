package job

import (
	"context"
	"log/slog"
)

// ProgressComplete is the progress value of a finished job.
const ProgressComplete = 100.0

// SubTaskProgress computes the progress after `done` of `total` sub-tasks.
// An empty sub-task list completes immediately at 100; the zero-total case is
// special-cased so progress arithmetic never divides by zero.
func SubTaskProgress(done, total int) float64 {
	if total <= 0 {
		return ProgressComplete
	}
	return float64(done) / float64(total) * ProgressComplete
}

// RunParams configures one pipeline run.
type RunParams struct {
	// JobID is used for logging only.
	JobID string
	// Total is the number of sub-tasks; the pipeline invokes Execute for
	// indices 0..Total-1 in order.
	Total int
	// Execute performs one sub-task (model call plus result append). An error
	// skips the sub-task without advancing progress; the run continues.
	Execute func(ctx context.Context, index int) error
	// Advance is called after each successful sub-task with the recomputed
	// progress. It persists the full record and refreshes the tracker entry.
	// Failures are logged and do not stop the run.
	Advance func(ctx context.Context, progress float64) error
}

// Pipeline drives the ordered sub-task loop shared by evaluation and
// document-generation runs. It owns only the partial-failure policy; status
// transitions around the loop belong to the calling service.
type Pipeline struct {
	logger *slog.Logger
}

// NewPipeline creates a Pipeline. A nil logger falls back to slog.Default.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Run executes every sub-task in order. One failing sub-task never aborts the
// job: it is logged, contributes no result, and leaves progress where it was.
// Run always reaches the end of the list, so the caller unconditionally
// transitions the job to completed afterwards.
func (p *Pipeline) Run(ctx context.Context, params RunParams) {
	for i := 0; i < params.Total; i++ {
		if err := params.Execute(ctx, i); err != nil {
			p.logger.ErrorContext(ctx, "sub-task failed, skipping",
				"job_id", params.JobID,
				"sub_task_index", i,
				"error", err,
			)
			continue
		}

		progress := SubTaskProgress(i+1, params.Total)
		if params.Advance == nil {
			continue
		}
		if err := params.Advance(ctx, progress); err != nil {
			p.logger.ErrorContext(ctx, "persist progress failed",
				"job_id", params.JobID,
				"sub_task_index", i,
				"progress", progress,
				"error", err,
			)
		}
	}
}
