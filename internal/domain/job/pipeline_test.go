package job

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubTaskProgress(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		want  float64
	}{
		{"first of four", 1, 4, 25},
		{"half", 2, 4, 50},
		{"all", 4, 4, 100},
		{"one of three", 1, 3, 100.0 / 3},
		{"zero total", 0, 0, 100},
		{"negative total", 1, -1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SubTaskProgress(tt.done, tt.total), 0.0001)
		})
	}
}

func TestPipelineRunExecutesInOrder(t *testing.T) {
	p := NewPipeline(nil)
	ctx := context.Background()

	var executed []int
	var progress []float64
	p.Run(ctx, RunParams{
		JobID: "job-1",
		Total: 3,
		Execute: func(_ context.Context, index int) error {
			executed = append(executed, index)
			return nil
		},
		Advance: func(_ context.Context, prog float64) error {
			progress = append(progress, prog)
			return nil
		},
	})

	assert.Equal(t, []int{0, 1, 2}, executed)
	require.Len(t, progress, 3)
	assert.InDelta(t, 100.0/3, progress[0], 0.0001)
	assert.InDelta(t, 200.0/3, progress[1], 0.0001)
	assert.InDelta(t, 100, progress[2], 0.0001)
}

func TestPipelineRunSkipsFailedSubTask(t *testing.T) {
	p := NewPipeline(nil)
	ctx := context.Background()

	var progress []float64
	p.Run(ctx, RunParams{
		JobID: "job-1",
		Total: 3,
		Execute: func(_ context.Context, index int) error {
			if index == 1 {
				return errors.New("boom")
			}
			return nil
		},
		Advance: func(_ context.Context, prog float64) error {
			progress = append(progress, prog)
			return nil
		},
	})

	// Progress is computed from the loop index, so the failed middle sub-task
	// leaves a gap and the final one still reaches 100.
	require.Len(t, progress, 2)
	assert.InDelta(t, 100.0/3, progress[0], 0.0001)
	assert.InDelta(t, 100, progress[1], 0.0001)
}

func TestPipelineRunSurvivesAdvanceFailure(t *testing.T) {
	p := NewPipeline(nil)
	ctx := context.Background()

	executed := 0
	p.Run(ctx, RunParams{
		JobID: "job-1",
		Total: 2,
		Execute: func(context.Context, int) error {
			executed++
			return nil
		},
		Advance: func(context.Context, float64) error {
			return errors.New("save failed")
		},
	})

	assert.Equal(t, 2, executed, "persist failures never abort the loop")
}

func TestPipelineRunZeroTotal(t *testing.T) {
	p := NewPipeline(nil)

	called := false
	p.Run(context.Background(), RunParams{
		JobID:   "job-1",
		Total:   0,
		Execute: func(context.Context, int) error { called = true; return nil },
	})

	assert.False(t, called)
}

func TestPipelineRunNilAdvance(t *testing.T) {
	p := NewPipeline(nil)

	executed := 0
	p.Run(context.Background(), RunParams{
		JobID:   "job-1",
		Total:   2,
		Execute: func(context.Context, int) error { executed++; return nil },
	})

	assert.Equal(t, 2, executed)
}
