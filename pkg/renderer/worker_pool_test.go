package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-raytracer-kernel/pkg/scene"
)

// failingCaster fails a single row and returns empty cells for the rest
type failingCaster struct {
	failRow int
	err     error
}

func (fc *failingCaster) CastRow(ctx context.Context, row int) ([]Cell, error) {
	if row == fc.failRow {
		return nil, fc.err
	}
	return make([]Cell, 4), nil
}

func TestWorkerPool_ReturnsEveryRow(t *testing.T) {
	s := scene.New(nil)
	s.NewSphere()

	config := DefaultSilhouetteConfig()
	config.Resolution = 12
	caster := &rowCaster{scene: s, config: config}

	pool := NewWorkerPool(caster, config.Resolution, 4)
	if pool.GetNumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}

	pool.Start(context.Background())
	for row := 0; row < config.Resolution; row++ {
		pool.SubmitTask(RowTask{Row: row, TaskID: row})
	}

	seen := make(map[int]bool)
	for i := 0; i < config.Resolution; i++ {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Worker pool closed unexpectedly")
		}
		if result.Error != nil {
			t.Errorf("Unexpected error for row %d: %v", result.Row, result.Error)
		}
		if len(result.Cells) != config.Resolution {
			t.Errorf("Expected %d cells in row %d, got %d", config.Resolution, result.Row, len(result.Cells))
		}
		seen[result.Row] = true
	}
	pool.Stop()

	if len(seen) != config.Resolution {
		t.Errorf("Expected every row once, got %d distinct rows", len(seen))
	}
	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestWorkerPool_ReportsRowErrors(t *testing.T) {
	errBoom := errors.New("boom")
	pool := NewWorkerPool(&failingCaster{failRow: 2, err: errBoom}, 5, 2)

	pool.Start(context.Background())
	for row := 0; row < 5; row++ {
		pool.SubmitTask(RowTask{Row: row, TaskID: row})
	}
	pool.Stop()

	failures := 0
	for result := range pool.resultQueue {
		if result.Error != nil {
			failures++
			if result.Row != 2 || !errors.Is(result.Error, errBoom) {
				t.Errorf("Unexpected failure %v for row %d", result.Error, result.Row)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected exactly one failed row, got %d", failures)
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(&failingCaster{failRow: -1}, 1, 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}
