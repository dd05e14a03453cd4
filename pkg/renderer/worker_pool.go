package renderer

import (
	"context"
	"runtime"
	"sync"
)

// RowCaster casts every cell of one silhouette row
type RowCaster interface {
	CastRow(ctx context.Context, row int) ([]Cell, error)
}

// RowTask represents one silhouette row for the worker pool
type RowTask struct {
	Row    int
	TaskID int // For deterministic ordering
}

// RowResult contains the cells cast for one row
type RowResult struct {
	TaskID int
	Row    int
	Cells  []Cell
	Error  error
}

// WorkerPool manages parallel row casting
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker casts rows pulled from the shared task queue
type Worker struct {
	ID          int
	caster      RowCaster
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(caster RowCaster, rows int, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),   // Buffer for every row
		resultQueue: make(chan RowResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			caster:      caster,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers. Once ctx is done, remaining tasks are answered
// with ctx's error instead of being cast.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		cells, err := w.caster.CastRow(ctx, task.Row)
		w.resultQueue <- RowResult{
			TaskID: task.TaskID,
			Row:    task.Row,
			Cells:  cells,
			Error:  err,
		}
	}
}
