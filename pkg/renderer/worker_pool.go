package renderer

import (
	"runtime"
	"sync"
)

// BandTask is a horizontal band of scanlines [MinY, MaxY) to render
type BandTask struct {
	TaskID int // For deterministic ordering
	MinY   int
	MaxY   int
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID    int
	HitPixels int
}

// BandFunc renders one band and reports how many pixels hit geometry
type BandFunc func(task BandTask) int

// WorkerPool renders bands in parallel. Bands never overlap, so workers
// write disjoint bytes of the image and need no locking.
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	numWorkers  int
	render      BandFunc
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the queues so a whole frame can be submitted without
// blocking.
func NewWorkerPool(numWorkers, maxTasks int, render BandFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop closes the task queue and waits for in-flight bands to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a band to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- BandResult{
			TaskID:    task.TaskID,
			HitPixels: wp.render(task),
		}
	}
}

// NewBands splits height scanlines into bands of at most bandHeight rows
func NewBands(height, bandHeight int) []BandTask {
	if bandHeight <= 0 {
		bandHeight = 1
	}

	var bands []BandTask
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, BandTask{
			TaskID: len(bands),
			MinY:   y,
			MaxY:   min(y+bandHeight, height),
		})
	}
	return bands
}
