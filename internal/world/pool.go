package world

import (
	"context"
	"sync"
)

// FillJob represents a chunk population request
type FillJob struct {
	Coord     ChunkCoord
	Generator TerrainGenerator
	// Result channel - will be sent the result when done
	ResultChan chan FillResult
}

// FillResult contains the result of a population job
type FillResult struct {
	Coord ChunkCoord
	Chunk *Chunk
}

// FillPool manages goroutines for chunk population. Generators must be safe
// for concurrent use; the Voronoi populator is.
type FillPool struct {
	jobQueue chan FillJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

// NewFillPool creates a new population worker pool
func NewFillPool(workers int, queueSize int) *FillPool {
	workers = max(workers, 1)
	ctx, cancel := context.WithCancel(context.Background())
	pool := &FillPool{
		jobQueue: make(chan FillJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// Submit queues a job without blocking.
// Returns true if job was submitted successfully, false if queue is full or the pool is shut down
func (p *FillPool) Submit(job FillJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false // Queue is full
	}
}

// SubmitBlocking queues a job, waiting for queue space until ctx or the pool is done.
func (p *FillPool) SubmitBlocking(ctx context.Context, job FillJob) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return context.Canceled
	}
}

// worker is the worker goroutine that processes population jobs
func (p *FillPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			c := NewChunk(job.Coord.X, job.Coord.Z)
			job.Generator.PopulateChunk(c)

			select {
			case job.ResultChan <- FillResult{Coord: job.Coord, Chunk: c}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers. Queued jobs that have not started are dropped.
// The job queue is never closed so late Submit calls cannot panic.
func (p *FillPool) Shutdown() {
	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}

// Workers returns the number of worker goroutines.
func (p *FillPool) Workers() int {
	return p.workers
}

// GetQueueLength returns the current number of jobs in the queue
func (p *FillPool) GetQueueLength() int {
	return len(p.jobQueue)
}

// PopulateRegion populates every chunk in the inclusive range [minX..maxX]x[minZ..maxZ]
// and adds them to store. Chunks finish in no particular order.
func (p *FillPool) PopulateRegion(ctx context.Context, gen TerrainGenerator, store *ChunkStore, minX, minZ, maxX, maxZ int) (int, error) {
	if maxX < minX || maxZ < minZ {
		return 0, nil
	}
	total := (maxX - minX + 1) * (maxZ - minZ + 1)
	results := make(chan FillResult, total)

	submitErr := make(chan error, 1)
	go func() {
		defer close(submitErr)
		for cz := minZ; cz <= maxZ; cz++ {
			for cx := minX; cx <= maxX; cx++ {
				job := FillJob{Coord: ChunkCoord{X: cx, Z: cz}, Generator: gen, ResultChan: results}
				if err := p.SubmitBlocking(ctx, job); err != nil {
					submitErr <- err
					return
				}
			}
		}
	}()

	added := 0
	for done := 0; done < total; done++ {
		select {
		case r := <-results:
			if store.AddChunk(r.Chunk) {
				added++
			}
		case err := <-submitErr:
			if err != nil {
				return added, err
			}
			submitErr = nil // all jobs queued
			done--
		case <-ctx.Done():
			return added, ctx.Err()
		case <-p.ctx.Done():
			return added, context.Canceled
		}
	}
	return added, nil
}
