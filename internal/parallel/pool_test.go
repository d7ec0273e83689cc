package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Creation
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// Run
// =============================================================================

func TestWorkerPool_RunExecutesEveryJobOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const n = 100
	var counts [n]atomic.Int32
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = func() error {
			counts[i].Add(1)
			return nil
		}
	}

	if err := pool.Run(jobs); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := range counts {
		if c := counts[i].Load(); c != 1 {
			t.Errorf("job %d ran %d times, want 1", i, c)
		}
	}
}

func TestWorkerPool_RunEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if err := pool.Run(nil); err != nil {
		t.Errorf("Run(nil) = %v, want nil", err)
	}
}

func TestWorkerPool_RunCollectsErrors(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	errA := errors.New("a failed")
	errB := errors.New("b failed")
	jobs := []Job{
		func() error { return errA },
		func() error { return nil },
		func() error { return errB },
	}

	err := pool.Run(jobs)
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Run() error = %v, want both job errors", err)
	}
}

func TestWorkerPool_RunMoreJobsThanQueueCapacity(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]Job, 500)
	for i := range jobs {
		jobs[i] = func() error {
			counter.Add(1)
			return nil
		}
	}

	if err := pool.Run(jobs); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if counter.Load() != 500 {
		t.Errorf("counter = %d, want 500", counter.Load())
	}
}

func TestWorkerPool_SlowJobDoesNotBlockOthers(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	release := make(chan struct{})
	var fast atomic.Int32

	jobs := []Job{
		func() error { <-release; return nil },
	}
	// Jobs dealt to the blocked worker's queue must be stolen.
	for range 9 {
		jobs = append(jobs, func() error {
			if fast.Add(1) == 9 {
				close(release)
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- pool.Run(jobs) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not finish; queued jobs were not stolen")
	}
}

func TestWorkerPool_ConcurrentRuns(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs := make([]Job, 16)
			for i := range jobs {
				jobs[i] = func() error {
					total.Add(1)
					return nil
				}
			}
			if err := pool.Run(jobs); err != nil {
				t.Errorf("Run() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if total.Load() != 8*16 {
		t.Errorf("total = %d, want %d", total.Load(), 8*16)
	}
}

// =============================================================================
// Close
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestWorkerPool_RunAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	err := pool.Run([]Job{func() error { return nil }})
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Run() after Close = %v, want ErrClosed", err)
	}
}
