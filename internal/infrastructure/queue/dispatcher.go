package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// ErrQueueFull is returned when the worker owning the job has no room left.
var ErrQueueFull = errors.New("stress test queue full")

// Dispatcher hands stress-test runs to a fixed set of workers, sharded by
// principal so the jobs of one principal are picked up in order. Each run
// then executes on its own goroutine and never holds up its shard.
type Dispatcher struct {
	workers []chan ports.StressTestJob
	log     zerolog.Logger
	running sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.StressTestJob, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StressTestJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context, processor ports.StressTestProcessor) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch, processor)
	}
}

// Enqueue hands the job to the worker responsible for its principal
// without blocking.
func (d *Dispatcher) Enqueue(job ports.StressTestJob) error {
	idx := d.shardIndex(job.Principal)
	select {
	case d.workers[idx] <- job:
		metrics.StressTestQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		return ErrQueueFull
	}
}

// shardIndex maps a principal deterministically to a worker index.
func (d *Dispatcher) shardIndex(principal string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(principal))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StressTestJob, processor ports.StressTestProcessor) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.StressTestQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			d.running.Add(1)
			go func() {
				defer d.running.Done()
				if err := processor.Process(ctx, job); err != nil {
					d.log.Error().Err(err).
						Str("run_id", job.RunID).
						Str("principal", job.Principal).
						Int("worker_id", id).
						Msg("stress test run failed")
				}
			}()
		}
	}
}

// Wait blocks until every run handed to a processor has returned.
func (d *Dispatcher) Wait() {
	d.running.Wait()
}
