package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/practicum/employee-model/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// ErrClosed is returned by Enqueue once Close has been called.
var ErrClosed = errors.New("summon queue closed")

// Summoner is the part of the staff service the workers call.
type Summoner interface {
	Summon(ctx context.Context, id string) error
}

// Dispatcher routes summon jobs to a fixed set of workers using consistent
// hashing on the staff id, so jobs for one staff member run in order.
// Every accepted job is delivered: workers exit only after Close, once their
// queue is empty.
type Dispatcher struct {
	workers  []chan ports.SummonJob
	summoner Summoner
	log      zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, summoner Summoner, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.SummonJob, numWorkers),
		summoner: summoner,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SummonJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx carries values into the summon
// calls; its cancellation does not stop the workers, Close does.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its staff id. The call
// blocks only while that worker's buffer is full.
func (d *Dispatcher) Enqueue(job ports.SummonJob) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}
	d.workers[d.shardIndex(job.StaffID)] <- job
	return nil
}

// Close stops accepting jobs and waits for the workers to drain their queues.
// It is safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardIndex maps a staff id deterministically to a worker index.
func (d *Dispatcher) shardIndex(staffID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(staffID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SummonJob) {
	defer d.wg.Done()
	for job := range ch {
		if err := d.summoner.Summon(ctx, job.StaffID); err != nil {
			d.log.Error().Err(err).
				Str("staff_id", job.StaffID).
				Str("requested_by", job.RequestedBy).
				Int("worker_id", id).
				Msg("summon failed")
			continue
		}
		d.log.Debug().
			Str("staff_id", job.StaffID).
			Str("requested_by", job.RequestedBy).
			Int("worker_id", id).
			Msg("summon delivered")
	}
}
