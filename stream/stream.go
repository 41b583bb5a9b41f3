// Package stream implements the execution streams on which columnar operations
// run their data-parallel passes.
//
// A stream owns a pool of worker goroutines. Operations submitted to a stream
// partition a range of row positions [0, n) into tasks which run on the
// workers, and return once every task has completed. Operations on the same
// stream execute one after the other, in the order they were submitted, while
// independent streams do not share any state and can be used concurrently.
//
// Operations cannot be canceled: once launched, a pass always runs to
// completion.
package stream

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"

	"github.com/segmentio/columnar/internal/bits"
)

// tasksPerWorker bounds the number of tasks an operation is split into, as a
// multiple of the number of workers.
const tasksPerWorker = 4

// Stream is an execution stream backed by a pool of goroutines.
//
// Streams are safe to use concurrently from multiple goroutines, in which case
// the operations are serialized.
type Stream struct {
	mutex   sync.Mutex
	pool    *ants.Pool
	workers int
	grain   int
}

// New constructs a stream configured with the given options.
func New(options ...Option) (*Stream, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	pool, err := ants.NewPool(config.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "creating stream worker pool")
	}
	return &Stream{
		pool:    pool,
		workers: config.Workers,
		grain:   config.Grain,
	}, nil
}

var (
	defaultStreamOnce sync.Once
	defaultStream     *Stream
)

// Default returns the process-wide default stream, creating it on first use
// with the default configuration.
//
// The default stream must not be closed.
func Default() *Stream {
	defaultStreamOnce.Do(func() {
		s, err := New()
		if err != nil {
			panic(err)
		}
		defaultStream = s
	})
	return defaultStream
}

// Workers returns the number of goroutines executing the tasks of s.
func (s *Stream) Workers() int { return s.workers }

// Close releases the worker goroutines of s. Operations submitted after
// closing the stream return an error, unless they are small enough to run
// inline on the calling goroutine.
func (s *Stream) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pool.Release()
	return nil
}

// CountIf returns the number of positions i in [0, n) for which pred(i) is
// true. The predicate is evaluated exactly once per position, possibly from
// multiple goroutines concurrently.
func (s *Stream) CountIf(n int, pred func(int) bool) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	counts := make([]counter, s.tasks(n))
	err := s.run(n, len(counts), func(task, i, j int) {
		count := 0
		for ; i < j; i++ {
			if pred(i) {
				count++
			}
		}
		counts[task].value = count
	})
	return sumCounters(counts), err
}

// Transform sets dst[i] to f(i) for every position i of dst.
func (s *Stream) Transform(dst []bool, f func(int) bool) error {
	if len(dst) == 0 {
		return nil
	}
	return s.run(len(dst), s.tasks(len(dst)), func(_, i, j int) {
		for ; i < j; i++ {
			dst[i] = f(i)
		}
	})
}

// Count returns the number of true values in src.
func (s *Stream) Count(src []bool) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	counts := make([]counter, s.tasks(len(src)))
	err := s.run(len(src), len(counts), func(task, i, j int) {
		counts[task].value = bits.CountTrue(src[i:j])
	})
	return sumCounters(counts), err
}

// counter is padded to a cache line so tasks writing their results to
// adjacent counters do not contend on the same line.
type counter struct {
	value int
	_     cpu.CacheLinePad
}

func sumCounters(counts []counter) int {
	sum := 0
	for i := range counts {
		sum += counts[i].value
	}
	return sum
}

func (s *Stream) tasks(n int) int {
	tasks := (n + s.grain - 1) / s.grain
	if limit := tasksPerWorker * s.workers; tasks > limit {
		tasks = limit
	}
	return tasks
}

// run splits [0, n) into the given number of contiguous ranges and calls fn
// for each of them, returning when all calls have completed. A panic raised by
// fn is re-raised on the calling goroutine.
func (s *Stream) run(n, tasks int, fn func(task, i, j int)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if tasks <= 1 {
		fn(0, 0, n)
		return nil
	}

	var (
		wait      sync.WaitGroup
		once      sync.Once
		recovered interface{}
	)

	for task := 0; task < tasks; task++ {
		task, i, j := task, task*n/tasks, (task+1)*n/tasks
		wait.Add(1)

		err := s.pool.Submit(func() {
			defer wait.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { recovered = r })
				}
			}()
			fn(task, i, j)
		})

		if err != nil {
			wait.Done()
			wait.Wait()
			return errors.Wrap(err, "submitting task to stream")
		}
	}

	wait.Wait()

	if recovered != nil {
		panic(recovered)
	}
	return nil
}
