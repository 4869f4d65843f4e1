package store

import (
	"context"
	"sync"
)

// Op identifies a persistence request.
type Op int

const (
	OpSave Op = iota
	OpLoad
)

func (o Op) String() string {
	if o == OpLoad {
		return "load"
	}

	return "save"
}

// Request is a save or load of the document named Name. Doc is only used
// for saves.
type Request struct {
	Doc  *Document
	Name string
	Op   Op
}

// Result is the outcome of a Request. Doc is only set for successful loads.
type Result struct {
	Doc  *Document
	Err  error
	Name string
	Op   Op
	Seq  uint64
}

type job struct {
	out chan Result
	req Request
	seq uint64
}

// Queue runs persistence requests one at a time on a background goroutine,
// in the order they were submitted. A load submitted after a save always
// observes that save, and a load submitted before a save never does.
type Queue struct {
	ctx     context.Context
	backend Backend
	wake    chan struct{}
	done    chan struct{}
	pending []job
	mu      sync.Mutex
	seq     uint64
	closed  bool
}

// NewQueue starts a queue that runs requests against backend. The context is
// passed to every backend call.
func NewQueue(ctx context.Context, backend Backend) *Queue {
	q := &Queue{
		ctx:     ctx,
		backend: backend,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	go q.run()

	return q
}

// Submit enqueues req without blocking and returns a channel that receives
// exactly one Result.
func (q *Queue) Submit(req Request) <-chan Result {
	out := make(chan Result, 1)

	q.mu.Lock()

	if q.closed {
		q.mu.Unlock()

		out <- Result{Op: req.Op, Name: req.Name, Err: ErrQueueClosed}

		return out
	}

	q.seq++
	q.pending = append(q.pending, job{req: req, seq: q.seq, out: out})
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return out
}

// Close stops accepting requests and blocks until the pending ones have
// completed.
func (q *Queue) Close() {
	q.mu.Lock()

	if q.closed {
		q.mu.Unlock()
		<-q.done

		return
	}

	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	<-q.done
}

func (q *Queue) next() (job, bool, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return job{}, false, q.closed
	}

	j := q.pending[0]
	q.pending = q.pending[1:]

	return j, true, false
}

func (q *Queue) run() {
	defer close(q.done)

	for {
		j, ok, closed := q.next()
		if closed {
			return
		}

		if !ok {
			<-q.wake
			continue
		}

		j.out <- q.exec(j)
	}
}

func (q *Queue) exec(j job) Result {
	res := Result{
		Op:   j.req.Op,
		Name: j.req.Name,
		Seq:  j.seq,
	}

	switch j.req.Op {
	case OpLoad:
		res.Doc, res.Err = q.backend.Load(q.ctx, j.req.Name)
	default:
		res.Err = q.backend.Save(q.ctx, j.req.Name, j.req.Doc)
	}

	return res
}
