package assistant

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mindfulmauschen/healthtrack/internal/logger"
)

// Request is one queued prompt. The ID lets callers match results to the
// request that produced them and drop replies they no longer care about.
type Request struct {
	ID     uuid.UUID
	Prompt string
}

// Result carries the reply or error for a request.
type Result struct {
	ID       uuid.UUID
	Response string
	Err      error
}

// Worker runs assistant requests off the caller's goroutine, one at a time,
// delivering results on a channel. The interface stays responsive while a
// request is in flight and can ignore results whose ID it no longer expects.
type Worker struct {
	client  *Client
	reqs    chan Request
	results chan Result

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewWorker(client *Client) *Worker {
	w := &Worker{
		client:  client,
		reqs:    make(chan Request, 8),
		results: make(chan Result, 8),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit queues a prompt and returns the ID its result will carry.
func (w *Worker) Submit(prompt string) uuid.UUID {
	id := uuid.New()
	select {
	case w.reqs <- Request{ID: id, Prompt: prompt}:
	case <-w.stop:
	}
	return id
}

// Results is the channel completed requests arrive on.
func (w *Worker) Results() <-chan Result {
	return w.results
}

// Stop shuts the worker down. In-flight requests are abandoned.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return
		case req := <-w.reqs:
			logger.Debug("assistant request started", "id", req.ID)
			resp, err := w.client.Chat(context.Background(), req.Prompt)
			if err != nil {
				logger.Error("assistant request failed", "id", req.ID, "error", err)
			}
			select {
			case w.results <- Result{ID: req.ID, Response: resp, Err: err}:
			case <-w.stop:
				return
			}
		}
	}
}
