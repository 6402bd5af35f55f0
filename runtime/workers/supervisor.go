package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sentence-lab/contract"
	"sentence-lab/errors"
	"sync"
	"time"
)

const DefaultRestartInterval = 200 * time.Millisecond

// Supervisor runs each analysis worker in its own goroutine.
// A worker that panics or fails is restarted after restartInterval,
// a worker that returns nil is done, and cancelling the parent context stops everyone.
// Run blocks until every worker has returned.
type Supervisor struct {
	Cancel          context.CancelFunc // To stop the context
	wg              *sync.WaitGroup    // Wait for the end of goroutines
	log             *slog.Logger
	workers         []contract.Worker
	restartInterval time.Duration
}

var _ contract.ISupervisor = (*Supervisor)(nil)

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	if restartInterval <= 0 {
		restartInterval = DefaultRestartInterval
	}
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartInterval: restartInterval}
}

// Run derives a cancellable context from ctx.
// Cancelling the parent stops the supervisor, Stop only stops its workers.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs a worker under supervision in a dedicated goroutine.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, worker, contract.GetWorkerName(worker))
	}()
}

// supervise keeps one worker alive until it succeeds or ctx ends.
func (s *Supervisor) supervise(ctx context.Context, worker contract.Worker, name string) {
	for restarts := 0; ctx.Err() == nil; restarts++ {
		err := runGuarded(ctx, worker)
		switch {
		case err == nil:
			s.log.Debug("Worker finished", "name", name, "restarts", restarts)
			return
		case ctx.Err() != nil:
			// the loop condition ends supervision
		default:
			s.log.Warn("Worker crashed, restarting", "name", name, "restarts", restarts, "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(s.restartInterval):
			}
		}
	}
	s.log.Debug("Worker stopped (context canceled)", "name", name)
}

// runGuarded turns a panic escaping the worker into ErrWorkerPanic.
func runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

// Stop cancels the supervised context; Run returns once all workers have exited.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
