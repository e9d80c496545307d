package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"voice-relay/contract"
	"voice-relay/errors"
)

var _ contract.ISupervisor = (*Supervisor)(nil)

// Supervisor keeps the bot's long-running workers alive: the update
// dispatcher, the heartbeat and the health endpoint.
// A worker that returns nil is done. A worker that fails or panics is
// started again after restartInterval until the bot shuts down.
type Supervisor struct {
	log             *slog.Logger
	restartInterval time.Duration
	workers         []contract.Worker
	wg              sync.WaitGroup

	mu       sync.Mutex
	cancel   context.CancelFunc
	restarts map[string]int
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{
		log:             log.With("component", "supervisor"),
		restartInterval: restartInterval,
		restarts:        make(map[string]int),
	}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run starts the registered workers and blocks until the last one is gone.
func (s *Supervisor) Run(ctx context.Context) {
	botCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	for _, worker := range s.workers {
		s.Start(botCtx, worker)
	}
	s.wg.Wait()
	s.log.Info("All workers stopped")
}

// Start supervises one worker in its own goroutine.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	name := contract.GetWorkerName(worker)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, name, worker)
	}()
}

func (s *Supervisor) supervise(ctx context.Context, name string, worker contract.Worker) {
	log := s.log.With("worker", name)
	for ctx.Err() == nil {
		err := runGuarded(ctx, worker)
		switch {
		case err == nil:
			log.Info("Worker done")
			return
		case ctx.Err() != nil:
			log.Info("Worker stopped on shutdown")
			return
		}

		restarts := s.recordRestart(name)
		log.Warn("Worker failed, restarting", "error", err, "restarts", restarts, "in", s.restartInterval)
		if !sleep(ctx, s.restartInterval) {
			return
		}
	}
}

// runGuarded turns a worker panic into ErrWorkerPanic.
func runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Supervisor) recordRestart(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restarts[name]++
	return s.restarts[name]
}

// Restarts reports how many times the named worker was restarted.
func (s *Supervisor) Restarts(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restarts[name]
}

// Stop cancels every worker. Run returns once they are all done.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}
