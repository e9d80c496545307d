package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"voice-relay/contract"
	"voice-relay/errors"
)

var _ contract.Worker = (*UpdateDispatcher[struct{}])(nil)

// UpdateHandler processes one inbound update to completion.
type UpdateHandler[U any] func(ctx context.Context, update U)

// UpdateDispatcher hands every inbound update to its own goroutine.
// Ordering per chat is enforced downstream by the session registry, so a slow
// turn in one chat never delays another chat.
type UpdateDispatcher[U any] struct {
	log     *slog.Logger
	updates <-chan U
	handle  UpdateHandler[U]
	wg      sync.WaitGroup
}

func NewUpdateDispatcher[U any](log *slog.Logger, updates <-chan U, handle UpdateHandler[U]) *UpdateDispatcher[U] {
	return &UpdateDispatcher[U]{
		log:     log,
		updates: updates,
		handle:  handle,
	}
}

// Run dispatches until the context is canceled or the update channel is closed.
// In both cases it waits for the turns already in flight. Those run on a context
// detached from cancellation and are bounded by their own call timeouts.
func (d *UpdateDispatcher[U]) Run(ctx context.Context) error {
	turnCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			d.log.Debug("Stopping dispatcher, waiting for turns in flight")
			d.wg.Wait()
			return ctx.Err()
		case update, ok := <-d.updates:
			if !ok {
				d.log.Debug("Update channel is closed")
				d.wg.Wait()
				return nil
			}
			d.wg.Add(1)
			go d.dispatch(turnCtx, update)
		}
	}
}

func (d *UpdateDispatcher[U]) dispatch(ctx context.Context, update U) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Update handler panicked", "error", fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r))
		}
	}()
	d.handle(ctx, update)
}
