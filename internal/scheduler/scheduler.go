// Package scheduler merges periodic timers and an input stream into one
// totally ordered sequence of signals handled by a single goroutine.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Handler consumes one signal. Returning true stops the scheduler.
// It is never called concurrently with itself.
type Handler func(ctx context.Context, sig core.Signal) (stop bool)

// Scheduler drives a Handler from a set of timers and an optional input channel.
type Scheduler struct {
	timers []core.Timer
	input  <-chan core.InputEvent
	logger *log.Logger
}

// New creates a scheduler. input may be nil when there is no interactive source.
// A nil logger discards output.
func New(timers []core.Timer, input <-chan core.InputEvent, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		timers: append([]core.Timer(nil), timers...),
		input:  input,
		logger: logger,
	}
}

// Run delivers signals to h until h asks to stop or ctx is cancelled.
// It returns nil when the handler stopped it and ctx.Err() on cancellation.
func (s *Scheduler) Run(ctx context.Context, h Handler) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, t := range s.timers {
		if t.Interval <= 0 {
			return fmt.Errorf("scheduler: timer %q has non-positive interval %s", t.ID, t.Interval)
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan core.Signal)
	eg, gctx := errgroup.WithContext(runCtx)

	for _, t := range s.timers {
		eg.Go(func() error {
			return s.runTimer(gctx, t, events)
		})
	}
	if s.input != nil {
		eg.Go(func() error {
			return s.forwardInput(gctx, events)
		})
	}

	var (
		delivered int
		stopped   bool
	)
	eg.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case sig := <-events:
				delivered++
				if h(gctx, sig) {
					stopped = true
					cancel()
					return nil
				}
			}
		}
	})

	s.logger.Debug("scheduler started", "timers", len(s.timers), "input", s.input != nil)
	err := eg.Wait()
	s.logger.Debug("scheduler stopped", "signals", delivered, "stopped_by_handler", stopped)

	if err != nil {
		return err
	}
	if !stopped {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runTimer(ctx context.Context, t core.Timer, out chan<- core.Signal) error {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	sig := core.TimerSignal(t.ID)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case out <- sig:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// forwardInput relays input events in arrival order. A closed input channel
// ends forwarding but leaves the timers running.
func (s *Scheduler) forwardInput(ctx context.Context, out chan<- core.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-s.input:
			if !ok {
				s.logger.Debug("input closed")
				return nil
			}
			select {
			case out <- core.InputSignal(ev):
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// ErrNoSources is returned by Validate for a scheduler with nothing to deliver.
var ErrNoSources = errors.New("scheduler: no timers and no input")

// Validate reports whether the scheduler has at least one signal source.
func (s *Scheduler) Validate() error {
	if len(s.timers) == 0 && s.input == nil {
		return ErrNoSources
	}
	return nil
}
