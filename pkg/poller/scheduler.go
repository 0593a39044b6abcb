/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package poller drives the fetch and reconcile cycles of the console and
// publishes the resulting view models.
package poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/reconcile"
)

const (
	triggerStart   = "start"
	triggerTick    = "tick"
	triggerRefresh = "refresh"
)

var errNilDependency = errors.New("fetcher and sink are required")

// Scheduler runs a cycle immediately on Start and then on every tick. Cycles
// overlap freely; each category result is applied only when its cycle is
// newer than the last one applied for that category.
type Scheduler struct {
	config     Config
	fetcher    Fetcher
	sink       Sink
	clock      Clock
	reconciler reconcile.Reconciler
	logger     logger.Logger

	seq atomic.Uint64

	// mu guards the fields below and serializes every publish.
	mu      sync.Mutex
	highest [categoryCount]uint64
	closed  bool
	vm      ViewModel
	filter  Filter

	refreshCh chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	startWg   sync.WaitGroup
}

// New creates a scheduler. A nil clock selects the system clock.
func New(config *Config, fetcher Fetcher, sink Sink, clock Clock, log logger.Logger) (*Scheduler, error) {
	if fetcher == nil || sink == nil {
		return nil, errNilDependency
	}

	cfg := *config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = SystemClock{}
	}

	return &Scheduler{
		config:     cfg,
		fetcher:    fetcher,
		sink:       sink,
		clock:      clock,
		reconciler: reconcile.Reconciler{FreshnessWindow: time.Duration(cfg.HeartbeatFreshness)},
		logger:     log,
		vm:         newViewModel(),
		filter:     cfg.Filter,
		refreshCh:  make(chan struct{}, 1),
		done:       make(chan struct{}),
	}, nil
}

// Start blocks until ctx is done or Stop is called. Either one tears the
// scheduler down: results of cycles still in flight are discarded. Cycles run
// on a context detached from ctx, so their fetches complete rather than fail.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}

	s.startWg.Add(1)
	s.mu.Unlock()

	defer s.startWg.Done()

	interval := time.Duration(s.config.PollInterval)
	ticker := s.clock.Ticker(interval)

	defer ticker.Stop()

	s.logger.Info().Dur("interval", interval).Msg("Starting scheduler")

	cycleCtx := context.WithoutCancel(ctx)

	s.launch(cycleCtx, triggerStart)

	for {
		select {
		case <-ctx.Done():
			s.shutdown()

			return ctx.Err()
		case <-s.done:
			return nil
		case <-ticker.Chan():
			s.launch(cycleCtx, triggerTick)
		case <-s.refreshCh:
			s.launch(cycleCtx, triggerRefresh)
		}
	}
}

// Refresh requests an out-of-band cycle. Requests made while one is already
// pending are merged.
func (s *Scheduler) Refresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

// SetFilter changes the session and fault filters for subsequent cycles.
func (s *Scheduler) SetFilter(f Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

// Filter returns the filter used by new cycles.
func (s *Scheduler) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter
}

// Snapshot returns the most recently published view model.
func (s *Scheduler) Snapshot() ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.vm
}

// Stop ends the tick loop and discards every result that arrives afterwards.
// It waits for running cycles until ctx is done. A Start called after Stop
// returns at once.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.shutdown()

	waited := make(chan struct{})

	go func() {
		s.startWg.Wait()
		s.wg.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		s.logger.Info().Msg("Scheduler stopped")

		return nil
	case <-ctx.Done():
		s.logger.Warn().Msg("Scheduler stopped with cycles still in flight")

		return ctx.Err()
	}
}

// shutdown marks the scheduler closed and ends the tick loop.
func (s *Scheduler) shutdown() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		close(s.done)
	})
}

func (s *Scheduler) launch(ctx context.Context, trigger string) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		s.RunCycle(ctx, trigger)
	}()
}

// RunCycle performs one cycle synchronously and returns its sequence number.
// Start calls it on its own goroutines; it is exported for one-shot use.
func (s *Scheduler) RunCycle(ctx context.Context, trigger string) uint64 {
	seq := s.seq.Add(1)
	started := s.clock.Now()
	filter := s.Filter()

	recordCycle(ctx, trigger)

	s.logger.Debug().Uint64("cycle", seq).Str("trigger", trigger).Msg("Poll cycle started")

	// one category's failure must not cancel the others, so the group has no context
	var g errgroup.Group

	g.Go(func() error {
		records, err := s.fetcher.ListChargers(ctx)
		s.applyChargers(ctx, seq, records, err)

		return nil
	})

	g.Go(func() error {
		sessions, err := s.fetcher.ListSessions(ctx, filter.ChargePointID)
		s.applySessions(ctx, seq, sessions, err)

		return nil
	})

	g.Go(func() error {
		faults, err := s.fetcher.ListFaults(ctx, filter.IncludeClearedFaults)
		s.applyFaults(ctx, seq, faults, err)

		return nil
	})

	_ = g.Wait()

	recordCycleLatency(ctx, s.clock.Now().Sub(started))

	return seq
}

func (s *Scheduler) applyChargers(ctx context.Context, seq uint64, records []models.ChargerRecord, err error) {
	now := s.clock.Now()

	var views []models.ChargerView
	if err == nil {
		views = s.reconciler.ReconcileAll(records, now)
	}

	s.apply(ctx, CategoryChargers, seq, err, func(vm *ViewModel) {
		vm.Chargers = views
		vm.ChargersPanel = panelFor(err, len(views), seq, now, PlaceholderChargersEmpty, PlaceholderChargersError)
	})
}

func (s *Scheduler) applySessions(ctx context.Context, seq uint64, sessions []models.ChargingSession, err error) {
	now := s.clock.Now()

	if err != nil {
		sessions = nil
	}

	s.apply(ctx, CategorySessions, seq, err, func(vm *ViewModel) {
		vm.Sessions = sessions
		vm.SessionsPanel = panelFor(err, len(sessions), seq, now, PlaceholderSessionsEmpty, PlaceholderSessionsError)
	})
}

func (s *Scheduler) applyFaults(ctx context.Context, seq uint64, faults []models.Fault, err error) {
	now := s.clock.Now()

	if err != nil {
		faults = nil
	}

	s.apply(ctx, CategoryFaults, seq, err, func(vm *ViewModel) {
		vm.Faults = faults
		vm.FaultsPanel = panelFor(err, len(faults), seq, now, PlaceholderFaultsEmpty, PlaceholderFaultsError)
	})
}

// apply is the per-category sequence guard. The comparison, the update and
// the publish happen under one lock, so an older cycle can never publish
// after a newer one.
func (s *Scheduler) apply(ctx context.Context, c Category, seq uint64, fetchErr error, update func(vm *ViewModel)) {
	if fetchErr != nil {
		recordFetchFailure(ctx, c)

		s.logger.Warn().Err(fetchErr).Str("category", c.String()).Uint64("cycle", seq).Msg("Fetch failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq <= s.highest[c] {
		recordStale(ctx, c)

		s.logger.Debug().
			Str("category", c.String()).
			Uint64("cycle", seq).
			Uint64("applied", s.highest[c]).
			Bool("stopped", s.closed).
			Msg("Discarding stale result")

		return
	}

	s.highest[c] = seq

	update(&s.vm)

	s.sink.Publish(s.vm)
}
