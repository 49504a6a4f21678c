package application

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/quentel/tally/internal/domain"
	"github.com/quentel/tally/internal/ports"
)

const timerStateKey = "timer.json"

// TimerService is the stopwatch engine. State is restored from the store on
// first use, so a running timer keeps counting across process exits: elapsed
// time is re-derived from the persisted wall-clock anchor, never replayed
// from ticks. Persistence failures are soft; the in-memory state stays
// authoritative for the rest of the process.
type TimerService struct {
	store  ports.StateStore
	clock  ports.Clock
	logger *slog.Logger

	loaded bool
	state  domain.TimerState
}

func NewTimerService(store ports.StateStore, clock ports.Clock, logger *slog.Logger) *TimerService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TimerService{store: store, clock: clock, logger: logger}
}

// Start begins or resumes the count. A non-blank taskName relabels the
// session; blank keeps the previous label.
func (s *TimerService) Start(ctx context.Context, taskName string) (Sample, error) {
	s.ensureLoaded(ctx)

	next, err := s.state.Started(s.clock.Now(), taskName)
	if err != nil {
		return s.sample(), err
	}

	s.state = next
	s.persist(ctx)

	return s.sample(), nil
}

// Pause snapshots the elapsed time and stops the count.
func (s *TimerService) Pause(ctx context.Context) (Sample, error) {
	s.ensureLoaded(ctx)

	next, err := s.state.Paused(s.clock.Now())
	if err != nil {
		return s.sample(), err
	}

	s.state = next
	s.persist(ctx)

	return s.sample(), nil
}

// Reset returns the timer to idle from any state and removes the persisted
// timer state.
func (s *TimerService) Reset(ctx context.Context) {
	s.ensureLoaded(ctx)

	s.state = domain.TimerState{}
	if err := s.store.Delete(ctx, timerStateKey); err != nil {
		s.logger.Warn("clear timer state", "error", err)
	}
}

// SampleNow re-derives the elapsed time from the wall clock.
func (s *TimerService) SampleNow(ctx context.Context) Sample {
	s.ensureLoaded(ctx)
	return s.sample()
}

func (s *TimerService) sample() Sample {
	return Sample{
		ElapsedMs: s.state.ElapsedMs(s.clock.Now()),
		Running:   s.state.Running,
		TaskName:  s.state.TaskName,
	}
}

// ensureLoaded restores persisted timer state once per service lifetime.
// Absent or corrupt payloads fall open to an idle timer.
func (s *TimerService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := s.store.Get(ctx, timerStateKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Warn("load timer state", "error", err)
		}
		return
	}

	var state domain.TimerState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Warn("discard corrupt timer state", "error", err)
		return
	}

	s.state = state
}

func (s *TimerService) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("encode timer state", "error", err)
		return
	}

	if err := s.store.Put(ctx, timerStateKey, string(data)); err != nil {
		s.logger.Warn("persist timer state", "error", err)
	}
}
