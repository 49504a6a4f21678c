package domain

import (
	"strings"
	"time"
)

type TimerPhase string

const (
	PhaseIdle    TimerPhase = "idle"
	PhaseRunning TimerPhase = "running"
	PhasePaused  TimerPhase = "paused"
)

// TimerState is the persisted stopwatch state. Exactly one of AnchorMs and
// PausedElapsedMs is meaningful: the anchor while running, the snapshot
// otherwise. Elapsed time is always re-derived from the wall clock and the
// anchor, never from an accumulated tick count, so arbitrarily long gaps in
// tick delivery self-correct on the next sample.
type TimerState struct {
	Running         bool   `json:"running"`
	AnchorMs        int64  `json:"anchor_ms,omitempty"`
	PausedElapsedMs int64  `json:"paused_elapsed_ms,omitempty"`
	TaskName        string `json:"task_name,omitempty"`
}

func (s TimerState) Phase() TimerPhase {
	switch {
	case s.Running:
		return PhaseRunning
	case s.PausedElapsedMs > 0:
		return PhasePaused
	default:
		return PhaseIdle
	}
}

// ElapsedMs reports the elapsed session time as of now.
func (s TimerState) ElapsedMs(now time.Time) int64 {
	if !s.Running {
		return s.PausedElapsedMs
	}

	elapsed := now.UnixMilli() - s.AnchorMs
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Started returns the running state entered at now. The anchor is set to now
// minus any elapsed time accumulated before a pause, so resuming continues
// the prior count. A blank task name keeps the previous label.
func (s TimerState) Started(now time.Time, taskName string) (TimerState, error) {
	if s.Running {
		return s, ErrTimerRunning
	}

	name := strings.TrimSpace(taskName)
	if name == "" {
		name = s.TaskName
	}

	return TimerState{
		Running:  true,
		AnchorMs: now.UnixMilli() - s.PausedElapsedMs,
		TaskName: name,
	}, nil
}

// Paused snapshots the elapsed time at now and stops the count.
func (s TimerState) Paused(now time.Time) (TimerState, error) {
	if !s.Running {
		return s, ErrTimerNotRunning
	}

	return TimerState{
		PausedElapsedMs: s.ElapsedMs(now),
		TaskName:        s.TaskName,
	}, nil
}
