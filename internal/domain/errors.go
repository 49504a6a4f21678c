package domain

import "errors"

var (
	ErrTimerRunning    = errors.New("timer is already running")
	ErrTimerNotRunning = errors.New("timer is not running")
	ErrEmptySession    = errors.New("no elapsed time to record")
)
