package registry

import "errors"

// ErrPromptUnresolved means no assignment matched and the caller is not
// legacy-exempt. Components must fail their stage rather than improvise a
// prompt.
var ErrPromptUnresolved = errors.New("prompt unresolved")

// ErrNoModelAvailable means no healthy active endpoint can serve the task
// class, even after falling back to any capability.
var ErrNoModelAvailable = errors.New("no model endpoint available")

// ErrConcurrentModification is returned when an optimistic-concurrency
// write loses the race: the version the caller read is no longer current.
var ErrConcurrentModification = errors.New("concurrent modification")

// ErrInvalidTransition is returned for lifecycle transitions outside the
// draft → waiting_approval → active → paused → deprecated lattice.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")
