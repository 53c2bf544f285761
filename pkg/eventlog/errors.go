package eventlog

import "errors"

// ErrEventLogUnavailable wraps storage failures during append. The log is
// the platform's source of truth: callers must treat this as fatal for the
// operation in progress rather than continuing unobserved.
var ErrEventLogUnavailable = errors.New("event log unavailable")

// ErrProtocolViolation reports an append missing mandatory provenance
// fields, or one that references a parent event outside its workflow.
// These are caller bugs, not transient failures.
var ErrProtocolViolation = errors.New("event protocol violation")
