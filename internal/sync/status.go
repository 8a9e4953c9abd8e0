package sync

import "time"

// State represents the coordinator's lifecycle position
type State string

const (
	// StateIdle means no sync has run yet
	StateIdle State = "Idle"

	// StateSyncing means an attempt is in flight
	StateSyncing State = "Syncing"

	// StateSucceeded means the last attempt finished cleanly
	StateSucceeded State = "Succeeded"

	// StateFailed means the last attempt ended with a classified failure
	StateFailed State = "Failed"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsTerminal returns true if the state describes a finished attempt
func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// FailureReason is the closed classification of sync failures. Every failed
// attempt maps to exactly one reason.
type FailureReason string

const (
	ReasonMissingCredential FailureReason = "missing-credential"
	ReasonUnauthorized      FailureReason = "unauthorized"
	ReasonRemoteNotFound    FailureReason = "remote-not-found"
	ReasonTransportTimeout  FailureReason = "transport-timeout"
	ReasonMalformedResponse FailureReason = "malformed-response"
)

// Message returns the user-facing description for the reason
func (r FailureReason) Message() string {
	switch r {
	case ReasonMissingCredential:
		return "No GitHub token configured"
	case ReasonUnauthorized:
		return "GitHub rejected the token"
	case ReasonRemoteNotFound:
		return "Remote gist not found"
	case ReasonTransportTimeout:
		return "Could not reach GitHub"
	case ReasonMalformedResponse:
		return "Unexpected response from GitHub"
	default:
		return "Sync failed"
	}
}

// Direction distinguishes push from pull attempts
type Direction string

const (
	DirectionPush Direction = "push"
	DirectionPull Direction = "pull"
)

// Status is the coordinator's externally visible state. At is set for
// terminal states; Reason only when State is StateFailed.
type Status struct {
	State     State
	Direction Direction
	At        time.Time
	Reason    FailureReason
	AttemptID string
}
