package engine

import "errors"

// The engine distinguishes four categories of error, matching the teacher's
// single PlayError string type generalized to errors.Is-compatible
// sentinels since callers now need to tell categories apart (a search agent
// retries on some of these and aborts on others).
var (
	// ErrAgentProtocolViolation means an Agent returned a move that is not
	// legal in the current state: wrong card, unrequested marriage, or a
	// move type the state does not allow.
	ErrAgentProtocolViolation = errors.New("agent protocol violation")

	// ErrInvariantViolation means engine state reached a condition the
	// rules forbid: a follower scoring 66 first, a hand growing past
	// MaxHandSize, a talon draw with too few cards available.
	ErrInvariantViolation = errors.New("game invariant violation")

	// ErrConfigurationError means a variant or trace record was configured
	// incorrectly: unknown variant name, malformed trace line.
	ErrConfigurationError = errors.New("configuration error")

	// ErrTerminalStateAccess means an operation that requires an ongoing
	// game (ValidMoves, GetMove) was called on a winner/loser perspective
	// after the game already ended.
	ErrTerminalStateAccess = errors.New("terminal state access")
)
