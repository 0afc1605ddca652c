package whist

import "errors"

// Error kinds surfaced by engine operations. Callers match them with
// errors.Is; the HTTP layer maps each kind to a status code. Every operation
// either fully applies or rejects before mutating anything.
var (
	// ErrNotFound covers unknown game, player or card references.
	ErrNotFound = errors.New("not found")
	// ErrOutOfTurn covers actions by a player whose turn has not arrived.
	ErrOutOfTurn = errors.New("out of turn")
	// ErrInvalidAction covers illegal bids, illegal card plays and actions
	// attempted in the wrong phase.
	ErrInvalidAction = errors.New("invalid action")
	// ErrNotReady covers actions attempted before their prerequisite state,
	// such as playing before hands are dealt.
	ErrNotReady = errors.New("not ready")
)
