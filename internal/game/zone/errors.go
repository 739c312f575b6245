package zone

import "errors"

var (
	// ErrNotJoined is returned when an operation needs a session the player does not have.
	ErrNotJoined = errors.New("zone: player not joined")
	// ErrPartyNotFound is returned for an unknown party id.
	ErrPartyNotFound = errors.New("zone: party not found")
)
