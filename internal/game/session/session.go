// Package session provides per-player transient combat state and the index
// of which players occupy which phase.
package session

import "time"

// PlayerSession tracks one joined player's combat state inside a zone.
//
// Invariant: PhaseID always names exactly one existing phase while the session
// is registered with a Manager.
type PlayerSession struct {
	// PlayerID is the player/character identifier.
	PlayerID string
	// ZoneID is the zone the session belongs to.
	ZoneID string
	// PhaseID is the phase the player currently occupies.
	PhaseID string
	// HP is the current health.
	HP int
	// MaxHP is the maximum health.
	MaxHP int
	// AutoCombat reports whether the client asked for automatic attacks.
	AutoCombat bool
	// LastBasicAt is when the last basic attack landed; zero if never.
	LastBasicAt time.Time
	// LastSeenAt is when the player last issued any request.
	LastSeenAt time.Time
	// DamagePerHit is the derived basic-attack damage.
	DamagePerHit int
	// AttackMs is the basic-attack cadence in milliseconds.
	AttackMs int
}

// Cadence returns AttackMs as a duration.
func (s *PlayerSession) Cadence() time.Duration {
	return time.Duration(s.AttackMs) * time.Millisecond
}

// OnCooldown reports whether a basic attack at now would come sooner than
// the cadence allows.
func (s *PlayerSession) OnCooldown(now time.Time) bool {
	if s.LastBasicAt.IsZero() {
		return false
	}
	return now.Sub(s.LastBasicAt) < s.Cadence()
}

// Touch records activity at now.
func (s *PlayerSession) Touch(now time.Time) {
	s.LastSeenAt = now
}

// IdleSince reports whether the session has been unseen for longer than
// threshold. A session seen exactly threshold ago is still live.
func (s *PlayerSession) IdleSince(now time.Time, threshold time.Duration) bool {
	return now.Sub(s.LastSeenAt) > threshold
}
