package session

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Manager tracks all sessions of one zone. Phase occupancy lives on the phases
// themselves; a session only records which phase it points at.
// All methods are safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	players map[string]*PlayerSession // playerID → session
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{
		players: make(map[string]*PlayerSession),
	}
}

// Add registers sess under its PlayerID.
//
// Precondition: sess.PlayerID and sess.PhaseID must be non-empty.
// Postcondition: Returns an error if the player is already registered.
func (m *Manager) Add(sess *PlayerSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.players[sess.PlayerID]; exists {
		return fmt.Errorf("player %q already joined", sess.PlayerID)
	}
	m.players[sess.PlayerID] = sess
	return nil
}

// Remove unregisters a session.
//
// Postcondition: Returns the removed session, or an error if not found.
func (m *Manager) Remove(playerID string) (*PlayerSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.players[playerID]
	if !exists {
		return nil, fmt.Errorf("player %q not found", playerID)
	}
	delete(m.players, playerID)
	return sess, nil
}

// Move reassigns a player to newPhaseID.
//
// Postcondition: Returns the old phase ID, or an error if the player is not found.
func (m *Manager) Move(playerID, newPhaseID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.players[playerID]
	if !exists {
		return "", fmt.Errorf("player %q not found", playerID)
	}
	old := sess.PhaseID
	sess.PhaseID = newPhaseID
	return old, nil
}

// Get returns the session for playerID.
//
// Postcondition: Returns (session, true) if found, or (nil, false) otherwise.
func (m *Manager) Get(playerID string) (*PlayerSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.players[playerID]
	return sess, ok
}

// Idle returns the sorted IDs of sessions unseen for longer than threshold at now.
func (m *Manager) Idle(now time.Time, threshold time.Duration) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []string
	for id, sess := range m.players {
		if sess.IdleSince(now, threshold) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the number of joined players.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}
