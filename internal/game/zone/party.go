package zone

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// PartyInfo identifies a party and its shared phase.
type PartyInfo struct {
	PartyID string
	PhaseID string
	Leader  string
	Members []string
}

func infoOf(p *party.Party) PartyInfo {
	return PartyInfo{PartyID: p.ID, PhaseID: p.PhaseID, Leader: p.Leader, Members: p.Members()}
}

// CreateParty creates a party led by leaderID in a fresh party phase, joining
// the leader first if needed. A leader already in a party leaves it.
//
// Postcondition: the leader is the only member of the new party and phase.
func (r *Room) CreateParty(leaderID string) (PartyInfo, error) {
	if _, ok := r.Session(leaderID); !ok {
		r.Join(leaderID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions.Get(leaderID)
	if !ok {
		return PartyInfo{}, ErrNotJoined
	}
	sess.Touch(r.now())
	r.removeFromPartyLocked(leaderID)

	ph := r.newPhaseLocked(content.CategoryParty, r.scaling.Budget(1), leaderID)
	r.moveLocked(sess, ph)

	p := party.New(leaderID, ph.ID)
	r.parties[p.ID] = p
	r.partyOf[leaderID] = p.ID

	r.logger.Info("party created",
		zap.String("party", p.ID),
		zap.String("leader", leaderID),
		zap.String("phase", ph.ID),
	)
	return infoOf(p), nil
}

// JoinParty moves playerID into partyID's phase, joining the zone first if
// needed, and rescales the phase budget.
//
// Postcondition: Returns ErrPartyNotFound for an unknown party. Joining a
// party the player already belongs to is a no-op that returns true.
func (r *Room) JoinParty(partyID, playerID string) (bool, error) {
	r.mu.Lock()
	_, exists := r.parties[partyID]
	r.mu.Unlock()
	if !exists {
		return false, ErrPartyNotFound
	}
	if _, ok := r.Session(playerID); !ok {
		r.Join(playerID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parties[partyID]
	if !ok {
		return false, ErrPartyNotFound
	}
	sess, ok := r.sessions.Get(playerID)
	if !ok {
		return false, ErrNotJoined
	}
	sess.Touch(r.now())
	if p.Has(playerID) {
		return true, nil
	}
	r.removeFromPartyLocked(playerID)

	ph, ok := r.phases[p.PhaseID]
	if !ok {
		// A party with members always has its phase.
		return false, ErrPartyNotFound
	}
	r.moveLocked(sess, ph)
	p.Add(playerID)
	r.partyOf[playerID] = p.ID
	ph.Budget = p.Budget(r.scaling)

	r.logger.Info("party joined",
		zap.String("party", p.ID),
		zap.String("player", playerID),
		zap.Int("members", p.Size()),
		zap.Int("budget", ph.Budget),
	)
	return true, nil
}

// LeaveParty moves playerID out of its party into a personal phase.
//
// Postcondition: Returns ErrNotJoined without a session, and false when the
// player is not in a party.
func (r *Room) LeaveParty(playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions.Get(playerID)
	if !ok {
		return false, ErrNotJoined
	}
	sess.Touch(r.now())
	if _, ok := r.partyOf[playerID]; !ok {
		return false, nil
	}
	r.removeFromPartyLocked(playerID)
	r.moveLocked(sess, r.personalPhaseLocked(playerID))
	return true, nil
}

// Party returns the party with id partyID.
func (r *Room) Party(partyID string) (PartyInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parties[partyID]
	if !ok {
		return PartyInfo{}, false
	}
	return infoOf(p), true
}

// removeFromPartyLocked drops playerID from its party, if any. The party is
// deleted when it empties; otherwise its phase budget is rescaled and the
// surplus population despawned. The player's phase membership is left to the
// caller.
func (r *Room) removeFromPartyLocked(playerID string) {
	partyID, ok := r.partyOf[playerID]
	if !ok {
		return
	}
	delete(r.partyOf, playerID)
	p, ok := r.parties[partyID]
	if !ok {
		return
	}
	if p.Remove(playerID) == 0 {
		delete(r.parties, partyID)
		r.logger.Info("party disbanded", zap.String("party", partyID))
		return
	}
	if ph, ok := r.phases[p.PhaseID]; ok {
		ph.Budget = p.Budget(r.scaling)
		if trimmed := ph.TrimToBudget(); len(trimmed) > 0 {
			r.logger.Debug("party phase trimmed",
				zap.String("phase", ph.ID),
				zap.Int("budget", ph.Budget),
				zap.Int("despawned", len(trimmed)),
			)
		}
	}
	r.logger.Debug("party member removed",
		zap.String("party", partyID),
		zap.String("player", playerID),
		zap.String("leader", p.Leader),
	)
}
