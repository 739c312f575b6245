package zone

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/phase"
	"github.com/cory-johannsen/skirmish/internal/game/reward"
)

// Attack outcome reasons for a miss.
const (
	ReasonCooldown   = "cooldown"
	ReasonOutOfRange = "out_of_range"
	ReasonNoTarget   = "no_target"
)

// AttackResult is the outcome of BasicAttack. When Hit is false, Reason
// says why and no state changed.
type AttackResult struct {
	Hit    bool
	Damage int
	Killed bool
	MobID  string
	Reason string
}

// BasicAttack strikes a mob in the player's phase.
//
// With a hint the nearest live mob to *hintX is chosen and must lie within the
// configured attack range; without one the earliest-spawned live mob is used.
// Settlement of a killed mob is left to the caller via SettleIfDead.
//
// Postcondition: Returns ErrNotJoined if the player has no session.
func (r *Room) BasicAttack(playerID string, hintX *int) (AttackResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions.Get(playerID)
	if !ok {
		return AttackResult{}, ErrNotJoined
	}
	now := r.now()
	sess.Touch(now)

	if sess.OnCooldown(now) {
		return AttackResult{Reason: ReasonCooldown}, nil
	}

	ph := r.phases[sess.PhaseID]
	var target *phase.Mob
	if hintX != nil {
		m, dist := ph.NearestLive(*hintX)
		if m == nil {
			return AttackResult{Reason: ReasonNoTarget}, nil
		}
		if dist > r.cfg.AttackRange {
			return AttackResult{Reason: ReasonOutOfRange}, nil
		}
		target = m
	} else {
		target = ph.FirstLive()
		if target == nil {
			return AttackResult{Reason: ReasonNoTarget}, nil
		}
	}

	dmg := sess.DamagePerHit
	if dmg < 1 {
		dmg = 1
	}
	killed := target.ApplyDamage(dmg)
	ph.RecordDamage(target.ID, playerID, dmg)
	sess.LastBasicAt = now

	if killed {
		r.logger.Debug("mob killed",
			zap.String("player", playerID),
			zap.String("mob", target.ID),
			zap.String("phase", ph.ID),
		)
	}
	return AttackResult{Hit: true, Damage: dmg, Killed: killed, MobID: target.ID}, nil
}

// SettleIfDead settles mobID if it is dead, wherever it lives in the zone.
//
// Postcondition: Returns (nil, false) for an unknown or living mob; a mob is
// settled at most once.
func (r *Room) SettleIfDead(mobID string) (*reward.Settlement, bool) {
	zc := r.cache.Current()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ph := range r.phases {
		if _, ok := ph.Mob(mobID); !ok {
			continue
		}
		return r.resolver.Settle(ph, mobID, zc, r.now(), r.cfg.MinRespawn)
	}
	return nil, false
}
