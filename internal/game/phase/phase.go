// Package phase implements an isolated combat arena: its members, its live
// mobs, the per-mob contribution ledger, the spawn budget, and the respawn gate.
//
// A Phase is not safe for concurrent use; the owning zone room serializes
// access.
package phase

import (
	"sort"
	"time"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// Phase is one combat arena.
//
// Invariant: a Phase with zero members is deleted by its owner.
// Invariant: len(mobs) <= Budget after EnsureSpawns or TrimToBudget, except
// for dead mobs still awaiting settlement.
type Phase struct {
	ID       string
	Category content.Category
	ZoneID   string
	// Budget is the maximum number of live mobs refill may reach.
	Budget int
	// RespawnAt is the armed respawn gate; zero means unarmed.
	RespawnAt time.Time

	members map[string]struct{}
	mobs    map[string]*Mob
	order   []string
	ledger  map[string]map[string]*Contribution
	cursors map[string]int
}

// New creates an empty Phase.
//
// Precondition: id must be non-empty; budget >= 0.
// Postcondition: the phase has no members; the caller adds at least one
// before publishing it.
func New(id string, category content.Category, zoneID string, budget int) *Phase {
	return &Phase{
		ID:       id,
		Category: category,
		ZoneID:   zoneID,
		Budget:   budget,
		members:  make(map[string]struct{}),
		mobs:     make(map[string]*Mob),
		ledger:   make(map[string]map[string]*Contribution),
		cursors:  make(map[string]int),
	}
}

// AddMember attaches playerID to the phase. Idempotent.
func (p *Phase) AddMember(playerID string) {
	p.members[playerID] = struct{}{}
}

// RemoveMember detaches playerID and returns the remaining member count.
func (p *Phase) RemoveMember(playerID string) int {
	delete(p.members, playerID)
	return len(p.members)
}

// HasMember reports whether playerID belongs to the phase.
func (p *Phase) HasMember(playerID string) bool {
	_, ok := p.members[playerID]
	return ok
}

// MemberCount returns the number of members.
func (p *Phase) MemberCount() int {
	return len(p.members)
}

// Members returns the member ids in sorted order.
func (p *Phase) Members() []string {
	out := make([]string, 0, len(p.members))
	for id := range p.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// MobCount returns the number of mobs, dead or alive, still held by the phase.
func (p *Phase) MobCount() int {
	return len(p.mobs)
}

// Mob returns the mob with the given id.
func (p *Phase) Mob(id string) (*Mob, bool) {
	m, ok := p.mobs[id]
	return m, ok
}

// Mobs returns every mob in spawn order.
func (p *Phase) Mobs() []*Mob {
	out := make([]*Mob, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.mobs[id])
	}
	return out
}

// countTemplate returns how many mobs of templateID the phase holds.
func (p *Phase) countTemplate(templateID string) int {
	n := 0
	for _, m := range p.mobs {
		if m.TemplateID == templateID {
			n++
		}
	}
	return n
}

// addMob registers m in spawn order.
func (p *Phase) addMob(m *Mob) {
	p.mobs[m.ID] = m
	p.order = append(p.order, m.ID)
}

// RemoveMob deletes the mob and its contribution ledger.
//
// Postcondition: Returns false if the mob was unknown.
func (p *Phase) RemoveMob(id string) bool {
	if _, ok := p.mobs[id]; !ok {
		return false
	}
	delete(p.mobs, id)
	delete(p.ledger, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// TrimToBudget despawns live mobs until the population fits Budget and returns
// the removed mobs. Mobs nobody has damaged go first, newest first; engaged
// live mobs follow, newest first. Dead mobs awaiting settlement are kept.
//
// Postcondition: len(p.Mobs()) <= max(p.Budget, number of dead mobs).
func (p *Phase) TrimToBudget() []*Mob {
	if len(p.mobs) <= p.Budget {
		return nil
	}
	var removed []*Mob
	for _, engaged := range []bool{false, true} {
		for i := len(p.order) - 1; i >= 0 && len(p.mobs) > p.Budget; i-- {
			m := p.mobs[p.order[i]]
			if !m.Alive() {
				continue
			}
			if _, hit := p.ledger[m.ID]; hit != engaged {
				continue
			}
			p.RemoveMob(m.ID)
			removed = append(removed, m)
		}
	}
	return removed
}

// FirstLive returns the earliest-spawned live mob, or nil.
func (p *Phase) FirstLive() *Mob {
	for _, id := range p.order {
		if m := p.mobs[id]; m.Alive() {
			return m
		}
	}
	return nil
}

// NearestLive returns the live mob closest to x and its distance. Ties go to
// the earlier-spawned mob. Returns nil when no mob is alive.
func (p *Phase) NearestLive(x int) (*Mob, int) {
	var best *Mob
	bestDist := 0
	for _, id := range p.order {
		m := p.mobs[id]
		if !m.Alive() {
			continue
		}
		d := m.X - x
		if d < 0 {
			d = -d
		}
		if best == nil || d < bestDist {
			best, bestDist = m, d
		}
	}
	return best, bestDist
}

// RecordDamage upserts the (mob, player) ledger entry.
//
// Precondition: mobID must identify a mob in this phase; amount >= 0.
func (p *Phase) RecordDamage(mobID, playerID string, amount int) {
	byPlayer, ok := p.ledger[mobID]
	if !ok {
		byPlayer = make(map[string]*Contribution)
		p.ledger[mobID] = byPlayer
	}
	c, ok := byPlayer[playerID]
	if !ok {
		c = &Contribution{}
		byPlayer[playerID] = c
	}
	c.Damage += amount
}

// Contributions returns a copy of the ledger for mobID keyed by player id.
//
// Postcondition: Returns a non-nil map (may be empty).
func (p *Phase) Contributions(mobID string) map[string]Contribution {
	out := make(map[string]Contribution, len(p.ledger[mobID]))
	for pid, c := range p.ledger[mobID] {
		out[pid] = *c
	}
	return out
}

// ArmRespawn closes the refill gate until at.
func (p *Phase) ArmRespawn(at time.Time) {
	p.RespawnAt = at
}

// gated reports whether refill is suppressed at now: the gate only holds while
// the phase still has mobs, so an emptied phase always gets a full fill.
func (p *Phase) gated(now time.Time) bool {
	return len(p.mobs) > 0 && !p.RespawnAt.IsZero() && now.Before(p.RespawnAt)
}
