// Package party groups players that share one party phase.
package party

import (
	"sort"

	"github.com/google/uuid"
)

// Scaling derives a party phase budget from its member count.
type Scaling struct {
	// Base is the budget before member scaling.
	Base int
	// PerMember is the extra budget each member adds.
	PerMember int
	// MaxBonus caps the member-scaled bonus.
	MaxBonus int
}

// DefaultScaling is the 6 + min(4, members*2) rule.
var DefaultScaling = Scaling{Base: 6, PerMember: 2, MaxBonus: 4}

// Budget returns the phase budget for a party of memberCount members.
//
// Postcondition: Returns Base + min(MaxBonus, memberCount*PerMember), never
// less than Base.
func (s Scaling) Budget(memberCount int) int {
	bonus := memberCount * s.PerMember
	if bonus > s.MaxBonus {
		bonus = s.MaxBonus
	}
	if bonus < 0 {
		bonus = 0
	}
	return s.Base + bonus
}

// Max returns the largest budget any membership can reach.
func (s Scaling) Max() int {
	if s.MaxBonus < 0 {
		return s.Base
	}
	return s.Base + s.MaxBonus
}

// Party is a named group of players sharing one phase.
//
// Invariant: Leader is always a member while the party has members.
// A Party is not safe for concurrent use; the owning zone room serializes access.
type Party struct {
	ID      string
	Leader  string
	PhaseID string

	members map[string]struct{}
}

// New creates a party led by leaderID bound to phaseID.
//
// Precondition: leaderID and phaseID must be non-empty.
func New(leaderID, phaseID string) *Party {
	return &Party{
		ID:      "party-" + uuid.NewString(),
		Leader:  leaderID,
		PhaseID: phaseID,
		members: map[string]struct{}{leaderID: {}},
	}
}

// Add inserts playerID. Idempotent.
func (p *Party) Add(playerID string) {
	p.members[playerID] = struct{}{}
}

// Remove deletes playerID, reassigning the leader to the lexicographically
// smallest remaining member when the leader leaves.
//
// Postcondition: Returns the remaining member count. When zero, the caller
// must delete the party.
func (p *Party) Remove(playerID string) int {
	if _, ok := p.members[playerID]; !ok {
		return len(p.members)
	}
	delete(p.members, playerID)
	if p.Leader == playerID {
		p.Leader = ""
		if rest := p.Members(); len(rest) > 0 {
			p.Leader = rest[0]
		}
	}
	return len(p.members)
}

// Has reports whether playerID is a member.
func (p *Party) Has(playerID string) bool {
	_, ok := p.members[playerID]
	return ok
}

// Size returns the member count.
func (p *Party) Size() int {
	return len(p.members)
}

// Members returns the member ids in sorted order.
func (p *Party) Members() []string {
	out := make([]string, 0, len(p.members))
	for id := range p.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Budget returns the phase budget for the current membership under s.
func (p *Party) Budget(s Scaling) int {
	return s.Budget(len(p.members))
}
