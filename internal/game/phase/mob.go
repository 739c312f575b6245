package phase

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// Mob is a live enemy instance inside a phase.
//
// Invariant: 0 <= Health <= MaxHealth.
type Mob struct {
	// ID uniquely identifies this runtime instance across the zone.
	ID string
	// TemplateID is the source template's ID.
	TemplateID string
	// Name is copied from the template for display.
	Name string
	// Level is copied from the template.
	Level int
	// Health is the current health.
	Health int
	// MaxHealth is copied from the template.
	MaxHealth int
	// X is the 1-D spawn slot the mob occupies.
	X int
}

// NewMob creates a full-health Mob from tmpl at position x.
//
// Postcondition: Health == MaxHealth == tmpl.MaxHealth; ID is unique.
func NewMob(tmpl content.EnemyTemplate, x int) *Mob {
	return &Mob{
		ID:         tmpl.ID + "-" + uuid.NewString(),
		TemplateID: tmpl.ID,
		Name:       tmpl.Name,
		Level:      tmpl.Level,
		Health:     tmpl.MaxHealth,
		MaxHealth:  tmpl.MaxHealth,
		X:          x,
	}
}

// Alive reports whether the mob has health remaining.
func (m *Mob) Alive() bool {
	return m.Health > 0
}

// ApplyDamage subtracts amount from Health, flooring at zero.
//
// Precondition: amount >= 0.
// Postcondition: Health >= 0; returns true iff this call brought Health to zero.
func (m *Mob) ApplyDamage(amount int) bool {
	if !m.Alive() {
		return false
	}
	m.Health -= amount
	if m.Health <= 0 {
		m.Health = 0
		return true
	}
	return false
}

// Contribution accumulates what one player did against one mob.
type Contribution struct {
	Damage int
	// Healing and ActiveMs are tracked for future reward formulas; nothing
	// writes them yet.
	Healing  int
	ActiveMs int
}
