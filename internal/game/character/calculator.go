package character

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// Formula overrides the built-in damage formula.
type Formula interface {
	DamagePerHit(in scripting.DamageInputs) (int, error)
}

// Calculator computes damage-per-hit.
//
// Calculator is safe for concurrent use when its collaborators are.
type Calculator struct {
	chars   CharacterProvider
	inv     InventoryProvider
	classes map[string]ClassStats
	formula Formula
	logger  *zap.Logger
}

// Option customizes a Calculator.
type Option func(*Calculator)

// WithFormula installs a scripted formula. A nil formula is ignored.
func WithFormula(f Formula) Option {
	return func(c *Calculator) {
		if f != nil {
			c.formula = f
		}
	}
}

// WithClasses replaces the class table.
func WithClasses(classes map[string]ClassStats) Option {
	return func(c *Calculator) { c.classes = classes }
}

// NewCalculator creates a Calculator.
//
// Precondition: chars must be non-nil. A nil inv means no weapon is ever held.
func NewCalculator(chars CharacterProvider, inv InventoryProvider, logger *zap.Logger, opts ...Option) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Calculator{
		chars:   chars,
		inv:     inv,
		classes: DefaultClasses,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DamagePerHit returns the basic-attack damage for characterID:
// class base + level + strength/4 + the class weapon bonus when the weapon is
// held. A configured Formula replaces the built-in sum; if it fails, the
// built-in sum is used.
//
// Postcondition: Returns a value >= 1, or an error when the profile lookup fails.
func (c *Calculator) DamagePerHit(ctx context.Context, characterID string) (int, error) {
	p, err := c.chars.CombatProfile(ctx, characterID)
	if err != nil {
		return 0, fmt.Errorf("loading combat profile for %q: %w", characterID, err)
	}

	stats, ok := c.classes[p.Class]
	if !ok {
		stats = fallbackClass
	}

	bonus := 0
	if stats.Weapon != "" && c.inv != nil {
		held, err := c.inv.HasItem(ctx, characterID, stats.Weapon)
		if err != nil {
			c.logger.Warn("weapon lookup failed",
				zap.String("character", characterID),
				zap.String("item", stats.Weapon),
				zap.Error(err),
			)
		} else if held {
			bonus = stats.WeaponBonus
		}
	}

	dmg := stats.Base + p.Level + p.Strength/4 + bonus
	if c.formula != nil {
		scripted, err := c.formula.DamagePerHit(scripting.DamageInputs{
			Class:       p.Class,
			Level:       p.Level,
			Strength:    p.Strength,
			Dexterity:   p.Dexterity,
			WeaponBonus: bonus,
		})
		if err != nil {
			c.logger.Warn("damage formula failed; using built-in",
				zap.String("character", characterID),
				zap.Error(err),
			)
		} else {
			dmg = scripted
		}
	}

	if dmg < 1 {
		dmg = 1
	}
	return dmg, nil
}
