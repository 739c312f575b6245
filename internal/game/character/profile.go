// Package character derives combat stats for a joined player from the
// external character and inventory collaborators.
package character

import "context"

// Profile is the subset of a persisted character that drives combat stats.
type Profile struct {
	ID        string
	Class     string
	Level     int
	Strength  int
	Dexterity int
}

// CharacterProvider looks up combat profiles.
type CharacterProvider interface {
	// CombatProfile returns the profile for characterID.
	//
	// Postcondition: Returns an error wrapping a not-found sentinel when the
	// character does not exist.
	CombatProfile(ctx context.Context, characterID string) (Profile, error)
}

// InventoryProvider answers item possession queries.
type InventoryProvider interface {
	// HasItem reports whether characterID holds at least one itemID.
	HasItem(ctx context.Context, characterID, itemID string) (bool, error)
}

// ClassStats is the per-class damage configuration.
type ClassStats struct {
	// Base is the class's flat base damage.
	Base int
	// Weapon is the signature weapon item id that grants WeaponBonus when held.
	Weapon string
	// WeaponBonus is the flat bonus for holding Weapon.
	WeaponBonus int
}

// DefaultClasses is the built-in class table.
var DefaultClasses = map[string]ClassStats{
	"warrior": {Base: 6, Weapon: "iron_sword", WeaponBonus: 4},
	"rogue":   {Base: 5, Weapon: "dagger", WeaponBonus: 3},
	"ranger":  {Base: 5, Weapon: "short_bow", WeaponBonus: 3},
	"mage":    {Base: 3, Weapon: "oak_staff", WeaponBonus: 2},
}

// fallbackClass applies to classes missing from the table.
var fallbackClass = ClassStats{Base: 4}
