package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/skirmish/internal/game/character"
)

// ErrCharacterNotFound is returned when a character lookup yields no results.
var ErrCharacterNotFound = errors.New("character not found")

// CharacterRepository reads character combat profiles and inventory.
// It implements character.CharacterProvider and character.InventoryProvider.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CombatProfile returns the combat-relevant columns of a character.
//
// Postcondition: Returns ErrCharacterNotFound if no row matches.
func (r *CharacterRepository) CombatProfile(ctx context.Context, characterID string) (character.Profile, error) {
	var p character.Profile
	err := r.db.QueryRow(ctx, `
		SELECT id, class, level, strength, dexterity
		FROM characters WHERE id = $1`,
		characterID,
	).Scan(&p.ID, &p.Class, &p.Level, &p.Strength, &p.Dexterity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return character.Profile{}, ErrCharacterNotFound
		}
		return character.Profile{}, fmt.Errorf("querying character %q: %w", characterID, err)
	}
	return p, nil
}

// HasItem reports whether the character holds at least one of itemID.
//
// Postcondition: Returns false with no error for an unknown character.
func (r *CharacterRepository) HasItem(ctx context.Context, characterID, itemID string) (bool, error) {
	var held bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM character_inventory
			WHERE character_id = $1 AND item_id = $2 AND quantity > 0
		)`,
		characterID, itemID,
	).Scan(&held)
	if err != nil {
		return false, fmt.Errorf("querying inventory of %q: %w", characterID, err)
	}
	return held, nil
}

// Upsert writes a character's combat profile.
//
// Precondition: p.ID and name must be non-empty; p.Level >= 1.
func (r *CharacterRepository) Upsert(ctx context.Context, p character.Profile, name string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO characters (id, name, class, level, strength, dexterity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			class = EXCLUDED.class,
			level = EXCLUDED.level,
			strength = EXCLUDED.strength,
			dexterity = EXCLUDED.dexterity,
			updated_at = NOW()`,
		p.ID, name, p.Class, p.Level, p.Strength, p.Dexterity,
	)
	if err != nil {
		return fmt.Errorf("upserting character %q: %w", p.ID, err)
	}
	return nil
}

// SetItemQuantity sets how many of itemID the character holds.
//
// Precondition: quantity >= 0; the character must exist.
func (r *CharacterRepository) SetItemQuantity(ctx context.Context, characterID, itemID string, quantity int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO character_inventory (character_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, item_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		characterID, itemID, quantity,
	)
	if err != nil {
		return fmt.Errorf("setting %q quantity for %q: %w", itemID, characterID, err)
	}
	return nil
}
