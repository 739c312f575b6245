package character_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

var errMissing = errors.New("character not found")

type fakeChars map[string]character.Profile

func (f fakeChars) CombatProfile(_ context.Context, id string) (character.Profile, error) {
	p, ok := f[id]
	if !ok {
		return character.Profile{}, errMissing
	}
	return p, nil
}

type fakeInventory struct {
	held map[string]bool
	err  error
}

func (f fakeInventory) HasItem(_ context.Context, id, item string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.held[id+"/"+item], nil
}

type fixedFormula struct {
	value int
	err   error
	got   scripting.DamageInputs
}

func (f *fixedFormula) DamagePerHit(in scripting.DamageInputs) (int, error) {
	f.got = in
	return f.value, f.err
}

func chars() fakeChars {
	return fakeChars{
		"p1": {ID: "p1", Class: "warrior", Level: 3, Strength: 14, Dexterity: 10},
		"p2": {ID: "p2", Class: "bard", Level: 1, Strength: 2},
	}
}

func TestDamagePerHit_WithoutWeapon(t *testing.T) {
	c := character.NewCalculator(chars(), fakeInventory{}, zaptest.NewLogger(t))
	got, err := c.DamagePerHit(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 6+3+3, got)
}

func TestDamagePerHit_WeaponBonus(t *testing.T) {
	inv := fakeInventory{held: map[string]bool{"p1/iron_sword": true}}
	c := character.NewCalculator(chars(), inv, zap.NewNop())
	got, err := c.DamagePerHit(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 16, got)
}

func TestDamagePerHit_UnknownClassUsesFallback(t *testing.T) {
	c := character.NewCalculator(chars(), nil, zap.NewNop())
	got, err := c.DamagePerHit(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, 4+1+0, got)
}

func TestDamagePerHit_ProfileError(t *testing.T) {
	c := character.NewCalculator(chars(), nil, zap.NewNop())
	_, err := c.DamagePerHit(context.Background(), "ghost")
	assert.ErrorIs(t, err, errMissing)
}

func TestDamagePerHit_InventoryErrorLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := character.NewCalculator(chars(), fakeInventory{err: errors.New("db down")}, zap.New(core))
	got, err := c.DamagePerHit(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 12, got)
	assert.Equal(t, 1, logs.FilterMessage("weapon lookup failed").Len())
}

func TestDamagePerHit_FormulaOverrides(t *testing.T) {
	inv := fakeInventory{held: map[string]bool{"p1/iron_sword": true}}
	f := &fixedFormula{value: 42}
	c := character.NewCalculator(chars(), inv, zap.NewNop(), character.WithFormula(f))
	got, err := c.DamagePerHit(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, scripting.DamageInputs{Class: "warrior", Level: 3, Strength: 14, Dexterity: 10, WeaponBonus: 4}, f.got)
}

func TestDamagePerHit_FormulaFailureFallsBack(t *testing.T) {
	f := &fixedFormula{err: errors.New("lua error")}
	c := character.NewCalculator(chars(), nil, zap.NewNop(), character.WithFormula(f))
	got, err := c.DamagePerHit(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestDamagePerHit_FloorIsOne(t *testing.T) {
	f := &fixedFormula{value: -7}
	c := character.NewCalculator(chars(), nil, zap.NewNop(), character.WithFormula(f))
	got, err := c.DamagePerHit(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestProperty_DamageAtLeastOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := character.Profile{
			ID:       "x",
			Class:    rapid.SampledFrom([]string{"warrior", "rogue", "mage", "ranger", "unknown"}).Draw(rt, "class"),
			Level:    rapid.IntRange(-50, 50).Draw(rt, "level"),
			Strength: rapid.IntRange(-50, 50).Draw(rt, "str"),
		}
		c := character.NewCalculator(fakeChars{"x": p}, nil, zap.NewNop(),
			character.WithClasses(character.DefaultClasses))
		got, err := c.DamagePerHit(context.Background(), "x")
		require.NoError(rt, err)
		assert.GreaterOrEqual(rt, got, 1)
	})
}
