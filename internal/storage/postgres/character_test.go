package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/storage/postgres"
	"github.com/cory-johannsen/skirmish/internal/testutil"
)

func uniqueID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func TestCharacterRepository(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewCharacterRepository(pool)
	ctx := context.Background()

	t.Run("CombatProfile", func(t *testing.T) {
		id := uniqueID("zara")
		want := character.Profile{ID: id, Class: "warrior", Level: 3, Strength: 14, Dexterity: 11}
		require.NoError(t, repo.Upsert(ctx, want, "Zara"))

		got, err := repo.CombatProfile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("CombatProfileNotFound", func(t *testing.T) {
		_, err := repo.CombatProfile(ctx, "nobody")
		assert.ErrorIs(t, err, postgres.ErrCharacterNotFound)
	})

	t.Run("UpsertOverwrites", func(t *testing.T) {
		id := uniqueID("kel")
		require.NoError(t, repo.Upsert(ctx, character.Profile{ID: id, Class: "rogue", Level: 1, Strength: 8}, "Kel"))
		require.NoError(t, repo.Upsert(ctx, character.Profile{ID: id, Class: "rogue", Level: 5, Strength: 12}, "Kel"))

		got, err := repo.CombatProfile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Level)
		assert.Equal(t, 12, got.Strength)
	})

	t.Run("HasItem", func(t *testing.T) {
		id := uniqueID("bram")
		require.NoError(t, repo.Upsert(ctx, character.Profile{ID: id, Class: "warrior", Level: 1}, "Bram"))

		held, err := repo.HasItem(ctx, id, "iron_sword")
		require.NoError(t, err)
		assert.False(t, held)

		require.NoError(t, repo.SetItemQuantity(ctx, id, "iron_sword", 1))
		held, err = repo.HasItem(ctx, id, "iron_sword")
		require.NoError(t, err)
		assert.True(t, held)

		require.NoError(t, repo.SetItemQuantity(ctx, id, "iron_sword", 0))
		held, err = repo.HasItem(ctx, id, "iron_sword")
		require.NoError(t, err)
		assert.False(t, held, "a zero stack is not held")
	})

	t.Run("FeedsCalculator", func(t *testing.T) {
		id := uniqueID("tamsin")
		require.NoError(t, repo.Upsert(ctx, character.Profile{ID: id, Class: "warrior", Level: 2, Strength: 16}, "Tamsin"))
		require.NoError(t, repo.SetItemQuantity(ctx, id, "iron_sword", 1))

		calc := character.NewCalculator(repo, repo, zap.NewNop())
		dmg, err := calc.DamagePerHit(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 6+2+4+4, dmg)
	})

	t.Run("PropertyRoundTrip", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			p := character.Profile{
				ID:        uniqueID("prop"),
				Class:     rapid.SampledFrom([]string{"warrior", "rogue", "mage"}).Draw(rt, "class"),
				Level:     rapid.IntRange(1, 60).Draw(rt, "level"),
				Strength:  rapid.IntRange(1, 30).Draw(rt, "str"),
				Dexterity: rapid.IntRange(1, 30).Draw(rt, "dex"),
			}
			require.NoError(rt, repo.Upsert(ctx, p, "Prop"))
			got, err := repo.CombatProfile(ctx, p.ID)
			require.NoError(rt, err)
			assert.Equal(rt, p, got)
		})
	})
}

func TestPool_HealthAndStats(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	ctx := context.Background()

	require.NoError(t, pc.Pool.Health(ctx, 5*time.Second))
	stats := pc.Pool.Stats()
	assert.GreaterOrEqual(t, stats.Total, stats.Acquired+stats.Idle)

	pool, err := postgres.NewPool(ctx, pc.Config)
	require.NoError(t, err)
	pool.Close()

	bad := pc.Config
	bad.Port = 1
	_, err = postgres.NewPool(ctx, bad)
	assert.Error(t, err)
}
