package postgres_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/storage/postgres"
	"github.com/cory-johannsen/skirmish/internal/testutil"
)

func meadowZone() content.ZoneFile {
	return content.ZoneFile{
		Zone: "meadow",
		Templates: []content.EnemyTemplate{
			{ID: "slime", Name: "Slime", Level: 1, MaxHealth: 30, ExpBase: 20, GoldMin: 1, GoldMax: 3, DropTableID: "slime_drops"},
			{ID: "wolf", Name: "Wolf", Level: 3, MaxHealth: 60, ExpBase: 45},
		},
		SpawnRules: []content.SpawnRule{
			{TemplateID: "slime", Budget: 2, RespawnMs: 1000, Slots: []int{100, 200}, Category: content.CategoryPersonal},
			{TemplateID: "wolf", Budget: 3, RespawnMs: 4000, Slots: []int{150, 250, 350}, Category: content.CategoryParty},
		},
		DropTables: []content.DropTable{
			{ID: "empty_table"},
			{ID: "slime_drops", Entries: []content.DropEntry{
				{ItemID: "slime_gel", Weight: 8, MinQty: 1, MaxQty: 3},
				{ItemID: "slime_core", Weight: 2, MinQty: 1, MaxQty: 1},
			}},
		},
	}
}

func TestContentRepository(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewContentRepository(pool)
	ctx := context.Background()
	zf := meadowZone()
	require.NoError(t, repo.SaveZone(ctx, zf))

	t.Run("Templates", func(t *testing.T) {
		got, err := repo.Templates(ctx, "meadow")
		require.NoError(t, err)
		assert.Equal(t, zf.Templates, got)
	})

	t.Run("SpawnRulesKeepOrder", func(t *testing.T) {
		got, err := repo.SpawnRules(ctx, "meadow")
		require.NoError(t, err)
		assert.Equal(t, zf.SpawnRules, got)
	})

	t.Run("DropTables", func(t *testing.T) {
		got, err := repo.DropTables(ctx, "meadow")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "empty_table", got[0].ID)
		assert.Empty(t, got[0].Entries)
		assert.Equal(t, zf.DropTables[1], got[1])
	})

	t.Run("UnknownZone", func(t *testing.T) {
		_, err := repo.Templates(ctx, "atlantis")
		assert.ErrorIs(t, err, content.ErrZoneNotFound)
		_, err = repo.SpawnRules(ctx, "atlantis")
		assert.ErrorIs(t, err, content.ErrZoneNotFound)
		_, err = repo.DropTables(ctx, "atlantis")
		assert.ErrorIs(t, err, content.ErrZoneNotFound)
	})

	t.Run("SaveZoneReplaces", func(t *testing.T) {
		smaller := meadowZone()
		smaller.Zone = "bog"
		smaller.SpawnRules = smaller.SpawnRules[:1]
		require.NoError(t, repo.SaveZone(ctx, smaller))
		smaller.Templates = smaller.Templates[:1]
		require.NoError(t, repo.SaveZone(ctx, smaller))

		got, err := repo.Templates(ctx, "bog")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("SaveZoneRejectsInvalid", func(t *testing.T) {
		bad := meadowZone()
		bad.Zone = "broken"
		bad.SpawnRules = append(bad.SpawnRules, content.SpawnRule{TemplateID: "ghost", Budget: 1, Slots: []int{1}})
		assert.Error(t, repo.SaveZone(ctx, bad))
		_, err := repo.Templates(ctx, "broken")
		assert.ErrorIs(t, err, content.ErrZoneNotFound)
	})

	t.Run("ServesCache", func(t *testing.T) {
		cache := content.NewCache("meadow", repo, zap.NewNop())
		zc, err := cache.Ensure(ctx)
		require.NoError(t, err)
		assert.Len(t, zc.RulesFor(content.CategoryParty), 1)
		assert.Equal(t, 10, zc.DropTables["slime_drops"].TotalWeight())
	})

	t.Run("ImportsYAMLFile", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(testutil.MigrationsDir(), "..", "content", "zones", "meadow.yaml"))
		require.NoError(t, err)
		file, err := content.ParseZoneFile(data)
		require.NoError(t, err)
		file.Zone = "meadow_from_yaml"
		require.NoError(t, repo.SaveZone(ctx, *file))

		got, err := repo.SpawnRules(ctx, "meadow_from_yaml")
		require.NoError(t, err)
		assert.Equal(t, file.SpawnRules, got)
	})
}
