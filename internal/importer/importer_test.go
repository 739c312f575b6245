package importer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/importer"
)

type memorySink struct {
	zones map[string]content.ZoneFile
	err   error
}

func (s *memorySink) SaveZone(_ context.Context, zf content.ZoneFile) error {
	if s.err != nil {
		return s.err
	}
	if s.zones == nil {
		s.zones = make(map[string]content.ZoneFile)
	}
	s.zones[zf.Zone] = zf
	return nil
}

const meadowYAML = `
zone: meadow
templates:
  - id: slime
    name: Slime
    level: 1
    max_health: 30
    exp_base: 20
spawn_rules:
  - template: slime
    budget: 2
    respawn_ms: 1000
    slots: [100, 200]
`

func writeZone(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestImporter_Run_SavesEveryZone(t *testing.T) {
	dir := t.TempDir()
	writeZone(t, dir, "meadow.yaml", meadowYAML)
	writeZone(t, dir, "cave.yaml", `
zone: cave
templates:
  - id: bat
    name: Bat
    level: 2
    max_health: 12
    exp_base: 8
`)
	writeZone(t, dir, "notes.txt", "ignored")

	sink := &memorySink{}
	saved, err := importer.New(importer.NewDirSource(dir), sink, zaptest.NewLogger(t)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cave", "meadow"}, saved)
	assert.Len(t, sink.zones["meadow"].SpawnRules, 1)
	assert.Equal(t, "Bat", sink.zones["cave"].Templates[0].Name)
}

func TestImporter_Run_ValidatesBeforeSaving(t *testing.T) {
	dir := t.TempDir()
	writeZone(t, dir, "a.yaml", meadowYAML)
	writeZone(t, dir, "b.yaml", `
zone: broken
spawn_rules:
  - template: ghost
    budget: 1
    slots: [10]
`)

	sink := &memorySink{}
	_, err := importer.New(importer.NewDirSource(dir), sink, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, sink.zones, "nothing is saved when any zone is invalid")
}

func TestImporter_Run_DuplicateZone(t *testing.T) {
	dir := t.TempDir()
	writeZone(t, dir, "a.yaml", meadowYAML)
	writeZone(t, dir, "b.yaml", meadowYAML)

	_, err := importer.New(importer.NewDirSource(dir), &memorySink{}, nil).Run(context.Background())
	assert.ErrorContains(t, err, "more than once")
}

func TestImporter_Run_SinkError(t *testing.T) {
	dir := t.TempDir()
	writeZone(t, dir, "meadow.yaml", meadowYAML)
	sinkErr := errors.New("disk full")

	_, err := importer.New(importer.NewDirSource(dir), &memorySink{err: sinkErr}, nil).Run(context.Background())
	assert.ErrorIs(t, err, sinkErr)
}

func TestDirSource_EmptyDir(t *testing.T) {
	_, err := importer.NewDirSource(t.TempDir()).Load()
	assert.Error(t, err)
}

func TestDirSource_ShippedContent(t *testing.T) {
	zones, err := importer.NewDirSource(filepath.Join("..", "..", "content", "zones")).Load()
	require.NoError(t, err)
	require.NotEmpty(t, zones)
	for _, zf := range zones {
		_, err := content.NewZoneContent(zf.Zone, zf.Templates, zf.SpawnRules, zf.DropTables)
		assert.NoError(t, err, "zone %s", zf.Zone)
	}
}

func TestPropertyImporter_SavesAllValidZones(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "zones")
		dir, err := os.MkdirTemp("", "zones")
		if err != nil {
			rt.Fatalf("tempdir: %v", err)
		}
		defer os.RemoveAll(dir)

		for i := 0; i < n; i++ {
			name := rapid.StringMatching(`[a-z]{4,8}`).Draw(rt, "name")
			body := "zone: " + name + "\n"
			if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0644); err != nil {
				rt.Fatalf("write: %v", err)
			}
		}
		files, _ := filepath.Glob(filepath.Join(dir, "*.yaml"))

		sink := &memorySink{}
		saved, err := importer.New(importer.NewDirSource(dir), sink, nil).Run(context.Background())
		if err != nil {
			rt.Fatalf("run: %v", err)
		}
		if len(saved) != len(files) || len(sink.zones) != len(files) {
			rt.Fatalf("saved %d zones, want %d", len(saved), len(files))
		}
	})
}
