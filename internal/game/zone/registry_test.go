package zone_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/skirmish/internal/game/zone"
)

func TestRegistry_LookupOrCreate(t *testing.T) {
	g := zone.NewRegistry(slimeProvider(), testZoneConfig(), zaptest.NewLogger(t))
	t.Cleanup(g.Close)

	_, ok := g.Lookup("meadow")
	assert.False(t, ok)

	a := g.Room("meadow")
	b := g.Room("meadow")
	assert.Same(t, a, b)
	assert.Equal(t, "meadow", a.ZoneID())

	g.Room("caves")
	assert.Equal(t, []string{"caves", "meadow"}, g.Zones())

	got, ok := g.Lookup("caves")
	require.True(t, ok)
	assert.Equal(t, "caves", got.ZoneID())
}

func TestRegistry_ConcurrentRoom(t *testing.T) {
	g := zone.NewRegistry(nil, testZoneConfig(), nil)
	t.Cleanup(g.Close)

	rooms := make([]*zone.Room, 32)
	var wg sync.WaitGroup
	for i := range rooms {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rooms[i] = g.Room("meadow")
		}(i)
	}
	wg.Wait()
	for _, r := range rooms {
		assert.Same(t, rooms[0], r)
	}
}

func TestRegistry_CloseStopsTickers(t *testing.T) {
	g := zone.NewRegistry(slimeProvider(), testZoneConfig(), nil, zone.WithStats(fixedStats{dmg: 9}))
	r := g.Room("meadow")
	r.Join("p1")
	require.True(t, r.Ticking())

	g.Close()
	assert.False(t, r.Ticking())

	sess, ok := r.Session("p1")
	require.True(t, ok)
	assert.Equal(t, 9, sess.DamagePerHit, "Close waits for the stat recompute")
}
