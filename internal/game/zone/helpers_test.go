package zone_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/zone"
)

var errStore = errors.New("store unavailable")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// staticProvider serves one fixed zone.
type staticProvider struct {
	templates []content.EnemyTemplate
	rules     []content.SpawnRule
	tables    []content.DropTable
	err       error
}

func (p *staticProvider) Templates(context.Context, string) ([]content.EnemyTemplate, error) {
	return p.templates, p.err
}

func (p *staticProvider) SpawnRules(context.Context, string) ([]content.SpawnRule, error) {
	return p.rules, p.err
}

func (p *staticProvider) DropTables(context.Context, string) ([]content.DropTable, error) {
	return p.tables, p.err
}

func slimeProvider() *staticProvider {
	return &staticProvider{
		templates: []content.EnemyTemplate{{
			ID: "slime", Name: "Slime", Level: 1, MaxHealth: 30, ExpBase: 20,
			GoldMin: 1, GoldMax: 3, DropTableID: "slime_drops",
		}},
		rules: []content.SpawnRule{{TemplateID: "slime", Budget: 2, RespawnMs: 1000, Slots: []int{100, 200}}},
		tables: []content.DropTable{{ID: "slime_drops", Entries: []content.DropEntry{
			{ItemID: "slime_gel", Weight: 1, MinQty: 1, MaxQty: 2},
		}}},
	}
}

type fixedStats struct {
	dmg int
	err error
}

func (s fixedStats) DamagePerHit(context.Context, string) (int, error) {
	return s.dmg, s.err
}

// testZoneConfig keeps the real ticker from firing during a test; tests call
// Tick directly.
func testZoneConfig() config.ZoneConfig {
	cfg := config.DefaultZoneConfig()
	cfg.TickInterval = time.Hour
	return cfg
}

func newRoom(t *testing.T, provider content.Provider, opts ...zone.Option) (*zone.Room, *fakeClock) {
	t.Helper()
	return newRoomWithConfig(t, provider, testZoneConfig(), opts...)
}

func newRoomWithConfig(t *testing.T, provider content.Provider, cfg config.ZoneConfig, opts ...zone.Option) (*zone.Room, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	cache := content.NewCache("meadow", provider, zaptest.NewLogger(t))
	all := append([]zone.Option{zone.WithClock(clock.Now), zone.WithLogger(zaptest.NewLogger(t))}, opts...)
	r := zone.NewRoom("meadow", cache, cfg, all...)
	t.Cleanup(r.Close)
	return r, clock
}

func intp(v int) *int { return &v }
