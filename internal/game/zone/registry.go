package zone

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/content"
)

// Registry maps zone ids to rooms, creating rooms on first use.
// Rooms live until Close.
type Registry struct {
	provider content.Provider
	cfg      config.ZoneConfig
	logger   *zap.Logger
	opts     []Option

	mu    sync.Mutex
	rooms map[string]*Room
}

// NewRegistry creates an empty Registry. Every room it creates loads content
// from provider and receives opts.
//
// Precondition: provider may be nil, in which case rooms serve default content.
func NewRegistry(provider content.Provider, cfg config.ZoneConfig, logger *zap.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		opts:     opts,
		rooms:    make(map[string]*Room),
	}
}

// Room returns the room for zoneID, creating it if needed.
//
// Precondition: zoneID must be non-empty.
func (g *Registry) Room(zoneID string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.rooms[zoneID]; ok {
		return r
	}
	cache := content.NewCache(zoneID, g.provider, g.logger)
	opts := append([]Option{WithLogger(g.logger)}, g.opts...)
	r := NewRoom(zoneID, cache, g.cfg, opts...)
	g.rooms[zoneID] = r
	g.logger.Info("zone room created", zap.String("zone", zoneID))
	return r
}

// Lookup returns the room for zoneID without creating it.
func (g *Registry) Lookup(zoneID string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rooms[zoneID]
	return r, ok
}

// Zones returns the ids of every created room in sorted order.
func (g *Registry) Zones() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.rooms))
	for id := range g.rooms {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Close stops every room's ticker and waits for its background work.
func (g *Registry) Close() {
	g.mu.Lock()
	rooms := make([]*Room, 0, len(g.rooms))
	for _, r := range g.rooms {
		rooms = append(rooms, r)
	}
	g.mu.Unlock()

	for _, r := range rooms {
		r.Close()
	}
	g.logger.Info("zone registry closed", zap.Int("rooms", len(rooms)))
}
