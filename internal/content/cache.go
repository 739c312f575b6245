package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ErrNoProvider is returned by Ensure when the cache has nothing to load from.
var ErrNoProvider = errors.New("content: no provider configured")

// Cache lazily loads and holds the content of one zone.
// All methods are safe for concurrent use.
//
// Invariant: once a load succeeds the stored content never changes.
// Failed loads are not remembered; the next Ensure retries.
type Cache struct {
	zoneID   string
	provider Provider
	logger   *zap.Logger

	group singleflight.Group
	mu    sync.RWMutex
	data  *ZoneContent
}

// NewCache creates an empty Cache for zoneID.
//
// Precondition: zoneID must be non-empty. provider may be nil, in which case
// every Ensure fails with ErrNoProvider and Current serves the defaults.
func NewCache(zoneID string, provider Provider, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{zoneID: zoneID, provider: provider, logger: logger}
}

// Loaded returns the content if a load has succeeded.
func (c *Cache) Loaded() (*ZoneContent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data, c.data != nil
}

// Current returns the loaded content, or the synthesized defaults when no
// load has succeeded yet.
//
// Postcondition: Returns a non-nil ZoneContent.
func (c *Cache) Current() *ZoneContent {
	if zc, ok := c.Loaded(); ok {
		return zc
	}
	return Default(c.zoneID)
}

// Ensure returns the zone content, loading it on first use. Concurrent callers
// share one in-flight load. The load keeps ctx's values but not its
// cancellation, so a caller giving up does not fail the others; each caller
// stops waiting when its own ctx is done.
//
// Postcondition: Returns the loaded content, or a non-nil error; on error the
// cache remains empty unless the shared load later succeeds.
func (c *Cache) Ensure(ctx context.Context) (*ZoneContent, error) {
	if zc, ok := c.Loaded(); ok {
		return zc, nil
	}
	if c.provider == nil {
		return nil, ErrNoProvider
	}
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(c.zoneID, func() (any, error) {
		if zc, ok := c.Loaded(); ok {
			return zc, nil
		}
		zc, err := c.fetch(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.data = zc
		c.mu.Unlock()
		c.logger.Info("zone content loaded",
			zap.String("zone", c.zoneID),
			zap.Int("templates", len(zc.Templates)),
			zap.Int("rules", len(zc.Rules)),
			zap.Int("drop_tables", len(zc.DropTables)),
		)
		return zc, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*ZoneContent), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetch queries the three provider lookups concurrently and assembles them.
func (c *Cache) fetch(ctx context.Context) (*ZoneContent, error) {
	var (
		templates []EnemyTemplate
		rules     []SpawnRule
		tables    []DropTable
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		templates, err = c.provider.Templates(gctx, c.zoneID)
		if err != nil {
			return fmt.Errorf("loading templates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rules, err = c.provider.SpawnRules(gctx, c.zoneID)
		if err != nil {
			return fmt.Errorf("loading spawn rules: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tables, err = c.provider.DropTables(gctx, c.zoneID)
		if err != nil {
			return fmt.Errorf("loading drop tables: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("zone %q: %w", c.zoneID, err)
	}
	return NewZoneContent(c.zoneID, templates, rules, tables)
}
