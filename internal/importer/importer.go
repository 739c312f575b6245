// Package importer copies zone content from YAML files into a content store.
package importer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// Sink stores one zone's content, replacing whatever was there.
type Sink interface {
	SaveZone(ctx context.Context, zf content.ZoneFile) error
}

// Importer orchestrates content import from a Source to a Sink.
type Importer struct {
	source Source
	sink   Sink
	logger *zap.Logger
}

// New constructs an Importer.
//
// Precondition: source and sink must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source, sink Sink, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{source: source, sink: sink, logger: logger}
}

// Run loads every zone from the source, validates each, and saves it.
// Validation of all zones happens before the first save so a bad file leaves
// the store untouched.
//
// Postcondition: returns the ids of the saved zones in load order, or an error.
func (imp *Importer) Run(ctx context.Context) ([]string, error) {
	overall := time.Now()

	zones, err := imp.source.Load()
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}
	seen := make(map[string]bool, len(zones))
	for _, zf := range zones {
		if seen[zf.Zone] {
			return nil, fmt.Errorf("zone %q defined more than once", zf.Zone)
		}
		seen[zf.Zone] = true
		if _, err := content.NewZoneContent(zf.Zone, zf.Templates, zf.SpawnRules, zf.DropTables); err != nil {
			return nil, fmt.Errorf("zone %q failed validation: %w", zf.Zone, err)
		}
	}

	saved := make([]string, 0, len(zones))
	for _, zf := range zones {
		t0 := time.Now()
		if err := imp.sink.SaveZone(ctx, *zf); err != nil {
			return saved, fmt.Errorf("saving zone %q: %w", zf.Zone, err)
		}
		saved = append(saved, zf.Zone)
		imp.logger.Info("zone imported",
			zap.String("zone", zf.Zone),
			zap.Int("templates", len(zf.Templates)),
			zap.Int("spawn_rules", len(zf.SpawnRules)),
			zap.Int("drop_tables", len(zf.DropTables)),
			zap.Duration("elapsed", time.Since(t0)),
		)
	}

	imp.logger.Info("import complete",
		zap.Int("zones", len(saved)),
		zap.Duration("total", time.Since(overall)),
	)
	return saved, nil
}
