package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// ContentRepository stores zone content. It implements content.Provider.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a ContentRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// zoneExists returns content.ErrZoneNotFound if zoneID has no row.
func (r *ContentRepository) zoneExists(ctx context.Context, zoneID string) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM zones WHERE id = $1)`, zoneID).Scan(&exists); err != nil {
		return fmt.Errorf("querying zone %q: %w", zoneID, err)
	}
	if !exists {
		return fmt.Errorf("zone %q: %w", zoneID, content.ErrZoneNotFound)
	}
	return nil
}

// Templates returns the enemy templates of zoneID ordered by id.
//
// Postcondition: Returns content.ErrZoneNotFound for an unknown zone.
func (r *ContentRepository) Templates(ctx context.Context, zoneID string) ([]content.EnemyTemplate, error) {
	if err := r.zoneExists(ctx, zoneID); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, name, level, max_health, exp_base, gold_min, gold_max, drop_table_id
		FROM enemy_templates WHERE zone_id = $1 ORDER BY id`,
		zoneID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var out []content.EnemyTemplate
	for rows.Next() {
		var t content.EnemyTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Level, &t.MaxHealth, &t.ExpBase, &t.GoldMin, &t.GoldMax, &t.DropTableID); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SpawnRules returns the spawn rules of zoneID in listed order.
//
// Postcondition: Returns content.ErrZoneNotFound for an unknown zone.
func (r *ContentRepository) SpawnRules(ctx context.Context, zoneID string) ([]content.SpawnRule, error) {
	if err := r.zoneExists(ctx, zoneID); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `
		SELECT template_id, budget, respawn_ms, slots, category
		FROM spawn_rules WHERE zone_id = $1 ORDER BY position`,
		zoneID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying spawn rules: %w", err)
	}
	defer rows.Close()

	var out []content.SpawnRule
	for rows.Next() {
		var (
			rule     content.SpawnRule
			slots    []int32
			category string
		)
		if err := rows.Scan(&rule.TemplateID, &rule.Budget, &rule.RespawnMs, &slots, &category); err != nil {
			return nil, fmt.Errorf("scanning spawn rule: %w", err)
		}
		rule.Category = content.Category(category)
		rule.Slots = make([]int, len(slots))
		for i, s := range slots {
			rule.Slots[i] = int(s)
		}
		out = append(out, rule)
	}
	return out, rows.Err()
}

// DropTables returns the drop tables of zoneID with entries in listed order.
//
// Postcondition: Returns content.ErrZoneNotFound for an unknown zone.
func (r *ContentRepository) DropTables(ctx context.Context, zoneID string) ([]content.DropTable, error) {
	if err := r.zoneExists(ctx, zoneID); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `
		SELECT t.id, e.item_id, e.weight, e.min_qty, e.max_qty
		FROM drop_tables t
		LEFT JOIN drop_entries e ON e.zone_id = t.zone_id AND e.table_id = t.id
		WHERE t.zone_id = $1
		ORDER BY t.id, e.position`,
		zoneID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying drop tables: %w", err)
	}
	defer rows.Close()

	var out []content.DropTable
	for rows.Next() {
		var (
			tableID                string
			itemID                 *string
			weight, minQty, maxQty *int
		)
		if err := rows.Scan(&tableID, &itemID, &weight, &minQty, &maxQty); err != nil {
			return nil, fmt.Errorf("scanning drop entry: %w", err)
		}
		if len(out) == 0 || out[len(out)-1].ID != tableID {
			out = append(out, content.DropTable{ID: tableID})
		}
		if itemID == nil {
			continue
		}
		last := &out[len(out)-1]
		last.Entries = append(last.Entries, content.DropEntry{
			ItemID: *itemID,
			Weight: *weight,
			MinQty: *minQty,
			MaxQty: *maxQty,
		})
	}
	return out, rows.Err()
}

// SaveZone replaces all stored content of zf.Zone in one transaction.
//
// Precondition: zf must describe valid content (see content.NewZoneContent).
// Postcondition: on error nothing is changed.
func (r *ContentRepository) SaveZone(ctx context.Context, zf content.ZoneFile) error {
	if _, err := content.NewZoneContent(zf.Zone, zf.Templates, zf.SpawnRules, zf.DropTables); err != nil {
		return fmt.Errorf("validating zone %q: %w", zf.Zone, err)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM zones WHERE id = $1`, zf.Zone); err != nil {
			return fmt.Errorf("clearing zone %q: %w", zf.Zone, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO zones (id) VALUES ($1)`, zf.Zone); err != nil {
			return fmt.Errorf("inserting zone %q: %w", zf.Zone, err)
		}

		batch := &pgx.Batch{}
		for _, dt := range zf.DropTables {
			batch.Queue(`INSERT INTO drop_tables (zone_id, id) VALUES ($1, $2)`, zf.Zone, dt.ID)
			for i, e := range dt.Entries {
				batch.Queue(`
					INSERT INTO drop_entries (zone_id, table_id, position, item_id, weight, min_qty, max_qty)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					zf.Zone, dt.ID, i, e.ItemID, e.Weight, e.MinQty, e.MaxQty)
			}
		}
		for _, t := range zf.Templates {
			batch.Queue(`
				INSERT INTO enemy_templates (zone_id, id, name, level, max_health, exp_base, gold_min, gold_max, drop_table_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				zf.Zone, t.ID, t.Name, t.Level, t.MaxHealth, t.ExpBase, t.GoldMin, t.GoldMax, t.DropTableID)
		}
		for i, rule := range zf.SpawnRules {
			slots := make([]int32, len(rule.Slots))
			for j, s := range rule.Slots {
				slots[j] = int32(s)
			}
			batch.Queue(`
				INSERT INTO spawn_rules (zone_id, position, template_id, budget, respawn_ms, slots, category)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				zf.Zone, i, rule.TemplateID, rule.Budget, rule.RespawnMs, slots, string(rule.Category))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("writing zone %q: %w", zf.Zone, err)
		}
		return nil
	})
}
