// Package content holds the read-only zone definitions consumed by the combat
// coordinator: enemy templates, spawn rules, and drop tables.
package content

import (
	"fmt"
	"time"
)

// Category classifies a phase and the spawn rules that apply to it.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryParty    Category = "party"
	CategoryEvent    Category = "event"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryParty, CategoryEvent:
		return true
	}
	return false
}

// EnemyTemplate is the immutable definition a Mob is spawned from.
type EnemyTemplate struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	MaxHealth   int    `yaml:"max_health"`
	ExpBase     int    `yaml:"exp_base"`
	GoldMin     int    `yaml:"gold_min"`
	GoldMax     int    `yaml:"gold_max"`
	DropTableID string `yaml:"drop_table"`
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty, Level >= 1,
// MaxHealth >= 1, ExpBase >= 0, and 0 <= GoldMin <= GoldMax.
func (t EnemyTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("enemy template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("enemy template %q: name must not be empty", t.ID)
	}
	if t.Level < 1 {
		return fmt.Errorf("enemy template %q: level must be >= 1", t.ID)
	}
	if t.MaxHealth < 1 {
		return fmt.Errorf("enemy template %q: max_health must be >= 1", t.ID)
	}
	if t.ExpBase < 0 {
		return fmt.Errorf("enemy template %q: exp_base must be >= 0", t.ID)
	}
	if t.GoldMin < 0 || t.GoldMin > t.GoldMax {
		return fmt.Errorf("enemy template %q: gold range [%d, %d] is invalid", t.ID, t.GoldMin, t.GoldMax)
	}
	return nil
}

// SpawnRule describes how one template populates phases of one category.
//
// Invariant: Budget >= 0; len(Slots) >= 1.
type SpawnRule struct {
	TemplateID string   `yaml:"template"`
	Budget     int      `yaml:"budget"`
	RespawnMs  int      `yaml:"respawn_ms"`
	Slots      []int    `yaml:"slots"`
	Category   Category `yaml:"category"`
}

// RespawnDelay returns RespawnMs as a duration.
func (r SpawnRule) RespawnDelay() time.Duration {
	return time.Duration(r.RespawnMs) * time.Millisecond
}

// Validate checks that the rule satisfies its invariants.
func (r SpawnRule) Validate() error {
	if r.TemplateID == "" {
		return fmt.Errorf("spawn rule: template must not be empty")
	}
	if r.Budget < 0 {
		return fmt.Errorf("spawn rule %q: budget must be >= 0, got %d", r.TemplateID, r.Budget)
	}
	if r.RespawnMs < 0 {
		return fmt.Errorf("spawn rule %q: respawn_ms must be >= 0, got %d", r.TemplateID, r.RespawnMs)
	}
	if len(r.Slots) == 0 {
		return fmt.Errorf("spawn rule %q: slots must not be empty", r.TemplateID)
	}
	if r.Category != "" && !r.Category.Valid() {
		return fmt.Errorf("spawn rule %q: unknown category %q", r.TemplateID, r.Category)
	}
	return nil
}

// DropEntry is one weighted loot row.
type DropEntry struct {
	ItemID string `yaml:"item"`
	Weight int    `yaml:"weight"`
	MinQty int    `yaml:"min_qty"`
	MaxQty int    `yaml:"max_qty"`
}

// DropTable is an ordered list of weighted entries.
type DropTable struct {
	ID      string      `yaml:"id"`
	Entries []DropEntry `yaml:"entries"`
}

// TotalWeight returns the sum of all positive entry weights.
func (d DropTable) TotalWeight() int {
	total := 0
	for _, e := range d.Entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	return total
}

// Validate checks every entry of the table.
//
// Postcondition: Returns nil iff ID is non-empty and every entry has a
// non-empty item id and 1 <= MinQty <= MaxQty. Non-positive weights are
// allowed and never selected.
func (d DropTable) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("drop table: id must not be empty")
	}
	for i, e := range d.Entries {
		if e.ItemID == "" {
			return fmt.Errorf("drop table %q: entry[%d] must have a non-empty item id", d.ID, i)
		}
		if e.MinQty < 1 {
			return fmt.Errorf("drop table %q: entry[%d] min_qty must be >= 1, got %d", d.ID, i, e.MinQty)
		}
		if e.MinQty > e.MaxQty {
			return fmt.Errorf("drop table %q: entry[%d] min_qty (%d) must be <= max_qty (%d)", d.ID, i, e.MinQty, e.MaxQty)
		}
	}
	return nil
}

// ZoneContent is the immutable content snapshot for one zone.
type ZoneContent struct {
	ZoneID     string
	Templates  map[string]EnemyTemplate
	Rules      []SpawnRule
	DropTables map[string]DropTable
}

// NewZoneContent assembles and validates a ZoneContent.
//
// Postcondition: Returns an error if any template, rule, or table is invalid,
// or if a rule or template references an unknown template or drop table.
func NewZoneContent(zoneID string, templates []EnemyTemplate, rules []SpawnRule, tables []DropTable) (*ZoneContent, error) {
	zc := &ZoneContent{
		ZoneID:     zoneID,
		Templates:  make(map[string]EnemyTemplate, len(templates)),
		Rules:      append([]SpawnRule(nil), rules...),
		DropTables: make(map[string]DropTable, len(tables)),
	}
	for _, dt := range tables {
		if err := dt.Validate(); err != nil {
			return nil, err
		}
		zc.DropTables[dt.ID] = dt
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if t.DropTableID != "" {
			if _, ok := zc.DropTables[t.DropTableID]; !ok {
				return nil, fmt.Errorf("enemy template %q: unknown drop table %q", t.ID, t.DropTableID)
			}
		}
		zc.Templates[t.ID] = t
	}
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, ok := zc.Templates[r.TemplateID]; !ok {
			return nil, fmt.Errorf("spawn rule references unknown template %q", r.TemplateID)
		}
	}
	return zc, nil
}

// Template returns the template with the given id. The synthesized default
// template is always resolvable so the default rule can spawn.
func (z *ZoneContent) Template(id string) (EnemyTemplate, bool) {
	if t, ok := z.Templates[id]; ok {
		return t, true
	}
	if id == DefaultTemplateID {
		return DefaultTemplate(), true
	}
	return EnemyTemplate{}, false
}

// DropTable returns the drop table with the given id.
func (z *ZoneContent) DropTable(id string) (DropTable, bool) {
	dt, ok := z.DropTables[id]
	return dt, ok
}

// RulesFor selects the spawn rules applying to a phase of category c: the
// rules tagged with c, else every rule of the zone, else the synthesized
// default rule.
//
// Postcondition: Returns a non-empty slice in listed order.
func (z *ZoneContent) RulesFor(c Category) []SpawnRule {
	var matched []SpawnRule
	for _, r := range z.Rules {
		if r.Category == c {
			matched = append(matched, r)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	if len(z.Rules) > 0 {
		return z.Rules
	}
	return []SpawnRule{DefaultRule()}
}

// RespawnFor returns the respawn delay of the first rule for templateID among
// the rules selected for category c, falling back to the default rule's delay.
func (z *ZoneContent) RespawnFor(c Category, templateID string) time.Duration {
	for _, r := range z.RulesFor(c) {
		if r.TemplateID == templateID {
			return r.RespawnDelay()
		}
	}
	return DefaultRule().RespawnDelay()
}
