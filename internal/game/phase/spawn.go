package phase

import (
	"time"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// EnsureSpawns refills the phase from zc's spawn rules and returns the mobs
// it placed.
//
// Rules are taken in listed order. Each rule places at most
// Budget - (live count of its template) mobs, one at a time, at
// Slots[cursor % len(Slots)], advancing its template's cursor per placement.
// Placement stops as soon as the phase budget is reached.
//
// A phase holding more mobs than its budget is trimmed first, see TrimToBudget.
//
// Precondition: zc must be non-nil.
// Postcondition: no-op when the phase is full or gated at now; otherwise
// len(p.Mobs()) <= p.Budget.
func (p *Phase) EnsureSpawns(zc *content.ZoneContent, now time.Time) []*Mob {
	p.TrimToBudget()
	if len(p.mobs) >= p.Budget {
		return nil
	}
	if p.gated(now) {
		return nil
	}

	var spawned []*Mob
	for _, rule := range zc.RulesFor(p.Category) {
		if len(p.mobs) >= p.Budget {
			break
		}
		tmpl, ok := zc.Template(rule.TemplateID)
		if !ok {
			continue
		}
		remaining := rule.Budget - p.countTemplate(rule.TemplateID)
		for remaining > 0 && len(p.mobs) < p.Budget {
			m := NewMob(tmpl, p.nextSlot(rule))
			p.addMob(m)
			spawned = append(spawned, m)
			remaining--
		}
	}
	return spawned
}

// nextSlot returns the round-robin slot for rule's template and advances its cursor.
func (p *Phase) nextSlot(rule content.SpawnRule) int {
	if len(rule.Slots) == 0 {
		return 0
	}
	cursor := p.cursors[rule.TemplateID]
	p.cursors[rule.TemplateID] = cursor + 1
	return rule.Slots[cursor%len(rule.Slots)]
}
