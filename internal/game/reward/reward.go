// Package reward settles dead mobs: experience shares, the weighted loot
// roll, and the gold roll.
package reward

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/phase"
)

// MinShare is the experience floor, as a fraction of base experience, for any
// contributor in a shared phase.
const MinShare = 0.1

// ExpReward is one player's experience award.
type ExpReward struct {
	CharacterID string
	Exp         int
}

// LootStack is one rolled item stack.
type LootStack struct {
	ItemID     string
	InstanceID string
	Quantity   int
}

// Settlement is the outcome of settling one dead mob.
type Settlement struct {
	MobID      string
	TemplateID string
	Rewards    []ExpReward
	Loot       []LootStack
	Gold       int
}

// Resolver computes settlements.
type Resolver struct {
	src    dice.Source
	logger *zap.Logger
}

// NewResolver creates a Resolver drawing randomness from src.
//
// Precondition: src must be non-nil; a nil logger disables logging.
func NewResolver(src dice.Source, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{src: src, logger: logger}
}

// Settle resolves mobID in ph if it is dead.
//
// A personal phase credits its sole member with the template's full base
// experience and arms the respawn gate at now + max(minRespawn, rule respawn).
// A party or event phase credits each contributor with
// round(base * max(MinShare, damage/totalDamage)). Either way one loot stack
// and a gold amount are rolled, and the mob and its ledger are removed.
//
// Precondition: ph and zc must be non-nil.
// Postcondition: Returns (nil, false) if the mob is unknown or still alive;
// a second call for the same mob therefore always returns (nil, false).
func (r *Resolver) Settle(ph *phase.Phase, mobID string, zc *content.ZoneContent, now time.Time, minRespawn time.Duration) (*Settlement, bool) {
	mob, ok := ph.Mob(mobID)
	if !ok || mob.Alive() {
		return nil, false
	}

	tmpl, ok := zc.Template(mob.TemplateID)
	if !ok {
		tmpl = content.EnemyTemplate{ID: mob.TemplateID, Name: mob.Name, Level: mob.Level, MaxHealth: mob.MaxHealth}
	}

	s := &Settlement{MobID: mob.ID, TemplateID: mob.TemplateID}
	contributions := ph.Contributions(mobID)

	if ph.Category == content.CategoryPersonal {
		if members := ph.Members(); len(members) > 0 {
			s.Rewards = []ExpReward{{CharacterID: members[0], Exp: tmpl.ExpBase}}
		}
		delay := zc.RespawnFor(ph.Category, mob.TemplateID)
		if delay < minRespawn {
			delay = minRespawn
		}
		ph.ArmRespawn(now.Add(delay))
	} else {
		s.Rewards = SplitExp(tmpl.ExpBase, contributions)
	}

	if dt, ok := zc.DropTable(tmpl.DropTableID); ok {
		if stack, ok := r.RollLoot(dt); ok {
			s.Loot = []LootStack{stack}
		}
	}
	if tmpl.GoldMax > 0 {
		s.Gold = dice.Between(r.src, tmpl.GoldMin, tmpl.GoldMax)
	}

	ph.RemoveMob(mobID)

	r.logger.Info("mob settled",
		zap.String("phase", ph.ID),
		zap.String("mob", mob.ID),
		zap.String("template", mob.TemplateID),
		zap.Int("rewards", len(s.Rewards)),
		zap.Int("loot", len(s.Loot)),
		zap.Int("gold", s.Gold),
	)
	return s, true
}

// SplitExp divides base experience among contributors by damage share, with
// a floor of MinShare per contributor.
//
// Postcondition: Returns one reward per contributor, sorted by character id.
// A total damage of zero is treated as 1.
func SplitExp(base int, contributions map[string]phase.Contribution) []ExpReward {
	total := 0
	for _, c := range contributions {
		total += c.Damage
	}
	if total <= 0 {
		total = 1
	}

	ids := make([]string, 0, len(contributions))
	for id := range contributions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]ExpReward, 0, len(ids))
	for _, id := range ids {
		share := math.Max(MinShare, float64(contributions[id].Damage)/float64(total))
		out = append(out, ExpReward{CharacterID: id, Exp: int(math.Round(float64(base) * share))})
	}
	return out
}

// RollLoot performs a single weighted pick from dt.
//
// A cursor is drawn uniformly from [1, totalWeight] and entries are walked,
// subtracting each positive weight until the cursor is no longer positive.
//
// Postcondition: Returns (stack, true) with MinQty <= Quantity <= MaxQty, or
// (zero, false) when the table is empty or has no positive weight.
func (r *Resolver) RollLoot(dt content.DropTable) (LootStack, bool) {
	total := dt.TotalWeight()
	if total <= 0 {
		return LootStack{}, false
	}
	cursor := 1 + r.src.Intn(total)
	for _, e := range dt.Entries {
		if e.Weight <= 0 {
			continue
		}
		cursor -= e.Weight
		if cursor <= 0 {
			return LootStack{
				ItemID:     e.ItemID,
				InstanceID: uuid.NewString(),
				Quantity:   dice.Between(r.src, e.MinQty, e.MaxQty),
			}, true
		}
	}
	return LootStack{}, false
}
