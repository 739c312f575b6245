// Package zone implements the per-zone combat coordinator: the Room that owns
// every phase, session, and party of one zone, its maintenance ticker, and the
// Registry that maps zone ids to rooms.
package zone

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/party"
	"github.com/cory-johannsen/skirmish/internal/game/phase"
	"github.com/cory-johannsen/skirmish/internal/game/reward"
	"github.com/cory-johannsen/skirmish/internal/game/session"
	"github.com/cory-johannsen/skirmish/internal/observability"
)

// StatSource computes a player's damage-per-hit.
type StatSource interface {
	DamagePerHit(ctx context.Context, playerID string) (int, error)
}

// Option customizes a Room.
type Option func(*Room)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Room) { r.now = now }
}

// WithStats installs the damage-per-hit source used after Join.
func WithStats(s StatSource) Option {
	return func(r *Room) { r.stats = s }
}

// WithResolver replaces the reward resolver.
func WithResolver(res *reward.Resolver) Option {
	return func(r *Room) { r.resolver = res }
}

// WithLogger sets the base logger; the room names it after its zone.
func WithLogger(l *zap.Logger) Option {
	return func(r *Room) { r.logger = l }
}

// Room is the aggregate root for one zone.
//
// All exported methods are safe for concurrent use; a single mutex serializes
// every mutation of phases, sessions, and parties.
type Room struct {
	zoneID   string
	cfg      config.ZoneConfig
	scaling  party.Scaling
	cache    *content.Cache
	stats    StatSource
	resolver *reward.Resolver
	logger   *zap.Logger
	now      func() time.Time

	bgCtx    context.Context
	bgCancel context.CancelFunc
	tasks    sync.WaitGroup
	tickers  sync.WaitGroup

	mu       sync.Mutex
	closed   bool
	sessions *session.Manager
	phases   map[string]*phase.Phase
	parties  map[string]*party.Party
	partyOf  map[string]string // playerID → partyID
	tick     tickerState
}

// NewRoom creates an empty Room for zoneID.
//
// Precondition: zoneID must be non-empty; cache must be non-nil.
// Postcondition: the maintenance ticker is stopped until the first Join.
func NewRoom(zoneID string, cache *content.Cache, cfg config.ZoneConfig, opts ...Option) *Room {
	r := &Room{
		zoneID:   zoneID,
		cfg:      cfg,
		scaling:  party.Scaling{Base: cfg.PartyBaseBudget, PerMember: cfg.PartyMemberBudget, MaxBonus: cfg.PartyMaxBonus},
		cache:    cache,
		now:      time.Now,
		sessions: session.NewManager(),
		phases:   make(map[string]*phase.Phase),
		parties:  make(map[string]*party.Party),
		partyOf:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = observability.ForZone(r.logger, zoneID)
	if r.resolver == nil {
		r.resolver = reward.NewResolver(dice.NewLoggedRoller(dice.NewCryptoSource(), r.logger), r.logger)
	}
	r.bgCtx, r.bgCancel = context.WithCancel(context.Background())
	return r
}

// ZoneID returns the zone this room coordinates.
func (r *Room) ZoneID() string {
	return r.zoneID
}

// Join registers playerID in a personal phase and returns its session.
//
// Content loading and the damage-per-hit recompute run in the background and
// never delay the return. Joining an already joined player refreshes its
// last-seen time and returns the existing session unchanged.
//
// Precondition: playerID must be non-empty.
// Postcondition: the player has exactly one session and the ticker is running.
func (r *Room) Join(playerID string) session.PlayerSession {
	r.loadContentAsync()

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if sess, ok := r.sessions.Get(playerID); ok {
		sess.Touch(now)
		r.ensureTickingLocked()
		return *sess
	}

	ph := r.personalPhaseLocked(playerID)
	sess := &session.PlayerSession{
		PlayerID:     playerID,
		ZoneID:       r.zoneID,
		PhaseID:      ph.ID,
		HP:           r.cfg.DefaultMaxHP,
		MaxHP:        r.cfg.DefaultMaxHP,
		DamagePerHit: r.cfg.DefaultDamage,
		AttackMs:     r.cfg.DefaultAttackMs,
		LastSeenAt:   now,
	}
	// Add cannot fail: Get above found no session under the lock.
	_ = r.sessions.Add(sess)

	r.recomputeStatsAsync(playerID)
	r.ensureTickingLocked()

	r.logger.Info("player joined",
		zap.String("player", playerID),
		zap.String("phase", ph.ID),
	)
	return *sess
}

// Leave removes playerID from the room.
//
// Postcondition: Returns false if the player had no session.
func (r *Room) Leave(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leaveLocked(playerID, "leave")
}

func (r *Room) leaveLocked(playerID, reason string) bool {
	sess, err := r.sessions.Remove(playerID)
	if err != nil {
		return false
	}
	r.detachLocked(playerID, sess.PhaseID)
	r.removeFromPartyLocked(playerID)
	r.stopIfEmptyLocked()

	r.logger.Info("player left",
		zap.String("player", playerID),
		zap.String("reason", reason),
	)
	return true
}

// ToggleAuto sets the auto-combat flag.
//
// Postcondition: Returns false if the player has no session.
func (r *Room) ToggleAuto(playerID string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions.Get(playerID)
	if !ok {
		return false
	}
	sess.AutoCombat = enabled
	sess.Touch(r.now())
	return true
}

// Session returns a copy of playerID's session.
func (r *Room) Session(playerID string) (session.PlayerSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions.Get(playerID)
	if !ok {
		return session.PlayerSession{}, false
	}
	return *sess, true
}

// PlayerCount returns the number of joined players.
func (r *Room) PlayerCount() int {
	return r.sessions.Count()
}

// PhaseCount returns the number of live phases.
func (r *Room) PhaseCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.phases)
}

// PlayerView is the player half of a Snapshot.
type PlayerView struct {
	ID            string
	HP            int
	MaxHP         int
	AutoCombat    bool
	DamagePerHit  int
	AttackMs      int
	PhaseID       string
	PhaseCategory content.Category
	PhaseBudget   int
	PartyID       string
}

// MobView is one mob in a Snapshot.
type MobView struct {
	ID         string
	TemplateID string
	Name       string
	Level      int
	HP         int
	MaxHP      int
	X          int
}

// Snapshot is the client-facing view of a player's phase.
type Snapshot struct {
	Player PlayerView
	Mobs   []MobView
}

// Snapshot refills the player's phase and returns its state.
//
// Snapshot waits for the zone content load (shared with any in-flight load);
// if loading fails the synthesized defaults are used for this refill.
//
// Postcondition: Returns ErrNotJoined if the player has no session.
func (r *Room) Snapshot(ctx context.Context, playerID string) (Snapshot, error) {
	zc := r.content(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions.Get(playerID)
	if !ok {
		return Snapshot{}, ErrNotJoined
	}
	now := r.now()
	sess.Touch(now)

	ph := r.phases[sess.PhaseID]
	if spawned := ph.EnsureSpawns(zc, now); len(spawned) > 0 {
		r.logger.Debug("phase refilled",
			zap.String("phase", ph.ID),
			zap.Int("spawned", len(spawned)),
			zap.Int("mobs", ph.MobCount()),
		)
	}

	snap := Snapshot{
		Player: PlayerView{
			ID:            sess.PlayerID,
			HP:            sess.HP,
			MaxHP:         sess.MaxHP,
			AutoCombat:    sess.AutoCombat,
			DamagePerHit:  sess.DamagePerHit,
			AttackMs:      sess.AttackMs,
			PhaseID:       ph.ID,
			PhaseCategory: ph.Category,
			PhaseBudget:   ph.Budget,
			PartyID:       r.partyOf[playerID],
		},
		Mobs: make([]MobView, 0, ph.MobCount()),
	}
	for _, m := range ph.Mobs() {
		snap.Mobs = append(snap.Mobs, MobView{
			ID:         m.ID,
			TemplateID: m.TemplateID,
			Name:       m.Name,
			Level:      m.Level,
			HP:         m.Health,
			MaxHP:      m.MaxHealth,
			X:          m.X,
		})
	}
	return snap, nil
}

// content returns the zone content, blocking on the shared load.
func (r *Room) content(ctx context.Context) *content.ZoneContent {
	zc, err := r.cache.Ensure(ctx)
	if err != nil {
		r.logger.Debug("content unavailable; using defaults", zap.Error(err))
		return r.cache.Current()
	}
	return zc
}

// personalPhaseLocked returns the personal phase holding playerID, creating one
// if none exists.
func (r *Room) personalPhaseLocked(playerID string) *phase.Phase {
	ids := make([]string, 0, len(r.phases))
	for id := range r.phases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		ph := r.phases[id]
		if ph.Category == content.CategoryPersonal && ph.HasMember(playerID) {
			return ph
		}
	}
	return r.newPhaseLocked(content.CategoryPersonal, r.cfg.PersonalBudget, playerID)
}

// newPhaseLocked allocates and publishes a phase with firstMember attached.
func (r *Room) newPhaseLocked(category content.Category, budget int, firstMember string) *phase.Phase {
	ph := phase.New("phase-"+uuid.NewString(), category, r.zoneID, budget)
	ph.AddMember(firstMember)
	r.phases[ph.ID] = ph
	r.logger.Debug("phase created",
		zap.String("phase", ph.ID),
		zap.String("category", string(category)),
		zap.Int("budget", budget),
	)
	return ph
}

// detachLocked removes playerID from phaseID, deleting the phase when empty.
func (r *Room) detachLocked(playerID, phaseID string) {
	ph, ok := r.phases[phaseID]
	if !ok {
		return
	}
	if ph.RemoveMember(playerID) == 0 {
		delete(r.phases, phaseID)
		r.logger.Debug("phase deleted", zap.String("phase", phaseID))
	}
}

// moveLocked detaches sess from its phase and attaches it to dst.
func (r *Room) moveLocked(sess *session.PlayerSession, dst *phase.Phase) {
	if sess.PhaseID == dst.ID {
		return
	}
	r.detachLocked(sess.PlayerID, sess.PhaseID)
	dst.AddMember(sess.PlayerID)
	// Move cannot fail: sess came from the manager under the lock.
	_, _ = r.sessions.Move(sess.PlayerID, dst.ID)
}

// loadContentAsync starts a background content load unless one has succeeded.
func (r *Room) loadContentAsync() {
	if _, ok := r.cache.Loaded(); ok {
		return
	}
	r.goTask(func(ctx context.Context) {
		if _, err := r.cache.Ensure(ctx); err != nil {
			r.logger.Warn("content load failed; serving defaults", zap.Error(err))
		}
	})
}

// recomputeStatsAsync derives damage-per-hit in the background. On failure the
// session keeps its current value.
func (r *Room) recomputeStatsAsync(playerID string) {
	if r.stats == nil {
		return
	}
	log := observability.ForPlayer(r.logger, playerID)
	r.goTask(func(ctx context.Context) {
		dmg, err := r.stats.DamagePerHit(ctx, playerID)
		if err != nil {
			log.Warn("stat recompute failed", zap.Error(err))
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		if sess, ok := r.sessions.Get(playerID); ok {
			sess.DamagePerHit = dmg
			log.Debug("stats recomputed", zap.Int("damage_per_hit", dmg))
		}
	})
}

// goTask runs fn on a tracked background goroutine.
func (r *Room) goTask(fn func(ctx context.Context)) {
	r.tasks.Add(1)
	go func() {
		defer r.tasks.Done()
		fn(r.bgCtx)
	}()
}

// WaitBackground blocks until every background load and stat recompute
// started so far has finished.
func (r *Room) WaitBackground() {
	r.tasks.Wait()
}

// Close stops the ticker, cancels background work, and waits for it.
// The room must not be used afterwards.
func (r *Room) Close() {
	r.mu.Lock()
	r.closed = true
	r.stopTickerLocked()
	r.mu.Unlock()

	r.bgCancel()
	r.tasks.Wait()
	r.tickers.Wait()
}
