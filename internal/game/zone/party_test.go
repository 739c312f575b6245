package zone_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/zone"
)

func TestCreateParty_MovesLeader(t *testing.T) {
	r, _ := newRoom(t, slimeProvider())
	personal := r.Join("a")

	info, err := r.CreateParty("a")
	require.NoError(t, err)
	assert.NotEqual(t, personal.PhaseID, info.PhaseID)
	assert.Equal(t, "a", info.Leader)
	assert.Equal(t, 1, r.PhaseCount(), "the emptied personal phase is deleted")

	snap, err := r.Snapshot(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, content.CategoryParty, snap.Player.PhaseCategory)
	assert.Equal(t, info.PhaseID, snap.Player.PhaseID)
	assert.Equal(t, info.PartyID, snap.Player.PartyID)
	assert.Equal(t, 8, snap.Player.PhaseBudget)
}

func TestCreateParty_JoinsAbsentLeader(t *testing.T) {
	r, _ := newRoom(t, slimeProvider())
	info, err := r.CreateParty("a")
	require.NoError(t, err)
	sess, ok := r.Session("a")
	require.True(t, ok)
	assert.Equal(t, info.PhaseID, sess.PhaseID)
}

func TestJoinParty_ScalesBudget(t *testing.T) {
	r, _ := newRoom(t, slimeProvider())
	info, err := r.CreateParty("a")
	require.NoError(t, err)

	ok, err := r.JoinParty(info.PartyID, "b")
	require.NoError(t, err)
	assert.True(t, ok)

	snap, err := r.Snapshot(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, info.PhaseID, snap.Player.PhaseID)
	assert.Equal(t, 10, snap.Player.PhaseBudget)
	assert.Equal(t, 1, r.PhaseCount())

	ok, err = r.JoinParty(info.PartyID, "b")
	require.NoError(t, err)
	assert.True(t, ok, "rejoining is a no-op")

	got, found := r.Party(info.PartyID)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got.Members)
}

func TestJoinParty_Unknown(t *testing.T) {
	r, _ := newRoom(t, slimeProvider())
	ok, err := r.JoinParty("party-missing", "a")
	assert.False(t, ok)
	assert.ErrorIs(t, err, zone.ErrPartyNotFound)
	_, joined := r.Session("a")
	assert.False(t, joined, "an unknown party does not join the player")
}

func TestJoinParty_SwitchesParties(t *testing.T) {
	r, _ := newRoom(t, slimeProvider())
	first, err := r.CreateParty("a")
	require.NoError(t, err)
	second, err := r.CreateParty("b")
	require.NoError(t, err)

	_, err = r.JoinParty(second.PartyID, "a")
	require.NoError(t, err)

	_, found := r.Party(first.PartyID)
	assert.False(t, found, "the emptied party is deleted")
	got, found := r.Party(second.PartyID)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got.Members)
	assert.Equal(t, "b", got.Leader)
	assert.Equal(t, 1, r.PhaseCount())
}

func TestLeave_ReassignsLeaderAndRescales(t *testing.T) {
	r, _ := newRoom(t, slimeProvider())
	info, err := r.CreateParty("c")
	require.NoError(t, err)
	for _, p := range []string{"b", "a"} {
		_, err = r.JoinParty(info.PartyID, p)
		require.NoError(t, err)
	}

	r.Leave("c")
	got, found := r.Party(info.PartyID)
	require.True(t, found)
	assert.Equal(t, "a", got.Leader)

	snap, err := r.Snapshot(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 10, snap.Player.PhaseBudget)

	r.Leave("a")
	snap, err = r.Snapshot(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, 8, snap.Player.PhaseBudget)

	r.Leave("b")
	_, found = r.Party(info.PartyID)
	assert.False(t, found)
	assert.Equal(t, 0, r.PhaseCount())
}

func TestLeaveParty(t *testing.T) {
	r, _ := newRoom(t, slimeProvider())
	info, err := r.CreateParty("a")
	require.NoError(t, err)
	_, err = r.JoinParty(info.PartyID, "b")
	require.NoError(t, err)

	ok, err := r.LeaveParty("a")
	require.NoError(t, err)
	assert.True(t, ok)

	snap, err := r.Snapshot(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, content.CategoryPersonal, snap.Player.PhaseCategory)
	assert.Empty(t, snap.Player.PartyID)
	assert.Equal(t, 2, r.PhaseCount())

	got, found := r.Party(info.PartyID)
	require.True(t, found)
	assert.Equal(t, "b", got.Leader)

	ok, err = r.LeaveParty("a")
	require.NoError(t, err)
	assert.False(t, ok, "not in a party")
}

func TestPartyKill_SplitsByContribution(t *testing.T) {
	r, clock := newRoom(t, slimeProvider(), zone.WithStats(fixedStats{dmg: 8}))
	ctx := context.Background()
	info, err := r.CreateParty("a")
	require.NoError(t, err)
	_, err = r.JoinParty(info.PartyID, "b")
	require.NoError(t, err)
	r.WaitBackground()

	snap, err := r.Snapshot(ctx, "a")
	require.NoError(t, err)
	target := snap.Mobs[0]

	for i := 0; i < 3; i++ {
		res, err := r.BasicAttack("a", intp(target.X))
		require.NoError(t, err)
		require.True(t, res.Hit)
		clock.Advance(600 * time.Millisecond)
	}
	res, err := r.BasicAttack("b", intp(target.X))
	require.NoError(t, err)
	require.True(t, res.Killed)

	s, ok := r.SettleIfDead(target.ID)
	require.True(t, ok)
	require.Len(t, s.Rewards, 2)
	assert.Equal(t, "a", s.Rewards[0].CharacterID)
	assert.Equal(t, 15, s.Rewards[0].Exp)
	assert.Equal(t, "b", s.Rewards[1].CharacterID)
	assert.Equal(t, 5, s.Rewards[1].Exp)

	snap, err = r.Snapshot(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, snap.Mobs, 2, "party phases refill without a gate")
}

// crowdedProvider's single rule asks for more slimes than any party budget.
func crowdedProvider() *staticProvider {
	p := slimeProvider()
	p.rules = []content.SpawnRule{{TemplateID: "slime", Budget: 20, RespawnMs: 1000, Slots: []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200}}}
	return p
}

func TestLeave_TrimsFullPartyPhase(t *testing.T) {
	r, _ := newRoom(t, crowdedProvider())
	ctx := context.Background()
	info, err := r.CreateParty("a")
	require.NoError(t, err)
	_, err = r.JoinParty(info.PartyID, "b")
	require.NoError(t, err)

	snap, err := r.Snapshot(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, 10, snap.Player.PhaseBudget)
	require.Len(t, snap.Mobs, 10)

	assert.True(t, r.Leave("b"))

	snap, err = r.Snapshot(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 8, snap.Player.PhaseBudget)
	assert.Len(t, snap.Mobs, 8)
}

func TestLeaveParty_TrimKeepsEngagedMob(t *testing.T) {
	r, _ := newRoom(t, crowdedProvider())
	ctx := context.Background()
	info, err := r.CreateParty("a")
	require.NoError(t, err)
	_, err = r.JoinParty(info.PartyID, "b")
	require.NoError(t, err)

	snap, err := r.Snapshot(ctx, "a")
	require.NoError(t, err)
	require.Len(t, snap.Mobs, 10)
	newest := snap.Mobs[len(snap.Mobs)-1]

	res, err := r.BasicAttack("a", intp(newest.X))
	require.NoError(t, err)
	require.True(t, res.Hit)

	left, err := r.LeaveParty("b")
	require.NoError(t, err)
	assert.True(t, left)

	snap, err = r.Snapshot(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, snap.Mobs, 8)
	ids := make([]string, 0, len(snap.Mobs))
	for _, m := range snap.Mobs {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, res.MobID, "a damaged mob outlives untouched ones")
}

func TestPartyBudget_FollowsConfig(t *testing.T) {
	cfg := testZoneConfig()
	cfg.PartyBaseBudget = 3
	cfg.PartyMemberBudget = 3
	cfg.PartyMaxBonus = 5
	r, _ := newRoomWithConfig(t, crowdedProvider(), cfg)
	ctx := context.Background()

	info, err := r.CreateParty("a")
	require.NoError(t, err)
	snap, err := r.Snapshot(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Player.PhaseBudget)

	_, err = r.JoinParty(info.PartyID, "b")
	require.NoError(t, err)
	snap, err = r.Snapshot(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 8, snap.Player.PhaseBudget)
	assert.Len(t, snap.Mobs, 8)

	assert.True(t, r.Leave("b"))
	snap, err = r.Snapshot(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Player.PhaseBudget)
	assert.Len(t, snap.Mobs, 6)
}
