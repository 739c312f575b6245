package gameserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/zone"
	"github.com/cory-johannsen/skirmish/internal/gameserver/zonev1"
	"github.com/cory-johannsen/skirmish/internal/testutil"
)

type slimeZone struct{}

func (slimeZone) Templates(context.Context, string) ([]content.EnemyTemplate, error) {
	return []content.EnemyTemplate{{
		ID: "slime", Name: "Slime", Level: 1, MaxHealth: 30, ExpBase: 20,
		DropTableID: "slime_drops",
	}}, nil
}

func (slimeZone) SpawnRules(context.Context, string) ([]content.SpawnRule, error) {
	return []content.SpawnRule{{TemplateID: "slime", Budget: 2, RespawnMs: 1000, Slots: []int{100, 200}}}, nil
}

func (slimeZone) DropTables(context.Context, string) ([]content.DropTable, error) {
	return []content.DropTable{{ID: "slime_drops", Entries: []content.DropEntry{
		{ItemID: "slime_gel", Weight: 1, MinQty: 1, MaxQty: 1},
	}}}, nil
}

type oneShot struct{}

func (oneShot) DamagePerHit(context.Context, string) (int, error) { return 50, nil }

func testZoneClient(t *testing.T) (zonev1.ZoneServiceClient, *zone.Registry) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	reg := zone.NewRegistry(slimeZone{}, config.DefaultZoneConfig(), logger, zone.WithStats(oneShot{}))
	t.Cleanup(reg.Close)

	svc := NewZoneService(reg, logger)
	conn := testutil.NewBufconnClient(t, func(s *grpc.Server) {
		zonev1.RegisterZoneServiceServer(s, svc)
	})
	return zonev1.NewZoneServiceClient(conn), reg
}

func joinAndWait(t *testing.T, client zonev1.ZoneServiceClient, reg *zone.Registry, playerID string) *zonev1.JoinResponse {
	t.Helper()
	resp, err := client.Join(context.Background(), &zonev1.JoinRequest{ZoneId: "meadow", PlayerId: playerID})
	require.NoError(t, err)
	room, ok := reg.Lookup("meadow")
	require.True(t, ok)
	room.WaitBackground()
	return resp
}

func TestZoneService_KillAndSettle(t *testing.T) {
	client, reg := testZoneClient(t)
	ctx := context.Background()

	joined := joinAndWait(t, client, reg, "p1")
	assert.Equal(t, "p1", joined.GetSession().GetPlayerId())
	assert.Equal(t, "meadow", joined.GetSession().GetZoneId())
	assert.NotEmpty(t, joined.GetSession().GetPhaseId())
	assert.Equal(t, int32(100), joined.GetSession().GetMaxHp())

	snap, err := client.Snapshot(ctx, &zonev1.SnapshotRequest{ZoneId: "meadow", PlayerId: "p1"})
	require.NoError(t, err)
	require.Len(t, snap.GetMobs(), 2)
	assert.Equal(t, "personal", snap.GetPlayer().GetPhaseCategory())
	assert.Empty(t, snap.GetPlayer().GetPartyId())
	assert.Equal(t, int32(6), snap.GetPlayer().GetPhaseBudget())

	hit, err := client.BasicAttack(ctx, &zonev1.BasicAttackRequest{ZoneId: "meadow", PlayerId: "p1", Hint: &zonev1.AttackHint{X: 100}})
	require.NoError(t, err)
	require.True(t, hit.GetHit())
	assert.True(t, hit.GetKilled())
	assert.Equal(t, int32(50), hit.GetDamage())

	settled, err := client.SettleIfDead(ctx, &zonev1.SettleIfDeadRequest{ZoneId: "meadow", MobId: hit.GetMobId()})
	require.NoError(t, err)
	require.True(t, settled.GetSettled())
	assert.Equal(t, "slime", settled.GetTemplateId())
	require.Len(t, settled.GetRewards(), 1)
	assert.Equal(t, "p1", settled.GetRewards()[0].GetCharacterId())
	assert.Equal(t, int32(20), settled.GetRewards()[0].GetExp())
	require.Len(t, settled.GetLoot(), 1)
	assert.Equal(t, "slime_gel", settled.GetLoot()[0].GetItemId())
	assert.NotEmpty(t, settled.GetLoot()[0].GetInstanceId())

	again, err := client.SettleIfDead(ctx, &zonev1.SettleIfDeadRequest{ZoneId: "meadow", MobId: hit.GetMobId()})
	require.NoError(t, err)
	assert.False(t, again.GetSettled())

	cool, err := client.BasicAttack(ctx, &zonev1.BasicAttackRequest{ZoneId: "meadow", PlayerId: "p1"})
	require.NoError(t, err)
	assert.False(t, cool.GetHit())
	assert.Equal(t, zone.ReasonCooldown, cool.GetReason())
}

func TestZoneService_AttackHintRange(t *testing.T) {
	client, reg := testZoneClient(t)
	ctx := context.Background()
	joinAndWait(t, client, reg, "p1")

	snap, err := client.Snapshot(ctx, &zonev1.SnapshotRequest{ZoneId: "meadow", PlayerId: "p1"})
	require.NoError(t, err)
	var far string
	for _, m := range snap.GetMobs() {
		if m.GetX() == 200 {
			far = m.GetId()
		}
	}
	require.NotEmpty(t, far)

	miss, err := client.BasicAttack(ctx, &zonev1.BasicAttackRequest{ZoneId: "meadow", PlayerId: "p1", Hint: &zonev1.AttackHint{X: 1000}})
	require.NoError(t, err)
	assert.False(t, miss.GetHit())
	assert.Equal(t, zone.ReasonOutOfRange, miss.GetReason())

	hit, err := client.BasicAttack(ctx, &zonev1.BasicAttackRequest{ZoneId: "meadow", PlayerId: "p1", Hint: &zonev1.AttackHint{X: 190}})
	require.NoError(t, err)
	require.True(t, hit.GetHit())
	assert.Equal(t, far, hit.GetMobId(), "the hint picks the nearest mob")
}

func TestZoneService_PartyFlow(t *testing.T) {
	client, reg := testZoneClient(t)
	ctx := context.Background()
	joinAndWait(t, client, reg, "p1")

	created, err := client.CreateParty(ctx, &zonev1.CreatePartyRequest{ZoneId: "meadow", LeaderId: "p1"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.GetPartyId())

	joined, err := client.JoinParty(ctx, &zonev1.JoinPartyRequest{ZoneId: "meadow", PartyId: created.GetPartyId(), PlayerId: "p2"})
	require.NoError(t, err)
	assert.True(t, joined.GetJoined())

	snap, err := client.Snapshot(ctx, &zonev1.SnapshotRequest{ZoneId: "meadow", PlayerId: "p2"})
	require.NoError(t, err)
	assert.Equal(t, created.GetPartyId(), snap.GetPlayer().GetPartyId())
	assert.Equal(t, created.GetPhaseId(), snap.GetPlayer().GetPhaseId())
	assert.Equal(t, "party", snap.GetPlayer().GetPhaseCategory())
	assert.Equal(t, int32(10), snap.GetPlayer().GetPhaseBudget())

	left, err := client.LeaveParty(ctx, &zonev1.LeavePartyRequest{ZoneId: "meadow", PlayerId: "p2"})
	require.NoError(t, err)
	assert.True(t, left.GetLeft())

	toggled, err := client.ToggleAuto(ctx, &zonev1.ToggleAutoRequest{ZoneId: "meadow", PlayerId: "p1", Enabled: true})
	require.NoError(t, err)
	assert.True(t, toggled.GetOk())

	out, err := client.Leave(ctx, &zonev1.LeaveRequest{ZoneId: "meadow", PlayerId: "p1"})
	require.NoError(t, err)
	assert.True(t, out.GetLeft())
}

func TestZoneService_StatusCodes(t *testing.T) {
	client, reg := testZoneClient(t)
	ctx := context.Background()

	_, err := client.Join(ctx, &zonev1.JoinRequest{ZoneId: "meadow"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Snapshot(ctx, &zonev1.SnapshotRequest{ZoneId: "meadow", PlayerId: "ghost"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "unknown zone")

	joinAndWait(t, client, reg, "p1")

	_, err = client.BasicAttack(ctx, &zonev1.BasicAttackRequest{ZoneId: "meadow", PlayerId: "ghost"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.JoinParty(ctx, &zonev1.JoinPartyRequest{ZoneId: "meadow", PartyId: "party-missing", PlayerId: "p1"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.LeaveParty(ctx, &zonev1.LeavePartyRequest{ZoneId: "meadow", PlayerId: "ghost"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	out, err := client.Leave(ctx, &zonev1.LeaveRequest{ZoneId: "elsewhere", PlayerId: "p1"})
	require.NoError(t, err)
	assert.False(t, out.GetLeft())
}
