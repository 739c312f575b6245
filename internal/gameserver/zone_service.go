package gameserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/skirmish/internal/game/reward"
	"github.com/cory-johannsen/skirmish/internal/game/session"
	"github.com/cory-johannsen/skirmish/internal/game/zone"
	"github.com/cory-johannsen/skirmish/internal/gameserver/zonev1"
)

// ZoneService exposes the zone rooms of a Registry over gRPC.
//
// Join and CreateParty create the zone's room on first use. Every other call
// looks the room up and treats a missing room like a missing session.
type ZoneService struct {
	zonev1.UnimplementedZoneServiceServer
	rooms  *zone.Registry
	logger *zap.Logger
}

// NewZoneService creates a ZoneService over rooms.
//
// Precondition: rooms must be non-nil.
// Postcondition: Returns a ZoneService ready to register.
func NewZoneService(rooms *zone.Registry, logger *zap.Logger) *ZoneService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZoneService{rooms: rooms, logger: logger}
}

func (s *ZoneService) Join(ctx context.Context, req *zonev1.JoinRequest) (*zonev1.JoinResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetPlayerId()); err != nil {
		return nil, err
	}
	sess := s.rooms.Room(req.GetZoneId()).Join(req.GetPlayerId())
	return &zonev1.JoinResponse{Session: sessionMsg(sess)}, nil
}

func (s *ZoneService) Leave(ctx context.Context, req *zonev1.LeaveRequest) (*zonev1.LeaveResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetPlayerId()); err != nil {
		return nil, err
	}
	room, ok := s.rooms.Lookup(req.GetZoneId())
	if !ok {
		return &zonev1.LeaveResponse{}, nil
	}
	return &zonev1.LeaveResponse{Left: room.Leave(req.GetPlayerId())}, nil
}

func (s *ZoneService) CreateParty(ctx context.Context, req *zonev1.CreatePartyRequest) (*zonev1.CreatePartyResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetLeaderId()); err != nil {
		return nil, err
	}
	info, err := s.rooms.Room(req.GetZoneId()).CreateParty(req.GetLeaderId())
	if err != nil {
		return nil, s.toStatus("CreateParty", err)
	}
	return &zonev1.CreatePartyResponse{PartyId: info.PartyID, PhaseId: info.PhaseID}, nil
}

func (s *ZoneService) JoinParty(ctx context.Context, req *zonev1.JoinPartyRequest) (*zonev1.JoinPartyResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetPartyId(), req.GetPlayerId()); err != nil {
		return nil, err
	}
	room, ok := s.rooms.Lookup(req.GetZoneId())
	if !ok {
		return nil, s.toStatus("JoinParty", zone.ErrPartyNotFound)
	}
	joined, err := room.JoinParty(req.GetPartyId(), req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("JoinParty", err)
	}
	return &zonev1.JoinPartyResponse{Joined: joined}, nil
}

func (s *ZoneService) LeaveParty(ctx context.Context, req *zonev1.LeavePartyRequest) (*zonev1.LeavePartyResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetPlayerId()); err != nil {
		return nil, err
	}
	room, ok := s.rooms.Lookup(req.GetZoneId())
	if !ok {
		return nil, s.toStatus("LeaveParty", zone.ErrNotJoined)
	}
	left, err := room.LeaveParty(req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("LeaveParty", err)
	}
	return &zonev1.LeavePartyResponse{Left: left}, nil
}

func (s *ZoneService) ToggleAuto(ctx context.Context, req *zonev1.ToggleAutoRequest) (*zonev1.ToggleAutoResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetPlayerId()); err != nil {
		return nil, err
	}
	room, ok := s.rooms.Lookup(req.GetZoneId())
	if !ok {
		return &zonev1.ToggleAutoResponse{}, nil
	}
	return &zonev1.ToggleAutoResponse{Ok: room.ToggleAuto(req.GetPlayerId(), req.GetEnabled())}, nil
}

func (s *ZoneService) Snapshot(ctx context.Context, req *zonev1.SnapshotRequest) (*zonev1.SnapshotResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetPlayerId()); err != nil {
		return nil, err
	}
	room, ok := s.rooms.Lookup(req.GetZoneId())
	if !ok {
		return nil, s.toStatus("Snapshot", zone.ErrNotJoined)
	}
	snap, err := room.Snapshot(ctx, req.GetPlayerId())
	if err != nil {
		return nil, s.toStatus("Snapshot", err)
	}
	resp := &zonev1.SnapshotResponse{
		Player: &zonev1.PlayerState{
			Hp:            int32(snap.Player.HP),
			MaxHp:         int32(snap.Player.MaxHP),
			AutoCombat:    snap.Player.AutoCombat,
			PhaseId:       snap.Player.PhaseID,
			PhaseCategory: string(snap.Player.PhaseCategory),
			PartyId:       snap.Player.PartyID,
			PhaseBudget:   int32(snap.Player.PhaseBudget),
		},
		Mobs: make([]*zonev1.MobState, 0, len(snap.Mobs)),
	}
	for _, m := range snap.Mobs {
		resp.Mobs = append(resp.Mobs, &zonev1.MobState{
			Id:         m.ID,
			TemplateId: m.TemplateID,
			Name:       m.Name,
			Level:      int32(m.Level),
			Hp:         int32(m.HP),
			MaxHp:      int32(m.MaxHP),
			X:          int32(m.X),
		})
	}
	return resp, nil
}

func (s *ZoneService) BasicAttack(ctx context.Context, req *zonev1.BasicAttackRequest) (*zonev1.BasicAttackResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetPlayerId()); err != nil {
		return nil, err
	}
	room, ok := s.rooms.Lookup(req.GetZoneId())
	if !ok {
		return nil, s.toStatus("BasicAttack", zone.ErrNotJoined)
	}
	res, err := room.BasicAttack(req.GetPlayerId(), hintX(req.GetHint()))
	if err != nil {
		return nil, s.toStatus("BasicAttack", err)
	}
	return &zonev1.BasicAttackResponse{
		Hit:    res.Hit,
		Damage: int32(res.Damage),
		Killed: res.Killed,
		MobId:  res.MobID,
		Reason: res.Reason,
	}, nil
}

func (s *ZoneService) SettleIfDead(ctx context.Context, req *zonev1.SettleIfDeadRequest) (*zonev1.SettleIfDeadResponse, error) {
	if err := requireIDs(req.GetZoneId(), req.GetMobId()); err != nil {
		return nil, err
	}
	room, ok := s.rooms.Lookup(req.GetZoneId())
	if !ok {
		return &zonev1.SettleIfDeadResponse{}, nil
	}
	st, ok := room.SettleIfDead(req.GetMobId())
	if !ok {
		return &zonev1.SettleIfDeadResponse{}, nil
	}
	return settlementMsg(st), nil
}

// toStatus maps a zone error onto a gRPC status.
func (s *ZoneService) toStatus(method string, err error) error {
	switch {
	case errors.Is(err, zone.ErrNotJoined):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, zone.ErrPartyNotFound):
		return status.Error(codes.NotFound, err.Error())
	}
	s.logger.Error("zone call failed", zap.String("method", method), zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}

func requireIDs(ids ...string) error {
	for _, id := range ids {
		if id == "" {
			return status.Error(codes.InvalidArgument, "zone, player, party and mob ids must not be empty")
		}
	}
	return nil
}

// hintX unwraps an optional aim position.
func hintX(h *zonev1.AttackHint) *int {
	if h == nil {
		return nil
	}
	x := int(h.GetX())
	return &x
}

func sessionMsg(s session.PlayerSession) *zonev1.PlayerSession {
	return &zonev1.PlayerSession{
		PlayerId:     s.PlayerID,
		ZoneId:       s.ZoneID,
		PhaseId:      s.PhaseID,
		Hp:           int32(s.HP),
		MaxHp:        int32(s.MaxHP),
		AutoCombat:   s.AutoCombat,
		DamagePerHit: int32(s.DamagePerHit),
		AttackMs:     int32(s.AttackMs),
	}
}

func settlementMsg(st *reward.Settlement) *zonev1.SettleIfDeadResponse {
	resp := &zonev1.SettleIfDeadResponse{
		Settled:    true,
		TemplateId: st.TemplateID,
		Gold:       int32(st.Gold),
	}
	for _, r := range st.Rewards {
		resp.Rewards = append(resp.Rewards, &zonev1.Reward{CharacterId: r.CharacterID, Exp: int32(r.Exp)})
	}
	for _, l := range st.Loot {
		resp.Loot = append(resp.Loot, &zonev1.Loot{ItemId: l.ItemID, InstanceId: l.InstanceID, Quantity: int32(l.Quantity)})
	}
	return resp
}
