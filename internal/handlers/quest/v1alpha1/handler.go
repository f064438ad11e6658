// Package v1alpha1 handles the quest gRPC service interface
package v1alpha1

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/quest"
	"github.com/KirkDiggler/rpg-quest/internal/quests"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	QuestService quest.Service
	Clients      clients.Repository
	Catalog      *quests.Catalog
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.QuestService == nil {
		vb.RequiredField("QuestService")
	}
	if c.Clients == nil {
		vb.RequiredField("Clients")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Handler implements the quest gRPC service
type Handler struct {
	UnimplementedQuestServiceServer
	questService quest.Service
	clients      clients.Repository
	catalog      *quests.Catalog
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		questService: cfg.QuestService,
		clients:      cfg.Clients,
		catalog:      cfg.Catalog,
	}, nil
}

// Connect registers a client. During an active quest the client also joins
// the party, dead when it arrives in the middle of a fight.
func (h *Handler) Connect(ctx context.Context, req *ConnectRequest) (*ConnectResponse, error) {
	if req.ClientID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("client_id is required"))
	}

	added, err := h.clients.Add(ctx, &clients.AddInput{
		Client: &entities.Client{ID: req.ClientID, Name: req.Name},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	state, err := h.questService.GetState(ctx, &quest.GetStateInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ConnectResponse{Client: added.Client, Snapshot: state.Snapshot}
	if !state.Snapshot.Active {
		return resp, nil
	}

	joined, err := h.questService.JoinPlayer(ctx, &quest.JoinPlayerInput{
		ClientID:         req.ClientID,
		AsDeadIfFighting: true,
	})
	switch {
	case err == nil:
		resp.Player = &joined.Player
	case errors.IsFailedPrecondition(err), errors.IsAlreadyExists(err):
		// the quest ended or already counted this client
	default:
		slog.Error("Failed to join connecting client to quest",
			"client_id", req.ClientID,
			"error", err)
		return nil, errors.ToGRPCError(err)
	}

	latest, err := h.questService.GetState(ctx, &quest.GetStateInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	resp.Snapshot = latest.Snapshot

	return resp, nil
}

// Disconnect takes the client out of the quest and then the registry
func (h *Handler) Disconnect(ctx context.Context, req *DisconnectRequest) (*DisconnectResponse, error) {
	if req.ClientID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("client_id is required"))
	}

	left, err := h.questService.LeavePlayer(ctx, &quest.LeavePlayerInput{ClientID: req.ClientID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	removed, err := h.clients.Remove(ctx, &clients.RemoveInput{ClientID: req.ClientID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DisconnectResponse{
		Removed:      removed.Removed,
		LeftQuest:    left.Removed,
		QuestStopped: left.QuestStopped,
	}, nil
}

// ListQuests lists the catalog in start-index order
func (h *Handler) ListQuests(_ context.Context, _ *ListQuestsRequest) (*ListQuestsResponse, error) {
	names := h.catalog.Names()
	resp := &ListQuestsResponse{Quests: make([]QuestSummary, 0, len(names))}
	for i, name := range names {
		resp.Quests = append(resp.Quests, QuestSummary{Index: i, Name: name})
	}
	return resp, nil
}

// StartQuest starts the quest at the requested catalog index
func (h *Handler) StartQuest(ctx context.Context, req *StartQuestRequest) (*StartQuestResponse, error) {
	output, err := h.questService.Start(ctx, &quest.StartInput{QuestIndex: req.QuestIndex})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &StartQuestResponse{Snapshot: output.Snapshot}, nil
}

// StopQuest stops the active quest
func (h *Handler) StopQuest(ctx context.Context, _ *StopQuestRequest) (*StopQuestResponse, error) {
	output, err := h.questService.Stop(ctx, &quest.StopInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &StopQuestResponse{WasActive: output.WasActive}, nil
}

// VoteAdvance records the caller's vote
func (h *Handler) VoteAdvance(ctx context.Context, req *VoteAdvanceRequest) (*VoteAdvanceResponse, error) {
	if req.ClientID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("client_id is required"))
	}

	output, err := h.questService.VoteAdvance(ctx, &quest.VoteAdvanceInput{ClientID: req.ClientID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &VoteAdvanceResponse{Advanced: output.Advanced, RoomIndex: output.RoomIndex}, nil
}

// EndTurn passes the caller's turn
func (h *Handler) EndTurn(ctx context.Context, req *EndTurnRequest) (*EndTurnResponse, error) {
	if req.ClientID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("client_id is required"))
	}

	output, err := h.questService.EndTurn(ctx, &quest.EndTurnInput{ClientID: req.ClientID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &EndTurnResponse{CurrentTurn: output.CurrentTurn}, nil
}

// Attack strikes a foe for the caller
func (h *Handler) Attack(ctx context.Context, req *AttackRequest) (*AttackResponse, error) {
	if req.ClientID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("client_id is required"))
	}
	if req.EnemyID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("enemy_id is required"))
	}

	output, err := h.questService.Attack(ctx, &quest.AttackInput{
		ClientID: req.ClientID,
		EnemyID:  req.EnemyID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &AttackResponse{
		Action:      output.Action,
		RoomCleared: output.RoomCleared,
		CurrentTurn: output.CurrentTurn,
	}, nil
}

// ReportDeath marks the caller dead
func (h *Handler) ReportDeath(ctx context.Context, req *ReportDeathRequest) (*ReportDeathResponse, error) {
	if req.ClientID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("client_id is required"))
	}

	output, err := h.questService.ReportDeath(ctx, &quest.ReportDeathInput{ClientID: req.ClientID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ReportDeathResponse{Killed: output.Killed, QuestStopped: output.QuestStopped}, nil
}

// GetQuestState returns the current snapshot
func (h *Handler) GetQuestState(ctx context.Context, _ *GetQuestStateRequest) (*GetQuestStateResponse, error) {
	output, err := h.questService.GetState(ctx, &quest.GetStateInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &GetQuestStateResponse{Snapshot: output.Snapshot}, nil
}
