// Package v1alpha1 handles the equipment upgrade grpc service
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	"github.com/KirkDiggler/equipbest/internal/notify"
	"github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade"
	"github.com/KirkDiggler/equipbest/internal/repositories/settings"
	"github.com/KirkDiggler/equipbest/internal/repositories/transfers"
	"github.com/KirkDiggler/equipbest/internal/scenario"
)

// HandlerConfig holds dependencies for the upgrade handler
type HandlerConfig struct {
	UpgradeService upgrade.Service
	SettingsRepo   settings.Repository
	TransfersRepo  transfers.Repository
	// Catalog renders messages in responses. Defaults to notify.DefaultCatalog.
	Catalog *notify.Catalog
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UpgradeService == nil {
		vb.RequiredField("UpgradeService")
	}
	if c.SettingsRepo == nil {
		vb.RequiredField("SettingsRepo")
	}
	if c.TransfersRepo == nil {
		vb.RequiredField("TransfersRepo")
	}

	return vb.Build()
}

// Handler implements UpgradeServiceServer
type Handler struct {
	upgradeService upgrade.Service
	settingsRepo   settings.Repository
	transfersRepo  transfers.Repository
	catalog        *notify.Catalog
}

var _ UpgradeServiceServer = (*Handler)(nil)

// NewHandler creates a new upgrade handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = notify.DefaultCatalog()
	}

	return &Handler{
		upgradeService: cfg.UpgradeService,
		settingsRepo:   cfg.SettingsRepo,
		transfersRepo:  cfg.TransfersRepo,
		catalog:        catalog,
	}, nil
}

// profile builds the scenario's profile. Settings in the request win over
// stored settings.
func (h *Handler) profile(ctx context.Context, s *scenario.Scenario) (*equipment.Profile, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Settings != nil {
		return s.Profile(nil), nil
	}

	stored, err := settings.Load(ctx, h.settingsRepo, s.Character.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load settings for %s", s.Character.Name)
	}
	return s.Profile(stored), nil
}

func respond(v any) (*structpb.Struct, error) {
	out, err := Encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// PlanSlot evaluates one slot without applying anything
func (h *Handler) PlanSlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in PlanSlotRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !in.Slot.IsValid() {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	profile, err := h.profile(ctx, &in.Scenario)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	left, right, err := in.Scenario.Host().Pools(ctx, in.Slot)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.upgradeService.PlanSlot(ctx, &upgrade.PlanSlotInput{
		Profile:  profile,
		Slot:     in.Slot,
		Current:  profile.Character.EquipmentFor(in.Scenario.Civilian).Get(in.Slot),
		Left:     left,
		Right:    right,
		Civilian: in.Scenario.Civilian,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := PlanSlotResponse{
		Decision:  out.Decision,
		Transfers: out.Transfers,
	}
	if out.Message != "" {
		resp.Message = h.catalog.Render(out.Message, profile.Character.Name)
	}

	return respond(resp)
}

// EquipCharacter runs every slot against the scenario's inventories and
// records the queued transfers in the character's journal
func (h *Handler) EquipCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in EquipCharacterRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	profile, err := h.profile(ctx, &in.Scenario)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	host := in.Scenario.Host()
	out, err := h.upgradeService.EquipCharacter(ctx, &upgrade.EquipCharacterInput{
		Profile:  profile,
		Host:     host,
		Civilian: in.Scenario.Civilian,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if len(out.Transfers) > 0 {
		if _, err := h.transfersRepo.Append(ctx, transfers.AppendInput{
			CharacterID: profile.Character.ID,
			Transfers:   out.Transfers,
		}); err != nil {
			return nil, errors.ToGRPCError(errors.Wrap(err, "failed to record transfers"))
		}
	}

	resp := EquipCharacterResponse{
		Decisions: out.Decisions,
		Transfers: out.Transfers,
		Skipped:   out.Skipped,
		Messages:  []notify.Message{},
		Player:    host.Player(),
		Other:     host.Other(),
	}
	for _, decision := range out.Decisions {
		if !decision.HasWinner() {
			continue
		}
		if token, ok := notify.TokenForSlot(decision.Slot); ok {
			resp.Messages = append(resp.Messages, notify.Message{
				Token: token,
				Hero:  profile.Character.Name,
				Text:  h.catalog.Render(token, profile.Character.Name),
			})
		}
	}

	set, err := host.Equipment(ctx, in.Scenario.Civilian)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	resp.Equipment = set.Slots()
	resp.Summary, _ = host.Summary()

	slog.Info("Equipped character",
		"character_id", profile.Character.ID,
		"civilian", in.Scenario.Civilian,
		"transfers", len(out.Transfers),
		"skipped", len(out.Skipped),
	)

	return respond(resp)
}

// GetSettings returns stored settings, or the defaults
func (h *Handler) GetSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GetSettingsRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_name is required"))
	}

	stored, err := settings.Load(ctx, h.settingsRepo, in.CharacterName)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(SettingsResponse{Settings: stored})
}

// UpdateSettings stores a character's settings
func (h *Handler) UpdateSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in UpdateSettingsRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_name is required"))
	}
	if in.Settings == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("settings is required"))
	}

	out, err := h.settingsRepo.Update(ctx, settings.UpdateInput{
		CharacterName: in.CharacterName,
		Settings:      in.Settings,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(SettingsResponse{Settings: out.Settings})
}

// ListTransfers returns a character's transfer journal
func (h *Handler) ListTransfers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListTransfersRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.transfersRepo.List(ctx, transfers.ListInput{
		CharacterID: in.CharacterID,
		Limit:       in.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ListTransfersResponse{Transfers: out.Transfers})
}

// ClearTransfers deletes a character's transfer journal
func (h *Handler) ClearTransfers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ClearTransfersRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.transfersRepo.Clear(ctx, transfers.ClearInput{CharacterID: in.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ClearTransfersResponse{Deleted: out.Deleted})
}
