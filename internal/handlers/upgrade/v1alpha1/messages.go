package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	"github.com/KirkDiggler/equipbest/internal/inventory"
	"github.com/KirkDiggler/equipbest/internal/notify"
	"github.com/KirkDiggler/equipbest/internal/scenario"
)

// PlanSlotRequest evaluates one slot. The left pool is the scenario's other
// inventory and the right pool the player's inventory.
type PlanSlotRequest struct {
	Scenario scenario.Scenario `json:"scenario"`
	Slot     equipment.Slot    `json:"slot"`
}

// PlanSlotResponse is the decision for one slot
type PlanSlotResponse struct {
	Decision  equipment.Decision          `json:"decision"`
	Transfers []equipment.TransferCommand `json:"transfers"`
	Message   string                      `json:"message,omitempty"`
}

// EquipCharacterRequest runs every slot of the scenario's character
type EquipCharacterRequest struct {
	Scenario scenario.Scenario `json:"scenario"`
}

// EquipCharacterResponse is the outcome of a full run
type EquipCharacterResponse struct {
	Decisions []equipment.Decision               `json:"decisions"`
	Transfers []equipment.TransferCommand        `json:"transfers"`
	Skipped   []equipment.Slot                   `json:"skipped"`
	Messages  []notify.Message                   `json:"messages"`
	Player    []equipment.Stack                  `json:"player"`
	Other     []equipment.Stack                  `json:"other"`
	Equipment map[equipment.Slot]*equipment.Item `json:"equipment"`
	Summary   inventory.Summary                  `json:"summary"`
}

// GetSettingsRequest reads a character's settings
type GetSettingsRequest struct {
	CharacterName string `json:"character_name"`
}

// SettingsResponse carries settings
type SettingsResponse struct {
	Settings *equipment.Settings `json:"settings"`
}

// UpdateSettingsRequest stores a character's settings
type UpdateSettingsRequest struct {
	CharacterName string              `json:"character_name"`
	Settings      *equipment.Settings `json:"settings"`
}

// ListTransfersRequest reads a character's transfer journal
type ListTransfersRequest struct {
	CharacterID string `json:"character_id"`
	Limit       int64  `json:"limit,omitempty"`
}

// ListTransfersResponse carries journal entries, oldest first
type ListTransfersResponse struct {
	Transfers []equipment.TransferCommand `json:"transfers"`
}

// ClearTransfersRequest deletes a character's transfer journal
type ClearTransfersRequest struct {
	CharacterID string `json:"character_id"`
}

// ClearTransfersResponse reports how many entries were deleted
type ClearTransfersResponse struct {
	Deleted int64 `json:"deleted"`
}

// Decode converts a Struct into v through JSON
func Decode(in *structpb.Struct, v any) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode request")
	}
	return nil
}

// Encode converts v into a Struct through JSON
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
