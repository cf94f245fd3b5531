package upgrade

import (
	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/notify"
)

// PlanSlotInput defines the request for planning one slot
type PlanSlotInput struct {
	Profile  *equipment.Profile
	Slot     equipment.Slot
	Current  equipment.Element
	Left     []equipment.Stack
	Right    []equipment.Stack
	Civilian bool
}

// PlanSlotOutput is the decision for one slot and the transfers that would
// carry it out, unequip first. Message is empty when nothing changes.
type PlanSlotOutput struct {
	Decision  equipment.Decision
	Transfers []equipment.TransferCommand
	Message   notify.Token
}

// EquipSlotInput defines the request for planning and applying one slot
// against a host
type EquipSlotInput struct {
	Profile  *equipment.Profile
	Host     Host
	Slot     equipment.Slot
	Civilian bool
}

// EquipSlotOutput defines the response for EquipSlot
type EquipSlotOutput struct {
	Decision  equipment.Decision
	Transfers []equipment.TransferCommand
}

// EquipCharacterInput defines the request for upgrading every slot of a
// character's battle or civilian set
type EquipCharacterInput struct {
	Profile  *equipment.Profile
	Host     Host
	Civilian bool
}

// EquipCharacterOutput defines the response for EquipCharacter. Decisions
// holds one entry per evaluated slot; Skipped lists slots that were not
// evaluated.
type EquipCharacterOutput struct {
	Decisions []equipment.Decision
	Transfers []equipment.TransferCommand
	Skipped   []equipment.Slot
}
