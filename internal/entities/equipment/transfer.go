package equipment

import "time"

// Pool identifies which candidate pool supplied an item
type Pool string

// Candidate pools
const (
	PoolNone  Pool = ""
	PoolLeft  Pool = "left"
	PoolRight Pool = "right"
)

// Location is an inventory side that a transfer moves items between
type Location string

// Inventory locations
const (
	LocationEquipment       Location = "equipment"
	LocationPlayerInventory Location = "player_inventory"
	LocationOtherInventory  Location = "other_inventory"
)

// LocationForPool returns the inventory location a pool's items are moved
// out of: the left pool is the other party's inventory, the right pool is
// the player's own.
func LocationForPool(pool Pool) Location {
	if pool == PoolLeft {
		return LocationOtherInventory
	}
	return LocationPlayerInventory
}

// HoldingLocation is where unequipped items are put
const HoldingLocation = LocationPlayerInventory

// TransferCommand is one queued inventory move
type TransferCommand struct {
	ID          string    `json:"id"`
	Quantity    int32     `json:"quantity"`
	From        Location  `json:"from"`
	To          Location  `json:"to"`
	Element     Element   `json:"item"`
	FromSlot    Slot      `json:"from_slot"`
	ToSlot      Slot      `json:"to_slot"`
	CharacterID string    `json:"character_id"`
	Civilian    bool      `json:"civilian"`
	QueuedAt    time.Time `json:"queued_at"`
}

// IsEquip reports whether the command moves an item into equipment
func (t TransferCommand) IsEquip() bool {
	return t.To == LocationEquipment
}

// Decision is the outcome of evaluating one slot
type Decision struct {
	Slot   Slot    `json:"slot"`
	Winner Element `json:"winner"`
	Source Pool    `json:"source,omitempty"`
}

// HasWinner reports whether the decision replaces the current item
func (d Decision) HasWinner() bool {
	return !d.Winner.IsEmpty()
}
