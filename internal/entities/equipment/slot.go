package equipment

import (
	"fmt"
	"strings"
)

// Slot is a position in a character's equipment set. The numeric order is the
// evaluation order and matters: every slot below NonWeaponBegin is a weapon slot.
// The zero value is SlotNone.
type Slot int

// Equipment slots
const (
	SlotNone Slot = iota
	SlotWeapon0
	SlotWeapon1
	SlotWeapon2
	SlotWeapon3
	SlotHead
	SlotBody
	SlotLeg
	SlotGloves
	SlotCape
	SlotHorse
	SlotHorseHarness

	// NumSlots is the number of slots in an equipment set
	NumSlots = int(SlotHorseHarness-SlotWeapon0) + 1
)

// Slot boundaries
const (
	WeaponBegin    = SlotWeapon0
	NonWeaponBegin = SlotHead

	NumWeaponSlots = int(NonWeaponBegin - WeaponBegin)
)

var slotNames = map[Slot]string{
	SlotNone:         "none",
	SlotWeapon0:      "weapon0",
	SlotWeapon1:      "weapon1",
	SlotWeapon2:      "weapon2",
	SlotWeapon3:      "weapon3",
	SlotHead:         "head",
	SlotBody:         "body",
	SlotLeg:          "leg",
	SlotGloves:       "gloves",
	SlotCape:         "cape",
	SlotHorse:        "horse",
	SlotHorseHarness: "horse_harness",
}

// String returns the string representation of the slot
func (s Slot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// IsValid reports whether the slot is a real equipment position
func (s Slot) IsValid() bool {
	return s >= WeaponBegin && s <= SlotHorseHarness
}

// IsWeapon reports whether the slot holds weapons
func (s Slot) IsWeapon() bool {
	return s >= WeaponBegin && s < NonWeaponBegin
}

// MarshalText implements encoding.TextMarshaler
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Slot) UnmarshalText(text []byte) error {
	slot, ok := SlotFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown equipment slot %q", string(text))
	}
	*s = slot
	return nil
}

// SlotFromString converts a slot name to a Slot. An empty string is SlotNone.
func SlotFromString(name string) (Slot, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SlotNone, true
	}
	for slot, slotName := range slotNames {
		if slotName == name {
			return slot, true
		}
	}
	return SlotNone, false
}

// AllSlots returns every slot in evaluation order
func AllSlots() []Slot {
	slots := make([]Slot, 0, NumSlots)
	for s := WeaponBegin; s <= SlotHorseHarness; s++ {
		slots = append(slots, s)
	}
	return slots
}

// FilterKind says which settings filter scores an item in a slot
type FilterKind int

// Filter kinds
const (
	FilterNone FilterKind = iota
	FilterWeapon
	FilterArmor
	FilterMount
)

type filterIndex struct {
	kind  FilterKind
	index int
}

// filterIndexBySlot maps every slot to its position in the settings filters.
// The horse harness is scored with the sixth armor filter.
var filterIndexBySlot = map[Slot]filterIndex{
	SlotWeapon0:      {FilterWeapon, 0},
	SlotWeapon1:      {FilterWeapon, 1},
	SlotWeapon2:      {FilterWeapon, 2},
	SlotWeapon3:      {FilterWeapon, 3},
	SlotHead:         {FilterArmor, 0},
	SlotCape:         {FilterArmor, 1},
	SlotBody:         {FilterArmor, 2},
	SlotGloves:       {FilterArmor, 3},
	SlotLeg:          {FilterArmor, 4},
	SlotHorseHarness: {FilterArmor, 5},
	SlotHorse:        {FilterMount, 0},
}

// FilterIndex returns the filter kind and index used for a slot. Unknown
// slots map to index 0 of FilterNone.
func (s Slot) FilterIndex() (FilterKind, int) {
	fi, ok := filterIndexBySlot[s]
	if !ok {
		return FilterNone, 0
	}
	return fi.kind, fi.index
}
