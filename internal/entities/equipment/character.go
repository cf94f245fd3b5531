package equipment

import "github.com/KirkDiggler/rpg-toolkit/core"

// Equipment is one equipment set (battle or civilian) indexed by slot
type Equipment struct {
	elements [NumSlots]Element
}

// Get returns the element in a slot, empty for invalid slots
func (e *Equipment) Get(slot Slot) Element {
	if e == nil || !slot.IsValid() {
		return Empty()
	}
	return e.elements[slot-WeaponBegin]
}

// Set places an element in a slot. Invalid slots are ignored.
func (e *Equipment) Set(slot Slot, element Element) {
	if !slot.IsValid() {
		return
	}
	e.elements[slot-WeaponBegin] = element
}

// Clone returns a copy of the equipment set
func (e *Equipment) Clone() *Equipment {
	if e == nil {
		return &Equipment{}
	}
	c := *e
	return &c
}

// Slots returns the occupied slots as a map, for encoding
func (e *Equipment) Slots() map[Slot]*Item {
	out := make(map[Slot]*Item)
	for _, slot := range AllSlots() {
		if el := e.Get(slot); !el.IsEmpty() {
			out[slot] = el.Item
		}
	}
	return out
}

// NewEquipment builds an equipment set from a slot map
func NewEquipment(items map[Slot]*Item) *Equipment {
	e := &Equipment{}
	for slot, item := range items {
		e.Set(slot, Of(item))
	}
	return e
}

// Character is the acting hero
type Character struct {
	ID       string
	Name     string
	Skills   map[string]int32
	Battle   *Equipment
	Civilian *Equipment
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type used on the event bus
func (c *Character) GetType() string {
	return "character"
}

var _ core.Entity = (*Character)(nil)

// SkillValue returns the character's value for a skill, 0 when untrained
func (c *Character) SkillValue(skill string) int32 {
	if c == nil {
		return 0
	}
	return c.Skills[skill]
}

// EquipmentFor returns the battle or civilian set
func (c *Character) EquipmentFor(civilian bool) *Equipment {
	if civilian {
		return c.Civilian
	}
	return c.Battle
}

// SkillChecker decides whether a character has the skill to use an item
type SkillChecker interface {
	CanUse(character *Character, item *Item) bool
}

// SkillCheckFunc adapts a function to SkillChecker
type SkillCheckFunc func(character *Character, item *Item) bool

// CanUse calls f
func (f SkillCheckFunc) CanUse(character *Character, item *Item) bool {
	return f(character, item)
}

// CanUseItemBasedOnSkill passes when the item has no skill requirement or the
// character's relevant skill meets the item difficulty.
func CanUseItemBasedOnSkill(character *Character, item *Item) bool {
	if item == nil {
		return false
	}
	if item.RelevantSkill == "" || item.Difficulty <= 0 {
		return true
	}
	return character.SkillValue(item.RelevantSkill) >= item.Difficulty
}

// DefaultSkillChecker uses CanUseItemBasedOnSkill
var DefaultSkillChecker SkillChecker = SkillCheckFunc(CanUseItemBasedOnSkill)

// Profile is the acting character plus the settings that drive scoring
type Profile struct {
	Character *Character
	Settings  *Settings
}
