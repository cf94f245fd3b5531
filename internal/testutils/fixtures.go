package testutils

import (
	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Aldric"

// ItemBuilder builds test items
type ItemBuilder struct {
	item *equipment.Item
}

// NewItem starts an item with the given id and natural slot
func NewItem(id string, slot equipment.Slot) *ItemBuilder {
	return &ItemBuilder{item: &equipment.Item{ID: id, Name: id, Slot: slot}}
}

// NewWeapon starts a weapon with a primary component
func NewWeapon(id, class, usage string) *ItemBuilder {
	return NewItem(id, equipment.SlotWeapon0).WithWeapon(class, usage)
}

// WithWeapon appends a weapon component
func (b *ItemBuilder) WithWeapon(class, usage string) *ItemBuilder {
	b.item.Weapons = append(b.item.Weapons, equipment.WeaponComponent{Class: class, ItemUsage: usage})
	return b
}

// WithSwing sets swing damage and speed on the primary component
func (b *ItemBuilder) WithSwing(damage, speed int32) *ItemBuilder {
	if w := b.item.PrimaryWeapon(); w != nil {
		w.SwingDamage = damage
		w.SwingSpeed = speed
	}
	return b
}

// WithArmor sets the armor component
func (b *ItemBuilder) WithArmor(head, body, arm, leg int32) *ItemBuilder {
	b.item.Armor = &equipment.ArmorComponent{HeadArmor: head, BodyArmor: body, ArmArmor: arm, LegArmor: leg}
	return b
}

// WithHorse sets the horse component
func (b *ItemBuilder) WithHorse(usage string, speed int32) *ItemBuilder {
	b.item.Horse = &equipment.HorseComponent{MonsterUsage: usage, Speed: speed}
	return b
}

// WithSkill sets the skill requirement
func (b *ItemBuilder) WithSkill(skill string, difficulty int32) *ItemBuilder {
	b.item.RelevantSkill = skill
	b.item.Difficulty = difficulty
	return b
}

// Civilian marks the item wearable in civilian sets
func (b *ItemBuilder) Civilian() *ItemBuilder {
	b.item.Civilian = true
	return b
}

// WithWeight sets the item weight
func (b *ItemBuilder) WithWeight(weight float32) *ItemBuilder {
	b.item.Weight = weight
	return b
}

// Build returns the item
func (b *ItemBuilder) Build() *equipment.Item {
	return b.item
}

// Element returns the item wrapped as an element
func (b *ItemBuilder) Element() equipment.Element {
	return equipment.Of(b.item)
}

// Stack returns an equipable stack of one
func (b *ItemBuilder) Stack() equipment.Stack {
	return equipment.Stack{Element: equipment.Of(b.item), Count: 1, Equipable: true}
}

// CreateTestCharacter creates a character with empty equipment sets
func CreateTestCharacter() *equipment.Character {
	return &equipment.Character{
		ID:       "char-test-001",
		Name:     TestCharacterName,
		Skills:   map[string]int32{"riding": 50, "one_handed": 80},
		Battle:   &equipment.Equipment{},
		Civilian: &equipment.Equipment{},
	}
}

// CreateTestProfile creates a profile for the test character with default settings
func CreateTestProfile() *equipment.Profile {
	return &equipment.Profile{
		Character: CreateTestCharacter(),
		Settings:  equipment.DefaultSettings(),
	}
}
