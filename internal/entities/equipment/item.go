// Package equipment holds the item, slot, character and settings types shared
// by the upgrade orchestrator, its collaborators and the transport layer.
package equipment

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is the broad kind of an item
type Category string

// Item categories
const (
	CategoryNone    Category = "none"
	CategoryWeapon  Category = "weapon"
	CategoryArmor   Category = "armor"
	CategoryMount   Category = "mount"
	CategoryHarness Category = "harness"
)

// EmptyScore is the value of the empty element in every slot. Any candidate
// with a real score outranks it.
const EmptyScore float32 = -9999

const (
	camelMonsterUsage = "camel"
	camelHarnessIDTag = "camel_sadd"
	couchUsageTag     = "couch"
)

// WeaponComponent is one usage mode of a weapon item
type WeaponComponent struct {
	Class        string `json:"class" yaml:"class"`
	ItemUsage    string `json:"item_usage" yaml:"item_usage"`
	SwingDamage  int32  `json:"swing_damage,omitempty" yaml:"swing_damage,omitempty"`
	SwingSpeed   int32  `json:"swing_speed,omitempty" yaml:"swing_speed,omitempty"`
	ThrustDamage int32  `json:"thrust_damage,omitempty" yaml:"thrust_damage,omitempty"`
	ThrustSpeed  int32  `json:"thrust_speed,omitempty" yaml:"thrust_speed,omitempty"`
	MissileSpeed int32  `json:"missile_speed,omitempty" yaml:"missile_speed,omitempty"`
	Length       int32  `json:"length,omitempty" yaml:"length,omitempty"`
	Handling     int32  `json:"handling,omitempty" yaml:"handling,omitempty"`
	Accuracy     int32  `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`
	MaxDataValue int32  `json:"max_data_value,omitempty" yaml:"max_data_value,omitempty"`
}

// ArmorComponent carries the protection values of wearable armor and harnesses
type ArmorComponent struct {
	HeadArmor int32 `json:"head_armor,omitempty" yaml:"head_armor,omitempty"`
	BodyArmor int32 `json:"body_armor,omitempty" yaml:"body_armor,omitempty"`
	ArmArmor  int32 `json:"arm_armor,omitempty" yaml:"arm_armor,omitempty"`
	LegArmor  int32 `json:"leg_armor,omitempty" yaml:"leg_armor,omitempty"`
}

// HorseComponent carries mount statistics
type HorseComponent struct {
	MonsterUsage string `json:"monster_usage,omitempty" yaml:"monster_usage,omitempty"`
	ChargeDamage int32  `json:"charge_damage,omitempty" yaml:"charge_damage,omitempty"`
	Speed        int32  `json:"speed,omitempty" yaml:"speed,omitempty"`
	Maneuver     int32  `json:"maneuver,omitempty" yaml:"maneuver,omitempty"`
	HitPoints    int32  `json:"hit_points,omitempty" yaml:"hit_points,omitempty"`
}

// Item is an item definition. Slot is the position the item naturally goes
// into (SlotWeapon0 for every weapon, SlotNone for goods).
type Item struct {
	ID            string            `json:"id" yaml:"id"`
	Name          string            `json:"name,omitempty" yaml:"name,omitempty"`
	Slot          Slot              `json:"slot" yaml:"slot"`
	Civilian      bool              `json:"civilian,omitempty" yaml:"civilian,omitempty"`
	Weight        float32           `json:"weight,omitempty" yaml:"weight,omitempty"`
	RelevantSkill string            `json:"relevant_skill,omitempty" yaml:"relevant_skill,omitempty"`
	Difficulty    int32             `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Weapons       []WeaponComponent `json:"weapons,omitempty" yaml:"weapons,omitempty"`
	Armor         *ArmorComponent   `json:"armor,omitempty" yaml:"armor,omitempty"`
	Horse         *HorseComponent   `json:"horse,omitempty" yaml:"horse,omitempty"`
}

// PrimaryWeapon returns the first weapon component, or nil for non-weapons
func (i *Item) PrimaryWeapon() *WeaponComponent {
	if i == nil || len(i.Weapons) == 0 {
		return nil
	}
	return &i.Weapons[0]
}

// ItemUsage returns the usage string of the primary weapon, "" otherwise
func (i *Item) ItemUsage() string {
	if w := i.PrimaryWeapon(); w != nil {
		return w.ItemUsage
	}
	return ""
}

// IsCouchWeapon reports whether any weapon component has a couch usage
func (i *Item) IsCouchWeapon() bool {
	if i == nil {
		return false
	}
	for _, w := range i.Weapons {
		if strings.Contains(w.ItemUsage, couchUsageTag) {
			return true
		}
	}
	return false
}

// IsCamel reports whether the item is a camel mount
func (i *Item) IsCamel() bool {
	return i != nil && i.Horse != nil && i.Horse.MonsterUsage == camelMonsterUsage
}

// IsCamelHarness reports whether the item is a camel saddle
func (i *Item) IsCamelHarness() bool {
	return i != nil && strings.HasPrefix(i.ID, camelHarnessIDTag)
}

// Category derives the item category from its components
func (i *Item) Category() Category {
	switch {
	case i == nil:
		return CategoryNone
	case i.PrimaryWeapon() != nil:
		return CategoryWeapon
	case i.Horse != nil:
		return CategoryMount
	case i.Armor != nil && i.Slot == SlotHorseHarness:
		return CategoryHarness
	case i.Armor != nil:
		return CategoryArmor
	default:
		return CategoryNone
	}
}

// Element is an optional item: either an item or the empty element.
// The zero value is empty. It encodes as the item itself, or null.
type Element struct {
	Item *Item
}

// Empty returns the empty element
func Empty() Element {
	return Element{}
}

// Of wraps an item. A nil item gives the empty element.
func Of(item *Item) Element {
	return Element{Item: item}
}

// IsEmpty reports whether no item is present
func (e Element) IsEmpty() bool {
	return e.Item == nil
}

// ID returns the item id, "" when empty
func (e Element) ID() string {
	if e.Item == nil {
		return ""
	}
	return e.Item.ID
}

// MarshalJSON implements json.Marshaler
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Item)
}

// UnmarshalJSON implements json.Unmarshaler
func (e *Element) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		e.Item = nil
		return nil
	}
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	e.Item = &item
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (e Element) MarshalYAML() (interface{}, error) {
	return e.Item, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (e *Element) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		e.Item = nil
		return nil
	}
	var item Item
	if err := value.Decode(&item); err != nil {
		return err
	}
	e.Item = &item
	return nil
}

// Stack is one entry of an inventory pool: an item, how many of it there are,
// and whether the acting character may equip it.
type Stack struct {
	Element   Element `json:"item" yaml:"item"`
	Count     int32   `json:"count" yaml:"count"`
	Equipable bool    `json:"equipable" yaml:"equipable"`
}

// Item returns the stack's item, nil for an empty stack
func (s Stack) Item() *Item {
	return s.Element.Item
}
