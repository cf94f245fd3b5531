package equipment

// Number of filters per kind
const (
	NumWeaponFilters = NumWeaponSlots
	NumArmorFilters  = 6
)

// WeaponFilter weights weapon statistics
type WeaponFilter struct {
	MaxDataValue float32 `json:"max_data_value" yaml:"max_data_value"`
	ThrustSpeed  float32 `json:"thrust_speed" yaml:"thrust_speed"`
	SwingSpeed   float32 `json:"swing_speed" yaml:"swing_speed"`
	MissileSpeed float32 `json:"missile_speed" yaml:"missile_speed"`
	WeaponLength float32 `json:"weapon_length" yaml:"weapon_length"`
	ThrustDamage float32 `json:"thrust_damage" yaml:"thrust_damage"`
	SwingDamage  float32 `json:"swing_damage" yaml:"swing_damage"`
	Handling     float32 `json:"handling" yaml:"handling"`
	Accuracy     float32 `json:"accuracy" yaml:"accuracy"`
	Weight       float32 `json:"weight" yaml:"weight"`
}

// ArmorFilter weights armor statistics
type ArmorFilter struct {
	HeadArmor float32 `json:"head_armor" yaml:"head_armor"`
	BodyArmor float32 `json:"body_armor" yaml:"body_armor"`
	ArmArmor  float32 `json:"arm_armor" yaml:"arm_armor"`
	LegArmor  float32 `json:"leg_armor" yaml:"leg_armor"`
	Weight    float32 `json:"weight" yaml:"weight"`
}

// MountFilter weights mount statistics
type MountFilter struct {
	ChargeDamage float32 `json:"charge_damage" yaml:"charge_damage"`
	HitPoints    float32 `json:"hit_points" yaml:"hit_points"`
	Maneuver     float32 `json:"maneuver" yaml:"maneuver"`
	Speed        float32 `json:"speed" yaml:"speed"`
}

// Settings holds a character's filters plus the pool lock flags.
// Armor filters are ordered head, cape, body, gloves, legs, harness.
type Settings struct {
	Weapon      [NumWeaponFilters]WeaponFilter `json:"weapon" yaml:"weapon"`
	Armor       [NumArmorFilters]ArmorFilter   `json:"armor" yaml:"armor"`
	Mount       MountFilter                    `json:"mount" yaml:"mount"`
	LeftLocked  bool                           `json:"left_locked" yaml:"left_locked"`
	RightLocked bool                           `json:"right_locked" yaml:"right_locked"`
}

// DefaultSettings returns settings with every stat weighted equally
func DefaultSettings() *Settings {
	s := &Settings{
		Mount: MountFilter{ChargeDamage: 1, HitPoints: 1, Maneuver: 1, Speed: 1},
	}
	for i := range s.Weapon {
		s.Weapon[i] = WeaponFilter{
			MaxDataValue: 1, ThrustSpeed: 1, SwingSpeed: 1, MissileSpeed: 1, WeaponLength: 1,
			ThrustDamage: 1, SwingDamage: 1, Handling: 1, Accuracy: 1,
		}
	}
	for i := range s.Armor {
		s.Armor[i] = ArmorFilter{HeadArmor: 1, BodyArmor: 1, ArmArmor: 1, LegArmor: 1}
	}
	return s
}

// WeaponFilterAt returns the weapon filter at index, zero when out of range
func (s *Settings) WeaponFilterAt(index int) WeaponFilter {
	if s == nil || index < 0 || index >= len(s.Weapon) {
		return WeaponFilter{}
	}
	return s.Weapon[index]
}

// ArmorFilterAt returns the armor filter at index, zero when out of range
func (s *Settings) ArmorFilterAt(index int) ArmorFilter {
	if s == nil || index < 0 || index >= len(s.Armor) {
		return ArmorFilter{}
	}
	return s.Armor[index]
}

// IsLocked reports whether a pool is locked
func (s *Settings) IsLocked(pool Pool) bool {
	if s == nil {
		return false
	}
	switch pool {
	case PoolLeft:
		return s.LeftLocked
	case PoolRight:
		return s.RightLocked
	default:
		return false
	}
}
