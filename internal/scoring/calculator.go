// Package scoring provides the default item valuation used by the upgrade
// orchestrator. Each value is a weighted average of item statistics, with the
// weights taken from a character's filters.
package scoring

import (
	"math"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
)

// Calculator scores armor, weapons and mounts
type Calculator struct{}

// New returns a Calculator
func New() *Calculator {
	return &Calculator{}
}

type term struct {
	stat   float32
	weight float32
}

// weighted returns sum(stat*weight) / sum(|weight|), or 0 when every weight is 0
func weighted(terms ...term) float32 {
	var total, weights float64
	for _, t := range terms {
		total += float64(t.stat) * float64(t.weight)
		weights += math.Abs(float64(t.weight))
	}
	if weights == 0 {
		return 0
	}
	return float32(total / weights)
}

// ScoreArmor values an armor or harness item
func (c *Calculator) ScoreArmor(item *equipment.Item, filter equipment.ArmorFilter) float32 {
	if item == nil {
		return equipment.EmptyScore
	}
	if item.Armor == nil {
		return 0
	}

	return weighted(
		term{float32(item.Armor.HeadArmor), filter.HeadArmor},
		term{float32(item.Armor.BodyArmor), filter.BodyArmor},
		term{float32(item.Armor.ArmArmor), filter.ArmArmor},
		term{float32(item.Armor.LegArmor), filter.LegArmor},
		term{item.Weight, filter.Weight},
	)
}

// ScoreWeapon values a weapon by its primary weapon component
func (c *Calculator) ScoreWeapon(item *equipment.Item, filter equipment.WeaponFilter) float32 {
	if item == nil {
		return equipment.EmptyScore
	}
	w := item.PrimaryWeapon()
	if w == nil {
		return 0
	}

	return weighted(
		term{float32(w.MaxDataValue), filter.MaxDataValue},
		term{float32(w.ThrustSpeed), filter.ThrustSpeed},
		term{float32(w.SwingSpeed), filter.SwingSpeed},
		term{float32(w.MissileSpeed), filter.MissileSpeed},
		term{float32(w.Length), filter.WeaponLength},
		term{float32(w.ThrustDamage), filter.ThrustDamage},
		term{float32(w.SwingDamage), filter.SwingDamage},
		term{float32(w.Handling), filter.Handling},
		term{float32(w.Accuracy), filter.Accuracy},
		term{item.Weight, filter.Weight},
	)
}

// ScoreMount values a mount
func (c *Calculator) ScoreMount(item *equipment.Item, filter equipment.MountFilter) float32 {
	if item == nil {
		return equipment.EmptyScore
	}
	if item.Horse == nil {
		return 0
	}

	return weighted(
		term{float32(item.Horse.ChargeDamage), filter.ChargeDamage},
		term{float32(item.Horse.HitPoints), filter.HitPoints},
		term{float32(item.Horse.Maneuver), filter.Maneuver},
		term{float32(item.Horse.Speed), filter.Speed},
	)
}
