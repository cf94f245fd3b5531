package upgrade

import (
	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
)

// IsEligible reports whether a candidate stack may be considered at all.
// Camels, camel harnesses, items the character lacks the skill for,
// non-equipable stacks and battle items in a civilian context are excluded.
func IsEligible(
	stack equipment.Stack,
	character *equipment.Character,
	civilian bool,
	checker equipment.SkillChecker,
) bool {
	item := stack.Item()
	if item == nil {
		return false
	}
	if item.IsCamel() || item.IsCamelHarness() {
		return false
	}
	if !stack.Equipable {
		return false
	}
	if civilian && !item.Civilian {
		return false
	}
	return checker.CanUse(character, item)
}

// IsCompatible reports whether a weapon candidate can replace the weapon
// currently in a slot: same class, same usage, and a couch weapon may only
// be replaced by another couch weapon. A current item that is not a weapon is
// never compatible.
func IsCompatible(candidate *equipment.Item, current equipment.Element) bool {
	cw := candidate.PrimaryWeapon()
	ew := current.Item.PrimaryWeapon()
	if cw == nil || ew == nil {
		return false
	}
	if cw.Class != ew.Class {
		return false
	}
	if candidate.ItemUsage() != current.Item.ItemUsage() {
		return false
	}
	if current.Item.IsCouchWeapon() && !candidate.IsCouchWeapon() {
		return false
	}
	return true
}

// Comparable reports whether a candidate competes for slot at all. Weapon
// candidates for weapon slots go through IsCompatible; everything else must
// carry the slot's tag.
func Comparable(candidate *equipment.Item, current equipment.Element, slot equipment.Slot) bool {
	if candidate == nil {
		return false
	}
	if slot.IsWeapon() && candidate.PrimaryWeapon() != nil {
		return IsCompatible(candidate, current)
	}
	return candidate.Slot == slot
}

// Selector runs the per-pool and cross-pool selection for one slot.
// It has no side effects.
type Selector struct {
	scorer  Scorer
	checker equipment.SkillChecker
}

// NewSelector returns a Selector. A nil checker uses the skill table check.
func NewSelector(scorer Scorer, checker equipment.SkillChecker) *Selector {
	if checker == nil {
		checker = equipment.DefaultSkillChecker
	}
	return &Selector{scorer: scorer, checker: checker}
}

// Value scores an element for slot. The empty element always scores
// equipment.EmptyScore. Armor is scored before weapons, weapons before mounts,
// and items with none of those components score 0.
func (s *Selector) Value(element equipment.Element, slot equipment.Slot, settings *equipment.Settings) float32 {
	if element.IsEmpty() {
		return equipment.EmptyScore
	}

	_, index := slot.FilterIndex()
	item := element.Item
	switch {
	case item.Armor != nil:
		return s.scorer.ScoreArmor(item, settings.ArmorFilterAt(index))
	case item.PrimaryWeapon() != nil:
		return s.scorer.ScoreWeapon(item, settings.WeaponFilterAt(index))
	case item.Horse != nil:
		var mount equipment.MountFilter
		if settings != nil {
			mount = settings.Mount
		}
		return s.scorer.ScoreMount(item, mount)
	default:
		return 0
	}
}

// PickBest scans pool once, in order, and returns the best eligible and
// comparable candidate that beats the current item. A candidate must score
// strictly higher than the incumbent and must not score 0. Earlier entries
// win ties. Returns the empty element when nothing qualifies.
func (s *Selector) PickBest(
	pool []equipment.Stack,
	current equipment.Element,
	slot equipment.Slot,
	civilian bool,
	profile *equipment.Profile,
) equipment.Element {
	best := equipment.Empty()
	bestValue := s.Value(current, slot, profile.Settings)

	for _, stack := range pool {
		if !IsEligible(stack, profile.Character, civilian, s.checker) {
			continue
		}
		if !Comparable(stack.Item(), current, slot) {
			continue
		}

		value := s.Value(stack.Element, slot, profile.Settings)
		if value > bestValue && value != 0 {
			best = stack.Element
			bestValue = value
		}
	}

	return best
}

// Resolve picks between the two pool winners. When both are present the
// higher score wins and ties go to the right pool.
func (s *Selector) Resolve(
	left, right equipment.Element,
	slot equipment.Slot,
	settings *equipment.Settings,
) equipment.Decision {
	decision := equipment.Decision{Slot: slot, Winner: equipment.Empty()}

	switch {
	case left.IsEmpty() && right.IsEmpty():
		return decision
	case right.IsEmpty():
		decision.Winner, decision.Source = left, equipment.PoolLeft
	case left.IsEmpty():
		decision.Winner, decision.Source = right, equipment.PoolRight
	case s.Value(left, slot, settings) > s.Value(right, slot, settings):
		decision.Winner, decision.Source = left, equipment.PoolLeft
	default:
		decision.Winner, decision.Source = right, equipment.PoolRight
	}

	return decision
}
