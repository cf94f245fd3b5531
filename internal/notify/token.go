// Package notify renders and delivers the "hero equips ..." messages emitted
// after an upgrade is applied.
package notify

import (
	"strings"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
)

// Token identifies a localizable message
type Token string

// Message tokens, one per slot
const (
	TokenWeapon0      Token = "equip.weapon0"
	TokenWeapon1      Token = "equip.weapon1"
	TokenWeapon2      Token = "equip.weapon2"
	TokenWeapon3      Token = "equip.weapon3"
	TokenHead         Token = "equip.head"
	TokenBody         Token = "equip.body"
	TokenLeg          Token = "equip.leg"
	TokenGloves       Token = "equip.gloves"
	TokenCape         Token = "equip.cape"
	TokenHorse        Token = "equip.horse"
	TokenHorseHarness Token = "equip.horse_harness"
)

// HeroVariable is replaced with the character's display name
const HeroVariable = "{Hero}"

var tokenBySlot = map[equipment.Slot]Token{
	equipment.SlotWeapon0:      TokenWeapon0,
	equipment.SlotWeapon1:      TokenWeapon1,
	equipment.SlotWeapon2:      TokenWeapon2,
	equipment.SlotWeapon3:      TokenWeapon3,
	equipment.SlotHead:         TokenHead,
	equipment.SlotBody:         TokenBody,
	equipment.SlotLeg:          TokenLeg,
	equipment.SlotGloves:       TokenGloves,
	equipment.SlotCape:         TokenCape,
	equipment.SlotHorse:        TokenHorse,
	equipment.SlotHorseHarness: TokenHorseHarness,
}

// TokenForSlot returns the message token for a slot. Slots without a message
// return false.
func TokenForSlot(slot equipment.Slot) (Token, bool) {
	token, ok := tokenBySlot[slot]
	return token, ok
}

// Catalog maps tokens to message templates
type Catalog struct {
	templates map[Token]string
}

// DefaultCatalog returns the English templates
func DefaultCatalog() *Catalog {
	return NewCatalog(map[Token]string{
		TokenWeapon0:      "{Hero} equips weapon in the first slot",
		TokenWeapon1:      "{Hero} equips weapon in the second slot",
		TokenWeapon2:      "{Hero} equips weapon in the third slot",
		TokenWeapon3:      "{Hero} equips weapon in the fourth slot",
		TokenHead:         "{Hero} equips helmet",
		TokenBody:         "{Hero} equips body armor",
		TokenLeg:          "{Hero} equips boots",
		TokenGloves:       "{Hero} equips gloves",
		TokenCape:         "{Hero} equips cape",
		TokenHorse:        "{Hero} equips horse",
		TokenHorseHarness: "{Hero} equips horse harness",
	})
}

// NewCatalog builds a catalog from templates
func NewCatalog(templates map[Token]string) *Catalog {
	c := &Catalog{templates: make(map[Token]string, len(templates))}
	for token, template := range templates {
		c.templates[token] = template
	}
	return c
}

// Render substitutes the hero name into the token's template. Unknown tokens
// render as the token itself.
func (c *Catalog) Render(token Token, heroName string) string {
	template, ok := c.templates[token]
	if !ok {
		template = string(token)
	}
	return strings.ReplaceAll(template, HeroVariable, heroName)
}
