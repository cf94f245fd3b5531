// Package scenario decodes upgrade scenarios: a character, its settings and
// the two inventories, as written in YAML or JSON files.
package scenario

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	"github.com/KirkDiggler/equipbest/internal/inventory"
)

// Scenario is the decoded file
type Scenario struct {
	Character Character           `yaml:"character" json:"character"`
	Settings  *equipment.Settings `yaml:"settings,omitempty" json:"settings,omitempty"`
	Civilian  bool                `yaml:"civilian,omitempty" json:"civilian,omitempty"`
	Player    []Stack             `yaml:"player,omitempty" json:"player,omitempty"`
	Other     []Stack             `yaml:"other,omitempty" json:"other,omitempty"`
}

// Character describes the acting hero. Equipment maps slot names to items.
type Character struct {
	ID       string                     `yaml:"id" json:"id"`
	Name     string                     `yaml:"name" json:"name"`
	Skills   map[string]int32           `yaml:"skills,omitempty" json:"skills,omitempty"`
	Battle   map[string]*equipment.Item `yaml:"battle,omitempty" json:"battle,omitempty"`
	Civilian map[string]*equipment.Item `yaml:"civilian,omitempty" json:"civilian,omitempty"`
}

// Stack is an inventory entry. Count defaults to 1 and Equipable to true.
type Stack struct {
	Item      *equipment.Item `yaml:"item" json:"item"`
	Count     *int32          `yaml:"count,omitempty" json:"count,omitempty"`
	Equipable *bool           `yaml:"equipable,omitempty" json:"equipable,omitempty"`
}

// Decode reads a YAML (or JSON) scenario
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scenario file
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("failed to open scenario %s", path))
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Validate checks the scenario is usable
func (s *Scenario) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Character.ID == "" {
		vb.RequiredField("character.id")
	}
	if s.Character.Name == "" {
		vb.RequiredField("character.name")
	}
	checkSlots(vb, "character.battle", s.Character.Battle)
	checkSlots(vb, "character.civilian", s.Character.Civilian)
	checkStacks(vb, "player", s.Player)
	checkStacks(vb, "other", s.Other)

	return vb.Build()
}

func checkSlots(vb *errors.ValidationBuilder, field string, items map[string]*equipment.Item) {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slot, ok := equipment.SlotFromString(name)
		if !ok || !slot.IsValid() {
			vb.Fieldf(field, "unknown slot %q", name)
			continue
		}
		if items[name] == nil || items[name].ID == "" {
			vb.Fieldf(field, "slot %s has no item id", name)
		}
	}
}

func checkStacks(vb *errors.ValidationBuilder, field string, stacks []Stack) {
	for i, st := range stacks {
		if st.Item == nil || st.Item.ID == "" {
			vb.Fieldf(field, "entry %d has no item id", i)
		}
		if st.Count != nil && *st.Count < 0 {
			vb.Fieldf(field, "entry %d has a negative count", i)
		}
	}
}

func buildEquipment(items map[string]*equipment.Item) *equipment.Equipment {
	set := &equipment.Equipment{}
	for name, item := range items {
		if slot, ok := equipment.SlotFromString(name); ok {
			set.Set(slot, equipment.Of(item))
		}
	}
	return set
}

func buildStacks(stacks []Stack) []equipment.Stack {
	out := make([]equipment.Stack, 0, len(stacks))
	for _, st := range stacks {
		entry := equipment.Stack{Element: equipment.Of(st.Item), Count: 1, Equipable: true}
		if st.Count != nil {
			entry.Count = *st.Count
		}
		if st.Equipable != nil {
			entry.Equipable = *st.Equipable
		}
		out = append(out, entry)
	}
	return out
}

// Profile builds the character and settings. Missing settings fall back to
// the given defaults, or equipment.DefaultSettings when nil.
func (s *Scenario) Profile(defaults *equipment.Settings) *equipment.Profile {
	settings := s.Settings
	if settings == nil {
		settings = defaults
	}
	if settings == nil {
		settings = equipment.DefaultSettings()
	}

	return &equipment.Profile{
		Character: &equipment.Character{
			ID:       s.Character.ID,
			Name:     s.Character.Name,
			Skills:   s.Character.Skills,
			Battle:   buildEquipment(s.Character.Battle),
			Civilian: buildEquipment(s.Character.Civilian),
		},
		Settings: settings,
	}
}

// Host builds an in-memory host holding the scenario's inventories and the
// character's equipment
func (s *Scenario) Host() *inventory.Memory {
	return inventory.NewMemory(&inventory.Config{
		Player:   buildStacks(s.Player),
		Other:    buildStacks(s.Other),
		Battle:   buildEquipment(s.Character.Battle),
		Civilian: buildEquipment(s.Character.Civilian),
	})
}
