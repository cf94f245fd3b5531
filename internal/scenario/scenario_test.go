package scenario_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	"github.com/KirkDiggler/equipbest/internal/scenario"
)

func TestLoadCaravan(t *testing.T) {
	s, err := scenario.Load("testdata/caravan.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Aldric", s.Character.Name)
	assert.Nil(t, s.Settings)
	require.Len(t, s.Player, 2)
	require.Len(t, s.Other, 5)

	profile := s.Profile(nil)
	assert.Equal(t, equipment.DefaultSettings(), profile.Settings)
	assert.Equal(t, "arming_sword", profile.Character.Battle.Get(equipment.SlotWeapon0).ID())
	assert.Equal(t, "leather_cap", profile.Character.Battle.Get(equipment.SlotHead).ID())
	assert.True(t, profile.Character.Civilian.Get(equipment.SlotHead).IsEmpty())
	assert.Equal(t, int32(60), profile.Character.SkillValue("riding"))

	host := s.Host()
	player := host.Player()
	require.Len(t, player, 2)
	assert.Equal(t, int32(1), player[0].Count)
	assert.True(t, player[0].Equipable)
	assert.False(t, player[1].Equipable)
	assert.Equal(t, int32(2), host.Other()[3].Count)
	assert.True(t, host.Other()[2].Item().IsCamel())
}

func TestProfileSettingsPrecedence(t *testing.T) {
	s := &scenario.Scenario{Character: scenario.Character{ID: "c", Name: "n"}}

	defaults := equipment.DefaultSettings()
	defaults.LeftLocked = true
	assert.Same(t, defaults, s.Profile(defaults).Settings)

	own := &equipment.Settings{RightLocked: true}
	s.Settings = own
	assert.Same(t, own, s.Profile(defaults).Settings)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		message string
	}{
		{name: "missing character", doc: "player: []\n", message: "character.id"},
		{name: "unknown slot", doc: "character: {id: c, name: n, battle: {hat: {id: x}}}\n", message: `unknown slot "hat"`},
		{name: "stack without item", doc: "character: {id: c, name: n}\nother: [{count: 1}]\n", message: "entry 0 has no item id"},
		{name: "unknown field", doc: "character: {id: c, name: n}\nextra: 1\n", message: "failed to decode scenario"},
		{name: "bad slot value", doc: "character: {id: c, name: n}\nother: [{item: {id: x, slot: hat}}]\n", message: "failed to decode scenario"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Decode(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenario.Load("testdata/nope.yaml")
	assert.True(t, errors.IsNotFound(err))
}
