package equipment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
)

func TestAllSlotsOrder(t *testing.T) {
	slots := equipment.AllSlots()
	require.Len(t, slots, equipment.NumSlots)
	assert.Equal(t, equipment.SlotWeapon0, slots[0])
	assert.Equal(t, equipment.SlotHorseHarness, slots[len(slots)-1])

	for i, slot := range slots {
		assert.Equal(t, i < equipment.NumWeaponSlots, slot.IsWeapon(), slot.String())
	}
}

func TestSlotValidity(t *testing.T) {
	assert.False(t, equipment.SlotNone.IsValid())
	assert.False(t, equipment.SlotNone.IsWeapon())
	assert.True(t, equipment.SlotHorseHarness.IsValid())
	assert.False(t, equipment.Slot(99).IsValid())
}

func TestSlotFilterIndex(t *testing.T) {
	testCases := []struct {
		slot  equipment.Slot
		kind  equipment.FilterKind
		index int
	}{
		{equipment.SlotWeapon0, equipment.FilterWeapon, 0},
		{equipment.SlotWeapon3, equipment.FilterWeapon, 3},
		{equipment.SlotHead, equipment.FilterArmor, 0},
		{equipment.SlotCape, equipment.FilterArmor, 1},
		{equipment.SlotBody, equipment.FilterArmor, 2},
		{equipment.SlotGloves, equipment.FilterArmor, 3},
		{equipment.SlotLeg, equipment.FilterArmor, 4},
		{equipment.SlotHorseHarness, equipment.FilterArmor, 5},
		{equipment.SlotHorse, equipment.FilterMount, 0},
		{equipment.SlotNone, equipment.FilterNone, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.slot.String(), func(t *testing.T) {
			kind, index := tc.slot.FilterIndex()
			assert.Equal(t, tc.kind, kind)
			assert.Equal(t, tc.index, index)
		})
	}
}

func TestSlotText(t *testing.T) {
	for _, slot := range append(equipment.AllSlots(), equipment.SlotNone) {
		raw, err := json.Marshal(slot)
		require.NoError(t, err)

		var back equipment.Slot
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, slot, back)
	}

	var bad equipment.Slot
	assert.Error(t, json.Unmarshal([]byte(`"shoulders"`), &bad))

	slot, ok := equipment.SlotFromString(" Horse_Harness ")
	assert.True(t, ok)
	assert.Equal(t, equipment.SlotHorseHarness, slot)
}

func TestEquipmentGetSet(t *testing.T) {
	helmet := &equipment.Item{ID: "helmet", Slot: equipment.SlotHead}
	eq := equipment.NewEquipment(map[equipment.Slot]*equipment.Item{equipment.SlotHead: helmet})

	assert.Equal(t, "helmet", eq.Get(equipment.SlotHead).ID())
	assert.True(t, eq.Get(equipment.SlotBody).IsEmpty())
	assert.True(t, eq.Get(equipment.SlotNone).IsEmpty())

	clone := eq.Clone()
	clone.Set(equipment.SlotHead, equipment.Empty())
	assert.False(t, eq.Get(equipment.SlotHead).IsEmpty())
	assert.True(t, clone.Get(equipment.SlotHead).IsEmpty())
	assert.Len(t, eq.Slots(), 1)
}
