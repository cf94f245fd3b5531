// Package inventory holds an in-memory host for upgrade runs: the player's
// inventory, the other party's inventory, and the character's two equipment
// sets. Queued transfers are applied immediately.
package inventory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
)

// Config seeds a Memory host
type Config struct {
	Player   []equipment.Stack
	Other    []equipment.Stack
	Battle   *equipment.Equipment
	Civilian *equipment.Equipment
}

// Summary is the derived information refreshed after a run
type Summary struct {
	BattleWeight   float32 `json:"battle_weight"`
	CivilianWeight float32 `json:"civilian_weight"`
	PlayerStacks   int     `json:"player_stacks"`
	OtherStacks    int     `json:"other_stacks"`
}

// Memory is a Host backed by slices
type Memory struct {
	mu        sync.Mutex
	player    []equipment.Stack
	other     []equipment.Stack
	battle    *equipment.Equipment
	civilian  *equipment.Equipment
	journal   []equipment.TransferCommand
	summary   Summary
	refreshes int
}

// NewMemory creates a Memory host. Stacks and equipment are copied.
func NewMemory(cfg *Config) *Memory {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Memory{
		player:   cloneStacks(cfg.Player),
		other:    cloneStacks(cfg.Other),
		battle:   cfg.Battle.Clone(),
		civilian: cfg.Civilian.Clone(),
	}
}

func cloneStacks(stacks []equipment.Stack) []equipment.Stack {
	out := make([]equipment.Stack, len(stacks))
	copy(out, stacks)
	return out
}

// Pools returns the other inventory as the left pool and the player's
// inventory as the right pool. The slot does not narrow the pools.
func (m *Memory) Pools(_ context.Context, _ equipment.Slot) ([]equipment.Stack, []equipment.Stack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneStacks(m.other), cloneStacks(m.player), nil
}

// Equipment returns a copy of the battle or civilian set
func (m *Memory) Equipment(_ context.Context, civilian bool) (*equipment.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.set(civilian).Clone(), nil
}

func (m *Memory) set(civilian bool) *equipment.Equipment {
	if civilian {
		return m.civilian
	}
	return m.battle
}

func (m *Memory) stacks(location equipment.Location) (*[]equipment.Stack, error) {
	switch location {
	case equipment.LocationPlayerInventory:
		return &m.player, nil
	case equipment.LocationOtherInventory:
		return &m.other, nil
	default:
		return nil, errors.InvalidArgumentf("not an inventory location: %s", location)
	}
}

// AddTransferCommand applies a transfer and records it in the journal
func (m *Memory) AddTransferCommand(_ context.Context, cmd equipment.TransferCommand) error {
	if cmd.Element.IsEmpty() {
		return errors.InvalidArgument("transfer has no item")
	}
	if cmd.Quantity <= 0 {
		return errors.InvalidArgumentf("invalid transfer quantity: %d", cmd.Quantity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case cmd.From == equipment.LocationEquipment && cmd.To != equipment.LocationEquipment:
		if err := m.unequip(cmd); err != nil {
			return err
		}
	case cmd.To == equipment.LocationEquipment && cmd.From != equipment.LocationEquipment:
		if err := m.equip(cmd); err != nil {
			return err
		}
	default:
		return errors.InvalidArgumentf("unsupported transfer %s -> %s", cmd.From, cmd.To)
	}

	m.journal = append(m.journal, cmd)
	return nil
}

func (m *Memory) unequip(cmd equipment.TransferCommand) error {
	set := m.set(cmd.Civilian)
	if set.Get(cmd.FromSlot).ID() != cmd.Element.ID() {
		return errors.FailedPreconditionf("item %s is not equipped in %s", cmd.Element.ID(), cmd.FromSlot)
	}

	dest, err := m.stacks(cmd.To)
	if err != nil {
		return err
	}

	set.Set(cmd.FromSlot, equipment.Empty())
	for i := range *dest {
		if (*dest)[i].Element.ID() == cmd.Element.ID() {
			(*dest)[i].Count += cmd.Quantity
			return nil
		}
	}
	*dest = append(*dest, equipment.Stack{Element: cmd.Element, Count: cmd.Quantity, Equipable: true})
	return nil
}

func (m *Memory) equip(cmd equipment.TransferCommand) error {
	if !cmd.ToSlot.IsValid() {
		return errors.InvalidArgumentf("invalid target slot: %s", cmd.ToSlot)
	}

	src, err := m.stacks(cmd.From)
	if err != nil {
		return err
	}

	for i := range *src {
		stack := &(*src)[i]
		if stack.Element.ID() != cmd.Element.ID() || stack.Count < cmd.Quantity {
			continue
		}
		stack.Count -= cmd.Quantity
		m.set(cmd.Civilian).Set(cmd.ToSlot, cmd.Element)
		return nil
	}

	return errors.NotFoundf("item %s not found in %s", cmd.Element.ID(), cmd.From)
}

// RemoveZeroCounts drops empty stacks from both inventories
func (m *Memory) RemoveZeroCounts(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.player = removeZero(m.player)
	m.other = removeZero(m.other)
	return nil
}

func removeZero(stacks []equipment.Stack) []equipment.Stack {
	out := stacks[:0]
	for _, s := range stacks {
		if s.Count > 0 {
			out = append(out, s)
		}
	}
	return out
}

// RefreshInformationValues recomputes the summary
func (m *Memory) RefreshInformationValues(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.summary = Summary{
		BattleWeight:   setWeight(m.battle),
		CivilianWeight: setWeight(m.civilian),
		PlayerStacks:   len(m.player),
		OtherStacks:    len(m.other),
	}
	m.refreshes++
	return nil
}

func setWeight(set *equipment.Equipment) float32 {
	var total float32
	for _, slot := range equipment.AllSlots() {
		if el := set.Get(slot); !el.IsEmpty() {
			total += el.Item.Weight
		}
	}
	return total
}

// Journal returns the applied transfers in order
func (m *Memory) Journal() []equipment.TransferCommand {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]equipment.TransferCommand, len(m.journal))
	copy(out, m.journal)
	return out
}

// Player returns a copy of the player's inventory
func (m *Memory) Player() []equipment.Stack {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneStacks(m.player)
}

// Other returns a copy of the other inventory
func (m *Memory) Other() []equipment.Stack {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneStacks(m.other)
}

// Summary returns the last refreshed summary and how many refreshes ran
func (m *Memory) Summary() (Summary, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary, m.refreshes
}
