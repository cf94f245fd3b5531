// Package upgrade picks the best replacement item for a character's equipment
// slots and queues the inventory transfers that perform the swap.
package upgrade

//go:generate mockgen -destination=mock/mock_service.go -package=upgrademock github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade Service,Host,Notifier,Scorer

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	"github.com/KirkDiggler/equipbest/internal/notify"
	"github.com/KirkDiggler/equipbest/internal/pkg/clock"
	"github.com/KirkDiggler/equipbest/internal/pkg/idgen"
)

// Service defines the interface for equipment upgrade operations
type Service interface {
	// PlanSlot decides one slot without touching any inventory
	PlanSlot(ctx context.Context, input *PlanSlotInput) (*PlanSlotOutput, error)
	// EquipSlot plans one slot from the host's state and applies the plan.
	// It does not refresh the host.
	EquipSlot(ctx context.Context, input *EquipSlotInput) (*EquipSlotOutput, error)
	// EquipCharacter runs every slot in order and refreshes the host once
	EquipCharacter(ctx context.Context, input *EquipCharacterInput) (*EquipCharacterOutput, error)
}

// Scorer values items against a character's filters
type Scorer interface {
	ScoreArmor(item *equipment.Item, filter equipment.ArmorFilter) float32
	ScoreWeapon(item *equipment.Item, filter equipment.WeaponFilter) float32
	ScoreMount(item *equipment.Item, filter equipment.MountFilter) float32
}

// Host owns the inventories being upgraded
type Host interface {
	// Pools returns the left and right candidate pools for a slot
	Pools(ctx context.Context, slot equipment.Slot) (left, right []equipment.Stack, err error)
	// Equipment returns the current battle or civilian set
	Equipment(ctx context.Context, civilian bool) (*equipment.Equipment, error)
	AddTransferCommand(ctx context.Context, cmd equipment.TransferCommand) error
	RemoveZeroCounts(ctx context.Context) error
	RefreshInformationValues(ctx context.Context) error
}

// Notifier receives the message for every applied upgrade
type Notifier interface {
	Notify(ctx context.Context, token notify.Token, heroName string)
}

// Config holds the dependencies for the upgrade orchestrator
type Config struct {
	Scorer       Scorer
	SkillChecker equipment.SkillChecker
	Notifier     Notifier
	IDGenerator  idgen.Generator
	Clock        clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Scorer == nil {
		vb.RequiredField("Scorer")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	selector *Selector
	notifier Notifier
	idGen    idgen.Generator
	clock    clock.Clock
}

// NewOrchestrator creates a new upgrade orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		selector: NewSelector(cfg.Scorer, cfg.SkillChecker),
		notifier: cfg.Notifier,
		idGen:    cfg.IDGenerator,
		clock:    clk,
	}, nil
}

func validateProfile(profile *equipment.Profile) error {
	if profile == nil {
		return errors.FailedPrecondition("profile is required")
	}
	if profile.Character == nil {
		return errors.FailedPrecondition("profile has no character")
	}
	if profile.Settings == nil {
		return errors.FailedPrecondition("profile has no settings")
	}
	return nil
}

// PlanSlot decides one slot from the supplied pools
func (o *orchestrator) PlanSlot(_ context.Context, input *PlanSlotInput) (*PlanSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("invalid slot: %s", input.Slot)
	}

	return o.plan(input.Profile, input.Slot, input.Current, input.Left, input.Right, input.Civilian), nil
}

// plan is the pure part of a slot evaluation
func (o *orchestrator) plan(
	profile *equipment.Profile,
	slot equipment.Slot,
	current equipment.Element,
	left, right []equipment.Stack,
	civilian bool,
) *PlanSlotOutput {
	bestLeft, bestRight := equipment.Empty(), equipment.Empty()
	if !profile.Settings.IsLocked(equipment.PoolLeft) {
		bestLeft = o.selector.PickBest(left, current, slot, civilian, profile)
	}
	if !profile.Settings.IsLocked(equipment.PoolRight) {
		bestRight = o.selector.PickBest(right, current, slot, civilian, profile)
	}

	out := &PlanSlotOutput{
		Decision: o.selector.Resolve(bestLeft, bestRight, slot, profile.Settings),
	}
	if !out.Decision.HasWinner() {
		return out
	}

	now := o.clock.Now()
	base := equipment.TransferCommand{
		Quantity:    1,
		CharacterID: profile.Character.ID,
		Civilian:    civilian,
		QueuedAt:    now,
	}

	if !current.IsEmpty() {
		unequip := base
		unequip.ID = o.idGen.Generate()
		unequip.From = equipment.LocationEquipment
		unequip.To = equipment.HoldingLocation
		unequip.Element = current
		unequip.FromSlot = slot
		unequip.ToSlot = equipment.SlotNone
		out.Transfers = append(out.Transfers, unequip)
	}

	equip := base
	equip.ID = o.idGen.Generate()
	equip.From = equipment.LocationForPool(out.Decision.Source)
	equip.To = equipment.LocationEquipment
	equip.Element = out.Decision.Winner
	equip.FromSlot = equipment.SlotNone
	equip.ToSlot = slot
	out.Transfers = append(out.Transfers, equip)

	if token, ok := notify.TokenForSlot(slot); ok {
		out.Message = token
	}

	return out
}

// apply queues the plan's transfers, sends the message and drops empty
// stacks. Host failures are logged and skipped.
func (o *orchestrator) apply(ctx context.Context, host Host, profile *equipment.Profile, plan *PlanSlotOutput) {
	if !plan.Decision.HasWinner() {
		return
	}

	for _, cmd := range plan.Transfers {
		if err := host.AddTransferCommand(ctx, cmd); err != nil {
			slog.Warn("Failed to queue transfer",
				"character_id", cmd.CharacterID,
				"transfer_id", cmd.ID,
				"item_id", cmd.Element.ID(),
				"from", cmd.From,
				"to", cmd.To,
				"error", err,
			)
		}
	}

	if plan.Message != "" {
		o.notifier.Notify(ctx, plan.Message, profile.Character.Name)
	}

	if err := host.RemoveZeroCounts(ctx); err != nil {
		slog.Warn("Failed to remove empty stacks",
			"character_id", profile.Character.ID,
			"error", err,
		)
	}

	slog.Info("Equipped upgrade",
		"character_id", profile.Character.ID,
		"slot", plan.Decision.Slot.String(),
		"item_id", plan.Decision.Winner.ID(),
		"source", string(plan.Decision.Source),
	)
}

// equipSlot reads the host, plans and applies one slot
func (o *orchestrator) equipSlot(
	ctx context.Context,
	host Host,
	profile *equipment.Profile,
	slot equipment.Slot,
	current equipment.Element,
	civilian bool,
) (*PlanSlotOutput, error) {
	left, right, err := host.Pools(ctx, slot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pools for slot %s", slot)
	}

	plan := o.plan(profile, slot, current, left, right, civilian)
	o.apply(ctx, host, profile, plan)

	return plan, nil
}

// EquipSlot plans and applies one slot
func (o *orchestrator) EquipSlot(ctx context.Context, input *EquipSlotInput) (*EquipSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}
	if input.Host == nil {
		return nil, errors.InvalidArgument("host is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("invalid slot: %s", input.Slot)
	}

	set, err := input.Host.Equipment(ctx, input.Civilian)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get equipment")
	}

	plan, err := o.equipSlot(ctx, input.Host, input.Profile, input.Slot, set.Get(input.Slot), input.Civilian)
	if err != nil {
		return nil, err
	}

	return &EquipSlotOutput{
		Decision:  plan.Decision,
		Transfers: plan.Transfers,
	}, nil
}

// skipSlot reports slots that are not evaluated in a full run: empty weapon
// slots, and the harness when no horse is equipped.
func skipSlot(slot equipment.Slot, set *equipment.Equipment) bool {
	if slot.IsWeapon() && set.Get(slot).IsEmpty() {
		return true
	}
	if slot == equipment.SlotHorseHarness && set.Get(equipment.SlotHorse).IsEmpty() {
		return true
	}
	return false
}

// EquipCharacter evaluates every slot in order. Equipment and pools are read
// again before each slot so earlier transfers are visible to later slots.
func (o *orchestrator) EquipCharacter(ctx context.Context, input *EquipCharacterInput) (*EquipCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}
	if input.Host == nil {
		return nil, errors.InvalidArgument("host is required")
	}

	out := &EquipCharacterOutput{}
	for _, slot := range equipment.AllSlots() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "equip run canceled")
		}

		set, err := input.Host.Equipment(ctx, input.Civilian)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get equipment")
		}

		if skipSlot(slot, set) {
			slog.Debug("Skipping slot",
				"character_id", input.Profile.Character.ID,
				"slot", slot.String(),
			)
			out.Skipped = append(out.Skipped, slot)
			continue
		}

		plan, err := o.equipSlot(ctx, input.Host, input.Profile, slot, set.Get(slot), input.Civilian)
		if err != nil {
			return nil, err
		}

		out.Decisions = append(out.Decisions, plan.Decision)
		out.Transfers = append(out.Transfers, plan.Transfers...)
	}

	if err := input.Host.RefreshInformationValues(ctx); err != nil {
		slog.Warn("Failed to refresh inventory information",
			"character_id", input.Profile.Character.ID,
			"error", err,
		)
	}

	return out, nil
}
