package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/handlers/upgrade/v1alpha1"
	"github.com/KirkDiggler/equipbest/internal/scenario"
)

var planCmd = &cobra.Command{
	Use:   "plan [scenario.yaml] [slot]",
	Short: "Plan the upgrade of one slot",
	Long: `Ask the server for the best upgrade of one slot without applying it.
Slots: weapon0-weapon3, head, body, leg, gloves, cape, horse, horse_harness.`,
	Args: cobra.ExactArgs(2),
	RunE: runPlan,
}

func runPlan(_ *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	slot, ok := equipment.SlotFromString(args[1])
	if !ok || !slot.IsValid() {
		return fmt.Errorf("unknown slot: %s", args[1])
	}

	return invoke(func(c v1alpha1.UpgradeServiceClient) unaryCall { return c.PlanSlot },
		v1alpha1.PlanSlotRequest{Scenario: *sc, Slot: slot})
}
