package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/equipbest/internal/handlers/upgrade/v1alpha1"
	"github.com/KirkDiggler/equipbest/internal/scenario"
)

var equipCivilian bool

var equipCmd = &cobra.Command{
	Use:   "equip [scenario.yaml]",
	Short: "Upgrade every slot of a scenario on the server",
	Long: `Send a scenario to EquipCharacter. Settings in the file override the
settings stored on the server. Queued transfers are recorded in the
character's journal.`,
	Args: cobra.ExactArgs(1),
	RunE: runEquip,
}

func init() {
	equipCmd.Flags().BoolVar(&equipCivilian, "civilian", false, "Upgrade the civilian set instead of the battle set")
}

func runEquip(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("civilian") {
		sc.Civilian = equipCivilian
	}

	return invoke(func(c v1alpha1.UpgradeServiceClient) unaryCall { return c.EquipCharacter },
		v1alpha1.EquipCharacterRequest{Scenario: *sc})
}
