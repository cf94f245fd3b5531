package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/handlers/upgrade/v1alpha1"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read or store a character's upgrade settings",
}

var getSettingsCmd = &cobra.Command{
	Use:   "get [character-name]",
	Short: "Show stored settings, or the defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(func(c v1alpha1.UpgradeServiceClient) unaryCall { return c.GetSettings },
			v1alpha1.GetSettingsRequest{CharacterName: args[0]})
	},
}

var setSettingsCmd = &cobra.Command{
	Use:   "set [character-name] [settings.yaml]",
	Short: "Store settings from a YAML file",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1]) // #nosec G304 -- path comes from the operator
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		stored := equipment.DefaultSettings()
		if err := yaml.Unmarshal(data, stored); err != nil {
			return fmt.Errorf("failed to decode settings: %w", err)
		}

		return invoke(func(c v1alpha1.UpgradeServiceClient) unaryCall { return c.UpdateSettings },
			v1alpha1.UpdateSettingsRequest{CharacterName: args[0], Settings: stored})
	},
}

func init() {
	settingsCmd.AddCommand(getSettingsCmd)
	settingsCmd.AddCommand(setSettingsCmd)
}
