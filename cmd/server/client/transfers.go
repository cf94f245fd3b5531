package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/equipbest/internal/handlers/upgrade/v1alpha1"
)

var listLimit int64

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Inspect a character's transfer journal",
}

var listTransfersCmd = &cobra.Command{
	Use:   "list [character-id]",
	Short: "List recorded transfers, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(func(c v1alpha1.UpgradeServiceClient) unaryCall { return c.ListTransfers },
			v1alpha1.ListTransfersRequest{CharacterID: args[0], Limit: listLimit})
	},
}

var clearTransfersCmd = &cobra.Command{
	Use:   "clear [character-id]",
	Short: "Delete a character's journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke(func(c v1alpha1.UpgradeServiceClient) unaryCall { return c.ClearTransfers },
			v1alpha1.ClearTransfersRequest{CharacterID: args[0]})
	},
}

func init() {
	listTransfersCmd.Flags().Int64Var(&listLimit, "limit", 0, "Only show the newest entries")
	transfersCmd.AddCommand(listTransfersCmd)
	transfersCmd.AddCommand(clearTransfersCmd)
}
