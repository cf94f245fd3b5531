// Package main is the entry point for the equipbest server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/equipbest/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "equipbest",
	Short: "Equipment upgrade server",
	Long:  `equipbest picks the best equipment upgrade per slot from two inventories and plans the transfers to apply it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
