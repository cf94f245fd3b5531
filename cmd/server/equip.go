package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/equipbest/internal/handlers/upgrade/v1alpha1"
	"github.com/KirkDiggler/equipbest/internal/notify"
	"github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade"
	"github.com/KirkDiggler/equipbest/internal/pkg/idgen"
	"github.com/KirkDiggler/equipbest/internal/scenario"
	"github.com/KirkDiggler/equipbest/internal/scoring"
)

var (
	equipCivilian bool
	equipVerbose  bool
)

var equipCmd = &cobra.Command{
	Use:   "equip [scenario.yaml]",
	Short: "Run an upgrade pass on a scenario file",
	Long: `Run every slot of the scenario's character against its inventories
without a server and print the resulting decisions, transfers and equipment as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runEquip,
}

func init() {
	equipCmd.Flags().BoolVar(&equipCivilian, "civilian", false, "Upgrade the civilian set instead of the battle set")
	equipCmd.Flags().BoolVar(&equipVerbose, "verbose", false, "Log every applied upgrade to stderr")
}

func runEquip(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("civilian") {
		sc.Civilian = equipCivilian
	}

	catalog := notify.DefaultCatalog()
	recorder := notify.NewRecorder(catalog)
	notifiers := notify.Multi{recorder}
	if equipVerbose {
		notifiers = append(notifiers, notify.NewLogger(catalog, slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	svc, err := upgrade.NewOrchestrator(&upgrade.Config{
		Scorer:      scoring.New(),
		Notifier:    notifiers,
		IDGenerator: idgen.NewSequential("transfer"),
	})
	if err != nil {
		return fmt.Errorf("failed to create upgrade orchestrator: %w", err)
	}

	ctx := context.Background()
	profile := sc.Profile(nil)
	host := sc.Host()

	out, err := svc.EquipCharacter(ctx, &upgrade.EquipCharacterInput{
		Profile:  profile,
		Host:     host,
		Civilian: sc.Civilian,
	})
	if err != nil {
		return err
	}

	set, err := host.Equipment(ctx, sc.Civilian)
	if err != nil {
		return err
	}

	result := v1alpha1.EquipCharacterResponse{
		Decisions: out.Decisions,
		Transfers: out.Transfers,
		Skipped:   out.Skipped,
		Messages:  recorder.Messages(),
		Player:    host.Player(),
		Other:     host.Other(),
		Equipment: set.Slots(),
	}
	result.Summary, _ = host.Summary()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
