// Package client provides commands that call a running equipbest server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/equipbest/internal/handlers/upgrade/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the equipbest server",
	Long:  `Client commands call a running equipbest server over gRPC and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(planCmd)
	ClientCmd.AddCommand(settingsCmd)
	ClientCmd.AddCommand(transfersCmd)
}

// createUpgradeClient creates an upgrade service client
func createUpgradeClient() (v1alpha1.UpgradeServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewUpgradeServiceClient(conn), cleanup, nil
}

type unaryCall func(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

// invoke encodes req, calls the method selected by pick and prints the response
func invoke(pick func(v1alpha1.UpgradeServiceClient) unaryCall, req any) error {
	client, cleanup, err := createUpgradeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	in, err := v1alpha1.Encode(req)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := pick(client)(ctx, in)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out.AsMap())
}
