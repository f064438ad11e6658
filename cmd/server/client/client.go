// Package client provides commands for driving a quest server by hand
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-quest/internal/handlers/quest/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// clientID identifies the caller for per-player commands
	clientID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the quest server",
	Long:  `Client commands play a quest session by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "Client ID of the caller")

	// Session commands
	ClientCmd.AddCommand(connectCmd)
	ClientCmd.AddCommand(disconnectCmd)
	ClientCmd.AddCommand(watchCmd)

	// Quest commands
	ClientCmd.AddCommand(listQuestsCmd)
	ClientCmd.AddCommand(startCmd)
	ClientCmd.AddCommand(stopCmd)
	ClientCmd.AddCommand(stateCmd)

	// Player commands
	ClientCmd.AddCommand(voteCmd)
	ClientCmd.AddCommand(endTurnCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(deathCmd)
}

// createQuestClient creates a quest service client
func createQuestClient() (v1alpha1.QuestServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewQuestServiceClient(conn), cleanup, nil
}

func requireClientID() error {
	if clientID == "" {
		return fmt.Errorf("--client-id is required")
	}
	return nil
}

// printJSON writes v indented to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
