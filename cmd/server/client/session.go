package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/internal/handlers/quest/v1alpha1"
)

var displayName string

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Register a client with the session",
	Long: `Register a client with the session. Joining during an active quest adds the
client to the party; arriving during a fight means waiting it out dead.`,
	RunE: runConnect,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Leave the quest and the session",
	RunE:  runDisconnect,
}

func init() {
	connectCmd.Flags().StringVar(&displayName, "name", "", "Display name")
}

func runConnect(_ *cobra.Command, _ []string) error {
	if err := requireClientID(); err != nil {
		return err
	}

	client, cleanup, err := createQuestClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Connect(ctx, &v1alpha1.ConnectRequest{ClientID: clientID, Name: displayName})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	fmt.Printf("Connected as %s\n", resp.Client.ID)
	if resp.Player != nil {
		fmt.Printf("Joined quest %s (alive: %t)\n", resp.Snapshot.Name, resp.Player.Alive)
	}
	return nil
}

func runDisconnect(_ *cobra.Command, _ []string) error {
	if err := requireClientID(); err != nil {
		return err
	}

	client, cleanup, err := createQuestClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Disconnect(ctx, &v1alpha1.DisconnectRequest{ClientID: clientID})
	if err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}

	fmt.Printf("Disconnected %s (removed: %t, left quest: %t)\n", clientID, resp.Removed, resp.LeftQuest)
	if resp.QuestStopped {
		fmt.Println("The quest stopped: nobody is left")
	}
	return nil
}
