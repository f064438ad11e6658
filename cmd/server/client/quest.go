package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/internal/handlers/quest/v1alpha1"
)

var listQuestsCmd = &cobra.Command{
	Use:   "list-quests",
	Short: "List the quests the server can start",
	RunE:  runListQuests,
}

var startCmd = &cobra.Command{
	Use:   "start [quest-index]",
	Short: "Start a quest with every connected client",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active quest",
	RunE:  runStop,
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the current quest snapshot",
	RunE:  runState,
}

func runListQuests(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createQuestClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListQuests(ctx, &v1alpha1.ListQuestsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list quests: %w", err)
	}

	for _, q := range resp.Quests {
		fmt.Printf("%d  %s\n", q.Index, q.Name)
	}
	return nil
}

func runStart(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid quest index %q: %w", args[0], err)
	}

	client, cleanup, err := createQuestClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StartQuest(ctx, &v1alpha1.StartQuestRequest{QuestIndex: index})
	if err != nil {
		return fmt.Errorf("failed to start quest: %w", err)
	}
	return printJSON(resp.Snapshot)
}

func runStop(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createQuestClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StopQuest(ctx, &v1alpha1.StopQuestRequest{})
	if err != nil {
		return fmt.Errorf("failed to stop quest: %w", err)
	}

	if resp.WasActive {
		fmt.Println("Quest stopped")
	} else {
		fmt.Println("No quest was running")
	}
	return nil
}

func runState(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createQuestClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetQuestState(ctx, &v1alpha1.GetQuestStateRequest{})
	if err != nil {
		return fmt.Errorf("failed to get quest state: %w", err)
	}
	return printJSON(resp.Snapshot)
}
