package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/internal/handlers/quest/v1alpha1"
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Vote to move on to the next room",
	RunE:  runVote,
}

var endTurnCmd = &cobra.Command{
	Use:   "end-turn",
	Short: "Pass your battle turn",
	RunE:  runEndTurn,
}

var attackCmd = &cobra.Command{
	Use:   "attack [enemy-id]",
	Short: "Attack an enemy on your turn",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttack,
}

var deathCmd = &cobra.Command{
	Use:   "death",
	Short: "Report your own death",
	RunE:  runDeath,
}

func runVote(_ *cobra.Command, _ []string) error {
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

	resp, err := client.VoteAdvance(ctx, &v1alpha1.VoteAdvanceRequest{ClientID: clientID})
	if err != nil {
		return fmt.Errorf("failed to vote: %w", err)
	}

	if resp.Advanced {
		fmt.Printf("The party moved on to room %d\n", resp.RoomIndex)
	} else {
		fmt.Println("Vote recorded, waiting for the rest of the party")
	}
	return nil
}

func runEndTurn(_ *cobra.Command, _ []string) error {
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

	resp, err := client.EndTurn(ctx, &v1alpha1.EndTurnRequest{ClientID: clientID})
	if err != nil {
		return fmt.Errorf("failed to end turn: %w", err)
	}

	if resp.CurrentTurn != nil {
		fmt.Printf("Next up: %s %s\n", resp.CurrentTurn.Kind, resp.CurrentTurn.ID)
	}
	return nil
}

func runAttack(_ *cobra.Command, args []string) error {
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

	resp, err := client.Attack(ctx, &v1alpha1.AttackRequest{ClientID: clientID, EnemyID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to attack: %w", err)
	}

	fmt.Printf("Rolled %d, dealt %d damage to %s\n", resp.Action.Roll, resp.Action.Damage, resp.Action.EnemyID)
	if resp.Action.EnemyKilled {
		fmt.Println("The enemy falls")
	}
	if resp.RoomCleared {
		fmt.Println("Room cleared!")
	}
	return nil
}

func runDeath(_ *cobra.Command, _ []string) error {
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

	resp, err := client.ReportDeath(ctx, &v1alpha1.ReportDeathRequest{ClientID: clientID})
	if err != nil {
		return fmt.Errorf("failed to report death: %w", err)
	}

	if !resp.Killed {
		fmt.Println("Already dead")
	}
	if resp.QuestStopped {
		fmt.Println("The whole party has fallen, the quest is over")
	}
	return nil
}
