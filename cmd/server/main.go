// Package main is the entry point for the quest server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-quest",
	Short: "RPG quest gRPC server",
	Long: `rpg-quest runs a server-authoritative quest session: a party of connected
clients walks through generated rooms, fights in turns and votes to move on.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
