// Package main provides the entry point for the packet intake agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "packet_agent",
	Short: "Packet intake automation agent",
	Long:  "Packet intake agent extracts structured records from scanned intake packets, classifies them as client or employee packets, and synthesizes the records in the scheduling UI via browser automation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
