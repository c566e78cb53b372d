package main

import (
	"fmt"

	"github.com/jonathan/packet-intake/internal/config"
	"github.com/spf13/cobra"
)

var (
	formsLimit int
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "List recent documents",
	Long:  `List the most recently stored documents from the document service.`,
	RunE:  runForms,
}

func init() {
	formsCmd.Flags().IntVar(&formsLimit, "limit", config.DefaultListLimit, "Maximum number of documents to list")
	rootCmd.AddCommand(formsCmd)
}

func runForms(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if err := requireDocumentsCredentials(cfg); err != nil {
		return err
	}

	client := newDocumentsClient(cfg)
	forms, err := client.ListRecent(cmd.Context(), formsLimit)
	if err != nil {
		return err
	}

	if len(forms) == 0 {
		fmt.Println("No documents found")
		return nil
	}

	for _, form := range forms {
		line := form.ID
		if form.Name != "" {
			line += "  " + form.Name
		}
		if form.UpdatedDate != "" {
			line += "  (" + form.UpdatedDate + ")"
		}
		fmt.Println(line)
	}
	return nil
}
