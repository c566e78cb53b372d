package main

import (
	"fmt"

	"github.com/jonathan/packet-intake/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	processVerbose bool
)

var processCmd = &cobra.Command{
	Use:   "process [form-id...]",
	Short: "Process intake packets",
	Long: `Download the named documents, extract and classify each packet, and
synthesize the records in the scheduling UI. With no arguments the most
recent documents are processed.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVarP(&processVerbose, "verbose", "v", false, "Print extracted records and per-document results")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if processVerbose {
		cfg.Verbose = true
	}

	opts := newPipelineOptions(cfg)
	results, err := pipeline.ProcessDocuments(cmd.Context(), opts, args)
	if err != nil {
		return err
	}

	succeeded := 0
	for _, res := range results {
		if res.Error == "" && res.Result != nil && !res.Result.Failed() {
			succeeded++
		}
	}
	fmt.Printf("Processed %d document(s), %d succeeded\n", len(results), succeeded)

	if succeeded < len(results) {
		return fmt.Errorf("%d document(s) failed", len(results)-succeeded)
	}
	return nil
}
