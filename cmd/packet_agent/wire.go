package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/packet-intake/internal/browser"
	"github.com/jonathan/packet-intake/internal/config"
	"github.com/jonathan/packet-intake/internal/documents"
	"github.com/jonathan/packet-intake/internal/observability"
	"github.com/jonathan/packet-intake/internal/pipeline"
	"github.com/jonathan/packet-intake/internal/workflow"
)

// loadConfig reads and validates the environment configuration. Commands
// that never drive the browser validate a narrower surface themselves.
func loadConfig() (*config.Config, error) {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newDocumentsClient builds the document-service client with the
// authentication scheme the credentials select.
func newDocumentsClient(cfg *config.Config) *documents.Client {
	var tokens documents.TokenProvider
	if cfg.UseStaticToken() {
		tokens = &documents.StaticTokenProvider{Key: cfg.FormzClientID}
	} else {
		tokens = documents.NewOAuthTokenProvider(cfg.FormzBaseURL, cfg.FormzClientID, cfg.FormzClientSecret)
	}
	return documents.NewClient(cfg.FormzBaseURL, tokens)
}

// newPipelineOptions wires the pipeline collaborators from configuration.
func newPipelineOptions(cfg *config.Config) pipeline.Options {
	sessionOpts := browser.DefaultSessionOptions()
	sessionOpts.Headless = cfg.Headless

	opts := pipeline.Options{
		Documents: newDocumentsClient(cfg),
		NewSession: func(ctx context.Context) (browser.Driver, error) {
			return browser.NewChromeSession(ctx, sessionOpts)
		},
		UIBaseURL: cfg.ShiftcareBaseURL,
		UICredentials: workflow.Credentials{
			Username: cfg.ShiftcareUser,
			Password: cfg.ShiftcarePass,
		},
		ListLimit: cfg.ListLimit,
		Verbose:   cfg.Verbose,
	}
	if opts.Verbose {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}
	return opts
}

// requireDocumentsCredentials covers commands that only talk to the
// document service and never open the scheduling UI.
func requireDocumentsCredentials(cfg *config.Config) error {
	if cfg.FormzClientID == "" {
		return fmt.Errorf("GOFORMZ_CLIENT_ID environment variable is required")
	}
	return nil
}
