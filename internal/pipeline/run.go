// Package pipeline provides the per-request orchestration for packet processing.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/packet-intake/internal/browser"
	"github.com/jonathan/packet-intake/internal/classify"
	"github.com/jonathan/packet-intake/internal/documents"
	"github.com/jonathan/packet-intake/internal/extraction"
	"github.com/jonathan/packet-intake/internal/observability"
	"github.com/jonathan/packet-intake/internal/textextract"
	"github.com/jonathan/packet-intake/internal/types"
	"github.com/jonathan/packet-intake/internal/workflow"
)

// DocumentSource is the slice of the document-service client the pipeline
// consumes.
type DocumentSource interface {
	ListRecent(ctx context.Context, limit int) ([]documents.Form, error)
	Download(ctx context.Context, id string) ([]byte, error)
}

// SessionFactory opens a fresh browser session. Each document gets its own
// session so no UI state leaks between documents; login is re-established
// per document.
type SessionFactory func(ctx context.Context) (browser.Driver, error)

// Options holds the collaborators and settings for one processing run.
type Options struct {
	Documents     DocumentSource
	NewSession    SessionFactory
	UIBaseURL     string
	UICredentials workflow.Credentials
	ListLimit     int
	Verbose       bool

	// Printer receives record and result summaries when Verbose is set.
	// Nil disables verbose output even when Verbose is true.
	Printer *observability.Printer
}

// ProcessDocuments processes the given document IDs strictly sequentially and
// returns one result entry per document. An empty ids slice resolves the
// working set from the document service's recent list. A document's failure
// is converted into its result entry and never aborts the remaining
// documents.
func ProcessDocuments(ctx context.Context, opts Options, ids []string) ([]types.DocumentResult, error) {
	runID := uuid.New().String()

	if len(ids) == 0 {
		forms, err := opts.Documents.ListRecent(ctx, opts.ListLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working set: %w", err)
		}
		for _, form := range forms {
			ids = append(ids, form.ID)
		}
	}

	log.Printf("[pipeline] run %s processing %d document(s)", runID, len(ids))

	results := make([]types.DocumentResult, 0, len(ids))
	for _, id := range ids {
		res := processOne(ctx, opts, id)
		if opts.Verbose && opts.Printer != nil {
			opts.Printer.PrintResult(res)
		}
		results = append(results, res)
	}

	log.Printf("[pipeline] run %s finished", runID)
	return results, nil
}

// processOne runs the full sequence for a single document: download, text
// extraction, field extraction, classification, and the UI workflow inside a
// fresh browser session.
func processOne(ctx context.Context, opts Options, id string) types.DocumentResult {
	data, err := opts.Documents.Download(ctx, id)
	if err != nil {
		log.Printf("[pipeline] document %s: download failed: %v", id, err)
		return types.DocumentResult{ID: id, Error: err.Error()}
	}

	text, err := textextract.Extract(data)
	if err != nil {
		log.Printf("[pipeline] document %s: text extraction failed: %v", id, err)
		return types.DocumentResult{ID: id, Error: err.Error()}
	}

	rec := extraction.Extract(text)
	packetType := classify.Classify(rec)
	log.Printf("[pipeline] document %s classified as %s", id, packetType)
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintRecord(rec, packetType)
	}

	result, err := runWorkflow(ctx, opts, packetType, rec)
	if err != nil {
		return types.DocumentResult{ID: id, PacketType: packetType, Error: err.Error()}
	}
	return types.DocumentResult{ID: id, PacketType: packetType, Result: result}
}

// runWorkflow drives the UI workflow for one record inside its own browser
// session, with teardown guaranteed on every exit path.
func runWorkflow(ctx context.Context, opts Options, packetType types.PacketType, rec *types.Record) (*types.WorkflowResult, error) {
	drv, err := opts.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open browser session: %w", err)
	}
	defer func() { _ = drv.Close() }()

	auto := workflow.New(drv, opts.UIBaseURL, opts.UICredentials)

	switch packetType {
	case types.PacketClient:
		return auto.CreateClientWithCarePlan(ctx, rec), nil
	case types.PacketEmployee:
		return auto.CreateEmployee(ctx, rec), nil
	default:
		return nil, fmt.Errorf("unknown packet type %q", packetType)
	}
}
