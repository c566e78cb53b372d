// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/packet-intake/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of an extracted record.
func (p *Printer) PrintRecord(rec *types.Record, packetType types.PacketType) {
	if rec == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Type:     %s\n", packetType))
	writeField(&sb, "Name", rec.Personal.FullName)
	writeField(&sb, "DOB", rec.Personal.DateOfBirth)
	writeField(&sb, "Gender", rec.Personal.Gender)
	writeField(&sb, "Phone", rec.Contact.Phone)
	writeField(&sb, "Email", rec.Contact.Email)
	writeField(&sb, "Position", rec.Employment.Position)
	sb.WriteString(fmt.Sprintf("EmplType: %s\n", rec.Employment.EmploymentType))

	if len(rec.Goals) > 0 {
		sb.WriteString("\nGoals:\n")
		writeItems(&sb, rec.Goals)
	}
	if len(rec.Tasks) > 0 {
		sb.WriteString("\nTasks:\n")
		writeItems(&sb, rec.Tasks)
	}

	p.printBox("EXTRACTED RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs a human-readable summary of one document's verdict.
func (p *Printer) PrintResult(res types.DocumentResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Document: %s\n", res.ID))
	if res.Error != "" {
		sb.WriteString(fmt.Sprintf("Error:    %s\n", res.Error))
		p.printBox("RESULT", strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	if res.Result != nil {
		sb.WriteString(fmt.Sprintf("Success:  %t\n", res.Result.Success))
		writeField(&sb, "Message", res.Result.Message)
		writeField(&sb, "Error", res.Result.Error)
		writeField(&sb, "CarePlan", res.Result.CarePlanError)
		if res.Result.Batch != nil {
			sb.WriteString(fmt.Sprintf("Goals:    %d added\n", res.Result.Batch.GoalsAdded))
			sb.WriteString(fmt.Sprintf("Tasks:    %d added\n", res.Result.Batch.TasksAdded))
			if n := len(res.Result.Batch.Errors); n > 0 {
				sb.WriteString(fmt.Sprintf("Errors:   %d\n", n))
			}
		}
	}

	p.printBox("RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("%-9s %s\n", label+":", value))
}

func writeItems(sb *strings.Builder, items []types.CareItem) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i].Description))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
