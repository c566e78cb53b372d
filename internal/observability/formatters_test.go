package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/packet-intake/internal/types"
)

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecord(&types.Record{
		Personal:   types.PersonalInfo{FullName: "John Smith", DateOfBirth: "01/15/1980"},
		Employment: types.EmploymentInfo{EmploymentType: "Casual"},
		Goals:      []types.CareItem{{Description: "Improve mobility"}},
	}, types.PacketClient)

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED RECORD")
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "client")
	assert.Contains(t, out, "Improve mobility")
	assert.NotContains(t, out, "Email:", "absent fields are not printed")
}

func TestPrintRecord_NilRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecord(nil, types.PacketClient)

	assert.Empty(t, buf.String())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(types.DocumentResult{
		ID: "f-1",
		Result: &types.WorkflowResult{
			Success: true,
			Message: "Client created and care plan added successfully",
			Batch:   &types.BatchOutcome{GoalsAdded: 2, TasksAdded: 1},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "f-1")
	assert.Contains(t, out, "2 added")
	assert.Contains(t, out, "1 added")
}

func TestPrintResult_Error(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(types.DocumentResult{ID: "f-2", Error: "download failed"})

	out := buf.String()
	assert.Contains(t, out, "f-2")
	assert.Contains(t, out, "download failed")
}

func TestPrintRecord_ItemOverflow(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := make([]types.CareItem, 8)
	for i := range items {
		items[i] = types.CareItem{Description: "Daily exercise routine"}
	}
	p.PrintRecord(&types.Record{Tasks: items}, types.PacketClient)

	assert.Contains(t, buf.String(), "and 3 more")
}
