package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/packet-intake/internal/types"
)

func classifyText(text string) types.PacketType {
	return Classify(&types.Record{RawText: text})
}

func TestClassify_MarkerPhrases(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.PacketType
	}{
		{"employee packet marker", "Employee Packet\nName: Dr. Sarah Johnson\nEmployment Type: Full-time", types.PacketEmployee},
		{"staff packet marker", "STAFF PACKET intake documents", types.PacketEmployee},
		{"client packet marker", "Client Packet for intake", types.PacketClient},
		{"patient packet marker", "Patient Packet records", types.PacketClient},
		{
			// The marker wins outright even when the keyword vocabulary
			// points the other way.
			name:     "employee marker beats client keywords",
			text:     "employee packet client customer patient resident",
			expected: types.PacketEmployee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyText(tt.text))
		})
	}
}

func TestClassify_KeywordScoring(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.PacketType
	}{
		{"employee vocabulary dominates", "staff caregiver worker on duty", types.PacketEmployee},
		{"client vocabulary dominates", "the patient is a resident here", types.PacketClient},
		{"presence not frequency", "client client client client staff worker", types.PacketEmployee},
		{"tie defaults to client", "the client met the staff", types.PacketClient},
		{"no keywords defaults to client", "the quick brown fox", types.PacketClient},
		{"empty text defaults to client", "", types.PacketClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyText(tt.text))
		})
	}
}
