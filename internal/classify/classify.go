// Package classify decides which record kind a parsed packet describes.
package classify

import (
	"strings"

	"github.com/jonathan/packet-intake/internal/types"
)

var (
	clientKeywords   = []string{"client", "customer", "patient", "resident"}
	employeeKeywords = []string{"employee", "staff", "worker", "caregiver"}
)

// Classify determines whether a packet belongs to a client or an employee.
//
// Explicit marker phrases win outright. Otherwise each vocabulary keyword
// present in the text contributes one point (presence, not frequency) and the
// higher score wins. An exact tie defaults to client; ambiguity is resolved
// silently, never surfaced as an error.
func Classify(rec *types.Record) types.PacketType {
	text := strings.ToLower(rec.RawText)

	if strings.Contains(text, "employee packet") || strings.Contains(text, "staff packet") {
		return types.PacketEmployee
	}
	if strings.Contains(text, "client packet") || strings.Contains(text, "patient packet") {
		return types.PacketClient
	}

	clientScore := keywordScore(text, clientKeywords)
	employeeScore := keywordScore(text, employeeKeywords)

	if employeeScore > clientScore {
		return types.PacketEmployee
	}
	return types.PacketClient
}

// keywordScore counts how many vocabulary keywords appear in the text. Each
// keyword contributes at most one point regardless of occurrence count.
func keywordScore(text string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}
