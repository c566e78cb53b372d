package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/packet-intake/internal/types"
)

func descriptions(items []types.CareItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Description)
	}
	return out
}

func TestExtractTasks_NumberedList(t *testing.T) {
	text := "Tasks:\n1. Morning walk\n2. Physio exercises\n3) Evening stretches"

	got := descriptions(extractTasks(text))

	assert.Equal(t, []string{"Morning walk", "Physio exercises", "Evening stretches"}, got)
}

func TestExtractTasks_BulletedList(t *testing.T) {
	text := "- Prepare breakfast\n• Administer medication\n* Check vitals"

	got := descriptions(extractTasks(text))

	assert.Equal(t, []string{"Prepare breakfast", "Administer medication", "Check vitals"}, got)
}

func TestExtractTasks_LabelledLines(t *testing.T) {
	text := "Task: Prepare breakfast\nActivity: Light gardening"

	got := descriptions(extractTasks(text))

	assert.Equal(t, []string{"Prepare breakfast", "Light gardening"}, got)
}

func TestExtractTasks_PassesConcatenateWithoutDedup(t *testing.T) {
	// The labelled pass and the numbered pass both recognize this line.
	text := "Task:\n1. Feed the cat"

	got := descriptions(extractTasks(text))

	assert.Equal(t, []string{"1. Feed the cat", "Feed the cat"}, got)
}

func TestExtractTasks_ShortEntriesDropped(t *testing.T) {
	text := "1. Run\n2. Walk the dog\n3. Nap"

	got := descriptions(extractTasks(text))

	assert.Equal(t, []string{"Walk the dog"}, got, "entries of three characters or fewer are noise")
}

func TestExtractGoals_SectionBlock(t *testing.T) {
	text := "Goals:\nImprove mobility\nReduce pain levels\n\nTasks:\n1. Morning walk"

	got := descriptions(extractGoals(text))

	assert.Equal(t, []string{"Improve mobility", "Reduce pain levels"}, got,
		"a blank line terminates the section before the task list")
}

func TestExtractGoals_LabelAndSectionBothCapture(t *testing.T) {
	// A goal on the line after its label is found by the labelled pass and
	// again by the section pass. Duplicates are preserved.
	text := "Goal:\nWalk daily"

	got := descriptions(extractGoals(text))

	assert.Equal(t, []string{"Walk daily", "Walk daily"}, got)
}

func TestExtractGoals_NoGoals(t *testing.T) {
	assert.Empty(t, extractGoals("no structured content here"))
}

func TestExtractLists_EmptyText(t *testing.T) {
	assert.Empty(t, extractTasks(""))
	assert.Empty(t, extractGoals(""))
}
