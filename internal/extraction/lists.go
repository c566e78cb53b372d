package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/packet-intake/internal/types"
)

// minItemLength filters out spurious short captures from list passes. Entries
// must be longer than this after trimming to be kept.
const minItemLength = 3

var (
	taskLabelRules = []Rule{
		newRule(`Task` + lineValue),
		newRule(`Activity` + lineValue),
		newRule(`Action` + lineValue),
		newRule(`To Do` + lineValue),
		newRule(`Care Task` + lineValue),
		newRule(`Service` + lineValue),
	}

	goalLabelRules = []Rule{
		newRule(`Goal` + lineValue),
		newRule(`Objective` + lineValue),
		newRule(`Target` + lineValue),
		newRule(`Aim` + lineValue),
		newRule(`Outcome` + lineValue),
		newRule(`Care Goal` + lineValue),
	}

	numberedLineRe = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]*([^\n]+)`)
	bulletLineRe   = regexp.MustCompile(`(?m)^[ \t]*[-•*][ \t]*([^\n]+)`)

	// goalSectionRes capture a labelled section header plus all contiguous
	// non-blank following lines; each line becomes one goal entry.
	goalSectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Goals?[:\s]*\n([^\n]+(?:\n[^\n]+)*)`),
		regexp.MustCompile(`(?i)Objectives?[:\s]*\n([^\n]+(?:\n[^\n]+)*)`),
		regexp.MustCompile(`(?i)Targets?[:\s]*\n([^\n]+(?:\n[^\n]+)*)`),
	}
)

// extractTasks runs three independent passes over the text: labelled lines,
// numbered-list lines, and bulleted-list lines. Results are concatenated in
// discovery order and are deliberately not deduplicated; a line recognized by
// more than one pass appears more than once.
func extractTasks(text string) []types.CareItem {
	var items []types.CareItem
	items = appendLabelled(items, text, taskLabelRules)
	items = appendListLines(items, text, numberedLineRe)
	items = appendListLines(items, text, bulletLineRe)
	return items
}

// extractGoals runs the same three passes as tasks plus a block-section pass
// that captures labelled goal sections line by line.
func extractGoals(text string) []types.CareItem {
	var items []types.CareItem
	items = appendLabelled(items, text, goalLabelRules)

	for _, re := range goalSectionRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, line := range strings.Split(m[1], "\n") {
				items = appendItem(items, line)
			}
		}
	}
	return items
}

func appendLabelled(items []types.CareItem, text string, rules []Rule) []types.CareItem {
	for _, r := range rules {
		for _, v := range r.ApplyAll(text) {
			items = appendItem(items, v)
		}
	}
	return items
}

func appendListLines(items []types.CareItem, text string, re *regexp.Regexp) []types.CareItem {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		items = appendItem(items, m[1])
	}
	return items
}

func appendItem(items []types.CareItem, raw string) []types.CareItem {
	v := strings.TrimSpace(raw)
	if len(v) <= minItemLength {
		return items
	}
	return append(items, types.CareItem{Description: v})
}
