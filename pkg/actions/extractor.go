// Package actions detects candidate action items in meeting text and
// assigns them to participants by name matching.
package actions

import "regexp"

// ActionItem is one detected action phrase. AssignedTo is filled by the
// Assigner; once assigned, an item is never mutated.
type ActionItem struct {
	Text            string   `json:"text"`
	ExtractedAction string   `json:"extracted_action"`
	AssignedTo      []string `json:"assigned_to"`
}

// Unassigned is the sentinel owner for items no participant matched.
const Unassigned = "Unassigned"

// actionPatterns is the fixed, ordered pattern set applied to the full
// transcript text. Matches across all patterns are collected as-is:
// patterns may overlap and duplicates are deliberately not deduplicated.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:will|should|must|need to|have to|going to)\s+(.{10,100})`),
	regexp.MustCompile(`(?i)(?:action item|task|todo|to-do):\s*(.{10,100})`),
	regexp.MustCompile(`(?i)(?:please|can you|could you)\s+(.{10,100})`),
	regexp.MustCompile(`(?i)(?:assigned to|responsibility of)\s+(\w+(?:\s+\w+)?)`),
}

// Extract applies the pattern set to text and returns every candidate
// action item, in pattern order then document order within a pattern.
// Each item's ExtractedAction is the bounded trailing span captured by
// the pattern; Text is the whole match including the lead-in.
func Extract(text string) []ActionItem {
	items := make([]ActionItem, 0)

	for _, pattern := range actionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			extracted := match[0]
			if len(match) > 1 {
				extracted = match[1]
			}
			items = append(items, ActionItem{
				Text:            match[0],
				ExtractedAction: extracted,
			})
		}
	}

	return items
}
