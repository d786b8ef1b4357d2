package actions

import "strings"

// Assign maps each candidate action item to zero or more participants.
// For every item, the item text concatenated with the supplied context
// string is lower-cased and each known participant name is tested as a
// case-insensitive substring. All matching names are appended in the
// given participant order; when none match, ownership falls back to the
// Unassigned sentinel. The input items are not modified.
func Assign(items []ActionItem, participantNames []string, context string) []ActionItem {
	assigned := make([]ActionItem, 0, len(items))

	for _, item := range items {
		searchText := strings.ToLower(item.Text + " " + context)

		var owners []string
		for _, name := range participantNames {
			if strings.Contains(searchText, strings.ToLower(name)) {
				owners = append(owners, name)
			}
		}
		if len(owners) == 0 {
			owners = []string{Unassigned}
		}

		item.AssignedTo = owners
		assigned = append(assigned, item)
	}

	return assigned
}
