package entities

import (
	"fmt"
	"time"
)

// FilterUpdates returns one display line per record matching target, in the
// insertion order of updates. Failed records only show up when every date is
// requested.
func FilterUpdates(updates *Updates, target Target, loc *time.Location) []string {
	lines := make([]string, 0, updates.Len())

	for _, record := range updates.Records() {
		if !target.All {
			if record.Failed() || !SameDay(record.Release.LastUpdated, target.Day, loc) {
				continue
			}
		}
		lines = append(lines, FormatLine(record, loc))
	}

	return lines
}

// FormatLine renders a record as "<name>: <current> -> <latest> | <updated> | <updatable>".
func FormatLine(record UpdateRecord, loc *time.Location) string {
	return fmt.Sprintf(
		"%s: %s -> %s | %s | %s",
		record.Name,
		record.CurrentVersion,
		record.LatestVersion(),
		record.LastUpdatedLabel(loc),
		record.Updatable(),
	)
}
