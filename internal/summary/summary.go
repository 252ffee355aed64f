// Package summary turns a day's activities into the seed text of a diary
// draft. Pure text assembly: identical input always yields identical output.
package summary

import (
	"sort"
	"strings"

	"mood-diary/internal/model"
)

// NoActivities is returned for an empty day, never the empty string.
const NoActivities = "ไม่มีกิจกรรมในวันนี้"

const (
	header       = "สรุปกิจกรรมในวันนี้:\n\n"
	trailer      = "\nความรู้สึกวันนี้: "
	allDayMarker = "(ทั้งวัน) - "
)

// Generate renders one line per activity, sorted ascending by scheduled
// time with all-day activities after all timed ones (stable among
// themselves).
func Generate(activities []model.ActivitySnapshot) string {
	if len(activities) == 0 {
		return NoActivities
	}

	sorted := make([]model.ActivitySnapshot, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ScheduledTime, sorted[j].ScheduledTime
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})

	var sb strings.Builder
	sb.WriteString(header)
	for _, act := range sorted {
		style := act.Status.Style()
		sb.WriteString(style.Symbol)
		sb.WriteString(" ")
		if act.ScheduledTime != nil {
			sb.WriteString(clock(*act.ScheduledTime))
			sb.WriteString(" - ")
		} else {
			sb.WriteString(allDayMarker)
		}
		sb.WriteString(act.Title)
		sb.WriteString(" (")
		sb.WriteString(style.Label)
		sb.WriteString(")\n")
	}
	sb.WriteString(trailer)
	return sb.String()
}

// clock trims HH:MM:SS down to HH:MM.
func clock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
