package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/StevenSignal/dtek-schedule/core/schedule"
)

const summaryRanges = 5

// Summary renders a short human-readable digest of a collected schedule:
// the site update time, the number of groups with data, and today's sorted
// on/off time ranges for the first configured group that has data for today.
func Summary(doc *schedule.OutputDocument, groups []string, today string) []string {
	lines := []string{
		fmt.Sprintf("site update time: %s", doc.UpdateTime),
		fmt.Sprintf("groups with data: %d", len(doc.Groups)),
	}
	for _, group := range groups {
		ranges, ok := doc.Groups[group][today]
		if !ok {
			continue
		}
		var on, off []string
		for r, label := range ranges {
			switch label {
			case schedule.StatusLightOn:
				on = append(on, r)
			case schedule.StatusLightOff:
				off = append(off, r)
			}
		}
		sort.Strings(on)
		sort.Strings(off)
		if len(on) > 0 {
			lines = append(lines, fmt.Sprintf("%s light on today: %s", group, joinHead(on)))
		}
		if len(off) > 0 {
			lines = append(lines, fmt.Sprintf("%s light off today: %s", group, joinHead(off)))
		}
		break
	}
	return lines
}

func joinHead(ranges []string) string {
	if len(ranges) <= summaryRanges {
		return strings.Join(ranges, ", ")
	}
	return strings.Join(ranges[:summaryRanges], ", ") + "..."
}
