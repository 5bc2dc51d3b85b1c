package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// Build produces per-group day schedules from a decoded fact document for
// the requested groups. Timestamp keys are bucketed into calendar dates
// using the local timezone. Groups with no matched dates are omitted, and a
// date key is only present when at least one hour entry was produced.
// Malformed timestamp or hour keys are skipped.
func Build(fact RawScheduleDocument, groups []string) map[string]GroupDaySchedule {
	out := make(map[string]GroupDaySchedule)
	for tsKey, perGroup := range fact.Data {
		ts, err := strconv.ParseInt(tsKey, 10, 64)
		if err != nil {
			continue
		}
		date := time.Unix(ts, 0).Format("2006-01-02")

		for _, group := range groups {
			hours, ok := perGroup[group]
			if !ok {
				continue
			}
			ranges := make(map[string]string, len(hours))
			for hourKey, code := range hours {
				hour, err := strconv.Atoi(hourKey)
				if err != nil {
					continue
				}
				ranges[TimeRange(hour)] = NormalizeStatus(code)
			}
			if len(ranges) == 0 {
				continue
			}
			days := out[group]
			if days == nil {
				days = make(GroupDaySchedule)
				out[group] = days
			}
			existing := days[date]
			if existing == nil {
				days[date] = ranges
				continue
			}
			// Two timestamps can land on the same local date.
			for r, label := range ranges {
				existing[r] = label
			}
		}
	}
	return out
}

// TimeRange renders an hour index in the domain 1-24 as the half-open
// one-hour interval ending at that hour, e.g. 1 -> "00:00-01:00".
func TimeRange(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour-1, hour)
}
