package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenSignal/dtek-schedule/core/schedule"
)

func TestSummary(t *testing.T) {
	doc := &schedule.OutputDocument{
		UpdateTime: "12:00",
		Groups: map[string]schedule.GroupDaySchedule{
			"GPV1.1": {
				"2026-08-26": {
					"02:00-03:00": "light_off",
					"00:00-01:00": "light_on",
					"01:00-02:00": "light_on",
					"03:00-04:00": "possible_outage",
				},
			},
			"GPV2.1": {
				"2026-08-26": {"05:00-06:00": "light_off"},
			},
		},
	}

	lines := Summary(doc, []string{"GPV1.1", "GPV2.1"}, "2026-08-26")
	require.Len(t, lines, 4)
	assert.Equal(t, "site update time: 12:00", lines[0])
	assert.Equal(t, "groups with data: 2", lines[1])
	// Only the first configured group with data today is detailed, sorted.
	assert.Equal(t, "GPV1.1 light on today: 00:00-01:00, 01:00-02:00", lines[2])
	assert.Equal(t, "GPV1.1 light off today: 02:00-03:00", lines[3])
}

func TestSummaryTruncatesLongLists(t *testing.T) {
	ranges := map[string]string{}
	for _, r := range []string{
		"00:00-01:00", "01:00-02:00", "02:00-03:00",
		"03:00-04:00", "04:00-05:00", "05:00-06:00", "06:00-07:00",
	} {
		ranges[r] = "light_off"
	}
	doc := &schedule.OutputDocument{
		UpdateTime: "09:00",
		Groups: map[string]schedule.GroupDaySchedule{
			"GPV3.1": {"2026-08-26": ranges},
		},
	}
	lines := Summary(doc, []string{"GPV3.1"}, "2026-08-26")
	require.Len(t, lines, 3)
	assert.Equal(t, "GPV3.1 light off today: 00:00-01:00, 01:00-02:00, 02:00-03:00, 03:00-04:00, 04:00-05:00...", lines[2])
}

func TestSummaryNoDataToday(t *testing.T) {
	doc := &schedule.OutputDocument{
		UpdateTime: "12:00",
		Groups: map[string]schedule.GroupDaySchedule{
			"GPV1.1": {"2026-08-25": {"00:00-01:00": "light_on"}},
		},
	}
	lines := Summary(doc, []string{"GPV1.1"}, "2026-08-26")
	assert.Len(t, lines, 2)
}
