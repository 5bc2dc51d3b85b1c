package schedule

// Markers preceding the embedded JSON objects on the shutdowns page, and the
// sentinel substring whose absence indicates an anti-bot challenge page.
const (
	FactMarker   = "DisconSchedule.fact = {"
	PresetMarker = "DisconSchedule.preset = {"
	Sentinel     = "DisconSchedule"
)

// RawScheduleDocument is the decoded form of an embedded schedule object.
// Data maps a decimal unix-timestamp string to per-group hour maps, where
// each hour map goes from hour-of-day ("1".."24") to a raw status code.
type RawScheduleDocument struct {
	Update string                                  `json:"update"`
	Data   map[string]map[string]map[string]string `json:"data"`
}

// GroupDaySchedule maps a calendar date (YYYY-MM-DD) to time-range labels
// ("HH:00-HH:00") to normalized status labels.
type GroupDaySchedule map[string]map[string]string

// OutputDocument is the persisted result of one collection cycle. Groups
// without any matched dates are absent from Groups entirely.
type OutputDocument struct {
	FetchedAt  string                      `json:"fetched_at"`
	UpdateTime string                      `json:"update_time"`
	Groups     map[string]GroupDaySchedule `json:"groups"`
}
