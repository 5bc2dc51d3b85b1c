package schedule

import "strings"

// Normalized status labels.
const (
	StatusLightOn        = "light_on"
	StatusLightOff       = "light_off"
	StatusOffFirst30Min  = "off_first_30min"
	StatusOffSecond30Min = "off_second_30min"
	StatusPossibleOutage = "possible_outage"
)

var statusLabels = map[string]string{
	"yes":    StatusLightOn,
	"no":     StatusLightOff,
	"first":  StatusOffFirst30Min,
	"second": StatusOffSecond30Min,
}

// NormalizeStatus maps a raw per-hour status code to a semantic label. Codes
// containing "maybe" in any form normalize to StatusPossibleOutage; unknown
// codes pass through unchanged.
func NormalizeStatus(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	if strings.Contains(code, "maybe") {
		return StatusPossibleOutage
	}
	return code
}
