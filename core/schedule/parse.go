package schedule

import "encoding/json"

// ParseResult holds the two embedded objects extracted from the page. Preset
// is an empty map when the preset block is absent.
type ParseResult struct {
	Fact   RawScheduleDocument
	Preset map[string]any
}

// Parse locates and decodes the fact and preset objects embedded in the
// page. The fact block is required: a missing marker is an *ExtractError and
// malformed JSON a *DecodeError. The preset block is optional and its
// absence degrades to an empty object, but a present-yet-malformed preset is
// still a *DecodeError.
func Parse(page string) (*ParseResult, error) {
	factRaw, err := Extract(page, FactMarker)
	if err != nil {
		return nil, &ExtractError{Marker: FactMarker, Err: err}
	}
	res := &ParseResult{Preset: map[string]any{}}
	if err := json.Unmarshal([]byte(factRaw), &res.Fact); err != nil {
		return nil, &DecodeError{Block: "fact", Err: err}
	}

	presetRaw, err := Extract(page, PresetMarker)
	if err != nil {
		return res, nil
	}
	if err := json.Unmarshal([]byte(presetRaw), &res.Preset); err != nil {
		return nil, &DecodeError{Block: "preset", Err: err}
	}
	return res, nil
}
