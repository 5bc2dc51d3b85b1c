package schedule

import (
	"errors"
	"fmt"
)

// ErrMarkerNotFound reports that the extraction marker is absent from the page.
var ErrMarkerNotFound = errors.New("marker not found")

// FetchError reports a non-200 response from the source.
type FetchError struct {
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Status)
}

// ProtectionError reports a response body that fails the content-plausibility
// heuristic: a challenge page was likely served instead of the real content.
type ProtectionError struct {
	Size  int
	Title string
}

func (e *ProtectionError) Error() string {
	msg := fmt.Sprintf("protection page suspected: %d bytes, %q sentinel missing or body too short", e.Size, Sentinel)
	if e.Title != "" {
		msg += fmt.Sprintf(" (page title: %q)", e.Title)
	}
	return msg
}

// ExtractError reports that a required embedded object could not be located.
type ExtractError struct {
	Marker string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract block %q: %v", e.Marker, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// DecodeError reports that an extracted block is not valid JSON.
type DecodeError struct {
	Block string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s block: %v", e.Block, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
