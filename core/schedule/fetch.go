package schedule

import "context"

// Page is the raw fetch result before any content checks.
type Page struct {
	Status int
	Body   []byte
}

// Fetcher retrieves the shutdowns page. Implementations handle transport
// concerns only; status and content plausibility are checked by the pipeline.
type Fetcher interface {
	Fetch(ctx context.Context) (*Page, error)
}
