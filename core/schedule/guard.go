package schedule

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Bodies shorter than this cannot plausibly carry the schedule page.
const minPlausibleBytes = 1000

// CheckContent applies the content-plausibility heuristic to a fetched body.
// A body that is too short or lacks the Sentinel substring is assumed to be
// an anti-bot challenge page and yields a ProtectionError carrying the page
// title when one can be parsed.
func CheckContent(body []byte) error {
	if len(body) >= minPlausibleBytes && bytes.Contains(body, []byte(Sentinel)) {
		return nil
	}
	return &ProtectionError{Size: len(body), Title: pageTitle(body)}
}

func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
