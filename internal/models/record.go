// ABOUTME: Record is one line of formatter output
// ABOUTME: A trimmed text line paired with a synthetic epoch timestamp
package models

import (
	"strconv"
	"strings"
)

// Record is serialized as {"text":"...","utc":"..."}. Field order matters
// for consumers that diff output files, so keep Text first.
type Record struct {
	Text string `json:"text"`
	UTC  string `json:"utc"`
}

// NewRecord trims surrounding whitespace from line and renders ts as a
// decimal string.
func NewRecord(line string, ts int64) Record {
	return Record{
		Text: strings.TrimSpace(line),
		UTC:  strconv.FormatInt(ts, 10),
	}
}
