package util

import (
	"time"
)

// isoLayout follows Date.prototype.toISOString, which is the timestamp format
// the spreadsheet and the db.json file already contain.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Now is swappable so tests can pin timestamps.
var Now = time.Now

func NowISO() string {
	return Now().UTC().Format(isoLayout)
}

var dateLayouts = []string{
	isoLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate reads the free-form date strings stored on prazo/data fields.
// Unparseable values yield the zero time, which sorts before everything else.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}
