// Package timestamp renders the legacy date stamps stored on users and
// recipes. The format predates this service and is kept for compatibility
// with documents already in the database.
package timestamp

import (
	"fmt"
	"time"
)

// Format renders t as D/M/YYYY H:M:S with no zero padding, e.g. "5/3/2024 9:7:2".
func Format(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d %d:%d:%d",
		t.Day(), int(t.Month()), t.Year(),
		t.Hour(), t.Minute(), t.Second())
}

// Now formats the current local time.
func Now() string {
	return Format(time.Now())
}
