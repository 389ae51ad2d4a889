package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The scan log has accumulated several timestamp encodings over its life:
// RFC3339 with an offset or a trailing Z, zone-less ISO strings written by
// older check-in builds, and the stringified form a time value leaves behind
// when it is logged without formatting. This package is the only place those
// variants are interpreted; everything downstream works with time.Time.

// ParseError describes a timestamp that matched none of the known encodings.
// The raw value is preserved so the caller can quarantine and log the record.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized timestamp encoding: %q", e.Raw)
}

// naiveLayouts are the zone-less encodings, tried in order.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// stampLayout is the debug form of a stringified time value.
const stampLayout = "2006-01-02 15:04:05.999999999 -0700 MST"

// Timestamp parses one raw scan timestamp into an instant in loc.
//
// A trailing "Z" marks the value as UTC: the marker is stripped, the rest is
// read as a naive UTC instant and converted to loc. Values carrying an
// explicit offset are converted directly. Zone-less values are taken to
// already be in loc.
func Timestamp(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, &ParseError{Raw: raw}
	}

	if strings.HasSuffix(s, "Z") {
		trimmed := strings.TrimSuffix(s, "Z")
		for _, layout := range naiveLayouts {
			if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
				return t.In(loc), nil
			}
		}
		return time.Time{}, &ParseError{Raw: raw}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	if t, err := time.Parse(stampLayout, s); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &ParseError{Raw: raw}
}

// BadgeID coerces a raw badge value to its integer form. Badge numbers come
// from QR decoding or hand-typed input, so stray whitespace is tolerated;
// anything non-numeric is an error and the record carrying it is dropped.
func BadgeID(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty badge id")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("badge id %q is not numeric", raw)
	}
	return id, nil
}
