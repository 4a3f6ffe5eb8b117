// Package datetimes parses the date-time strings found in photo and
// video metadata, which only loosely follow EXIF conventions.
package datetimes

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// flexibleDateTimePattern matches EXIF-style and ISO-style date
// times, with optional subseconds, time zone offset and a trailing
// DST marker.
var flexibleDateTimePattern = regexp.MustCompile(
	`^(?P<year>\d{4})[:-](?P<month>\d{2})[:-](?P<day>\d{2})` +
		`[\sT]` +
		`(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})` +
		`(?P<subsecond>\.\d{2})?` +
		`(?P<timezone>[+-]\d{2}:\d{2})?` +
		`(?P<dst>\s(DST))?`)

// ParseFlexible parses a metadata date-time value such as
// "2010:07:18 01:53:35" or "2016-11-25T14:31:24", tolerating an
// optional two digit subsecond, an optional ±HH:MM zone offset and a
// trailing " DST" marker, which is ignored. It returns the parsed
// time along with the reference layout that matched.
func ParseFlexible(value string) (time.Time, string, error) {
	match := flexibleDateTimePattern.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, "", fmt.Errorf("unrecognized date time %q", value)
	}

	groups := make(map[string]string)
	for i, name := range flexibleDateTimePattern.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}

	normalized := fmt.Sprintf("%s:%s:%s %s:%s:%s",
		groups["year"], groups["month"], groups["day"],
		groups["hour"], groups["minute"], groups["second"])
	layout := "2006:01:02 15:04:05"

	if ss := groups["subsecond"]; ss != "" {
		normalized += ss
		layout += ".00"
	}
	if tz := groups["timezone"]; tz != "" {
		normalized += strings.Replace(tz, ":", "", 1)
		layout += "-0700"
	}

	// Daylight savings marker: no sensible way to apply it, so it
	// is dropped.

	parsed, err := time.Parse(layout, normalized)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("cannot parse date time %q: %w", value, err)
	}
	return parsed, layout, nil
}

// RoughlyEqual checks whether two times are equal, give or take the
// leeway.
func RoughlyEqual(t1, t2 time.Time, leeway time.Duration) bool {
	diff := t2.Sub(t1)
	return diff > -leeway && diff < leeway
}
