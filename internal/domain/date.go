package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date without time-of-day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Valid reports whether the triple is a real calendar date. time.Date
// normalizes out-of-range values (month 13 becomes January of the next
// year), so a round-trip mismatch means the triple was invalid.
func (d Date) Valid() bool {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return y == d.Year && m == d.Month && day == d.Day
}

// String renders the date as YYYY-MM-DD, the date-folder prefix format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateFromFilename extracts the capture date embedded in a sensor
// filename: a configured prefix, an underscore, an 8-digit YYYYMMDD
// token, another underscore. Triples that are not real calendar dates
// (e.g. VID_20240230_...) are treated as no match.
func (r Ruleset) DateFromFilename(name string) (Date, bool) {
	m := r.filenameRE.FindStringSubmatch(name)
	if m == nil {
		return Date{}, false
	}
	tok := m[1]
	d := Date{
		Year:  atoi4(tok[0:4]),
		Month: time.Month(atoi2(tok[4:6])),
		Day:   atoi2(tok[6:8]),
	}
	if !d.Valid() {
		return Date{}, false
	}
	return d, true
}

// ResolveDate derives the calendar date a file belongs to. A date
// embedded in the filename takes strict precedence over filesystem
// metadata: the sensor's capture time survives copies, timestamps do
// not. Otherwise the birth time is used where the platform exposes one,
// falling back to the modification time.
func (r Ruleset) ResolveDate(name string, info FileInfo) Date {
	if d, ok := r.DateFromFilename(name); ok {
		return d
	}
	ts := info.ModTime
	if !info.BirthTime.IsZero() {
		ts = info.BirthTime
	}
	return DateOf(ts)
}

// The token is already known to be digits from the regexp match.
func atoi4(s string) int {
	return int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
