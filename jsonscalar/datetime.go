package jsonscalar

import (
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Longest ISO-8601 text (quotes excluded) accepted for each kind, zone
// included: 2006-01-02+07:00, 15:04:05.000000+07:00 and
// 2006-01-02T15:04:05.000000+07:00.
const (
	MaxDateLen     = 16
	MaxTimeLen     = 21
	MaxDateTimeLen = 32
)

// Date is a calendar date with an optional zone offset.  The clock part of
// the embedded time is midnight.
type Date struct{ time.Time }

// TimeOfDay is a clock time with an optional zone offset, on the zero date.
type TimeOfDay struct{ time.Time }

var (
	dateLayouts     = []string{"2006-01-02", "2006-01-02Z07:00"}
	timeLayouts     = []string{"15:04:05.999999999", "15:04:05.999999999Z07:00", "15:04"}
	dateTimeLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05.999999999Z07:00"}
)

// quotedISO returns the text between the quotes after checking the token
// is a string no longer than max.
func quotedISO(data []byte, max int, kind string) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' || len(data) > max+2 {
		return "", errors.Wrapf(ErrMalformed, "%s %q", kind, data)
	}
	res, err := token(data)
	if err != nil {
		return "", err
	}
	if res.Type != gjson.String {
		return "", errors.Wrapf(ErrMalformed, "%s %q", kind, data)
	}
	return string(data[1 : len(data)-1]), nil
}

func parseLayouts(text string, layouts []string, kind string) (time.Time, error) {
	for _, l := range layouts {
		if t, err := time.Parse(l, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrMalformed, "%s %q", kind, text)
}

// ParseDate decodes "YYYY-MM-DD" with an optional Z or ±hh:mm suffix.
func ParseDate(data []byte) (Date, error) {
	text, err := quotedISO(data, MaxDateLen, "date")
	if err != nil {
		return Date{}, err
	}
	t, err := parseLayouts(text, dateLayouts, "date")
	return Date{t}, err
}

// ParseTime decodes "hh:mm:ss[.fraction]" (or "hh:mm") with an optional
// zone suffix.
func ParseTime(data []byte) (TimeOfDay, error) {
	text, err := quotedISO(data, MaxTimeLen, "time")
	if err != nil {
		return TimeOfDay{}, err
	}
	t, err := parseLayouts(text, timeLayouts, "time")
	return TimeOfDay{t}, err
}

// ParseDateTime decodes "YYYY-MM-DDThh:mm:ss[.fraction]" with an optional
// zone suffix.  Values without a zone are returned in UTC.
func ParseDateTime(data []byte) (time.Time, error) {
	text, err := quotedISO(data, MaxDateTimeLen, "datetime")
	if err != nil {
		return time.Time{}, err
	}
	return parseLayouts(text, dateTimeLayouts, "datetime")
}
