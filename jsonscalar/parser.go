// ════════════════════════════════════════════════════════════════════════════════════════════════
// JSON Scalar Parsing
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Decoding of single JSON value tokens into typed Go values
//
// Description:
//   Converts one already-delimited JSON token (no surrounding whitespace) into a bool, sized
//   integer, float, string, base64 byte slice, or ISO-8601 date/time.  Token grammar is checked
//   with gjson; string unescaping goes through sonnet.  Integers are decoded exactly, including
//   integral values written with a fraction or exponent ("1.5e1" is 15).
//
// Return convention:
//   GetValue mirrors a status-code API (0 on success, nonzero on failure) and leaves *out
//   untouched on failure.  The typed Parse* helpers return errors wrapping ErrMalformed, or
//   ErrRange when the token is well formed but does not fit the target type.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package jsonscalar

import (
	"encoding/base64"
	"time"

	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
	"github.com/tidwall/gjson"
)

var (
	// ErrMalformed reports a token that is not valid for the requested type.
	ErrMalformed = errors.New("jsonscalar: malformed token")

	// ErrRange reports a well formed number outside the target type's range.
	ErrRange = errors.New("jsonscalar: value out of range")

	// ErrUnsupported reports a GetValue destination type with no decoder.
	ErrUnsupported = errors.New("jsonscalar: unsupported destination type")
)

// GetValue decodes data into out, which must be a pointer to one of the
// supported types.  It returns 0 on success and -1 otherwise.
func GetValue(out any, data []byte) int {
	if Decode(out, data) != nil {
		return -1
	}
	return 0
}

// Decode is GetValue with the error preserved.
func Decode(out any, data []byte) error {
	var err error
	switch p := out.(type) {
	case *bool:
		err = assign(p, data, ParseBool)
	case *int8:
		err = assign(p, data, parseSigned[int8])
	case *int16:
		err = assign(p, data, parseSigned[int16])
	case *int32:
		err = assign(p, data, parseSigned[int32])
	case *int64:
		err = assign(p, data, parseSigned[int64])
	case *int:
		err = assign(p, data, parseSigned[int])
	case *uint8:
		err = assign(p, data, parseUnsigned[uint8])
	case *uint16:
		err = assign(p, data, parseUnsigned[uint16])
	case *uint32:
		err = assign(p, data, parseUnsigned[uint32])
	case *uint64:
		err = assign(p, data, parseUnsigned[uint64])
	case *uint:
		err = assign(p, data, parseUnsigned[uint])
	case *float32:
		err = assign(p, data, ParseFloat32)
	case *float64:
		err = assign(p, data, ParseFloat64)
	case *string:
		err = assign(p, data, ParseString)
	case *[]byte:
		err = assign(p, data, ParseBytes)
	case *Date:
		err = assign(p, data, ParseDate)
	case *TimeOfDay:
		err = assign(p, data, ParseTime)
	case *time.Time:
		err = assign(p, data, ParseDateTime)
	default:
		return errors.Wrapf(ErrUnsupported, "%T", out)
	}
	return err
}

func assign[T any](out *T, data []byte, parse func([]byte) (T, error)) error {
	v, err := parse(data)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TOKEN CLASSIFICATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// token validates data as exactly one JSON value with no padding.
func token(data []byte) (gjson.Result, error) {
	if len(data) == 0 || isSpace(data[0]) || isSpace(data[len(data)-1]) {
		return gjson.Result{}, errors.Wrapf(ErrMalformed, "token %q", data)
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errors.Wrapf(ErrMalformed, "token %q", data)
	}
	return gjson.ParseBytes(data), nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// BOOL AND STRINGS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// ParseBool accepts exactly true or false.
func ParseBool(data []byte) (bool, error) {
	res, err := token(data)
	if err != nil {
		return false, err
	}
	switch res.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	}
	return false, errors.Wrapf(ErrMalformed, "bool %q", data)
}

// ParseString decodes a quoted JSON string, resolving escape sequences and
// surrogate pairs.
func ParseString(data []byte) (string, error) {
	res, err := token(data)
	if err != nil {
		return "", err
	}
	if res.Type != gjson.String {
		return "", errors.Wrapf(ErrMalformed, "string %q", data)
	}
	var s string
	if err := sonnet.Unmarshal(data, &s); err != nil {
		return "", errors.Wrapf(ErrMalformed, "string %q: %v", data, err)
	}
	return s, nil
}

// ParseBytes decodes a quoted standard base64 string.
func ParseBytes(data []byte) ([]byte, error) {
	s, err := ParseString(data)
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "base64 %q: %v", data, err)
	}
	return b, nil
}
