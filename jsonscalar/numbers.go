package jsonscalar

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/parsa/bde/utils"
)

type signed interface {
	int8 | int16 | int32 | int64 | int
}

type unsigned interface {
	uint8 | uint16 | uint32 | uint64 | uint
}

// ParseInt64 decodes a signed 64-bit integer token.
func ParseInt64(data []byte) (int64, error) { return parseSigned[int64](data) }

// ParseUint64 decodes an unsigned 64-bit integer token.
func ParseUint64(data []byte) (uint64, error) { return parseUnsigned[uint64](data) }

func parseSigned[T signed](data []byte) (T, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(ErrMalformed, "empty integer")
	}
	neg := data[0] == '-'
	if neg {
		data = data[1:]
	}
	mag, err := parseUint64(data)
	if err != nil {
		return 0, err
	}
	limit := uint64(1)<<(bitSize[T]()-1) - 1
	switch {
	case neg && mag <= limit+1:
		return T(-mag), nil // wraps to the minimum for mag == limit+1
	case !neg && mag <= limit:
		return T(mag), nil
	}
	return 0, errors.Wrapf(ErrRange, "%d-bit signed %q", bitSize[T](), data)
}

func parseUnsigned[T unsigned](data []byte) (T, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(ErrMalformed, "empty integer")
	}
	v, err := parseUint64(data)
	if err != nil {
		return 0, err
	}
	if bits := bitSize[T](); bits < 64 && v > uint64(1)<<bits-1 {
		return 0, errors.Wrapf(ErrRange, "%d-bit unsigned %q", bits, data)
	}
	return T(v), nil
}

func bitSize[T signed | unsigned]() int {
	var x T
	switch any(x).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int64, uint64:
		return 64
	}
	return strconv.IntSize
}

// maxUint64Digits is len("18446744073709551615").
const maxUint64Digits = 20

// parseUint64 decodes a non-negative JSON number that denotes an integer.
// Fraction and exponent parts are allowed as long as the value is
// integral, so 1.5e1, 150e-1 and 1.0 are all accepted.
func parseUint64(data []byte) (uint64, error) {
	if len(data) == 0 || data[0] == '-' {
		return 0, errors.Wrapf(ErrMalformed, "unsigned %q", data)
	}
	res, err := token(data)
	if err != nil {
		return 0, err
	}
	if res.Type != gjson.Number {
		return 0, errors.Wrapf(ErrMalformed, "number %q", data)
	}

	// raw aliases data and does not outlive this call.
	raw := utils.B2s(data)
	exp := 0
	if i := strings.IndexAny(raw, "eE"); i >= 0 {
		e := raw[i+1:]
		raw = raw[:i]
		// Past ±limit every non-zero mantissa is out of range or
		// non-integral, so clamping keeps the shift arithmetic in int.
		limit := maxUint64Digits + len(data)
		n, err := strconv.Atoi(e)
		switch {
		case err != nil && strings.HasPrefix(e, "-"), err == nil && n < -limit:
			n = -limit
		case err != nil, n > limit:
			n = limit
		}
		exp = n
	}
	intPart, frac := raw, ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		intPart, frac = raw[:i], raw[i+1:]
	}

	digits := strings.TrimLeft(intPart+frac, "0")
	if digits == "" {
		return 0, nil
	}
	shift := exp - len(frac)

	if shift < 0 {
		drop := -shift
		if drop > len(digits) || strings.TrimRight(digits[len(digits)-drop:], "0") != "" {
			return 0, errors.Wrapf(ErrMalformed, "non-integral %q", data)
		}
		digits = digits[:len(digits)-drop]
	} else if shift > 0 {
		if len(digits)+shift > maxUint64Digits {
			return 0, errors.Wrapf(ErrRange, "unsigned %q", data)
		}
		digits += strings.Repeat("0", shift)
	}
	if len(digits) > maxUint64Digits {
		return 0, errors.Wrapf(ErrRange, "unsigned %q", data)
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrRange, "unsigned %q", data)
	}
	return v, nil
}

// specialFloats are the quoted spellings accepted for non-finite values.
var specialFloats = map[string]float64{
	"nan":       math.NaN(),
	"inf":       math.Inf(1),
	"+inf":      math.Inf(1),
	"-inf":      math.Inf(-1),
	"infinity":  math.Inf(1),
	"+infinity": math.Inf(1),
	"-infinity": math.Inf(-1),
}

// ParseFloat64 decodes a JSON number, or a quoted NaN / INF / Infinity
// spelling (case-insensitive, optional sign for the infinities).
func ParseFloat64(data []byte) (float64, error) {
	res, err := token(data)
	if err != nil {
		return 0, err
	}
	switch res.Type {
	case gjson.Number:
		if math.IsInf(res.Num, 0) {
			return 0, errors.Wrapf(ErrRange, "float %q", data)
		}
		return res.Num, nil
	case gjson.String:
		if v, ok := specialFloats[strings.ToLower(res.Str)]; ok {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrMalformed, "float %q", data)
}

// ParseFloat32 is ParseFloat64 narrowed to float32.  Finite values that
// overflow float32 are a range error.
func ParseFloat32(data []byte) (float32, error) {
	v, err := ParseFloat64(data)
	if err != nil {
		return 0, err
	}
	f := float32(v)
	if math.IsInf(float64(f), 0) && !math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrRange, "float32 %q", data)
	}
	return f, nil
}
