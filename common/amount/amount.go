// Package amount implements a fixed-point signed monetary scalar: an int64
// scaled by 10,000, giving four fractional decimal digits and checked
// arithmetic with no silent wraparound.
package amount

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ledgerflow/txnengine/common"
)

// Scale is the number of integer units per whole unit (four decimal places).
const Scale = 10_000

const (
	// ErrInvalidAmount is returned when a decimal string cannot be parsed
	// as a valid amount.
	ErrInvalidAmount = common.ConstError("invalid amount")
	// ErrOverflow is returned when an arithmetic operation or a parsed
	// value would not fit in the underlying representation.
	ErrOverflow = common.ConstError("arithmetic overflow")
)

// Amount is a signed fixed-point value with four fractional digits.
type Amount struct {
	raw int64
}

// Zero returns the additive identity.
func Zero() Amount {
	return Amount{}
}

// FromRaw builds an Amount from its already-scaled representation. Intended
// for tests and callers that already hold a validated scaled value.
func FromRaw(raw int64) Amount {
	return Amount{raw: raw}
}

// Raw returns the underlying scaled representation.
func (a Amount) Raw() int64 {
	return a.raw
}

// IsZero reports whether a is exactly zero.
func (a Amount) IsZero() bool {
	return a.raw == 0
}

// IsNegative reports whether a is strictly less than zero.
func (a Amount) IsNegative() bool {
	return a.raw < 0
}

// Equal reports whether a and b denote the same value.
func (a Amount) Equal(b Amount) bool {
	return a.raw == b.raw
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.raw < b.raw
}

// GreaterThan reports whether a > b.
func (a Amount) GreaterThan(b Amount) bool {
	return a.raw > b.raw
}

// LessOrEqual reports whether a <= b.
func (a Amount) LessOrEqual(b Amount) bool {
	return a.raw <= b.raw
}

// GreaterOrEqual reports whether a >= b.
func (a Amount) GreaterOrEqual(b Amount) bool {
	return a.raw >= b.raw
}

// CheckedAdd returns a+b and true, or the zero value and false on overflow.
func CheckedAdd(a, b Amount) (Amount, bool) {
	sum := a.raw + b.raw
	if (b.raw > 0 && sum < a.raw) || (b.raw < 0 && sum > a.raw) {
		return Amount{}, false
	}
	return Amount{raw: sum}, true
}

// CheckedSub returns a-b and true, or the zero value and false on overflow.
func CheckedSub(a, b Amount) (Amount, bool) {
	diff := a.raw - b.raw
	if (b.raw < 0 && diff < a.raw) || (b.raw > 0 && diff > a.raw) {
		return Amount{}, false
	}
	return Amount{raw: diff}, true
}

// Parse converts a decimal string ("123.4500", "-1", "0.0001", ...) into an
// Amount. At most four fractional digits are accepted; anything beyond that
// is rejected rather than silently truncated.
func Parse(s string) (Amount, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Amount{}, ErrInvalidAmount
	}

	negative := false
	rest := trimmed
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}

	parts := strings.SplitN(rest, ".", 3)
	var intPart, fracPart string
	switch len(parts) {
	case 1:
		intPart = parts[0]
	case 2:
		intPart, fracPart = parts[0], parts[1]
	default:
		return Amount{}, ErrInvalidAmount
	}

	if intPart == "" || !isDigits(intPart) {
		return Amount{}, ErrInvalidAmount
	}
	if len(fracPart) > 4 || !isDigits(fracPart) {
		return Amount{}, ErrInvalidAmount
	}

	intVal, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}

	fracPadded := fracPart + strings.Repeat("0", 4-len(fracPart))
	fracVal, err := strconv.ParseInt(fracPadded, 10, 64)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}

	scaled, ok := checkedScale(intVal, fracVal)
	if !ok {
		return Amount{}, ErrOverflow
	}

	if negative {
		if scaled == math.MinInt64 {
			return Amount{}, ErrOverflow
		}
		scaled = -scaled
	}

	return Amount{raw: scaled}, nil
}

// Format renders a as a decimal string with exactly four fractional digits.
func Format(a Amount) string {
	sign := ""
	abs := absUint64(a.raw)
	if a.raw < 0 {
		sign = "-"
	}
	integer := abs / Scale
	frac := abs % Scale
	return fmt.Sprintf("%s%d.%04d", sign, integer, frac)
}

func (a Amount) String() string {
	return Format(a)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func checkedScale(intVal, fracVal int64) (int64, bool) {
	mul := intVal * Scale
	if intVal != 0 && mul/intVal != Scale {
		return 0, false
	}
	sum := mul + fracVal
	if sum < mul {
		return 0, false
	}
	return sum, true
}

func absUint64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	return uint64(-(v + 1)) + 1
}
