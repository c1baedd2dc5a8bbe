// Package money provides an exact fixed-point amount type with two
// fractional digits, used for all monetary values in the application.
// Amounts are stored as integer cents so sums and differences never
// accumulate binary floating-point error.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Amount is a monetary value in cents.
type Amount int64

// FromCents wraps a raw cent value.
func FromCents(cents int64) Amount {
	return Amount(cents)
}

// Parse converts a decimal string to an Amount with half-up rounding on
// the third fractional digit. Both dot and comma decimal separators are
// accepted. A leading minus sign is allowed; amount-sign policy is the
// caller's concern, not the parser's.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// First two fractional digits, half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return Amount(cents), nil
}

func (a Amount) Cents() int64 { return int64(a) }

func (a Amount) Add(b Amount) Amount { return a + b }

func (a Amount) Sub(b Amount) Amount { return a - b }

func (a Amount) IsNegative() bool { return a < 0 }

func (a Amount) IsZero() bool { return a == 0 }

// Float64 returns the amount in whole units for presentation-only math
// such as percentages. Never use it for storage or summation.
func (a Amount) Float64() float64 {
	return float64(a) / 100.0
}

// String formats the amount as a plain decimal with two fractional
// digits, e.g. "1500.00" or "-0.05".
func (a Amount) String() string {
	cents := int64(a)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON emits the amount as an unquoted JSON number with exactly
// two decimal places.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into amount: %w", string(data), err)
	}
	*a = parsed
	return nil
}

// Value stores the amount as its decimal string form, which Postgres
// accepts for NUMERIC columns without precision loss.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan reads an amount back from a NUMERIC column. Drivers hand
// NUMERIC values over as text; integer and float forms are handled for
// aggregates and test fakes.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = 0
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return fmt.Errorf("cannot scan %q into amount: %w", string(v), err)
		}
		*a = parsed
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return fmt.Errorf("cannot scan %q into amount: %w", v, err)
		}
		*a = parsed
		return nil
	case int64:
		*a = Amount(v * 100)
		return nil
	case float64:
		*a = Amount(int64(math.Round(v * 100)))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into amount", src)
	}
}
