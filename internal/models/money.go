package models

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of fractional digits carried by Money.
const MinorUnitExponent = 2

// ErrInvalidMoney is returned when a value cannot be represented exactly in minor units.
var ErrInvalidMoney = errors.New("invalid money amount")

var hundred = decimal.NewFromInt(100)

// Money is an amount of currency in minor units (cents, kobo).
// It is stored as BIGINT and rendered in JSON as a two-decimal string.
type Money int64

// ParseMoney converts a decimal string such as "300.00" into Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	return MoneyFromDecimal(d)
}

// MoneyFromDecimal converts d into Money, rejecting sub-minor-unit precision and overflow.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	minor := d.Shift(MinorUnitExponent)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidMoney, d.String(), MinorUnitExponent)
	}
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || minor.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidMoney, d.String())
	}
	return Money(minor.IntPart()), nil
}

// Decimal returns m in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitExponent)
}

// String formats m with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitExponent)
}

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// Add returns m+o, failing on int64 overflow.
func (m Money) Add(o Money) (Money, error) {
	if (o > 0 && m > math.MaxInt64-o) || (o < 0 && m < math.MinInt64-o) {
		return 0, fmt.Errorf("%w: %s + %s overflows", ErrInvalidMoney, m, o)
	}
	return m + o, nil
}

// Sub returns m-o, failing on int64 overflow.
func (m Money) Sub(o Money) (Money, error) {
	if o == math.MinInt64 {
		return 0, fmt.Errorf("%w: %s - %s overflows", ErrInvalidMoney, m, o)
	}
	return m.Add(-o)
}

// MarshalJSON renders m as a quoted decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMoney, string(data))
	}
	v, err := MoneyFromDecimal(d)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Value stores m as a plain integer.
func (m Money) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan reads an integer column into m.
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = 0
	case int64:
		*m = Money(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMoney, string(v))
		}
		*m = Money(n)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMoney, v)
		}
		*m = Money(n)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidMoney, src)
	}
	return nil
}

// Percentage returns part/whole*100 rounded to two places, or 0 when whole is
// not positive. The result is not clamped to 100.
func Percentage(part, whole Money) float64 {
	if whole <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(part)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(whole)), 2)
	f, _ := pct.Float64()
	return f
}

// ReturnPercentage is the gain or loss of current over invested, as a percentage.
func ReturnPercentage(invested, current Money) float64 {
	if invested <= 0 {
		return 0
	}
	return Percentage(current-invested, invested)
}
