package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Rate is the price of 1 USD in BRL. Only positive values are valid.
type Rate struct {
	value decimal.Decimal
}

func NewRate(v decimal.Decimal) (Rate, error) {
	if !v.IsPositive() {
		return Rate{}, fmt.Errorf("%w: %s", ErrInvalidRate, v.String())
	}
	return Rate{value: v}, nil
}

// ParseRate reads decimal text such as "5.2531".
func ParseRate(s string) (Rate, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	return NewRate(v)
}

func RateFromFloat(f float64) (Rate, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rate{}, fmt.Errorf("%w: %v", ErrInvalidRate, f)
	}
	return NewRate(decimal.NewFromFloat(f))
}

func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rate) Decimal() decimal.Decimal { return r.value }

func (r Rate) IsZero() bool { return r.value.IsZero() }

func (r Rate) Equal(o Rate) bool { return r.value.Equal(o.value) }

// String is the decimal text form used for cache storage. The scale the
// rate was parsed with is kept, so "5.30" stays "5.30".
func (r Rate) String() string {
	if exp := r.value.Exponent(); exp < 0 {
		return r.value.StringFixed(-exp)
	}
	return r.value.String()
}

// Convert multiplies a USD amount by the rate without rounding.
func (r Rate) Convert(amountUSD decimal.Decimal) decimal.Decimal {
	return amountUSD.Mul(r.value)
}
