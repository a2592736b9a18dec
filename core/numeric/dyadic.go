// Package numeric provides the value building blocks of the game algebra:
// dyadic rationals and nimbers.
package numeric

import (
	"fmt"

	"github.com/cgt-lang/cgt/core/invariant"
)

// MaxDenominatorExponent bounds the denominator exponent of a Dyadic.
// 64-bit numerators with exponents up to this bound cover all published
// short-game benchmarks; exceeding it is a programmer error.
const MaxDenominatorExponent = 48

// Dyadic is a rational number p / 2^q, kept in the unique reduced form
// where either q == 0 or p is odd. The zero value is the number 0.
//
// Dyadic values are immutable; all methods return new values.
type Dyadic struct {
	num int64
	exp uint32
}

// NewDyadic returns p / 2^q in reduced form.
func NewDyadic(p int64, q uint32) Dyadic {
	invariant.Require(q <= MaxDenominatorExponent,
		"denominator exponent must be at most %d, got %d", MaxDenominatorExponent, q)
	for q > 0 && p%2 == 0 {
		p /= 2
		q--
	}
	return Dyadic{num: p, exp: q}
}

// Integer returns n as a Dyadic.
func Integer(n int64) Dyadic {
	return Dyadic{num: n}
}

// Numerator returns the reduced numerator p.
func (d Dyadic) Numerator() int64 { return d.num }

// DenominatorExponent returns the reduced exponent q of the denominator 2^q.
func (d Dyadic) DenominatorExponent() uint32 { return d.exp }

// IsInteger reports whether d has denominator 1.
func (d Dyadic) IsInteger() bool { return d.exp == 0 }

// IsZero reports whether d is 0.
func (d Dyadic) IsZero() bool { return d.num == 0 }

// Sign returns -1, 0, or 1.
func (d Dyadic) Sign() int {
	switch {
	case d.num < 0:
		return -1
	case d.num > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -d.
func (d Dyadic) Neg() Dyadic {
	return Dyadic{num: -d.num, exp: d.exp}
}

// Add returns d + e.
func (d Dyadic) Add(e Dyadic) Dyadic {
	q := d.exp
	if e.exp > q {
		q = e.exp
	}
	return NewDyadic(d.num<<(q-d.exp)+e.num<<(q-e.exp), q)
}

// Sub returns d - e.
func (d Dyadic) Sub(e Dyadic) Dyadic {
	return d.Add(e.Neg())
}

// Cmp compares d and e, returning -1, 0, or 1.
func (d Dyadic) Cmp(e Dyadic) int {
	q := d.exp
	if e.exp > q {
		q = e.exp
	}
	a := d.num << (q - d.exp)
	b := e.num << (q - e.exp)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Floor returns the largest integer not greater than d.
func (d Dyadic) Floor() int64 {
	return d.num >> d.exp // arithmetic shift rounds toward -inf
}

// Ceil returns the smallest integer not less than d.
func (d Dyadic) Ceil() int64 {
	return -((-d.num) >> d.exp)
}

// String renders d as an integer or as "p/2^q" in decimal, e.g. "1/2", "-3/4".
func (d Dyadic) String() string {
	if d.exp == 0 {
		return fmt.Sprintf("%d", d.num)
	}
	return fmt.Sprintf("%d/%d", d.num, int64(1)<<d.exp)
}

// SimplestBetween returns the simplest dyadic rational strictly between l
// and r (Conway's simplicity rule): the integer closest to zero if the open
// interval contains one, otherwise the dyadic with the smallest denominator.
// Requires l < r.
func SimplestBetween(l, r Dyadic) Dyadic {
	invariant.Require(l.Cmp(r) < 0, "interval (%v, %v) is empty", l, r)

	loInt := l.Floor() + 1 // smallest integer > l
	hiInt := r.Ceil() - 1  // largest integer < r
	if loInt <= hiInt {
		switch {
		case loInt > 0:
			return Integer(loInt)
		case hiInt < 0:
			return Integer(hiInt)
		default:
			return Integer(0)
		}
	}

	// No integer in the interval: the interval lies within a unit interval,
	// so for the smallest viable q exactly one p/2^q fits.
	for q := uint32(1); q <= MaxDenominatorExponent; q++ {
		p := scaledFloor(l, q) + 1
		if c := NewDyadic(p, q); c.Cmp(r) < 0 {
			return c
		}
	}
	invariant.Assert(false, "no dyadic with exponent <= %d in (%v, %v)", MaxDenominatorExponent, l, r)
	return Dyadic{}
}

// SimplestGreaterThan returns the simplest number in (l, +inf): zero if l
// is negative, floor(l)+1 otherwise.
func SimplestGreaterThan(l Dyadic) Dyadic {
	if l.Sign() < 0 {
		return Integer(0)
	}
	return Integer(l.Floor() + 1)
}

// SimplestLessThan returns the simplest number in (-inf, r).
func SimplestLessThan(r Dyadic) Dyadic {
	return SimplestGreaterThan(r.Neg()).Neg()
}

// scaledFloor returns floor(d * 2^q).
func scaledFloor(d Dyadic, q uint32) int64 {
	if q >= d.exp {
		return d.num << (q - d.exp)
	}
	return d.num >> (d.exp - q)
}
