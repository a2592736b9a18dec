// Package canonical implements the canonical-form value algebra for short
// partizan games: number-up-star closed forms, general option-set values,
// the canonicalizer, disjunctive sums, and the game partial order.
//
// All values are handles interned in a Store; within one store two values
// are equal exactly when they are the same handle.
package canonical

import (
	"fmt"
	"strings"

	"github.com/cgt-lang/cgt/core/numeric"
)

// Nus is a value of the form number + ups·↑ + star: a dyadic rational plus
// an integer multiple of the up infinitesimal plus a nimber. Values in this
// class admit closed-form arithmetic and ordering; the canonicalizer
// collapses every option set equal to such a value into this shape.
type Nus struct {
	number numeric.Dyadic
	ups    int32
	star   numeric.Nimber
}

// NewNus returns number + ups·↑ + star.
func NewNus(number numeric.Dyadic, ups int32, star numeric.Nimber) Nus {
	return Nus{number: number, ups: ups, star: star}
}

// NusInteger returns the integer n as a Nus.
func NusInteger(n int64) Nus {
	return Nus{number: numeric.Integer(n)}
}

// NusNumber returns the dyadic d as a Nus.
func NusNumber(d numeric.Dyadic) Nus {
	return Nus{number: d}
}

// NusNimber returns the nimber *k as a Nus.
func NusNimber(k numeric.Nimber) Nus {
	return Nus{star: k}
}

// Number returns the dyadic part.
func (n Nus) Number() numeric.Dyadic { return n.number }

// Ups returns the multiple of ↑.
func (n Nus) Ups() int32 { return n.ups }

// Star returns the nimber part.
func (n Nus) Star() numeric.Nimber { return n.star }

// IsNumber reports whether n is a plain dyadic rational.
func (n Nus) IsNumber() bool { return n.ups == 0 && n.star == 0 }

// IsInteger reports whether n is a plain integer.
func (n Nus) IsInteger() bool { return n.IsNumber() && n.number.IsInteger() }

// Add returns the disjunctive sum n + m: numbers add, ups add, stars add
// by nim-sum.
func (n Nus) Add(m Nus) Nus {
	return Nus{
		number: n.number.Add(m.number),
		ups:    n.ups + m.ups,
		star:   n.star.Add(m.star),
	}
}

// Neg returns -n. Nimbers are their own negatives.
func (n Nus) Neg() Nus {
	return Nus{number: n.number.Neg(), ups: -n.ups, star: n.star}
}

// leqNus decides a <= b in the game order, in closed form.
//
// For distinct numbers the number part dominates every infinitesimal. For
// equal numbers the sign of the difference d·↑ + *k decides: two or more
// ups are positive for any star, exactly one up is positive unless the
// star is *, and with no ups the values are comparable only when equal.
func leqNus(a, b Nus) bool {
	switch a.number.Cmp(b.number) {
	case -1:
		return true
	case 1:
		return false
	}
	du := b.ups - a.ups
	k := a.star.Add(b.star)
	switch {
	case du >= 2:
		return true
	case du == 1:
		return k != 1
	case du == 0:
		return k == 0
	default:
		return false
	}
}

// String renders n in standard notation: "0", "1/2", "1*", "*2", "↑",
// "↑*", "2↑3*" (2 + 3·↑ + *), "↓2*4".
func (n Nus) String() string {
	if n.IsNumber() {
		return n.number.String()
	}

	var sb strings.Builder
	if !n.number.IsZero() {
		sb.WriteString(n.number.String())
	}
	switch {
	case n.ups > 0:
		sb.WriteString("↑")
		if n.ups > 1 {
			fmt.Fprintf(&sb, "%d", n.ups)
		}
	case n.ups < 0:
		sb.WriteString("↓")
		if n.ups < -1 {
			fmt.Fprintf(&sb, "%d", -n.ups)
		}
	}
	if n.star == 1 {
		sb.WriteString("*")
	} else if n.star > 1 {
		fmt.Fprintf(&sb, "*%d", uint32(n.star))
	}
	return sb.String()
}
