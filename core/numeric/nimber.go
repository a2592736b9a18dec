package numeric

import "fmt"

// Nimber is the value *k of a single Nim heap of size k. Nimbers add by
// XOR and every nimber is its own negative. Nimbers other than *0 are
// incomparable with each other and with 0 in the game order; only equality
// is meaningful.
type Nimber uint32

// Add returns the nim-sum n + m = *(n XOR m).
func (n Nimber) Add(m Nimber) Nimber { return n ^ m }

// Neg returns -n, which is n itself.
func (n Nimber) Neg() Nimber { return n }

// String renders *0 as "0", *1 as "*", and *k as "*k".
func (n Nimber) String() string {
	switch n {
	case 0:
		return "0"
	case 1:
		return "*"
	default:
		return fmt.Sprintf("*%d", uint32(n))
	}
}

// Mex returns the minimum excludant of ks: the smallest nimber not in ks.
func Mex(ks []Nimber) Nimber {
	seen := make(map[Nimber]struct{}, len(ks))
	for _, k := range ks {
		seen[k] = struct{}{}
	}
	for m := Nimber(0); ; m++ {
		if _, ok := seen[m]; !ok {
			return m
		}
	}
}
