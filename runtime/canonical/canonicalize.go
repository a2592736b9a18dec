package canonical

import (
	"github.com/cgt-lang/cgt/core/invariant"
	"github.com/cgt-lang/cgt/core/numeric"
)

// FromMoves computes the canonical form of the value {Left | Right}. The
// options must be handles from this store. The result is the unique
// interned handle for the value: dominated options are eliminated,
// reversible options are bypassed through the position they reverse
// out to, and any value admitting a closed form is collapsed to it.
func (s *Store) FromMoves(m Moves) *Form {
	left := normalizeOptions(m.Left)
	right := normalizeOptions(m.Right)

	// Purely numeric option sets resolve by the simplicity rule without
	// touching the general machinery.
	if f, ok := s.collapseNumeric(left, right); ok {
		return f
	}

	// Fixpoint of dominated-option elimination and reversible-option
	// bypass. Each bypass replaces an option with options of strictly
	// smaller birthday, so the loop terminates.
	for {
		left = s.removeDominated(left, true)
		right = s.removeDominated(right, false)

		var changedL, changedR bool
		left, changedL = s.bypassLeft(left, right)
		right, changedR = s.bypassRight(left, right)
		left = normalizeOptions(left)
		right = normalizeOptions(right)

		if !changedL && !changedR {
			break
		}
	}

	if nus, ok := s.detectNus(left, right); ok {
		return s.FromNus(nus)
	}
	return s.internMoves(left, right)
}

// collapseNumeric resolves option sets in which every option is a plain
// number and every left option is below every right option: the value is
// the simplest number in the gap (an empty side is an open bound).
func (s *Store) collapseNumeric(left, right []*Form) (*Form, bool) {
	for _, o := range left {
		if !o.IsNumber() {
			return nil, false
		}
	}
	for _, o := range right {
		if !o.IsNumber() {
			return nil, false
		}
	}

	switch {
	case len(left) == 0 && len(right) == 0:
		return s.Zero(), true
	case len(left) == 0:
		return s.Number(numeric.SimplestLessThan(minNumber(right))), true
	case len(right) == 0:
		return s.Number(numeric.SimplestGreaterThan(maxNumber(left))), true
	}

	maxL, minR := maxNumber(left), minNumber(right)
	if maxL.Cmp(minR) < 0 {
		return s.Number(numeric.SimplestBetween(maxL, minR)), true
	}
	// Overlapping numbers ({n|n} and switches) go through the general path.
	return nil, false
}

func maxNumber(opts []*Form) numeric.Dyadic {
	best := opts[0].nus.Number()
	for _, o := range opts[1:] {
		if d := o.nus.Number(); d.Cmp(best) > 0 {
			best = d
		}
	}
	return best
}

func minNumber(opts []*Form) numeric.Dyadic {
	best := opts[0].nus.Number()
	for _, o := range opts[1:] {
		if d := o.nus.Number(); d.Cmp(best) < 0 {
			best = d
		}
	}
	return best
}

// removeDominated keeps only the undominated options of one side: Left
// discards any option below another left option, Right discards any
// option above another right option. Dominance is transitive, so a single
// pass suffices.
func (s *Store) removeDominated(opts []*Form, leftSide bool) []*Form {
	out := make([]*Form, 0, len(opts))
	for i, g := range opts {
		dominated := false
		for j, other := range opts {
			if i == j {
				continue
			}
			// Equal options are the same handle and were deduplicated.
			if leftSide && s.Leq(g, other) || !leftSide && s.Leq(other, g) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, g)
		}
	}
	return out
}

// bypassLeft replaces every reversible left option g (one with a right
// option gR <= G) by the left options of gR. Replacements are re-examined,
// since they may themselves be reversible through a worse position. The
// comparison target is the current option sets of G, which at this point
// carry the same value as the original input.
func (s *Store) bypassLeft(left, right []*Form) ([]*Form, bool) {
	changed := false
	queue := append([]*Form(nil), left...)
	out := make([]*Form, 0, len(queue))
	for i := 0; i < len(queue); i++ {
		g := queue[i]
		reversed := false
		for _, gR := range g.right {
			if s.leqFormMoves(gR, left, right) {
				for _, r := range gR.left {
					invariant.Shrinks("bypassed left option birthday", g.birthday, r.birthday)
				}
				queue = append(queue, gR.left...)
				reversed = true
				changed = true
				break
			}
		}
		if !reversed {
			out = append(out, g)
		}
	}
	return out, changed
}

// bypassRight is the mirror of bypassLeft: a right option h with a left
// option hL >= G is replaced by the right options of hL.
func (s *Store) bypassRight(left, right []*Form) ([]*Form, bool) {
	changed := false
	queue := append([]*Form(nil), right...)
	out := make([]*Form, 0, len(queue))
	for i := 0; i < len(queue); i++ {
		h := queue[i]
		reversed := false
		for _, hL := range h.left {
			if s.leqMovesForm(left, right, hL) {
				for _, r := range hL.right {
					invariant.Shrinks("bypassed right option birthday", h.birthday, r.birthday)
				}
				queue = append(queue, hL.right...)
				reversed = true
				changed = true
				break
			}
		}
		if !reversed {
			out = append(out, h)
		}
	}
	return out, changed
}

// detectNus inverts the closed-form expansion tables on simplified,
// normalized option sets. It must recognize exactly the values expandNus
// produces; anything else stays in general shape.
func (s *Store) detectNus(left, right []*Form) (Nus, bool) {
	for _, o := range left {
		if o.nus == nil {
			return Nus{}, false
		}
	}
	for _, o := range right {
		if o.nus == nil {
			return Nus{}, false
		}
	}

	// Numbers: both sides empty or separated (handled before
	// simplification, but simplification can expose new numeric sets).
	if allNumbers(left) && allNumbers(right) {
		switch {
		case len(left) == 0 && len(right) == 0:
			return Nus{}, true
		case len(left) == 0:
			return NusNumber(numeric.SimplestLessThan(minNumber(right))), true
		case len(right) == 0:
			return NusNumber(numeric.SimplestGreaterThan(maxNumber(left))), true
		}
		if maxL, minR := maxNumber(left), minNumber(right); maxL.Cmp(minR) < 0 {
			return NusNumber(numeric.SimplestBetween(maxL, minR)), true
		}
		// {n|n} is n*: covered by the star-set case below. A switch is
		// not a Nus.
	}

	if n, ok := detectStarSet(left, right); ok {
		return n, true
	}
	return detectUps(left, right)
}

func allNumbers(opts []*Form) bool {
	for _, o := range opts {
		if !o.IsNumber() {
			return false
		}
	}
	return true
}

// detectStarSet recognizes x + *k: both players move to x + *i for every
// i below k. The star indices must be exactly 0..k-1, i.e. their mex is k.
func detectStarSet(left, right []*Form) (Nus, bool) {
	if len(left) == 0 || len(left) != len(right) {
		return Nus{}, false
	}
	if !sameHandles(left, right) {
		return Nus{}, false
	}

	x := left[0].nus.Number()
	stars := make([]numeric.Nimber, 0, len(left))
	for _, o := range left {
		n := *o.nus
		if n.Ups() != 0 || n.Number().Cmp(x) != 0 {
			return Nus{}, false
		}
		stars = append(stars, n.Star())
	}
	// Interned options are distinct, so the stars are distinct and the
	// mex check pins them to 0..k-1.
	k := numeric.Mex(stars)
	if int(k) != len(stars) {
		return Nus{}, false
	}
	return NewNus(x, 0, k), true
}

// detectUps recognizes the up-multiple patterns:
//
//	{x | x + m↑ + *k}  = x + (m+1)↑ + *(k xor 1)   for m >= 0
//	{x, x* | x}        = x + ↑*
//
// and their mirrors for down multiples.
func detectUps(left, right []*Form) (Nus, bool) {
	switch {
	case len(left) == 1 && len(right) == 1:
		g, h := *left[0].nus, *right[0].nus
		if g.IsNumber() && !h.IsNumber() && h.Number().Cmp(g.Number()) == 0 && h.Ups() >= 0 {
			return NewNus(g.Number(), h.Ups()+1, h.Star().Add(1)), true
		}
		if h.IsNumber() && !g.IsNumber() && g.Number().Cmp(h.Number()) == 0 && g.Ups() <= 0 {
			return NewNus(h.Number(), g.Ups()-1, g.Star().Add(1)), true
		}
	case len(left) == 2 && len(right) == 1:
		if x, ok := upStarParts(right[0], left); ok {
			return NewNus(x, 1, 1), true
		}
	case len(left) == 1 && len(right) == 2:
		if x, ok := upStarParts(left[0], right); ok {
			return NewNus(x, -1, 1), true
		}
	}
	return Nus{}, false
}

// upStarParts checks that single is the number x and pair is {x, x*},
// returning x.
func upStarParts(single *Form, pair []*Form) (numeric.Dyadic, bool) {
	if !single.IsNumber() {
		return numeric.Dyadic{}, false
	}
	x := single.nus.Number()
	var sawNumber, sawStar bool
	for _, o := range pair {
		n := *o.nus
		if n.Ups() != 0 || n.Number().Cmp(x) != 0 {
			return numeric.Dyadic{}, false
		}
		switch n.Star() {
		case 0:
			sawNumber = true
		case 1:
			sawStar = true
		default:
			return numeric.Dyadic{}, false
		}
	}
	return x, sawNumber && sawStar
}
