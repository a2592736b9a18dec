package canonical

// Sum returns the disjunctive sum g + h. Closed-form operands add in
// closed form; otherwise the sum is built from options (a player moves in
// exactly one summand) and canonicalized. Results are cached per unordered
// operand pair.
func (s *Store) Sum(g, h *Form) *Form {
	if g.nus != nil && h.nus != nil {
		return s.FromNus(g.nus.Add(*h.nus))
	}

	key := sumKey(g, h)
	s.sumMu.RLock()
	f, ok := s.sums[key]
	s.sumMu.RUnlock()
	if ok {
		return f
	}

	var m Moves
	for _, gL := range g.left {
		m.Left = append(m.Left, s.Sum(gL, h))
	}
	for _, hL := range h.left {
		m.Left = append(m.Left, s.Sum(g, hL))
	}
	for _, gR := range g.right {
		m.Right = append(m.Right, s.Sum(gR, h))
	}
	for _, hR := range h.right {
		m.Right = append(m.Right, s.Sum(g, hR))
	}
	f = s.FromMoves(m)

	s.sumMu.Lock()
	s.sums[key] = f
	s.sumMu.Unlock()
	return f
}

// sumKey orders the operands deterministically so g+h and h+g share a
// cache entry.
func sumKey(g, h *Form) [2]*Form {
	if Compare(g, h) <= 0 {
		return [2]*Form{g, h}
	}
	return [2]*Form{h, g}
}

// Negate returns -g: the game with the roles of the players swapped.
// Negating a canonical form yields a canonical form, so the option sets
// mirror directly.
func (s *Store) Negate(g *Form) *Form {
	if g.nus != nil {
		return s.FromNus(g.nus.Neg())
	}

	s.negMu.RLock()
	f, ok := s.negs[g]
	s.negMu.RUnlock()
	if ok {
		return f
	}

	left := make([]*Form, 0, len(g.right))
	for _, gR := range g.right {
		left = append(left, s.Negate(gR))
	}
	right := make([]*Form, 0, len(g.left))
	for _, gL := range g.left {
		right = append(right, s.Negate(gL))
	}
	f = s.internMoves(normalizeOptions(left), normalizeOptions(right))

	s.negMu.Lock()
	s.negs[g] = f
	s.negs[f] = g
	s.negMu.Unlock()
	return f
}

// Difference returns g - h.
func (s *Store) Difference(g, h *Form) *Form {
	return s.Sum(g, s.Negate(h))
}
