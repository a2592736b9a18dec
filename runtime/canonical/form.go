package canonical

import (
	"encoding/binary"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/cgt-lang/cgt/core/numeric"
)

// Form is a canonical game value. It is either a closed-form Nus or a
// general value given by its canonical option sets; in both shapes the
// option sets are materialized, so option queries, printing, and the
// generic order work uniformly.
//
// Forms are immutable and interned: handles obtained from one Store are
// equal as game values exactly when they are the same pointer.
type Form struct {
	nus      *Nus
	left     []*Form // canonical left options, sorted by the option order
	right    []*Form
	hash     uint64
	birthday int
}

// Moves is a pre-canonical pair of option bags. It is the input of the
// canonicalizer; the options themselves must already be canonical.
type Moves struct {
	Left  []*Form
	Right []*Form
}

// ToNus returns the closed form of f, if it has one.
func (f *Form) ToNus() (Nus, bool) {
	if f.nus == nil {
		return Nus{}, false
	}
	return *f.nus, true
}

// IsNumber reports whether f is a plain dyadic rational.
func (f *Form) IsNumber() bool {
	return f.nus != nil && f.nus.IsNumber()
}

// LeftOptions returns the canonical left options of f.
func (f *Form) LeftOptions() []*Form {
	return append([]*Form(nil), f.left...)
}

// RightOptions returns the canonical right options of f.
func (f *Form) RightOptions() []*Form {
	return append([]*Form(nil), f.right...)
}

// Fingerprint returns the structural hash of f. Equal values have equal
// fingerprints; the converse holds only up to hash collisions, which the
// store resolves during interning.
func (f *Form) Fingerprint() uint64 { return f.hash }

// Birthday returns the depth of the canonical game tree of f: 0 for the
// values with no options, 1 + the latest-born option otherwise. It is the
// well-founded measure bounding every recursion over f.
func (f *Form) Birthday() int { return f.birthday }

// Compare is the total option order used to normalize option sequences:
// fingerprint ascending, ties broken structurally. Returns -1, 0, or 1.
func Compare(a, b *Form) int {
	if a == b {
		return 0
	}
	if a.hash != b.hash {
		if a.hash < b.hash {
			return -1
		}
		return 1
	}
	return compareStructural(a, b)
}

func compareStructural(a, b *Form) int {
	// Nus shapes sort before general shapes.
	switch {
	case a.nus != nil && b.nus == nil:
		return -1
	case a.nus == nil && b.nus != nil:
		return 1
	case a.nus != nil:
		an, bn := *a.nus, *b.nus
		if c := an.number.Cmp(bn.number); c != 0 {
			return c
		}
		if an.ups != bn.ups {
			if an.ups < bn.ups {
				return -1
			}
			return 1
		}
		if an.star != bn.star {
			if an.star < bn.star {
				return -1
			}
			return 1
		}
		return 0
	}
	if c := compareOptionLists(a.left, b.left); c != 0 {
		return c
	}
	return compareOptionLists(a.right, b.right)
}

func compareOptionLists(a, b []*Form) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Structural hashes are the first word of a BLAKE2b digest over the
// value's content: closed forms hash their four components, general
// forms hash the hashes of their sorted options. Collisions land in the
// same intern bucket and are told apart by handle comparison.

const (
	tagNus   byte = 0x1
	tagMoves byte = 0x2
)

func hashNus(n Nus) uint64 {
	var buf [21]byte
	buf[0] = tagNus
	binary.LittleEndian.PutUint64(buf[1:], uint64(n.number.Numerator()))
	binary.LittleEndian.PutUint32(buf[9:], n.number.DenominatorExponent())
	binary.LittleEndian.PutUint32(buf[13:], uint32(n.ups))
	binary.LittleEndian.PutUint32(buf[17:], uint32(n.star))
	sum := blake2b.Sum256(buf[:])
	return binary.LittleEndian.Uint64(sum[:8])
}

func hashMoves(left, right []*Form) uint64 {
	buf := make([]byte, 0, 5+8*(len(left)+len(right)))
	buf = append(buf, tagMoves)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(left)))
	for _, o := range left {
		buf = binary.LittleEndian.AppendUint64(buf, o.hash)
	}
	for _, o := range right {
		buf = binary.LittleEndian.AppendUint64(buf, o.hash)
	}
	sum := blake2b.Sum256(buf)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Store interns canonical forms and caches the derived relations (sums,
// negations, order comparisons). It is safe for concurrent use; the first
// successful insert of a value wins and later equal inserts return the
// existing handle.
type Store struct {
	mu      sync.RWMutex
	buckets map[uint64][]*Form

	sumMu sync.RWMutex
	sums  map[[2]*Form]*Form

	negMu sync.RWMutex
	negs  map[*Form]*Form

	leqMu sync.RWMutex
	leqs  map[[2]*Form]bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		buckets: make(map[uint64][]*Form),
		sums:    make(map[[2]*Form]*Form),
		negs:    make(map[*Form]*Form),
		leqs:    make(map[[2]*Form]bool),
	}
}

// Len returns the number of interned forms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Zero returns the value 0.
func (s *Store) Zero() *Form { return s.FromNus(Nus{}) }

// Integer returns the integer n.
func (s *Store) Integer(n int64) *Form { return s.FromNus(NusInteger(n)) }

// Number returns the dyadic rational d.
func (s *Store) Number(d numeric.Dyadic) *Form { return s.FromNus(NusNumber(d)) }

// Dyadic returns p / 2^q.
func (s *Store) Dyadic(p int64, q uint32) *Form {
	return s.Number(numeric.NewDyadic(p, q))
}

// Nimber returns *k.
func (s *Store) Nimber(k numeric.Nimber) *Form { return s.FromNus(NusNimber(k)) }

// Star returns *.
func (s *Store) Star() *Form { return s.Nimber(1) }

// Up returns ↑.
func (s *Store) Up() *Form { return s.FromNus(NewNus(numeric.Dyadic{}, 1, 0)) }

// FromNus returns the interned handle for the closed-form value n.
func (s *Store) FromNus(n Nus) *Form {
	h := hashNus(n)
	if f := s.lookupNus(h, n); f != nil {
		return f
	}

	// Materialize the canonical option sets before taking the write lock;
	// expansion interns sub-values recursively.
	left, right := s.expandNus(n)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cand := range s.buckets[h] {
		if cand.nus != nil && *cand.nus == n {
			return cand
		}
	}
	nus := n
	f := &Form{nus: &nus, left: left, right: right, hash: h, birthday: birthdayOf(left, right)}
	s.buckets[h] = append(s.buckets[h], f)
	return f
}

func (s *Store) lookupNus(h uint64, n Nus) *Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cand := range s.buckets[h] {
		if cand.nus != nil && *cand.nus == n {
			return cand
		}
	}
	return nil
}

// internMoves interns a general-shape form. The option sets must already
// be canonical, sorted, and deduplicated, and must not collapse to a Nus.
func (s *Store) internMoves(left, right []*Form) *Form {
	h := hashMoves(left, right)

	s.mu.RLock()
	for _, cand := range s.buckets[h] {
		if cand.nus == nil && sameHandles(cand.left, left) && sameHandles(cand.right, right) {
			s.mu.RUnlock()
			return cand
		}
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cand := range s.buckets[h] {
		if cand.nus == nil && sameHandles(cand.left, left) && sameHandles(cand.right, right) {
			return cand
		}
	}
	f := &Form{left: left, right: right, hash: h, birthday: birthdayOf(left, right)}
	s.buckets[h] = append(s.buckets[h], f)
	return f
}

// birthdayOf is 1 + the latest-born option, 0 with no options at all.
func birthdayOf(left, right []*Form) int {
	b := 0
	for _, o := range left {
		if o.birthday+1 > b {
			b = o.birthday + 1
		}
	}
	for _, o := range right {
		if o.birthday+1 > b {
			b = o.birthday + 1
		}
	}
	return b
}

func sameHandles(a, b []*Form) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// expandNus produces the canonical option sets of a closed-form value,
// following the standard tables: integers count down toward zero, dyadics
// step to their half-denominator neighbors, *k offers all smaller nimbers
// to both players, and up multiples recurse with the star flipped. ↑* and
// ↓* have exceptional forms.
func (s *Store) expandNus(n Nus) (left, right []*Form) {
	num := n.number
	switch {
	case n.IsInteger():
		v := num.Numerator()
		switch {
		case v > 0:
			left = []*Form{s.Integer(v - 1)}
		case v < 0:
			right = []*Form{s.Integer(v + 1)}
		}
	case n.IsNumber():
		p, q := num.Numerator(), num.DenominatorExponent()
		left = []*Form{s.Dyadic(p-1, q)}
		right = []*Form{s.Dyadic(p+1, q)}
	case n.ups == 0:
		// number + *k, k >= 1: both players move to all smaller stars.
		opts := make([]*Form, int(n.star))
		for i := numeric.Nimber(0); i < n.star; i++ {
			opts[int(i)] = s.FromNus(NewNus(num, 0, i))
		}
		left = append([]*Form(nil), opts...)
		right = opts
	case n.ups == 1 && n.star == 1:
		numberForm := s.Number(num)
		left = []*Form{numberForm, s.FromNus(NewNus(num, 0, 1))}
		right = []*Form{numberForm}
	case n.ups == -1 && n.star == 1:
		numberForm := s.Number(num)
		left = []*Form{numberForm}
		right = []*Form{numberForm, s.FromNus(NewNus(num, 0, 1))}
	case n.ups > 0:
		left = []*Form{s.Number(num)}
		right = []*Form{s.FromNus(NewNus(num, n.ups-1, n.star.Add(1)))}
	default:
		left = []*Form{s.FromNus(NewNus(num, n.ups+1, n.star.Add(1)))}
		right = []*Form{s.Number(num)}
	}
	sortOptions(left)
	sortOptions(right)
	return left, right
}

func sortOptions(opts []*Form) {
	sort.Slice(opts, func(i, j int) bool { return Compare(opts[i], opts[j]) < 0 })
}

// normalizeOptions copies, sorts, and deduplicates an option bag.
// Duplicates are pointer-equal because options are interned.
func normalizeOptions(opts []*Form) []*Form {
	out := append([]*Form(nil), opts...)
	sortOptions(out)
	n := 0
	for i, o := range out {
		if i > 0 && o == out[n-1] {
			continue
		}
		out[n] = o
		n++
	}
	return out[:n]
}
