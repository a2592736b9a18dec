package canonical

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/invariant"
	"github.com/cgt-lang/cgt/core/numeric"
)

// wireForm is the persisted shape of a canonical value: closed forms as
// their (numerator, denominator exponent, ups, nim index) tuple, general
// forms as their two sorted option sequences, recursively.
type wireForm struct {
	Closed bool       `cbor:"c"`
	Num    int64      `cbor:"n,omitempty"`
	Den    uint32     `cbor:"d,omitempty"`
	Ups    int32      `cbor:"u,omitempty"`
	Star   uint32     `cbor:"s,omitempty"`
	Left   []wireForm `cbor:"l,omitempty"`
	Right  []wireForm `cbor:"r,omitempty"`
}

// encMode uses canonical CBOR, so equal values always serialize to
// identical bytes regardless of the encoding process.
var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	invariant.NoError(err, "canonical cbor encode mode")
	return em
}()

// Encode serializes f into its stable structural representation in
// deterministic canonical CBOR.
func Encode(f *Form) ([]byte, error) {
	return encMode.Marshal(toWire(f))
}

func toWire(f *Form) wireForm {
	if n, ok := f.ToNus(); ok {
		return wireForm{
			Closed: true,
			Num:    n.Number().Numerator(),
			Den:    n.Number().DenominatorExponent(),
			Ups:    n.Ups(),
			Star:   uint32(n.Star()),
		}
	}
	w := wireForm{
		Left:  make([]wireForm, 0, len(f.left)),
		Right: make([]wireForm, 0, len(f.right)),
	}
	for _, o := range f.left {
		w.Left = append(w.Left, toWire(o))
	}
	for _, o := range f.right {
		w.Right = append(w.Right, toWire(o))
	}
	return w
}

// Decode reads a value serialized by Encode and interns it in s,
// returning the canonical handle. Malformed input fails with a parse
// error.
func (s *Store) Decode(data []byte) (*Form, error) {
	var w wireForm
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, cgterrors.Wrap(cgterrors.Parse, "malformed encoded value", err)
	}
	return s.fromWire(w)
}

func (s *Store) fromWire(w wireForm) (*Form, error) {
	if w.Closed {
		if len(w.Left) > 0 || len(w.Right) > 0 {
			return nil, cgterrors.New(cgterrors.Parse, "closed form carries option lists")
		}
		if w.Den > numeric.MaxDenominatorExponent {
			return nil, cgterrors.New(cgterrors.Parse,
				"denominator exponent %d exceeds %d", w.Den, numeric.MaxDenominatorExponent)
		}
		return s.FromNus(NewNus(
			numeric.NewDyadic(w.Num, w.Den), w.Ups, numeric.Nimber(w.Star))), nil
	}

	var m Moves
	for _, o := range w.Left {
		f, err := s.fromWire(o)
		if err != nil {
			return nil, err
		}
		m.Left = append(m.Left, f)
	}
	for _, o := range w.Right {
		f, err := s.fromWire(o)
		if err != nil {
			return nil, err
		}
		m.Right = append(m.Right, f)
	}
	// Re-canonicalizing is a no-op on faithful input and repairs values
	// written by hand.
	return s.FromMoves(m), nil
}
