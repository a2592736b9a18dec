package canonical

import (
	"math/bits"
	"strconv"
	"unicode"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/numeric"
)

// Parse reads a value in the notation produced by String and returns its
// canonical form. Braced option lists are canonicalized, so Parse accepts
// any well-formed value, not only canonical ones: Parse("{2|2}") returns
// the handle for 2*.
//
// Accepted closed forms: integers ("-3"), dyadics ("5/8"), stars ("*",
// "*2"), up multiples ("↑", "↓2", "↑*", "2↑3*4"). ASCII "^" and "v" are
// accepted for "↑" and "↓".
func (s *Store) Parse(input string) (*Form, error) {
	p := &parser{store: s, input: []rune(input)}
	f, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return nil, p.errorf("trailing input")
	}
	return f, nil
}

type parser struct {
	store *Store
	input []rune
	pos   int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.input) }

func (p *parser) peek() rune {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for !p.atEnd() && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return cgterrors.New(cgterrors.Parse, format, args...).
		With("offset", p.pos)
}

func (p *parser) value() (*Form, error) {
	p.skipSpace()
	if p.peek() == '{' {
		return p.braces()
	}
	return p.nus()
}

func (p *parser) braces() (*Form, error) {
	p.pos++ // '{'
	var m Moves
	left, err := p.optionList('|')
	if err != nil {
		return nil, err
	}
	p.pos++ // '|'
	right, err := p.optionList('}')
	if err != nil {
		return nil, err
	}
	p.pos++ // '}'
	m.Left, m.Right = left, right
	return p.store.FromMoves(m), nil
}

// optionList parses a comma-separated (possibly empty) list of values,
// stopping before the given closing rune.
func (p *parser) optionList(closing rune) ([]*Form, error) {
	var opts []*Form
	p.skipSpace()
	if p.peek() == closing {
		return opts, nil
	}
	for {
		f, err := p.value()
		if err != nil {
			return nil, err
		}
		opts = append(opts, f)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case closing:
			return opts, nil
		default:
			return nil, p.errorf("expected %q or %q", ",", string(closing))
		}
	}
}

func (p *parser) nus() (*Form, error) {
	p.skipSpace()

	var (
		number  numeric.Dyadic
		ups     int64
		star    int64
		anyPart bool
	)

	if p.peek() == '-' || isDigit(p.peek()) {
		num, err := p.int64()
		if err != nil {
			return nil, err
		}
		if p.peek() == '/' {
			p.pos++
			den, err := p.int64()
			if err != nil {
				return nil, err
			}
			if den <= 0 || bits.OnesCount64(uint64(den)) != 1 {
				return nil, p.errorf("denominator %d is not a power of two", den)
			}
			number = numeric.NewDyadic(num, uint32(bits.TrailingZeros64(uint64(den))))
		} else {
			number = numeric.Integer(num)
		}
		anyPart = true
	}

	if r := p.peek(); r == '↑' || r == '^' || r == '↓' || r == 'v' {
		p.pos++
		ups = 1
		if isDigit(p.peek()) {
			n, err := p.int64()
			if err != nil {
				return nil, err
			}
			ups = n
		}
		if r == '↓' || r == 'v' {
			ups = -ups
		}
		anyPart = true
	}

	if p.peek() == '*' {
		p.pos++
		star = 1
		if isDigit(p.peek()) {
			n, err := p.int64()
			if err != nil {
				return nil, err
			}
			star = n
		}
		anyPart = true
	}

	if !anyPart {
		return nil, p.errorf("expected a value")
	}
	return p.store.FromNus(NewNus(number, int32(ups), numeric.Nimber(star))), nil
}

func (p *parser) int64() (int64, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start || (p.pos == start+1 && p.input[start] == '-') {
		return 0, p.errorf("expected a number")
	}
	n, err := strconv.ParseInt(string(p.input[start:p.pos]), 10, 64)
	if err != nil {
		return 0, cgterrors.Wrap(cgterrors.Parse, "number out of range", err)
	}
	return n, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
