package canonical

import "strings"

// String renders f in standard notation: closed forms print as their Nus
// ("0", "1/2", "↑*", "*2"), general forms as "{L|R}" with comma-separated
// options, e.g. "{1|-1}".
func (f *Form) String() string {
	if f.nus != nil {
		return f.nus.String()
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, o := range f.left {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(o.String())
	}
	sb.WriteByte('|')
	for i, o := range f.right {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(o.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
