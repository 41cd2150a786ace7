package whatwgurl

import "github.com/bits-and-blooms/bitset"

// percentEncodeSet is a bitset over the 256 possible byte values: a byte is
// a member if it must be percent-encoded when it appears in the
// corresponding syntactic position (spec.md §4.2).
type percentEncodeSet struct {
	bits *bitset.BitSet
}

func newPercentEncodeSet() *percentEncodeSet {
	return &percentEncodeSet{bits: bitset.New(256)}
}

// add returns a copy of the receiver's bitset augmented with every
// additional byte given, as a new independent set —
// this mirrors the "each is the previous plus listed additions" phrasing
// of spec.md §4.2, where every set is built by additive inclusion.
func (s *percentEncodeSet) add(extra ...byte) *percentEncodeSet {
	next := &percentEncodeSet{bits: s.bits.Clone()}
	for _, b := range extra {
		next.bits.Set(uint(b))
	}
	return next
}

func (s *percentEncodeSet) has(b byte) bool {
	return s.bits.Test(uint(b))
}

// c0ControlSet contains every byte in [0x00, 0x1F] plus every byte >= 0x7F
// (DEL and all non-ASCII bytes), the baseline every other encode set in §4.2 builds on.
var c0ControlSet = func() *percentEncodeSet {
	s := newPercentEncodeSet()
	for b := 0; b <= 0x1F; b++ {
		s.bits.Set(uint(b))
	}
	for b := 0x7F; b <= 0xFF; b++ {
		s.bits.Set(uint(b))
	}
	return s
}()

var (
	// fragmentPercentEncodeSet: C0 + {SP, '"', '<', '>', '`'}
	fragmentPercentEncodeSet = c0ControlSet.add(' ', '"', '<', '>', '`')

	// queryPercentEncodeSet: C0 + {SP, '"', '#', '<', '>'}
	queryPercentEncodeSet = c0ControlSet.add(' ', '"', '#', '<', '>')

	// specialQueryPercentEncodeSet: query + {'\''}
	specialQueryPercentEncodeSet = queryPercentEncodeSet.add('\'')

	// pathPercentEncodeSet: query + {'?', '`', '{', '}'}
	pathPercentEncodeSet = queryPercentEncodeSet.add('?', '`', '{', '}')

	// userinfoPercentEncodeSet: path + {'/', ':', ';', '=', '@', '[', ']', '^', '|'}
	userinfoPercentEncodeSet = pathPercentEncodeSet.add(
		'/', ':', ';', '=', '@', '[', ']', '^', '|',
	)
)

// forbiddenHostCodePoints contains the bytes that make a buffer invalid as
// an opaque (not-special) host, per spec.md §4.4.
var forbiddenHostCodePoints = func() *percentEncodeSet {
	s := newPercentEncodeSet()
	for _, b := range []byte{0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|'} {
		s.bits.Set(uint(b))
	}
	return s
}()

// forbiddenDomainCodePoints contains the bytes that make an ASCII domain
// invalid after IDNA processing, per spec.md §4.4.
var forbiddenDomainCodePoints = func() *percentEncodeSet {
	s := newPercentEncodeSet()
	for b := 0; b <= 0x1F; b++ {
		s.bits.Set(uint(b))
	}
	for _, b := range []byte{' ', '#', '%', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|', 0x7F} {
		s.bits.Set(uint(b))
	}
	return s
}()

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIIAlphanumeric(b byte) bool {
	return isASCIIAlpha(b) || isASCIIDigit(b)
}

func isASCIIHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func asciiToLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// isSchemeByte reports whether b is valid in a scheme after its first
// character: ASCII alphanumeric plus '+', '-', '.'.
func isSchemeByte(b byte) bool {
	return isASCIIAlphanumeric(b) || b == '+' || b == '-' || b == '.'
}

// isC0OrSpace reports whether b is a C0 control or U+0020 SPACE, the set
// trimmed from the start/end of input before parsing (spec.md §4.1).
func isC0OrSpace(b byte) bool {
	return b <= 0x20
}

// isASCIITabOrNewline reports whether b is TAB, LF or CR, the bytes
// stripped from the interior of input before parsing (spec.md §4.1).
func isASCIITabOrNewline(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r'
}
