package whatwgurl

import "strings"

const upperHex = "0123456789ABCDEF"

// percentEncodeByte appends the percent-encoded form of b to dst if b is a
// member of set, uppercase hex per spec.md §4.2; otherwise it appends b
// unchanged.
func percentEncodeByte(dst *strings.Builder, b byte, set *percentEncodeSet) {
	if set != nil && set.has(b) {
		dst.WriteByte('%')
		dst.WriteByte(upperHex[b>>4])
		dst.WriteByte(upperHex[b&0x0F])
		return
	}
	dst.WriteByte(b)
}

// percentEncodeString percent-encodes every byte of s under set.
func percentEncodeString(s string, set *percentEncodeSet) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		percentEncodeByte(&b, s[i], set)
	}
	return b.String()
}

func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

