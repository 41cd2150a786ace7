package whatwgurl

import (
	"strconv"
	"strings"
)

// parseIPv4Number implements spec.md §4.5's ipv4-number grammar: a leading
// "0x"/"0X" selects hex, a leading '0' (when the input has length > 1)
// selects octal, otherwise decimal. An empty string after stripping the
// prefix is 0. A non-digit for the chosen radix is a failure.
func parseIPv4Number(input string) (value int64, ok bool) {
	if input == "" {
		return 0, false
	}

	radix := 10
	switch {
	case len(input) >= 2 && (strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X")):
		input = input[2:]
		radix = 16
	case len(input) > 1 && input[0] == '0':
		input = input[1:]
		radix = 8
	}

	if input == "" {
		return 0, true
	}

	n, err := strconv.ParseInt(input, radix, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseIPv4 implements spec.md §4.5's ipv4 grammar: split on '.', drop a
// single trailing empty piece, parse each piece as an ipv4-number, bound
// every piece but the last to 255 and the last to 256^(5-count), and fold
// the pieces into a 32-bit address.
func parseIPv4(input string) (addr uint64, ok bool) {
	parts := strings.Split(input, ".")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return 0, false
	}

	numbers := make([]int64, 0, len(parts))
	for i, part := range parts {
		n, valid := parseIPv4Number(part)
		if !valid {
			return 0, false
		}
		if n > 255 && i != len(parts)-1 {
			return 0, false
		}
		numbers = append(numbers, n)
	}

	last := numbers[len(numbers)-1]
	limit := int64(1)
	for i := 0; i < 5-len(numbers); i++ {
		limit *= 256
	}
	if last >= limit {
		return 0, false
	}

	addr = uint64(last)
	for i := 0; i < len(numbers)-1; i++ {
		shift := uint(3-i) * 8
		addr += uint64(numbers[i]) << shift
	}

	return addr, true
}

// serializeIPv4 implements spec.md §4.5's serializer: four mod-256 octets,
// most-significant-first, joined with '.'.
func serializeIPv4(addr uint64) string {
	octets := make([]string, 4)
	n := addr
	for i := 3; i >= 0; i-- {
		octets[i] = strconv.FormatUint(n%256, 10)
		n /= 256
	}
	return strings.Join(octets, ".")
}
