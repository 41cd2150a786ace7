package whatwgurl

import (
	"strconv"
	"strings"
)

// parseIPv6 implements spec.md §4.6: eight 16-bit pieces, one optional "::"
// compression marker, with support for an embedded dotted-quad IPv4 tail.
func parseIPv6(input string) (pieces [8]uint16, ok bool) {
	var (
		pieceIndex   = 0
		compress     = -1
		i            = 0
		n            = len(input)
	)

	if n > 0 && input[0] == ':' {
		if n < 2 || input[1] != ':' {
			return pieces, false
		}
		i = 2
		pieceIndex++
		compress = pieceIndex
	}

	for i < n {
		if pieceIndex == 8 {
			return pieces, false
		}

		if input[i] == ':' {
			if compress != -1 {
				return pieces, false
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		start := i
		value := 0
		length := 0
		for length < 4 && i < n && isASCIIHexDigit(input[i]) {
			v, _ := hexVal(input[i])
			value = value*16 + v
			i++
			length++
		}

		if i < n && input[i] == '.' {
			if length == 0 {
				return pieces, false
			}
			i = start
			if pieceIndex > 6 {
				return pieces, false
			}

			numbersSeen := 0
			for i < n {
				ipv4Piece := -1
				if numbersSeen > 0 {
					if input[i] == '.' && numbersSeen < 4 {
						i++
					} else {
						return pieces, false
					}
				}
				if i >= n || !isASCIIDigit(input[i]) {
					return pieces, false
				}
				for i < n && isASCIIDigit(input[i]) {
					digit := int(input[i] - '0')
					if ipv4Piece == -1 {
						ipv4Piece = digit
					} else if ipv4Piece == 0 {
						return pieces, false
					} else {
						ipv4Piece = ipv4Piece*10 + digit
					}
					if ipv4Piece > 255 {
						return pieces, false
					}
					i++
				}
				pieces[pieceIndex] = pieces[pieceIndex]*256 + uint16(ipv4Piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				return pieces, false
			}
			continue
		}

		if i < n && input[i] == ':' {
			i++
			if i >= n {
				return pieces, false
			}
		} else if i < n {
			return pieces, false
		}

		pieces[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for pieceIndex != 0 && swaps > 0 {
			pieces[pieceIndex], pieces[compress+swaps-1] = pieces[compress+swaps-1], pieces[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return pieces, false
	}

	return pieces, true
}

// findLongestZeroRun returns the start index of the longest run of
// consecutive zero pieces with length >= 2, or -1 if there is none. Ties
// favor the first (leftmost) run.
func findLongestZeroRun(pieces [8]uint16) int {
	bestStart, bestLen := -1, 1
	curStart, curLen := -1, 0

	for i := 0; i < 8; i++ {
		if pieces[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestLen = curLen
				bestStart = curStart
			}
		} else {
			curStart, curLen = -1, 0
		}
	}

	return bestStart
}

// serializeIPv6 implements spec.md §4.6's serializer: lowercase hex pieces
// joined by ':', with the longest run of >=2 zero pieces collapsed to "::".
func serializeIPv6(pieces [8]uint16) string {
	compress := findLongestZeroRun(pieces)

	var b strings.Builder
	ignore0 := false

	for pieceIndex := 0; pieceIndex < 8; pieceIndex++ {
		if ignore0 && pieces[pieceIndex] == 0 {
			continue
		} else if ignore0 {
			ignore0 = false
		}

		if compress == pieceIndex {
			if pieceIndex == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			ignore0 = true
			continue
		}

		b.WriteString(strconv.FormatUint(uint64(pieces[pieceIndex]), 16))
		if pieceIndex != 7 {
			b.WriteByte(':')
		}
	}

	return b.String()
}
