package whatwgurl

import (
	"strings"

	"golang.org/x/net/idna"
)

// idnaProfile performs domain-to-ASCII with UseSTD3 rules off and
// non-transitional processing, per spec.md §4.4.
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.Transitional(false),
	idna.ValidateLabels(false),
)

// parseOpaqueHost implements spec.md §4.4's opaque-host branch: any byte in
// forbiddenHostCodePoints fails the whole host; otherwise the buffer is
// percent-encoded under the C0 control set.
func parseOpaqueHost(buffer string) (string, bool) {
	for i := 0; i < len(buffer); i++ {
		if forbiddenHostCodePoints.has(buffer[i]) {
			return "", false
		}
	}
	return percentEncodeString(buffer, c0ControlSet), true
}

// endsWithANumber implements spec.md §4.4's "ends in a number" predicate:
// strictly split on '.', drop a single trailing empty piece, and test only
// the final piece — either it's all ASCII digits, or it parses as an
// ipv4-number. This follows the spec's stated rule rather than the source
// implementation's "re-parse the whole domain" behavior (see DESIGN.md).
func endsWithANumber(domain string) bool {
	parts := strings.Split(domain, ".")
	if len(parts) == 0 {
		return false
	}
	if parts[len(parts)-1] == "" {
		if len(parts) == 1 {
			return false
		}
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return false
	}

	last := parts[len(parts)-1]
	if last == "" {
		return false
	}

	allDigits := true
	for i := 0; i < len(last); i++ {
		if !isASCIIDigit(last[i]) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return true
	}

	_, ok := parseIPv4Number(last)
	return ok
}

// parseHost implements spec.md §4.4's host parser dispatch. isNotSpecial
// selects the opaque-host branch; otherwise the buffer goes through IDNA
// domain-to-ASCII, a forbidden-domain-code-point check, and a final
// "ends in a number" test that routes to IPv4 parsing/serialization.
func parseHost(buffer string, isNotSpecial bool) (string, bool) {
	if strings.HasPrefix(buffer, "[") {
		if !strings.HasSuffix(buffer, "]") {
			return "", false
		}
		pieces, ok := parseIPv6(buffer[1 : len(buffer)-1])
		if !ok {
			return "", false
		}
		return "[" + serializeIPv6(pieces) + "]", true
	}

	if isNotSpecial {
		return parseOpaqueHost(buffer)
	}

	asciiDomain, err := idnaProfile.ToASCII(buffer)
	if err != nil || asciiDomain == "" {
		return "", false
	}

	for i := 0; i < len(asciiDomain); i++ {
		if forbiddenDomainCodePoints.has(asciiDomain[i]) {
			return "", false
		}
	}

	if endsWithANumber(asciiDomain) {
		addr, ok := parseIPv4(asciiDomain)
		if !ok {
			return "", false
		}
		return serializeIPv4(addr), true
	}

	return asciiDomain, true
}
