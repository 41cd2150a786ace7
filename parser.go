package whatwgurl

// Parser configures a single parse or family of parses. The zero value is
// ready to use: validation errors are counted but never surfaced, and no
// encoding override is applied. It is a plain options struct with two
// independent fields, not a functional-options list.
type Parser struct {
	// FailOnValidationError makes Parse/ParseRef return an error for inputs
	// that would otherwise succeed with only non-fatal deviations recorded.
	FailOnValidationError bool

	// EncodingOverride is a textual encoding label. Its only observable
	// effect (spec.md §6) is forcing UTF-8 processing on entry to the Query
	// state for non-special URLs and for ws/wss; since this package always
	// processes query bytes as UTF-8 regardless, EncodingOverride never
	// changes behavior, but the field is kept so callers that thread an
	// encoding through a larger pipeline have somewhere to put it.
	EncodingOverride string

	lastValidationErrors int
}

// ValidationErrors counts the non-fatal deviations recorded by the most
// recent call to Parse or ParseRef on this Parser. It is not safe for
// concurrent use across goroutines sharing one Parser.
func (p *Parser) ValidationErrors() int {
	return p.lastValidationErrors
}

// Parse parses rawURL with no base URL. A relative reference without a
// base (e.g. "/a/b") fails; use ParseRef with a base URL for that.
func (p *Parser) Parse(rawURL string) (*URL, error) {
	return p.parse(rawURL, nil)
}

// ParseRef parses rawURL against base, resolving relative references the
// way a browser's anchor-tag resolution does. base is read-only; it is
// never mutated.
func (p *Parser) ParseRef(rawURL string, base *URL) (*URL, error) {
	return p.parse(rawURL, base)
}

// Parse is a package-level convenience equivalent to (&Parser{}).Parse.
func Parse(rawURL string) (*URL, error) {
	return (&Parser{}).Parse(rawURL)
}

// ParseRef is a package-level convenience equivalent to (&Parser{}).ParseRef.
func ParseRef(rawURL string, base *URL) (*URL, error) {
	return (&Parser{}).ParseRef(rawURL, base)
}

func (p *Parser) parse(rawURL string, base *URL) (*URL, error) {
	input, validationErrors := normalizeInput(rawURL)
	p.lastValidationErrors = validationErrors

	url := &URL{}
	m := newMachine(url, base, input, stateNone)
	if err := m.run(); err != nil {
		return nil, err
	}

	p.lastValidationErrors += m.validationErrors
	if p.FailOnValidationError && p.lastValidationErrors > 0 {
		return nil, errFailure("validation errors present and FailOnValidationError is set")
	}

	return url, nil
}

// normalizeInput implements spec.md §4.1: trim any run of bytes <= 0x20
// from the start and end, then drop every interior TAB, LF, CR. Both
// removals are validation errors, counted but never fatal.
func normalizeInput(s string) ([]byte, int) {
	start, end := 0, len(s)
	validationErrors := 0

	for start < end && isC0OrSpace(s[start]) {
		start++
		validationErrors++
	}
	for end > start && isC0OrSpace(s[end-1]) {
		end--
		validationErrors++
	}

	trimmed := s[start:end]

	out := make([]byte, 0, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		b := trimmed[i]
		if isASCIITabOrNewline(b) {
			validationErrors++
			continue
		}
		out = append(out, b)
	}

	return out, validationErrors
}
