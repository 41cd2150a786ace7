package whatwgurl

import "strings"

// machine is the URL parser's state machine: a cooperative loop over the
// normalized input bytes plus one EOF step. It owns the URL record being
// built, a scratch buffer, and the three flags the standard's authority and
// host states rely on (spec.md §2, §4.3).
type machine struct {
	url           *URL
	base          *URL
	stateOverride state // stateNone when this is not a setter re-entry

	c      *cursor
	buffer strings.Builder
	state  state

	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool

	validationErrors int
	err              error
}

func newMachine(url *URL, base *URL, input []byte, stateOverride state) *machine {
	startState := stateSchemeStart
	if stateOverride != stateNone {
		startState = stateOverride
	}
	return &machine{
		url:           url,
		base:          base,
		stateOverride: stateOverride,
		c:             newCursor(input),
		state:         startState,
	}
}

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

// run drives the loop until a state step signals Failure or Exit. The loop
// itself does not stop at the end of input: every state's EOF handling
// either signals one of the two or hands EOF on to a state that does.
func (m *machine) run() error {
	for {
		b := m.c.current()

		var sig code
		switch m.state {
		case stateSchemeStart:
			sig = m.stepSchemeStart(b)
		case stateScheme:
			sig = m.stepScheme(b)
		case stateNoScheme:
			sig = m.stepNoScheme(b)
		case stateSpecialRelativeOrAuthority:
			sig = m.stepSpecialRelativeOrAuthority(b)
		case statePathOrAuthority:
			sig = m.stepPathOrAuthority(b)
		case stateRelative:
			sig = m.stepRelative(b)
		case stateRelativeSlash:
			sig = m.stepRelativeSlash(b)
		case stateSpecialAuthoritySlashes:
			sig = m.stepSpecialAuthoritySlashes(b)
		case stateSpecialAuthorityIgnoreSlashes:
			sig = m.stepSpecialAuthorityIgnoreSlashes(b)
		case stateAuthority:
			sig = m.stepAuthority(b)
		case stateHost, stateHostname:
			sig = m.stepHost(b)
		case statePort:
			sig = m.stepPort(b)
		case stateFile:
			sig = m.stepFile(b)
		case stateFileSlash:
			sig = m.stepFileSlash(b)
		case stateFileHost:
			sig = m.stepFileHost(b)
		case statePathStart:
			sig = m.stepPathStart(b)
		case statePath:
			sig = m.stepPath(b)
		case stateOpaquePath:
			sig = m.stepOpaquePath(b)
		case stateQuery:
			sig = m.stepQuery(b)
		case stateFragment:
			sig = m.stepFragment(b)
		default:
			sig = m.fail("unreachable state")
		}

		if sig == codeFailure {
			if m.err != nil {
				return m.err
			}
			return ErrFailure
		}
		if sig == codeExit {
			return nil
		}

		m.c.advance()
	}
}

func (m *machine) fail(reason string) code {
	m.err = errFailure(reason)
	return codeFailure
}

// failErr is fail's counterpart for sites that already have a typed
// constructor in errors.go instead of an ad hoc reason string.
func (m *machine) failErr(err error) code {
	m.err = err
	return codeFailure
}

// --- SchemeStart ------------------------------------------------------

func (m *machine) stepSchemeStart(b int32) code {
	switch {
	case b != eof && isASCIIAlpha(byte(b)):
		m.buffer.WriteByte(asciiToLower(byte(b)))
		m.state = stateScheme
	case m.stateOverride == stateNone:
		m.state = stateNoScheme
		m.c.rewind(1)
	default:
		return m.failErr(errorOverrideViolation("scheme must start with an ASCII letter"))
	}
	return codeContinue
}

// --- Scheme -------------------------------------------------------------

func (m *machine) stepScheme(b int32) code {
	switch {
	case b != eof && isSchemeByte(byte(b)):
		m.buffer.WriteByte(asciiToLower(byte(b)))
		return codeContinue
	case b == ':':
		return m.commitScheme()
	default:
		if m.stateOverride != stateNone {
			return m.failErr(errorOverrideViolation("scheme cannot be changed"))
		}
		m.buffer.Reset()
		m.state = stateNoScheme
		m.c.rewindToStart()
		return codeContinue
	}
}

func (m *machine) commitScheme() code {
	scheme := m.buffer.String()
	wasSpecial := m.url.IsSpecial()
	newSpecial := isSpecialScheme(scheme)

	if m.stateOverride != stateNone {
		if wasSpecial != newSpecial {
			return codeExit
		}
		if scheme == "file" && (m.url.Username != "" || m.url.Password != "" || m.url.Port != nil) {
			return codeExit
		}
		if m.url.Scheme == "file" && scheme != "file" && m.url.Host != nil && *m.url.Host == "" {
			return codeExit
		}
	}

	m.url.Scheme = scheme

	if m.stateOverride != stateNone {
		m.url.cleanDefaultPort()
		return codeExit
	}

	m.buffer.Reset()
	switch {
	case scheme == "file":
		m.state = stateFile
	case newSpecial && m.base != nil && m.base.Scheme == scheme:
		m.state = stateSpecialRelativeOrAuthority
	case newSpecial:
		m.state = stateSpecialAuthoritySlashes
	default:
		if m.c.peekNext() == '/' {
			m.state = statePathOrAuthority
			m.c.advance()
		} else {
			m.state = stateOpaquePath
			m.url.OpaquePath = true
			m.url.Path = []string{""}
		}
	}
	return codeContinue
}

// --- NoScheme -------------------------------------------------------------

func (m *machine) stepNoScheme(b int32) code {
	if m.base == nil {
		return m.fail("relative URL without a base")
	}
	if m.base.cannotBeABase() && b != '#' {
		return m.fail("invalid reference against an opaque-path base")
	}
	if m.base.cannotBeABase() && b == '#' {
		m.url.Scheme = m.base.Scheme
		m.url.Path = append([]string(nil), m.base.Path...)
		m.url.OpaquePath = true
		m.url.Query = m.base.Query
		m.url.Fragment = ptrStr("")
		m.state = stateFragment
		return codeContinue
	}
	if m.base.Scheme != "file" {
		m.state = stateRelative
	} else {
		m.state = stateFile
	}
	m.c.rewind(1)
	return codeContinue
}

// --- SpecialRelativeOrAuthority -------------------------------------------

func (m *machine) stepSpecialRelativeOrAuthority(b int32) code {
	if b == '/' && m.c.peekNext() == '/' {
		m.state = stateSpecialAuthorityIgnoreSlashes
		m.c.advance()
		return codeContinue
	}
	m.state = stateRelative
	m.c.rewind(1)
	return codeContinue
}

// --- PathOrAuthority -------------------------------------------------------

func (m *machine) stepPathOrAuthority(b int32) code {
	if b == '/' {
		m.state = stateAuthority
		return codeContinue
	}
	m.state = statePath
	m.c.rewind(1)
	return codeContinue
}

// --- Relative ---------------------------------------------------------

func (m *machine) stepRelative(b int32) code {
	m.url.Scheme = m.base.Scheme

	if b == '/' || (m.url.IsSpecial() && b == '\\') {
		m.state = stateRelativeSlash
		return codeContinue
	}

	m.url.Username = m.base.Username
	m.url.Password = m.base.Password
	m.url.Host = m.base.Host
	m.url.Port = m.base.Port
	m.url.Path = append([]string(nil), m.base.Path...)
	m.url.Query = m.base.Query

	switch {
	case b == '?':
		m.url.Query = ptrStr("")
		m.state = stateQuery
	case b == '#':
		m.url.Fragment = ptrStr("")
		m.state = stateFragment
	case b != eof:
		m.url.Query = nil
		m.url.shortenPath()
		m.state = statePath
		m.c.rewind(1)
	default:
		return codeExit
	}
	return codeContinue
}

// --- RelativeSlash ------------------------------------------------------

func (m *machine) stepRelativeSlash(b int32) code {
	special := m.url.IsSpecial()
	switch {
	case special && (b == '/' || b == '\\'):
		m.state = stateSpecialAuthorityIgnoreSlashes
	case b == '/':
		m.state = stateAuthority
	default:
		m.url.Username = m.base.Username
		m.url.Password = m.base.Password
		m.url.Host = m.base.Host
		m.url.Port = m.base.Port
		m.state = statePath
		m.c.rewind(1)
	}
	return codeContinue
}

// --- SpecialAuthoritySlashes ---------------------------------------------

func (m *machine) stepSpecialAuthoritySlashes(b int32) code {
	if b == '/' && m.c.peekNext() == '/' {
		m.state = stateSpecialAuthorityIgnoreSlashes
		m.c.advance()
		return codeContinue
	}
	m.state = stateSpecialAuthorityIgnoreSlashes
	m.c.rewind(1)
	return codeContinue
}

// --- SpecialAuthorityIgnoreSlashes -----------------------------------------

func (m *machine) stepSpecialAuthorityIgnoreSlashes(b int32) code {
	if b == '/' || b == '\\' {
		return codeContinue
	}
	m.state = stateAuthority
	m.c.rewind(1)
	return codeContinue
}

// --- Authority ------------------------------------------------------------

func (m *machine) stepAuthority(b int32) code {
	special := m.url.IsSpecial()

	switch {
	case b == '@':
		buf := m.buffer.String()
		if m.atSignSeen {
			buf = "%40" + buf
			m.validationErrors++
		}
		m.atSignSeen = true

		colon := strings.IndexByte(buf, ':')
		if colon == -1 {
			m.url.Username += percentEncodeString(buf, userinfoPercentEncodeSet)
		} else {
			m.url.Username += percentEncodeString(buf[:colon], userinfoPercentEncodeSet)
			m.passwordTokenSeen = true
			m.url.Password += percentEncodeString(buf[colon+1:], userinfoPercentEncodeSet)
		}
		m.buffer.Reset()

	case b == eof || b == '/' || b == '?' || b == '#' || (special && b == '\\'):
		if m.atSignSeen && m.buffer.Len() == 0 {
			return m.failErr(errorInvalidHost(""))
		}
		m.c.rewind(m.buffer.Len() + 1)
		m.buffer.Reset()
		m.state = stateHost

	default:
		m.buffer.WriteByte(byte(b))
	}
	return codeContinue
}

// --- Host / Hostname --------------------------------------------------

func (m *machine) stepHost(b int32) code {
	special := m.url.IsSpecial()

	switch {
	case b == '[':
		m.insideBrackets = true
		m.buffer.WriteByte('[')
	case b == ']':
		m.insideBrackets = false
		m.buffer.WriteByte(']')
	case b == ':' && !m.insideBrackets:
		host, ok := parseHost(m.buffer.String(), !special)
		if !ok {
			return m.failErr(errorInvalidHost(m.buffer.String()))
		}
		m.url.Host = ptrStr(host)
		m.buffer.Reset()
		m.state = statePort
	case b == eof || b == '/' || b == '?' || b == '#' || (special && b == '\\'):
		m.c.rewind(1)
		if special && m.buffer.Len() == 0 {
			return m.failErr(errorInvalidHost(""))
		}
		host, ok := parseHost(m.buffer.String(), !special)
		if !ok {
			return m.failErr(errorInvalidHost(m.buffer.String()))
		}
		m.url.Host = ptrStr(host)
		m.buffer.Reset()
		m.state = statePathStart
		if m.stateOverride != stateNone {
			return codeExit
		}
	default:
		m.buffer.WriteByte(byte(b))
	}
	return codeContinue
}

// --- Port -----------------------------------------------------------------

func (m *machine) stepPort(b int32) code {
	special := m.url.IsSpecial()

	if b != eof && isASCIIDigit(byte(b)) {
		m.buffer.WriteByte(byte(b))
		return codeContinue
	}

	terminator := b == eof || b == '/' || b == '?' || b == '#' || (special && b == '\\') || m.stateOverride != stateNone
	if !terminator {
		return m.failErr(errorInvalidPort(m.buffer.String()))
	}

	if m.buffer.Len() > 0 {
		n, err := atoi(m.buffer.String())
		if err != nil || n > 65535 {
			return m.failErr(errorInvalidPort(m.buffer.String()))
		}
		m.url.Port = ptrInt(n)
		m.url.cleanDefaultPort()
		m.buffer.Reset()
	}

	if m.stateOverride != stateNone {
		return codeExit
	}
	m.state = statePathStart
	m.c.rewind(1)
	return codeContinue
}

// --- File -------------------------------------------------------------

func (m *machine) stepFile(b int32) code {
	m.url.Scheme = "file"
	if m.url.Host == nil {
		m.url.Host = ptrStr("")
	}

	switch {
	case b == '/' || b == '\\':
		m.state = stateFileSlash
	case m.base != nil && m.base.Scheme == "file":
		m.url.Host = m.base.Host
		m.url.Path = append([]string(nil), m.base.Path...)
		m.url.Query = m.base.Query
		switch {
		case b == '?':
			m.url.Query = ptrStr("")
			m.state = stateQuery
		case b == '#':
			m.url.Fragment = ptrStr("")
			m.state = stateFragment
		case b != eof:
			m.url.Query = nil
			if !startsWithWindowsDriveLetter(string(m.c.remainder()), 0) {
				m.url.shortenPath()
			} else {
				m.url.Path = nil
			}
			m.state = statePath
			m.c.rewind(1)
		default:
			return codeExit
		}
	default:
		m.state = statePath
		m.c.rewind(1)
	}
	return codeContinue
}

// --- FileSlash ----------------------------------------------------------

func (m *machine) stepFileSlash(b int32) code {
	if b == '/' || b == '\\' {
		m.state = stateFileHost
		return codeContinue
	}

	if m.base != nil && m.base.Scheme == "file" {
		if !startsWithWindowsDriveLetter(string(m.c.remainder()), 0) &&
			len(m.base.Path) > 0 && isNormalizedWindowsDriveLetter(m.base.Path[0]) {
			m.url.Path = append([]string{m.base.Path[0]}, m.url.Path...)
		}
		m.url.Host = m.base.Host
	}
	m.state = statePath
	m.c.rewind(1)
	return codeContinue
}

// --- FileHost -----------------------------------------------------------

func (m *machine) stepFileHost(b int32) code {
	if b != eof && b != '/' && b != '\\' && b != '?' && b != '#' {
		m.buffer.WriteByte(byte(b))
		return codeContinue
	}

	m.c.rewind(1)
	buf := m.buffer.String()

	switch {
	case isWindowsDriveLetter(buf):
		m.validationErrors++
		m.state = statePath
	case buf == "":
		m.url.Host = ptrStr("")
		if m.stateOverride != stateNone {
			return codeExit
		}
		m.state = statePathStart
	default:
		host, ok := parseHost(buf, !m.url.IsSpecial())
		if !ok {
			return m.failErr(errorInvalidHost(buf))
		}
		if host == "localhost" {
			host = ""
		}
		m.url.Host = ptrStr(host)
		m.buffer.Reset()
		if m.stateOverride != stateNone {
			return codeExit
		}
		m.state = statePathStart
	}
	return codeContinue
}

// --- PathStart --------------------------------------------------------

func (m *machine) stepPathStart(b int32) code {
	if m.url.IsSpecial() {
		m.state = statePath
		if b != '/' && b != '\\' {
			m.c.rewind(1)
		}
		return codeContinue
	}

	switch {
	case b == '?':
		m.url.Query = ptrStr("")
		m.state = stateQuery
	case b == '#':
		m.url.Fragment = ptrStr("")
		m.state = stateFragment
	case b != eof:
		m.state = statePath
		if b != '/' {
			m.c.rewind(1)
		}
	default:
		if m.stateOverride != stateNone && m.url.Host == nil {
			m.url.Path = append(m.url.Path, "")
		}
		return codeExit
	}
	return codeContinue
}

// --- Path -----------------------------------------------------------------

func (m *machine) stepPath(b int32) code {
	special := m.url.IsSpecial()
	isTerminator := b == eof || b == '/' || (special && b == '\\') ||
		(m.stateOverride == stateNone && (b == '?' || b == '#'))

	if !isTerminator {
		percentEncodeByte(&m.buffer, byte(b), pathPercentEncodeSet)
		return codeContinue
	}

	seg := m.buffer.String()
	lower := strings.ToLower(seg)
	isSlashLike := b == '/' || (special && b == '\\')

	switch lower {
	case "..", "%2e.", ".%2e", "%2e%2e":
		m.url.shortenPath()
		if !isSlashLike {
			m.url.Path = append(m.url.Path, "")
		}
	case ".", "%2e":
		if !isSlashLike {
			m.url.Path = append(m.url.Path, "")
		}
	default:
		if m.url.Scheme == "file" && len(m.url.Path) == 0 && isWindowsDriveLetter(seg) {
			seg = seg[:1] + ":" + seg[2:]
		}
		m.url.Path = append(m.url.Path, seg)
	}
	m.buffer.Reset()

	switch {
	case b == '?':
		m.url.Query = ptrStr("")
		m.state = stateQuery
	case b == '#':
		m.url.Fragment = ptrStr("")
		m.state = stateFragment
	case b == eof:
		return codeExit
	}
	return codeContinue
}

// --- OpaquePath -------------------------------------------------------

func (m *machine) stepOpaquePath(b int32) code {
	switch b {
	case '?':
		m.flushOpaquePath()
		m.url.Query = ptrStr("")
		m.state = stateQuery
	case '#':
		m.flushOpaquePath()
		m.url.Fragment = ptrStr("")
		m.state = stateFragment
	case eof:
		m.flushOpaquePath()
		return codeExit
	default:
		percentEncodeByte(&m.buffer, byte(b), c0ControlSet)
	}
	return codeContinue
}

func (m *machine) flushOpaquePath() {
	if len(m.url.Path) == 0 {
		m.url.Path = []string{""}
	}
	m.url.Path[0] += m.buffer.String()
	m.buffer.Reset()
}

// --- Query ----------------------------------------------------------------

func (m *machine) stepQuery(b int32) code {
	if b == eof || (b == '#' && m.stateOverride == stateNone) {
		set := queryPercentEncodeSet
		if m.url.IsSpecial() {
			set = specialQueryPercentEncodeSet
		}
		*m.url.Query += percentEncodeString(m.buffer.String(), set)
		m.buffer.Reset()

		if b == '#' {
			m.url.Fragment = ptrStr("")
			m.state = stateFragment
			return codeContinue
		}
		return codeExit
	}

	m.buffer.WriteByte(byte(b))
	return codeContinue
}

// --- Fragment ---------------------------------------------------------

func (m *machine) stepFragment(b int32) code {
	if b == eof {
		return codeExit
	}
	*m.url.Fragment += percentEncodeString(string(m.c.remainder()), fragmentPercentEncodeSet)
	return codeExit
}
