package whatwgurl

// state is one of the twenty states of the URL parser's state machine.
type state int

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment

	// stateNone marks "no override"; it is never assigned to machine.state.
	stateNone
)

// code is the control signal a state step can hand back to the driving loop.
type code int

const (
	codeContinue code = iota
	codeFailure
	codeExit
)

// specialSchemes maps each special scheme to its default port. file has no
// default port, so it is present with a sentinel negative value; defaultPort
// turns that into ok=false, distinguishing "special but no default" from
// "not special at all".
var specialSchemes = map[string]int{
	"ftp":   21,
	"file":  -1,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// isSpecialScheme reports whether scheme is one of the six special schemes.
func isSpecialScheme(scheme string) bool {
	_, ok := specialSchemes[scheme]
	return ok
}

// defaultPort returns the default port for scheme and whether one exists.
// file is special but has no default port.
func defaultPort(scheme string) (port int, ok bool) {
	p, isSpecial := specialSchemes[scheme]
	if !isSpecial || p < 0 {
		return 0, false
	}
	return p, true
}
