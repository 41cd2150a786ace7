package whatwgurl

import "strings"

/*
URL is the record produced by a successful Parse. Its fields mirror the
WHATWG URL Standard's URL record: scheme, userinfo, host, port, path, query
and fragment. Host, Port, Query and Fragment are pointers so that "absent"
(nil) can be distinguished from "present but empty".

A URL is owned exclusively by the parse that produced it; nothing in this
package mutates a URL after Parse/ParseRef returns, except when it is
supplied as a base to a subsequent parse (read-only use) or as the state
mutated in place during a state-override re-entry (see newMachine's
stateOverride parameter).
*/
type URL struct {
	Scheme   string
	Username string
	Password string
	Host     *string
	Port     *int
	// Path is the ordered list of path segments. For an opaque path, Path
	// has exactly one element holding the full opaque blob.
	Path       []string
	Query      *string
	Fragment   *string
	OpaquePath bool
}

// IsSpecial reports whether the URL's scheme is one of the six special
// schemes (ftp, file, http, https, ws, wss).
func (u *URL) IsSpecial() bool {
	return isSpecialScheme(u.Scheme)
}

// cannotBeABase reports whether the URL has an opaque path, i.e. it has no
// authority component and its path is a single undivided string.
func (u *URL) cannotBeABase() bool {
	return u.OpaquePath
}

// cleanDefaultPort clears Port if it equals the scheme's default port.
func (u *URL) cleanDefaultPort() {
	if u.Port == nil {
		return
	}
	if dp, ok := defaultPort(u.Scheme); ok && *u.Port == dp {
		u.Port = nil
	}
}

// shortenPath removes the last path segment, unless the scheme is file,
// the path has exactly one segment, and that segment is a normalized
// Windows drive letter (spec.md §4.3, "Shorten-path").
func (u *URL) shortenPath() {
	if len(u.Path) == 0 {
		return
	}
	if u.Scheme == "file" && len(u.Path) == 1 && isNormalizedWindowsDriveLetter(u.Path[0]) {
		return
	}
	u.Path = u.Path[:len(u.Path)-1]
}

// String serializes the URL per spec.md §6:
//
//	scheme ":" (special ? "//" userinfo host (":" port)? : (opaque ? opaque-path : "//" ... path)) ("?" query)? ("#" fragment)?
func (u *URL) String() string {
	var b strings.Builder

	b.WriteString(u.Scheme)
	b.WriteByte(':')

	if u.OpaquePath {
		if len(u.Path) > 0 {
			b.WriteString(u.Path[0])
		}
	} else {
		if u.Host != nil || u.IsSpecial() {
			b.WriteString("//")
			if u.Username != "" || u.Password != "" {
				b.WriteString(u.Username)
				if u.Password != "" {
					b.WriteByte(':')
					b.WriteString(u.Password)
				}
				b.WriteByte('@')
			}
			if u.Host != nil {
				b.WriteString(*u.Host)
			}
			if u.Port != nil {
				b.WriteByte(':')
				b.WriteString(itoa(*u.Port))
			}
		}
		for _, seg := range u.Path {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}

	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}

	return b.String()
}
