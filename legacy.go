package whatwgurl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
	"golang.org/x/net/idna"
)

// legacyNormalizeFlags selects the RFC 3986-style normalizations this
// bridge applies. These are NOT part of the WHATWG serialization (String)
// and must never be reachable from it: they exist only for callers that
// need an RFC3986-normalized form alongside the canonical one, e.g. for
// comparing against legacy systems that were never WHATWG-aware.
const legacyNormalizeFlags purell.NormalizationFlags = purell.FlagRemoveDefaultPort |
	purell.FlagDecodeDWORDHost | purell.FlagDecodeOctalHost | purell.FlagDecodeHexHost |
	purell.FlagRemoveUnnecessaryHostDots | purell.FlagRemoveDotSegments | purell.FlagRemoveDuplicateSlashes |
	purell.FlagUppercaseEscapes | purell.FlagDecodeUnnecessaryEscapes | purell.FlagEncodeNecessaryEscapes |
	purell.FlagSortQuery

// ToNetURL converts u into a net/url.URL, e.g. to hand off to stdlib HTTP
// client code that only understands net/url. Path segments are rejoined
// with '/' and stored, already encoded, in both Path and RawPath; nothing
// is re-escaped here.
func (u *URL) ToNetURL() *url.URL {
	host := ""
	if u.Host != nil {
		host = *u.Host
		if u.Port != nil {
			host = fmt.Sprintf("%s:%d", host, *u.Port)
		}
	}

	path := ""
	if u.OpaquePath {
		if len(u.Path) > 0 {
			path = u.Path[0]
		}
	} else {
		path = "/" + strings.Join(u.Path, "/")
	}

	ret := &url.URL{
		Scheme:   u.Scheme,
		Host:     host,
		Path:     path,
		RawPath:  path,
		Fragment: derefOr(u.Fragment, ""),
	}
	if u.Username != "" || u.Password != "" {
		if u.Password != "" {
			ret.User = url.UserPassword(u.Username, u.Password)
		} else {
			ret.User = url.User(u.Username)
		}
	}
	if u.OpaquePath {
		ret.Opaque = path
	}
	ret.RawQuery = derefOr(u.Query, "")

	return ret
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// Legacy returns a net/url.URL view of u.
func (u *URL) Legacy() *url.URL {
	return u.ToNetURL()
}

// NormalizeLegacy returns an RFC3986-style normalized string form of u,
// via IDNA Unicode decoding of the host followed by purell normalization.
// This is a deliberate side door: it is never called by String, so it
// cannot corrupt canonical WHATWG serialization. Callers that want the
// spec-conformant serialization must use String instead.
func (u *URL) NormalizeLegacy() (string, error) {
	host := ""
	if u.Host != nil {
		decoded, err := idna.ToUnicode(*u.Host)
		if err != nil {
			return "", err
		}
		host = strings.ToLower(decoded)
	}

	clone := *u
	if u.Host != nil {
		clone.Host = ptrStr(host)
	}
	clone.Scheme = strings.ToLower(u.Scheme)

	netURL := clone.ToNetURL()
	return purell.NormalizeURL(netURL, legacyNormalizeFlags), nil
}
