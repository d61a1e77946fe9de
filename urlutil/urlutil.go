package urlutil

import (
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
)

const schemeSeparator = "://"

// ErrNotAbsolute indicates the input has no scheme.
var ErrNotAbsolute = errors.New("url is not absolute")

// Validate checks that a raw protocol-handler string is usable at all.
func Validate(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("url cannot be empty")
	}
	return nil
}

// Scheme returns the text before the first "://", or def if there is none.
func Scheme(rawURL, def string) string {
	idx := strings.Index(rawURL, schemeSeparator)
	if idx == -1 {
		return def
	}
	return rawURL[:idx]
}

// StripScheme returns rawURL without its leading "scheme://".
func StripScheme(rawURL string) string {
	idx := strings.Index(rawURL, schemeSeparator)
	if idx == -1 {
		return rawURL
	}
	return rawURL[idx+len(schemeSeparator):]
}

// ParseAbsolute parses rawURL and requires a scheme.
func ParseAbsolute(rawURL string) (*neturl.URL, error) {
	parsed, err := neturl.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("%w: %s", ErrNotAbsolute, rawURL)
	}
	return parsed, nil
}

// SplitHostPort splits at the last colon. The port is empty when there is no
// colon.
func SplitHostPort(hostport string) (host, port string) {
	sep := strings.LastIndex(hostport, ":")
	if sep == -1 {
		return hostport, ""
	}
	return hostport[:sep], hostport[sep+1:]
}

// UserInfo returns the decoded user-info component, "user" or "user:password".
func UserInfo(u *neturl.URL) string {
	if u == nil || u.User == nil {
		return ""
	}
	info := u.User.Username()
	if pw, ok := u.User.Password(); ok {
		info += ":" + pw
	}
	return info
}

// Unescape decodes %XX sequences and '+' the way form values are decoded.
// Invalid escapes are left as they are.
func Unescape(s string) string {
	if decoded, err := neturl.QueryUnescape(s); err == nil {
		return decoded
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ContainsEscape reports whether s contains the escape sequence seq, e.g.
// "%5c", ignoring the case of the hex digits.
func ContainsEscape(s, seq string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(seq))
}

// ReplaceEscape replaces the escape sequence seq with repl regardless of the
// case of its hex digits.
func ReplaceEscape(s, seq, repl string) string {
	s = strings.ReplaceAll(s, strings.ToLower(seq), repl)
	return strings.ReplaceAll(s, strings.ToUpper(seq), repl)
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
