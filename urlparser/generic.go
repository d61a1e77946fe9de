package urlparser

import (
	"fmt"
	neturl "net/url"
	"strings"

	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/token"
	"github.com/jongio/scalus/urlutil"
)

// Decompose fills m from the components of the absolute URI raw. Values are
// stored decoded. On failure a warning is logged, m keeps whatever it already
// held, and false is returned.
func Decompose(m *token.Map, raw string) bool {
	u, err := urlutil.ParseAbsolute(raw)
	if err != nil {
		logutil.Warn("the string does not appear to be a valid url", "url", raw, "error", err)
		return false
	}
	decomposeURL(m, u)
	return true
}

func decomposeURL(m *token.Map, u *neturl.URL) {
	original := u.String()
	m.Set(token.OriginalURL, original)
	m.Set(token.RelativeURL, urlutil.StripScheme(original))
	m.Set(token.Protocol, u.Scheme)
	m.Set(token.Host, u.Hostname())
	if port := u.Port(); port != "" {
		m.Set(token.Port, port)
	}
	m.Set(token.Path, strings.TrimPrefix(u.Path, "/"))
	m.Set(token.User, urlutil.UserInfo(u))
	m.Set(token.Query, urlutil.Unescape(u.RawQuery))
	m.Set(token.Fragment, u.Fragment)
}

// GenericParser decomposes any absolute URI. It has no default template.
type GenericParser struct{}

// NewGenericParser returns a parser for plain URLs.
func NewGenericParser() *GenericParser {
	return &GenericParser{}
}

// Parse implements Parser.
func (p *GenericParser) Parse(raw string) (token.Map, error) {
	m := token.New()
	if !Decompose(&m, raw) {
		return m, fmt.Errorf("%w: %s", ErrUnparseable, raw)
	}
	warnMissing(logutil.NewLogger("urlparser").WithProtocol(m.Get(token.Protocol)), &m, raw, token.Host)
	return m, nil
}

// DefaultTemplate implements Parser.
func (p *GenericParser) DefaultTemplate() []string {
	return nil
}

// FileExtension implements Parser.
func (p *GenericParser) FileExtension() string {
	return DefaultFileExtension
}
