package urlparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/token"
	"github.com/jongio/scalus/urlutil"
)

// RDP defaults.
const (
	DefaultRDPScheme    = "rdp"
	DefaultRDPPort      = "3389"
	RDPFileExtension    = ".rdp"
	passwordHashSetting = "password 51:b"
	passwordMarker      = "sg"
)

var (
	// rdpPattern matches [<scheme>://]<name>=<value>[&<name>=<value>]...
	// Repeated separators between pairs are tolerated.
	rdpPattern = regexp.MustCompile(`^(([^:/]+)://)?(([^&=]+)=([^&]+)(&+([^&=]+)=([^&]+))*)$`)
	// typeTagPrefix matches the single-letter type tag of a setting value.
	typeTagPrefix = regexp.MustCompile(`^.:`)
)

// RDPParser parses remote-desktop URLs of the form
//
//	rdp://full%20address=s:<host>[:<port>]&username=s:<user>[&<name>=<type>:<value>]...
//
// where every name is a client setting and type is 's' or 'i'. Names and
// values may be URL encoded. Anything else must be an absolute URI and is
// decomposed as one.
type RDPParser struct {
	settings []string
}

// NewRDPParser returns a remote-desktop parser.
func NewRDPParser() *RDPParser {
	return &RDPParser{}
}

// Parse implements Parser.
func (p *RDPParser) Parse(raw string) (token.Map, error) {
	log := logutil.NewLogger("urlparser").WithProtocol(DefaultRDPScheme)

	m := token.New()
	p.settings = nil
	m.Set(token.OriginalURL, raw)
	m.Set(token.Protocol, urlutil.Scheme(raw, DefaultRDPScheme))
	m.Set(token.RelativeURL, strings.TrimRight(urlutil.StripScheme(raw), "/"))
	m.Set(token.Port, DefaultRDPPort)

	if match := rdpPattern.FindStringSubmatch(strings.TrimRight(raw, "/&")); match != nil {
		log.Info("parsing url as an rdp url", "url", raw)
		p.parseSettings(log, &m, match[3])
	} else {
		u, err := urlutil.ParseAbsolute(raw)
		if err != nil {
			return m, fmt.Errorf("%w: the rdp parser cannot parse the url %s", ErrUnparseable, raw)
		}
		log.Info("parsing url as a default url", "url", raw)
		decomposeURL(&m, u)
		p.settings = catalogFor(m.Get(token.Host), m.Get(token.User))
	}

	warnMissing(log, &m, raw, token.User, token.Host)
	return m, nil
}

// DefaultTemplate implements Parser. It returns the profile lines built by
// the last Parse.
func (p *RDPParser) DefaultTemplate() []string {
	return p.settings
}

// FileExtension implements Parser.
func (p *RDPParser) FileExtension() string {
	return RDPFileExtension
}

// parseSettings handles the name=value list of the rdp grammar.
func (p *RDPParser) parseSettings(log *logutil.ComponentLogger, m *token.Map, list string) {
	used := make(map[string]bool)
	for _, pair := range strings.Split(list, "&") {
		rawName, value, ok := strings.Cut(pair, "=")
		if !ok || rawName == "" || value == "" {
			continue
		}

		name := urlutil.Unescape(rawName)
		switch {
		case name == UsernameKey:
			value = normalizeUsername(value)
			m.Set(token.User, stripTypeTag(value))
			ExtractVault(m)
		case strings.Contains(strings.ToLower(name), FullAddressKey):
			value = urlutil.Unescape(value)
			host, port := urlutil.SplitHostPort(stripTypeTag(value))
			if port == "" {
				port = DefaultRDPPort
			}
			m.Set(token.Host, host)
			m.Set(token.Port, port)
		default:
			value = urlutil.Unescape(value)
		}

		p.settings = append(p.settings, name+":"+value)
		used[strings.ToLower(name)] = true
	}

	for _, s := range Catalog {
		if !used[s.Name] {
			p.settings = append(p.settings, s.Line())
		}
	}

	if !protectionSupported {
		return
	}
	// A protected password blob keeps the client from prompting for one.
	blob, err := protectMarker()
	if err != nil {
		log.Warn("could not generate rdp password hash", "error", err)
		return
	}
	p.settings = append(p.settings, passwordHashSetting+":"+blob)
}

// normalizeUsername decodes a username value. Values carrying an encoded
// '%', '\' or space are fully decoded; otherwise only ':' is. A doubled
// backslash left by some callers is collapsed.
func normalizeUsername(value string) string {
	if urlutil.ContainsEscape(value, "%25") ||
		urlutil.ContainsEscape(value, "%5c") ||
		urlutil.ContainsEscape(value, "%20") {
		value = urlutil.Unescape(value)
	} else {
		value = urlutil.ReplaceEscape(value, "%3a", ":")
	}
	return strings.ReplaceAll(value, `\\`, `\`)
}

func stripTypeTag(value string) string {
	return typeTagPrefix.ReplaceAllLiteralString(value, "")
}

// catalogFor builds the full catalog with host and user filled in.
func catalogFor(host, user string) []string {
	lines := make([]string, 0, len(Catalog))
	for _, s := range Catalog {
		switch s.Name {
		case FullAddressKey:
			lines = append(lines, s.Name+":s:"+host)
		case UsernameKey:
			lines = append(lines, s.Name+":s:"+user)
		default:
			lines = append(lines, s.Line())
		}
	}
	return lines
}
