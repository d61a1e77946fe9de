package urlparser

import (
	"errors"

	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/token"
)

var (
	// ErrUnparseable indicates the input is neither in a parser's own grammar
	// nor a valid absolute URI.
	ErrUnparseable = errors.New("cannot parse url")
	// ErrUnknownParser indicates no parser is registered under the id.
	ErrUnknownParser = errors.New("unknown parser")
)

// DefaultFileExtension is used for generated files when the parser has no
// more specific one.
const DefaultFileExtension = ".scalus"

// Parser decomposes one URL into tokens.
type Parser interface {
	// Parse returns a fully populated token map for raw.
	Parse(raw string) (token.Map, error)
	// DefaultTemplate returns the template lines generated by the last call
	// to Parse, or nil when the parser has none.
	DefaultTemplate() []string
	// FileExtension returns the extension, with dot, for generated files.
	FileExtension() string
}

// warnMissing logs the tokens a connection normally needs but did not get.
func warnMissing(log *logutil.ComponentLogger, m *token.Map, raw string, required ...token.Token) {
	for _, t := range required {
		if !m.IsSet(t) {
			log.Warn("could not extract token from url", "token", t.String(), "url", raw)
		}
	}
}
