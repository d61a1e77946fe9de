package urlparser

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Factory builds a fresh parser for one invocation.
type Factory func() Parser

// Parser ids registered by this package.
const (
	RDPParserID     = "rdp"
	GenericParserID = "url"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

func init() {
	Register(RDPParserID, func() Parser { return NewRDPParser() })
	Register(GenericParserID, func() Parser { return NewGenericParser() })
}

// Register makes a parser available under id. Ids are case-insensitive and a
// later registration replaces an earlier one.
func Register(id string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	factories[strings.ToLower(id)] = factory
	slog.Debug("registered url parser", "id", id)
}

// New returns a new parser registered under id.
func New(id string) (Parser, error) {
	registryMu.RLock()
	factory, ok := factories[strings.ToLower(id)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, id)
	}
	return factory(), nil
}

// IDs returns the registered parser ids in sorted order.
func IDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
