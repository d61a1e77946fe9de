package env

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jongio/scalus/token"
)

// TokenPrefix starts the name of every exported token variable.
const TokenPrefix = "SCALUS_"

// TokenEnvironment exports the token values as SCALUS_<TOKEN> variables, e.g.
// SCALUS_HOST and SCALUS_GENERATEDFILE. Unset tokens are exported empty so a
// stale value in the parent environment never leaks through. The vault token
// is a credential and is always exported empty.
func TokenEnvironment(m *token.Map) map[string]string {
	result := make(map[string]string, token.Count)
	for _, t := range token.All() {
		if t == token.VaultToken {
			result[VarName(t)] = ""
			continue
		}
		result[VarName(t)] = m.Get(t)
	}
	return result
}

// VarName returns the variable name a token is exported as.
func VarName(t token.Token) string {
	return TokenPrefix + strings.ToUpper(t.String())
}

// Merge returns base with the overrides applied. Set caseInsensitive on
// Windows, where variable names ignore case.
func Merge(base []string, overrides map[string]string, caseInsensitive bool) []string {
	norm := func(k string) string {
		if caseInsensitive {
			return strings.ToUpper(k)
		}
		return k
	}

	replaced := make(map[string]bool, len(overrides))
	for k := range overrides {
		replaced[norm(k)] = true
	}

	result := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		k, _, ok := strings.Cut(kv, "=")
		if ok && replaced[norm(k)] {
			continue
		}
		result = append(result, kv)
	}
	return append(result, MapToSlice(overrides)...)
}

// MapToSlice converts an env map into KEY=VALUE entries sorted by key.
func MapToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}
