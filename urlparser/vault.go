package urlparser

import (
	"regexp"

	"github.com/jongio/scalus/token"
	"github.com/jongio/scalus/urlutil"
)

// vaultUserPattern matches a credential-vault address carried in the user
// field: vaultaddress~<vault>%token~<token>%<user>%<host[:port]>[%<rest>].
// Either separator of each pair ('=' or '~', '@' or '%') is accepted.
var vaultUserPattern = regexp.MustCompile(
	`(?i)vaultaddress[=~]([^@%]+)[@%]token[~=]([^@%]+)[@%]([^@%]+)[@%]([^@%]*)(?:[@%](.*))?`)

// ExtractVault splits the User token into the vault sub-tokens. When User is
// not a vault address all five sub-tokens are cleared.
func ExtractVault(m *token.Map) {
	match := vaultUserPattern.FindStringSubmatch(m.Get(token.User))
	if match == nil {
		for _, t := range []token.Token{token.Vault, token.VaultToken, token.TargetUser, token.TargetHost, token.TargetPort} {
			m.Set(t, "")
		}
		return
	}

	m.Set(token.Vault, match[1])
	m.Set(token.VaultToken, match[2])
	m.Set(token.TargetUser, match[3])

	host, port := urlutil.SplitHostPort(match[4])
	m.Set(token.TargetHost, host)
	m.Set(token.TargetPort, port)
}
