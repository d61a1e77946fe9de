// Package urlparser turns protocol-handler URLs into token maps.
//
// Two parsers are registered by default:
//
//   - "rdp" understands the remote-desktop settings grammar
//     <scheme>://<name>=<type>:<value>[&<name>=<type>:<value>]... and builds
//     a complete .rdp profile from the supplied settings and the default
//     settings catalog. Inputs that do not use the grammar are decomposed as
//     plain URLs.
//   - "url" decomposes any absolute URI into its components.
//
// The user field of an rdp URL may carry a credential-vault address of the
// form vaultaddress~<vault>%token~<token>%<user>%<host>[:<port>]%...; it is
// split into the Vault, VaultToken, TargetUser, TargetHost and TargetPort
// tokens.
//
// Parsers are looked up by id:
//
//	p, err := urlparser.New("rdp")
//	if err != nil {
//		return err
//	}
//	tokens, err := p.Parse("rdp://full%20address=s:10.0.0.5&username=s:alice")
package urlparser
