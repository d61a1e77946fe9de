// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package token defines the closed set of named fields extracted from a
// protocol-handler URL and the renderer that substitutes them into templates.
//
// A Map is a fixed-size array indexed by Token, so every field always has a
// value. Fields that were never set hold the empty string.
package token

// Token identifies one named field of a parsed connection target.
type Token int

const (
	OriginalURL Token = iota
	RelativeURL
	Protocol
	Host
	Port
	Path
	User
	Query
	Fragment
	Vault
	VaultToken
	TargetUser
	TargetHost
	TargetPort
	GeneratedFile
	Home
	AppDataDir
	TempDir

	// Count is the number of defined tokens.
	Count int = iota
)

var names = [Count]string{
	OriginalURL:   "OriginalUrl",
	RelativeURL:   "RelativeUrl",
	Protocol:      "Protocol",
	Host:          "Host",
	Port:          "Port",
	Path:          "Path",
	User:          "User",
	Query:         "Query",
	Fragment:      "Fragment",
	Vault:         "Vault",
	VaultToken:    "VaultToken",
	TargetUser:    "TargetUser",
	TargetHost:    "TargetHost",
	TargetPort:    "TargetPort",
	GeneratedFile: "GeneratedFile",
	Home:          "Home",
	AppDataDir:    "AppDataDir",
	TempDir:       "TempDir",
}

// String returns the placeholder name of the token.
func (t Token) String() string {
	if t < 0 || int(t) >= Count {
		return ""
	}
	return names[t]
}

// Placeholder returns the template form of the token, e.g. "%Host%".
func (t Token) Placeholder() string {
	return "%" + t.String() + "%"
}

// All returns every token in declaration order.
func All() []Token {
	all := make([]Token, Count)
	for i := range all {
		all[i] = Token(i)
	}
	return all
}

// Map holds one string value per token.
type Map [Count]string

// New returns a map with every token set to the empty string.
func New() Map {
	return Map{}
}

// Get returns the value of t.
func (m *Map) Get(t Token) string {
	return m[t]
}

// Set assigns v to t.
func (m *Map) Set(t Token, v string) {
	m[t] = v
}

// IsSet reports whether t holds a non-empty value.
func (m *Map) IsSet(t Token) bool {
	return m[t] != ""
}

// Values returns the map as name/value pairs, suitable for output.
func (m *Map) Values() map[string]string {
	out := make(map[string]string, Count)
	for i, v := range m {
		out[names[i]] = v
	}
	return out
}
