package token

import (
	"regexp"
	"strings"
)

// placeholders holds one case-insensitive matcher per token.
var placeholders = func() [Count]*regexp.Regexp {
	var re [Count]*regexp.Regexp
	for i := range re {
		re[i] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(Token(i).Placeholder()))
	}
	return re
}()

// Render replaces every %Name% placeholder of a known token in text with its
// current value. Matching ignores case and the replacement is literal.
// Placeholders that do not name a token are left untouched.
func Render(m *Map, text string) string {
	if !strings.Contains(text, "%") {
		return text
	}
	for i, re := range placeholders {
		text = re.ReplaceAllLiteralString(text, m[i])
	}
	return text
}

// RenderAll renders each element of lines independently, preserving order.
func RenderAll(m *Map, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Render(m, line)
	}
	return out
}

// References reports whether text contains the placeholder for t.
func References(text string, t Token) bool {
	return placeholders[t].MatchString(text)
}
