// Package urlutil provides helpers for taking apart protocol-handler URLs.
//
// Protocol handlers receive strings that are only loosely URL shaped, e.g.
// "rdp://full%20address=s:10.0.0.5&username=s:alice". The helpers here work on
// the raw text where net/url would reject it, and wrap net/url where a real
// absolute URI is required.
//
// # Usage
//
//	scheme := urlutil.Scheme(raw, "rdp")      // "rdp"
//	rest := urlutil.StripScheme(raw)          // "full%20address=s:10.0.0.5&..."
//	host, port := urlutil.SplitHostPort("10.0.0.5:3390")
//
// Use ParseAbsolute when the input must be a valid absolute URI:
//
//	u, err := urlutil.ParseAbsolute(raw)
//	if err != nil {
//		return fmt.Errorf("not a URL: %w", err)
//	}
//
// # Decoding
//
// Unescape follows form decoding rules ('+' becomes a space) but is lenient:
// malformed escape sequences are kept verbatim instead of failing the whole
// value.
package urlutil
