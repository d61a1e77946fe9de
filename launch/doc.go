// Package launch runs the full protocol-handler sequence: resolve the
// application for a URL, parse it, generate the connection profile, start the
// client and hold the process open according to the configured wait policy.
package launch
