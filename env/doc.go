// Package env builds the environment of the launched client.
//
// The client inherits the scalus environment plus one variable per token,
// so wrapper scripts can read the parsed connection without re-parsing the
// URL:
//
//	environ := env.Merge(os.Environ(), env.TokenEnvironment(&tokens), runtime.GOOS == "windows")
//	// SCALUS_HOST=10.0.0.5, SCALUS_USER=alice, SCALUS_GENERATEDFILE=/tmp/Scalus-...
package env
