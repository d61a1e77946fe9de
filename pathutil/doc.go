// Package pathutil locates the directories and programs scalus works with.
//
// BinaryDir is where the executable and its appsettings live. AppDataDir is
// the per-user data directory (via github.com/adrg/xdg), against which
// relative configuration and log paths resolve. ResolveExecutable finds a
// client program by PATH lookup first and a scan of common install
// directories second:
//
//	exe, err := pathutil.ResolveExecutable("xfreerdp")
//	if err != nil {
//	    return err // includes an install suggestion
//	}
package pathutil
