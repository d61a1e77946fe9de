// Package fileutil reads and writes the text files scalus generates, on an
// afero.Fs so callers can substitute an in-memory filesystem.
//
// Writes are atomic (temp file plus rename) and use owner-only permissions,
// since generated connection profiles can carry credential material:
//
//	if err := fileutil.WriteLines(fs, path, lines); err != nil {
//	    return err
//	}
//	defer fileutil.Remove(fs, path)
package fileutil
