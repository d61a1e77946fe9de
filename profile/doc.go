// Package profile turns a parsed URL into a connection profile on disk.
//
// A Session owns every file it generates. Materialize renders the template
// selected by the application's parser configuration, writes it under the
// temp directory with a name derived from the connection target, and
// registers the file for deletion. Close deletes all registered files, so
// callers defer it immediately after creating the session:
//
//	s := profile.NewSession(afero.NewOsFs(), app.Parser)
//	defer s.Close()
//	path, err := s.Materialize(parser, &tokens)
package profile
