package gist

// Package gist is a minimal GitHub Gist API client used as a remote blob
// store: create a gist, overwrite its content, read it back. Authentication
// is a bearer token supplied per call.
