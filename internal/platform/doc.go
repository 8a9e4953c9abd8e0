package platform

// Package platform contains OS integration glue: resolving the per-user
// configuration directory and creating directories on demand.
