package sync

// Package sync coordinates push and pull of the bookmark tree against the
// remote gist. It enforces single-flight semantics: explicit requests are
// visibly refused while an attempt is in flight, automatic triggers are
// silently dropped, and the in-flight flag is released unconditionally when
// an attempt ends, whatever the outcome.
