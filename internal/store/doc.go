package store

// Package store persists the bookmark tree as pretty-printed JSON and owns
// the in-memory copy shared between the UI thread and sync workers. Loading
// is fail-soft: a missing or unreadable file yields the sample default tree
// so startup never fails on bad data. Saving reports its errors.
