package dispatch

// Package dispatch turns raw UI payloads into validated commands and runs
// every structural edit through one funnel: apply, persist, notify sync,
// refresh the view. Malformed or unknown payloads are rejected at the
// boundary and never reach the tree.
