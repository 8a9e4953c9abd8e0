package ui

// Package ui contains the Fyne-based desktop user interface: the two-pane
// window with the folder sidebar and the content pane, the add/delete/move
// dialogs, and the sync toolbar. All interaction is forwarded to the
// dispatcher and the sync coordinator; the tree itself is never mutated
// from this package.
