package model

// Package model defines the bookmark tree: folders, bookmarks, and the
// structural mutations applied to them. Types are plain values designed for
// JSON persistence and direct rendering in the UI; every mutation validates
// its index arguments against current bounds before touching the tree.
