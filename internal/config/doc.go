package config

// Package config manages the persisted application settings: the sidebar
// state and the cloud-sync credential and gist reference. The record is
// loaded fail-soft at startup and rewritten wholesale on any change.
