package platform

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Application directory under the user's config root. The exact name matters
// for compatibility with files written by earlier releases.
const AppDirName = "bookmarks-browser"

// File permissions
const DefaultDirPermissions = 0755

// Data file names
const (
	BookmarksFileName = "bookmarks.json"
	SettingsFileName  = "settings.json"
)

// ConfigDir returns the application configuration directory,
// e.g. ~/.config/bookmarks-browser on Linux.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// BookmarksPath returns the path of the persisted bookmark tree
func BookmarksPath() string {
	return filepath.Join(ConfigDir(), BookmarksFileName)
}

// SettingsPath returns the path of the persisted settings record
func SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
