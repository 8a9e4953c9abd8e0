package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathsShareAppDirectory(t *testing.T) {
	dir := ConfigDir()
	if !strings.HasSuffix(dir, AppDirName) {
		t.Errorf("Config dir should end with %q, got %q", AppDirName, dir)
	}

	if filepath.Dir(BookmarksPath()) != dir {
		t.Errorf("Bookmarks path should live in %q, got %q", dir, BookmarksPath())
	}
	if filepath.Dir(SettingsPath()) != dir {
		t.Errorf("Settings path should live in %q, got %q", dir, SettingsPath())
	}

	if filepath.Base(BookmarksPath()) != BookmarksFileName {
		t.Errorf("Expected bookmarks file name %q, got %q", BookmarksFileName, filepath.Base(BookmarksPath()))
	}
	if filepath.Base(SettingsPath()) != SettingsFileName {
		t.Errorf("Expected settings file name %q, got %q", SettingsFileName, filepath.Base(SettingsPath()))
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Directory should exist after creation: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path should be a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}
