package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/markbook/bookmarks-browser/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	return Open(path, zerolog.Nop())
}

func TestOpenMissingFileFallsBackToSampleData(t *testing.T) {
	s := testStore(t)

	tree := s.Snapshot()
	if !tree.Equal(model.DefaultStore()) {
		t.Errorf("Missing file should load the sample tree, got %+v", tree)
	}
}

func TestOpenCorruptFileFallsBackToSampleData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := Open(path, zerolog.Nop())
	if !s.Snapshot().Equal(model.DefaultStore()) {
		t.Error("Corrupt file should load the sample tree")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)

	err := s.Update(func(tree *model.BookmarkStore) error {
		tree.AddFolder("Work")
		if err := tree.AddBookmark(len(tree.Folders)-1, "Tracker", "https://example.com/tracker"); err != nil {
			return err
		}
		return tree.ToggleFolder(0)
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	reloaded := Open(s.Path(), zerolog.Nop())
	if !reloaded.Snapshot().Equal(s.Snapshot()) {
		t.Error("Reloaded tree should equal the saved tree")
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "bookmarks.json")
	s := Open(path, zerolog.Nop())

	if err := s.Save(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("File should exist after save: %v", err)
	}
}

func TestEmptyStoreRoundTrip(t *testing.T) {
	s := testStore(t)
	s.Replace(&model.BookmarkStore{})

	if err := s.Save(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	compact := strings.Join(strings.Fields(string(data)), "")
	if compact != `{"folders":[]}` {
		t.Errorf(`Expected {"folders":[]}, got %s`, data)
	}

	reloaded := Open(s.Path(), zerolog.Nop())
	if len(reloaded.Snapshot().Folders) != 0 {
		t.Error("Empty tree should round trip to an empty tree")
	}
}

func TestSavedFileIsPrettyPrinted(t *testing.T) {
	s := testStore(t)
	if err := s.Save(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("Saved JSON should be indented")
	}
}

func TestSnapshotIsIsolatedFromLaterMutations(t *testing.T) {
	s := testStore(t)
	snap := s.Snapshot()
	before := snap.BookmarkCount()

	err := s.Update(func(tree *model.BookmarkStore) error {
		return tree.AddBookmark(0, "New", "https://example.com/new")
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if snap.BookmarkCount() != before {
		t.Error("Snapshot should not observe mutations made after it was taken")
	}
}

func TestReplaceInstallsRemoteTree(t *testing.T) {
	s := testStore(t)

	remote := &model.BookmarkStore{
		Folders: []model.Folder{{Name: "X", Expanded: false, Bookmarks: []model.Bookmark{}}},
	}
	s.Replace(remote)

	got := s.Snapshot()
	if !got.Equal(remote) {
		t.Errorf("Replace should install the given tree, got %+v", got)
	}

	// The store keeps its own copy
	remote.Folders[0].Name = "Y"
	if s.Snapshot().Folders[0].Name != "X" {
		t.Error("Replace should deep-copy the given tree")
	}
}
