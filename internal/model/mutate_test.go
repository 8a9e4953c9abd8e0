package model

import (
	"errors"
	"testing"
)

func twoFolderStore() *BookmarkStore {
	return &BookmarkStore{
		Folders: []Folder{
			{
				Name:     "Reading",
				Expanded: true,
				Bookmarks: []Bookmark{
					{Name: "First", URL: "https://example.com/1"},
					{Name: "Second", URL: "https://example.com/2"},
					{Name: "Third", URL: "https://example.com/3"},
				},
			},
			{
				Name:      "Later",
				Expanded:  false,
				Bookmarks: []Bookmark{},
			},
		},
	}
}

func TestAddFolderToEmptyStore(t *testing.T) {
	store := &BookmarkStore{}
	store.AddFolder("Work")

	if len(store.Folders) != 1 {
		t.Fatalf("Expected 1 folder, got %d", len(store.Folders))
	}

	folder := store.Folders[0]
	if folder.Name != "Work" {
		t.Errorf("Expected folder name 'Work', got %q", folder.Name)
	}
	if !folder.Expanded {
		t.Error("New folder should be expanded")
	}
	if folder.Bookmarks == nil || len(folder.Bookmarks) != 0 {
		t.Errorf("New folder should have an empty bookmark list, got %v", folder.Bookmarks)
	}
}

func TestAddBookmark(t *testing.T) {
	store := twoFolderStore()

	if err := store.AddBookmark(1, "Queued", "https://example.com/q"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(store.Folders[1].Bookmarks) != 1 {
		t.Fatalf("Expected 1 bookmark in folder 1, got %d", len(store.Folders[1].Bookmarks))
	}

	added := store.Folders[1].Bookmarks[0]
	if added.Name != "Queued" || added.URL != "https://example.com/q" {
		t.Errorf("Unexpected bookmark contents: %+v", added)
	}
}

func TestDeleteBookmarkPreservesOrder(t *testing.T) {
	store := twoFolderStore()

	if err := store.DeleteBookmark(0, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	remaining := store.Folders[0].Bookmarks
	if len(remaining) != 2 {
		t.Fatalf("Expected 2 bookmarks, got %d", len(remaining))
	}
	if remaining[0].Name != "First" || remaining[1].Name != "Third" {
		t.Errorf("Relative order not preserved: %+v", remaining)
	}
}

func TestDeleteFolder(t *testing.T) {
	store := twoFolderStore()

	if err := store.DeleteFolder(0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(store.Folders) != 1 {
		t.Fatalf("Expected 1 folder, got %d", len(store.Folders))
	}
	if store.Folders[0].Name != "Later" {
		t.Errorf("Wrong folder removed, remaining folder is %q", store.Folders[0].Name)
	}
}

func TestToggleFolder(t *testing.T) {
	store := twoFolderStore()

	if err := store.ToggleFolder(1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !store.Folders[1].Expanded {
		t.Error("Folder 1 should be expanded after toggle")
	}
	if !store.Folders[0].Expanded {
		t.Error("Folder 0 should be untouched")
	}

	if err := store.ToggleFolder(1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if store.Folders[1].Expanded {
		t.Error("Folder 1 should be collapsed after second toggle")
	}
}

func TestMoveBookmark(t *testing.T) {
	store := twoFolderStore()

	if err := store.MoveBookmark(0, 0, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(store.Folders[0].Bookmarks) != 2 {
		t.Errorf("Expected 2 bookmarks left in source, got %d", len(store.Folders[0].Bookmarks))
	}
	if len(store.Folders[1].Bookmarks) != 1 {
		t.Fatalf("Expected 1 bookmark in target, got %d", len(store.Folders[1].Bookmarks))
	}
	if store.Folders[1].Bookmarks[0].Name != "First" {
		t.Errorf("Expected 'First' in target folder, got %q", store.Folders[1].Bookmarks[0].Name)
	}
}

func TestMoveBookmarkWithinSameFolder(t *testing.T) {
	store := twoFolderStore()

	if err := store.MoveBookmark(0, 0, 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	names := []string{}
	for _, b := range store.Folders[0].Bookmarks {
		names = append(names, b.Name)
	}
	if len(names) != 3 || names[0] != "Second" || names[1] != "Third" || names[2] != "First" {
		t.Errorf("Expected [Second Third First], got %v", names)
	}
}

func TestOutOfRangeMutationsLeaveStoreUnchanged(t *testing.T) {
	store := twoFolderStore()
	original := store.Clone()

	cases := []struct {
		name string
		call func() error
	}{
		{"add bookmark bad folder", func() error { return store.AddBookmark(5, "x", "https://x") }},
		{"add bookmark negative folder", func() error { return store.AddBookmark(-1, "x", "https://x") }},
		{"delete bookmark bad folder", func() error { return store.DeleteBookmark(2, 0) }},
		{"delete bookmark bad index", func() error { return store.DeleteBookmark(0, 3) }},
		{"delete bookmark negative index", func() error { return store.DeleteBookmark(0, -1) }},
		{"delete folder bad index", func() error { return store.DeleteFolder(2) }},
		{"toggle bad index", func() error { return store.ToggleFolder(99) }},
		{"move bad source", func() error { return store.MoveBookmark(3, 0, 0) }},
		{"move bad bookmark", func() error { return store.MoveBookmark(1, 0, 0) }},
		{"move bad target", func() error { return store.MoveBookmark(0, 0, 9) }},
	}

	for _, tc := range cases {
		err := tc.call()
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
			continue
		}
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("%s: expected ErrIndexOutOfRange, got %v", tc.name, err)
		}
		if !store.Equal(original) {
			t.Fatalf("%s: store changed after rejected mutation", tc.name)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	store := twoFolderStore()
	clone := store.Clone()

	if !store.Equal(clone) {
		t.Fatal("Clone should equal the original")
	}

	if err := store.DeleteBookmark(0, 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(clone.Folders[0].Bookmarks) != 3 {
		t.Error("Mutating the original should not affect the clone")
	}
}

func TestBookmarkCount(t *testing.T) {
	store := twoFolderStore()
	if got := store.BookmarkCount(); got != 3 {
		t.Errorf("Expected 3 bookmarks, got %d", got)
	}

	empty := &BookmarkStore{}
	if got := empty.BookmarkCount(); got != 0 {
		t.Errorf("Expected 0 bookmarks, got %d", got)
	}
}
