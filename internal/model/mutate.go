package model

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a mutation addresses a folder or
// bookmark position that does not exist in the current tree. The tree is
// left untouched in that case.
var ErrIndexOutOfRange = errors.New("index out of range")

func (s *BookmarkStore) folderAt(folderIndex int) (*Folder, error) {
	if folderIndex < 0 || folderIndex >= len(s.Folders) {
		return nil, fmt.Errorf("folder %d of %d: %w", folderIndex, len(s.Folders), ErrIndexOutOfRange)
	}
	return &s.Folders[folderIndex], nil
}

func (f *Folder) checkBookmark(bookmarkIndex int) error {
	if bookmarkIndex < 0 || bookmarkIndex >= len(f.Bookmarks) {
		return fmt.Errorf("bookmark %d of %d in %q: %w", bookmarkIndex, len(f.Bookmarks), f.Name, ErrIndexOutOfRange)
	}
	return nil
}

// AddFolder appends a new expanded, empty folder to the tree
func (s *BookmarkStore) AddFolder(name string) {
	s.Folders = append(s.Folders, Folder{
		Name:      name,
		Expanded:  true,
		Bookmarks: []Bookmark{},
	})
}

// AddBookmark appends a bookmark to the folder at folderIndex
func (s *BookmarkStore) AddBookmark(folderIndex int, name, url string) error {
	folder, err := s.folderAt(folderIndex)
	if err != nil {
		return err
	}
	folder.Bookmarks = append(folder.Bookmarks, Bookmark{Name: name, URL: url})
	return nil
}

// DeleteBookmark removes the bookmark at bookmarkIndex from the folder at
// folderIndex, preserving the relative order of the remaining bookmarks.
func (s *BookmarkStore) DeleteBookmark(folderIndex, bookmarkIndex int) error {
	folder, err := s.folderAt(folderIndex)
	if err != nil {
		return err
	}
	if err := folder.checkBookmark(bookmarkIndex); err != nil {
		return err
	}
	folder.Bookmarks = append(folder.Bookmarks[:bookmarkIndex], folder.Bookmarks[bookmarkIndex+1:]...)
	return nil
}

// DeleteFolder removes the folder at folderIndex and all its bookmarks
func (s *BookmarkStore) DeleteFolder(folderIndex int) error {
	if _, err := s.folderAt(folderIndex); err != nil {
		return err
	}
	s.Folders = append(s.Folders[:folderIndex], s.Folders[folderIndex+1:]...)
	return nil
}

// ToggleFolder flips the expanded flag of the folder at folderIndex
func (s *BookmarkStore) ToggleFolder(folderIndex int) error {
	folder, err := s.folderAt(folderIndex)
	if err != nil {
		return err
	}
	folder.Expanded = !folder.Expanded
	return nil
}

// MoveBookmark removes the bookmark at (folderIndex, bookmarkIndex) and
// appends it to the folder at targetIndex. Moving within the same folder
// moves the bookmark to the end.
func (s *BookmarkStore) MoveBookmark(folderIndex, bookmarkIndex, targetIndex int) error {
	source, err := s.folderAt(folderIndex)
	if err != nil {
		return err
	}
	if err := source.checkBookmark(bookmarkIndex); err != nil {
		return err
	}
	target, err := s.folderAt(targetIndex)
	if err != nil {
		return err
	}
	moved := source.Bookmarks[bookmarkIndex]
	source.Bookmarks = append(source.Bookmarks[:bookmarkIndex], source.Bookmarks[bookmarkIndex+1:]...)
	target.Bookmarks = append(target.Bookmarks, moved)
	return nil
}
