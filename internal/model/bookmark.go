package model

import "encoding/json"

// Bookmark is a single saved page reference
type Bookmark struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Folder groups an ordered list of bookmarks under a name
type Folder struct {
	Name      string     `json:"name"`
	Expanded  bool       `json:"expanded"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// UnmarshalJSON decodes a folder, defaulting Expanded to true when the field
// is absent. Files written before the flag existed omit it entirely.
func (f *Folder) UnmarshalJSON(data []byte) error {
	type folderAlias Folder
	aux := folderAlias{Expanded: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Bookmarks == nil {
		aux.Bookmarks = []Bookmark{}
	}
	*f = Folder(aux)
	return nil
}

// BookmarkStore is the root aggregate: an ordered list of folders.
// Folders and bookmarks are addressed by position, not by stable IDs, so
// indices recorded before a structural change may no longer be valid and
// must be re-checked at the time a mutation is applied.
type BookmarkStore struct {
	Folders []Folder `json:"folders"`
}

// MarshalJSON ensures an empty tree serializes as {"folders":[]} rather
// than {"folders":null}.
func (s BookmarkStore) MarshalJSON() ([]byte, error) {
	type storeAlias BookmarkStore
	aux := storeAlias(s)
	if aux.Folders == nil {
		aux.Folders = []Folder{}
	}
	return json.Marshal(aux)
}

// Clone returns a deep copy of the tree
func (s *BookmarkStore) Clone() *BookmarkStore {
	out := &BookmarkStore{Folders: make([]Folder, len(s.Folders))}
	for i, f := range s.Folders {
		nf := f
		nf.Bookmarks = make([]Bookmark, len(f.Bookmarks))
		copy(nf.Bookmarks, f.Bookmarks)
		out.Folders[i] = nf
	}
	return out
}

// Equal reports whether two trees have the same folders, flags, and
// bookmark ordering. A nil bookmark list compares equal to an empty one.
func (s *BookmarkStore) Equal(other *BookmarkStore) bool {
	if len(s.Folders) != len(other.Folders) {
		return false
	}
	for i, f := range s.Folders {
		o := other.Folders[i]
		if f.Name != o.Name || f.Expanded != o.Expanded || len(f.Bookmarks) != len(o.Bookmarks) {
			return false
		}
		for j, b := range f.Bookmarks {
			if b != o.Bookmarks[j] {
				return false
			}
		}
	}
	return true
}

// BookmarkCount returns the total number of bookmarks across all folders
func (s *BookmarkStore) BookmarkCount() int {
	n := 0
	for _, f := range s.Folders {
		n += len(f.Bookmarks)
	}
	return n
}
