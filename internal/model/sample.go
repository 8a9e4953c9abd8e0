package model

// DefaultStore returns the tree used when no bookmarks file exists yet or
// the existing one cannot be read. Startup must never fail on a missing or
// corrupt file, so this is the universal fallback.
func DefaultStore() *BookmarkStore {
	return &BookmarkStore{
		Folders: []Folder{
			{
				Name:     "Documentation",
				Expanded: true,
				Bookmarks: []Bookmark{
					{Name: "The Go Programming Language", URL: "https://go.dev/doc/"},
					{Name: "Arch Wiki", URL: "https://wiki.archlinux.org/"},
				},
			},
			{
				Name:     "News",
				Expanded: true,
				Bookmarks: []Bookmark{
					{Name: "Hacker News", URL: "https://news.ycombinator.com/"},
				},
			},
		},
	}
}
