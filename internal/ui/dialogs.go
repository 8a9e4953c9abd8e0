package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/markbook/bookmarks-browser/internal/dispatch"
)

func (ui *RootUI) showAddFolderDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Folder name")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
	}

	d := dialog.NewForm("Add Folder", "Add", "Cancel", items, func(confirmed bool) {
		if !confirmed || nameEntry.Text == "" {
			return
		}
		ui.dispatchReporting(dispatch.Command{Action: dispatch.ActionAddFolder, Name: nameEntry.Text})
	}, ui.window)
	d.Resize(fyne.NewSize(360, 160))
	d.Show()
}

func (ui *RootUI) showAddBookmarkDialog() {
	if len(ui.snapshot.Folders) == 0 {
		dialog.ShowInformation("Add Bookmark", "Create a folder first.", ui.window)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Bookmark name")
	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://...")

	folderSelect := widget.NewSelect(ui.folderNames(), nil)
	folderSelect.SetSelectedIndex(ui.selectedFolderIndex())

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("URL", urlEntry),
		widget.NewFormItem("Folder", folderSelect),
	}

	d := dialog.NewForm("Add Bookmark", "Add", "Cancel", items, func(confirmed bool) {
		if !confirmed || nameEntry.Text == "" || urlEntry.Text == "" {
			return
		}
		ui.dispatchReporting(dispatch.Command{
			Action:      dispatch.ActionAddBookmark,
			FolderIndex: folderSelect.SelectedIndex(),
			Name:        nameEntry.Text,
			URL:         urlEntry.Text,
		})
	}, ui.window)
	d.Resize(fyne.NewSize(420, 240))
	d.Show()
}

func (ui *RootUI) showMoveBookmarkDialog() {
	fi, bi := ui.selFolder, ui.selBookmark
	if fi < 0 || bi < 0 || fi >= len(ui.snapshot.Folders) || bi >= len(ui.snapshot.Folders[fi].Bookmarks) {
		dialog.ShowInformation("Move Bookmark", "Select a bookmark first.", ui.window)
		return
	}
	bookmark := ui.snapshot.Folders[fi].Bookmarks[bi]

	targetSelect := widget.NewSelect(ui.folderNames(), nil)
	targetSelect.SetSelectedIndex(fi)

	items := []*widget.FormItem{
		widget.NewFormItem("Move to", targetSelect),
	}

	d := dialog.NewForm(fmt.Sprintf("Move %q", bookmark.Name), "Move", "Cancel", items, func(confirmed bool) {
		if !confirmed || targetSelect.SelectedIndex() < 0 {
			return
		}
		ui.dispatchReporting(dispatch.Command{
			Action:        dispatch.ActionMoveBookmark,
			FolderIndex:   fi,
			BookmarkIndex: bi,
			TargetIndex:   targetSelect.SelectedIndex(),
		})
	}, ui.window)
	d.Resize(fyne.NewSize(360, 160))
	d.Show()
}

func (ui *RootUI) folderNames() []string {
	names := make([]string, len(ui.snapshot.Folders))
	for i, folder := range ui.snapshot.Folders {
		names[i] = folder.Name
	}
	return names
}
