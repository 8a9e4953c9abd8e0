package ui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/markbook/bookmarks-browser/internal/config"
	"github.com/markbook/bookmarks-browser/internal/dispatch"
	"github.com/markbook/bookmarks-browser/internal/model"
	syncsvc "github.com/markbook/bookmarks-browser/internal/sync"
)

// Layout constants
const (
	SidebarSplitOffset = 0.24
	WelcomeTitle       = "Select a bookmark"
	WelcomeSubtitle    = "Choose a bookmark from the sidebar to get started."
)

// RootUI represents the main two-pane window
type RootUI struct {
	window fyne.Window
	app    fyne.App

	dispatcher  *dispatch.Dispatcher
	coordinator *syncsvc.Coordinator
	settings    *config.Store

	// snapshot is the tree view model currently rendered. It is only
	// replaced on the Fyne thread.
	snapshot *model.BookmarkStore

	tree        *widget.Tree
	split       *container.Split
	sidebar     fyne.CanvasObject
	statusLabel *widget.Label

	contentTitle *widget.Label
	contentLink  *widget.Hyperlink
	contentPane  *fyne.Container

	// current sidebar selection; bookmark index is -1 when a folder is
	// selected and both are -1 when nothing is.
	selFolder   int
	selBookmark int

	// suppresses toggle dispatches while branch state is being synced
	// from the model rather than by the user
	syncingBranches bool
}

// NewRootUI creates and wires the main window contents
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Store, dispatcher *dispatch.Dispatcher, coordinator *syncsvc.Coordinator) *RootUI {
	ui := &RootUI{
		window:      window,
		app:         app,
		dispatcher:  dispatcher,
		coordinator: coordinator,
		settings:    settings,
		snapshot:    dispatcher.Snapshot(),
		selFolder:   -1,
		selBookmark: -1,
	}

	ui.createTree()
	ui.createContentPane()
	ui.createLayout()

	dispatcher.SetTreeCallback(func(snapshot *model.BookmarkStore) {
		fyne.Do(func() { ui.applySnapshot(snapshot) })
	})
	dispatcher.SetNavigateCallback(func(target string) {
		fyne.Do(func() { ui.showPage("", target) })
	})
	coordinator.SetStatusCallback(func(st syncsvc.Status) {
		fyne.Do(func() { ui.applySyncStatus(st) })
	})
	coordinator.SetPullCallback(func() {
		fyne.Do(func() { ui.applySnapshot(ui.dispatcher.Snapshot()) })
	})

	if settings.Get().SidebarCollapsed {
		ui.setSidebarCollapsed(true)
	}

	ui.syncBranchState()
	return ui
}

// Tree node IDs: folders are "f:<index>", bookmarks "b:<folder>:<index>"

func folderUID(folderIndex int) widget.TreeNodeID {
	return fmt.Sprintf("f:%d", folderIndex)
}

func bookmarkUID(folderIndex, bookmarkIndex int) widget.TreeNodeID {
	return fmt.Sprintf("b:%d:%d", folderIndex, bookmarkIndex)
}

// parseUID decodes a node id; bookmarkIndex is -1 for folder nodes
func parseUID(uid widget.TreeNodeID) (folderIndex, bookmarkIndex int, ok bool) {
	parts := strings.Split(uid, ":")
	switch {
	case len(parts) == 2 && parts[0] == "f":
		fi, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, false
		}
		return fi, -1, true
	case len(parts) == 3 && parts[0] == "b":
		fi, err1 := strconv.Atoi(parts[1])
		bi, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return fi, bi, true
	default:
		return 0, 0, false
	}
}

func (ui *RootUI) createTree() {
	ui.tree = widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			if uid == "" {
				ids := make([]widget.TreeNodeID, len(ui.snapshot.Folders))
				for i := range ui.snapshot.Folders {
					ids[i] = folderUID(i)
				}
				return ids
			}
			fi, bi, ok := parseUID(uid)
			if !ok || bi >= 0 || fi >= len(ui.snapshot.Folders) {
				return nil
			}
			ids := make([]widget.TreeNodeID, len(ui.snapshot.Folders[fi].Bookmarks))
			for j := range ui.snapshot.Folders[fi].Bookmarks {
				ids[j] = bookmarkUID(fi, j)
			}
			return ids
		},
		func(uid widget.TreeNodeID) bool {
			if uid == "" {
				return true
			}
			_, bi, ok := parseUID(uid)
			return ok && bi < 0
		},
		func(branch bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			fi, bi, ok := parseUID(uid)
			if !ok || fi >= len(ui.snapshot.Folders) {
				return
			}
			folder := ui.snapshot.Folders[fi]
			if bi < 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(folder.Name)
				return
			}
			if bi >= len(folder.Bookmarks) {
				return
			}
			label.TextStyle = fyne.TextStyle{}
			label.SetText(folder.Bookmarks[bi].Name)
		},
	)

	ui.tree.OnSelected = func(uid widget.TreeNodeID) {
		fi, bi, ok := parseUID(uid)
		if !ok {
			return
		}
		ui.selFolder, ui.selBookmark = fi, bi
		if bi < 0 {
			return
		}
		if fi < len(ui.snapshot.Folders) && bi < len(ui.snapshot.Folders[fi].Bookmarks) {
			bookmark := ui.snapshot.Folders[fi].Bookmarks[bi]
			_ = ui.dispatcher.Dispatch(dispatch.Command{Action: dispatch.ActionNavigate, URL: bookmark.URL})
			ui.showPage(bookmark.Name, bookmark.URL)
		}
	}

	ui.tree.OnBranchOpened = func(uid widget.TreeNodeID) {
		ui.onBranchToggled(uid, true)
	}
	ui.tree.OnBranchClosed = func(uid widget.TreeNodeID) {
		ui.onBranchToggled(uid, false)
	}
}

// onBranchToggled forwards a user expand/collapse to the dispatcher so it
// persists like any other mutation. Programmatic branch changes made while
// syncing from the model are ignored.
func (ui *RootUI) onBranchToggled(uid widget.TreeNodeID, open bool) {
	if ui.syncingBranches {
		return
	}
	fi, bi, ok := parseUID(uid)
	if !ok || bi >= 0 || fi >= len(ui.snapshot.Folders) {
		return
	}
	if ui.snapshot.Folders[fi].Expanded == open {
		return
	}
	_ = ui.dispatcher.Dispatch(dispatch.Command{Action: dispatch.ActionToggleFolder, FolderIndex: fi})
}

func (ui *RootUI) createContentPane() {
	ui.contentTitle = widget.NewLabel(WelcomeTitle)
	ui.contentTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.contentTitle.Alignment = fyne.TextAlignCenter

	ui.contentLink = widget.NewHyperlink("", nil)
	ui.contentLink.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel(WelcomeSubtitle)
	subtitle.Alignment = fyne.TextAlignCenter

	openBtn := widget.NewButtonWithIcon("Open in Browser", theme.ComputerIcon(), func() {
		if ui.contentLink.URL != nil {
			_ = ui.app.OpenURL(ui.contentLink.URL)
		}
	})
	openBtn.Importance = widget.HighImportance

	ui.contentPane = container.NewVBox(
		ui.contentTitle,
		subtitle,
		ui.contentLink,
		container.NewCenter(openBtn),
	)
}

// showPage points the content pane at a bookmark. The page itself renders
// in the system browser; the pane is the hand-off surface.
func (ui *RootUI) showPage(name, target string) {
	parsed, err := url.Parse(target)
	if err != nil {
		dialog.ShowError(fmt.Errorf("invalid URL %q: %w", target, err), ui.window)
		return
	}
	if name == "" {
		name = target
	}
	ui.contentTitle.SetText(name)
	ui.contentLink.SetText(target)
	ui.contentLink.SetURL(parsed)
}

func (ui *RootUI) createLayout() {
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MenuIcon(), ui.onToggleSidebar),
		widget.NewToolbarAction(theme.FolderNewIcon(), ui.showAddFolderDialog),
		widget.NewToolbarAction(theme.ContentAddIcon(), ui.showAddBookmarkDialog),
		widget.NewToolbarAction(theme.ContentRedoIcon(), ui.showMoveBookmarkDialog),
		widget.NewToolbarAction(theme.DeleteIcon(), ui.onDeleteSelection),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.UploadIcon(), ui.onPush),
		widget.NewToolbarAction(theme.DownloadIcon(), ui.onPull),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), ui.showSettingsDialog),
	)

	ui.statusLabel = widget.NewLabel("Sync: idle")

	ui.sidebar = container.NewBorder(nil, nil, nil, nil, ui.tree)
	ui.split = container.NewHSplit(ui.sidebar, container.NewPadded(ui.contentPane))
	ui.split.SetOffset(SidebarSplitOffset)

	ui.window.SetContent(container.NewBorder(
		toolbar,
		ui.statusLabel,
		nil,
		nil,
		ui.split,
	))
}

// applySnapshot installs a new tree view model and re-renders the sidebar
func (ui *RootUI) applySnapshot(snapshot *model.BookmarkStore) {
	ui.snapshot = snapshot
	if ui.selFolder >= len(snapshot.Folders) {
		ui.selFolder, ui.selBookmark = -1, -1
		ui.tree.UnselectAll()
	}
	ui.tree.Refresh()
	ui.syncBranchState()
}

// syncBranchState opens and closes tree branches to match the model's
// expanded flags without dispatching toggle commands back.
func (ui *RootUI) syncBranchState() {
	ui.syncingBranches = true
	defer func() { ui.syncingBranches = false }()

	for i, folder := range ui.snapshot.Folders {
		if folder.Expanded {
			ui.tree.OpenBranch(folderUID(i))
		} else {
			ui.tree.CloseBranch(folderUID(i))
		}
	}
}

func (ui *RootUI) applySyncStatus(st syncsvc.Status) {
	switch st.State {
	case syncsvc.StateSyncing:
		ui.statusLabel.SetText(fmt.Sprintf("Sync: %s in progress...", st.Direction))
	case syncsvc.StateSucceeded:
		ui.statusLabel.SetText(fmt.Sprintf("Sync: %s succeeded at %s", st.Direction, st.At.Format("15:04:05")))
	case syncsvc.StateFailed:
		ui.statusLabel.SetText(fmt.Sprintf("Sync: %s", st.Reason.Message()))
	default:
		ui.statusLabel.SetText("Sync: idle")
	}
}

func (ui *RootUI) onPush() {
	if err := ui.coordinator.RequestPush(); err != nil {
		dialog.ShowInformation("Sync", "A sync is already running. Try again in a moment.", ui.window)
	}
}

func (ui *RootUI) onPull() {
	if err := ui.coordinator.RequestPull(); err != nil {
		dialog.ShowInformation("Sync", "A sync is already running. Try again in a moment.", ui.window)
	}
}

func (ui *RootUI) onToggleSidebar() {
	ui.setSidebarCollapsed(ui.sidebar.Visible())

	record := ui.settings.Get()
	record.SidebarCollapsed = !ui.sidebar.Visible()
	if err := ui.settings.Save(record); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) setSidebarCollapsed(collapsed bool) {
	if collapsed {
		ui.sidebar.Hide()
		ui.split.SetOffset(0)
	} else {
		ui.sidebar.Show()
		ui.split.SetOffset(SidebarSplitOffset)
	}
}

// selectedFolderIndex returns the folder the next bookmark-level action
// applies to, defaulting to the first folder when nothing is selected.
func (ui *RootUI) selectedFolderIndex() int {
	if ui.selFolder >= 0 && ui.selFolder < len(ui.snapshot.Folders) {
		return ui.selFolder
	}
	return 0
}

func (ui *RootUI) onDeleteSelection() {
	fi, bi := ui.selFolder, ui.selBookmark
	if fi < 0 || fi >= len(ui.snapshot.Folders) {
		return
	}
	folder := ui.snapshot.Folders[fi]

	if bi < 0 {
		dialog.ShowConfirm("Delete Folder",
			fmt.Sprintf("Delete folder %q and its %d bookmarks?", folder.Name, len(folder.Bookmarks)),
			func(confirmed bool) {
				if !confirmed {
					return
				}
				ui.dispatchReporting(dispatch.Command{Action: dispatch.ActionDeleteFolder, FolderIndex: fi})
			}, ui.window)
		return
	}

	if bi >= len(folder.Bookmarks) {
		return
	}
	bookmark := folder.Bookmarks[bi]
	dialog.ShowConfirm("Delete Bookmark",
		fmt.Sprintf("Delete bookmark %q?", bookmark.Name),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.dispatchReporting(dispatch.Command{Action: dispatch.ActionDeleteBookmark, FolderIndex: fi, BookmarkIndex: bi})
		}, ui.window)
}

// dispatchReporting runs a command and surfaces rejections in a dialog
func (ui *RootUI) dispatchReporting(cmd dispatch.Command) {
	if err := ui.dispatcher.Dispatch(cmd); err != nil {
		dialog.ShowError(err, ui.window)
	}
}
