package dispatch

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/markbook/bookmarks-browser/internal/model"
	"github.com/markbook/bookmarks-browser/internal/store"
)

// SyncNotifier receives the auto-sync trigger after successful mutations
type SyncNotifier interface {
	NotifyMutation()
}

// Dispatcher is the single funnel for structural edits: validate the
// command, apply it to the tree, persist, trigger auto-sync, refresh the
// UI. Each step fails independently; a failed save does not roll back the
// in-memory edit and does not block the sync notification.
type Dispatcher struct {
	store    *store.Store
	notifier SyncNotifier
	log      zerolog.Logger

	onTreeChanged func(*model.BookmarkStore)
	onNavigate    func(url string)
}

// New creates a dispatcher over the given store and sync notifier
func New(bookmarks *store.Store, notifier SyncNotifier, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		store:    bookmarks,
		notifier: notifier,
		log:      logger,
	}
}

// SetTreeCallback registers the listener invoked with a fresh snapshot
// after every applied mutation.
func (d *Dispatcher) SetTreeCallback(callback func(*model.BookmarkStore)) {
	d.onTreeChanged = callback
}

// SetNavigateCallback registers the listener for navigate commands
func (d *Dispatcher) SetNavigateCallback(callback func(url string)) {
	d.onNavigate = callback
}

// Snapshot exposes the current tree view for the UI
func (d *Dispatcher) Snapshot() *model.BookmarkStore {
	return d.store.Snapshot()
}

// DispatchRaw parses a raw UI payload and dispatches it
func (d *Dispatcher) DispatchRaw(payload []byte) error {
	cmd, err := Parse(payload)
	if err != nil {
		d.log.Warn().Err(err).Msg("rejected UI payload")
		return err
	}
	return d.Dispatch(cmd)
}

// Dispatch applies a validated command
func (d *Dispatcher) Dispatch(cmd Command) error {
	if cmd.Action == ActionNavigate {
		if d.onNavigate != nil {
			d.onNavigate(cmd.URL)
		}
		return nil
	}

	err := d.store.Update(func(tree *model.BookmarkStore) error {
		switch cmd.Action {
		case ActionAddFolder:
			tree.AddFolder(cmd.Name)
			return nil
		case ActionAddBookmark:
			return tree.AddBookmark(cmd.FolderIndex, cmd.Name, cmd.URL)
		case ActionDeleteBookmark:
			return tree.DeleteBookmark(cmd.FolderIndex, cmd.BookmarkIndex)
		case ActionDeleteFolder:
			return tree.DeleteFolder(cmd.FolderIndex)
		case ActionToggleFolder:
			return tree.ToggleFolder(cmd.FolderIndex)
		case ActionMoveBookmark:
			return tree.MoveBookmark(cmd.FolderIndex, cmd.BookmarkIndex, cmd.TargetIndex)
		default:
			return fmt.Errorf("%w: %q is not a mutation", ErrBadCommand, cmd.Action)
		}
	})
	if err != nil {
		d.log.Warn().Err(err).Str("action", string(cmd.Action)).Msg("mutation rejected")
		return err
	}

	// The edit stands even if the write-through fails; the user's action
	// is not lost to a disk problem.
	if err := d.store.Save(); err != nil {
		d.log.Error().Err(err).Msg("bookmarks not persisted")
	}

	d.notifier.NotifyMutation()

	if d.onTreeChanged != nil {
		d.onTreeChanged(d.store.Snapshot())
	}
	return nil
}
