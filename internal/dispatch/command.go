package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Action identifies one of the closed set of commands the UI may send
type Action string

const (
	ActionNavigate       Action = "navigate"
	ActionToggleFolder   Action = "toggle_folder"
	ActionAddFolder      Action = "add_folder"
	ActionAddBookmark    Action = "add_bookmark"
	ActionDeleteBookmark Action = "delete_bookmark"
	ActionDeleteFolder   Action = "delete_folder"
	ActionMoveBookmark   Action = "move_bookmark"
)

// ErrBadCommand is returned for payloads that are not valid commands:
// malformed JSON, unknown actions, or missing required fields. Such
// payloads never reach mutation logic.
var ErrBadCommand = errors.New("bad command")

// Command is a fully validated UI command. Which fields are meaningful
// depends on Action; Parse guarantees the required ones were present.
type Command struct {
	Action        Action
	Name          string
	URL           string
	FolderIndex   int
	BookmarkIndex int
	TargetIndex   int
}

// wireCommand mirrors the JSON IPC payload. Pointer fields distinguish
// "absent" from zero values, since index 0 is a valid address.
type wireCommand struct {
	Action        string  `json:"action"`
	Name          *string `json:"name"`
	URL           *string `json:"url"`
	FolderIndex   *int    `json:"folder_index"`
	BookmarkIndex *int    `json:"bookmark_index"`
	TargetIndex   *int    `json:"target_folder_index"`
}

// Parse decodes a raw UI payload into a Command, rejecting anything
// outside the closed action set or missing that action's required fields.
func Parse(payload []byte) (Command, error) {
	var wire wireCommand
	if err := json.Unmarshal(payload, &wire); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrBadCommand, err)
	}

	cmd := Command{Action: Action(wire.Action)}

	need := func(field string, ok bool) error {
		if !ok {
			return fmt.Errorf("%w: %s requires %s", ErrBadCommand, wire.Action, field)
		}
		return nil
	}

	switch cmd.Action {
	case ActionNavigate:
		if err := need("url", wire.URL != nil); err != nil {
			return Command{}, err
		}
		cmd.URL = *wire.URL

	case ActionToggleFolder, ActionDeleteFolder:
		if err := need("folder_index", wire.FolderIndex != nil); err != nil {
			return Command{}, err
		}
		cmd.FolderIndex = *wire.FolderIndex

	case ActionAddFolder:
		if err := need("name", wire.Name != nil); err != nil {
			return Command{}, err
		}
		cmd.Name = *wire.Name

	case ActionAddBookmark:
		if err := need("folder_index", wire.FolderIndex != nil); err != nil {
			return Command{}, err
		}
		if err := need("name", wire.Name != nil); err != nil {
			return Command{}, err
		}
		if err := need("url", wire.URL != nil); err != nil {
			return Command{}, err
		}
		cmd.FolderIndex = *wire.FolderIndex
		cmd.Name = *wire.Name
		cmd.URL = *wire.URL

	case ActionDeleteBookmark:
		if err := need("folder_index", wire.FolderIndex != nil); err != nil {
			return Command{}, err
		}
		if err := need("bookmark_index", wire.BookmarkIndex != nil); err != nil {
			return Command{}, err
		}
		cmd.FolderIndex = *wire.FolderIndex
		cmd.BookmarkIndex = *wire.BookmarkIndex

	case ActionMoveBookmark:
		if err := need("folder_index", wire.FolderIndex != nil); err != nil {
			return Command{}, err
		}
		if err := need("bookmark_index", wire.BookmarkIndex != nil); err != nil {
			return Command{}, err
		}
		if err := need("target_folder_index", wire.TargetIndex != nil); err != nil {
			return Command{}, err
		}
		cmd.FolderIndex = *wire.FolderIndex
		cmd.BookmarkIndex = *wire.BookmarkIndex
		cmd.TargetIndex = *wire.TargetIndex

	default:
		return Command{}, fmt.Errorf("%w: unknown action %q", ErrBadCommand, wire.Action)
	}

	return cmd, nil
}
