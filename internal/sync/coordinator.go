package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/markbook/bookmarks-browser/internal/gist"
	"github.com/markbook/bookmarks-browser/internal/model"
	"github.com/markbook/bookmarks-browser/internal/store"
)

// Bounded wait for a whole attempt. Exceeding it classifies as a
// transport timeout; there is no mid-flight cancellation.
const attemptTimeout = 60 * time.Second

// ErrSyncInFlight is returned to explicit push/pull requests while another
// attempt is running. Automatic triggers never see it.
var ErrSyncInFlight = errors.New("sync already in progress")

// errMissingCredential short-circuits an attempt before any network call
var errMissingCredential = errors.New("no token configured")

// Remote is the blob store a sync attempt talks to
type Remote interface {
	Create(ctx context.Context, token, content string) (string, error)
	Update(ctx context.Context, token, id, content string) error
	Read(ctx context.Context, token, id string) (string, error)
}

// Credentials is the narrow view of settings the coordinator needs: the
// token and the persisted remote identifier. It never sees the rest of the
// settings record.
type Credentials interface {
	Token() string
	GistID() string
	SetGistID(id string) error
}

// Coordinator mediates all traffic to the remote store. At most one
// attempt runs at a time, gated by an atomic check-and-set under mu.
type Coordinator struct {
	mu         sync.Mutex
	inProgress bool
	status     Status

	store       *store.Store
	credentials Credentials
	remote      Remote
	log         zerolog.Logger

	onStatus func(Status)
	onPulled func()
}

// New creates a coordinator in the idle state
func New(bookmarks *store.Store, credentials Credentials, remote Remote, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		store:       bookmarks,
		credentials: credentials,
		remote:      remote,
		log:         logger,
		status:      Status{State: StateIdle},
	}
}

// SetStatusCallback registers the status listener. Callbacks run on the
// goroutine that produced the transition; UI callers marshal onto their
// own thread.
func (c *Coordinator) SetStatusCallback(callback func(Status)) {
	c.onStatus = callback
}

// SetPullCallback registers the listener invoked after a successful pull
// has replaced the local tree.
func (c *Coordinator) SetPullCallback(callback func()) {
	c.onPulled = callback
}

// Status returns the current externally visible status
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// RequestPush starts a user-initiated push, or refuses with ErrSyncInFlight
func (c *Coordinator) RequestPush() error {
	return c.begin(DirectionPush, false)
}

// RequestPull starts a user-initiated pull, or refuses with ErrSyncInFlight
func (c *Coordinator) RequestPull() error {
	return c.begin(DirectionPull, false)
}

// NotifyMutation is the auto-sync trigger, called after every successful
// local mutation. If an attempt is already in flight the trigger is dropped
// entirely; auto-sync is advisory and must never queue a backlog.
func (c *Coordinator) NotifyMutation() {
	_ = c.begin(DirectionPush, true)
}

func (c *Coordinator) begin(direction Direction, auto bool) error {
	c.mu.Lock()
	if c.inProgress {
		c.mu.Unlock()
		if auto {
			c.log.Debug().Str("direction", string(direction)).Msg("sync busy, dropping auto trigger")
			return nil
		}
		return ErrSyncInFlight
	}
	c.inProgress = true
	st := Status{
		State:     StateSyncing,
		Direction: direction,
		AttemptID: uuid.NewString(),
	}
	c.status = st
	c.mu.Unlock()

	c.log.Info().Str("direction", string(direction)).Str("attempt_id", st.AttemptID).Bool("auto", auto).Msg("sync starting")
	c.notifyStatus(st)

	// The snapshot is taken on the caller's thread, before begin returns:
	// an attempt covers exactly the mutations applied before it started,
	// later ones ride the next sync.
	var snapshot *model.BookmarkStore
	if direction == DirectionPush {
		snapshot = c.store.Snapshot()
	}

	go c.run(direction, st.AttemptID, snapshot)
	return nil
}

// run executes one attempt on its own goroutine. The deferred finish
// releases the in-flight flag on every path out, including panics in the
// protocol code; a stuck flag would wedge the coordinator for good.
func (c *Coordinator) run(direction Direction, attemptID string, snapshot *model.BookmarkStore) {
	var err error
	defer func() {
		c.finish(direction, attemptID, err)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
	defer cancel()

	switch direction {
	case DirectionPull:
		err = c.pull(ctx)
	default:
		err = c.push(ctx, snapshot)
	}
}

func (c *Coordinator) finish(direction Direction, attemptID string, err error) {
	st := Status{
		Direction: direction,
		At:        time.Now(),
		AttemptID: attemptID,
	}
	if err != nil {
		st.State = StateFailed
		st.Reason = classify(err)
		c.log.Warn().Err(err).
			Str("direction", string(direction)).
			Str("attempt_id", attemptID).
			Str("reason", string(st.Reason)).
			Msg("sync failed")
	} else {
		st.State = StateSucceeded
		c.log.Info().Str("direction", string(direction)).Str("attempt_id", attemptID).Msg("sync finished")
	}

	c.mu.Lock()
	c.inProgress = false
	c.status = st
	c.mu.Unlock()

	c.notifyStatus(st)
}

// push serializes the snapshot taken at attempt start and overwrites the
// remote content, creating the gist first if none is recorded yet.
func (c *Coordinator) push(ctx context.Context, snapshot *model.BookmarkStore) error {
	token := c.credentials.Token()
	if token == "" {
		return errMissingCredential
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	content := string(data)

	id := c.credentials.GistID()
	if id == "" {
		newID, err := c.remote.Create(ctx, token, content)
		if err != nil {
			return err
		}
		// The gist now exists; losing the id here only means the next
		// push creates a fresh one, so the attempt still counts as done.
		if err := c.credentials.SetGistID(newID); err != nil {
			c.log.Error().Err(err).Str("gist_id", newID).Msg("could not persist new gist id")
		}
		return nil
	}
	return c.remote.Update(ctx, token, id, content)
}

// pull reads the remote content and, only once it has parsed cleanly,
// replaces the local tree wholesale. A failed pull leaves local state
// untouched at every step.
func (c *Coordinator) pull(ctx context.Context) error {
	token := c.credentials.Token()
	if token == "" {
		return errMissingCredential
	}

	id := c.credentials.GistID()
	if id == "" {
		return fmt.Errorf("no gist recorded: %w", gist.ErrNotFound)
	}

	content, err := c.remote.Read(ctx, token, id)
	if err != nil {
		return err
	}

	var tree model.BookmarkStore
	if err := json.Unmarshal([]byte(content), &tree); err != nil {
		return fmt.Errorf("decode remote tree: %w", gist.ErrMalformedResponse)
	}
	if tree.Folders == nil {
		tree.Folders = []model.Folder{}
	}

	c.store.Replace(&tree)
	if err := c.store.Save(); err != nil {
		// The in-memory replace stands; persistence is retried by the
		// next mutation's write-through.
		c.log.Error().Err(err).Msg("pulled tree not persisted")
	}
	c.notifyPulled()
	return nil
}

// classify maps an attempt error onto the closed failure set. Transport
// failures without a more specific classification, reachability included,
// land on the timeout bucket: from the user's seat both read as "could not
// reach GitHub".
func classify(err error) FailureReason {
	switch {
	case errors.Is(err, errMissingCredential):
		return ReasonMissingCredential
	case errors.Is(err, gist.ErrUnauthorized):
		return ReasonUnauthorized
	case errors.Is(err, gist.ErrNotFound):
		return ReasonRemoteNotFound
	case errors.Is(err, gist.ErrMalformedResponse):
		return ReasonMalformedResponse
	}
	return ReasonTransportTimeout
}

func (c *Coordinator) notifyStatus(st Status) {
	if c.onStatus != nil {
		c.onStatus(st)
	}
}

func (c *Coordinator) notifyPulled() {
	if c.onPulled != nil {
		c.onPulled()
	}
}
