// Package controller owns the session state machine: it decides whether
// the app shows the public read-only view, the authentication view, or the
// editor, and it holds the current board between mutations. Identity and
// board stores are injected; the controller is the only writer of the
// "current session / current board" state.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/vborges/futura/internal/board"
	"github.com/vborges/futura/internal/codec"
	"github.com/vborges/futura/internal/model"
	"github.com/vborges/futura/internal/store"
)

// State identifies the controller's position in the startup/auth flow.
type State string

const (
	StateResolving    State = "resolving"
	StatePublicView   State = "public_view"
	StateAuthRequired State = "auth_required"
	StateBoardLoading State = "board_loading"
	StateEditing      State = "editing"
)

// PublicPathPrefix is the locator prefix that carries a share token.
const PublicPathPrefix = "/b/"

var (
	// ErrConfirmRequired is returned by Logout and ImportBoard when the
	// caller has not supplied the explicit user confirmation they require.
	ErrConfirmRequired = errors.New("explicit confirmation required")
	// ErrNoBoard is returned by board operations outside the Editing state.
	ErrNoBoard = errors.New("no board loaded")
)

// Controller composes the identity and board stores into the state machine
// of the app shell.
type Controller struct {
	mu       sync.Mutex
	identity *store.IdentityStore
	boards   *store.BoardStore
	logger   *slog.Logger

	state  State
	email  string
	board  model.Board
	public model.Board
}

func New(identity *store.IdentityStore, boards *store.BoardStore, logger *slog.Logger) *Controller {
	return &Controller{
		identity: identity,
		boards:   boards,
		logger:   logger,
		state:    StateResolving,
	}
}

// Resolve inspects a navigation locator and settles the controller into
// PublicView, AuthRequired, or Editing. It is called once at startup and
// again on every navigation.
//
// A locator under PublicPathPrefix decodes its token straight into the
// public view, bypassing both stores and superseding any session display.
// An undecodable token is reported as codec.ErrInvalidToken together with
// the fallback state, so the HTTP layer can clear the offending locator;
// resolution still completes normally.
func (c *Controller) Resolve(locator string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token, ok := strings.CutPrefix(locator, PublicPathPrefix); ok {
		b, err := codec.DecodeShareToken(token)
		if err == nil {
			c.state = StatePublicView
			c.public = b
			return c.state, nil
		}
		c.logger.Warn("share token rejected", "error", err)
		state, rerr := c.resolveSession()
		if rerr != nil {
			return state, rerr
		}
		return state, err
	}

	c.public = model.Board{}
	return c.resolveSession()
}

// resolveSession runs the non-public half of resolution. Callers hold mu.
func (c *Controller) resolveSession() (State, error) {
	c.public = model.Board{}

	sess, err := c.identity.CurrentSession()
	if err != nil {
		return c.state, err
	}
	if sess == nil {
		c.state = StateAuthRequired
		c.email = ""
		c.board = model.Board{}
		return c.state, nil
	}

	c.state = StateBoardLoading
	b, err := c.boards.LoadOrCreate(sess.Email)
	if err != nil {
		return c.state, err
	}
	c.email = sess.Email
	c.board = b
	c.state = StateEditing
	return c.state, nil
}

// Login authenticates, loads the account's board, and enters Editing. Any
// public-view locator state is cleared, as the original app does on login.
func (c *Controller) Login(email, credential string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.identity.Authenticate(email, credential); err != nil {
		return err
	}
	return c.enterEditing(email)
}

// Register creates the account, materializes its default board, and enters
// Editing. Registration implies login, as in the original app.
func (c *Controller) Register(email, credential string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.identity.Register(email, credential); err != nil {
		return err
	}
	if _, err := c.identity.Authenticate(email, credential); err != nil {
		return err
	}
	return c.enterEditing(email)
}

// enterEditing loads-or-creates the board for email. Callers hold mu.
func (c *Controller) enterEditing(email string) error {
	c.public = model.Board{}
	c.state = StateBoardLoading

	b, err := c.boards.LoadOrCreate(email)
	if err != nil {
		return err
	}
	c.email = email
	c.board = b
	c.state = StateEditing
	return nil
}

// Logout destroys the session and discards the in-memory board. The
// durable board record is untouched. It refuses to act without explicit
// confirmation.
func (c *Controller) Logout(confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.identity.EndSession(); err != nil {
		return err
	}
	c.email = ""
	c.board = model.Board{}
	c.state = StateAuthRequired
	return nil
}

// State returns the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Email returns the authenticated account email in Editing state.
func (c *Controller) Email() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.email
}

// Board returns the current editable board.
func (c *Controller) Board() (model.Board, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateEditing {
		return model.Board{}, ErrNoBoard
	}
	return c.board, nil
}

// PublicBoard returns the decoded shared board in PublicView state.
func (c *Controller) PublicBoard() (model.Board, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePublicView {
		return model.Board{}, false
	}
	return c.public, true
}

// Apply runs a pure board mutation and saves the result synchronously, so
// durable state tracks the last completed mutation. When the save fails
// the in-memory board stays authoritative: the new value is kept, the
// error is surfaced once, and the next mutation retries the write.
func (c *Controller) Apply(m board.Mutation) (model.Board, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditing {
		return model.Board{}, ErrNoBoard
	}

	c.board = m(c.board)
	if err := c.boards.Save(c.board, c.email); err != nil {
		c.logger.Error("board save failed, memory state kept", "email", c.email, "error", err)
		return c.board, fmt.Errorf("save board: %w", err)
	}
	return c.board, nil
}

// ImportBoard replaces the current board's content with an interchange
// file, preserving the board's id and share slug. Overwriting the active
// board requires explicit confirmation.
func (c *Controller) ImportBoard(data []byte, confirmed bool) (model.Board, error) {
	if !confirmed {
		return model.Board{}, ErrConfirmRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditing {
		return model.Board{}, ErrNoBoard
	}

	imported, err := codec.DecodeInterchangeFile(data)
	if err != nil {
		return model.Board{}, err
	}

	c.board = codec.ApplyImport(c.board, imported)
	if err := c.boards.Save(c.board, c.email); err != nil {
		c.logger.Error("board save failed after import", "email", c.email, "error", err)
		return c.board, fmt.Errorf("save board: %w", err)
	}
	return c.board, nil
}
