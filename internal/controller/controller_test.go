package controller

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/vborges/futura/internal/board"
	"github.com/vborges/futura/internal/codec"
	"github.com/vborges/futura/internal/database"
	"github.com/vborges/futura/internal/store"
)

func setup(t *testing.T) *Controller {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rs := store.NewRecordStore(db)
	logger := slog.Default()
	return New(
		store.NewIdentityStore(rs, logger),
		store.NewBoardStore(rs, logger),
		logger,
	)
}

func TestResolveNoSession(t *testing.T) {
	c := setup(t)

	state, err := c.Resolve("/")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if state != StateAuthRequired {
		t.Errorf("state = %q, want auth_required", state)
	}
}

func TestResolveWithSession(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}

	state, err := c.Resolve("/")
	if err != nil {
		t.Fatal(err)
	}
	if state != StateEditing {
		t.Fatalf("state = %q, want editing", state)
	}
	b, err := c.Board()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Sections) != 4 {
		t.Errorf("sections = %d, want default 4", len(b.Sections))
	}
}

func TestResolveShareToken(t *testing.T) {
	c := setup(t)

	shared := board.NewDefault()
	token, err := codec.EncodeShareToken(shared)
	if err != nil {
		t.Fatal(err)
	}

	state, err := c.Resolve(PublicPathPrefix + token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if state != StatePublicView {
		t.Fatalf("state = %q, want public_view", state)
	}
	got, ok := c.PublicBoard()
	if !ok {
		t.Fatal("no public board exposed")
	}
	if got.ID != shared.ID {
		t.Errorf("public board id = %q, want %q", got.ID, shared.ID)
	}
}

func TestResolveShareTokenSupersedesSession(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	token, _ := codec.EncodeShareToken(board.NewDefault())

	state, err := c.Resolve(PublicPathPrefix + token)
	if err != nil {
		t.Fatal(err)
	}
	if state != StatePublicView {
		t.Fatalf("state = %q, want public_view over live session", state)
	}
	if _, err := c.Board(); !errors.Is(err, ErrNoBoard) {
		t.Error("editable board exposed in public view")
	}
}

func TestResolveBadTokenFallsBack(t *testing.T) {
	c := setup(t)

	state, err := c.Resolve(PublicPathPrefix + "garbage!!!")
	if !errors.Is(err, codec.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
	if state != StateAuthRequired {
		t.Errorf("state = %q, want fallback auth_required", state)
	}

	// With a session present, the fallback resolves to the editor instead.
	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	state, err = c.Resolve(PublicPathPrefix + "still-garbage!!!")
	if !errors.Is(err, codec.ErrInvalidToken) {
		t.Fatalf("err = %v", err)
	}
	if state != StateEditing {
		t.Errorf("state = %q, want editing fallback", state)
	}
}

func TestLoginClearsPublicView(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if err := c.Logout(true); err != nil {
		t.Fatal(err)
	}

	token, _ := codec.EncodeShareToken(board.NewDefault())
	if state, _ := c.Resolve(PublicPathPrefix + token); state != StatePublicView {
		t.Fatal("precondition: public view expected")
	}

	if err := c.Login("a@x.com", "p"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.State() != StateEditing {
		t.Errorf("state = %q, want editing after login", c.State())
	}
	if _, ok := c.PublicBoard(); ok {
		t.Error("public board survived login")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if err := c.Logout(true); err != nil {
		t.Fatal(err)
	}

	if err := c.Login("a@x.com", "wrong"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if c.State() != StateAuthRequired {
		t.Errorf("state = %q after failed login", c.State())
	}
}

func TestLogoutRequiresConfirmation(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if err := c.Logout(false); !errors.Is(err, ErrConfirmRequired) {
		t.Fatalf("err = %v, want ErrConfirmRequired", err)
	}
	if c.State() != StateEditing {
		t.Error("unconfirmed logout changed state")
	}

	if err := c.Logout(true); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateAuthRequired {
		t.Errorf("state = %q after logout", c.State())
	}
}

func TestLogoutKeepsDurableBoard(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	b, err := c.Apply(board.Rename("Persistente"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Logout(true); err != nil {
		t.Fatal(err)
	}

	if err := c.Login("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	got, err := c.Board()
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Persistente" || got.ID != b.ID {
		t.Error("durable board state lost across logout/login")
	}
}

func TestApplySavesEveryMutation(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	b, err := c.Board()
	if err != nil {
		t.Fatal(err)
	}
	sid := b.Sections[0].ID

	if _, err := c.Apply(board.AddItem(sid, "https://example.com/i.png", "meta")); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// A fresh controller over the same stores sees the saved state.
	if _, err := c.Resolve("/"); err != nil {
		t.Fatal(err)
	}
	got, err := c.Board()
	if err != nil {
		t.Fatal(err)
	}
	sec, ok := board.FindSection(got, sid)
	if !ok || len(sec.Items) != 1 {
		t.Error("mutation was not persisted")
	}
}

func TestApplyOutsideEditing(t *testing.T) {
	c := setup(t)

	if _, err := c.Apply(board.Rename("x")); !errors.Is(err, ErrNoBoard) {
		t.Errorf("err = %v, want ErrNoBoard", err)
	}
}

func TestImportBoard(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	existing, _ := c.Board()

	incoming := board.NewDefault()
	incoming.Title = "Importado"
	data, err := codec.EncodeInterchangeFile(incoming)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.ImportBoard(data, false); !errors.Is(err, ErrConfirmRequired) {
		t.Fatalf("unconfirmed import err = %v", err)
	}

	got, err := c.ImportBoard(data, true)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.ID != existing.ID || got.ShareSlug != existing.ShareSlug {
		t.Error("import changed board identity")
	}
	if got.Title != "Importado" {
		t.Errorf("title = %q, want Importado", got.Title)
	}
}

func TestImportBoardRejectsBadFile(t *testing.T) {
	c := setup(t)

	if err := c.Register("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	before, _ := c.Board()

	if _, err := c.ImportBoard([]byte(`{"sections":[]}`), true); !errors.Is(err, codec.ErrInvalidFile) {
		t.Fatalf("err = %v, want ErrInvalidFile", err)
	}
	after, _ := c.Board()
	if after.Title != before.Title {
		t.Error("rejected import changed state")
	}
}
