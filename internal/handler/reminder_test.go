package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vborges/futura/internal/board"
	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/database"
	"github.com/vborges/futura/internal/store"
)

type stubSender struct {
	configured bool
	sent       []string
}

func (s *stubSender) Send(ctx context.Context, to, subject, html string) error {
	s.sent = append(s.sent, to)
	return nil
}

func (s *stubSender) Configured() bool { return s.configured }

func setupReminder(t *testing.T, sender *stubSender) (*controller.Controller, *ReminderHandler) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rs := store.NewRecordStore(db)
	logger := slog.Default()
	ctrl := controller.New(
		store.NewIdentityStore(rs, logger),
		store.NewBoardStore(rs, logger),
		logger,
	)
	if err := ctrl.Register("a@x.com", "pw"); err != nil {
		t.Fatal(err)
	}
	h := NewReminderHandler(ctrl, store.NewReminderStore(rs, db), sender, logger)
	return ctrl, h
}

func TestReminderGetDefaults(t *testing.T) {
	_, h := setupReminder(t, &stubSender{configured: true})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/reminders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var settings struct {
		Active bool   `json:"active"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatal(err)
	}
	if settings.Active {
		t.Error("reminders active by default")
	}
}

func TestReminderSaveActivateValidatesEmail(t *testing.T) {
	_, h := setupReminder(t, &stubSender{configured: true})

	req := httptest.NewRequest("PUT", "/api/reminders", strings.NewReader(`{"active":true,"email":"not-an-address"}`))
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad address status = %d, want 400", rec.Code)
	}
}

func TestReminderSaveActivateNeedsSender(t *testing.T) {
	_, h := setupReminder(t, &stubSender{configured: false})

	req := httptest.NewRequest("PUT", "/api/reminders", strings.NewReader(`{"active":true,"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("unconfigured sender status = %d, want 409", rec.Code)
	}
}

func TestReminderSaveSendsSample(t *testing.T) {
	sender := &stubSender{configured: true}
	ctrl, h := setupReminder(t, sender)

	// A sample needs at least one image on the board.
	b, _ := ctrl.Board()
	if _, err := ctrl.Apply(board.AddItem(b.Sections[0].ID, "https://example.com/i.png", "meta")); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("PUT", "/api/reminders", strings.NewReader(`{"active":true,"email":"dest@x.com"}`))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Active   bool `json:"active"`
		TestSent bool `json:"testSent"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.TestSent {
		t.Error("testSent = false")
	}
	if len(sender.sent) != 1 || sender.sent[0] != "dest@x.com" {
		t.Errorf("sent = %v", sender.sent)
	}
}

func TestReminderSaveEmptyBoardSkipsSample(t *testing.T) {
	sender := &stubSender{configured: true}
	_, h := setupReminder(t, sender)

	req := httptest.NewRequest("PUT", "/api/reminders", strings.NewReader(`{"active":true,"email":"dest@x.com"}`))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		TestSent bool `json:"testSent"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TestSent || len(sender.sent) != 0 {
		t.Error("sample sent from a board with no images")
	}
}

func TestReminderDeactivateAlwaysSaves(t *testing.T) {
	sender := &stubSender{configured: false}
	_, h := setupReminder(t, sender)

	req := httptest.NewRequest("PUT", "/api/reminders", strings.NewReader(`{"active":false,"email":""}`))
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("deactivate status = %d, want 200", rec.Code)
	}
}
