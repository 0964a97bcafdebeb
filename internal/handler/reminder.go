package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/model"
	"github.com/vborges/futura/internal/reminder"
	"github.com/vborges/futura/internal/store"
)

type ReminderHandler struct {
	ctrl      *controller.Controller
	reminders *store.ReminderStore
	sender    reminder.Sender
	logger    *slog.Logger
}

func NewReminderHandler(ctrl *controller.Controller, reminders *store.ReminderStore, sender reminder.Sender, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		ctrl:      ctrl,
		reminders: reminders,
		sender:    sender,
		logger:    logger,
	}
}

func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := h.ctrl.Email()
	if account == "" {
		writeError(w, http.StatusUnauthorized, "no session")
		return
	}

	settings, err := h.reminders.Get(account)
	if err != nil {
		h.logger.Error("get reminder settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type reminderResponse struct {
	model.ReminderSettings
	TestSent bool `json:"testSent"`
}

// Save stores the settings wholesale. Activating reminders fires an
// immediate sample email so the user sees what will arrive each month; a
// board with no images saves fine but sends nothing.
func (h *ReminderHandler) Save(w http.ResponseWriter, r *http.Request) {
	account := h.ctrl.Email()
	if account == "" {
		writeError(w, http.StatusUnauthorized, "no session")
		return
	}

	var settings model.ReminderSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	settings.Email = strings.TrimSpace(settings.Email)
	if settings.Active {
		if _, err := mail.ParseAddress(settings.Email); err != nil {
			writeError(w, http.StatusBadRequest, "a valid destination email is required to activate reminders")
			return
		}
		if !h.sender.Configured() {
			writeError(w, http.StatusConflict, "email delivery is not configured on this server")
			return
		}
	}

	if err := h.reminders.Save(account, settings); err != nil {
		h.logger.Error("save reminder settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	resp := reminderResponse{ReminderSettings: settings}
	if settings.Active {
		if b, err := h.ctrl.Board(); err == nil {
			if section, verse, ok := reminder.PickInspiration(b); ok {
				if err := h.sender.Send(r.Context(), settings.Email, reminder.Subject, reminder.ComposeHTML(section, verse)); err != nil {
					h.logger.Error("send test reminder", "error", err)
				} else {
					resp.TestSent = true
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
