package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/vborges/futura/internal/board"
	"github.com/vborges/futura/internal/codec"
	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/theme"
)

type ShareHandler struct {
	ctrl      *controller.Controller
	templates *template.Template
	logger    *slog.Logger
}

func NewShareHandler(ctrl *controller.Controller, logger *slog.Logger) *ShareHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/public_*.html"))
	return &ShareHandler{
		ctrl:      ctrl,
		templates: tmpl,
		logger:    logger,
	}
}

type sharingRequest struct {
	IsPublic bool `json:"isPublic"`
}

type shareLinkResponse struct {
	IsPublic bool   `json:"isPublic"`
	Slug     string `json:"shareSlug"`
	URL      string `json:"url,omitempty"`
}

// SetSharing toggles the board's public flag and, when public, returns the
// share link. The link embeds the whole board, so anyone holding it sees the
// board exactly as it was when the link was made.
func (h *ShareHandler) SetSharing(w http.ResponseWriter, r *http.Request) {
	var req sharingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	b, err := h.ctrl.Apply(board.SetPublic(req.IsPublic))
	if err != nil {
		if errors.Is(err, controller.ErrNoBoard) {
			writeError(w, http.StatusUnauthorized, "no board loaded")
			return
		}
		h.logger.Error("set sharing", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save board")
		return
	}

	resp := shareLinkResponse{IsPublic: b.IsPublic, Slug: b.ShareSlug}
	if b.IsPublic {
		token, err := codec.EncodeShareToken(b)
		if err != nil {
			h.logger.Error("encode share token", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to build share link")
			return
		}
		resp.URL = controller.PublicPathPrefix + token
	}
	writeJSON(w, http.StatusOK, resp)
}

// Link returns the current share link without changing the sharing flag.
func (h *ShareHandler) Link(w http.ResponseWriter, r *http.Request) {
	b, err := h.ctrl.Board()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no board loaded")
		return
	}

	resp := shareLinkResponse{IsPublic: b.IsPublic, Slug: b.ShareSlug}
	if b.IsPublic {
		token, err := codec.EncodeShareToken(b)
		if err != nil {
			h.logger.Error("encode share token", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to build share link")
			return
		}
		resp.URL = controller.PublicPathPrefix + token
	}
	writeJSON(w, http.StatusOK, resp)
}

// PublicPage renders a shared board read-only. The token carries the board
// itself; nothing is read from storage. A bad token falls back to whatever
// view the session would show.
func (h *ShareHandler) PublicPage(w http.ResponseWriter, r *http.Request) {
	state, err := h.ctrl.Resolve(r.URL.Path)
	if err != nil {
		if errors.Is(err, codec.ErrInvalidToken) {
			h.logger.Warn("invalid share link", "path", r.URL.Path)
			if state == controller.StateEditing {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger.Error("resolve share link", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	b, ok := h.ctrl.PublicBoard()
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.templates.ExecuteTemplate(w, "public_board.html", map[string]any{
		"Board": b,
		"Theme": theme.Lookup(b.ThemeID),
	})
}
