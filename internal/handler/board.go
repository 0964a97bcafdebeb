package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vborges/futura/internal/board"
	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/model"
	"github.com/vborges/futura/internal/theme"
	"github.com/vborges/futura/internal/websocket"
)

// maxItemsPerSection caps how many images one section holds. The editing
// surface rejects the overflow; the stored model itself is unbounded so
// imports and share links round-trip larger sections unharmed.
const maxItemsPerSection = 3

type BoardHandler struct {
	ctrl   *controller.Controller
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewBoardHandler(ctrl *controller.Controller, hub *websocket.Hub, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{ctrl: ctrl, hub: hub, logger: logger}
}

func (h *BoardHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// apply runs a mutation and writes the updated board, translating
// controller errors to statuses.
func (h *BoardHandler) apply(w http.ResponseWriter, m board.Mutation) (model.Board, bool) {
	b, err := h.ctrl.Apply(m)
	if err != nil {
		if errors.Is(err, controller.ErrNoBoard) {
			writeError(w, http.StatusUnauthorized, "no board loaded")
			return model.Board{}, false
		}
		h.logger.Error("apply mutation", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save board")
		return model.Board{}, false
	}
	return b, true
}

func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.ctrl.Board()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no board loaded")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type titleRequest struct {
	Title string `json:"title"`
}

func (h *BoardHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	b, ok := h.apply(w, board.Rename(req.Title))
	if !ok {
		return
	}
	h.broadcast(websocket.NewMessage("board", "renamed", b.ID, nil))
	writeJSON(w, http.StatusOK, b)
}

type themeRequest struct {
	ThemeID string `json:"themeId"`
}

func (h *BoardHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !theme.Valid(req.ThemeID) {
		writeError(w, http.StatusBadRequest, "unknown theme")
		return
	}

	b, ok := h.apply(w, board.SetTheme(req.ThemeID))
	if !ok {
		return
	}
	h.broadcast(websocket.NewMessage("board", "theme_changed", b.ID, map[string]any{"themeId": req.ThemeID}))
	writeJSON(w, http.StatusOK, b)
}

type sectionRequest struct {
	Name string `json:"name"`
}

func (h *BoardHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	b, ok := h.apply(w, board.AddSection(req.Name))
	if !ok {
		return
	}
	added := b.Sections[len(b.Sections)-1]
	h.broadcast(websocket.NewMessage("section", "added", added.ID, nil))
	writeJSON(w, http.StatusCreated, b)
}

func (h *BoardHandler) RenameSection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	if !h.sectionExists(w, sectionID) {
		return
	}

	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	b, ok := h.apply(w, board.RenameSection(sectionID, req.Name))
	if !ok {
		return
	}
	h.broadcast(websocket.NewMessage("section", "renamed", sectionID, nil))
	writeJSON(w, http.StatusOK, b)
}

func (h *BoardHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	if !h.sectionExists(w, sectionID) {
		return
	}

	b, ok := h.apply(w, board.RemoveSection(sectionID))
	if !ok {
		return
	}
	h.broadcast(websocket.NewMessage("section", "removed", sectionID, nil))
	writeJSON(w, http.StatusOK, b)
}

type itemRequest struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
}

func (h *BoardHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	if !h.sectionExists(w, sectionID) {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		writeError(w, http.StatusBadRequest, "imageUrl is required")
		return
	}

	// The cap is checked inside the mutation, under the same lock as the
	// append, so racing requests cannot overfill the section.
	added := false
	b, ok := h.apply(w, board.AddItemCapped(sectionID, req.ImageURL, req.Caption, maxItemsPerSection, &added))
	if !ok {
		return
	}
	if !added {
		writeError(w, http.StatusUnprocessableEntity, "section is full")
		return
	}
	sec, _ := board.FindSection(b, sectionID)
	item := sec.Items[len(sec.Items)-1]
	h.broadcast(websocket.NewMessage("item", "added", item.ID, map[string]any{"sectionId": sectionID}))
	writeJSON(w, http.StatusCreated, b)
}

type captionRequest struct {
	Caption string `json:"caption"`
}

func (h *BoardHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	itemID := r.PathValue("item_id")
	if !h.itemExists(w, sectionID, itemID) {
		return
	}

	var req captionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	b, ok := h.apply(w, board.UpdateItemCaption(sectionID, itemID, req.Caption))
	if !ok {
		return
	}
	h.broadcast(websocket.NewMessage("item", "updated", itemID, map[string]any{"sectionId": sectionID}))
	writeJSON(w, http.StatusOK, b)
}

func (h *BoardHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	itemID := r.PathValue("item_id")
	if !h.itemExists(w, sectionID, itemID) {
		return
	}

	b, ok := h.apply(w, board.RemoveItem(sectionID, itemID))
	if !ok {
		return
	}
	h.broadcast(websocket.NewMessage("item", "removed", itemID, map[string]any{"sectionId": sectionID}))
	writeJSON(w, http.StatusOK, b)
}

// Themes lists the available board themes.
func (h *BoardHandler) Themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, theme.All())
}

// Presets lists the starter board templates.
func (h *BoardHandler) Presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, board.Presets())
}

// ApplyPreset replaces the current board's content with a template. The
// request carries confirm=true because the current content is overwritten.
func (h *BoardHandler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	presetID := r.PathValue("id")

	var tmpl model.Board
	found := false
	for _, p := range board.Presets() {
		if p.ID == presetID {
			tmpl = p
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "preset not found")
		return
	}

	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !req.Confirm {
		writeError(w, http.StatusBadRequest, "confirmation required")
		return
	}

	b, ok := h.apply(w, board.ApplyTemplate(tmpl))
	if !ok {
		return
	}
	h.broadcast(websocket.NewMessage("board", "replaced", b.ID, nil))
	writeJSON(w, http.StatusOK, b)
}

func (h *BoardHandler) sectionExists(w http.ResponseWriter, sectionID string) bool {
	b, err := h.ctrl.Board()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no board loaded")
		return false
	}
	if _, found := board.FindSection(b, sectionID); !found {
		writeError(w, http.StatusNotFound, "section not found")
		return false
	}
	return true
}

func (h *BoardHandler) itemExists(w http.ResponseWriter, sectionID, itemID string) bool {
	b, err := h.ctrl.Board()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no board loaded")
		return false
	}
	sec, found := board.FindSection(b, sectionID)
	if !found {
		writeError(w, http.StatusNotFound, "section not found")
		return false
	}
	for _, it := range sec.Items {
		if it.ID == itemID {
			return true
		}
	}
	writeError(w, http.StatusNotFound, "item not found")
	return false
}
