package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vborges/futura/internal/codec"
	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/websocket"
)

// maxImportSize bounds uploaded board files. Boards embed images as data
// URLs, so files run large.
const maxImportSize = 32 << 20

type TransferHandler struct {
	ctrl   *controller.Controller
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewTransferHandler(ctrl *controller.Controller, hub *websocket.Hub, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{ctrl: ctrl, hub: hub, logger: logger}
}

// Export downloads the current board as a JSON file named after its title.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	b, err := h.ctrl.Board()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no board loaded")
		return
	}

	data, err := codec.EncodeInterchangeFile(b)
	if err != nil {
		h.logger.Error("encode export", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export board")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", codec.ExportFilename(b.Title)))
	w.Write(data)
}

// Import replaces the board's content with an uploaded file. The current
// board is overwritten, so the request must carry confirm=true; the board's
// id and share slug survive the import.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	b, err := h.ctrl.ImportBoard(data, confirmed)
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrConfirmRequired):
			writeError(w, http.StatusBadRequest, "confirmation required")
		case errors.Is(err, controller.ErrNoBoard):
			writeError(w, http.StatusUnauthorized, "no board loaded")
		case errors.Is(err, codec.ErrInvalidFile):
			writeError(w, http.StatusUnprocessableEntity, "not a valid board file")
		default:
			h.logger.Error("import board", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to import board")
		}
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(websocket.NewMessage("board", "replaced", b.ID, nil))
	}
	writeJSON(w, http.StatusOK, b)
}
