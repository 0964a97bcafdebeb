package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vborges/futura/internal/imagegen"
)

type ImageHandler struct {
	images *imagegen.Client
	logger *slog.Logger
}

func NewImageHandler(images *imagegen.Client, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{images: images, logger: logger}
}

type imageRequest struct {
	Prompt    string `json:"prompt"`
	BaseImage string `json:"baseImage,omitempty"`
	MimeType  string `json:"mimeType,omitempty"`
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Generate produces an image from a prompt. A request carrying a base image
// edits that image instead of generating from scratch.
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !h.images.Configured() {
		writeError(w, http.StatusConflict, "image generation is not configured on this server")
		return
	}

	var req imageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	var url string
	var err error
	if req.BaseImage != "" {
		mime := req.MimeType
		if mime == "" {
			mime = "image/png"
		}
		url, err = h.images.Edit(r.Context(), req.Prompt, req.BaseImage, mime)
	} else {
		url, err = h.images.Generate(r.Context(), req.Prompt)
	}
	if err != nil {
		if errors.Is(err, imagegen.ErrNoImage) {
			writeError(w, http.StatusBadGateway, "the model returned no image for this prompt")
			return
		}
		h.logger.Error("image generation", "error", err)
		writeError(w, http.StatusBadGateway, "image generation failed")
		return
	}

	writeJSON(w, http.StatusOK, imageResponse{ImageURL: url})
}
