package handler

import (
	"html/template"
	"log/slog"
	"math/rand"
	"net/http"

	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/reminder"
	"github.com/vborges/futura/internal/theme"
)

type PageHandler struct {
	ctrl      *controller.Controller
	templates *template.Template
	logger    *slog.Logger
}

func NewPageHandler(ctrl *controller.Controller, logger *slog.Logger) *PageHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/board*.html"))
	return &PageHandler{
		ctrl:      ctrl,
		templates: tmpl,
		logger:    logger,
	}
}

// Editor renders the board editing page.
func (h *PageHandler) Editor(w http.ResponseWriter, r *http.Request) {
	b, err := h.ctrl.Board()
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	verses := reminder.Verses()
	data := map[string]any{
		"Board":  b,
		"Email":  h.ctrl.Email(),
		"Theme":  theme.Lookup(b.ThemeID),
		"Themes": theme.All(),
		"Verse":  verses[rand.Intn(len(verses))],
	}
	if err := h.templates.ExecuteTemplate(w, "board.html", data); err != nil {
		h.logger.Error("render editor", "error", err)
	}
}
