package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/store"
)

type AuthHandler struct {
	ctrl      *controller.Controller
	templates *template.Template
	logger    *slog.Logger
}

func NewAuthHandler(ctrl *controller.Controller, logger *slog.Logger) *AuthHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/auth_*.html"))
	return &AuthHandler{
		ctrl:      ctrl,
		templates: tmpl,
		logger:    logger,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.ctrl.State() == controller.StateEditing {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.templates.ExecuteTemplate(w, "auth_login.html", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Emails are identity keys exactly as entered; only surrounding
	// whitespace is stripped.
	emailAddr := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if emailAddr == "" || password == "" {
		h.templates.ExecuteTemplate(w, "auth_login.html", map[string]any{
			"Email": emailAddr,
			"Error": "Por favor, preencha e-mail e senha.",
		})
		return
	}

	if err := h.ctrl.Login(emailAddr, password); err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			// Same message for unknown account and wrong password.
			h.templates.ExecuteTemplate(w, "auth_login.html", map[string]any{
				"Email": emailAddr,
				"Error": "E-mail ou senha inválidos.",
			})
			return
		}
		h.logger.Error("login", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.ctrl.State() == controller.StateEditing {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.templates.ExecuteTemplate(w, "auth_register.html", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	emailAddr := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if _, err := mail.ParseAddress(emailAddr); err != nil || password == "" {
		h.templates.ExecuteTemplate(w, "auth_register.html", map[string]any{
			"Email": emailAddr,
			"Error": "Por favor, insira um e-mail válido e uma senha.",
		})
		return
	}

	if err := h.ctrl.Register(emailAddr, password); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			h.templates.ExecuteTemplate(w, "auth_register.html", map[string]any{
				"Email": emailAddr,
				"Error": "Este e-mail já está cadastrado.",
			})
			return
		}
		h.logger.Error("register", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout ends the session. The form carries confirm=true once the user has
// acknowledged the prompt; without it nothing happens.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	confirmed := r.FormValue("confirm") == "true"
	if err := h.ctrl.Logout(confirmed); err != nil {
		if errors.Is(err, controller.ErrConfirmRequired) {
			writeError(w, http.StatusBadRequest, "confirmation required")
			return
		}
		h.logger.Error("logout", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
