package middleware

import (
	"net/http"
	"strings"

	"github.com/vborges/futura/internal/controller"
)

// RequireSession gates editor routes on a live session. The app runs a
// single process-wide session, so the check is against the controller
// state rather than a per-request cookie. A request arriving outside the
// editing state re-resolves against the durable session first: navigating
// away from a share link must return a logged-in account to its editor,
// not strand it on the public view.
func RequireSession(ctrl *controller.Controller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ctrl.State() != controller.StateEditing {
				state, err := ctrl.Resolve(r.URL.Path)
				if err != nil || state != controller.StateEditing {
					redirectToLogin(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// wantsJSON distinguishes API calls from page navigations so the former get
// a 401 instead of a redirect their fetch client would silently follow.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
