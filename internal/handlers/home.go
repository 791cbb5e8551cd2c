package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type HomeHandler struct {
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// Index renders the landing view with its login form.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderHome(h.Templates, h.SessionStore, w, r, nil)
}

// RegisterForm renders the blank registration form.
func (h *HomeHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
	}
	render(h.Templates, w, "registration.html", data)
}

func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("This is About Page."))
}
