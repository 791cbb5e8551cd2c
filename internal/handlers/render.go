package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/saravpatel/foodify/internal/validate"
	"github.com/saravpatel/foodify/internal/weberr"
)

func render(tc *TemplateCache, w http.ResponseWriter, name string, data map[string]interface{}) {
	tmpl := tc.Get(name)
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("Failed to render template", "name", name, "error", err)
	}
}

// renderHome renders the landing view, the fallback for every guard
// rejection and internal failure. The error list mirrors what the forms
// show: {field, message} pairs.
func renderHome(tc *TemplateCache, ss *sessions.CookieStore, w http.ResponseWriter, r *http.Request, errs []validate.FieldError) {
	session, _ := ss.Get(r, SessionName)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"Errors":    errs,
	}
	session.Save(r, w)
	render(tc, w, "home.html", data)
}

// fail logs the classified error and renders home with only its generic
// message. Internals never leak: the wrapped cause stays in the log.
func fail(tc *TemplateCache, ss *sessions.CookieStore, w http.ResponseWriter, r *http.Request, werr *weberr.Error) {
	if werr.Kind == weberr.Internal {
		slog.Error("request failed", "kind", werr.Kind.String(), "path", r.URL.Path, "error", werr)
	} else {
		slog.Warn("request rejected", "kind", werr.Kind.String(), "path", r.URL.Path, "error", werr)
	}
	renderHome(tc, ss, w, r, []validate.FieldError{{Field: "email", Message: werr.Message}})
}
