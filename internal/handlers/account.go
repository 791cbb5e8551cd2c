package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saravpatel/foodify/internal/auth"
	"github.com/saravpatel/foodify/internal/models"
	"github.com/saravpatel/foodify/internal/store"
	"github.com/saravpatel/foodify/internal/validate"
	"github.com/saravpatel/foodify/internal/weberr"
)

const (
	msgInvalidCredentials = "Invalid Credentials!!!"
	msgSomethingWrong     = "Something went wrong!!!"
	msgEmailRegistered    = "Email already registered!!!"
)

// AccountStore is the slice of the store the account handlers need.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type AccountHandler struct {
	Accounts     AccountStore
	SessionStore *sessions.CookieStore
	Templates    *TemplateCache
	SessionTTL   time.Duration
}

// Register creates an account from the registration form.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Validation, msgSomethingWrong, err))
		return
	}

	form := validate.Registration{
		Name:            r.FormValue("name"),
		Address:         r.FormValue("address"),
		Mobile:          r.FormValue("mobile"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		PasswordConfirm: r.FormValue("password_confirm"),
	}
	if errs := form.Check(); len(errs) > 0 {
		h.renderRegistration(w, r, errs)
		return
	}

	exists, err := h.Accounts.EmailExists(r.Context(), form.Email)
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	if exists {
		h.renderRegistration(w, r, []validate.FieldError{{Field: "email", Message: msgEmailRegistered}})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	account := &models.Account{
		ID:          primitive.NewObjectID(),
		Email:       form.Email,
		Password:    hash,
		Name:        form.Name,
		Address:     form.Address,
		Mobile:      form.Mobile,
		Description: r.FormValue("description"),
		Cuisine:     r.FormValue("cuisine"),
		CreatedAt:   time.Now(),
	}
	if err := h.Accounts.CreateAccount(r.Context(), account); err != nil {
		// The unique index closes the check-then-insert race.
		if errors.Is(err, store.ErrDuplicateEmail) {
			h.renderRegistration(w, r, []validate.FieldError{{Field: "email", Message: msgEmailRegistered}})
			return
		}
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}

	session, _ := h.SessionStore.Get(r, SessionName)
	session.AddFlash(FlashMessage{Type: "success", Message: "Registration successful!!! Please log in."})
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AccountHandler) renderRegistration(w http.ResponseWriter, r *http.Request, errs []validate.FieldError) {
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Errors":    errs,
		"Values":    r.Form, // Pre-fill form on error
	}
	render(h.Templates, w, "registration.html", data)
}

// Login authenticates an owner and stores the session identity the
// guard consumes. Wrong credentials and unknown emails render the same
// message; only internal failures say something went wrong.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Validation, msgSomethingWrong, err))
		return
	}

	form := validate.Login{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if errs := form.Check(); len(errs) > 0 {
		renderHome(h.Templates, h.SessionStore, w, r, errs)
		return
	}

	account, err := h.Accounts.GetAccountByEmail(r.Context(), form.Email)
	if errors.Is(err, store.ErrNotFound) {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Unauthorized, msgInvalidCredentials, err))
		return
	}
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}
	if !auth.CheckPassword(account.Password, form.Password) {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Unauthorized, msgInvalidCredentials, nil))
		return
	}

	ident := auth.Identity{
		AccountID: account.ID.Hex(),
		Name:      account.Name,
		ExpiresAt: time.Now().Add(h.SessionTTL).Unix(),
	}
	if err := saveIdentity(h.SessionStore, w, r, ident); err != nil {
		slog.Error("Failed to save session", "error", err)
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Internal, msgSomethingWrong, err))
		return
	}

	slog.Info("Login successful", "account_id", ident.AccountID)
	http.Redirect(w, r, "/"+ident.AccountID+"/dashboard", http.StatusSeeOther)
}

// Logout drops the caller's entire session and renders home. The route
// is idempotent and deliberately unguarded: logging out an expired or
// absent session is a no-op, not an error.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSession(h.SessionStore, w, r)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   []FlashMessage{{Type: "success", Message: "Logged out successfully!"}},
	}
	render(h.Templates, w, "home.html", data)
}

// Dashboard renders the owner's landing page after the guard clears it.
func (h *AccountHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	authCtx, err := authorize(h.SessionStore, r)
	if err != nil {
		fail(h.Templates, h.SessionStore, w, r, weberr.E(weberr.Unauthorized, auth.RejectionMessage, err))
		return
	}
	data := map[string]interface{}{
		"ID":   authCtx.OwnerID,
		"Name": authCtx.Name,
	}
	render(h.Templates, w, "dashboard.html", data)
}
