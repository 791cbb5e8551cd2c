package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saravpatel/foodify/internal/auth"
	"github.com/saravpatel/foodify/internal/models"
	"github.com/saravpatel/foodify/internal/store"
)

// newTestTemplates builds a cache of terse inline templates so tests
// can assert on rendered output without the real HTML.
func newTestTemplates() *TemplateCache {
	tc := NewTemplateCache()
	tc.funcs["priceFmt"] = func(p float64) string { return fmt.Sprintf("%.2f", p) }
	parse := func(name, text string) {
		tc.cache[name] = template.Must(template.New(name).Funcs(tc.funcs).Parse(text))
	}
	parse("home.html", `home{{range .Errors}}[{{.Field}}:{{.Message}}]{{end}}{{range .Flashes}}({{.Message}}){{end}}`)
	parse("registration.html", `registration{{range .Errors}}[{{.Field}}:{{.Message}}]{{end}}`)
	parse("dashboard.html", `dashboard:{{.ID}}:{{.Name}}`)
	parse("menu.html", `menu:{{.ID}}:{{.Name}}{{range .Menu}}{item {{.ID.Hex}} {{.Name}} {{priceFmt .Price}} {{.IsAvailable}}}{{end}}`)
	parse("add-item.html", `add-item:{{.ID}}{{range .Errors}}[{{.Field}}:{{.Message}}]{{end}}`)
	parse("edit-item.html", `edit-item:{{.ID}}:{{.ItemID}}:{{.Item.Name}}`)
	return tc
}

type fakeAccountStore struct {
	byEmail map[string]*models.Account
	err     error
}

func (f *fakeAccountStore) CreateAccount(_ context.Context, account *models.Account) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byEmail[account.Email]; ok {
		return store.ErrDuplicateEmail
	}
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountStore) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	account, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccountStore) EmailExists(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

type fakeMenuStore struct {
	items map[primitive.ObjectID]*models.MenuItem
	err   error
}

func (f *fakeMenuStore) CreateItem(_ context.Context, item *models.MenuItem) error {
	if f.err != nil {
		return f.err
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuStore) ListItemsByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var items []models.MenuItem
	for _, item := range f.items {
		if item.RestaurantID == ownerID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeMenuStore) GetItem(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return item, nil
}

func (f *fakeMenuStore) UpdateItem(_ context.Context, item *models.MenuItem) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.items[item.ID]
	if !ok {
		return store.ErrNotFound
	}
	existing.Name = item.Name
	existing.Description = item.Description
	existing.Price = item.Price
	existing.IsAvailable = item.IsAvailable
	return nil
}

func (f *fakeMenuStore) DeleteItem(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.items, id)
	return nil
}

type testApp struct {
	accounts *fakeAccountStore
	menu     *fakeMenuStore
	sessions *sessions.CookieStore
	mux      *http.ServeMux
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	tc := newTestTemplates()
	ss := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	accounts := &fakeAccountStore{byEmail: map[string]*models.Account{}}
	menu := &fakeMenuStore{items: map[primitive.ObjectID]*models.MenuItem{}}

	home := &HomeHandler{Templates: tc, SessionStore: ss}
	account := &AccountHandler{Accounts: accounts, SessionStore: ss, Templates: tc, SessionTTL: time.Hour}
	menuHandler := &MenuHandler{Menu: menu, SessionStore: ss, Templates: tc}

	return &testApp{
		accounts: accounts,
		menu:     menu,
		sessions: ss,
		mux:      NewMux(home, account, menuHandler, NewRateLimiter(1000, 1000)),
	}
}

func (app *testApp) seedAccount(t *testing.T, email, password, name string) *models.Account {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	account := &models.Account{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: hash,
		Name:     name,
	}
	app.accounts.byEmail[email] = account
	return account
}

func (app *testApp) postForm(path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.mux.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.mux.ServeHTTP(rec, req)
	return rec
}

// login authenticates and returns the session cookies a browser would
// carry into subsequent requests.
func (app *testApp) login(t *testing.T, email, password string) []*http.Cookie {
	t.Helper()
	rec := app.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code, "login did not redirect: %s", rec.Body.String())
	return rec.Result().Cookies()
}

// sessionCookies fabricates a session carrying ident, for cases a real
// login cannot produce (expired or mismatched identities).
func (app *testApp) sessionCookies(t *testing.T, ident auth.Identity) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	session, _ := app.sessions.Get(req, SessionName)
	session.Values[identityKey] = ident
	require.NoError(t, session.Save(req, rec))
	return rec.Result().Cookies()
}
