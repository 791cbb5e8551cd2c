package handlers

import "net/http"

// NewMux wires the full routing table. Owner-scoped routes run the
// session guard inside their handlers, keyed strictly on the {id} path
// parameter; /{id}/logout is unguarded and idempotent.
func NewMux(home *HomeHandler, account *AccountHandler, menu *MenuHandler, loginLimiter *RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /{$}", home.Index)
	mux.HandleFunc("GET /register", home.RegisterForm)
	mux.HandleFunc("POST /register", loginLimiter.Middleware(account.Register))
	mux.HandleFunc("POST /login", loginLimiter.Middleware(account.Login))
	mux.HandleFunc("GET /about", home.About)
	mux.HandleFunc("GET /{id}/logout", account.Logout)

	// Owner-scoped routes (guarded)
	mux.HandleFunc("GET /{id}/dashboard", account.Dashboard)
	mux.HandleFunc("GET /{id}/menu", menu.List)
	mux.HandleFunc("GET /{id}/menu/item", menu.AddItemForm)
	mux.HandleFunc("POST /{id}/menu/item", menu.CreateItem)
	mux.HandleFunc("GET /{id}/menu/item/{itemId}/edit", menu.EditItemForm)
	mux.HandleFunc("POST /{id}/menu/item/{itemId}/edit", menu.UpdateItem)
	mux.HandleFunc("GET /{id}/menu/item/{itemId}/delete", menu.DeleteItem)

	return mux
}
