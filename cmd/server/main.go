package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/saravpatel/foodify/internal/config"
	"github.com/saravpatel/foodify/internal/handlers"
	"github.com/saravpatel/foodify/internal/store"
)

func main() {
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to the document store (one pooled client for the
	// whole process, not one connection per request).
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	if err := db.EnsureIndexes(context.Background()); err != nil {
		slog.Error("Failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	sessionStore.Options.MaxAge = int(cfg.CookieMaxAge.Seconds())
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	templates.AddFunc("priceFmt", func(p float64) string {
		return fmt.Sprintf("%.2f", p)
	})
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	homeHandler := &handlers.HomeHandler{
		Templates:    templates,
		SessionStore: sessionStore,
	}
	accountHandler := &handlers.AccountHandler{
		Accounts:     db,
		SessionStore: sessionStore,
		Templates:    templates,
		SessionTTL:   cfg.SessionTTL,
	}
	menuHandler := &handlers.MenuHandler{
		Menu:         db,
		SessionStore: sessionStore,
		Templates:    templates,
	}

	loginLimiter := handlers.NewRateLimiter(cfg.LoginRPS, cfg.LoginBurst)
	mux := handlers.NewMux(homeHandler, accountHandler, menuHandler, loginLimiter)

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Chain: Logger -> Security Headers -> CORS -> Body Limit -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			handlers.CORSMiddleware(
				handlers.BodyLimitMiddleware(cfg.BodyLimitBytes,
					CSRF(mux),
				),
			),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := db.Close(shutdownCtx); err != nil {
		slog.Error("Failed to disconnect from MongoDB", "error", err)
	}

	slog.Info("Server exited gracefully.")
}
