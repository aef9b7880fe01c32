package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/aman7heaven/Personal-portfolio/internal/cache"
	"github.com/aman7heaven/Personal-portfolio/internal/config"
	"github.com/aman7heaven/Personal-portfolio/internal/handler"
	"github.com/aman7heaven/Personal-portfolio/internal/logging"
	"github.com/aman7heaven/Personal-portfolio/internal/mailer"
	"github.com/aman7heaven/Personal-portfolio/internal/middleware"
	"github.com/aman7heaven/Personal-portfolio/internal/scheduler"
	"github.com/aman7heaven/Personal-portfolio/internal/session"
	"github.com/aman7heaven/Personal-portfolio/internal/store"
	"github.com/aman7heaven/Personal-portfolio/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "portfolio - personal portfolio backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SESSION_SECRET  Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_DB_PATH         SQLite database path (default: ./data/portfolio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SETUP_KEY       Admin setup key (generated on first run when unset)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_REDIS_URL       Redis URL for the content cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SMTP_HOST       SMTP host for contact notifications (optional)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("portfolio %s\n", version.String())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to mirror WARN and ERROR records into the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.SetupKey); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized", "secure_cookies", !cfg.IsDevelopment())

	contentCache := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
	})
	defer func() {
		if err := contentCache.Close(); err != nil {
			slog.Error("error closing content cache", "error", err)
		}
	}()

	var sender mailer.Sender
	if cfg.MailEnabled() {
		smtp, err := mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			return fmt.Errorf("initializing mailer: %w", err)
		}
		sender = smtp
		slog.Info("contact notifications enabled", "smtp_host", cfg.SMTPHost, "owner", cfg.OwnerEmail)
	} else {
		slog.Info("contact notifications disabled, SMTP not configured")
	}

	sched := scheduler.New(db, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, sessionManager)
	contentHandler := handler.NewContentHandler(db, contentCache)
	portfolioHandler := handler.NewPortfolioHandler(db)
	contactHandler := handler.NewContactHandler(db, sender, cfg.OwnerEmail)
	eventsHandler := handler.NewEventsHandler(db)
	healthHandler := handler.NewHealthHandler(db)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))
	loadUser := middleware.LoadUser(sessionManager, db)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(sessionManager.LoadAndSave)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		// Public site content
		r.Get("/site-config", contentHandler.GetSiteConfig)
		r.Get("/hero", contentHandler.GetHero)
		r.Get("/about", contentHandler.GetAbout)
		r.Get("/contact-info", contentHandler.GetContactInfo)
		r.Get("/skill-categories", portfolioHandler.ListSkillCategories)
		r.Get("/skills", portfolioHandler.ListSkills)
		r.Get("/experiences", portfolioHandler.ListExperiences)
		r.Get("/projects", portfolioHandler.ListProjects)

		// Contact form, rate limited per IP
		r.With(middleware.RateLimitByIP(0.2, 3)).Post("/contact", contactHandler.Submit)

		// Auth routes, rate limited and CSRF protected
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(1, 5))
			r.Use(csrfMiddleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		r.With(loadUser).Get("/user", authHandler.CurrentUser)

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(loadUser)
			r.Use(middleware.RequireAdmin())
			r.Use(csrfMiddleware)

			r.Patch("/site-config", contentHandler.UpdateSiteConfig)
			r.Patch("/hero", contentHandler.UpdateHero)
			r.Patch("/about", contentHandler.UpdateAbout)
			r.Patch("/contact-info", contentHandler.UpdateContactInfo)

			r.Post("/skill-categories", portfolioHandler.CreateSkillCategory)
			r.Patch("/skill-categories/{id}", portfolioHandler.UpdateSkillCategory)
			r.Delete("/skill-categories/{id}", portfolioHandler.DeleteSkillCategory)

			r.Post("/skills", portfolioHandler.CreateSkill)
			r.Patch("/skills/{id}", portfolioHandler.UpdateSkill)
			r.Delete("/skills/{id}", portfolioHandler.DeleteSkill)

			r.Post("/experiences", portfolioHandler.CreateExperience)
			r.Patch("/experiences/{id}", portfolioHandler.UpdateExperience)
			r.Delete("/experiences/{id}", portfolioHandler.DeleteExperience)

			r.Post("/projects", portfolioHandler.CreateProject)
			r.Patch("/projects/{id}", portfolioHandler.UpdateProject)
			r.Delete("/projects/{id}", portfolioHandler.DeleteProject)

			r.Get("/events", eventsHandler.ListEvents)

			r.Get("/contact-messages", contactHandler.ListMessages)
			r.Get("/contact-messages/unread-count", contactHandler.UnreadCount)
			r.Patch("/contact-messages/{id}/read", contactHandler.MarkRead)
			r.Delete("/contact-messages/{id}", contactHandler.DeleteMessage)
		})
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", version.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
