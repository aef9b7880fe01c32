package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aman7heaven/Personal-portfolio/internal/cache"
	"github.com/aman7heaven/Personal-portfolio/internal/mailer"
	"github.com/aman7heaven/Personal-portfolio/internal/middleware"
	"github.com/aman7heaven/Personal-portfolio/internal/session"
	"github.com/aman7heaven/Personal-portfolio/internal/store"
)

const testSetupKey = "test-setup-key"

// fakeSender records sent messages, optionally failing every send.
type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// testEnv is a running API server over a migrated temporary database. The
// client carries a cookie jar so sessions stick across requests. CSRF and
// rate limiting are left out; they are covered by the middleware tests.
type testEnv struct {
	db     *sql.DB
	srv    *httptest.Server
	client *http.Client
	sender *fakeSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	f, err := os.CreateTemp("", "portfolio-handler-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}
	if err := store.Seed(context.Background(), db, testSetupKey); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	sm := session.New(db, true)
	contentCache := cache.New(cache.Config{DefaultTTL: time.Minute})
	sender := &fakeSender{}

	authHandler := NewAuthHandler(db, sm)
	contentHandler := NewContentHandler(db, contentCache)
	portfolioHandler := NewPortfolioHandler(db)
	contactHandler := NewContactHandler(db, sender, "owner@example.com")
	eventsHandler := NewEventsHandler(db)
	healthHandler := NewHealthHandler(db)

	loadUser := middleware.LoadUser(sm, db)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Get("/site-config", contentHandler.GetSiteConfig)
		r.Get("/hero", contentHandler.GetHero)
		r.Get("/about", contentHandler.GetAbout)
		r.Get("/contact-info", contentHandler.GetContactInfo)
		r.Get("/skill-categories", portfolioHandler.ListSkillCategories)
		r.Get("/skills", portfolioHandler.ListSkills)
		r.Get("/experiences", portfolioHandler.ListExperiences)
		r.Get("/projects", portfolioHandler.ListProjects)

		r.Post("/contact", contactHandler.Submit)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(loadUser).Get("/user", authHandler.CurrentUser)

		r.Route("/admin", func(r chi.Router) {
			r.Use(loadUser)
			r.Use(middleware.RequireAdmin())

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

	srv := httptest.NewServer(r)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("creating cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	t.Cleanup(func() {
		srv.Close()
		contentCache.Close()
		db.Close()
		os.Remove(dbPath)
	})

	return &testEnv{db: db, srv: srv, client: client, sender: sender}
}

// do sends a JSON request through the env client and returns the response.
func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// decode reads and closes the response body into dst.
func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

// registerAdmin creates the bootstrap admin account and leaves its session
// on the env client.
func (e *testEnv) registerAdmin(t *testing.T) {
	t.Helper()

	resp := e.do(t, http.MethodPost, "/api/register", map[string]any{
		"username": "admin",
		"email":    "admin@example.com",
		"password": "secret123",
		"isAdmin":  true,
		"setupKey": testSetupKey,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("registering admin: status %d", resp.StatusCode)
	}
}
