package handler

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/aman7heaven/Personal-portfolio/internal/auth"
	"github.com/aman7heaven/Personal-portfolio/internal/middleware"
	"github.com/aman7heaven/Personal-portfolio/internal/store"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// AuthHandler handles registration, login, logout, and identity routes.
type AuthHandler struct {
	db             *sql.DB
	queries        *store.Queries
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		db:             db,
		queries:        store.New(db),
		sessionManager: sm,
	}
}

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
	SetupKey string `json:"setupKey"`
}

func (in *registerInput) validate() map[string]string {
	details := make(map[string]string)

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" {
		details["username"] = "username is required"
	}
	if in.Email == "" {
		details["email"] = "email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		details["email"] = "email is not a valid address"
	}
	if len(in.Password) < minPasswordLength {
		details["password"] = "password must be at least 6 characters"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// Register handles POST /api/register. The first account on a fresh
// deployment must be an administrator created with the setup key; once an
// admin exists, regular registrations are open and admin registrations
// still require the current setup key. Successful registration logs the
// new user in immediately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if details := in.validate(); details != nil {
		WriteValidationError(w, details)
		return
	}

	ctx := r.Context()

	if _, err := h.queries.GetUserByUsername(ctx, in.Username); err == nil {
		WriteError(w, http.StatusBadRequest, "conflict", "Username already exists", nil)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		WriteInternalError(w, "checking username", err)
		return
	}
	if _, err := h.queries.GetUserByEmail(ctx, in.Email); err == nil {
		WriteError(w, http.StatusBadRequest, "conflict", "Email already exists", nil)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		WriteInternalError(w, "checking email", err)
		return
	}

	if in.IsAdmin {
		cfg, err := h.queries.GetSiteConfig(ctx)
		if err != nil {
			WriteInternalError(w, "loading site config", err)
			return
		}
		if cfg.SetupKey == "" ||
			subtle.ConstantTimeCompare([]byte(in.SetupKey), []byte(cfg.SetupKey)) != 1 {
			slog.Warn("admin registration with invalid setup key",
				"username", in.Username, "remote_addr", r.RemoteAddr)
			WriteError(w, http.StatusForbidden, "forbidden", "Invalid setup key", nil)
			return
		}
	} else {
		admins, err := h.queries.CountAdmins(ctx)
		if err != nil {
			WriteInternalError(w, "counting admins", err)
			return
		}
		if admins == 0 {
			WriteError(w, http.StatusBadRequest, "bootstrap_required",
				"The first account must be an administrator created with the setup key", nil)
			return
		}
	}

	passwordHash, err := auth.HashPassword(in.Password)
	if err != nil {
		WriteInternalError(w, "hashing password", err)
		return
	}

	user, err := h.queries.CreateUser(ctx, store.CreateUserParams{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
		IsAdmin:      in.IsAdmin,
	})
	if err != nil {
		// A concurrent registration can win the race past the duplicate
		// checks above; the unique constraints are the source of truth.
		if strings.Contains(err.Error(), "UNIQUE") {
			WriteError(w, http.StatusBadRequest, "conflict", "Username or email already exists", nil)
			return
		}
		WriteInternalError(w, "creating user", err)
		return
	}

	// Auto-login: bind the fresh session to the new user.
	if err := h.sessionManager.RenewToken(ctx); err != nil {
		WriteInternalError(w, "renewing session token", err)
		return
	}
	h.sessionManager.Put(ctx, middleware.SessionKeyUserID, user.ID)

	slog.Info("user registered", "user_id", user.ID, "username", user.Username, "is_admin", user.IsAdmin)
	WriteJSON(w, http.StatusCreated, user)
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login. Unknown usernames and wrong passwords get
// the same response so callers cannot probe for accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Username == "" || in.Password == "" {
		WriteValidationError(w, map[string]string{"credentials": "username and password are required"})
		return
	}

	ctx := r.Context()

	user, err := h.queries.GetUserByUsername(ctx, in.Username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			WriteInternalError(w, "looking up user", err)
			return
		}
		slog.Warn("login failed", "username", in.Username, "remote_addr", r.RemoteAddr)
		WriteError(w, http.StatusUnauthorized, "unauthorized", "Invalid credentials", nil)
		return
	}

	valid, err := auth.CheckPassword(in.Password, user.PasswordHash)
	if err != nil {
		// Malformed stored hash is a data error, not a wrong password.
		WriteInternalError(w, "checking password", err)
		return
	}
	if !valid {
		slog.Warn("login failed", "username", in.Username, "remote_addr", r.RemoteAddr)
		WriteError(w, http.StatusUnauthorized, "unauthorized", "Invalid credentials", nil)
		return
	}

	if err := h.sessionManager.RenewToken(ctx); err != nil {
		WriteInternalError(w, "renewing session token", err)
		return
	}
	h.sessionManager.Put(ctx, middleware.SessionKeyUserID, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	WriteJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/logout. Destroying the server-side session
// invalidates the client token immediately.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		WriteInternalError(w, "destroying session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser handles GET /api/user.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteError(w, http.StatusUnauthorized, "unauthorized", "Not authenticated", nil)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}
