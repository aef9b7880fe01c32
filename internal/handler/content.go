package handler

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aman7heaven/Personal-portfolio/internal/cache"
	"github.com/aman7heaven/Personal-portfolio/internal/model"
	"github.com/aman7heaven/Personal-portfolio/internal/store"
)

// contentCacheTTL bounds staleness of the public singleton payloads.
const contentCacheTTL = 5 * time.Minute

// ContentHandler serves the public singleton sections (site config, hero,
// about, contact info) and their admin updates. Public reads go through the
// content cache; every admin write invalidates the corresponding key.
type ContentHandler struct {
	queries *store.Queries
	cache   cache.Store
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(db *sql.DB, c cache.Store) *ContentHandler {
	return &ContentHandler{
		queries: store.New(db),
		cache:   c,
	}
}

// serveCached writes a cached payload if present, otherwise loads it, caches
// the serialized form, and writes it.
func (h *ContentHandler) serveCached(w http.ResponseWriter, r *http.Request, key string, load func() (any, error)) {
	ctx := r.Context()

	if body, ok := h.cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}

	payload, err := load()
	if err != nil {
		WriteInternalError(w, "loading "+key, err)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		WriteInternalError(w, "encoding "+key, err)
		return
	}
	h.cache.Set(ctx, key, body, contentCacheTTL)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// GetSiteConfig handles GET /api/site-config.
func (h *ContentHandler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.KeySiteConfig, func() (any, error) {
		// Normally the row exists from startup seeding. The fallback key
		// keeps admin registration gated even if it does not.
		cfg, created, err := h.queries.EnsureSiteConfig(r.Context(), uuid.NewString())
		if created {
			slog.Info("site config created with defaults")
		}
		return cfg, err
	})
}

type updateSiteConfigInput struct {
	SiteName        *string `json:"siteName"`
	ThemeColor      *string `json:"themeColor"`
	MetaDescription *string `json:"metaDescription"`
}

// UpdateSiteConfig handles PATCH /api/admin/site-config.
func (h *ContentHandler) UpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	var in updateSiteConfigInput
	if !decodeJSON(w, r, &in) {
		return
	}

	cfg, err := h.queries.UpdateSiteConfig(r.Context(), store.UpdateSiteConfigParams{
		SiteName:        in.SiteName,
		ThemeColor:      in.ThemeColor,
		MetaDescription: in.MetaDescription,
	})
	if err != nil {
		writeStoreError(w, "site config", err)
		return
	}

	h.cache.Delete(r.Context(), cache.KeySiteConfig)
	WriteJSON(w, http.StatusOK, cfg)
}

// GetHero handles GET /api/hero.
func (h *ContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.KeyHero, func() (any, error) {
		hero, _, err := h.queries.EnsureHero(r.Context())
		return hero, err
	})
}

type updateHeroInput struct {
	Greeting            *string `json:"greeting"`
	Name                *string `json:"name"`
	Tagline             *string `json:"tagline"`
	Description         *string `json:"description"`
	PrimaryButtonText   *string `json:"primaryButtonText"`
	PrimaryButtonLink   *string `json:"primaryButtonLink"`
	SecondaryButtonText *string `json:"secondaryButtonText"`
	SecondaryButtonLink *string `json:"secondaryButtonLink"`
}

// UpdateHero handles PATCH /api/admin/hero.
func (h *ContentHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var in updateHeroInput
	if !decodeJSON(w, r, &in) {
		return
	}

	hero, err := h.queries.UpdateHero(r.Context(), store.UpdateHeroParams{
		Greeting:            in.Greeting,
		Name:                in.Name,
		Tagline:             in.Tagline,
		Description:         in.Description,
		PrimaryButtonText:   in.PrimaryButtonText,
		PrimaryButtonLink:   in.PrimaryButtonLink,
		SecondaryButtonText: in.SecondaryButtonText,
		SecondaryButtonLink: in.SecondaryButtonLink,
	})
	if err != nil {
		writeStoreError(w, "hero", err)
		return
	}

	h.cache.Delete(r.Context(), cache.KeyHero)
	WriteJSON(w, http.StatusOK, hero)
}

// aboutResponse is the public about payload. Content stays markdown for
// admin editing; ContentHTML is the rendered, sanitized form the site embeds.
type aboutResponse struct {
	model.About
	ContentHTML string `json:"contentHtml"`
}

func newAboutResponse(a model.About) aboutResponse {
	return aboutResponse{About: a, ContentHTML: renderMarkdown(a.Content)}
}

// GetAbout handles GET /api/about.
func (h *ContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.KeyAbout, func() (any, error) {
		a, _, err := h.queries.EnsureAbout(r.Context())
		if err != nil {
			return nil, err
		}
		return newAboutResponse(a), nil
	})
}

type updateAboutInput struct {
	Title    *string             `json:"title"`
	Content  *string             `json:"content"`
	ImageURL *string             `json:"imageUrl"`
	Details  []model.AboutDetail `json:"details"`
}

// UpdateAbout handles PATCH /api/admin/about.
func (h *ContentHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var in updateAboutInput
	if !decodeJSON(w, r, &in) {
		return
	}

	a, err := h.queries.UpdateAbout(r.Context(), store.UpdateAboutParams{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		Details:  in.Details,
	})
	if err != nil {
		writeStoreError(w, "about", err)
		return
	}

	h.cache.Delete(r.Context(), cache.KeyAbout)
	WriteJSON(w, http.StatusOK, newAboutResponse(a))
}

// GetContactInfo handles GET /api/contact-info.
func (h *ContentHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.KeyContactInfo, func() (any, error) {
		info, _, err := h.queries.EnsureContactInfo(r.Context())
		return info, err
	})
}

type updateContactInfoInput struct {
	Email       *string            `json:"email"`
	Phone       *string            `json:"phone"`
	Location    *string            `json:"location"`
	SocialLinks []model.SocialLink `json:"socialLinks"`
}

// UpdateContactInfo handles PATCH /api/admin/contact-info.
func (h *ContentHandler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	var in updateContactInfoInput
	if !decodeJSON(w, r, &in) {
		return
	}

	info, err := h.queries.UpdateContactInfo(r.Context(), store.UpdateContactInfoParams{
		Email:       in.Email,
		Phone:       in.Phone,
		Location:    in.Location,
		SocialLinks: in.SocialLinks,
	})
	if err != nil {
		writeStoreError(w, "contact info", err)
		return
	}

	h.cache.Delete(r.Context(), cache.KeyContactInfo)
	WriteJSON(w, http.StatusOK, info)
}
