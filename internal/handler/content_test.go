package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

func TestGetHero_LazilyCreates(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/hero", nil)
	var hero model.Hero
	decode(t, resp, &hero)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if hero.ID == 0 {
		t.Error("hero should be created on first read")
	}
}

func TestUpdateHero_PartialAndCacheInvalidation(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	// Prime the row and the cache.
	resp := env.do(t, http.MethodGet, "/api/hero", nil)
	var before model.Hero
	decode(t, resp, &before)

	resp = env.do(t, http.MethodPatch, "/api/admin/hero", map[string]any{
		"name": "Ada Lovelace",
	})
	var updated model.Hero
	decode(t, resp, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if updated.Name != "Ada Lovelace" {
		t.Errorf("name = %q, want Ada Lovelace", updated.Name)
	}
	if updated.Greeting != before.Greeting {
		t.Errorf("greeting changed on partial update: %q -> %q", before.Greeting, updated.Greeting)
	}

	// The public read must not serve the stale cached payload.
	resp = env.do(t, http.MethodGet, "/api/hero", nil)
	var after model.Hero
	decode(t, resp, &after)
	if after.Name != "Ada Lovelace" {
		t.Errorf("cached name = %q, want Ada Lovelace", after.Name)
	}
}

func TestUpdateSiteConfig_RequiresExistingRow(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	// Seed created the site config row, so this must succeed.
	resp := env.do(t, http.MethodPatch, "/api/admin/site-config", map[string]any{
		"siteName": "My Portfolio",
	})
	var cfg model.SiteConfig
	decode(t, resp, &cfg)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if cfg.SiteName != "My Portfolio" {
		t.Errorf("siteName = %q, want My Portfolio", cfg.SiteName)
	}

	// The hero row has never been created: PATCH must 404, not create it.
	resp = env.do(t, http.MethodPatch, "/api/admin/hero", map[string]any{
		"name": "Nobody",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("hero PATCH status = %d, want 404", resp.StatusCode)
	}
}

func TestSiteConfig_NeverExposesSetupKey(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/site-config", nil)
	var raw map[string]any
	decode(t, resp, &raw)
	for key := range raw {
		if strings.Contains(strings.ToLower(key), "setup") {
			t.Errorf("site config response leaks %q", key)
		}
	}
}

func TestGetAbout_RendersMarkdown(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	// Create the row, then give it markdown content.
	resp := env.do(t, http.MethodGet, "/api/about", nil)
	resp.Body.Close()

	resp = env.do(t, http.MethodPatch, "/api/admin/about", map[string]any{
		"content": "Hello **world** <script>alert(1)</script>",
		"details": []map[string]string{
			{"icon": "pin", "label": "Location", "value": "Berlin"},
		},
	})
	var updated struct {
		model.About
		ContentHTML string `json:"contentHtml"`
	}
	decode(t, resp, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	resp = env.do(t, http.MethodGet, "/api/about", nil)
	var about struct {
		model.About
		ContentHTML string `json:"contentHtml"`
	}
	decode(t, resp, &about)

	if !strings.Contains(about.ContentHTML, "<strong>world</strong>") {
		t.Errorf("contentHtml = %q, want rendered markdown", about.ContentHTML)
	}
	if strings.Contains(about.ContentHTML, "<script>") {
		t.Errorf("contentHtml contains unsanitized script: %q", about.ContentHTML)
	}
	if len(about.Details) != 1 || about.Details[0].Value != "Berlin" {
		t.Errorf("details = %+v, want one Berlin entry", about.Details)
	}
}

func TestUpdateContactInfo_SocialLinks(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	resp := env.do(t, http.MethodGet, "/api/contact-info", nil)
	resp.Body.Close()

	resp = env.do(t, http.MethodPatch, "/api/admin/contact-info", map[string]any{
		"email": "me@example.com",
		"socialLinks": []map[string]string{
			{"platform": "github", "url": "https://github.com/me", "icon": "github"},
		},
	})
	var info model.ContactInfo
	decode(t, resp, &info)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(info.SocialLinks) != 1 || info.SocialLinks[0].Platform != "github" {
		t.Errorf("socialLinks = %+v, want one github entry", info.SocialLinks)
	}
}
