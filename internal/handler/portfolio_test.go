package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

func TestSkillLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	resp := env.do(t, http.MethodPost, "/api/admin/skill-categories", map[string]any{
		"name": "Backend",
		"icon": "server",
	})
	var category model.SkillCategory
	decode(t, resp, &category)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create category status = %d, want 201", resp.StatusCode)
	}

	resp = env.do(t, http.MethodPost, "/api/admin/skills", map[string]any{
		"categoryId": category.ID,
		"name":       "Go",
	})
	var skill model.Skill
	decode(t, resp, &skill)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create skill status = %d, want 201", resp.StatusCode)
	}

	// Unknown category is a validation error, not a 500.
	resp = env.do(t, http.MethodPost, "/api/admin/skills", map[string]any{
		"categoryId": 9999,
		"name":       "Rust",
	})
	var errResp ErrorResponse
	decode(t, resp, &errResp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad category status = %d, want 400", resp.StatusCode)
	}
	if _, ok := errResp.Error.Details["categoryId"]; !ok {
		t.Error("missing categoryId validation detail")
	}

	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/skills/%d", skill.ID), map[string]any{
		"name": "Golang",
	})
	var renamed model.Skill
	decode(t, resp, &renamed)
	if renamed.Name != "Golang" {
		t.Errorf("name = %q, want Golang", renamed.Name)
	}

	resp = env.do(t, http.MethodPatch, "/api/admin/skills/9999", map[string]any{
		"name": "Ghost",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing skill status = %d, want 404", resp.StatusCode)
	}

	// Deleting the category cascades to its skills.
	resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/skill-categories/%d", category.ID), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete category status = %d, want 204", resp.StatusCode)
	}

	resp = env.do(t, http.MethodGet, "/api/skills", nil)
	var skills []model.Skill
	decode(t, resp, &skills)
	if len(skills) != 0 {
		t.Errorf("skills after cascade = %d, want 0", len(skills))
	}
}

func TestListSkills_ByCategory(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	var categories [2]model.SkillCategory
	for i, name := range []string{"Backend", "Frontend"} {
		resp := env.do(t, http.MethodPost, "/api/admin/skill-categories", map[string]any{"name": name})
		decode(t, resp, &categories[i])
	}
	for _, s := range []struct {
		category int
		name     string
	}{{0, "Go"}, {0, "SQL"}, {1, "CSS"}} {
		resp := env.do(t, http.MethodPost, "/api/admin/skills", map[string]any{
			"categoryId": categories[s.category].ID,
			"name":       s.name,
		})
		resp.Body.Close()
	}

	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/skills?categoryId=%d", categories[0].ID), nil)
	var skills []model.Skill
	decode(t, resp, &skills)
	if len(skills) != 2 {
		t.Fatalf("backend skills = %d, want 2", len(skills))
	}

	resp = env.do(t, http.MethodGet, "/api/skills?categoryId=abc", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad categoryId status = %d, want 400", resp.StatusCode)
	}
}

func TestExperienceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	resp := env.do(t, http.MethodPost, "/api/admin/experiences", map[string]any{
		"role":         "Engineer",
		"company":      "Acme",
		"startDate":    "2022-01",
		"technologies": []string{"Go", "SQLite"},
	})
	var exp model.Experience
	decode(t, resp, &exp)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	if len(exp.Technologies) != 2 {
		t.Fatalf("technologies = %v, want 2 entries", exp.Technologies)
	}

	// A provided technologies array replaces the stored list.
	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/experiences/%d", exp.ID), map[string]any{
		"technologies": []string{"Rust"},
	})
	var updated model.Experience
	decode(t, resp, &updated)
	if len(updated.Technologies) != 1 || updated.Technologies[0] != "Rust" {
		t.Errorf("technologies = %v, want [Rust]", updated.Technologies)
	}
	if updated.Role != "Engineer" {
		t.Errorf("role = %q, should be unchanged", updated.Role)
	}

	// Omitting technologies leaves them alone.
	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/experiences/%d", exp.ID), map[string]any{
		"company": "Globex",
	})
	decode(t, resp, &updated)
	if len(updated.Technologies) != 1 {
		t.Errorf("technologies = %v, should be unchanged", updated.Technologies)
	}

	// Missing required fields are rejected.
	resp = env.do(t, http.MethodPost, "/api/admin/experiences", map[string]any{
		"role": "Ghost",
	})
	var errResp ErrorResponse
	decode(t, resp, &errResp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid create status = %d, want 400", resp.StatusCode)
	}
	for _, field := range []string{"company", "startDate"} {
		if _, ok := errResp.Error.Details[field]; !ok {
			t.Errorf("missing validation detail for %q", field)
		}
	}

	resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/experiences/%d", exp.ID), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}

	// Delete is idempotent.
	resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/experiences/%d", exp.ID), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("repeat delete status = %d, want 204", resp.StatusCode)
	}
}

func TestProjectLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	resp := env.do(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":        "Portfolio",
		"description":  "This site",
		"featured":     true,
		"technologies": []string{"Go", "chi"},
	})
	var project model.Project
	decode(t, resp, &project)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	if !project.Featured {
		t.Error("featured should be true")
	}

	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/projects/%d", project.ID), map[string]any{
		"featured":     false,
		"technologies": []string{"Go"},
	})
	var updated model.Project
	decode(t, resp, &updated)
	if updated.Featured {
		t.Error("featured should be false after update")
	}
	if len(updated.Technologies) != 1 {
		t.Errorf("technologies = %v, want [Go]", updated.Technologies)
	}

	resp = env.do(t, http.MethodGet, "/api/projects", nil)
	var projects []model.Project
	decode(t, resp, &projects)
	if len(projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(projects))
	}
}

func TestListEndpoints_EmptyDatabase(t *testing.T) {
	env := newTestEnv(t)

	paths := []string{
		"/api/skill-categories",
		"/api/skills",
		"/api/experiences",
		"/api/projects",
	}
	for _, path := range paths {
		resp := env.do(t, http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("reading %s body: %v", path, err)
		}
		if got := strings.TrimSpace(string(body)); got != "[]" {
			t.Errorf("GET %s body = %s, want []", path, got)
		}
	}
}
