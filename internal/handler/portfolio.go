package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/aman7heaven/Personal-portfolio/internal/store"
)

// PortfolioHandler serves the portfolio collections: skill categories,
// skills, experiences, and projects. Lists are public; all mutations sit
// behind the admin router.
type PortfolioHandler struct {
	db      *sql.DB
	queries *store.Queries
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(db *sql.DB) *PortfolioHandler {
	return &PortfolioHandler{
		db:      db,
		queries: store.New(db),
	}
}

// isForeignKeyViolation reports whether err is a SQLite foreign key
// constraint failure. Both drivers surface it in the message text.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY")
}

// --- skill categories ---

// ListSkillCategories handles GET /api/skill-categories.
func (h *PortfolioHandler) ListSkillCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.queries.ListSkillCategories(r.Context())
	if err != nil {
		WriteInternalError(w, "listing skill categories", err)
		return
	}
	WriteJSON(w, http.StatusOK, categories)
}

type createSkillCategoryInput struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Position int64  `json:"position"`
}

// CreateSkillCategory handles POST /api/admin/skill-categories.
func (h *PortfolioHandler) CreateSkillCategory(w http.ResponseWriter, r *http.Request) {
	var in createSkillCategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		WriteValidationError(w, map[string]string{"name": "name is required"})
		return
	}

	category, err := h.queries.CreateSkillCategory(r.Context(), store.CreateSkillCategoryParams{
		Name:     strings.TrimSpace(in.Name),
		Icon:     in.Icon,
		Position: in.Position,
	})
	if err != nil {
		WriteInternalError(w, "creating skill category", err)
		return
	}
	WriteJSON(w, http.StatusCreated, category)
}

type updateSkillCategoryInput struct {
	Name     *string `json:"name"`
	Icon     *string `json:"icon"`
	Position *int64  `json:"position"`
}

// UpdateSkillCategory handles PATCH /api/admin/skill-categories/{id}.
func (h *PortfolioHandler) UpdateSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in updateSkillCategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		WriteValidationError(w, map[string]string{"name": "name must not be empty"})
		return
	}

	category, err := h.queries.UpdateSkillCategory(r.Context(), id, store.UpdateSkillCategoryParams{
		Name:     in.Name,
		Icon:     in.Icon,
		Position: in.Position,
	})
	if err != nil {
		writeStoreError(w, "skill category", err)
		return
	}
	WriteJSON(w, http.StatusOK, category)
}

// DeleteSkillCategory handles DELETE /api/admin/skill-categories/{id}.
// Skills in the category are removed by the cascade.
func (h *PortfolioHandler) DeleteSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.queries.DeleteSkillCategory(r.Context(), id); err != nil {
		WriteInternalError(w, "deleting skill category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- skills ---

// ListSkills handles GET /api/skills. An optional categoryId query
// parameter narrows the list to one category.
func (h *PortfolioHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, ok := parseID(raw)
		if !ok {
			WriteValidationError(w, map[string]string{"categoryId": "categoryId must be a positive integer"})
			return
		}
		list, err := h.queries.ListSkillsByCategory(r.Context(), categoryID)
		if err != nil {
			WriteInternalError(w, "listing skills", err)
			return
		}
		WriteJSON(w, http.StatusOK, list)
		return
	}

	list, err := h.queries.ListSkills(r.Context())
	if err != nil {
		WriteInternalError(w, "listing skills", err)
		return
	}
	WriteJSON(w, http.StatusOK, list)
}

type createSkillInput struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Position   int64  `json:"position"`
}

// CreateSkill handles POST /api/admin/skills.
func (h *PortfolioHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var in createSkillInput
	if !decodeJSON(w, r, &in) {
		return
	}

	details := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		details["name"] = "name is required"
	}
	if in.CategoryID <= 0 {
		details["categoryId"] = "categoryId is required"
	}
	if len(details) > 0 {
		WriteValidationError(w, details)
		return
	}

	skill, err := h.queries.CreateSkill(r.Context(), store.CreateSkillParams{
		CategoryID: in.CategoryID,
		Name:       strings.TrimSpace(in.Name),
		Position:   in.Position,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			WriteValidationError(w, map[string]string{"categoryId": "category does not exist"})
			return
		}
		WriteInternalError(w, "creating skill", err)
		return
	}
	WriteJSON(w, http.StatusCreated, skill)
}

type updateSkillInput struct {
	CategoryID *int64  `json:"categoryId"`
	Name       *string `json:"name"`
	Position   *int64  `json:"position"`
}

// UpdateSkill handles PATCH /api/admin/skills/{id}.
func (h *PortfolioHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in updateSkillInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		WriteValidationError(w, map[string]string{"name": "name must not be empty"})
		return
	}

	skill, err := h.queries.UpdateSkill(r.Context(), id, store.UpdateSkillParams{
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Position:   in.Position,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			WriteValidationError(w, map[string]string{"categoryId": "category does not exist"})
			return
		}
		writeStoreError(w, "skill", err)
		return
	}
	WriteJSON(w, http.StatusOK, skill)
}

// DeleteSkill handles DELETE /api/admin/skills/{id}.
func (h *PortfolioHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.queries.DeleteSkill(r.Context(), id); err != nil {
		WriteInternalError(w, "deleting skill", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- experiences ---

// ListExperiences handles GET /api/experiences.
func (h *PortfolioHandler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.queries.ListExperiences(r.Context())
	if err != nil {
		WriteInternalError(w, "listing experiences", err)
		return
	}
	WriteJSON(w, http.StatusOK, experiences)
}

type createExperienceInput struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Position     int64    `json:"position"`
	Technologies []string `json:"technologies"`
}

func (in *createExperienceInput) validate() map[string]string {
	details := make(map[string]string)
	if strings.TrimSpace(in.Role) == "" {
		details["role"] = "role is required"
	}
	if strings.TrimSpace(in.Company) == "" {
		details["company"] = "company is required"
	}
	if strings.TrimSpace(in.StartDate) == "" {
		details["startDate"] = "startDate is required"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// CreateExperience handles POST /api/admin/experiences.
func (h *PortfolioHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var in createExperienceInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if details := in.validate(); details != nil {
		WriteValidationError(w, details)
		return
	}

	experience, err := store.CreateExperience(r.Context(), h.db, store.CreateExperienceParams{
		Role:         in.Role,
		Company:      in.Company,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Position:     in.Position,
		Technologies: in.Technologies,
	})
	if err != nil {
		WriteInternalError(w, "creating experience", err)
		return
	}
	WriteJSON(w, http.StatusCreated, experience)
}

type updateExperienceInput struct {
	Role         *string  `json:"role"`
	Company      *string  `json:"company"`
	Location     *string  `json:"location"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Description  *string  `json:"description"`
	Position     *int64   `json:"position"`
	Technologies []string `json:"technologies"`
}

// UpdateExperience handles PATCH /api/admin/experiences/{id}. A non-null
// technologies array replaces the stored list wholesale.
func (h *PortfolioHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in updateExperienceInput
	if !decodeJSON(w, r, &in) {
		return
	}

	experience, err := store.UpdateExperience(r.Context(), h.db, id, store.UpdateExperienceParams{
		Role:         in.Role,
		Company:      in.Company,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Position:     in.Position,
		Technologies: in.Technologies,
	})
	if err != nil {
		writeStoreError(w, "experience", err)
		return
	}
	WriteJSON(w, http.StatusOK, experience)
}

// DeleteExperience handles DELETE /api/admin/experiences/{id}.
func (h *PortfolioHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.queries.DeleteExperience(r.Context(), id); err != nil {
		WriteInternalError(w, "deleting experience", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- projects ---

// ListProjects handles GET /api/projects.
func (h *PortfolioHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListProjects(r.Context())
	if err != nil {
		WriteInternalError(w, "listing projects", err)
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

type createProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
	Position     int64    `json:"position"`
	Technologies []string `json:"technologies"`
}

// CreateProject handles POST /api/admin/projects.
func (h *PortfolioHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in createProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		WriteValidationError(w, map[string]string{"title": "title is required"})
		return
	}

	project, err := store.CreateProject(r.Context(), h.db, store.CreateProjectParams{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		LiveURL:      in.LiveURL,
		GithubURL:    in.GithubURL,
		Featured:     in.Featured,
		Position:     in.Position,
		Technologies: in.Technologies,
	})
	if err != nil {
		WriteInternalError(w, "creating project", err)
		return
	}
	WriteJSON(w, http.StatusCreated, project)
}

type updateProjectInput struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	LiveURL      *string  `json:"liveUrl"`
	GithubURL    *string  `json:"githubUrl"`
	Featured     *bool    `json:"featured"`
	Position     *int64   `json:"position"`
	Technologies []string `json:"technologies"`
}

// UpdateProject handles PATCH /api/admin/projects/{id}. A non-null
// technologies array replaces the stored list wholesale.
func (h *PortfolioHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in updateProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}

	project, err := store.UpdateProject(r.Context(), h.db, id, store.UpdateProjectParams{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		LiveURL:      in.LiveURL,
		GithubURL:    in.GithubURL,
		Featured:     in.Featured,
		Position:     in.Position,
		Technologies: in.Technologies,
	})
	if err != nil {
		writeStoreError(w, "project", err)
		return
	}
	WriteJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/admin/projects/{id}.
func (h *PortfolioHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.queries.DeleteProject(r.Context(), id); err != nil {
		WriteInternalError(w, "deleting project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
