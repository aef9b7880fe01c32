package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

const projectColumns = "id, title, description, image_url, live_url, github_url, featured, position, updated_at"

func scanProject(row *sql.Row) (model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.LiveURL,
		&p.GithubURL, &p.Featured, &p.Position, &p.UpdatedAt)
	return p, err
}

// GetProject returns one project with its technologies, or sql.ErrNoRows.
func (q *Queries) GetProject(ctx context.Context, id int64) (model.Project, error) {
	p, err := scanProject(q.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ?", id))
	if err != nil {
		return model.Project{}, err
	}
	p.Technologies, err = q.listProjectTechnologies(ctx, id)
	return p, err
}

// ListProjects returns all projects with technologies in declared order.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM projects ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.LiveURL,
			&p.GithubURL, &p.Featured, &p.Position, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		projects[i].Technologies, err = q.listProjectTechnologies(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (q *Queries) listProjectTechnologies(ctx context.Context, projectID int64) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT name FROM project_technologies WHERE project_id = ? ORDER BY position",
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// replaceProjectTechnologies removes all child rows for the project and
// reinserts the given names. Must run inside a transaction.
func (q *Queries) replaceProjectTechnologies(ctx context.Context, projectID int64, names []string) error {
	if _, err := q.db.ExecContext(ctx,
		"DELETE FROM project_technologies WHERE project_id = ?", projectID); err != nil {
		return err
	}
	for i, name := range names {
		if _, err := q.db.ExecContext(ctx,
			"INSERT INTO project_technologies (project_id, name, position) VALUES (?, ?, ?)",
			projectID, name, i); err != nil {
			return err
		}
	}
	return nil
}

// CreateProjectParams holds the fields for CreateProject.
type CreateProjectParams struct {
	Title        string
	Description  string
	ImageURL     string
	LiveURL      string
	GithubURL    string
	Featured     bool
	Position     int64
	Technologies []string
}

// CreateProject inserts a project and its technologies in one transaction
// and returns the created row.
func CreateProject(ctx context.Context, db *sql.DB, arg CreateProjectParams) (model.Project, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return model.Project{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := New(tx)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO projects (title, description, image_url, live_url, github_url, featured, position, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Description, arg.ImageURL, arg.LiveURL, arg.GithubURL,
		arg.Featured, arg.Position, time.Now().UTC())
	if err != nil {
		return model.Project{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Project{}, err
	}
	if err := qtx.replaceProjectTechnologies(ctx, id, arg.Technologies); err != nil {
		return model.Project{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Project{}, fmt.Errorf("committing transaction: %w", err)
	}

	return New(db).GetProject(ctx, id)
}

// UpdateProjectParams holds the partial update for a project. Nil fields are
// left unchanged; a non-nil Technologies slice replaces all child rows.
type UpdateProjectParams struct {
	Title        *string
	Description  *string
	ImageURL     *string
	LiveURL      *string
	GithubURL    *string
	Featured     *bool
	Position     *int64
	Technologies []string
}

// UpdateProject applies a partial update in one transaction. Returns
// sql.ErrNoRows if the id does not exist.
func UpdateProject(ctx context.Context, db *sql.DB, id int64, arg UpdateProjectParams) (model.Project, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return model.Project{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := New(tx)
	p, err := scanProject(tx.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ?", id))
	if err != nil {
		return model.Project{}, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.Title, arg.Title)
	apply(&p.Description, arg.Description)
	apply(&p.ImageURL, arg.ImageURL)
	apply(&p.LiveURL, arg.LiveURL)
	apply(&p.GithubURL, arg.GithubURL)
	if arg.Featured != nil {
		p.Featured = *arg.Featured
	}
	if arg.Position != nil {
		p.Position = *arg.Position
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE projects SET title = ?, description = ?, image_url = ?, live_url = ?,
			github_url = ?, featured = ?, position = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, p.Description, p.ImageURL, p.LiveURL, p.GithubURL,
		p.Featured, p.Position, time.Now().UTC(), id)
	if err != nil {
		return model.Project{}, err
	}

	if arg.Technologies != nil {
		if err := qtx.replaceProjectTechnologies(ctx, id, arg.Technologies); err != nil {
			return model.Project{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Project{}, fmt.Errorf("committing transaction: %w", err)
	}

	return New(db).GetProject(ctx, id)
}

// DeleteProject removes a project; technologies go with it via the cascade.
// Deleting a nonexistent id is not an error.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	return err
}
