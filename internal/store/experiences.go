package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

const experienceColumns = "id, role, company, location, start_date, end_date, description, position, updated_at"

func scanExperience(row *sql.Row) (model.Experience, error) {
	var e model.Experience
	err := row.Scan(&e.ID, &e.Role, &e.Company, &e.Location, &e.StartDate,
		&e.EndDate, &e.Description, &e.Position, &e.UpdatedAt)
	return e, err
}

// GetExperience returns one experience with its technologies, or sql.ErrNoRows.
func (q *Queries) GetExperience(ctx context.Context, id int64) (model.Experience, error) {
	e, err := scanExperience(q.db.QueryRowContext(ctx,
		"SELECT "+experienceColumns+" FROM experiences WHERE id = ?", id))
	if err != nil {
		return model.Experience{}, err
	}
	e.Technologies, err = q.listExperienceTechnologies(ctx, id)
	return e, err
}

// ListExperiences returns all experiences with technologies in declared order.
func (q *Queries) ListExperiences(ctx context.Context) ([]model.Experience, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+experienceColumns+" FROM experiences ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Role, &e.Company, &e.Location, &e.StartDate,
			&e.EndDate, &e.Description, &e.Position, &e.UpdatedAt); err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range experiences {
		experiences[i].Technologies, err = q.listExperienceTechnologies(ctx, experiences[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return experiences, nil
}

func (q *Queries) listExperienceTechnologies(ctx context.Context, experienceID int64) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT name FROM experience_technologies WHERE experience_id = ? ORDER BY position",
		experienceID)
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

// replaceExperienceTechnologies removes all child rows for the experience and
// reinserts the given names. Must run inside a transaction so readers never
// observe the empty intermediate state.
func (q *Queries) replaceExperienceTechnologies(ctx context.Context, experienceID int64, names []string) error {
	if _, err := q.db.ExecContext(ctx,
		"DELETE FROM experience_technologies WHERE experience_id = ?", experienceID); err != nil {
		return err
	}
	for i, name := range names {
		if _, err := q.db.ExecContext(ctx,
			"INSERT INTO experience_technologies (experience_id, name, position) VALUES (?, ?, ?)",
			experienceID, name, i); err != nil {
			return err
		}
	}
	return nil
}

// CreateExperienceParams holds the fields for CreateExperience.
type CreateExperienceParams struct {
	Role         string
	Company      string
	Location     string
	StartDate    string
	EndDate      string
	Description  string
	Position     int64
	Technologies []string
}

// CreateExperience inserts an experience and its technologies in one
// transaction and returns the created row.
func CreateExperience(ctx context.Context, db *sql.DB, arg CreateExperienceParams) (model.Experience, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return model.Experience{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := New(tx)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO experiences (role, company, location, start_date, end_date, description, position, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Role, arg.Company, arg.Location, arg.StartDate, arg.EndDate,
		arg.Description, arg.Position, time.Now().UTC())
	if err != nil {
		return model.Experience{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Experience{}, err
	}
	if err := qtx.replaceExperienceTechnologies(ctx, id, arg.Technologies); err != nil {
		return model.Experience{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Experience{}, fmt.Errorf("committing transaction: %w", err)
	}

	return New(db).GetExperience(ctx, id)
}

// UpdateExperienceParams holds the partial update for an experience. Nil
// fields are left unchanged; a non-nil Technologies slice replaces all child
// rows wholesale.
type UpdateExperienceParams struct {
	Role         *string
	Company      *string
	Location     *string
	StartDate    *string
	EndDate      *string
	Description  *string
	Position     *int64
	Technologies []string
}

// UpdateExperience applies a partial update in one transaction. Returns
// sql.ErrNoRows if the id does not exist.
func UpdateExperience(ctx context.Context, db *sql.DB, id int64, arg UpdateExperienceParams) (model.Experience, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return model.Experience{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := New(tx)
	e, err := scanExperience(tx.QueryRowContext(ctx,
		"SELECT "+experienceColumns+" FROM experiences WHERE id = ?", id))
	if err != nil {
		return model.Experience{}, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&e.Role, arg.Role)
	apply(&e.Company, arg.Company)
	apply(&e.Location, arg.Location)
	apply(&e.StartDate, arg.StartDate)
	apply(&e.EndDate, arg.EndDate)
	apply(&e.Description, arg.Description)
	if arg.Position != nil {
		e.Position = *arg.Position
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE experiences SET role = ?, company = ?, location = ?, start_date = ?,
			end_date = ?, description = ?, position = ?, updated_at = ?
		 WHERE id = ?`,
		e.Role, e.Company, e.Location, e.StartDate, e.EndDate,
		e.Description, e.Position, time.Now().UTC(), id)
	if err != nil {
		return model.Experience{}, err
	}

	if arg.Technologies != nil {
		if err := qtx.replaceExperienceTechnologies(ctx, id, arg.Technologies); err != nil {
			return model.Experience{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Experience{}, fmt.Errorf("committing transaction: %w", err)
	}

	return New(db).GetExperience(ctx, id)
}

// DeleteExperience removes an experience; technologies go with it via the
// cascade. Deleting a nonexistent id is not an error.
func (q *Queries) DeleteExperience(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM experiences WHERE id = ?", id)
	return err
}
