package store

import (
	"context"

	"github.com/aman7heaven/Personal-portfolio/internal/model"
)

// ListSkillCategories returns all categories in declared order.
func (q *Queries) ListSkillCategories(ctx context.Context) ([]model.SkillCategory, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, name, icon, position FROM skill_categories ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []model.SkillCategory{}
	for rows.Next() {
		var c model.SkillCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Position); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetSkillCategory returns the category with the given id, or sql.ErrNoRows.
func (q *Queries) GetSkillCategory(ctx context.Context, id int64) (model.SkillCategory, error) {
	var c model.SkillCategory
	err := q.db.QueryRowContext(ctx,
		"SELECT id, name, icon, position FROM skill_categories WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Icon, &c.Position)
	return c, err
}

// CreateSkillCategoryParams holds the fields for CreateSkillCategory.
type CreateSkillCategoryParams struct {
	Name     string
	Icon     string
	Position int64
}

// CreateSkillCategory inserts a new category and returns the created row.
func (q *Queries) CreateSkillCategory(ctx context.Context, arg CreateSkillCategoryParams) (model.SkillCategory, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO skill_categories (name, icon, position) VALUES (?, ?, ?)",
		arg.Name, arg.Icon, arg.Position)
	if err != nil {
		return model.SkillCategory{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.SkillCategory{}, err
	}
	return q.GetSkillCategory(ctx, id)
}

// UpdateSkillCategoryParams holds the partial update for a category.
type UpdateSkillCategoryParams struct {
	Name     *string
	Icon     *string
	Position *int64
}

// UpdateSkillCategory applies a partial update. Returns sql.ErrNoRows if the
// id does not exist.
func (q *Queries) UpdateSkillCategory(ctx context.Context, id int64, arg UpdateSkillCategoryParams) (model.SkillCategory, error) {
	c, err := q.GetSkillCategory(ctx, id)
	if err != nil {
		return model.SkillCategory{}, err
	}

	if arg.Name != nil {
		c.Name = *arg.Name
	}
	if arg.Icon != nil {
		c.Icon = *arg.Icon
	}
	if arg.Position != nil {
		c.Position = *arg.Position
	}

	_, err = q.db.ExecContext(ctx,
		"UPDATE skill_categories SET name = ?, icon = ?, position = ? WHERE id = ?",
		c.Name, c.Icon, c.Position, id)
	if err != nil {
		return model.SkillCategory{}, err
	}
	return q.GetSkillCategory(ctx, id)
}

// DeleteSkillCategory removes a category. Its skills are removed by the
// ON DELETE CASCADE foreign key. Deleting a nonexistent id is not an error.
func (q *Queries) DeleteSkillCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM skill_categories WHERE id = ?", id)
	return err
}

// ListSkills returns all skills in declared order.
func (q *Queries) ListSkills(ctx context.Context) ([]model.Skill, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, category_id, name, position FROM skills ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Position); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ListSkillsByCategory returns the skills of one category in declared order.
func (q *Queries) ListSkillsByCategory(ctx context.Context, categoryID int64) ([]model.Skill, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, category_id, name, position FROM skills WHERE category_id = ? ORDER BY position, id",
		categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Position); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// GetSkill returns the skill with the given id, or sql.ErrNoRows.
func (q *Queries) GetSkill(ctx context.Context, id int64) (model.Skill, error) {
	var s model.Skill
	err := q.db.QueryRowContext(ctx,
		"SELECT id, category_id, name, position FROM skills WHERE id = ?", id).
		Scan(&s.ID, &s.CategoryID, &s.Name, &s.Position)
	return s, err
}

// CreateSkillParams holds the fields for CreateSkill.
type CreateSkillParams struct {
	CategoryID int64
	Name       string
	Position   int64
}

// CreateSkill inserts a new skill and returns the created row. The category
// reference is validated by the foreign key constraint.
func (q *Queries) CreateSkill(ctx context.Context, arg CreateSkillParams) (model.Skill, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO skills (category_id, name, position) VALUES (?, ?, ?)",
		arg.CategoryID, arg.Name, arg.Position)
	if err != nil {
		return model.Skill{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Skill{}, err
	}
	return q.GetSkill(ctx, id)
}

// UpdateSkillParams holds the partial update for a skill.
type UpdateSkillParams struct {
	CategoryID *int64
	Name       *string
	Position   *int64
}

// UpdateSkill applies a partial update. Returns sql.ErrNoRows if the id does
// not exist.
func (q *Queries) UpdateSkill(ctx context.Context, id int64, arg UpdateSkillParams) (model.Skill, error) {
	s, err := q.GetSkill(ctx, id)
	if err != nil {
		return model.Skill{}, err
	}

	if arg.CategoryID != nil {
		s.CategoryID = *arg.CategoryID
	}
	if arg.Name != nil {
		s.Name = *arg.Name
	}
	if arg.Position != nil {
		s.Position = *arg.Position
	}

	_, err = q.db.ExecContext(ctx,
		"UPDATE skills SET category_id = ?, name = ?, position = ? WHERE id = ?",
		s.CategoryID, s.Name, s.Position, id)
	if err != nil {
		return model.Skill{}, err
	}
	return q.GetSkill(ctx, id)
}

// DeleteSkill removes a skill. Deleting a nonexistent id is not an error.
func (q *Queries) DeleteSkill(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM skills WHERE id = ?", id)
	return err
}
