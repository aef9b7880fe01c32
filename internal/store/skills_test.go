package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestDeleteSkillCategory_Cascade(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	frontend, err := q.CreateSkillCategory(ctx, CreateSkillCategoryParams{Name: "Frontend", Icon: "code"})
	if err != nil {
		t.Fatalf("CreateSkillCategory: %v", err)
	}
	backend, err := q.CreateSkillCategory(ctx, CreateSkillCategoryParams{Name: "Backend", Icon: "server"})
	if err != nil {
		t.Fatalf("CreateSkillCategory: %v", err)
	}

	for _, name := range []string{"React", "CSS"} {
		if _, err := q.CreateSkill(ctx, CreateSkillParams{CategoryID: frontend.ID, Name: name}); err != nil {
			t.Fatalf("CreateSkill: %v", err)
		}
	}
	kept, err := q.CreateSkill(ctx, CreateSkillParams{CategoryID: backend.ID, Name: "Go"})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	if err := q.DeleteSkillCategory(ctx, frontend.ID); err != nil {
		t.Fatalf("DeleteSkillCategory: %v", err)
	}

	skills, err := q.ListSkills(ctx)
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(skills) != 1 || skills[0].ID != kept.ID {
		t.Errorf("cascade delete left %+v, want only the backend skill", skills)
	}
}

func TestCreateSkill_InvalidCategory(t *testing.T) {
	db := testDB(t)
	q := New(db)

	_, err := q.CreateSkill(context.Background(), CreateSkillParams{CategoryID: 999, Name: "Rust"})
	if err == nil {
		t.Fatal("expected foreign key violation for missing category")
	}
}

func TestDeleteSkill_Idempotent(t *testing.T) {
	db := testDB(t)
	q := New(db)

	if err := q.DeleteSkill(context.Background(), 12345); err != nil {
		t.Fatalf("deleting a nonexistent skill should not error, got %v", err)
	}
}

func TestUpdateSkill_NotFound(t *testing.T) {
	db := testDB(t)
	q := New(db)

	name := "Rust"
	_, err := q.UpdateSkill(context.Background(), 42, UpdateSkillParams{Name: &name})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestListSkillCategories_EmptyIsNotError(t *testing.T) {
	db := testDB(t)
	q := New(db)

	categories, err := q.ListSkillCategories(context.Background())
	if err != nil {
		t.Fatalf("ListSkillCategories: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("expected empty list, got %d", len(categories))
	}
}
