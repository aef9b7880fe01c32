package model

import "time"

// SkillCategory groups skills under a named, icon-decorated heading.
// Deleting a category cascades to its skills.
type SkillCategory struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Position int64  `json:"position"`
}

// Skill belongs to exactly one SkillCategory.
type Skill struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Position   int64  `json:"position"`
}

// Experience is one entry of the work history. EndDate is empty for a
// current position. Technologies are stored normalized in a child table
// and replaced wholesale on every update.
type Experience struct {
	ID           int64     `json:"id"`
	Role         string    `json:"role"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate,omitempty"`
	Description  string    `json:"description"`
	Position     int64     `json:"position"`
	Technologies []string  `json:"technologies"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Project is one portfolio project card.
type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	LiveURL      string    `json:"liveUrl"`
	GithubURL    string    `json:"githubUrl"`
	Featured     bool      `json:"featured"`
	Position     int64     `json:"position"`
	Technologies []string  `json:"technologies"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
