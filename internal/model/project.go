package model

import "time"

// Project represents a constituency development project. Status is free text
// by convention ("Planning", "In Progress", "Completed") and is not enforced
// as an enum.
type Project struct {
	ID                   int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title                string     `json:"title" gorm:"size:255;not null"`
	Description          string     `json:"description" gorm:"type:text;not null"`
	Status               string     `json:"status" gorm:"size:64;not null"`
	StartDate            time.Time  `json:"startDate" gorm:"not null"`
	TargetDate           *time.Time `json:"targetDate,omitempty"`
	CompletionPercentage int        `json:"completionPercentage"`
	ImageURL             string     `json:"imageUrl,omitempty" gorm:"size:512"`
	CreatedBy            int        `json:"createdBy,omitempty" gorm:"index"`
}

// ProjectInput is the insert shape for projects.
type ProjectInput struct {
	Title                string     `json:"title" validate:"required"`
	Description          string     `json:"description" validate:"required"`
	Status               string     `json:"status" validate:"required"`
	StartDate            time.Time  `json:"startDate" validate:"required"`
	TargetDate           *time.Time `json:"targetDate"`
	CompletionPercentage int        `json:"completionPercentage"`
	ImageURL             string     `json:"imageUrl"`
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Title                *string    `json:"title" validate:"omitempty,min=1"`
	Description          *string    `json:"description" validate:"omitempty,min=1"`
	Status               *string    `json:"status" validate:"omitempty,min=1"`
	StartDate            *time.Time `json:"startDate"`
	TargetDate           *time.Time `json:"targetDate"`
	CompletionPercentage *int       `json:"completionPercentage"`
	ImageURL             *string    `json:"imageUrl"`
}

// Apply merges the non-nil patch fields onto the project.
func (p *ProjectPatch) Apply(proj *Project) {
	if p.Title != nil {
		proj.Title = *p.Title
	}
	if p.Description != nil {
		proj.Description = *p.Description
	}
	if p.Status != nil {
		proj.Status = *p.Status
	}
	if p.StartDate != nil {
		proj.StartDate = *p.StartDate
	}
	if p.TargetDate != nil {
		proj.TargetDate = p.TargetDate
	}
	if p.CompletionPercentage != nil {
		proj.CompletionPercentage = *p.CompletionPercentage
	}
	if p.ImageURL != nil {
		proj.ImageURL = *p.ImageURL
	}
}
