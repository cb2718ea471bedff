package model

import "time"

// Event represents a community event. StartTime and EndTime are display
// strings ("14:00") rather than timestamps; EventDate carries the date.
type Event struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	EventDate   time.Time `json:"eventDate" gorm:"not null;index"`
	StartTime   string    `json:"startTime" gorm:"size:32;not null"`
	EndTime     string    `json:"endTime,omitempty" gorm:"size:32"`
	Location    string    `json:"location" gorm:"size:255;not null"`
	Category    string    `json:"category" gorm:"size:128;not null;index"`
	CreatedBy   int       `json:"createdBy,omitempty" gorm:"index"`
}

// EventInput is the insert shape for events.
type EventInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	EventDate   time.Time `json:"eventDate" validate:"required"`
	StartTime   string    `json:"startTime" validate:"required"`
	EndTime     string    `json:"endTime"`
	Location    string    `json:"location" validate:"required"`
	Category    string    `json:"category" validate:"required"`
}

// EventPatch is a partial update; nil fields are left untouched.
type EventPatch struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description" validate:"omitempty,min=1"`
	EventDate   *time.Time `json:"eventDate"`
	StartTime   *string    `json:"startTime" validate:"omitempty,min=1"`
	EndTime     *string    `json:"endTime"`
	Location    *string    `json:"location" validate:"omitempty,min=1"`
	Category    *string    `json:"category" validate:"omitempty,min=1"`
}

// Apply merges the non-nil patch fields onto the event.
func (p *EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
}
