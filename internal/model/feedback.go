package model

import "time"

// Feedback represents a resident's feedback submission. Residents submit
// without an account, so there is no ownership field; IsResolved is mutated
// only through the dedicated resolve operation.
type Feedback struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName    string    `json:"fullName" gorm:"size:255;not null"`
	Email       string    `json:"email" gorm:"size:255;not null"`
	PhoneNumber string    `json:"phoneNumber,omitempty" gorm:"size:64"`
	Topic       string    `json:"topic" gorm:"size:128;not null"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	IsResolved  bool      `json:"isResolved"`
}

// FeedbackInput is the insert shape for feedback. ID, CreatedAt and
// IsResolved are server-assigned.
type FeedbackInput struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Topic       string `json:"topic" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// FeedbackPatch is a partial update; nil fields are left untouched.
// IsResolved is deliberately absent: use the resolve operation.
type FeedbackPatch struct {
	FullName    *string `json:"fullName" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Topic       *string `json:"topic" validate:"omitempty,min=1"`
	Message     *string `json:"message" validate:"omitempty,min=1"`
}

// Apply merges the non-nil patch fields onto the feedback entry.
func (p *FeedbackPatch) Apply(f *Feedback) {
	if p.FullName != nil {
		f.FullName = *p.FullName
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		f.PhoneNumber = *p.PhoneNumber
	}
	if p.Topic != nil {
		f.Topic = *p.Topic
	}
	if p.Message != nil {
		f.Message = *p.Message
	}
}
