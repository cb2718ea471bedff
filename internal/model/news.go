package model

import "time"

// News represents a published news article.
type News struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Summary   string    `json:"summary" gorm:"type:text;not null"`
	ImageURL  string    `json:"imageUrl,omitempty" gorm:"size:512"`
	Category  string    `json:"category" gorm:"size:128;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy int       `json:"createdBy,omitempty" gorm:"index"`
}

// NewsInput is the insert shape for news articles. ID and CreatedAt are
// server-assigned and cannot be supplied by the client.
type NewsInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Summary  string `json:"summary" validate:"required"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category" validate:"required"`
}

// NewsPatch is a partial update; nil fields are left untouched.
type NewsPatch struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Summary  *string `json:"summary" validate:"omitempty,min=1"`
	ImageURL *string `json:"imageUrl"`
	Category *string `json:"category" validate:"omitempty,min=1"`
}

// Apply merges the non-nil patch fields onto the article.
func (p *NewsPatch) Apply(n *News) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Summary != nil {
		n.Summary = *p.Summary
	}
	if p.ImageURL != nil {
		n.ImageURL = *p.ImageURL
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
}
