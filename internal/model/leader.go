package model

// Leader represents a constituency leadership profile. Leaders carry no
// ownership tracking.
type Leader struct {
	ID             int    `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName       string `json:"fullName" gorm:"size:255;not null"`
	Position       string `json:"position" gorm:"size:255;not null"`
	Email          string `json:"email,omitempty" gorm:"size:255"`
	PhoneNumber    string `json:"phoneNumber,omitempty" gorm:"size:64"`
	Location       string `json:"location,omitempty" gorm:"size:255"`
	ImageURL       string `json:"imageUrl,omitempty" gorm:"size:512"`
	Biography      string `json:"biography,omitempty" gorm:"type:text"`
	FacebookURL    string `json:"facebookUrl,omitempty" gorm:"size:512"`
	TwitterURL     string `json:"twitterUrl,omitempty" gorm:"size:512"`
	WhatsappNumber string `json:"whatsappNumber,omitempty" gorm:"size:64"`
}

// LeaderInput is the insert shape for leaders.
type LeaderInput struct {
	FullName       string `json:"fullName" validate:"required"`
	Position       string `json:"position" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	PhoneNumber    string `json:"phoneNumber"`
	Location       string `json:"location"`
	ImageURL       string `json:"imageUrl"`
	Biography      string `json:"biography"`
	FacebookURL    string `json:"facebookUrl"`
	TwitterURL     string `json:"twitterUrl"`
	WhatsappNumber string `json:"whatsappNumber"`
}

// LeaderPatch is a partial update; nil fields are left untouched.
type LeaderPatch struct {
	FullName       *string `json:"fullName" validate:"omitempty,min=1"`
	Position       *string `json:"position" validate:"omitempty,min=1"`
	Email          *string `json:"email" validate:"omitempty,email"`
	PhoneNumber    *string `json:"phoneNumber"`
	Location       *string `json:"location"`
	ImageURL       *string `json:"imageUrl"`
	Biography      *string `json:"biography"`
	FacebookURL    *string `json:"facebookUrl"`
	TwitterURL     *string `json:"twitterUrl"`
	WhatsappNumber *string `json:"whatsappNumber"`
}

// Apply merges the non-nil patch fields onto the leader.
func (p *LeaderPatch) Apply(l *Leader) {
	if p.FullName != nil {
		l.FullName = *p.FullName
	}
	if p.Position != nil {
		l.Position = *p.Position
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		l.PhoneNumber = *p.PhoneNumber
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.ImageURL != nil {
		l.ImageURL = *p.ImageURL
	}
	if p.Biography != nil {
		l.Biography = *p.Biography
	}
	if p.FacebookURL != nil {
		l.FacebookURL = *p.FacebookURL
	}
	if p.TwitterURL != nil {
		l.TwitterURL = *p.TwitterURL
	}
	if p.WhatsappNumber != nil {
		l.WhatsappNumber = *p.WhatsappNumber
	}
}
