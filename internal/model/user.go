package model

// DefaultRole is assigned to users registered through the public endpoint.
const DefaultRole = "user"

// User represents a registered account able to manage site content.
type User struct {
	ID           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Email        string `json:"email" gorm:"size:255"`
	Role         string `json:"role" gorm:"size:64;not null;default:'user'"`
	FullName     string `json:"fullName" gorm:"size:255"`
	PhoneNumber  string `json:"phoneNumber" gorm:"size:64"`
}
