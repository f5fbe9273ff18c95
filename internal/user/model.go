package user

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"` // UUID généré à l'inscription
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	AvatarURL    string    `json:"avatar_url"`
	Bio          string    `json:"bio"`
	IsAdmin      bool      `json:"-"`
}
