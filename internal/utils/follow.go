package utils

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
)

type Follow struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	FollowerID string
	AuthorID   string
}

func IsFollowing(followerID, authorID string) (bool, error) {
	var follow Follow
	err := database.DB.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		First(&follow).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil // L'utilisateur ne suit pas l'auteur
		}
		return false, err // Une erreur s'est produite
	}

	return true, nil // L'utilisateur suit l'auteur
}
