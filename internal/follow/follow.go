package follow

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
)

// Create crée la relation de suivi. Auto-follow et relation déjà existante
// sont des no-op silencieux ; l'index unique (follower, author) protège
// contre deux follows concurrents du même couple.
func Create(followerID, authorID string) error {
	if followerID == authorID {
		return nil
	}

	var existing Follow
	err := database.DB.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return database.DB.Create(&Follow{
		CreatedAt:  time.Now(),
		FollowerID: followerID,
		AuthorID:   authorID,
	}).Error
}

// Delete supprime la relation de suivi, no-op si elle n'existe pas
func Delete(followerID, authorID string) error {
	return database.DB.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&Follow{}).Error
}
