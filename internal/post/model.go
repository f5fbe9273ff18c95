package post

import (
	"time"

	"github.com/MuhammadMLV/Yatube-Back/internal/group"
	"github.com/MuhammadMLV/Yatube-Back/internal/user"
)

type Post struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time    `json:"created_at"` // date de publication, jamais modifiée
	UserID    string       `gorm:"index" json:"user_id"`
	User      user.User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID   *uint        `json:"group_id"`
	Group     *group.Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Text      string       `json:"text"`
	ImageURL  string       `json:"image_url"`

	// Nombre de commentaires, rempli par les requêtes de feed
	CommentsCount int64 `gorm:"->;-:migration" json:"comments_count"`
}
