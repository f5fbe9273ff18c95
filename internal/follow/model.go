package follow

import (
	"time"
)

type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	FollowerID string    `gorm:"type:uuid;uniqueIndex:idx_follows_follower_author" json:"follower_id"`
	AuthorID   string    `gorm:"type:uuid;uniqueIndex:idx_follows_follower_author" json:"author_id"`
}
