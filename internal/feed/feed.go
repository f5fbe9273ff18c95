package feed

import (
	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/follow"
	"github.com/MuhammadMLV/Yatube-Back/internal/group"
	"github.com/MuhammadMLV/Yatube-Back/internal/post"
	"github.com/MuhammadMLV/Yatube-Back/internal/user"
)

// Politique de composition des feeds : un couple (visiteur, portée) devient une
// page ordonnée de posts. L'identité du visiteur est toujours un paramètre
// explicite, jamais un état ambiant.

const commentsCountSelect = "posts.*, " +
	"(SELECT count(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count"

// Tri du plus récent au plus ancien ; l'ID auto-incrémenté départage les
// posts créés à la même date.
func baseQuery() *gorm.DB {
	return database.DB.Model(&post.Post{}).
		Select(commentsCountSelect).
		Preload("User").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}

// ListAll retourne une page de tous les posts. Une page au-delà de la
// dernière donne une liste vide, pas une erreur.
func ListAll(page int) ([]post.Post, error) {
	posts := make([]post.Post, 0, PostsPerPage)
	err := baseQuery().
		Limit(PostsPerPage).
		Offset(PageOffset(page)).
		Find(&posts).Error
	return posts, err
}

// ListByGroup retourne une page des posts d'un groupe.
// Slug inconnu : gorm.ErrRecordNotFound.
func ListByGroup(slug string, page int) (*group.Group, []post.Post, error) {
	g, err := group.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}

	posts := make([]post.Post, 0, PostsPerPage)
	err = baseQuery().
		Where("posts.group_id = ?", g.ID).
		Limit(PostsPerPage).
		Offset(PageOffset(page)).
		Find(&posts).Error
	return g, posts, err
}

// ListByAuthor retourne une page des posts d'un auteur.
// Username inconnu : gorm.ErrRecordNotFound.
func ListByAuthor(username string, page int) (*user.User, []post.Post, error) {
	author, err := user.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}

	posts := make([]post.Post, 0, PostsPerPage)
	err = baseQuery().
		Where("posts.user_id = ?", author.ID).
		Limit(PostsPerPage).
		Offset(PageOffset(page)).
		Find(&posts).Error
	return author, posts, err
}

// ListFollowed retourne une page des posts dont l'auteur est suivi par le
// visiteur, et uniquement ceux-là.
func ListFollowed(viewerID string, page int) ([]post.Post, error) {
	followed := database.DB.Model(&follow.Follow{}).
		Select("author_id").
		Where("follower_id = ?", viewerID)

	posts := make([]post.Post, 0, PostsPerPage)
	err := baseQuery().
		Where("posts.user_id IN (?)", followed).
		Limit(PostsPerPage).
		Offset(PageOffset(page)).
		Find(&posts).Error
	return posts, err
}
