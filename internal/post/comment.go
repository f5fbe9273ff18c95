package post

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/forms"
	"github.com/MuhammadMLV/Yatube-Back/internal/user"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	PostID    uint      `gorm:"index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    string    `json:"user_id"`
	Username  string    `gorm:"-" json:"username"`
	Text      string    `json:"text"`
}

// GetCommentsByPostID GET /api/posts/:id/comments
func GetCommentsByPostID(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	// Vérifier que le post existe
	var post Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	var comments []Comment
	if err := database.DB.Where("post_id = ?", postID).Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		return
	}

	fillUsernames(comments)

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment POST /api/posts/:id/comments
func CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if fieldErrors := forms.Validate(forms.CommentForm{Text: input.Text}); fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire invalide", "fields": fieldErrors})
		return
	}

	// Vérifier que le post existe
	var post Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération du post"})
		}
		return
	}

	// L'auteur et le post du commentaire sont fixés à la création
	comment := Comment{
		CreatedAt: time.Now(),
		PostID:    uint(postID),
		UserID:    userID,
		Text:      input.Text,
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du commentaire"})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/posts/%d", postID))
}

// fillUsernames renseigne le username de chaque commentaire
func fillUsernames(comments []Comment) {
	if len(comments) == 0 {
		return
	}

	ids := lo.Uniq(lo.Map(comments, func(cm Comment, _ int) string {
		return cm.UserID
	}))

	var authors []user.User
	if err := database.DB.Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return
	}

	byID := lo.KeyBy(authors, func(u user.User) string { return u.ID })
	for i := range comments {
		if u, ok := byID[comments[i].UserID]; ok {
			comments[i].Username = u.Username
		}
	}
}
