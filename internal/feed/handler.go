package feed

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/logs"
	"github.com/MuhammadMLV/Yatube-Back/internal/utils"
)

// GetFeed GET /api/posts
func GetFeed(c *gin.Context) {
	page := ParsePage(c.DefaultQuery("page", "1"))

	posts, err := ListAll(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		logs.LogJSON("ERROR", "Error fetching feed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "page": page})
}

// GetGroupFeed GET /api/groups/:slug/posts
func GetGroupFeed(c *gin.Context) {
	slug := c.Param("slug")
	page := ParsePage(c.DefaultQuery("page", "1"))

	g, posts, err := ListByGroup(slug, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Groupe introuvable"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": g, "posts": posts, "page": page})
}

// GetAuthorFeed GET /api/users/username/:username/posts
func GetAuthorFeed(c *gin.Context) {
	username := c.Param("username")
	page := ParsePage(c.DefaultQuery("page", "1"))

	viewerID := c.GetString("user_id")

	author, posts, err := ListByAuthor(username, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		}
		return
	}

	response := gin.H{
		"author": gin.H{
			"id":         author.ID,
			"username":   author.Username,
			"avatar_url": author.AvatarURL,
		},
		"posts": posts,
		"page":  page,
	}

	// Pour un visiteur connecté distinct de l'auteur : suit-il cet auteur ?
	if viewerID != "" && viewerID != author.ID {
		isFollowing, err := utils.IsFollowing(viewerID, author.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la vérification du suivi"})
			return
		}
		response["is_following"] = isFollowing
	}

	c.JSON(http.StatusOK, response)
}

// GetFollowedFeed GET /api/feed/following — posts des auteurs suivis
func GetFollowedFeed(c *gin.Context) {
	viewerID := c.GetString("user_id")
	page := ParsePage(c.DefaultQuery("page", "1"))

	posts, err := ListFollowed(viewerID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		logs.LogJSON("ERROR", "Error fetching followed feed", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": viewerID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "page": page})
}
