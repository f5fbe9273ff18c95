package follow

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/logs"
	"github.com/MuhammadMLV/Yatube-Back/internal/user"
)

// FollowAuthor POST /api/profiles/:username/follow
func FollowAuthor(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	if err := Create(followerID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout du follow"})
		logs.LogJSON("ERROR", "Error adding follow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("author : %s", username),
		})
		return
	}

	logs.LogJSON("INFO", "Followed author", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("author : %s", username),
	})
	c.Redirect(http.StatusSeeOther, "/api/users/username/"+username)
}

// UnfollowAuthor DELETE /api/profiles/:username/follow
func UnfollowAuthor(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	if err := Delete(followerID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur unfollow"})
		logs.LogJSON("ERROR", "Error unfollow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("author : %s", username),
		})
		return
	}

	logs.LogJSON("INFO", "Unfollowed author", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("author : %s", username),
	})
	c.Redirect(http.StatusSeeOther, "/api/users/username/"+username)
}

// GetFollowing GET /api/following — auteurs suivis par l'utilisateur connecté
func GetFollowing(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")

	var follows []Follow
	if err := database.DB.
		Where("follower_id = ?", followerID).
		Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des abonnements"})
		logs.LogJSON("ERROR", "Error retrieving follows", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
		})
		return
	}

	ids := lo.Map(follows, func(f Follow, _ int) string {
		return f.AuthorID
	})

	var authors []user.User
	if err := database.DB.Where("id IN ?", ids).Find(&authors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des auteurs suivis"})
		logs.LogJSON("ERROR", "Error retrieving followed authors", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": authors})
}
