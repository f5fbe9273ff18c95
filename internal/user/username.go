package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/logs"
	"github.com/MuhammadMLV/Yatube-Back/internal/utils"
)

// GetUserByUsername GET /api/users/username/:username
func GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	currentUserID := c.GetString("user_id")

	var user User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		logs.LogJSON("WARN", "User not found", map[string]interface{}{
			"error":    err.Error(),
			"route":    "/api/users/username/:username",
			"username": username,
			"userID":   currentUserID,
		})
		return
	}

	// On retourne uniquement les champs publics
	dataUser := gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"avatar_url": user.AvatarURL,
			"bio":        user.Bio,
		},
		"stats": gin.H{},
	}

	// is_following uniquement pour un visiteur connecté distinct de l'auteur
	if currentUserID != "" && currentUserID != user.ID {
		okFollow, err := utils.IsFollowing(currentUserID, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la vérification du suivi"})
			logs.LogJSON("ERROR", "Error during follow-up verification", map[string]interface{}{
				"error":    err.Error(),
				"route":    "/api/users/username/:username",
				"username": username,
				"userID":   currentUserID,
			})
			return
		}
		dataUser["is_following"] = okFollow
	}

	if user.ID == currentUserID {
		dataUser["user"].(gin.H)["email"] = user.Email
		dataUser["user"].(gin.H)["firstname"] = user.Firstname
		dataUser["user"].(gin.H)["lastname"] = user.Lastname
		if user.IsAdmin {
			dataUser["user"].(gin.H)["is_admin"] = true
		}
	}

	var followersCount, followingCount, postsCount int64

	database.DB.Model(&utils.Follow{}).Where("author_id = ?", user.ID).Count(&followersCount)
	database.DB.Model(&utils.Follow{}).Where("follower_id = ?", user.ID).Count(&followingCount)
	database.DB.Table("posts").Where("user_id = ?", user.ID).Count(&postsCount)

	stats := dataUser["stats"].(gin.H)
	stats["followers_count"] = followersCount
	stats["following_count"] = followingCount
	stats["posts_count"] = postsCount

	c.JSON(http.StatusOK, dataUser)
	logs.LogJSON("INFO", "User fetched successfully", map[string]interface{}{
		"route":    "/api/users/username/:username",
		"username": username,
		"userID":   currentUserID,
	})
}
