package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/follow"
	"github.com/MuhammadMLV/Yatube-Back/internal/group"
	"github.com/MuhammadMLV/Yatube-Back/internal/logs"
	"github.com/MuhammadMLV/Yatube-Back/internal/post"
	"github.com/MuhammadMLV/Yatube-Back/internal/user"
)

// GetStats GET /api/admin/stats (Admin seulement)
func GetStats(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var usersCount, postsCount, groupsCount, commentsCount, followsCount int64

	if err := database.DB.Model(&user.User{}).Count(&usersCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du calcul des statistiques"})
		logs.LogJSON("ERROR", "Stats error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	database.DB.Model(&post.Post{}).Count(&postsCount)
	database.DB.Model(&group.Group{}).Count(&groupsCount)
	database.DB.Model(&post.Comment{}).Count(&commentsCount)
	database.DB.Model(&follow.Follow{}).Count(&followsCount)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"users":    usersCount,
			"posts":    postsCount,
			"groups":   groupsCount,
			"comments": commentsCount,
			"follows":  followsCount,
		},
	})
}
