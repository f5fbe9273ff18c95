package group

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/forms"
	"github.com/MuhammadMLV/Yatube-Back/internal/logs"
)

// CreateGroup POST /api/groups (Admin seulement)
func CreateGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	form := forms.GroupForm{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire invalide", "fields": fieldErrors})
		return
	}

	// Le slug est unique sur l'ensemble des groupes
	var count int64
	database.DB.Model(&Group{}).Where("slug = ?", input.Slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug déjà utilisé"})
		return
	}

	newGroup := Group{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := database.DB.Create(&newGroup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du groupe"})
		logs.LogJSON("ERROR", "Group creation error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Groupe créé", "group": newGroup})
	logs.LogJSON("INFO", "Group created", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"slug":   newGroup.Slug,
	})
}

// GetGroups GET /api/groups
func GetGroups(c *gin.Context) {
	var groups []Group
	if err := database.DB.Order("title").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des groupes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroupBySlug GET /api/groups/:slug
func GetGroupBySlug(c *gin.Context) {
	slug := c.Param("slug")

	g, err := GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Groupe introuvable"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération du groupe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": g})
}
