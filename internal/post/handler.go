package post

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/forms"
	"github.com/MuhammadMLV/Yatube-Back/internal/group"
	"github.com/MuhammadMLV/Yatube-Back/internal/logs"
	"github.com/MuhammadMLV/Yatube-Back/internal/storage"
)

var validImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".webp": true, ".heic": true,
}

// CreatePost POST /api/posts — création d'un post avec image optionnelle
func CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	// Récupération des données du formulaire
	text := c.PostForm("text")
	groupID, err := parseGroupID(c.PostForm("group_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Groupe invalide"})
		return
	}

	form := forms.PostForm{Text: text, GroupID: groupID}
	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire invalide", "fields": fieldErrors})
		return
	}

	// Le groupe doit exister s'il est fourni
	if groupID != nil {
		var g group.Group
		if err := database.DB.First(&g, "id = ?", *groupID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Groupe inexistant"})
			return
		}
	}

	// Upload de l'image si fournie
	imageURL := ""
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !validImageExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Extension de fichier invalide"})
			return
		}

		filename := fmt.Sprintf("post_%s%s", uuid.New().String(), ext)
		contentType := header.Header.Get("Content-Type")

		imageURL, err = storage.UploadToS3(file, filename, contentType, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'upload", "details": err.Error()})
			return
		}
	}

	// L'auteur est toujours l'identité du token, jamais un champ client
	newPost := Post{
		CreatedAt: time.Now(),
		UserID:    userID,
		GroupID:   groupID,
		Text:      text,
		ImageURL:  imageURL,
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		// Si l'insertion en BDD échoue, on supprime le fichier déjà uploadé
		if imageURL != "" {
			urlParts := strings.Split(imageURL, ".amazonaws.com/")
			if len(urlParts) > 1 {
				_ = storage.DeleteFromS3(urlParts[1])
			}
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du post"})
		logs.LogJSON("ERROR", "Post creation error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	// Redirection vers le profil de l'auteur
	var username string
	row := database.DB.Table("users").Select("username").Where("id = ?", userID).Row()
	if err := row.Scan(&username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération de l'utilisateur"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/api/users/username/"+username+"/posts")
}

// UpdatePost PUT /api/posts/:id — seuls texte, groupe et image sont modifiables
func UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	var post Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	// Un non-auteur est renvoyé vers le détail du post, sans erreur
	if post.UserID != userID {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/posts/%d", post.ID))
		return
	}

	text := c.PostForm("text")
	groupID, err := parseGroupID(c.PostForm("group_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Groupe invalide"})
		return
	}

	form := forms.PostForm{Text: text, GroupID: groupID}
	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire invalide", "fields": fieldErrors})
		return
	}

	if groupID != nil {
		var g group.Group
		if err := database.DB.First(&g, "id = ?", *groupID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Groupe inexistant"})
			return
		}
	}

	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}

	// Remplacement de l'image si une nouvelle est fournie
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !validImageExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Extension de fichier invalide"})
			return
		}

		filename := fmt.Sprintf("post_%s%s", uuid.New().String(), ext)
		contentType := header.Header.Get("Content-Type")

		imageURL, err := storage.UploadToS3(file, filename, contentType, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'upload", "details": err.Error()})
			return
		}
		updates["image_url"] = imageURL
	}

	// created_at et user_id ne sont jamais touchés
	if err := database.DB.Model(&post).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la modification du post"})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/posts/%d", post.ID))
}

// GetPostByID GET /api/posts/:id — détail du post avec ses commentaires
func GetPostByID(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	var post Post
	if err := database.DB.Preload("User").Preload("Group").First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération du post"})
		}
		return
	}

	var comments []Comment
	if err := database.DB.Where("post_id = ?", postID).Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		return
	}

	fillUsernames(comments)
	post.CommentsCount = int64(len(comments))

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// parseGroupID convertit le champ group_id optionnel du formulaire
func parseGroupID(raw string) (*uint, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	groupID := uint(id)
	return &groupID, nil
}
