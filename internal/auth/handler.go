package auth

import (
	"bytes"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/forms"
	"github.com/MuhammadMLV/Yatube-Back/internal/logs"
	"github.com/MuhammadMLV/Yatube-Back/internal/storage"
	"github.com/MuhammadMLV/Yatube-Back/internal/user"
)

// Signup POST /api/signup
func Signup(c *gin.Context) {
	var input struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Username  string `json:"username"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	form := forms.SignupForm{
		Email:     input.Email,
		Password:  input.Password,
		Username:  input.Username,
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		AvatarURL: input.AvatarURL,
		Bio:       input.Bio,
	}
	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire invalide", "fields": fieldErrors})
		return
	}

	// Vérification que email et username n'existent pas
	if user.ExistsByEmail(input.Email) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email déjà utilisé"})
		return
	}
	if user.ExistsByUsername(input.Username) {
		c.JSON(http.StatusConflict, gin.H{"error": "Nom d'utilisateur déjà utilisé"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de hachage du mot de passe"})
		return
	}

	userID := uuid.New().String()

	// Avatar fourni par URL : on le rapatrie sur notre bucket
	avatarURL := ""
	if input.AvatarURL != "" {
		avatarURL, err = importAvatar(userID, input.AvatarURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar inaccessible", "details": err.Error()})
			return
		}
	}

	newUser := user.User{
		ID:           userID,
		CreatedAt:    time.Now(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		AvatarURL:    avatarURL,
		Bio:          input.Bio,
	}

	if err := database.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur insertion base utilisateurs"})
		logs.LogJSON("ERROR", "User insert error", map[string]interface{}{
			"error":    err.Error(),
			"route":    "/api/signup",
			"username": input.Username,
		})
		return
	}

	token, err := GenerateToken(newUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Utilisateur inscrit",
		"user":    newUser,
		"token":   token,
	})
	logs.LogJSON("INFO", "User signed up", map[string]interface{}{
		"route":  "/api/signup",
		"userID": newUser.ID,
	})
}

// Login POST /api/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	var u user.User
	if err := database.DB.Where("email = ?", input.Email).First(&u).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants incorrects"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants incorrects"})
		return
	}

	token, err := GenerateToken(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

// LoginPage GET /api/login — cible des redirections login_required
func LoginPage(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "Connexion requise",
		"next":  c.Query("next"),
	})
}

// importAvatar télécharge l'avatar distant et l'héberge sur le bucket
func importAvatar(userID, sourceURL string) (string, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Get(sourceURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("téléchargement avatar : statut %d", resp.StatusCode())
	}

	ext := strings.ToLower(path.Ext(sourceURL))
	validExtensions := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	if !validExtensions[ext] {
		ext = ".jpg"
	}

	filename := fmt.Sprintf("user_%s%s", userID, ext)
	contentType := resp.Header().Get("Content-Type")

	return storage.UploadToS3(bytes.NewReader(resp.Body()), filename, contentType, "avatars")
}
