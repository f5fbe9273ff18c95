package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MuhammadMLV/Yatube-Back/internal/admin"
	"github.com/MuhammadMLV/Yatube-Back/internal/auth"
	"github.com/MuhammadMLV/Yatube-Back/internal/cache"
	"github.com/MuhammadMLV/Yatube-Back/internal/config"
	"github.com/MuhammadMLV/Yatube-Back/internal/database"
	"github.com/MuhammadMLV/Yatube-Back/internal/feed"
	"github.com/MuhammadMLV/Yatube-Back/internal/follow"
	"github.com/MuhammadMLV/Yatube-Back/internal/group"
	"github.com/MuhammadMLV/Yatube-Back/internal/metrics"
	"github.com/MuhammadMLV/Yatube-Back/internal/middleware"
	"github.com/MuhammadMLV/Yatube-Back/internal/post"
	"github.com/MuhammadMLV/Yatube-Back/internal/storage"
	"github.com/MuhammadMLV/Yatube-Back/internal/user"
)

// Durée de vie du cache de la page d'accueil
const indexCacheTTL = 20 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL manquant")
	}

	database.Connect(cfg.DBUrl)
	database.Migrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&post.Comment{},
		&follow.Follow{},
	)

	if err := storage.InitS3(); err != nil {
		log.Fatalf("Erreur init S3: %v", err)
	}

	r := gin.Default()
	r.Use(metrics.Middleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page introuvable"})
	})

	api := r.Group("/api")

	// Inscription & Connexion
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)
	api.GET("/login", auth.LoginPage)

	// Routes publiques, identité optionnelle
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware())

	indexCache := cache.NewStore(indexCacheTTL)
	public.GET("/posts", cache.PageCache(indexCache), feed.GetFeed)

	public.GET("/posts/:id", post.GetPostByID)
	public.GET("/posts/:id/comments", post.GetCommentsByPostID)
	public.GET("/groups", group.GetGroups)
	public.GET("/groups/:slug", group.GetGroupBySlug)
	public.GET("/groups/:slug/posts", feed.GetGroupFeed)
	public.GET("/users/username/:username", user.GetUserByUsername)
	public.GET("/users/username/:username/posts", feed.GetAuthorFeed)

	// Routes nécessitant une connexion
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())

	authed.GET("/me", user.GetMe)
	authed.PUT("/me", user.UpdateMe)
	authed.POST("/posts", post.CreatePost)
	authed.PUT("/posts/:id", post.UpdatePost)
	authed.POST("/posts/:id/comments", post.CreateComment)
	authed.GET("/feed/following", feed.GetFollowedFeed)
	authed.GET("/following", follow.GetFollowing)
	authed.POST("/profiles/:username/follow", follow.FollowAuthor)
	authed.DELETE("/profiles/:username/follow", follow.UnfollowAuthor)

	// Routes admin
	adminRoutes := api.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
	adminRoutes.GET("/stats", admin.GetStats)

	api.POST("/groups", middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware(), group.CreateGroup)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Erreur serveur: %v", err)
	}
}
