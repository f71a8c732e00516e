package main

import (
	"net/http"
	"os"
	"time"

	"magazine/database"
	"magazine/internal/cache"
	"magazine/internal/controllers"
	"magazine/internal/editor"
	"magazine/internal/logger"
	"magazine/internal/middleware"
	"magazine/internal/repository"
	"magazine/internal/session"
	"magazine/routes"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		logger.Warn("no .env file found, using process environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		logger.Fatal("failed to run database migrations", "error", err)
	}

	// Redis is optional; without it article reads go straight to the
	// database.
	var articleRepo repository.ArticleRepository
	redisClient, err := cache.NewClient()
	if err != nil {
		logger.Warn("redis unavailable, article cache disabled", "error", err)
		articleRepo = repository.NewArticleRepository(database.DB)
	} else {
		defer redisClient.Close()
		articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient)
	}

	userRepo := repository.NewUserRepository(database.DB)
	sessionCache := session.NewCache()
	sessionCache.Subscribe(func(s session.Session) {
		logger.Info("session changed", "logged_in", s.LoggedIn, "email", s.Email)
	})

	coordinator := editor.NewCoordinator(articleRepo)
	coordinator.OnRefresh(func(id string) {
		// UpdateFields already drops its own caches; this hook keeps any
		// other cached projections honest.
		_ = articleRepo.InvalidateCache(id)
	})

	articleController := controllers.NewArticleController(articleRepo)
	editorController := controllers.NewEditorController(articleRepo, coordinator)
	authController := controllers.NewAuthController(userRepo, sessionCache)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.Metrics())

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "magazine-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	router.Use(sessions.Sessions("magazine_session", store))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Magazine API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterEditorRoutes(router, editorController)
	routes.RegisterAuthRoutes(router, authController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	logger.Info("magazine server starting", "port", port)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
