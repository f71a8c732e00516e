package routes

import (
	"magazine/internal/controllers"
	"magazine/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutes := router.Group("/articles")
	{
		articleRoutes.GET("/", articleController.GetArticlesByType)
		articleRoutes.GET("/:id", articleController.GetArticleByID)
	}

	adminRoutes := router.Group("/admin/articles")
	adminRoutes.Use(middleware.AuthMiddleware())
	{
		adminRoutes.GET("/", articleController.GetAllArticles)
		adminRoutes.POST("/", articleController.CreateArticle)
	}
}
