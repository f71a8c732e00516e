package routes

import (
	"magazine/internal/controllers"
	"magazine/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterEditorRoutes(router *gin.Engine, editorController *controllers.EditorController) {
	editorRoutes := router.Group("/admin/editor")
	editorRoutes.Use(middleware.AuthMiddleware())
	{
		editorRoutes.GET("/:id", editorController.LoadArticle)
		editorRoutes.PUT("/:id", editorController.SaveArticle)
		editorRoutes.POST("/preview", editorController.PreviewArticle)
	}
}
