package routes

import (
	"magazine/internal/controllers"
	"magazine/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutesPublic := router.Group("/auth")
	{
		authRoutesPublic.POST("/signup", authController.SignUp)
		authRoutesPublic.POST("/signin", authController.SignIn)
		authRoutesPublic.POST("/signout", authController.SignOut)
	}

	authRoutesPrivate := router.Group("/auth")
	authRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		authRoutesPrivate.GET("/me", authController.Me)
	}
}
