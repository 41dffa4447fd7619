package router

import (
	"time"

	"github.com/atelier-dev/atelier/internal/handlers"
	"github.com/atelier-dev/atelier/internal/middleware"
	"github.com/atelier-dev/atelier/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(uploadDir string) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/media", uploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		users := api.Group("/users")
		{
			users.POST("", handlers.CreateUser)
			users.POST("/token", handlers.CreateToken)

			me := users.Group("/me", middleware.AuthMiddleware())
			{
				me.GET("", handlers.Me)
				me.PATCH("", handlers.UpdateMe)
				me.PUT("", handlers.UpdateMe)
			}
		}

		categories := api.Group("/categories", middleware.AuthMiddleware())
		{
			categories.GET("", handlers.ListCategories)
			categories.POST("", handlers.CreateCategory)
			categories.PATCH("/:id", handlers.UpdateCategory)
			categories.PUT("/:id", handlers.UpdateCategory)
			categories.DELETE("/:id", handlers.DeleteCategory)
		}

		supplies := api.Group("/supplies", middleware.AuthMiddleware())
		{
			supplies.GET("", handlers.ListSupplies)
			supplies.POST("", handlers.CreateSupply)
			supplies.PATCH("/:id", handlers.UpdateSupply)
			supplies.PUT("/:id", handlers.UpdateSupply)
			supplies.DELETE("/:id", handlers.DeleteSupply)
		}

		paintings := api.Group("/paintings", middleware.AuthMiddleware())
		{
			paintings.GET("", handlers.ListPaintings)
			paintings.POST("", handlers.CreatePainting)
			paintings.GET("/:id", handlers.GetPainting)
			paintings.PATCH("/:id", handlers.UpdatePainting)
			paintings.PUT("/:id", handlers.UpdatePainting)
			paintings.DELETE("/:id", handlers.DeletePainting)
			paintings.POST("/:id/upload-image", handlers.UploadPaintingImage)
		}
	}

	return r
}
