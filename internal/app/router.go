package app

import (
	"sysdesign_backend/docs"
	"sysdesign_backend/internal/config"
	"sysdesign_backend/internal/middleware"
	"sysdesign_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.GET("/me", middleware.AuthMiddleware(cfg), c.auth.Me)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.AuthMiddleware(cfg))
		{
			questions.GET("", c.question.List)
			questions.GET("/:id", c.question.Get)

			admin := questions.Group("")
			admin.Use(middleware.AdminOnly())
			{
				admin.POST("", c.question.Create)
				admin.POST("/seed", c.question.Seed)
				admin.PUT("/:id", c.question.Update)
				admin.DELETE("/:id", c.question.Delete)
			}
		}

		solutions := api.Group("/solutions")
		solutions.Use(middleware.AuthMiddleware(cfg))
		{
			solutions.GET("", c.solution.List)
			solutions.GET("/question/:questionId", c.solution.ListByQuestion)
			solutions.GET("/:id", c.solution.Get)
			solutions.POST("", c.solution.Create)
			solutions.PUT("/:id", c.solution.Update)
			solutions.POST("/:id/evaluate", c.solution.Evaluate)
			solutions.DELETE("/:id", c.solution.Delete)
		}
	}
}
