package api

import (
	"net/http"

	"webstar/startpage-worker/internal/api/controllers"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates and configures a new Gin router. batchController may be
// nil, in which case the batch endpoint is not registered.
func NewRouter(log logrus.FieldLogger, searchHandler controllers.SearchService, batchController *controllers.BatchController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware(log))

	// Initialize controllers
	searchController := controllers.NewSearchController(searchHandler)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		search := v1.Group("/search")
		search.POST("/web", searchController.Web)
		search.POST("/images", searchController.Images)
		search.POST("/videos", searchController.Videos)
		search.POST("/news", searchController.News)
		search.POST("/places", searchController.Places)
		search.POST("/advanced", searchController.AdvancedSearch)
		search.POST("/url", searchController.SearchURL)
		if batchController != nil {
			search.POST("/batch", batchController.HandleBatch)
		}

		v1.GET("/suggestions", searchController.Suggestions)
		v1.POST("/instant-answers", searchController.InstantAnswers)
		v1.GET("/usage", searchController.Usage)
	}

	return router
}
