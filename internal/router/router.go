package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aprilfamily/cookbook-backend/internal/api"
	"github.com/aprilfamily/cookbook-backend/internal/middleware"
	"github.com/aprilfamily/cookbook-backend/internal/session"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth       *api.AuthHandler
	Recipes    *api.RecipeHandler
	Moderation *api.ModerationHandler
}

// Setup configures the application routes. loginLimiter may be nil, in which
// case login is not rate limited.
func Setup(
	handlers Handlers,
	sessions *session.Manager,
	allowedOrigins []string,
	loginLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("/api")

	// Auth routes
	login := []gin.HandlerFunc{}
	if loginLimiter != nil {
		login = append(login, loginLimiter.Middleware())
	}
	login = append(login, handlers.Auth.Login)
	root.POST("/login", login...)
	root.GET("/check-auth", handlers.Auth.CheckAuth)

	// Public recipe routes
	root.GET("/recipes", handlers.Recipes.ListRecipes)
	root.GET("/recipes/:id", handlers.Recipes.GetRecipe)
	root.POST("/recipes/:id/rate", handlers.Recipes.RateRecipe)
	root.POST("/recipes/:id/comment", handlers.Recipes.CommentRecipe)
	root.GET("/categories", handlers.Recipes.ListCategories)

	// Session-gated routes
	protected := root.Group("")
	protected.Use(middleware.RequireSession(sessions))
	{
		protected.POST("/logout", handlers.Auth.Logout)
		protected.POST("/recipes", handlers.Recipes.CreateRecipe)
		protected.POST("/upload-document", handlers.Moderation.UploadDocument)
		protected.GET("/pending-recipes", handlers.Moderation.ListPending)
		protected.GET("/pending-recipes/count", handlers.Moderation.CountPending)
		protected.GET("/pending-recipes/:id", handlers.Moderation.GetPending)
		protected.POST("/pending-recipes/:id/publish", handlers.Moderation.PublishPending)
		protected.DELETE("/pending-recipes/:id", handlers.Moderation.DeletePending)
	}

	return router
}
