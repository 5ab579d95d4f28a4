package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dinoverse/configs"
	custommiddleware "dinoverse/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	App            configs.AppConfig
	AuthHandler    *AuthHandler
	ContentHandler *ContentHandler
	FinanceHandler *FinanceHandler
	TradeHandler   *TradeHandler
	HabitHandler   *HabitHandler
	LifeOSHandler  *LifeOSHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "dinoverse-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Client-facing site settings
	api.GET("/config", func(c echo.Context) error {
		return SuccessResponse(c, map[string]string{
			"animation_asset_url": config.App.AnimationAssetURL,
		})
	})

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.POST("/register", config.AuthHandler.Register)
		auth.GET("/me", config.AuthHandler.Me, custommiddleware.AuthMiddleware)
	}

	// Public site content
	{
		api.GET("/posts", config.ContentHandler.ListPublishedPosts)
		api.GET("/posts/:slug", config.ContentHandler.GetPostBySlug)
		api.GET("/portfolio", config.ContentHandler.ListPortfolio)
		api.GET("/services", config.ContentHandler.ListServices(true))
		api.GET("/products", config.ContentHandler.ListProducts(true))
		api.GET("/testimonials", config.ContentHandler.ListTestimonials(true))
		api.GET("/partners", config.ContentHandler.ListPartners)
		api.GET("/features", config.ContentHandler.ListFeatures)
	}

	// Admin routes (protected with Auth + Admin middleware)
	admin := api.Group("/admin", custommiddleware.AuthMiddleware, custommiddleware.AdminMiddleware)
	{
		// Marketing content
		admin.GET("/posts", config.ContentHandler.ListPosts)
		admin.POST("/posts", config.ContentHandler.CreatePost)
		admin.PUT("/posts/:id", config.ContentHandler.UpdatePost)
		admin.DELETE("/posts/:id", config.ContentHandler.DeletePost)

		admin.GET("/portfolio", config.ContentHandler.ListPortfolio)
		admin.POST("/portfolio", config.ContentHandler.CreatePortfolioItem)
		admin.PUT("/portfolio/:id", config.ContentHandler.UpdatePortfolioItem)
		admin.DELETE("/portfolio/:id", config.ContentHandler.DeletePortfolioItem)

		admin.GET("/services", config.ContentHandler.ListServices(false))
		admin.POST("/services", config.ContentHandler.CreateService)
		admin.PUT("/services/:id", config.ContentHandler.UpdateService)
		admin.DELETE("/services/:id", config.ContentHandler.DeleteService)

		admin.GET("/products", config.ContentHandler.ListProducts(false))
		admin.POST("/products", config.ContentHandler.CreateProduct)
		admin.PUT("/products/:id", config.ContentHandler.UpdateProduct)
		admin.DELETE("/products/:id", config.ContentHandler.DeleteProduct)

		admin.GET("/testimonials", config.ContentHandler.ListTestimonials(false))
		admin.POST("/testimonials", config.ContentHandler.CreateTestimonial)
		admin.PUT("/testimonials/:id", config.ContentHandler.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", config.ContentHandler.DeleteTestimonial)

		admin.GET("/partners", config.ContentHandler.ListPartners)
		admin.POST("/partners", config.ContentHandler.CreatePartner)
		admin.PUT("/partners/:id", config.ContentHandler.UpdatePartner)
		admin.DELETE("/partners/:id", config.ContentHandler.DeletePartner)

		admin.GET("/features", config.ContentHandler.ListFeatures)
		admin.POST("/features", config.ContentHandler.CreateFeature)
		admin.PUT("/features/:id", config.ContentHandler.UpdateFeature)
		admin.DELETE("/features/:id", config.ContentHandler.DeleteFeature)

		// Finance tracker
		admin.GET("/transactions", config.FinanceHandler.ListTransactions)
		admin.POST("/transactions", config.FinanceHandler.CreateTransaction)
		admin.PUT("/transactions/:id", config.FinanceHandler.UpdateTransaction)
		admin.DELETE("/transactions/:id", config.FinanceHandler.DeleteTransaction)

		// Trading journal
		admin.GET("/trades", config.TradeHandler.ListTrades)
		admin.GET("/trades/stats", config.TradeHandler.GetStats)
		admin.POST("/trades", config.TradeHandler.CreateTrade)
		admin.PUT("/trades/:id", config.TradeHandler.UpdateTrade)
		admin.DELETE("/trades/:id", config.TradeHandler.DeleteTrade)

		// Habit tracker
		admin.GET("/habits", config.HabitHandler.ListHabits)
		admin.POST("/habits", config.HabitHandler.CreateHabit)
		admin.PUT("/habits/:id", config.HabitHandler.UpdateHabit)
		admin.DELETE("/habits/:id", config.HabitHandler.DeleteHabit)
		admin.GET("/habits/logs", config.HabitHandler.ListLogs)
		admin.PUT("/habits/logs", config.HabitHandler.UpsertLog)
		admin.DELETE("/habits/logs/:id", config.HabitHandler.DeleteLog)
		admin.GET("/habits/:id/logs", config.HabitHandler.ListHabitLogs)
		admin.POST("/habits/close-out", config.HabitHandler.CloseOutNow)

		// Goals, rules, reflections, quotes
		admin.GET("/goals", config.LifeOSHandler.ListGoals)
		admin.POST("/goals", config.LifeOSHandler.CreateGoal)
		admin.PUT("/goals/:id", config.LifeOSHandler.UpdateGoal)
		admin.DELETE("/goals/:id", config.LifeOSHandler.DeleteGoal)

		admin.GET("/rules", config.LifeOSHandler.ListRules)
		admin.POST("/rules", config.LifeOSHandler.CreateRule)
		admin.PUT("/rules/:id", config.LifeOSHandler.UpdateRule)
		admin.DELETE("/rules/:id", config.LifeOSHandler.DeleteRule)

		admin.GET("/reflections", config.LifeOSHandler.ListReflections)
		admin.POST("/reflections", config.LifeOSHandler.CreateReflection)
		admin.PUT("/reflections/:id", config.LifeOSHandler.UpdateReflection)
		admin.DELETE("/reflections/:id", config.LifeOSHandler.DeleteReflection)

		admin.GET("/quotes", config.LifeOSHandler.ListQuotes)
		admin.POST("/quotes", config.LifeOSHandler.CreateQuote)
		admin.PUT("/quotes/:id", config.LifeOSHandler.UpdateQuote)
		admin.DELETE("/quotes/:id", config.LifeOSHandler.DeleteQuote)
	}
}
