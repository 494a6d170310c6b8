package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Sessions  *handlers.SessionHandler
	Food      *handlers.FoodHandler
	Visits    *handlers.VisitHandler
	Settings  *handlers.SettingsHandler
	Analytics *handlers.AnalyticsHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/gaming-sessions", h.Sessions.List)
		api.POST("/gaming-sessions", h.Sessions.Create)
		api.DELETE("/gaming-sessions/:id", h.Sessions.Delete)

		api.GET("/food-entries", h.Food.List)
		api.POST("/food-entries", h.Food.Create)
		api.DELETE("/food-entries/:id", h.Food.Delete)

		api.GET("/visits", h.Visits.List)
		api.POST("/visits", h.Visits.Create)
		api.DELETE("/visits/:id", h.Visits.Delete)

		api.GET("/settings", h.Settings.Get)
		api.PUT("/settings", h.Settings.Replace)

		api.GET("/analytics/daily", h.Analytics.Daily)
		api.GET("/analytics/range", h.Analytics.Range)
		api.GET("/schedule/week", h.Analytics.WeekGrid)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
