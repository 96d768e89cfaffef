package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lesson-scheduler/internal/domain/user"
	"lesson-scheduler/internal/handler/api"
	"lesson-scheduler/internal/handler/middleware"
	"lesson-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	clientsHandler *api.ClientsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, availabilityHandler, bookingHandler, clientsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	clientsHandler *api.ClientsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		trainers := apiGroup.Group("/trainers")
		trainers.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(trainers, []route{
				{Method: http.MethodGet, Path: "", Handler: clientsHandler.ListTrainers},
				{Method: http.MethodGet, Path: "/:id/clients", Handler: clientsHandler.ListTrainerClients},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "/:id/packages", Handler: clientsHandler.ListClientPackages},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodPost, Path: "/slots", Handler: availabilityHandler.SaveSlot},
				{Method: http.MethodPost, Path: "/rules", Handler: availabilityHandler.ApplyRule},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.BookLesson, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
