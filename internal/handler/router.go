package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/handler/api"
	"courtdesk/internal/handler/middleware"
	"courtdesk/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	facilityHandler *api.FacilityHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, facilityHandler, paymentHandler, authMiddleware)
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
	reservationHandler *api.ReservationHandler,
	facilityHandler *api.FacilityHandler,
	paymentHandler *api.PaymentHandler,
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

		facilities := apiGroup.Group("/facilities")
		{
			addRoutes(facilities, []route{
				{Method: http.MethodGet, Path: "", Handler: facilityHandler.ListFacilities},
				{Method: http.MethodGet, Path: "/:id", Handler: facilityHandler.GetFacility},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			// Creation is open to guests; the handler checks the admin
			// channel against the authenticated role.
			open := reservations.Group("")
			open.Use(authMiddleware.OptionalAuth())
			addRoutes(open, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
			})

			authed := reservations.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{
					Method:  http.MethodGet,
					Path:    "",
					Handler: reservationHandler.ListByFacilityDay,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(account.RoleStaff)},
				},
				{Method: http.MethodGet, Path: "/upcoming", Handler: reservationHandler.ListUpcoming},
				{Method: http.MethodGet, Path: "/history", Handler: reservationHandler.ListHistory},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/webhook", Handler: paymentHandler.Webhook},
			})

			paymentsAuthed := payments.Group("")
			paymentsAuthed.Use(authMiddleware.RequireAuth())
			addRoutes(paymentsAuthed, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.CreatePayment},
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
