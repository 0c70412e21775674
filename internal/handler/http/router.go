package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
	"github.com/PurpleArcher2/discounts-app/internal/events"
	"github.com/PurpleArcher2/discounts-app/internal/handler/http/middleware"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/metrics"
	"github.com/PurpleArcher2/discounts-app/internal/usecase"
	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

type Router struct {
	authHandler     *AuthHandler
	adminHandler    *AdminHandler
	cafeHandler     *CafeHandler
	discountHandler *DiscountHandler
	eventsHandler   *EventsHandler
	userUsecase     usecasecontract.IUserUseCase
	jwtService      usecase.JWTService
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, directoryUsecase usecasecontract.IDirectoryUseCase, discountUsecase usecasecontract.IDiscountUseCase, hub *events.Hub, jwtService usecase.JWTService) *Router {
	return &Router{
		authHandler:     NewAuthHandler(userUsecase, directoryUsecase),
		adminHandler:    NewAdminHandler(userUsecase, directoryUsecase),
		cafeHandler:     NewCafeHandler(directoryUsecase, discountUsecase),
		discountHandler: NewDiscountHandler(discountUsecase),
		eventsHandler:   NewEventsHandler(hub),
		userUsecase:     userUsecase,
		jwtService:      jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	authRequired := middleware.AuthMiddleWare(r.jwtService, r.userUsecase)

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh-token", r.authHandler.RefreshToken)
		auth.POST("/logout", r.authHandler.Logout)
	}

	// Public cafe routes
	cafes := v1.Group("/cafes")
	{
		cafes.GET("", r.cafeHandler.ListCafes)
		cafes.GET("/:id", r.cafeHandler.GetCafe)
		cafes.GET("/:id/discounts", r.cafeHandler.ListCafeDiscounts)
		cafes.GET("/:id/eligible-discount", r.cafeHandler.GetEligibleDiscount)
	}

	// Change event stream for live UI refresh
	v1.GET("/events", r.eventsHandler.Stream)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(authRequired)
	{
		protected.GET("/me", r.authHandler.GetCurrentUser)
		protected.GET("/me/pending-cafe", r.authHandler.GetMyPendingCafe)

		// Cafe management (owner or admin, enforced in the handlers)
		protected.PATCH("/cafes/:id/mood", r.cafeHandler.SetMood)
		protected.PATCH("/cafes/:id", r.cafeHandler.UpdateDetails)

		// Discount management (owner or admin, enforced in the handlers)
		protected.POST("/discounts", r.discountHandler.CreateDiscount)
		protected.PATCH("/discounts/:id", r.discountHandler.UpdateDiscount)
		protected.DELETE("/discounts/:id", r.discountHandler.DeleteDiscount)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(authRequired, middleware.RequireRoles(entity.UserRoleAdmin))
	{
		admin.GET("/users", r.adminHandler.ListUsers)
		admin.POST("/users/:id/verify", r.adminHandler.VerifyUser)
		admin.DELETE("/users/:id", r.adminHandler.RejectUser)

		admin.GET("/pending-cafes", r.adminHandler.ListPendingCafes)
		admin.POST("/pending-cafes/:id/approve", r.adminHandler.ApproveCafeRequest)
		admin.DELETE("/pending-cafes/:id", r.adminHandler.RejectCafeRequest)

		admin.GET("/discounts", r.discountHandler.ListDiscounts)
	}
}
