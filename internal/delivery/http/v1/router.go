package v1

import (
	"net/http"

	"go-rotech-website/config"
	"go-rotech-website/internal/delivery/http/middleware"
	"go-rotech-website/internal/delivery/http/response"
	"go-rotech-website/internal/delivery/http/web"
	"go-rotech-website/internal/domain"
	"go-rotech-website/pkg/apperror"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	BookingUC domain.BookingUsecase
	CourseUC  domain.CourseUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Wrong method on a known route (e.g. GET /v1/booking) must answer 405,
	// not fall through to the 404 handler.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed("Method not allowed"))
	})
	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Not found"))
	})

	// Marketing site (server-rendered page + static assets)
	web.RegisterRoutes(r, deps.CourseUC, deps.Config.PublicBaseURL)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewBookingHandler(v1, deps.BookingUC) // Booking form (no auth required)
	NewCourseHandler(v1, deps.CourseUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
