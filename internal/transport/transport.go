package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Zekken26/quick-serve/internal/transport/middleware"
	"github.com/Zekken26/quick-serve/pkg/session"
	"github.com/gin-gonic/gin"
)

// RouterOptions собирает зависимости маршрутизатора
type RouterOptions struct {
	Sessions session.Store
	MediaDir string
	// Искусственная задержка каждого запроса; 0 отключает
	SimulatedLatency time.Duration
}

func InitRoutes(
	serviceHandler *ServiceHandler,
	bookingHandler *BookingHandler,
	userHandler *UserHandler,
	uploadHandler *UploadHandler,
	opts RouterOptions,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))
	router.Use(middleware.Session(opts.Sessions))
	if opts.SimulatedLatency > 0 {
		router.Use(middleware.Latency(opts.SimulatedLatency))
	}

	// Любой несопоставленный маршрут — ошибка интеграции, в ответе
	// называем метод и путь
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("endpoint not implemented: %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	// Загруженные изображения
	if opts.MediaDir != "" {
		router.Static("/media", opts.MediaDir)
	}

	// API routes
	api := router.Group("/api")
	{
		api.GET("/status/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		api.POST("/register/", userHandler.Register)
		api.POST("/login/", userHandler.Login)
		api.POST("/logout/", userHandler.Logout)

		// Service routes
		services := api.Group("/services")
		{
			services.GET("/", serviceHandler.GetAllServices)
			services.POST("/", serviceHandler.CreateService)
			services.GET("/:id/", serviceHandler.GetService)
			services.PUT("/:id/", serviceHandler.UpdateService)
			services.DELETE("/:id/", serviceHandler.DeleteService)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.GET("/", bookingHandler.GetMyBookings)
			bookings.POST("/", bookingHandler.CreateBooking)
			bookings.PATCH("/:id/", bookingHandler.UpdateBooking)
		}

		// Profile routes
		me := api.Group("/me")
		{
			me.GET("/", userHandler.GetMe)
			me.PUT("/", userHandler.UpdateMe)
			me.GET("/stats/", userHandler.GetMyStats)
		}

		// Category routes
		categories := api.Group("/categories")
		{
			categories.GET("/", serviceHandler.GetAllCategories)
			categories.POST("/", serviceHandler.CreateCategory)
		}

		// Admin routes. Роль на этом уровне не проверяется, пробел
		// зафиксирован в тестах
		admin := api.Group("/admin")
		{
			admin.GET("/bookings/", bookingHandler.GetAllBookings)
			admin.GET("/users/", userHandler.GetAllUsers)
			admin.POST("/users/:id/role/", userHandler.SetUserRole)
		}

		// Upload routes
		api.POST("/uploads/service-image/", uploadHandler.UploadServiceImage)
	}

	return router
}
