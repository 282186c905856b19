package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zekken26/quick-serve/config"
	repository "github.com/Zekken26/quick-serve/internal/database/memory"
	"github.com/Zekken26/quick-serve/internal/service"
	"github.com/Zekken26/quick-serve/internal/transport"

	"github.com/Zekken26/quick-serve/pkg/redis"
	"github.com/Zekken26/quick-serve/pkg/session"
	"github.com/Zekken26/quick-serve/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize the in-memory store with the sample data. All state
	// lives for the lifetime of the process; a restart resets it.
	store := repository.NewSeededStore()

	// Session store: Redis when configured, process memory otherwise
	var sessions session.Store
	if cfg.Redis.Host != "" {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, cfg.Session.TTL)
		logrus.Info("Redis session store initialized")
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
		logrus.Info("In-memory session store initialized")
	}

	// Initialize media storage
	files := storage.NewFileStorage(cfg.App.MediaDir)
	images := storage.NewImageStore(files, cfg.Upload.MaxImageWidth)

	// Initialize services
	catalogService := service.NewCatalogService(store.Services, store.Categories)
	bookingService := service.NewBookingService(store.Bookings, store.Services, store.Users)
	userService := service.NewUserService(store.Users, store.Bookings)
	uploadService := service.NewUploadService(images, cfg.App.BaseURL)

	// Initialize handlers
	serviceHandler := transport.NewServiceHandler(catalogService)
	bookingHandler := transport.NewBookingHandler(bookingService)
	userHandler := transport.NewUserHandler(userService, sessions)
	uploadHandler := transport.NewUploadHandler(uploadService)

	// Setup HTTP server
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := transport.InitRoutes(serviceHandler, bookingHandler, userHandler, uploadHandler, transport.RouterOptions{
		Sessions:         sessions,
		MediaDir:         cfg.App.MediaDir,
		SimulatedLatency: cfg.App.SimulatedLatency,
	})

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, handler); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
