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

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vodninamlyn/wedding-rsvp/config"
	repository "github.com/vodninamlyn/wedding-rsvp/internal/database/postgres"
	"github.com/vodninamlyn/wedding-rsvp/internal/service"
	"github.com/vodninamlyn/wedding-rsvp/internal/transport"
	"github.com/vodninamlyn/wedding-rsvp/internal/worker"
	"github.com/vodninamlyn/wedding-rsvp/pkg/postgres"
	"github.com/vodninamlyn/wedding-rsvp/pkg/redis"
	"github.com/vodninamlyn/wedding-rsvp/pkg/telegram"
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
		IdleTimeout:       cfg.Server.IdleTimeout,
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

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repository
	rsvpRepo := repository.NewRsvpRepository(db)

	// Initialize stats cache when Redis is configured
	var statsCache service.StatsCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		statsCache = service.NewRedisStatsCache(redisClient, cfg.Rsvp.StatsCacheTTL)
		logrus.Info("Stats cache initialized")
	} else {
		logrus.Warn("Redis disabled, stats will be recomputed on every request")
	}

	// Initialize Telegram bot
	var telegramBot *telegram.Bot
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		logrus.Info("Telegram bot initialized")
	} else {
		logrus.Warn("Telegram bot not configured, notifications disabled")
	}

	// Initialize services
	rsvpService, err := service.NewRsvpService(rsvpRepo, statsCache, telegramBot, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize rsvp service: %v", err)
	}
	adminService := service.NewAdminService(rsvpRepo, statsCache)
	authService := service.NewAuthService(cfg)

	// Start stats refresh worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsWorker := worker.NewStatsRefreshWorker(adminService, cfg.Worker.StatsRefreshInterval)
	go statsWorker.Start(ctx)
	logrus.Info("Stats refresh worker started")

	// Initialize handlers
	rsvpHandler := transport.NewRsvpHandler(rsvpService)
	adminHandler := transport.NewAdminHandler(adminService, authService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		routes := transport.InitRoutes(rsvpHandler, adminHandler, authService, cfg.Server.CorsOrigins)
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
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
