package main

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/volunteer-directory-api/internal/cache"
	"github.com/yukikurage/volunteer-directory-api/internal/config"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
	"github.com/yukikurage/volunteer-directory-api/internal/database"
	"github.com/yukikurage/volunteer-directory-api/internal/handlers"
	"github.com/yukikurage/volunteer-directory-api/internal/logger"
	"github.com/yukikurage/volunteer-directory-api/internal/metrics"
	"github.com/yukikurage/volunteer-directory-api/internal/middleware"
	"github.com/yukikurage/volunteer-directory-api/internal/repository"
	"github.com/yukikurage/volunteer-directory-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Lookup cache and session store share Redis when it is enabled
	var lookupCache cache.LookupCache = cache.NopCache{}
	var store sessions.Store
	if cfg.RedisEnabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			PoolSize: constants.RedisPoolSize,
		})
		defer client.Close()
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr()), zap.Error(err))
		}
		lookupCache = cache.NewRedisLookupCache(client, cfg.LookupCacheTTL)

		store, err = redisStore.NewStore(
			constants.RedisPoolSize,
			"tcp",
			cfg.RedisAddr(),
			"",
			cfg.RedisPassword,
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			log.Fatal("Failed to create Redis session store", zap.Error(err))
		}
	} else {
		log.Warn("Redis disabled; using cookie sessions and no lookup cache")
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	// Configure session options based on environment
	isProduction := cfg.GinMode == gin.ReleaseMode
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAgeSecs,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})

	// Services
	m := metrics.New()
	directory := services.NewDirectoryService(
		repository.NewRepositories(db),
		lookupCache,
		m,
		log,
		services.Options{TrimOverfetch: cfg.SearchTrimOverfetch},
	)
	authService := services.NewAuthService(repository.NewModeratorRepository(db), log)

	if cfg.BootstrapModeratorUsername != "" {
		if _, err := authService.EnsureModerator(context.Background(), services.LoginInput{
			Username: cfg.BootstrapModeratorUsername,
			Password: cfg.BootstrapModeratorPassword,
		}); err != nil {
			log.Fatal("Failed to bootstrap moderator", zap.Error(err))
		}
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	handlers.RegisterRoutes(r, handlers.Handlers{
		Health:     handlers.NewHealthHandler(db),
		Auth:       handlers.NewAuthHandler(authService),
		Volunteers: handlers.NewVolunteerHandler(directory),
		Lookups:    handlers.NewLookupHandler(directory),
		Moderation: handlers.NewModerationHandler(directory),
	}, m.Handler())

	// Start server
	addr := ":" + cfg.Port
	log.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
