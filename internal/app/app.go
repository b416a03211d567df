package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	songHTTP "songhub/internal/controller/http"
	"songhub/internal/repo/persistent"
	"songhub/internal/usecase"
	"songhub/pkg/cache"
	"songhub/pkg/config"
	"songhub/pkg/database"
	"songhub/pkg/jwt"
	"songhub/pkg/logger"
	"songhub/pkg/middleware"
	"songhub/pkg/queue"
	"songhub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "songhub/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	accountRepo := persistent.NewAccountRepository(a.db)
	genreRepo := persistent.NewGenreRepository(a.db)
	songRepo := persistent.NewSongRepository(a.db)
	playlistRepo := persistent.NewPlaylistRepository(a.db)

	// Seed roles, the admin account and the fixed genre set
	if err := Seed(a.cfg, a.log, accountRepo, genreRepo); err != nil {
		a.log.Error("Failed to seed defaults: %v", err)
		return err
	}

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(accountRepo, a.jwtService, a.log)
	catalogUseCase := usecase.NewCatalogUseCase(songRepo, genreRepo, a.s3Client, a.log)
	interactionUseCase := usecase.NewInteractionUseCase(songRepo, a.redisClient, a.queueClient, a.s3Client, a.log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, songRepo, a.log)

	// Initialize HTTP handlers
	authHandler := songHTTP.NewAuthHandler(authUseCase)
	songHandler := songHTTP.NewSongHandler(catalogUseCase, interactionUseCase, a.log)
	playlistHandler := songHTTP.NewPlaylistHandler(playlistUseCase)

	// Setup router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("")
		if a.redisClient != nil {
			auth.Use(middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute))
		}
		{
			auth.POST("/signup_user", authHandler.SignupUser)
			auth.POST("/login_user", authHandler.LoginUser)
			auth.POST("/signup_creator", authHandler.SignupCreator)
			auth.POST("/login_creator", authHandler.LoginCreator)
			auth.POST("/login_admin", authHandler.LoginAdmin)
		}

		// Public catalog
		api.GET("/songs", songHandler.ListSongs)
		api.GET("/songs/:id", songHandler.GetSong)
		api.POST("/songs/:id/play", songHandler.PlaySong)
		api.GET("/genres", func(c *gin.Context) {
			genres, err := catalogUseCase.ListGenres()
			if err != nil {
				c.JSON(500, gin.H{"error": "failed to list genres"})
				return
			}
			c.JSON(200, gin.H{"genres": genres})
		})

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/me", authHandler.Me)

			// Creator-scoped routes
			creator := protected.Group("")
			creator.Use(middleware.RequireKind("creator"))
			{
				creator.GET("/creator_dashboard", songHandler.CreatorDashboard)
				creator.POST("/add_song", songHandler.AddSong)
				creator.GET("/get_songs", songHandler.GetSongs)
				creator.POST("/edit_song/:id", songHandler.EditSong)
				creator.DELETE("/delete_song/:id", songHandler.DeleteSong)
			}

			// End-user-scoped routes
			user := protected.Group("")
			user.Use(middleware.RequireKind("user"))
			{
				user.POST("/songs/:id/like", songHandler.LikeSong)
				user.GET("/liked_songs", songHandler.GetLikedSongs)

				user.POST("/playlists", playlistHandler.CreatePlaylist)
				user.GET("/playlists", playlistHandler.GetPlaylists)
				user.GET("/playlists/:id", playlistHandler.GetPlaylist)
				user.DELETE("/playlists/:id", playlistHandler.DeletePlaylist)
				user.POST("/playlists/:id/songs", playlistHandler.AddPlaylistSong)
				user.DELETE("/playlists/:id/songs/:songID", playlistHandler.RemovePlaylistSong)
			}
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("songhub starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("songhub exited")
	return nil
}
