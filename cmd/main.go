package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/lshigami/examdesk/config"
	"github.com/lshigami/examdesk/database"
	_ "github.com/lshigami/examdesk/docs" // Swagger docs
	"github.com/lshigami/examdesk/internal/cache"
	adminctrl "github.com/lshigami/examdesk/internal/controller/admin"
	studentctrl "github.com/lshigami/examdesk/internal/controller/student"
	"github.com/lshigami/examdesk/internal/logger"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Examdesk API
// @version 1.0
// @description Students author tests, submit answers once per test and get them auto-graded.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	app := fx.New(
		// Core
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewCacheStore,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewStudentRepository,
			repository.NewTestRepository,
			repository.NewSubmissionRepository,
		),

		// Services
		fx.Provide(
			service.NewGradingEngine,
			service.NewStudentService,
			service.NewTestService,
			func(
				studentRepo repository.StudentRepository,
				testRepo repository.TestRepository,
				submissionRepo repository.SubmissionRepository,
				engine service.GradingEngine,
				store cache.Store,
				cfg *config.Config,
			) service.SubmissionService {
				return service.NewSubmissionService(studentRepo, testRepo, submissionRepo, engine, store, cfg.Cache.TTL)
			},
		),

		// Controllers
		fx.Provide(
			adminctrl.NewStudentController,
			studentctrl.NewTestController,
			studentctrl.NewSubmissionController,
		),

		fx.Invoke(InitLogger),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func InitLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

// NewCacheStore uses redis when REDIS_ADDR is set and an in-process store otherwise.
func NewCacheStore(lc fx.Lifecycle, cfg *config.Config) cache.Store {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, using in-memory cache")
		return cache.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, cache reads will miss")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisStore(client, "examdesk:")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(cfg.CORS.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	studentAdminCtrl *adminctrl.StudentController,
	testCtrl *studentctrl.TestController,
	submissionCtrl *studentctrl.SubmissionController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/admin/students", studentAdminCtrl.RegisterStudent)
		api.GET("/admin/students/:student_id", studentAdminCtrl.GetStudent)
	}
	studentctrl.RegisterRoutes(api, testCtrl, submissionCtrl)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Examdesk API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
