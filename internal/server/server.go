// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lingua/internal/cache"
	"lingua/internal/config"
	"lingua/internal/database"
	"lingua/internal/featureflags"
	"lingua/internal/middleware"
	"lingua/internal/models"
	"lingua/internal/repository"
	"lingua/internal/service"
	"lingua/internal/upstream"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "lingua-api"
	tokenAudience = "lingua-client"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	featureFlags   *featureflags.Manager
	contentService *service.ContentService
	socialService  *service.SocialService
	plazaService   *service.PlazaService
	chatService    *service.ChatService
	deepl          *upstream.DeepLClient
	deepseek       *upstream.DeepSeekClient
	dictionary     *upstream.DictionaryClient
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	vocabRepo := repository.NewVocabRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	socialRepo := repository.NewSocialRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	prom := middleware.InitMetrics("lingua-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		contentService: service.NewContentService(noteRepo, vocabRepo, feedbackRepo),
		socialService:  service.NewSocialService(socialRepo, userRepo, vocabRepo),
		plazaService:   service.NewPlazaService(topicRepo, socialRepo),
		chatService:    service.NewChatService(messageRepo, userRepo),
		deepl:          upstream.NewDeepLClient("", cfg.DeepLAuthKey),
		deepseek:       upstream.NewDeepSeekClient("", cfg.DeepSeekAPIKey),
		dictionary:     upstream.NewDictionaryClient(cfg.DictionaryURL),
	}

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before middlewares that can short-circuit (e.g.
	// limiter) so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Lingua Backend Metrics Dashboard",
	}))

	// Auth routes
	api.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	api.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public plaza browsing
	api.Get("/plaza/topics", s.GetTopics)
	api.Get("/plaza/topics/:id", s.GetTopic)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// Profile
	protected.Get("/me", s.GetMyProfile)
	protected.Put("/me", s.UpdateMyProfile)

	// Notes
	notes := protected.Group("/notes")
	notes.Get("/", s.GetNotes)
	notes.Post("/", s.CreateNote)
	notes.Get("/:id", s.GetNote)
	notes.Delete("/:id", s.DeleteNote)

	// Vocabulary
	vocab := protected.Group("/vocab")
	vocab.Get("/", s.GetVocab)
	vocab.Post("/", s.AddVocab)
	vocab.Put("/:id", s.RenameVocab)
	vocab.Delete("/:id", s.DeleteVocab)

	// Social
	protected.Get("/rank", s.GetRank)
	protected.Post("/users/:id/like", s.ToggleLike)

	// Plaza authoring
	protected.Post("/plaza/topics", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_topic"), s.CreateTopic)
	protected.Post("/plaza/topics/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	protected.Post("/plaza/comments/:id/like", s.LikeComment)

	// Chat (poll-based)
	chat := protected.Group("/chat")
	chat.Post("/send", middleware.RateLimit(
		s.redis, 15, time.Minute, "send_chat"), s.SendMessage)
	chat.Get("/:otherId", s.GetChatHistory)
	chat.Get("/:otherId/new", s.GetNewMessages)

	// Feedback
	protected.Post("/feedback", s.SubmitFeedback)

	// Upstream proxies (feature-flagged)
	proxy := protected.Group("/proxy", s.upstreamEnabled())
	proxy.Post("/translate", middleware.RateLimit(
		s.redis, 20, time.Minute, "translate"), s.ProxyTranslate)
	proxy.Post("/chat", middleware.RateLimit(
		s.redis, 10, time.Minute, "ai_chat"), s.ProxyChat)
	proxy.Get("/dictionary/:word", middleware.RateLimit(
		s.redis, 30, time.Minute, "dictionary"), s.ProxyDictionary)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app degrades without Redis, so readiness only requires the DB.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server-held resources (database pool, Redis connection).
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// upstreamEnabled gates the proxy routes behind the upstream_proxies flag.
func (s *Server) upstreamEnabled() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userID").(uint)
		if !s.featureFlags.Enabled("upstream_proxies", userID) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Resource"))
		}
		return c.Next()
	}
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		// Store user ID in context
		c.Locals("userID", uint(userID))
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}
