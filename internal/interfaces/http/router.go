package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "helpdesk/internal/application/auth/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// Router wires repositories, use cases, handlers and middleware into a gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *authhandlers.AuthHandler
	ticketHandler  *tickethandlers.TicketHandler
	authMiddleware *middleware.AuthMiddleware
	loginRateLimit gin.HandlerFunc
	cfg            *config.Config
	logger         logger.Interface
}

func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, txManager, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, commentRepo, txManager, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, log)

	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		getTicketUC,
		listTicketsUC,
		updateTicketUC,
		deleteTicketUC,
		addCommentUC,
		listCommentsUC,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)

	var loginRateLimit gin.HandlerFunc
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		loginRateLimit = middleware.LoginRateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.LoginPerMinute,
			RequestsPerHour:   cfg.RateLimit.LoginPerHour,
		}, log)
		log.Infow("login rate limiting enabled", "redis_addr", cfg.Redis.GetAddr())
	} else {
		log.Info("redis not configured, login rate limiting disabled")
	}

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		ticketHandler:  ticketHandler,
		authMiddleware: authMiddleware,
		loginRateLimit: loginRateLimit,
		cfg:            cfg,
		logger:         log,
	}
}

// SetupRoutes registers middleware and all API routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "helpdesk-api",
			"status":  "running",
		})
	})

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		LoginRateLimit: r.loginRateLimit,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
