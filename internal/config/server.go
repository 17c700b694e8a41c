package config

import (
	"FiscalGolang/database/postgres"
	accountHandler "FiscalGolang/internal/api/account/handler"
	accountRepository "FiscalGolang/internal/api/account/repository"
	accountService "FiscalGolang/internal/api/account/service"
	authHandler "FiscalGolang/internal/api/auth/handler"
	authRepository "FiscalGolang/internal/api/auth/repository"
	authService "FiscalGolang/internal/api/auth/service"
	budgetHandler "FiscalGolang/internal/api/budget/handler"
	budgetRepository "FiscalGolang/internal/api/budget/repository"
	budgetService "FiscalGolang/internal/api/budget/service"
	categoryHandler "FiscalGolang/internal/api/category/handler"
	categoryRepository "FiscalGolang/internal/api/category/repository"
	categoryService "FiscalGolang/internal/api/category/service"
	goalHandler "FiscalGolang/internal/api/goal/handler"
	goalRepository "FiscalGolang/internal/api/goal/repository"
	goalService "FiscalGolang/internal/api/goal/service"
	transactionHandler "FiscalGolang/internal/api/transaction/handler"
	transactionRepository "FiscalGolang/internal/api/transaction/repository"
	transactionService "FiscalGolang/internal/api/transaction/service"
	"FiscalGolang/internal/middleware"
	"FiscalGolang/pkg/bcrypt"
	"FiscalGolang/pkg/redis"
	"FiscalGolang/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	redisServer redis.IRedis
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.Migrate(db); err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to run migrations: %v", err)
			}
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.redisServer == nil {
			return fmt.Errorf("redis must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.redisServer)
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.bcryptUtils, s.redisServer, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Account Domain
	accountRepo := accountRepository.New(s.db, s.log)
	accountServices := accountService.NewAccountService(s.log, accountRepo, s.utils)
	accountHandlers := accountHandler.New(s.log, s.validator, s.middleware, accountServices)

	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.utils)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Budget Domain
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, s.utils)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Goal Domain
	goalRepo := goalRepository.New(s.db, s.log)
	goalServices := goalService.NewGoalService(s.log, goalRepo, s.utils)
	goalHandlers := goalHandler.New(s.log, s.validator, s.middleware, goalServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		accountHandlers,
		categoryHandlers,
		transactionHandlers,
		budgetHandlers,
		goalHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
