package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/kamilczajka/FinanceTracker/internal/auth"
	"github.com/kamilczajka/FinanceTracker/internal/config"
	database "github.com/kamilczajka/FinanceTracker/internal/db"
	"github.com/kamilczajka/FinanceTracker/internal/finance/application"
	"github.com/kamilczajka/FinanceTracker/internal/finance/infrastructure"
	"github.com/kamilczajka/FinanceTracker/internal/finance/interfaces"
	"github.com/kamilczajka/FinanceTracker/internal/log"
)

type Response struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authMiddleware     *auth.Middleware
	authHandler        *interfaces.AuthHandler
	userHandler        *interfaces.UserHandler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	budgetHandler      *interfaces.BudgetHandler
}

func NewServer(
	dbService *database.DBService,
	authMiddleware *auth.Middleware,
	authHandler *interfaces.AuthHandler,
	userHandler *interfaces.UserHandler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	budgetHandler *interfaces.BudgetHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authMiddleware:     authMiddleware,
		authHandler:        authHandler,
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		budgetHandler:      budgetHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	stats := s.dbService.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()
	protect := s.authMiddleware.RequireAuth()

	// Public routes
	router.Handle("POST /api/v1/auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	router.Handle("POST /api/v1/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	router.Handle("GET /api/v1/health", http.HandlerFunc(s.handleHealth))

	// User profile
	router.Handle("GET /api/v1/users/me", protect(http.HandlerFunc(s.userHandler.HandleGetMe)))
	router.Handle("PATCH /api/v1/users/me", protect(http.HandlerFunc(s.userHandler.HandleUpdateMe)))

	// Categories
	router.Handle("POST /api/v1/categories", protect(http.HandlerFunc(s.categoryHandler.HandleCreateCategory)))
	router.Handle("GET /api/v1/categories", protect(http.HandlerFunc(s.categoryHandler.HandleListCategories)))
	router.Handle("PATCH /api/v1/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.HandleUpdateCategory)))
	router.Handle("DELETE /api/v1/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.HandleDeleteCategory)))

	// Transactions
	router.Handle("POST /api/v1/transactions", protect(http.HandlerFunc(s.transactionHandler.HandleCreateTransaction)))
	router.Handle("GET /api/v1/transactions", protect(http.HandlerFunc(s.transactionHandler.HandleListTransactions)))
	router.Handle("GET /api/v1/transactions/summary", protect(http.HandlerFunc(s.transactionHandler.HandleGetSummary)))
	router.Handle("GET /api/v1/transactions/monthly", protect(http.HandlerFunc(s.transactionHandler.HandleGetMonthlySummary)))
	router.Handle("PATCH /api/v1/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.HandleUpdateTransaction)))
	router.Handle("DELETE /api/v1/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.HandleDeleteTransaction)))

	// Budgets
	router.Handle("POST /api/v1/budgets", protect(http.HandlerFunc(s.budgetHandler.HandleCreateBudget)))
	router.Handle("GET /api/v1/budgets", protect(http.HandlerFunc(s.budgetHandler.HandleListBudgets)))
	router.Handle("PATCH /api/v1/budgets/{budgetID}", protect(http.HandlerFunc(s.budgetHandler.HandleUpdateBudget)))
	router.Handle("DELETE /api/v1/budgets/{budgetID}", protect(http.HandlerFunc(s.budgetHandler.HandleDeleteBudget)))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	logger := log.New(log.DefaultConfig())

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, continuing with system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		stdlog.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DatabaseURL)
	if err != nil {
		stdlog.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.Migrate(); err != nil {
		stdlog.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := infrastructure.NewPostgresUserRepository(dbService.DB)
	categoryRepo := infrastructure.NewPostgresCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewPostgresTransactionRepository(dbService.DB)
	budgetRepo := infrastructure.NewPostgresBudgetRepository(dbService.DB)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher()
	authMiddleware := auth.NewMiddleware(jwtManager, userRepo)

	userService := application.NewUserService(userRepo, hasher)
	authService := application.NewAuthService(userRepo, hasher, jwtManager, cfg.JWTExpiry)
	categoryService := application.NewCategoryService(categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo)
	budgetService := application.NewBudgetService(budgetRepo, transactionRepo)

	authHandler := interfaces.NewAuthHandler(userService, authService, respondJSON, respondError)
	userHandler := interfaces.NewUserHandler(userService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)

	server := NewServer(dbService, authMiddleware, authHandler, userHandler, categoryHandler, transactionHandler, budgetHandler)
	server.RegisterRoutes()

	logger.Info("Starting server", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, log.RequestMiddleware(logger)(server.router)); err != nil {
		stdlog.Fatalf("Could not start server: %v", err)
	}
}
