package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dkroell/splitpot/internal/activity"
	"github.com/dkroell/splitpot/internal/auth"
	"github.com/dkroell/splitpot/internal/balance"
	"github.com/dkroell/splitpot/internal/config"
	"github.com/dkroell/splitpot/internal/database"
	"github.com/dkroell/splitpot/internal/event"
	"github.com/dkroell/splitpot/internal/expense"
	"github.com/dkroell/splitpot/internal/participant"
	"github.com/dkroell/splitpot/internal/payment"
)

// @title           Splitpot API
// @version         1.0
// @description     Shared expense ledger for ad-hoc events
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// Activity feature (other features record into it)
	activityRepo := activity.NewRepository(db)
	activityService := activity.NewService(activityRepo)
	activityHandler := activity.NewHandler(activityService)

	// Event feature
	eventRepo := event.NewRepository(db)
	eventService := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventService, tokens)

	// Participant feature
	participantRepo := participant.NewRepository(db)
	participantService := participant.NewService(participantRepo, tokens, activityService)
	participantHandler := participant.NewHandler(participantService, tokens)

	// Expense feature
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, participantRepo, activityService)
	expenseHandler := expense.NewHandler(expenseService)

	// Payment feature
	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo, participantRepo, activityService)
	paymentHandler := payment.NewHandler(paymentService)

	// Balance feature (read-only, computed from the ledger)
	balanceRepo := balance.NewRepository(db)
	balanceService := balance.NewService(balanceRepo)
	balanceHandler := balance.NewHandler(balanceService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/events", eventHandler.Routes())
		r.Mount("/participants", participantHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/payments", paymentHandler.Routes())
		r.Mount("/balances", balanceHandler.Routes())
		r.Mount("/activities", activityHandler.Routes())
	})

	// Swagger UI
	r.Get("/docs/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "docs/swagger.json")
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.json"),
	))

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
