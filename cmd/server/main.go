package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"rentacar/internal/api"
	"rentacar/internal/auth"
	"rentacar/internal/booking"
	"rentacar/internal/logger"
	"rentacar/internal/repository"
	"rentacar/internal/service"
)

const stalePendingTTL = 24 * time.Hour

func main() {
	godotenv.Load()
	log := logger.New()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	store := repository.NewStore(db)
	engine := booking.NewEngine(store, logger.NewEventLog(log), nil)

	vehicles, reservations, err := store.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}
	engine.Restore(vehicles, reservations)
	log.Infof("Loaded %d vehicles and %d reservations", len(vehicles), len(reservations))

	stripeService := service.NewStripeService()
	sender := service.NewSenderService(log)
	reservationService := service.NewReservationService(engine, store.Reservations, stripeService, sender, log)
	adminService := service.NewAdminService(engine, stripeService, store.Reservations, sender, log)
	adminAuthService := service.NewAdminAuthService(repository.NewAdminAuthRepository(db))
	jobService := service.NewJobService(engine, log)

	c := cron.New()
	c.AddFunc("@hourly", func() {
		jobService.CancelStalePendingReservations(context.Background(), stalePendingTTL)
	})
	c.Start()
	defer c.Stop()

	userReservationHandler := api.NewUserReservationHandler(reservationService)
	adminHandler := api.NewAdminHandler(adminService)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthService)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/vehicles", userReservationHandler.ListAvailableVehicles).Methods("GET")
	r.HandleFunc("/api/reservations", userReservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/pay", userReservationHandler.PayReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{user}", userReservationHandler.ListMyReservations).Methods("GET")
	r.HandleFunc("/api/reservations", userReservationHandler.CancelReservation).Methods("DELETE")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/users", adminAuthHandler.CreateUserAdmin).Methods("POST")
	admin.HandleFunc("/vehicles", adminHandler.AddVehicle).Methods("POST")
	admin.HandleFunc("/vehicles", adminHandler.ListVehicles).Methods("GET")
	admin.HandleFunc("/vehicles/{id}", adminHandler.UpdateVehicle).Methods("PUT")
	admin.HandleFunc("/vehicles/{id}", adminHandler.DeleteVehicle).Methods("DELETE")
	admin.HandleFunc("/vehicles/{id}/status", adminHandler.UpdateVehicleStatus).Methods("PUT")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations/status", adminHandler.UpdateReservationStatus).Methods("PUT")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
