package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/db"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/domain/attendance"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/domain/holiday"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/platform/config"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/platform/metrics"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/transport/http/api"
	attendancehandler "github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/transport/http/handlers/attendance"
	authhandler "github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/transport/http/handlers/auth"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	calendar := holiday.NewCalendar()
	attendanceService := attendance.NewService(attendance.NewStore(pool), calendar)
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)

		attendanceHandler := attendancehandler.NewHandler(attendanceService, cfg.AbsenceWindowDays)
		attendanceHandler.RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	log.Printf("attendance server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
