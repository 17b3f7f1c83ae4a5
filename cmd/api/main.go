package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/config"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/database"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/http/handlers"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/http/middleware"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/mail"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/queue"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)
	activityRepo := database.NewActivityRepository(db)
	catalogRepo := database.NewCatalogRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	var mailSender usecase.EmailService
	if cfg.MailHost != "" {
		mailSender = mail.NewEmailSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.SalesInbox,
		)
	}

	// 3. Worker (drains the activity queue into Postgres)
	worker := queue.NewWorker(rabbitMQ.Ch, activityRepo)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	resolver := usecase.NewResolveIdentityUseCase(userRepo)
	recorder := usecase.NewRecordActivityUseCase(producer)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, recorder, mailSender)
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(leadRepo, activityRepo, recorder)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, resolver)
	adminHandler := handlers.NewAdminHandler(listLeadsUC, updateStatusUC, analyticsUC)
	activityHandler := handlers.NewActivityHandler(recorder, resolver)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo, analyticsUC, recorder, resolver)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", handlers.UserIDHeader},
		AllowCredentials: true,
	}))

	r.Post("/api/leads", leadHandler.Create)
	r.Post("/api/activity", activityHandler.Record)

	r.Get("/api/categories", catalogHandler.ListCategories)
	r.Get("/api/categories/{slug}/services", catalogHandler.ListServices)
	r.Get("/api/services/{id}", catalogHandler.GetService)

	r.Get("/api/admin/leads", adminHandler.ListLeads)
	r.Patch("/api/admin/leads/{id}/status", adminHandler.UpdateLeadStatus)
	r.Get("/api/admin/analytics", adminHandler.Analytics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 OrangePortal API listening on %s", addr)
	http.ListenAndServe(addr, r)
}
