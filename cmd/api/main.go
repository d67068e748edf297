package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leadboard/internal/infra/database"
	"github.com/xavierca1/leadboard/internal/infra/http/handlers"
	"github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/infra/integration/sheetfeed"
	"github.com/xavierca1/leadboard/internal/infra/integration/whatsapp"
	"github.com/xavierca1/leadboard/internal/infra/mail"
	"github.com/xavierca1/leadboard/internal/infra/queue"
	"github.com/xavierca1/leadboard/internal/infra/worker"
	"github.com/xavierca1/leadboard/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "user"),
		envOr("RABBITMQ_PASS", "password"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	markerRepo := database.NewSyncMarkerRepository(db)

	// 2. Gateways e Adapters
	feed := sheetfeed.NewClient(os.Getenv("SHEET_FEED_URL"), os.Getenv("SHEET_ID"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)
	whatsappClient := whatsapp.NewClient()

	// 3. Workers (scanner acha follow-ups vencidos; consumer dispara os lembretes)
	reminderWorker := queue.NewWorker(rabbitMQ.Ch, whatsappClient, mailSender, os.Getenv("REMINDER_EMAIL"))
	go reminderWorker.Start(queue.QueueName)

	dueScanner := worker.NewFollowUpReminderWorker(db, producer)
	go dueScanner.Start(context.Background())

	// 4. UseCases
	syncUC := usecase.NewSyncLeadsUseCase(leadRepo, markerRepo, feed)
	dashboardUC := usecase.NewDashboardUseCase(leadRepo, syncUC)
	transferUC := usecase.NewLeadTransferUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadUseCase(leadRepo)

	// 5. Handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, syncUC)
	leadHandler := handlers.NewLeadHandler(leadRepo, transferUC, updateUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Session-Phone"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session)

		r.Get("/dashboard", dashboardHandler.HandleLoad)
		r.Post("/sync", dashboardHandler.HandleSync)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.HandleList)
			r.Post("/import", leadHandler.HandleImport)
			r.Get("/export", leadHandler.HandleExport)
			r.Get("/template", leadHandler.HandleTemplate)
			r.Get("/{id}", leadHandler.HandleGet)
			r.Patch("/{id}/status", leadHandler.HandleUpdateStatus)
			r.Patch("/{id}/follow-up", leadHandler.HandleScheduleFollowUp)
			r.Patch("/{id}/comment", leadHandler.HandleEditComment)
		})
	})

	port := ":8080"
	log.Printf("🔥 Server LeadBoard rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
