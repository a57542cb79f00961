package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	availableSlotsHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/available_slots"
	bookAppointmentHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/book_appointment"
	checkSlotHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/check_slot"
	checkUserHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/check_user"
	doctorsSlotHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/doctors_slot"
	getBookedAppointmentsHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/get_booked_appointments"
	getDataHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/get_data"
	getDoctorsListHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/get_doctors_list"
	getOtherAppointmentsHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/get_other_appointments"
	joinWaitingListHandler "github.com/Narayana2527/health-safari-apis/internal/api/handlers/join_waiting_list"
	"github.com/Narayana2527/health-safari-apis/internal/api/handlers/system"
	"github.com/Narayana2527/health-safari-apis/internal/api/middleware"
	"github.com/Narayana2527/health-safari-apis/internal/config"
	availabilityService "github.com/Narayana2527/health-safari-apis/internal/service/availability"
	bookSlotUC "github.com/Narayana2527/health-safari-apis/internal/usecase/book_slot"
	joinWaitlistUC "github.com/Narayana2527/health-safari-apis/internal/usecase/join_waitlist"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
	"github.com/Narayana2527/health-safari-apis/pkg/metrics"
	"github.com/Narayana2527/health-safari-apis/pkg/txmanager"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "hsapi",
		Short:        "Health Safari appointment availability service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to TOML config")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(seedCmd(&configPath))
	rootCmd.AddCommand(exportCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

// setup загружает конфигурацию и создает логгер
func setup(configPath string, opts ...logger.Option) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts = append([]logger.Option{logger.WithPretty(cfg.Logs.Pretty)}, opts...)
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

func runServe(configPath string) error {
	cfg, log, err := setup(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting health-safari-apis...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	if !cfg.Privacy.RedactPatientContacts {
		log.Warn("privacy.redact_patient_contacts is off: read endpoints expose patient email and mobile")
	}

	// Подключаем хранилище документа
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	repo, closeRepo, err := openRepository(startupCtx, cfg, log, metricsCollector)
	cancelStartup()
	if err != nil {
		log.Error("Failed to open storage: %v", err)
		return err
	}
	defer closeRepo()

	if cfg.Storage.Shared() {
		log.Warn("storage.backend=%s is reachable by other processes, but bookings are serialized only "+
			"inside this process: run a single replica against this document", cfg.Storage.Backend)
	}

	// Один процесс владеет документом: все мутации идут через этот менеджер
	txMgr := txmanager.NewTransactionManager()

	// Инициализируем сервисы и use cases
	availabilitySvc := availabilityService.NewService(repo, txMgr, log, cfg.Privacy.RedactPatientContacts)
	bookSlotUseCase := bookSlotUC.NewUseCase(repo, txMgr, metricsCollector, log)
	joinWaitlistUseCase := joinWaitlistUC.NewUseCase(repo, txMgr, metricsCollector, log)

	// Инициализируем handlers
	bookAppointment := bookAppointmentHandler.NewHandler(bookSlotUseCase, log)
	joinWaitingList := joinWaitingListHandler.NewHandler(joinWaitlistUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(availabilitySvc, log)
	checkUser := checkUserHandler.NewHandler(availabilitySvc, log)
	availableSlots := availableSlotsHandler.NewHandler(availabilitySvc, log)
	getBookedAppointments := getBookedAppointmentsHandler.NewHandler(availabilitySvc, log)
	getOtherAppointments := getOtherAppointmentsHandler.NewHandler(availabilitySvc, log)
	getDoctorsList := getDoctorsListHandler.NewHandler(availabilitySvc, log)
	doctorsSlot := doctorsSlotHandler.NewHandler(availabilitySvc, log)
	getData := getDataHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	chain := []mux.MiddlewareFunc{
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.AccessLog(log),
	}

	if cfg.Metrics.Enabled {
		chain = append(chain, middleware.HTTPMetrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	middleware.Apply(r, chain...)

	r.HandleFunc("/", system.Welcome).Methods(http.MethodGet)
	r.HandleFunc("/healthz", system.Healthz).Methods(http.MethodGet)

	// Мутации
	r.HandleFunc("/book-appointment", bookAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc("/join-waiting-list", joinWaitingList.Handle).Methods(http.MethodPost)

	// Чтение
	r.HandleFunc("/check-slot", checkSlot.Handle).Methods(http.MethodPost)
	r.HandleFunc("/check-user", checkUser.Handle).Methods(http.MethodPost)
	r.HandleFunc("/available-slots", availableSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc("/get-booked-appointments", getBookedAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/get-other-appointments", getOtherAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/get-doctors-list", getDoctorsList.Handle).Methods(http.MethodGet)
	r.HandleFunc("/doctors-slot", doctorsSlot.Handle).Methods(http.MethodGet)
	r.HandleFunc("/get-data", getData.Handle).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		return err
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
