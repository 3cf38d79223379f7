package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_appointment"
	findNextAvailableHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/find_next_available"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_appointments"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/reschedule_appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/googlecalendar"
	scheduleService "github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	cancelAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	findNextAvailableUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_next_available"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	listAppointmentsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/list_appointments"
	rescheduleAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/keylock"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Google Calendar
	calendarSvc, err := googlecalendar.NewService(context.Background(), cfg.Google)
	if err != nil {
		log.Fatal("Failed to initialize calendar service: %v", err)
	}

	var calendarClient *googlecalendar.Client
	if cfg.Metrics.Enabled {
		calendarClient = googlecalendar.NewClient(calendarSvc, cfg.Google.RequestTimeout(), log, metricsCollector)
	} else {
		calendarClient = googlecalendar.NewClient(calendarSvc, cfg.Google.RequestTimeout(), log, nil)
	}
	log.Info("Calendar client initialized (calendar=%s, timeout=%s, read_retries=%d)",
		cfg.Google.CalendarID, cfg.Google.RequestTimeout(), cfg.Google.ReadRetries)

	// Инициализируем рабочие окна и сервис расписания
	windows, err := scheduleService.NewWindows(cfg.Schedule)
	if err != nil {
		log.Fatal("Failed to initialize business hours: %v", err)
	}
	log.Info("Business hours loaded (timezone=%s, default_duration=%dm, find_next_days=%d)",
		cfg.Schedule.Timezone, windows.DefaultDurationMinutes(), windows.FindNextDays())

	schedSvc := scheduleService.NewService(calendarClient, cfg.Google.ReadRetries, log)

	// Замок календарей: одновременные фиксации по одному календарю
	// выстраиваются в очередь внутри процесса
	calendarLock := keylock.New()

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(schedSvc, windows, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(schedSvc, windows, calendarLock, log)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(schedSvc, calendarLock, log)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(schedSvc, windows, calendarLock, log)
	findNextAvailableUseCase := findNextAvailableUC.NewUseCase(schedSvc, windows, log)
	listAppointmentsUseCase := listAppointmentsUC.NewUseCase(schedSvc, windows, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, cfg.Google.CalendarID, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, cfg.Google.CalendarID, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, cfg.Google.CalendarID, log)
	findNextAvailable := findNextAvailableHandler.NewHandler(findNextAvailableUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(listAppointmentsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	// Доступные слоты на дату
	api.HandleFunc("/calendars/{calendarId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот
	api.HandleFunc("/calendars/{calendarId}/next-available",
		findNextAvailable.Handle).Methods(http.MethodGet)

	// Список записей календаря
	api.HandleFunc("/calendars/{calendarId}/appointments",
		listAppointments.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Отмена записи
	api.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)

	// Перенос записи
	api.HandleFunc("/appointments/{appointmentId}/reschedule",
		rescheduleAppointment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

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
}
