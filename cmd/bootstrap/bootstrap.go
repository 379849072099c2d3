package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hms-scheduling/config"
	deliveryHttp "hms-scheduling/internal/delivery/http"
	"hms-scheduling/internal/delivery/http/handler"
	"hms-scheduling/internal/delivery/http/middleware"
	"hms-scheduling/internal/infrastructure/cache"
	"hms-scheduling/internal/infrastructure/database"
	"hms-scheduling/internal/repository"
	"hms-scheduling/internal/service"
	"hms-scheduling/internal/usecase"
	"hms-scheduling/pkg/jwt"
	"hms-scheduling/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	log := logrus.StandardLogger()

	// Rebuild Redis slot counters from the appointments table before the
	// server takes traffic, so capacity checks never run against stale state.
	reservation := service.NewReservationService(db, redisClient, log)
	syncCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := reservation.SyncOnStartup(syncCtx, cfg.App.Location); err != nil {
		return nil, fmt.Errorf("failed to sync slot reservations: %w", err)
	}

	app.Server = initializeServer(cfg, db, redisClient, reservation, log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, reservation *service.ReservationService, log *logrus.Logger) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	loc := cfg.App.Location

	// Repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorRepo := repository.NewDoctorProfileRepository()
	patientRepo := repository.NewPatientRepository()
	scheduleRepo := repository.NewDoctorScheduleRepository()
	slotRoomRepo := repository.NewSlotRoomRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	facilityRepo := repository.NewFacilityRepository()
	settingRepo := repository.NewSettingRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, userRepo, roleRepo, facilityRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, loc, patientRepo, auditService)
	scheduleUsecase := usecase.NewDoctorScheduleUsecase(db, log, scheduleRepo, doctorRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, loc, scheduleRepo, doctorRepo, appointmentRepo)
	slotRoomUsecase := usecase.NewSlotRoomUsecase(db, log, loc, slotRoomRepo, scheduleRepo, facilityRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, loc, appointmentRepo, patientRepo, doctorRepo, scheduleRepo, slotRoomRepo, settingRepo, reservation, auditService)
	facilityUsecase := usecase.NewFacilityUsecase(db, log, facilityRepo)
	settingUsecase := usecase.NewSettingUsecase(db, log, settingRepo, auditService)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	slotRoomHandler := handler.NewSlotRoomHandler(slotRoomUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	facilityHandler := handler.NewFacilityHandler(facilityUsecase)
	settingHandler := handler.NewSettingHandler(settingUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		scheduleHandler,
		availabilityHandler,
		slotRoomHandler,
		appointmentHandler,
		patientHandler,
		facilityHandler,
		settingHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
