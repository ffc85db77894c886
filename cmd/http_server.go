package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yellomango9/it-mgmt-tool/internal"
	"github.com/yellomango9/it-mgmt-tool/internal/auditlog"
	auditlogdb "github.com/yellomango9/it-mgmt-tool/internal/auditlog/postgres"
	"github.com/yellomango9/it-mgmt-tool/internal/complaint"
	complaintdb "github.com/yellomango9/it-mgmt-tool/internal/complaint/postgres"
	"github.com/yellomango9/it-mgmt-tool/internal/core/events"
	"github.com/yellomango9/it-mgmt-tool/internal/peripheral"
	peripheraldb "github.com/yellomango9/it-mgmt-tool/internal/peripheral/postgres"
	"github.com/yellomango9/it-mgmt-tool/internal/report"
	"github.com/yellomango9/it-mgmt-tool/internal/system"
	systemdb "github.com/yellomango9/it-mgmt-tool/internal/system/postgres"
	"github.com/yellomango9/it-mgmt-tool/internal/transport/rest"
	"github.com/yellomango9/it-mgmt-tool/internal/transport/static"
	"github.com/yellomango9/it-mgmt-tool/internal/user"
	userdb "github.com/yellomango9/it-mgmt-tool/internal/user/postgres"
	"github.com/yellomango9/it-mgmt-tool/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	eventBus := events.NewEventBus(deps.Logger)

	auditlogRepo := auditlogdb.NewAuditLogRepository(deps.GormDB)
	auditlogService := auditlog.NewService(auditlogRepo, deps.Logger)
	auditlog.RegisterRecorder(eventBus, auditlogService)

	systemRepo := systemdb.NewSystemRepository(deps.GormDB)
	peripheralRepo := peripheraldb.NewPeripheralRepository(deps.GormDB)
	complaintRepo := complaintdb.NewComplaintRepository(deps.GormDB)
	userRepo := userdb.NewUserRepository(deps.GormDB)

	systemService := system.NewService(systemRepo, eventBus, deps.Logger)
	peripheralService := peripheral.NewService(peripheralRepo, eventBus, deps.Logger)
	complaintService := complaint.NewService(complaintRepo, eventBus, deps.Logger)
	userService := user.NewService(userRepo, deps.Logger)
	reportService := report.NewService(systemRepo, peripheralRepo, complaintRepo,
		auditlogRepo, deps.Config.Static.ExportDir, deps.Logger)

	staticHandler := static.NewHandler(deps.Config.Static.Root, deps.Logger)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		user.NewHandler(userService),
		system.NewHandler(systemService),
		peripheral.NewHandler(peripheralService),
		complaint.NewHandler(complaintService),
		auditlog.NewHandler(auditlogService),
		report.NewHandler(reportService),
		staticHandler,
		"./api/openapi.yml",
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm reuses the existing *sql.DB pool rather than opening a second one.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{})
}
