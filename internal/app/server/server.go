package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payadmin/internal/domain/account"
	"payadmin/internal/domain/banking"
	"payadmin/internal/domain/employee"
	"payadmin/internal/domain/payslip"
	"payadmin/internal/domain/user"
	"payadmin/internal/platform/config"
	"payadmin/internal/platform/db"
	"payadmin/internal/platform/metrics"
	"payadmin/internal/platform/pdf"
	"payadmin/internal/transport/http/api"
	accountshandler "payadmin/internal/transport/http/handlers/accounts"
	bankinghandler "payadmin/internal/transport/http/handlers/banking"
	employeeshandler "payadmin/internal/transport/http/handlers/employees"
	payslipshandler "payadmin/internal/transport/http/handlers/payslips"
	usershandler "payadmin/internal/transport/http/handlers/users"
	"payadmin/internal/transport/http/middleware"
)

const (
	companyName     = "Payroll Administration"
	migrationsDir   = "migrations"
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	cfg       config.Config
	pool      *pgxpool.Pool
	collector *metrics.Collector
	router    chi.Router
}

// New connects to the database, optionally runs migrations, and wires every
// store, the payslip service and the HTTP routes.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, migrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info("migrations applied")
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o750); err != nil {
		pool.Close()
		return nil, err
	}

	collector := metrics.New()

	employeeStore := employee.NewStore(pool)
	bankingStore := banking.NewStore(pool)
	userStore := user.NewStore(pool)
	accountStore := account.NewStore(pool)
	payslipStore := payslip.NewStore(pool)

	renderer := pdf.NewRenderer(cfg.UploadsDir, companyName)
	payslipService := payslip.NewService(
		payslipStore,
		employeeDirectory{store: employeeStore},
		bankAccountDirectory{store: bankingStore},
		renderer,
		cfg.UploadsDir,
		cfg.Location(),
		collector,
	)

	s := &Server{cfg: cfg, pool: pool, collector: collector}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(collector))
	r.Use(middleware.Recoverer)
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Auth(cfg.JWTSecret))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	if cfg.MetricsEnabled {
		r.Get("/metrics", s.handleMetrics)
	}

	payslipshandler.NewHandler(payslipService).RegisterRoutes(r)
	employeeshandler.NewHandler(employeeStore).RegisterRoutes(r)
	bankinghandler.NewHandler(bankingStore, employeeStore).RegisterRoutes(r)
	usershandler.NewHandler(userStore, cfg.JWTSecret).RegisterRoutes(r)
	accountshandler.NewHandler(accountStore, employeeStore).RegisterRoutes(r)

	s.router = r
	return s, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	defer s.pool.Close()

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.cfg.Addr, "env", s.cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	api.Success(w, "ok", nil, middleware.GetRequestID(r.Context()))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		api.Error(w, http.StatusServiceUnavailable, "database unreachable", reqID)
		return
	}
	api.Success(w, "ready", nil, reqID)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	api.Success(w, "metrics", s.collector.Snapshot(), middleware.GetRequestID(r.Context()))
}
