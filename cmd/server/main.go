package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apiinternal "github.com/americo7/prueba-argo/internal/api"
	"github.com/americo7/prueba-argo/internal/config"
	"github.com/americo7/prueba-argo/internal/http/routes"
	applog "github.com/americo7/prueba-argo/internal/platform/logging"
	appmiddleware "github.com/americo7/prueba-argo/internal/platform/middleware"
	"github.com/americo7/prueba-argo/internal/platform/procinfo"
	"github.com/americo7/prueba-argo/internal/platform/respond"
	"github.com/americo7/prueba-argo/internal/service/appinfo"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		applog.LogFatal(context.Background(), "server failed", err, zap.String("addr", cfg.Addr()))
	}
	applog.LogInfo(context.Background(), "server exited")
}

// run binds cfg.Addr and serves until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config) error {
	svc := appinfo.New(cfg.Environment, procinfo.New())
	srv := newServer(cfg.Addr(), newRouter(svc))

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	base := fmt.Sprintf("http://localhost:%d", cfg.Port)
	applog.LogInfo(ctx, "server listening",
		zap.String("addr", srv.Addr),
		zap.String("version", Version),
		zap.String("environment", cfg.Environment),
	)
	applog.LogInfo(ctx, "health check available", zap.String("url", base+"/health"))
	applog.LogInfo(ctx, "info available", zap.String("url", base+"/info"))

	return serve(ctx, srv, ln)
}

// serve runs srv on ln and shuts it down gracefully once ctx is done.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-listenErr
}

func newRouter(svc appinfo.Service) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; the service only runs behind the cluster ingress.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20),
		// Plain HEAD probes hit the GET handlers.
		chimiddleware.GetHead,
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := apiinternal.New(router, Version)
	routes.Register(api, svc)
	return router
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}
}
