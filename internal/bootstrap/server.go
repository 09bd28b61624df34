package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go-payroll/internal/config"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func ServerConfigFrom(app config.AppConfig) ServerConfig {
	return ServerConfig{
		Addr:            app.Addr(),
		ReadTimeout:     app.ReadTimeout(),
		WriteTimeout:    app.WriteTimeout(),
		IdleTimeout:     app.IdleTimeout(),
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// RunHTTPServer melayani handler sampai ctx selesai lalu melakukan graceful
// shutdown. Error listen dikembalikan ke pemanggil.
func RunHTTPServer(ctx context.Context, handler http.Handler, cfg ServerConfig, audit AuditLogger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return serve(ctx, ln, handler, cfg, audit)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg ServerConfig, audit AuditLogger) error {
	log := zap.L().Named("http.server")

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("addr", ln.Addr().String()))
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	cause := context.Cause(ctx)
	log.Info("shutdown signal received", zap.NamedError("cause", cause))

	// audit dicatat sebelum shutdown
	audit.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"cause": cause.Error()},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}

	log.Info("server exited gracefully")
	return nil
}
