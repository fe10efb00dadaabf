package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/shashiranjanraj/dinein/config"
	"github.com/shashiranjanraj/dinein/pkg/logger"
)

// Options configure Run. Zero values fall back to config.
type Options struct {
	Addr         string
	TLS          bool
	CertFile     string
	KeyFile      string
	ShutdownWait time.Duration
}

// FromConfig reads Options from the application config.
func FromConfig() Options {
	return Options{
		Addr:         ":" + config.AppPort(),
		TLS:          config.TLSEnabled(),
		CertFile:     config.TLSCertFile(),
		KeyFile:      config.TLSKeyFile(),
		ShutdownWait: config.ShutdownWait(),
	}
}

// Run serves handler until ctx is cancelled, then drains in-flight requests
// for at most ShutdownWait.
func Run(ctx context.Context, handler http.Handler, opts Options) error {
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", opts.Addr, err)
	}
	return Serve(ctx, ln, handler, opts)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, opts Options) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		scheme := "http"
		if opts.TLS {
			scheme = "https"
		}
		logger.Info("server listening", "addr", ln.Addr().String(), "scheme", scheme)

		var err error
		if opts.TLS {
			err = srv.ServeTLS(ln, opts.CertFile, opts.KeyFile)
		} else {
			err = srv.Serve(ln)
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	wait := opts.ShutdownWait
	if wait <= 0 {
		wait = 10 * time.Second
	}
	sctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped gracefully")
	return nil
}
