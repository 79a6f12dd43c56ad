package internal

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neonova/storefront/pkg/logger"
)

const defaultAddress = ":8080"

// runtimeConfig is what Run hands to the server loop.
type runtimeConfig struct {
	handler         http.Handler
	baseCtx         context.Context
	logger          *slog.Logger
	onListen        func(net.Addr)
	address         string
	shutdownHooks   []func(context.Context) error
	shutdownTimeout time.Duration
}

// server owns one listening http.Server for the lifetime of Run.
type server struct {
	srv *http.Server
	log *slog.Logger
	cfg runtimeConfig
}

func newServer(cfg runtimeConfig) *server {
	if cfg.address == "" {
		cfg.address = defaultAddress
	}
	if cfg.shutdownTimeout <= 0 {
		cfg.shutdownTimeout = defaultShutdownTimeout
	}
	if cfg.baseCtx == nil {
		cfg.baseCtx = context.Background()
	}
	log := cfg.logger
	if log == nil {
		log = logger.NewNope()
	}

	// WriteTimeout bounds a request end to end. The relay sets no deadline of
	// its own, so a slow mail provider is cut off here.
	return &server{
		cfg: cfg,
		log: log,
		srv: &http.Server{
			Addr:              cfg.address,
			Handler:           cfg.handler,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}
}

// runServer listens, serves until the base context ends or SIGINT/SIGTERM
// arrives, then drains requests and runs the shutdown hooks.
func runServer(cfg runtimeConfig) error {
	return newServer(cfg).run()
}

func (s *server) run() error {
	ctx, stop := signal.NotifyContext(s.cfg.baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	if s.cfg.onListen != nil {
		s.cfg.onListen(ln.Addr())
	}

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		s.log.Info("storefront listening",
			slog.String("address", ln.Addr().String()),
			slog.Duration("request_timeout", s.srv.WriteTimeout),
		)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	return s.shutdown()
}

// shutdown stops accepting requests, waits for in-flight submissions and
// then runs every hook. All failures are joined.
func (s *server) shutdown() error {
	started := time.Now()
	s.log.Info("storefront shutting down", slog.Int("hooks", len(s.cfg.shutdownHooks)))

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for _, hook := range s.cfg.shutdownHooks {
		if err := hook(ctx); err != nil {
			s.log.Error("shutdown hook failed", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.log.Error("storefront stopped with errors", slog.Duration("took", time.Since(started)))
		return err
	}
	s.log.Info("storefront stopped", slog.Duration("took", time.Since(started)))
	return nil
}
