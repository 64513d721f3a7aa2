package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-ligand/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	address string
	handler http.Handler
	logger  *logger.Logger
}

// NewServer returns a Server serving handler on address.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errAddressNotSet
	}

	logger.Info().Str("address", address).Msg("http server created")
	return &httpServer{
		address: address,
		handler: handler,
		logger:  logger,
	}, nil
}

func (s *httpServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on '%s': %w", s.address, err)
	}

	return s.Serve(ctx, ln)
}

func (s *httpServer) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return s.logger.WithContext(context.WithoutCancel(ctx))
		},
	}

	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("launching http server")

		err := server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	})

	grp.Go(func() error {
		<-ctx.Done()

		s.logger.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := grp.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("http server shut down gracefully")
	return nil
}
