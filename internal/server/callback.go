package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	myHTTP "github.com/MKhiriev/go-pass-sync/internal/handler/http"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// callbackServer serves the redirect of a single authorization attempt.
type callbackServer struct {
	server      *http.Server
	listener    net.Listener
	redirectURL string

	closeOnce sync.Once
	done      chan struct{}

	logger *logger.Logger
}

// NewCallbackListenerFactory returns a [service.ListenerFactory] that starts a
// callbackServer on cfg.RedirectAddress for every attempt.
func NewCallbackListenerFactory(cfg config.ClientOAuth, log *logger.Logger) service.ListenerFactory {
	return func(ctx context.Context, onCallback func(models.OAuthCallback)) (service.RedirectListener, error) {
		return newCallbackServer(ctx, cfg, onCallback, log)
	}
}

func newCallbackServer(ctx context.Context, cfg config.ClientOAuth, onCallback func(models.OAuthCallback), log *logger.Logger) (*callbackServer, error) {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", cfg.RedirectAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListen, err)
	}

	log = log.WithComponent("callbackServer")
	handler := myHTTP.NewHandler(onCallback, log)

	s := &callbackServer{
		server: &http.Server{
			Handler:           handler.Init(cfg.CallbackPath),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener:    listener,
		redirectURL: "http://" + listener.Addr().String() + cfg.CallbackPath,
		done:        make(chan struct{}),
		logger:      log,
	}

	go s.RunServer()
	s.logger.Info().Str("func", "newCallbackServer").Str("addr", listener.Addr().String()).Msg("redirect listener started")

	return s, nil
}

// RedirectURL is the URL the provider must redirect to.
func (s *callbackServer) RedirectURL() string {
	return s.redirectURL
}

func (s *callbackServer) RunServer() {
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Str("func", "*callbackServer.RunServer").Msg("redirect listener stopped")
	}
}

// Shutdown stops accepting redirects and waits for in-flight requests.
func (s *callbackServer) Shutdown() {
	defer close(s.done)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*callbackServer.Shutdown").Msg("redirect listener shutdown incomplete")
		_ = s.server.Close()
	}
	s.logger.Info().Str("func", "*callbackServer.Shutdown").Msg("redirect listener stopped")
}

// Close shuts the server down in the background. It may be called from the
// server's own request handler.
func (s *callbackServer) Close() error {
	s.closeOnce.Do(func() {
		go s.Shutdown()
	})
	return nil
}

// Done is closed once the server has shut down.
func (s *callbackServer) Done() <-chan struct{} {
	return s.done
}
