package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/osa911/astrobooking/internal/api/handlers"
	"github.com/osa911/astrobooking/internal/api/middleware"
	"github.com/osa911/astrobooking/internal/api/validation"
	"github.com/osa911/astrobooking/internal/config"
	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/mail"
	"github.com/osa911/astrobooking/internal/models"
	"github.com/osa911/astrobooking/internal/ratelimit"
	"github.com/osa911/astrobooking/internal/server/routes"
	"github.com/osa911/astrobooking/internal/service"
	"github.com/osa911/astrobooking/internal/templates"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	logger     *logging.Logger
	dispatcher *service.Dispatcher
	closers    []io.Closer
}

// Option customizes how the server is assembled
type Option func(*options)

type options struct {
	transport mail.Transport
	store     ratelimit.Store
}

// WithTransport replaces the transport selected by MAIL_TRANSPORT
func WithTransport(t mail.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithRateLimitStore replaces the store selected by REDIS_URL
func WithRateLimitStore(s ratelimit.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// NewServer wires every component from cfg
func NewServer(ctx context.Context, cfg *config.Config, logger *logging.Logger, opts ...Option) (*Server, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	validation.Setup()

	s := &Server{cfg: cfg, logger: logger}

	transport := o.transport
	if transport == nil {
		var err error
		transport, err = NewTransport(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	store := o.store
	if store == nil {
		var err error
		store, err = s.newRateLimitStore(ctx)
		if err != nil {
			return nil, err
		}
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	if cfg.AdminEmail == "" {
		logger.Warn("ADMIN_EMAIL is not set; submissions will fail until it is configured")
	}
	if cfg.LogoPath != "" {
		if _, err := os.Stat(cfg.LogoPath); err != nil {
			logger.Warn("Logo %s is not readable, emails will fail to send: %v", cfg.LogoPath, err)
		}
	}

	s.dispatcher = service.NewDispatcher(service.DispatcherConfig{
		From:        cfg.FromAddress(),
		Admin:       cfg.AdminEmail,
		LogoPath:    cfg.LogoPath,
		SendTimeout: cfg.SMTPTimeout,
	}, transport, renderer, logger)

	guard := service.NewAttachmentGuard(cfg.MaxUploadBytes)
	diagnostics := service.NewDiagnosticsRecorder(cfg.ValidationLogFile, logger)

	h := &routes.Handlers{
		Booking: handlers.NewBookingHandler(s.dispatcher, guard, diagnostics),
		Contact: handlers.NewContactHandler(s.dispatcher, guard, diagnostics),
		Payment: handlers.NewPaymentHandler(models.PaymentConfig{
			UPIID:        cfg.PaymentUPIID,
			MerchantName: cfg.PaymentMerchantName,
		}),
		Health: handlers.NewHealthHandler(transport.Name()),
	}
	m := &routes.Middleware{
		GlobalRateLimit:     middleware.GlobalRateLimit(store),
		SubmissionRateLimit: middleware.SubmissionRateLimit(store),
		BodyLimit:           middleware.BodyLimit(cfg.MaxUploadBytes),
	}

	s.router = gin.New()
	routes.SetupGlobalMiddleware(s.router, logger, cfg.FrontendURL, m)
	routes.Setup(s.router, h, m, logger)

	return s, nil
}

// NewTransport builds the mail transport named by MAIL_TRANSPORT
func NewTransport(ctx context.Context, cfg *config.Config) (mail.Transport, error) {
	switch cfg.MailTransport {
	case config.TransportSES:
		transport, err := mail.NewSESTransport(ctx, mail.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return transport, nil
	default:
		return mail.NewSMTPTransport(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Secure:   cfg.SMTPSecure,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
		}), nil
	}
}

func (s *Server) newRateLimitStore(ctx context.Context) (ratelimit.Store, error) {
	if s.cfg.RedisURL == "" {
		return ratelimit.NewMemoryStore(), nil
	}

	store, err := ratelimit.NewRedisStoreFromURL(ctx, s.cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, store)
	s.logger.Info("Rate limits are shared through Redis")
	return store, nil
}

// Router exposes the configured engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Dispatcher exposes the mail dispatcher for one-off commands
func (s *Server) Dispatcher() *service.Dispatcher {
	return s.dispatcher
}

// Start serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.close()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.close()
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("Server exited")
	return nil
}

func (s *Server) close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Warn("Failed to close resource: %v", err)
		}
	}
	s.closers = nil
}
