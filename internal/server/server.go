package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	certform "github.com/goliatone/go-certform"
	"github.com/goliatone/go-certform/internal/config"
	"github.com/goliatone/go-certform/internal/server/api"
	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/orchestrator"
	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/preview"
	rendertemplate "github.com/goliatone/go-certform/pkg/render/template"
)

const readHeaderTimeout = 5 * time.Second

// Server serves the certification page, its fragments and the JSON API.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	sessions *SessionStore
	forms    *orchestrator.Orchestrator
	form     model.FormModel
	previews *preview.Renderer
	pages    rendertemplate.TemplateRenderer
	handler  http.Handler
}

// New builds the form model and templates once and wires the routes.
// pageOptions are applied to every session's controller.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, pageOptions ...page.Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	if log == nil {
		log = slog.Default()
	}

	forms := certform.NewOrchestrator()
	form, err := forms.FormModel(ctx, orchestrator.Request{
		Source:      certform.DefaultSource(),
		OperationID: certform.OperationID,
	})
	if err != nil {
		return nil, fmt.Errorf("server: build form: %w", err)
	}

	previewOptions := []preview.Option{
		preview.WithLocality(preview.Locality{Barangay: cfg.Locality.Barangay, City: cfg.Locality.City}),
	}
	if cfg.Preview.QR {
		previewOptions = append(previewOptions, preview.WithQRCode(cfg.Preview.QRSize))
	}
	previews, err := preview.NewRenderer(previewOptions...)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	pages, err := newPageEngine()
	if err != nil {
		return nil, err
	}

	controllerOptions := append([]page.Option{page.WithLogger(log)}, pageOptions...)
	s := &Server{
		cfg: cfg,
		log: log,
		sessions: NewSessionStore(cfg.Session.TTL, func() *page.Controller {
			return page.NewController(controllerOptions...)
		}),
		forms:    forms,
		form:     form,
		previews: previews,
		pages:    pages,
	}
	s.handler = s.routes()
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Sessions exposes the session store.
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(certform.RuntimeAssetsFS())))
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Post("/fields/{field}", s.handleField)
		r.Get("/preview", s.handlePreview)
		r.Get("/form", s.handleForm)
		r.Post("/actions/{action}", s.handleAction)
	})

	api.New(r, api.Dependencies{
		Sessions:     s.sessions,
		Certificates: s.previews,
		Form:         s.form,
		Log:          s.log,
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// The session janitor runs for the lifetime of ctx.
func (s *Server) ListenAndServe(ctx context.Context) error {
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go s.sessions.Run(janitorCtx, s.cfg.Session.SweepInterval, func(removed int) {
		s.log.Debug("expired sessions removed", slog.Int("removed", removed), slog.Int("live", s.sessions.Len()))
	})

	httpServer := &http.Server{
		Addr:              s.cfg.Server.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	s.log.Info("listening", slog.String("address", s.cfg.Server.Address), slog.String("env", s.cfg.Env))

	select {
	case err := <-errChan:
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
