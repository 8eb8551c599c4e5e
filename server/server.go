// Package server exposes the preferences service over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/aidigest/pkg/catalog"
	"github.com/umputun/aidigest/pkg/domain"
)

//go:embed docs/terms.html docs/privacy.html docs/support.html
var legalFS embed.FS

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	prefs   Preferences
	catalog Catalog
	version string
	debug   bool

	legalDocs map[domain.LegalMode]string

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Preferences is the settings service consumed by the handlers
type Preferences interface {
	Profile() domain.Profile
	SelectedTopics() []string
	SelectTopic(ctx context.Context, id string) error
	SetPersona(ctx context.Context, persona domain.Persona) error
	SetCity(ctx context.Context, city string) error
	SetFrequency(ctx context.Context, freq domain.NotificationFrequency) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
	Export(ctx context.Context) (filename string, data []byte, err error)
	Import(ctx context.Context, text string) error
	HardReset(ctx context.Context, confirm string) error
}

// Catalog provides the static topic catalog views
type Catalog interface {
	ByCategory() []catalog.CategoryGroup
	TopPicks() []domain.Topic
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, prefs Preferences, cat Catalog, version string, debug bool) (*Server, error) {
	s := &Server{
		config:  cfg,
		prefs:   prefs,
		catalog: cat,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	if err := s.loadLegalDocs(); err != nil {
		return nil, fmt.Errorf("load legal docs: %w", err)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("aidigest", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB, covers backup uploads
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /profile", s.profileHandler)
		r.HandleFunc("PUT /profile/persona", s.personaHandler)
		r.HandleFunc("PUT /profile/city", s.cityHandler)
		r.HandleFunc("PUT /profile/frequency", s.frequencyHandler)
		r.HandleFunc("POST /profile/theme", s.themeToggleHandler)

		r.HandleFunc("GET /topics", s.topicsHandler)
		r.HandleFunc("GET /topics/selected", s.selectedTopicsHandler)
		r.HandleFunc("PUT /topics/selected", s.selectTopicHandler)

		r.HandleFunc("GET /data/export", s.exportHandler)
		r.HandleFunc("POST /data/import", s.importHandler)
		r.HandleFunc("POST /data/reset", s.resetHandler)
	})

	s.router.HandleFunc("GET /legal/{mode}", s.legalHandler)
}

// loadLegalDocs reads the embedded legal documents and sanitizes them once
func (s *Server) loadLegalDocs() error {
	policy := bluemonday.UGCPolicy()
	s.legalDocs = make(map[domain.LegalMode]string, 3)

	for _, mode := range []domain.LegalMode{domain.LegalTerms, domain.LegalPrivacy, domain.LegalSupport} {
		raw, err := legalFS.ReadFile("docs/" + string(mode) + ".html")
		if err != nil {
			return fmt.Errorf("read %s document: %w", mode, err)
		}
		s.legalDocs[mode] = policy.Sanitize(string(raw))
	}
	return nil
}
