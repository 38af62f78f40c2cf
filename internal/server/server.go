// Package server is the HTTP front of the portfolio. It renders the page,
// applies htmx events to the visitor's view and serves the admin area.
package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// ViewHeader carries the view id on every htmx request.
const ViewHeader = "X-View-ID"

// Server owns the router and what the handlers share.
type Server struct {
	cfg       *config.Config
	views     *session.Store
	visits    *analytics.Store // nil when analytics is disabled
	tmpl      *template.Template
	assembler page.Assembler
	logger    *zap.Logger

	adminToken string
	engine     *gin.Engine
}

// New builds the server. visits may be nil.
func New(cfg *config.Config, views *session.Store, visits *analytics.Store, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := page.Templates()
	if err != nil {
		return nil, err
	}
	if tmpl, err = tmpl.ParseFS(templateFS, "templates/*.html"); err != nil {
		return nil, errors.Wrap(err, "parsing admin templates")
	}

	token, err := analytics.RandomToken()
	if err != nil {
		return nil, errors.Wrap(err, "generating admin token")
	}

	s := &Server{
		cfg:        cfg,
		views:      views,
		visits:     visits,
		tmpl:       tmpl,
		logger:     logger,
		adminToken: token,
	}
	s.engine = s.routes()
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), metricsMiddleware())
	if s.cfg.Server.Compress {
		r.Use(brotliMiddleware())
	}
	if s.visits != nil {
		r.Use(s.visitorTracking())
	}
	r.SetHTMLTemplate(s.tmpl)

	if s.cfg.Server.Images != "" {
		r.Static("/images", s.cfg.Server.Images)
	}
	if s.cfg.Server.Static != "" {
		r.Static("/static", s.cfg.Server.Static)
	}

	r.GET("/", s.index)
	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"analytics": s.visits != nil,
		})
	})

	view := r.Group("/view")
	{
		view.POST("/theme", s.toggleTheme)
		view.POST("/scroll", s.scroll)
		view.POST("/menu", s.toggleMenu)
		view.POST("/nav/:anchor", s.activate)
		view.POST("/reveal/:anchor", s.reveal)
		view.GET("/projects", s.filterProjects)
		view.GET("/skills", s.selectSkills)
		view.POST("/contact/field", s.editField)
		view.POST("/contact", s.submitContact)
		view.GET("/contact", s.pollContact)
	}

	if s.visits != nil {
		s.adminRoutes(r)
	}
	return r
}

func (s *Server) index(c *gin.Context) {
	v, err := s.views.Create(true)
	if err != nil {
		s.logger.Error("creating view", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "index.html", s.assembler.Assemble(v))
}

func (s *Server) healthz(c *gin.Context) {
	if s.visits != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.visits.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "views": s.views.Len()})
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serving http")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down http server")
	}
	s.logger.Info("http server stopped")
	return nil
}
