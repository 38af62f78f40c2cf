package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const adminCookie = "admin_token"

// Used only in gin debug mode when no credentials are configured.
const (
	devAdminUsername = "admin"
	devAdminPassword = "admin123"
)

func (s *Server) adminCredentials() (string, string, bool) {
	user, pass := s.cfg.Admin.Username, s.cfg.Admin.Password
	if user != "" && pass != "" {
		return user, pass, true
	}
	if gin.Mode() == gin.DebugMode {
		return devAdminUsername, devAdminPassword, true
	}
	return "", "", false
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	if _, _, ok := s.adminCredentials(); !ok {
		s.logger.Warn("admin login disabled: set ADMIN_USERNAME and ADMIN_PASSWORD")
	} else if s.cfg.Admin.Password == "" {
		s.logger.Warn("using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", s.login)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.logger.Info("admin logout", zap.String("client", s.visits.HashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())
	{
		admin.GET("/dashboard", s.dashboard)
		admin.GET("/visitors", s.visitors)
		admin.GET("/api/stats", s.apiStats)
		admin.GET("/export/stats", s.exportStats)
		admin.POST("/privacy/cleanup", s.privacyCleanup)
	}
}

func (s *Server) login(c *gin.Context) {
	client := s.visits.HashIP(c.ClientIP())
	user, pass, enabled := s.adminCredentials()
	if enabled && equal(c.PostForm("username"), user) && equal(c.PostForm("password"), pass) {
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.logger.Info("admin login", zap.String("client", client))
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	s.logger.Warn("failed admin login", zap.String("client", client))
	c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
		"title": "Admin Login",
		"error": "Invalid credentials",
	})
}

func (s *Server) adminError(c *gin.Context, msg string, err error) {
	s.logger.Error(msg, zap.Error(err))
	c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
		"title": "Error",
		"error": msg,
	})
}

func (s *Server) dashboard(c *gin.Context) {
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		s.adminError(c, "Failed to load statistics", err)
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title":      "Dashboard",
		"stats":      stats,
		"open_views": s.views.Len(),
	})
}

func (s *Server) visitors(c *gin.Context) {
	visits, err := s.visits.RecentVisits(c.Request.Context(), 200)
	if err != nil {
		s.adminError(c, "Failed to load visitors", err)
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visits,
	})
}

func (s *Server) apiStats(c *gin.Context) {
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// exportStats downloads the statistics as JSON, or YAML with ?format=yaml.
func (s *Server) exportStats(c *gin.Context) {
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.logger.Info("admin stats exported", zap.String("client", s.visits.HashIP(c.ClientIP())))

	if c.Query("format") == "yaml" {
		out, err := yaml.Marshal(stats)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.yaml")
		c.Data(http.StatusOK, "application/x-yaml; charset=utf-8", out)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	c.JSON(http.StatusOK, stats)
}

func (s *Server) privacyCleanup(c *gin.Context) {
	removed, err := s.visits.Cleanup(c.Request.Context(), s.cfg.Analytics.Retention)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.logger.Info("privacy cleanup", zap.Int64("removed", removed))
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
}
