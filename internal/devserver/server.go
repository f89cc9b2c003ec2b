// Package devserver is an in-memory implementation of the SafeRoute REST
// API. It backs end-to-end tests and local runs of saferoutectl; it is not a
// production backend.
package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// Server serves the API under /api.
type Server struct {
	store    *Store
	log      zerolog.Logger
	now      func() time.Time
	envelope map[string]bool
	engine   *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Server) { s.log = l } }

// WithClock overrides time.Now for the older-than-7-days cutoff.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// WithEnvelope selects which list endpoints answer {"content": [...]}
// instead of a bare array. Keys are collection names ("events", "alerts",
// "safe-places", "resources", "event-types", "resource-types").
func WithEnvelope(collections ...string) Option {
	return func(s *Server) {
		s.envelope = map[string]bool{}
		for _, c := range collections {
			s.envelope[c] = true
		}
	}
}

// New builds a Server. By default alerts and resources are enveloped and
// every other list is a bare array, so clients see both shapes.
func New(opts ...Option) *Server {
	s := &Server{
		log:      zerolog.Nop(),
		now:      time.Now,
		envelope: map[string]bool{"alerts": true, "resources": true},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store = NewStore(s.now)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), instrument())
	s.routes(r)
	s.engine = r
	return s
}

// Store exposes the backing state for seeding.
func (s *Server) Store() *Store { return s.store }

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		// USERS
		api.POST("/users/login", s.login)
		api.POST("/users", s.register)

		// EVENTS
		api.GET("/events", s.listEvents)
		api.GET("/events/list", s.listEventOptions)
		api.GET("/events/:id", s.getEvent)
		api.POST("/events", s.createEvent)
		api.PUT("/events/:id", s.updateEvent)
		api.DELETE("/events/:id", s.deleteEvent)
		api.GET("/event-types/list", s.listEventTypes)

		// ALERTS
		api.GET("/alerts", s.listAlerts)
		api.GET("/alerts/:id", s.getAlert)
		api.POST("/alerts", s.createAlert)
		api.DELETE("/alerts/older-than-7-days", s.deleteOldAlerts)
		api.DELETE("/alerts/:id", s.deleteAlert)

		// SAFE PLACES
		api.GET("/safe-places", s.listSafePlaces)
		api.GET("/safe-places/:id", s.getSafePlace)
		api.POST("/safe-places", s.createSafePlace)
		api.PUT("/safe-places/:id", s.updateSafePlace)
		api.DELETE("/safe-places/:id", s.deleteSafePlace)

		// RESOURCES
		api.GET("/resources", s.listResources)
		api.GET("/resources/:id", s.getResource)
		api.POST("/resources", s.createResource)
		api.PUT("/resources/:id", s.updateResource)
		api.DELETE("/resources/:id", s.deleteResource)
		api.GET("/resource-types", s.listResourceTypes)
	}
}

// requestLogger logs one line per request and echoes the request id.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)

		c.Next()

		ev := s.log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = s.log.Error()
		}
		ev.Str("request_id", rid).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
