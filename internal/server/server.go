// Package server publishes the resolved environment over a read-only HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourorg/amm-envconfig/internal/catalog"
	"github.com/yourorg/amm-envconfig/internal/integrity"
	"github.com/yourorg/amm-envconfig/internal/metrics"
	"github.com/yourorg/amm-envconfig/internal/resolver"
	"github.com/yourorg/amm-envconfig/internal/walletkit"
)

// Options configures the HTTP surface
type Options struct {
	// Origins allowed by CORS; "*" allows any
	CORSAllowedOrigins []string

	// Requests per second across all clients; zero disables limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Metrics is optional. Gatherer backs /metrics, which is only mounted when set.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// Server serves one resolved bundle. Everything it publishes is computed once in New.
type Server struct {
	bundle      resolver.Bundle
	warnings    []resolver.Warning
	fingerprint integrity.Fingerprint
	appKit      walletkit.AppKitConfig
	selector    *selectorView

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	limiter  *rate.Limiter
	started  time.Time

	router *gin.Engine
}

type selectorView struct {
	Selector uint64 `json:"selector"`
	Name     string `json:"name"`
}

// New builds the server and its router
func New(b resolver.Bundle, warnings []resolver.Warning, settings walletkit.Settings, opts Options) (*Server, error) {
	fp, err := integrity.Compute(b)
	if err != nil {
		return nil, err
	}

	s := &Server{
		bundle:      b,
		warnings:    append([]resolver.Warning(nil), warnings...),
		fingerprint: fp,
		appKit:      walletkit.NewAppKitConfig(b, settings),
		metrics:     opts.Metrics,
		gatherer:    opts.Gatherer,
		started:     time.Now(),
	}

	if details, err := catalog.ChainDetails(b.Network()); err == nil {
		s.selector = &selectorView{Selector: details.ChainSelector, Name: details.ChainName}
	} else {
		logrus.WithError(err).Debug("No chain selector for active network")
	}

	if opts.RateLimitRPS > 0 {
		burst := opts.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), burst)
	}

	s.router = s.routes(opts.CORSAllowedOrigins)
	return s, nil
}

// Handler exposes the router for http.Server and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Fingerprint returns the digest served as the ETag
func (s *Server) Fingerprint() integrity.Fingerprint {
	return s.fingerprint
}

func (s *Server) routes(origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.observe())
	r.Use(cors.New(corsConfig(origins)))

	r.GET("/health", s.handleHealth)
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1", s.rateLimit())
	v1.GET("/status", s.handleStatus)

	published := v1.Group("", s.conditional())
	{
		published.GET("/network", s.handleNetwork)
		published.GET("/contract", s.handleContract)
		published.GET("/tokens", s.handleTokens)
		published.GET("/tokens/:name", s.handleToken)
		published.GET("/appkit", s.handleAppKit)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "If-None-Match"},
		ExposeHeaders: []string{"ETag"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
