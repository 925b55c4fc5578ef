// Package data serves the compiled data document over HTTP
package data

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/op-character-creator/internal/catalog"
	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
)

// Routes served by the handler
const (
	DocumentPath = "/op-character-creator/data.json"
	HealthPath   = "/healthz"
	MetricsPath  = "/metrics"
)

// Parser validates a raw data document
type Parser interface {
	Parse(raw []byte) (*entities.Document, error)
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Source catalog.Source
	Parser Parser
	Logger *slog.Logger
	// Registry receives the request metrics; a private registry when nil
	Registry *prometheus.Registry
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.Parser == nil {
		vb.RequiredField("Parser")
	}

	return vb.Build()
}

// Handler serves the data document the catalog fetches
type Handler struct {
	source   catalog.Source
	parser   Parser
	logger   *slog.Logger
	registry *prometheus.Registry
	requests *prometheus.CounterVec

	mu       sync.RWMutex
	document []byte
	meta     entities.DocumentMeta
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "creator_data_requests_total",
		Help: "Data server requests by route and status.",
	}, []string{"route", "status"})
	if err := registry.Register(requests); err != nil {
		return nil, errors.Wrap(err, "failed to register metrics")
	}

	return &Handler{
		source:   cfg.Source,
		parser:   cfg.Parser,
		logger:   logger,
		registry: registry,
		requests: requests,
	}, nil
}

// Load reads the document from the source and validates it. The document
// served is only replaced when the new one parses.
// Returns errors.Unavailable when the source cannot be read
// Returns errors.DataLoss when the document is malformed
func (h *Handler) Load(ctx context.Context) error {
	raw, err := h.source.Fetch(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read data document").
			WithMeta("source", h.source.Location())
	}

	doc, err := h.parser.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "invalid data document").
			WithMeta("source", h.source.Location())
	}

	h.mu.Lock()
	h.document = raw
	h.meta = doc.Meta
	h.mu.Unlock()

	h.logger.InfoContext(ctx, "data document loaded",
		slog.String("source", h.source.Location()),
		slog.String("schema_version", doc.Meta.DataSchemaVersion),
		slog.Int("traits", len(doc.Traits)),
		slog.Int("trait_values", len(doc.TraitValues)))

	return nil
}

// Router builds the gin engine serving the document, health and metrics
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.instrument())

	r.GET(DocumentPath, h.GetDocument)
	r.HEAD(DocumentPath, h.GetDocument)
	r.GET(HealthPath, h.Health)
	r.GET(MetricsPath, gin.WrapH(promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{})))

	return r
}

// GetDocument writes the loaded document
func (h *Handler) GetDocument(c *gin.Context) {
	h.mu.RLock()
	doc := h.document
	h.mu.RUnlock()

	if doc == nil {
		writeError(c, errors.Unavailable("data document is not loaded"))
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// Health reports whether a document is being served
func (h *Handler) Health(c *gin.Context) {
	h.mu.RLock()
	loaded := h.document != nil
	meta := h.meta
	h.mu.RUnlock()

	if !loaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              "ok",
		"data_schema_version": meta.DataSchemaVersion,
	})
}

func (h *Handler) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := c.Writer.Status()
		h.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		switch {
		case status >= 500:
			h.logger.Error("HTTP request", attrs...)
		case status >= 400:
			h.logger.Warn("HTTP request", attrs...)
		default:
			h.logger.Debug("HTTP request", attrs...)
		}
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(errors.GetCode(err).HTTPStatus(), gin.H{
		"code":  errors.GetCode(err),
		"error": errors.GetMessage(err),
	})
}
