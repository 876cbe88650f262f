// Package server exposes the parser over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	chronic "github.com/musicmunky/chronic"
	"github.com/musicmunky/chronic/internal/profile"
)

// Server wraps an echo instance serving the parse API.
type Server struct {
	e       *echo.Echo
	profile *profile.Profile
	logger  *slog.Logger
}

// New builds the server and registers routes.
func New(p *profile.Profile, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	s := &Server{e: e, profile: p, logger: logger}

	e.GET("/healthz", s.healthz)
	apiV1 := e.Group("/api/v1")
	apiV1.POST("/parse", s.parse)
	return s
}

// Start blocks serving HTTP until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", s.profile.Addr, s.profile.Port)
		errCh <- s.e.Start(addr)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.e.Shutdown(shutdownCtx)
	}
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ParseRequest is the body of POST /api/v1/parse. Option fields override
// the server profile per request.
type ParseRequest struct {
	Text               string `json:"text"`
	Context            string `json:"context,omitempty"`
	Now                string `json:"now,omitempty"`
	Guess              *bool  `json:"guess,omitempty"`
	AmbiguousTimeRange *int   `json:"ambiguousTimeRange,omitempty"`
	EndianPrecedence   string `json:"endianPrecedence,omitempty"`
}

// ParseResponse reports the outcome. Span is present whenever a pattern
// matched; Instant only when guessing is on.
type ParseResponse struct {
	Matched bool       `json:"matched"`
	Span    *SpanBody  `json:"span,omitempty"`
	Instant *time.Time `json:"instant,omitempty"`
}

// SpanBody is the wire form of a span.
type SpanBody struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	WidthSeconds int64     `json:"widthSeconds"`
}

func (s *Server) parse(c echo.Context) error {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	opts, err := s.profile.ParserOptions()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if req.Context != "" {
		opts.Context = chronic.Context(req.Context)
	}
	if req.Now != "" {
		now, err := time.Parse(time.RFC3339, req.Now)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "now must be RFC 3339")
		}
		opts.Now = now
	}
	if req.Guess != nil {
		opts.Guess = *req.Guess
	}
	if req.AmbiguousTimeRange != nil {
		opts.AmbiguousTimeRange = *req.AmbiguousTimeRange
	}
	if req.EndianPrecedence == string(chronic.EndianLittle) {
		opts.EndianPrecedence = []chronic.Endian{chronic.EndianLittle, chronic.EndianMiddle}
	} else if req.EndianPrecedence == string(chronic.EndianMiddle) {
		opts.EndianPrecedence = []chronic.Endian{chronic.EndianMiddle, chronic.EndianLittle}
	}

	parser, err := chronic.New(opts)
	if err != nil {
		var invalid chronic.ErrInvalidOption
		if errors.As(err, &invalid) {
			return echo.NewHTTPError(http.StatusBadRequest, invalid.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	span, ok := parser.Parse(req.Text)
	resp := ParseResponse{Matched: ok}
	if ok {
		resp.Span = &SpanBody{
			Start:        span.Begin,
			End:          span.End,
			WidthSeconds: int64(span.Width() / time.Second),
		}
		if opts.Guess {
			instant := span.Guess()
			resp.Instant = &instant
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// requestLogger records one structured line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "http request",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return err
		}
	}
}
