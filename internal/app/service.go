// Package service provides the core business service that ties scoring,
// the career catalog and document export together for the front ends.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/careerpath/internal/adapters/export"
	"github.com/okian/careerpath/internal/domain/catalog"
	"github.com/okian/careerpath/internal/domain/model"
	"github.com/okian/careerpath/internal/domain/scoring"
	"github.com/okian/careerpath/internal/domain/types"
	"github.com/okian/careerpath/pkg/logger"
	"github.com/okian/careerpath/pkg/metrics"
)

// ErrNoExporter is returned by Export when the service was built without one.
var ErrNoExporter = errors.New("no exporter configured")

// Exporter writes a report somewhere and returns its location.
type Exporter interface {
	Export(ctx context.Context, rep export.Report) (string, error)
}

// Service implements the operations used by the CLI and the wizard.
type Service struct {
	exporter Exporter
	metrics  *metrics.Manager
	logger   logger.Logger
	title    string
	now      func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithExporter sets the document exporter.
func WithExporter(e Exporter) Option {
	return func(s *Service) {
		if e != nil {
			s.exporter = e
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the global one.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithReportTitle sets the title printed on exported documents.
func WithReportTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.title = title
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		metrics: metrics.Default(),
		logger:  logger.Nop(),
		title:   "Career Path Finder",
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Analyze scores b and returns the ranked profile.
func (s *Service) Analyze(ctx context.Context, b model.BigFive) types.Profile {
	p := scoring.Analyze(b)

	dominant := make([]string, len(p.Dominant))
	for i, c := range p.Dominant {
		dominant[i] = string(c)
	}
	s.metrics.RecordAnalysis(p.HollandCode, dominant, p.TopScore())

	s.logger.Debug(ctx, "profile analyzed",
		logger.String("holland_code", p.HollandCode),
		logger.Any("input", b),
		logger.Int("top_score", p.TopScore()),
	)
	return p
}

// Recommend returns the careers matching the dominant codes, in table order.
func (s *Service) Recommend(_ context.Context, dominant []model.Code) []catalog.Career {
	return catalog.Recommend(dominant)
}

// Report assembles the export content for p.
func (s *Service) Report(ctx context.Context, p types.Profile) export.Report {
	return export.Report{
		Title:       s.title,
		Profile:     p,
		Careers:     s.Recommend(ctx, p.Dominant),
		GeneratedAt: s.now(),
	}
}

// Export writes the document for p and returns its path. The profile is
// only read; a failed export leaves it untouched.
func (s *Service) Export(ctx context.Context, p types.Profile) (string, error) {
	if s.exporter == nil {
		return "", ErrNoExporter
	}
	path, err := s.exporter.Export(ctx, s.Report(ctx, p))
	if err != nil {
		return "", fmt.Errorf("export %s: %w", p.HollandCode, err)
	}
	return path, nil
}
