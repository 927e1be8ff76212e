package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/careerpath/pkg/logger"
	"github.com/okian/careerpath/pkg/metrics"
)

// Export defaults.
const (
	fileNamePrefix = "Hasil_RIASEC_"
	fileExtension  = ".pdf"
	dirPermission  = 0o755
	filePermission = 0o644
	msPerSecond    = 1000
)

// Option applies a configuration option to the Exporter.
type Option func(*Exporter)

// WithOutputDir sets the directory documents are written to.
func WithOutputDir(dir string) Option {
	return func(e *Exporter) {
		if dir != "" {
			e.dir = dir
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the global one.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *Exporter) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// Exporter renders reports and writes them to disk.
type Exporter struct {
	renderer Renderer
	dir      string
	logger   logger.Logger
	metrics  *metrics.Manager
	now      func() time.Time
}

// NewExporter creates an Exporter around r.
func NewExporter(r Renderer, opts ...Option) *Exporter {
	e := &Exporter{
		renderer: r,
		dir:      ".",
		logger:   logger.Nop(),
		metrics:  metrics.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FileName returns the document name for a Holland Code, e.g.
// "Hasil_RIASEC_S-I-C.pdf".
func FileName(hollandCode string) string {
	return fileNamePrefix + hollandCode + fileExtension
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Export renders rep and writes it into the output directory, returning the
// written path. The document is written to a temporary file first, so a
// failed export never leaves a partial document behind. Every failure is
// wrapped in ErrExport.
func (e *Exporter) Export(ctx context.Context, rep Report) (path string, err error) {
	start := e.now()
	size := 0
	if rep.GeneratedAt.IsZero() {
		rep.GeneratedAt = start
	}
	path = filepath.Join(e.dir, FileName(rep.Profile.HollandCode))

	defer func() {
		latency := float64(e.now().Sub(start).Microseconds()) / msPerSecond
		if err != nil {
			e.metrics.RecordExport(metrics.ResultFailure, latency, 0)
			e.logger.Error(ctx, "export failed", logger.String("path", path), logger.Error(err))
			path = ""
			return
		}
		e.metrics.RecordExport(metrics.ResultSuccess, latency, size)
		e.logger.Info(ctx, "export written", logger.String("path", path), logger.Int("bytes", size), logger.Float64("latency_ms", latency))
	}()

	if e.renderer == nil {
		return path, fmt.Errorf("%w: %w: no renderer configured", ErrExport, ErrRender)
	}
	if err := ctx.Err(); err != nil {
		return path, fmt.Errorf("%w: %w", ErrExport, err)
	}

	data, err := e.renderer.Render(ctx, rep)
	if err != nil {
		return path, fmt.Errorf("%w: %w: %w", ErrExport, ErrRender, err)
	}
	if len(data) == 0 {
		return path, fmt.Errorf("%w: %w: empty document", ErrExport, ErrRender)
	}

	if err := ctx.Err(); err != nil {
		return path, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := writeAtomic(e.dir, path, data); err != nil {
		return path, fmt.Errorf("%w: %w", ErrExport, err)
	}
	size = len(data)
	return path, nil
}

func writeAtomic(dir, path string, data []byte) (err error) {
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Chmod(filePermission); err != nil {
		return fmt.Errorf("chmod document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close document: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename document: %w", err)
	}
	return nil
}
