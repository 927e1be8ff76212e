package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okian/careerpath/internal/domain/catalog"
	"github.com/okian/careerpath/internal/domain/model"
	"github.com/okian/careerpath/internal/domain/types"
	"github.com/okian/careerpath/internal/domain/wizard"
	"github.com/okian/careerpath/pkg/logger"
	"github.com/okian/careerpath/pkg/metrics"
)

// Results screen actions.
const (
	ActionExport  = "e"
	ActionRestart = "r"
	ActionQuit    = "q"
)

// DefaultTraitScore is the slider starting value.
const DefaultTraitScore = 50

// Service is what the session needs from the application layer.
type Service interface {
	Analyze(ctx context.Context, b model.BigFive) types.Profile
	Recommend(ctx context.Context, dominant []model.Code) []catalog.Career
	Export(ctx context.Context, p types.Profile) (string, error)
}

// Session drives the wizard over a line-oriented reader and writer.
type Session struct {
	svc         Service
	in          *bufio.Reader
	out         io.Writer
	state       wizard.State
	draft       model.BigFive
	interactive bool
	exporting   bool
	logger      logger.Logger
	metrics     *metrics.Manager
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithInteractive enables prompt text. Piped input usually runs without it.
func WithInteractive(on bool) SessionOption {
	return func(s *Session) { s.interactive = on }
}

// WithDefaultScore sets the starting value of every trait prompt.
func WithDefaultScore(v float64) SessionOption {
	return func(s *Session) { s.draft = model.Uniform(v).Clamp() }
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(l logger.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSessionMetrics sets the metrics manager used for transition counts.
func WithSessionMetrics(m *metrics.Manager) SessionOption {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewSession returns a session positioned on the Home screen.
func NewSession(svc Service, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		svc:     svc,
		in:      bufio.NewReader(in),
		out:     out,
		state:   wizard.Home{},
		draft:   model.Uniform(DefaultTraitScore),
		logger:  logger.Nop(),
		metrics: metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current wizard state.
func (s *Session) State() wizard.State { return s.state }

// ControlsEnabled reports whether the Results actions are available. It is false
// while an export is running.
func (s *Session) ControlsEnabled() bool { return !s.exporting }

// Run loops over the wizard screens until the user quits or input ends.
// EOF ends the session without error; a cancelled ctx returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug(ctx, "session started", logger.Bool("interactive", s.interactive))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			done bool
			err  error
		)
		switch st := s.state.(type) {
		case wizard.Home:
			done, err = s.home(ctx, st)
		case wizard.Input:
			done, err = s.input(ctx, st)
		case wizard.Results:
			done, err = s.results(ctx, st)
		default:
			s.state = wizard.Reset(s.state)
		}
		if err != nil {
			return err
		}
		if done {
			s.logger.Debug(ctx, "session ended", logger.String("state", s.state.Name()))
			return nil
		}
	}
}

func (s *Session) home(ctx context.Context, st wizard.Home) (bool, error) {
	RenderHome(s.out)
	line, err := s.readLine(ctx, "  Tekan Enter untuk mulai, q untuk keluar: ")
	if err != nil {
		return endOnEOF(err)
	}
	if strings.EqualFold(line, ActionQuit) {
		return true, nil
	}
	next, err := wizard.Start(st, s.draft)
	if err != nil {
		return false, err
	}
	s.transition(next)
	return false, nil
}

func (s *Session) input(ctx context.Context, st wizard.Input) (bool, error) {
	RenderStepIndicator(s.out, st.Step())
	RenderInputHeader(s.out)
	scores := st.Draft
	for _, tr := range model.Traits() {
		cur, _ := scores.Get(tr.Key)
		v, err := s.readTrait(ctx, tr, cur)
		if err != nil {
			return endOnEOF(err)
		}
		scores, _ = scores.With(tr.Key, v)
	}
	s.draft = scores
	next, err := wizard.Submit(st, scores)
	if err != nil {
		return false, err
	}
	s.transition(next)
	return false, nil
}

func (s *Session) results(ctx context.Context, st wizard.Results) (bool, error) {
	p := s.svc.Analyze(ctx, st.Scores)
	RenderStepIndicator(s.out, st.Step())
	RenderResults(s.out, p, s.svc.Recommend(ctx, p.Dominant))
	for {
		line, err := s.readLine(ctx, "  [e] simpan PDF  [r] mulai lagi  [q] keluar: ")
		if err != nil {
			return endOnEOF(err)
		}
		switch strings.ToLower(line) {
		case ActionExport:
			s.export(ctx, p)
		case ActionRestart:
			s.transition(wizard.Reset(st))
			return false, nil
		case ActionQuit:
			return true, nil
		default:
			fmt.Fprintf(s.out, "  Pilihan tidak dikenal: %q\n", line)
		}
	}
}

// export runs the document export with the action controls disabled. The
// controls come back on every exit path, including a panicking renderer.
func (s *Session) export(ctx context.Context, p types.Profile) {
	s.exporting = true
	defer func() { s.exporting = false }()

	fmt.Fprintln(s.out, "  Membuat dokumen...")
	path, err := s.safeExport(ctx, p)
	if err != nil {
		s.logger.Warn(ctx, "export failed", logger.String("holland_code", p.HollandCode), logger.Error(err))
		fmt.Fprintf(s.out, "  Gagal membuat dokumen: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "  Dokumen tersimpan: %s\n", path)
}

func (s *Session) safeExport(ctx context.Context, p types.Profile) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			path, err = "", fmt.Errorf("export panicked: %v", r)
		}
	}()
	return s.svc.Export(ctx, p)
}

// readTrait prompts until it gets an empty line (keep cur) or a number.
// Numbers are truncated to whole steps and clamped to the slider range.
func (s *Session) readTrait(ctx context.Context, tr model.Trait, cur float64) (float64, error) {
	for {
		prompt := fmt.Sprintf("  %s (%s) [%d]: ", tr.Label, tr.Description, int(cur))
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return cur, nil
		}
		v, ok := parseSlider(line)
		if !ok {
			fmt.Fprintf(s.out, "  Nilai tidak valid: %q. Masukkan angka %d-%d.\n", line, model.MinTraitScore, model.MaxTraitScore)
			continue
		}
		return v, nil
	}
}

// parseSlider reads a leading integer the way a range input would, clamped
// to [MinTraitScore, MaxTraitScore].
func parseSlider(text string) (float64, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return math.Max(model.MinTraitScore, math.Min(model.MaxTraitScore, math.Trunc(f))), true
}

func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.interactive {
		fmt.Fprint(s.out, prompt)
	}
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) transition(next wizard.State) {
	s.state = next
	s.metrics.RecordTransition(next.Name())
}

func endOnEOF(err error) (bool, error) {
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
