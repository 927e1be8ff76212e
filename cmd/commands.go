package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/okian/careerpath/internal/adapters/export"
	"github.com/okian/careerpath/internal/adapters/terminal"
	service "github.com/okian/careerpath/internal/app"
	"github.com/okian/careerpath/internal/config"
	"github.com/okian/careerpath/internal/domain/catalog"
	"github.com/okian/careerpath/internal/domain/types"
	"github.com/okian/careerpath/pkg/logger"
	"github.com/okian/careerpath/pkg/metrics"
)

// cli holds state shared by every command of one invocation.
type cli struct {
	// Global flags
	configFile string
	logLevel   string

	cfg     *config.Config
	log     logger.Logger
	metrics *metrics.Manager
}

// run builds the command tree, executes it with args and writes the metrics
// textfile when one is configured.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	c := &cli{metrics: metrics.Default()}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	defer func() { _ = logger.Sync() }()
	if c.cfg != nil && c.cfg.MetricsFile != "" {
		if werr := c.metrics.WriteTextfile(c.cfg.MetricsFile); werr != nil {
			c.log.Warn(ctx, "failed to write metrics textfile", logger.String("path", c.cfg.MetricsFile), logger.Error(werr))
		}
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "careerpath",
		Short: "Career Path Finder - Big Five to RIASEC career recommendations",
		Long: `Career Path Finder

Maps Big Five personality scores (0-100) to a RIASEC profile and Holland Code,
then suggests matching career fields.

Examples:
  careerpath
  careerpath score --openness 80 --conscientiousness 60
  careerpath careers S-I-C
  careerpath export --openness 80 --out ./reports`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runWizard,
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "YAML config file (overrides "+config.EnvConfig+")")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		c.wizardCmd(),
		c.scoreCmd(),
		c.careersCmd(),
		c.exportCmd(),
	)
	return root
}

// setup initializes logging and loads configuration before any command runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	c.log = logger.Get()

	if c.configFile != "" {
		if err := os.Setenv(config.EnvConfig, c.configFile); err != nil {
			return fmt.Errorf("failed to set config path: %w", err)
		}
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.cfg = cfg

	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr()), logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	level := cfg.LogLevel
	if c.logLevel != "" {
		level = c.logLevel
	}
	c.log = logger.Get().With(logger.String("session", uuid.NewString()))
	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(level); err != nil {
		c.log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", level), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	c.log.Debug(ctx, "configuration loaded",
		logger.String("command", cmd.Name()),
		logger.String("output_dir", cfg.OutputDir),
		logger.String("page_size", cfg.PageSize))
	return nil
}

// newService wires the app service with a PDF exporter writing to dir.
func (c *cli) newService(dir string) *service.Service {
	if dir == "" {
		dir = c.cfg.OutputDir
	}
	exporter := export.NewExporter(
		export.NewPDFRenderer(export.WithPageSize(c.cfg.PageSize)),
		export.WithOutputDir(dir),
		export.WithLogger(c.log.Named("export")),
		export.WithMetrics(c.metrics),
	)
	return service.New(
		service.WithLogger(c.log.Named("service")),
		service.WithExporter(exporter),
		service.WithMetrics(c.metrics),
		service.WithReportTitle(c.cfg.ReportTitle),
	)
}

func (c *cli) wizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactive three-screen wizard (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runWizard,
	}
}

func (c *cli) runWizard(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	session := terminal.NewSession(c.newService(""), in, cmd.OutOrStdout(),
		terminal.WithInteractive(isTerminal(in)),
		terminal.WithDefaultScore(c.cfg.DefaultTraitScore),
		terminal.WithSessionLogger(c.log.Named("terminal")),
		terminal.WithSessionMetrics(c.metrics),
	)
	return session.Run(cmd.Context())
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// scoreResult is the --json shape of the score command.
type scoreResult struct {
	types.Profile
	Careers []catalog.Career `json:"careers"`
}

func (c *cli) scoreCmd() *cobra.Command {
	var (
		traits  traitFlags
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score Big Five traits and print the RIASEC profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			b, err := traits.resolve(cmd, c.cfg.DefaultTraitScore)
			if err != nil {
				return err
			}
			svc := c.newService("")
			p := svc.Analyze(ctx, b)
			careers := svc.Recommend(ctx, p.Dominant)

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(scoreResult{Profile: p, Careers: careers})
			}
			fmt.Fprintf(out, "Holland Code: %s\n\n", p.HollandCode)
			terminal.RenderChart(out, p)
			fmt.Fprintln(out)
			terminal.RenderCareers(out, careers)
			return nil
		},
	}
	traits.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the profile as JSON")
	return cmd
}

func (c *cli) careersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "careers [CODE...]",
		Short: "List career fields, optionally filtered by RIASEC codes",
		Long: `List the career table. Codes may be given as separate arguments or as a
Holland Code, for example "careerpath careers S-I-C".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := catalog.Careers()
			if len(args) > 0 {
				codes, err := catalog.ParseCodes(args...)
				if err != nil {
					return err
				}
				list = c.newService("").Recommend(cmd.Context(), codes)
			}
			terminal.RenderCareerTable(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var (
		traits traitFlags
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the results document as PDF and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			b, err := traits.resolve(cmd, c.cfg.DefaultTraitScore)
			if err != nil {
				return err
			}
			svc := c.newService(outDir)
			path, err := svc.Export(ctx, svc.Analyze(ctx, b))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	traits.register(cmd)
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from output_dir)")
	return cmd
}
