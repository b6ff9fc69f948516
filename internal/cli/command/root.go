package command

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ut-go/internal/cli/config"
	"github.com/yndnr/ut-go/internal/cli/output"
	"github.com/yndnr/ut-go/internal/core/domain"
	"github.com/yndnr/ut-go/internal/core/service"
	"github.com/yndnr/ut-go/internal/infra/buildinfo"
	"github.com/yndnr/ut-go/internal/telemetry/logger"
	"github.com/yndnr/ut-go/internal/telemetry/metric"
)

const runtimeKey = "runtime"

// Option customizes the application.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock replaces the wall clock used by date presets.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Runtime holds the state shared by commands during one invocation.
type Runtime struct {
	Config    *config.CLIConfig
	Precision domain.Precision
	Provider  domain.DateTimeProvider
	Format    output.Format
	Metrics   *metric.Registry
	Converter *service.ConverterService

	ctx context.Context
}

// Context returns the invocation context carrying the logger and
// invocation ID.
func (r *Runtime) Context() context.Context {
	return r.ctx
}

// App creates the CLI application.
func App(opts ...Option) *cli.App {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return &cli.App{
		Name:    "ut",
		Usage:   "convert unix timestamps to human-readable dates and back",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ParseCommand(),
			GenerateCommand(),
			PrecisionsCommand(),
			PresetsCommand(),
			VersionCommand(),
		},
		Metadata: make(map[string]any),
		Before: func(c *cli.Context) error {
			rt, err := newRuntime(c, o)
			if err != nil {
				return err
			}
			c.App.Metadata[runtimeKey] = rt
			return nil
		},
		After: func(c *cli.Context) error {
			rt := GetRuntime(c)
			if rt == nil || rt.Config.Metrics.Textfile == "" {
				return nil
			}
			if err := rt.Metrics.WriteTextfile(rt.Config.Metrics.Textfile); err != nil {
				return fmt.Errorf("write metrics textfile: %w", err)
			}
			return nil
		},
	}
}

// globalFlags returns the global CLI flags. Environment variables are
// read by the config loader, not by the flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.ut/config.yaml)",
		},
		&cli.StringFlag{
			Name:    "precision",
			Aliases: []string{"P"},
			Usage:   "Default precision: second, millisecond, microsecond, nanosecond (env UT_PRECISION)",
		},
		&cli.StringFlag{
			Name:    "timezone",
			Aliases: []string{"z"},
			Usage:   "IANA timezone, UTC or Local (env UT_TIMEZONE)",
		},
		&cli.BoolFlag{
			Name:    "utc",
			Aliases: []string{"u"},
			Usage:   "Use UTC, overrides --timezone",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml (env UT_OUTPUT)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error (env UT_LOG_LEVEL)",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file on exit (env UT_METRICS_TEXTFILE)",
		},
		&cli.StringFlag{
			Name:  "now",
			Usage: "Pin the reference time for presets, RFC 3339 (e.g. 2024-05-17T13:45:00Z)",
		},
	}
}

// flagOverrides maps explicitly set global flags to config keys.
func flagOverrides(c *cli.Context) map[string]any {
	keys := map[string]string{
		"precision":        "precision",
		"timezone":         "timezone",
		"output":           "output",
		"log-level":        "log.level",
		"metrics-textfile": "metrics.textfile",
	}

	overrides := make(map[string]any)
	for flag, key := range keys {
		if c.IsSet(flag) {
			overrides[key] = c.String(flag)
		}
	}
	if c.Bool("utc") {
		overrides["timezone"] = "UTC"
	}
	return overrides
}

func newRuntime(c *cli.Context, o *options) (*Runtime, error) {
	// Names typed on the command line match exactly; file and env values
	// are folded by the config package.
	if c.IsSet("precision") {
		if _, err := domain.FindPrecision(c.String("precision")); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	precision, err := cfg.DefaultPrecision()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = c.App.ErrWriter
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)

	provider, err := newProvider(c, o, loc)
	if err != nil {
		return nil, err
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithInvocationID(logger.WithLogger(ctx, log), logger.NewInvocationID())

	registry := metric.NewRegistry()
	rt := &Runtime{
		Config:    cfg,
		Precision: precision,
		Provider:  provider,
		Format:    format,
		Metrics:   registry,
		Converter: service.NewConverterService(registry),
		ctx:       ctx,
	}

	logger.L(ctx).Debug("configuration loaded",
		"precision", precision,
		"timezone", loc.String(),
		"output", format,
	)
	return rt, nil
}

// newProvider pins the clock to --now when given and reads the wall
// clock otherwise.
func newProvider(c *cli.Context, o *options, loc *time.Location) (domain.DateTimeProvider, error) {
	if c.IsSet("now") {
		now, err := time.Parse(time.RFC3339Nano, c.String("now"))
		if err != nil {
			return nil, fmt.Errorf("invalid --now %q: %w", c.String("now"), err)
		}
		return domain.NewFixedProvider(now, loc), nil
	}

	var opts []domain.SystemOption
	if o.clock != nil {
		opts = append(opts, domain.WithClock(o.clock))
	}
	return domain.NewSystemProvider(loc, opts...), nil
}

// GetRuntime retrieves the invocation runtime from context.
func GetRuntime(c *cli.Context) *Runtime {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt
	}
	return nil
}

func mustRuntime(c *cli.Context) (*Runtime, error) {
	rt := GetRuntime(c)
	if rt == nil {
		return nil, fmt.Errorf("command %q run without setup", c.Command.Name)
	}
	return rt, nil
}

// render writes data to the app's stdout in the configured format.
func render(c *cli.Context, rt *Runtime, data any) error {
	return output.NewFormatter(rt.Format).Format(writer(c), data)
}

func writer(c *cli.Context) io.Writer {
	return c.App.Writer
}

func errWriter(c *cli.Context) io.Writer {
	return c.App.ErrWriter
}
