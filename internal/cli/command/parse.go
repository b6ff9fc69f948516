package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ut-go/internal/core/domain"
	"github.com/yndnr/ut-go/internal/core/service"
)

// DeprecationWarning is written to stderr when parse receives -p.
const DeprecationWarning = "-p PRECISION option is deprecated."

var timestampPattern = regexp.MustCompile(`^[-+]?\d+$`)

// ParseCommand returns the parse command.
func ParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Convert a unix timestamp to a date",
		ArgsUsage: "TIMESTAMP",
		Description: "Converts TIMESTAMP, counted in the default precision since " +
			"1970-01-01 00:00:00 UTC, to a date in the configured timezone.\n" +
			"Negative timestamps are accepted: ut parse -1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "precision",
				Aliases: []string{"p"},
				Usage:   "Deprecated: use the global --precision flag",
			},
		},
		Action: runParse,
	}
}

type parseRecord struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Precision string `json:"precision" yaml:"precision"`
	Timezone  string `json:"timezone" yaml:"timezone"`
	Date      string `json:"date" yaml:"date"`
	RFC3339   string `json:"rfc3339" yaml:"rfc3339"`
}

func (r parseRecord) Text() string { return r.Date }

func runParse(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return fmt.Errorf("parse: expected exactly one TIMESTAMP argument, got %d", c.NArg())
	}
	token := c.Args().First()
	if !timestampPattern.MatchString(token) {
		err := domain.ErrWrongTimestamp.WithDetails(strconv.Quote(token))
		rt.Metrics.ObserveError(service.CommandParse, domain.GetErrorCode(err))
		return err
	}

	req := service.ParseRequest{
		Timestamp:        token,
		DefaultPrecision: rt.Precision,
	}
	if c.IsSet("precision") {
		p := c.String("precision")
		req.Precision = &p
	}

	result, err := rt.Converter.Parse(rt.Context(), rt.Provider, req)
	if err != nil {
		return err
	}
	if result.Deprecated {
		fmt.Fprintln(errWriter(c), DeprecationWarning)
	}

	return render(c, rt, parseRecord{
		Timestamp: token,
		Precision: result.Precision.String(),
		Timezone:  rt.Provider.Location().String(),
		Date:      result.Formatted,
		RFC3339:   result.Instant.Format(time.RFC3339Nano),
	})
}

// NormalizeArgs rewrites the arguments of a parse invocation so that a
// negative TIMESTAMP is not mistaken for a flag and flags may follow the
// positional argument. The subcommand's flags are moved first and its
// positionals after a "--" terminator. Arguments that already carry a
// terminator are returned unchanged.
func NormalizeArgs(args []string) []string {
	start := -1
	for i := 1; i < len(args); i++ {
		if args[i] == "parse" && !takesValue(args[i-1]) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return args
	}

	rest := args[start:]
	for _, a := range rest {
		if a == "--" {
			return args
		}
	}

	var flags, positional []string
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		switch {
		case timestampPattern.MatchString(a) || !strings.HasPrefix(a, "-"):
			positional = append(positional, a)
		case takesValue(a) && i+1 < len(rest):
			flags = append(flags, a, rest[i+1])
			i++
		default:
			flags = append(flags, a)
		}
	}
	if len(positional) == 0 {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[:start]...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// takesValue reports whether a flag token consumes the following
// argument as its value.
func takesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	switch strings.TrimLeft(arg, "-") {
	case "p", "precision", "P", "c", "config", "z", "timezone", "o", "output", "log-level", "metrics-textfile", "now":
		return strings.HasPrefix(arg, "-")
	}
	return false
}
