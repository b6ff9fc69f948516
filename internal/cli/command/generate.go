package command

import (
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ut-go/internal/core/domain"
	"github.com/yndnr/ut-go/internal/core/service"
)

// GenerateCommand returns the generate command.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Print the timestamp of a preset date's midnight",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base",
				Aliases: []string{"b"},
				Usage:   "Base date: today, tomorrow, yesterday (default today)",
			},
			&cli.StringFlag{
				Name:    "precision",
				Aliases: []string{"p"},
				Usage:   "Precision of the printed timestamp (default: global precision)",
			},
		},
		Action: runGenerate,
	}
}

type generateRecord struct {
	Base      string `json:"base" yaml:"base"`
	Precision string `json:"precision" yaml:"precision"`
	Timezone  string `json:"timezone" yaml:"timezone"`
	Date      string `json:"date" yaml:"date"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
}

func (r generateRecord) Text() string { return strconv.FormatInt(r.Timestamp, 10) }

func runGenerate(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	precision := rt.Precision
	if c.IsSet("precision") {
		if precision, err = domain.FindPrecision(c.String("precision")); err != nil {
			rt.Metrics.ObserveError(service.CommandGenerate, domain.GetErrorCode(err))
			return err
		}
	}

	req := service.GenerateRequest{Precision: precision}
	if c.IsSet("base") {
		b := c.String("base")
		req.Base = &b
	}

	result, err := rt.Converter.Generate(rt.Context(), rt.Provider, req)
	if err != nil {
		return err
	}

	return render(c, rt, generateRecord{
		Base:      result.Preset.String(),
		Precision: result.Precision.String(),
		Timezone:  rt.Provider.Location().String(),
		Date:      result.Date.Format(time.RFC3339),
		Timestamp: result.Timestamp,
	})
}
