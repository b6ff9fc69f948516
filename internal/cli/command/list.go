package command

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ut-go/internal/cli/output"
	"github.com/yndnr/ut-go/internal/core/domain"
)

// PrecisionsCommand returns the precisions command.
func PrecisionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "precisions",
		Usage: "List valid precision names",
		Action: func(c *cli.Context) error {
			rt, err := mustRuntime(c)
			if err != nil {
				return err
			}
			return renderTable(c, rt, precisionTable())
		},
	}
}

// PresetsCommand returns the presets command.
func PresetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List valid preset names for generate --base",
		Action: func(c *cli.Context) error {
			rt, err := mustRuntime(c)
			if err != nil {
				return err
			}
			return renderTable(c, rt, presetTable())
		},
	}
}

func precisionTable() *output.Table {
	t := &output.Table{}
	t.SetHeaders("NAME", "UNITS_PER_SECOND", "FORMAT")
	for _, p := range domain.Precisions() {
		t.AddRow(p.String(), strconv.FormatInt(p.Scale(), 10), p.PreferredFormat())
	}
	return t
}

func presetTable() *output.Table {
	t := &output.Table{}
	t.SetHeaders("NAME", "DAY_OFFSET")
	for _, p := range domain.Presets() {
		t.AddRow(p.String(), strconv.Itoa(p.Offset()))
	}
	return t
}

// renderTable prints t aligned for text output and as records otherwise.
func renderTable(c *cli.Context, rt *Runtime, t *output.Table) error {
	if rt.Format == output.FormatText {
		return render(c, rt, t)
	}
	return render(c, rt, t.Records())
}
