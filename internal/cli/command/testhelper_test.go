package command

import (
	"bytes"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ut-go/internal/telemetry/logger"
)

// fixedNow is the wall clock seen by every test invocation.
var fixedNow = time.Date(2024, 5, 17, 13, 45, 0, 0, time.UTC)

// runResult captures one invocation of the app.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// isolateEnv hides the developer's config file and UT_* variables.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"UT_PRECISION",
		"UT_TIMEZONE",
		"UT_OUTPUT",
		"UT_LOG_LEVEL",
		"UT_LOG_FORMAT",
		"UT_METRICS_TEXTFILE",
	} {
		t.Setenv(key, "")
	}
}

// runApp runs ut with args the way main does.
func runApp(t *testing.T, args ...string) runResult {
	t.Helper()

	prev := logger.Default()
	t.Cleanup(func() { logger.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	app := App(WithClock(func() time.Time { return fixedNow }))
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(NormalizeArgs(append([]string{"ut"}, args...)))
	return runResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}
