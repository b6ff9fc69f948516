package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/yndnr/ut-go/internal/core/domain"
	"github.com/yndnr/ut-go/internal/telemetry/logger"
)

// Command names used as metric labels.
const (
	CommandParse    = "parse"
	CommandGenerate = "generate"
)

// DeprecatedPrecisionFlag is the metric label for the legacy -p override.
const DeprecatedPrecisionFlag = "precision"

// MetricsRecorder receives command outcomes.
type MetricsRecorder interface {
	ObserveConversion(command, precision string)
	ObserveError(command, code string)
	ObserveDeprecated(flag string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveConversion(string, string) {}
func (noopRecorder) ObserveError(string, string)      {}
func (noopRecorder) ObserveDeprecated(string)         {}

// ConverterService converts between raw timestamps and calendar instants.
type ConverterService struct {
	metrics MetricsRecorder
}

// NewConverterService creates a ConverterService. A nil recorder discards
// metrics.
func NewConverterService(metrics MetricsRecorder) *ConverterService {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &ConverterService{metrics: metrics}
}

// ParseRequest carries the inputs of a parse command.
type ParseRequest struct {
	// Timestamp is the raw token, already matched against [-+]?\d+.
	Timestamp string

	// Precision is the deprecated per-command override; nil when absent.
	Precision *string

	// DefaultPrecision applies when Precision is nil.
	DefaultPrecision domain.Precision
}

// ParseResult is the outcome of a parse command.
type ParseResult struct {
	Raw        int64
	Precision  domain.Precision
	Instant    time.Time
	Formatted  string
	Deprecated bool // the legacy override was used
}

// Parse converts req.Timestamp to an instant in provider's location and
// formats it with the precision's preferred layout.
func (s *ConverterService) Parse(ctx context.Context, provider domain.DateTimeProvider, req ParseRequest) (*ParseResult, error) {
	log := logger.L(ctx).With("command", CommandParse)

	raw, err := ParseRawTimestamp(req.Timestamp)
	if err != nil {
		return nil, s.fail(CommandParse, err)
	}

	precision, overridden, err := domain.FindPrecisionOpt(req.Precision)
	if err != nil {
		return nil, s.fail(CommandParse, fmt.Errorf("resolve precision: %w", err))
	}
	if overridden {
		s.metrics.ObserveDeprecated(DeprecatedPrecisionFlag)
		log.Debug("precision override in use", "precision", precision, "default", req.DefaultPrecision)
	} else {
		precision = req.DefaultPrecision
	}

	if err := precision.CheckRange(raw); err != nil {
		return nil, s.fail(CommandParse, err)
	}

	instant := precision.ParseTimestamp(provider.Location(), raw)
	result := &ParseResult{
		Raw:        raw,
		Precision:  precision,
		Instant:    instant,
		Formatted:  precision.Format(instant),
		Deprecated: overridden,
	}

	log.Debug("timestamp parsed",
		"raw", raw,
		"precision", precision,
		"location", provider.Location().String(),
		"formatted", result.Formatted,
	)
	s.metrics.ObserveConversion(CommandParse, precision.String())
	return result, nil
}

// GenerateRequest carries the inputs of a generate command.
type GenerateRequest struct {
	// Base names a preset; nil means today.
	Base *string

	Precision domain.Precision
}

// GenerateResult is the outcome of a generate command.
type GenerateResult struct {
	Preset    domain.Preset
	Precision domain.Precision
	Date      time.Time
	Timestamp int64
}

// Generate resolves the base preset against provider and returns the raw
// timestamp of its midnight in the requested precision.
func (s *ConverterService) Generate(ctx context.Context, provider domain.DateTimeProvider, req GenerateRequest) (*GenerateResult, error) {
	preset, ok, err := domain.FindPresetOpt(req.Base)
	if err != nil {
		return nil, s.fail(CommandGenerate, fmt.Errorf("resolve base: %w", err))
	}
	if !ok {
		preset = domain.PresetToday
	}

	date := preset.Date(provider)
	ts, err := req.Precision.Timestamp(date)
	if err != nil {
		return nil, s.fail(CommandGenerate, err)
	}

	logger.L(ctx).Debug("timestamp generated",
		"command", CommandGenerate,
		"preset", preset,
		"precision", req.Precision,
		"date", date.Format(time.RFC3339),
		"timestamp", ts,
	)
	s.metrics.ObserveConversion(CommandGenerate, req.Precision.String())

	return &GenerateResult{
		Preset:    preset,
		Precision: req.Precision,
		Date:      date,
		Timestamp: ts,
	}, nil
}

func (s *ConverterService) fail(command string, err error) error {
	s.metrics.ObserveError(command, domain.GetErrorCode(err))
	return err
}

// ParseRawTimestamp parses a signed decimal token into an int64. Tokens
// that match [-+]?\d+ but overflow 64 bits fail with ErrWrongTimestamp.
func ParseRawTimestamp(token string) (int64, error) {
	raw, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, domain.ErrWrongTimestamp.WithDetails(strconv.Quote(token)).WithCause(err)
	}
	return raw, nil
}
