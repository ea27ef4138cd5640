package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr.Logger.V.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// ErrUnknownLevel indicates a level name New does not understand.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ParseLevel maps "info", "debug" and "trace" (case-insensitive; "" means
// info) to a logr verbosity.
func ParseLevel(level string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// New returns a JSON logger writing to w that emits every record with
// verbosity ≤ level.
func New(level string, w io.Writer) (logr.Logger, error) {
	v, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	if w == nil {
		w = io.Discard
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		// zapr maps V(n) to zap level −n.
		zap.NewAtomicLevelAt(zapcore.Level(-v)),
	)

	return zapr.NewLogger(zap.New(core)), nil
}
