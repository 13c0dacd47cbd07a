package utils

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console-encoded logger at the given level.
// With a non-empty file, all output goes there instead of stderr.
func NewLogger(level, file string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewLogger] invalid level: %+v", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "[NewLogger] failed to build logger")
	}
	return l, nil
}
