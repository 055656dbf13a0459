// Package logging builds the zap logger shared by the CLI and the pipeline.
//
// Logs go to the writer handed in (stderr in production) so stdout stays
// reserved for the safe letter list.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/glyphcover/internal/config"
)

// New returns a logger writing cfg.Format-encoded entries at cfg.Level or above to w.
// verbose forces the debug level.
func New(cfg config.LoggingConfig, verbose bool, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case config.FormatConsole:
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	case config.FormatJSON, "":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddCaller()), nil
}
