// Package logger builds the zap logger shared by the CLI and its components.
// Logs always go to the given writer (stderr in practice) so that generated
// code on stdout stays clean.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing console lines, or JSON when jsonOutput
// is set. verbose lowers the level from info to debug.
func New(w io.Writer, jsonOutput, verbose bool) *zap.SugaredLogger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// Nop is used wherever no logger was supplied.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
