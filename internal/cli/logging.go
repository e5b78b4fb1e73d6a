package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level.
	Level string
	// Format is the output format (json, console).
	Format string
}

func (o *RootOptions) logConfig() LogConfig {
	cfg := LogConfig{Level: "warn", Format: o.LogFormat}
	if o.Verbose {
		cfg.Level = "debug"
	}
	return cfg
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg LogConfig, w io.Writer) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}
