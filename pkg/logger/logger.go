package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `envconfig:"LOG_LEVEL" default:"debug"`
	Sink     string        `envconfig:"LOG_SINK"`
}

// NewLogger builds a named zap logger writing to the configured sink,
// stderr when none is set.
func NewLogger(cfg Log, name string) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Sink != "" {
		zapCfg.OutputPaths = []string{cfg.Sink}
		zapCfg.ErrorOutputPaths = []string{cfg.Sink}
	}
	log, err := zapCfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		log = zap.NewNop()
	}
	return log.Named(name)
}
