package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
}

func NewLogger(level string) (*Logger, error) {
	config := zap.NewProductionConfig()

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{logger}, nil
}

// FromEnv builds a logger from VX_LOG_LEVEL. The default is "error" so
// the CLI's stdout contract of one result line per command holds.
func FromEnv() (*Logger, error) {
	level := os.Getenv("VX_LOG_LEVEL")
	if level == "" {
		level = "error"
	}
	return NewLogger(level)
}
