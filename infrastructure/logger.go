package infrastructure

import (
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func loggerConfigProvider() (LoggerConfig, error) {
	var config LoggerConfig
	if err := envconfig.Process("", &config); err != nil {
		return LoggerConfig{}, err
	}
	return config, nil
}

// NewLogger builds the JSON logger used by the commands. Logs go to stderr so
// stdout stays free for generated output.
func NewLogger(cfg LoggerConfig) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.FunctionKey = "function"
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

var Module = fx.Options(fx.Provide(loggerConfigProvider, NewLogger))
