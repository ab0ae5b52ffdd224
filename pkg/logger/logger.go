package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	l, err := build("production", "info")
	if err != nil {
		panic(err)
	}
	L = l
}

// Configure 依環境與等級重建全域 logger，development 使用 console encoder
func Configure(environment, level string) error {
	l, err := build(environment, level)
	if err != nil {
		return err
	}
	L = l
	return nil
}

func build(environment, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	if environment == "development" {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build(zap.AddCallerSkip(1))
}

// WithComponent 回傳帶有 component 欄位的 logger，供 handler、service、catalog 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
