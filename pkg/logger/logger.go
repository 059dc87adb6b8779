package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = zap.NewNop()

// Init 依設定初始化全域 logger
func Init(level string) error {
	lv, err := zapcore.ParseLevel(level)
	if err != nil {
		lv = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lv)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return err
	}
	root = l
	return nil
}

// Named 取得帶名稱的子 logger，例如 Named("UsersController")
func Named(name string) *zap.Logger {
	return root.Named(name)
}

// Sync 程式結束前 flush
func Sync() {
	_ = root.Sync()
}
