package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	lock   sync.RWMutex
	logger *zap.Logger = zap.NewNop()
	sugar  *zap.SugaredLogger
)

// Initialize replaces the no-op default with a production logger at the given level.
func Initialize(level zap.AtomicLevel) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	lock.Lock()
	logger = log
	sugar = log.Sugar()
	lock.Unlock()
}

// Logger returns the current zap logger.
func Logger() *zap.Logger {
	lock.RLock()
	defer lock.RUnlock()
	return logger
}

// Sugar returns the sugared logger.
func Sugar() *zap.SugaredLogger {
	lock.RLock()
	defer lock.RUnlock()
	if sugar == nil {
		return logger.Sugar()
	}
	return sugar
}
