// Package cursorbuf implements a fixed capacity byte buffer with a cursor.
//
// A Buffer owns a region of bytes, a cursor that tracks how much of it has
// been written, a text encoding used whenever strings go in or out, and
// optionally an open file the region can be loaded from or saved to.
//
// The cursor always stays within [0, Len()]. Every operation that replaces
// the region clamps it as part of the same call.
//
// A Buffer is meant to have a single owner, nothing in it is locked.
package cursorbuf

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is reported by the cursorbuf cli
const Version = "1.0.0"

var (
	logging    bool
	logWriters = []zapcore.WriteSyncer{os.Stderr}
	logger     *zap.Logger

	// configErr is logged the first time logging is switched on
	configErr error
)

var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	MessageKey:     "msg",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging switches the file operation logs on or off, they start off
func EnableLogging(enable bool) {
	logging = enable

	if logging && configErr != nil {
		logger.Error("error reading the config file, using defaults",
			zap.String("module", "config"),
			zap.String("path", confPath),
			zap.Error(configErr),
		)
		configErr = nil
	}
}

// AddLogWriter sends the logs to w as well
func AddLogWriter(w io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(w))
	initializeLogger()
}

// SetLogWriters replaces every log target, the cli points it at stderr
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	)).Named("cursorbuf")
}

func init() {
	initializeLogger()
	configErr = initConfig()
}
