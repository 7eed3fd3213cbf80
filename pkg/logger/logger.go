// pkg/logger/logger.go

package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log          *zap.Logger
	logPath      string
	consoleLevel = zap.NewAtomicLevel()
)

// InitializeWithFallback tees console output with a JSON file core. If no
// log path is writable it logs to the console only.
func InitializeWithFallback(preferred string) {
	level := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	consoleLevel.SetLevel(level)

	path, err := FindWritableLogPath(preferred)
	if err != nil {
		fmt.Fprintln(os.Stderr, "No writable log path found. Logging to console only.")
		install(NewFallbackLogger(consoleLevel), "")
		return
	}

	writer, err := GetLogFileWriter(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not write to log file, falling back to console:", err)
		install(NewFallbackLogger(consoleLevel), "")
		return
	}

	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()), zapcore.Lock(os.Stderr), consoleLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, zap.DebugLevel),
	)

	install(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), path)
	log.Debug("Logger initialized",
		zap.String("log_level", level.String()),
		zap.String("log_path", path),
	)
}

// NewFallbackLogger writes to stderr only.
func NewFallbackLogger(level zapcore.LevelEnabler) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func install(l *zap.Logger, path string) {
	log = l
	logPath = path
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the global logger, initializing a console logger if needed.
func L() *zap.Logger {
	if log == nil {
		install(NewFallbackLogger(consoleLevel), "")
	}
	return log
}

// SetLevel changes the console level at runtime. The log file always
// records debug entries.
func SetLevel(level string) {
	consoleLevel.SetLevel(ParseLogLevel(level))
}

// Path returns the file the logger writes to, or "" for console only.
func Path() string {
	return logPath
}

// Sync flushes any buffered log entries. Call before the application exits.
func Sync() error {
	if log == nil {
		return nil
	}
	err := log.Sync()
	// stderr cannot be fsynced on most platforms
	if err != nil && strings.Contains(err.Error(), "/dev/stderr") {
		return nil
	}
	return err
}

func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = ""
	cfg.MessageKey = "M"
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

func ParseLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
