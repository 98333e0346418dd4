// Package logging provides the leveled logging facade used across the server.
// All output goes to stderr so that stdio MCP transport on stdout stays clean.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the global leveled logger
var Logger *LeveledLogger

// LeveledLogger provides leveled logging on top of zerolog using the
// 0-9 verbosity scheme (0 errors only, 3+ info, 5+ debug).
type LeveledLogger struct {
	level int
	log   zerolog.Logger
}

// NewLeveledLogger creates a new leveled logger writing to stderr
func NewLeveledLogger(level int) *LeveledLogger {
	return &LeveledLogger{
		level: level,
		log:   zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// SetLevel sets the log level
func (l *LeveledLogger) SetLevel(level int) {
	l.level = level
}

// Debug logs at debug level (level 5-9)
func (l *LeveledLogger) Debug(format string, v ...interface{}) {
	if l.level >= 5 {
		l.log.Debug().Msgf(format, v...)
	}
}

// Info logs at info level (level 3-9)
func (l *LeveledLogger) Info(format string, v ...interface{}) {
	if l.level >= 3 {
		l.log.Info().Msgf(format, v...)
	}
}

// Warn logs at warning level (level 1-9)
func (l *LeveledLogger) Warn(format string, v ...interface{}) {
	if l.level >= 1 {
		l.log.Warn().Msgf(format, v...)
	}
}

// Error logs at error level (always)
func (l *LeveledLogger) Error(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

// Initialize initializes the global logger
func Initialize(level int) {
	Logger = NewLeveledLogger(level)
}

// Debug logs at debug level using the global logger
func Debug(format string, v ...interface{}) {
	if Logger != nil {
		Logger.Debug(format, v...)
	}
}

// Info logs at info level using the global logger
func Info(format string, v ...interface{}) {
	if Logger != nil {
		Logger.Info(format, v...)
	}
}

// Warn logs at warning level using the global logger
func Warn(format string, v ...interface{}) {
	if Logger != nil {
		Logger.Warn(format, v...)
	}
}

// Error logs at error level using the global logger
func Error(format string, v ...interface{}) {
	if Logger != nil {
		Logger.Error(format, v...)
	}
}
