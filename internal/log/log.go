/*
 * Reflex for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString maps a case-insensitive name to a Level, falling back
// to Info so a typo in the environment does not flood the serial console.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", 0),
		level:  level,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l != nil && l.level <= LevelDebug {
		l.logger.Printf("DEBUG: "+format, v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l != nil && l.level <= LevelInfo {
		l.logger.Printf("INFO: "+format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l != nil && l.level <= LevelWarn {
		l.logger.Printf("WARN: "+format, v...)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l != nil && l.level <= LevelError {
		l.logger.Printf("ERROR: "+format, v...)
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
