package core

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	// Lazy-load and ensure a single read
	loggerOnce      sync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = NewLogger(os.Stderr)
	})
	return loggerSingleton
}

// Logger prints messages on stderr depending on the verbose level.
// Warnings are always printed. Stdout is reserved for command outputs.
type Logger struct {
	verbose VerboseLevel
	output  *log.Logger
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{
		verbose: VerboseOff,
		output:  log.New(w, "", log.LstdFlags),
	}
}

// SetVerboseLevel overrides the default verbose level
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	return l
}

func (l *Logger) Warn(v ...any) {
	l.output.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	l.output.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	l.log(VerboseInfo, v...)
}
func (l *Logger) Infof(format string, v ...any) {
	l.logf(VerboseInfo, format, v...)
}

func (l *Logger) Debug(v ...any) {
	l.log(VerboseDebug, v...)
}
func (l *Logger) Debugf(format string, v ...any) {
	l.logf(VerboseDebug, format, v...)
}

func (l *Logger) Trace(v ...any) {
	l.log(VerboseTrace, v...)
}
func (l *Logger) Tracef(format string, v ...any) {
	l.logf(VerboseTrace, format, v...)
}

func (l *Logger) log(level VerboseLevel, v ...any) {
	if l.verbose >= level {
		l.output.Println(v...)
	}
}
func (l *Logger) logf(level VerboseLevel, format string, v ...any) {
	if l.verbose >= level {
		l.output.Printf(format, v...)
	}
}
