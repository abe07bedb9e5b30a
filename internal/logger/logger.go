// Package logger is the kokua diagnostic log.
//
// Messages below the current level are dropped. The default level is
// LevelWarn, so warnings (such as residual placeholders left in a rendered
// document) are always shown; --verbose lowers the level to LevelDebug to
// trace template lookup, pruning and emission.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level orders log messages by severity.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the upper-case level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel parses a level name, ignoring case.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return l, nil
		}
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

var (
	mu     sync.RWMutex
	level            = LevelWarn
	output io.Writer = os.Stderr
)

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// CurrentLevel returns the minimum level that is written.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetVerbose switches between LevelDebug and the default LevelWarn.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// IsVerbose reports whether debug messages are written.
func IsVerbose() bool {
	return CurrentLevel() <= LevelDebug
}

// SetOutput redirects the log. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(l Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l < level {
		return
	}
	fmt.Fprintf(output, "["+l.String()+"] "+format+"\n", args...)
}

// Debug traces engine steps.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info reports progress.
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn reports a recoverable problem.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Error reports a failure.
func Error(format string, args ...any) { logf(LevelError, format, args...) }

// Section prints a header separating the stages of a run at debug level.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if LevelDebug < level {
		return
	}
	fmt.Fprintf(output, "\n=== %s ===\n", name)
}
