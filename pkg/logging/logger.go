package logging

// Logger is the minimal sink handed to components that should not depend on the
// package-level functions directly. Implementations must never block or panic.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Error(msg string)
}

// SubsystemLogger implements Logger by forwarding to the package-level functions
// with a fixed subsystem tag.
type SubsystemLogger struct {
	subsystem string
}

// ForSubsystem returns a Logger that tags every entry with the given subsystem.
func ForSubsystem(subsystem string) SubsystemLogger {
	return SubsystemLogger{subsystem: subsystem}
}

// Subsystem returns the tag this logger writes under.
func (l SubsystemLogger) Subsystem() string {
	return l.subsystem
}

func (l SubsystemLogger) Debug(msg string) {
	logInternal(LevelDebug, l.subsystem, nil, "%s", msg)
}

func (l SubsystemLogger) Info(msg string) {
	logInternal(LevelInfo, l.subsystem, nil, "%s", msg)
}

func (l SubsystemLogger) Error(msg string) {
	logInternal(LevelError, l.subsystem, nil, "%s", msg)
}

// Discard is a Logger that drops everything.
var Discard Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Debug(string) {}
func (discardLogger) Info(string)  {}
func (discardLogger) Error(string) {}
