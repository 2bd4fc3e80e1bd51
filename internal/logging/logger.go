package logging

// Logger is the logging surface of the animl command. Any Logger also
// satisfies model.Logger.
type Logger interface {
	// Verbose logs detailed diagnostic information, such as codec decisions.
	Verbose(format string, args ...any)
	// Info logs informational messages about normal operations.
	Info(format string, args ...any)
	// Error logs error messages.
	Error(format string, args ...any)
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NullLogger)(nil)
)
