package model

// Logger receives the decisions a family makes while dumping and loading.
// Implementations must be safe for concurrent use.
type Logger interface {
	Verbose(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Verbose(string, ...any) {}
