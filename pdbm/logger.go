package pdbm

// Logger receives diagnostic messages for conditions this package handles
// by silently pruning a branch: an Oracle UNKNOWN verdict, or a pair whose
// diagonal turns out contradictory once closure completes. Printf follows
// fmt.Sprintf formatting conventions.
type Logger interface {
	Printf(format string, args ...any)
}

// nopLogger is the zero-value Logger: every call is a no-op.
type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// DiagOption configures the diagnostic Logger used by Canonical and
// AddGuard. The default is a nopLogger, so callers that don't care about
// pruned branches pay nothing.
type DiagOption func(*diagOptions)

type diagOptions struct {
	logger Logger
}

func defaultDiagOptions() diagOptions {
	return diagOptions{logger: nopLogger{}}
}

// WithLogger installs l to receive a message whenever Canonical or
// AddGuard abandons a branch because the Oracle returned UNKNOWN, or
// Canonical discards a pair whose closure exposed a contradictory
// diagonal. A nil l is ignored.
func WithLogger(l Logger) DiagOption {
	return func(o *diagOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
