package affine

import (
	"log/slog"
	"sync/atomic"
)

// silent is the logger in effect until SetLogger installs another one.
// Its handler reports every level as disabled, so log calls return before
// building a record.
var silent = slog.New(slog.DiscardHandler)

// active holds the logger consulted by the package.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silent)
}

// SetLogger routes affine's diagnostics to l. Passing nil switches
// logging back off, which is also the initial state.
//
// Only one record is ever emitted: a Debug record when Normalize meets a
// zero-length vector and falls back to the zero vector. Return values
// never depend on the logger.
//
// SetLogger may be called while other goroutines use the package.
//
// Example:
//
//	affine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger currently used by affine. It is never nil.
func Logger() *slog.Logger {
	return active.Load()
}
