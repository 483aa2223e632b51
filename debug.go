package favebutton

import (
	"fmt"
	"log/slog"
	"os"
)

// logger receives actor lifecycle and delegate events. It discards
// everything until SetLogger or Scene.SetDebugMode installs a handler.
var logger = slog.New(slog.DiscardHandler)

// loggerSet records that the caller chose the logger explicitly.
var loggerSet bool

// SetLogger routes package logging to l. A nil l silences logging.
func SetLogger(l *slog.Logger) {
	loggerSet = l != nil
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, use of a
// disposed node in a tree operation panics and, unless a logger was
// installed with SetLogger, debug-level logs go to stderr until debug
// mode is turned off again.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if loggerSet {
		return
	}
	if enabled {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		logger = slog.New(slog.DiscardHandler)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("favebutton debug: %s on disposed node %q", op, n.Name))
	}
}
