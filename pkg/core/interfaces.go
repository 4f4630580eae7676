package core

// Logger is the ambient logging sink used by the renderer and CLI so
// progress output can be swapped out (tests, silent runs) without
// touching call sites.
type Logger interface {
	Printf(format string, args ...interface{})
}
