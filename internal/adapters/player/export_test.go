package player

import "context"

// WithLookPath replaces binary discovery, for tests.
func (l *Launcher) WithLookPath(lookPath func(string) (string, error)) *Launcher {
	l.lookPath = lookPath
	return l
}

// WithRunner replaces process execution, for tests.
func (l *Launcher) WithRunner(run func(ctx context.Context, name string, args ...string) error) *Launcher {
	l.run = run
	return l
}
