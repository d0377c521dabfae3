package view

import "sync"

// Lifecycle owns the teardown of a set of live subscriptions tied to one
// signed-in identity. Switching identities (or signing out) tears everything
// down exactly once; a fresh Lifecycle is created for the next identity, so
// state from one account never leaks into another's view.
type Lifecycle struct {
	mu        sync.Mutex
	teardowns []func()
	done      bool
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// Add registers a teardown. If the lifecycle already ended, fn runs
// immediately so late registrations cannot leak.
func (l *Lifecycle) Add(fn func()) {
	l.mu.Lock()
	if l.done {
		l.mu.Unlock()
		fn()
		return
	}
	l.teardowns = append(l.teardowns, fn)
	l.mu.Unlock()
}

// Teardown runs all registered teardowns, newest first. Safe to call
// multiple times; only the first call runs anything.
func (l *Lifecycle) Teardown() {
	l.mu.Lock()
	if l.done {
		l.mu.Unlock()
		return
	}
	l.done = true
	fns := l.teardowns
	l.teardowns = nil
	l.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Done reports whether teardown has already happened.
func (l *Lifecycle) Done() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}
