// Package inflight rejects a second submission of the same mutation while the
// first one is still running.
package inflight

import (
	"sync"
)

type key struct {
	scope string
	kind  string
}

type Guard struct {
	mu      sync.Mutex
	running map[key]struct{}
}

func New() *Guard {
	return &Guard{running: make(map[key]struct{})}
}

// TryAcquire marks (scope, kind) as running. It returns a release func and
// true, or nil and false when the same pair is already running.
func (g *Guard) TryAcquire(scope, kind string) (func(), bool) {
	k := key{scope: scope, kind: kind}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[k]; busy {
		return nil, false
	}
	g.running[k] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.running, k)
			g.mu.Unlock()
		})
	}, true
}

func (g *Guard) Busy(scope, kind string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.running[key{scope: scope, kind: kind}]
	return busy
}
