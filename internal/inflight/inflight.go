package inflight

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Guard serializes mutating actions: while an action is in flight a second
// invocation under the same key is rejected instead of producing a duplicate
// submission. Keys are per action and target, e.g. "loans.create" or
// "returns.process:17".
type Guard struct {
	mu     sync.Mutex
	active map[string]string
}

func NewGuard() *Guard {
	return &Guard{active: make(map[string]string)}
}

// Begin claims the key and returns a release func together with the request ID
// assigned to this attempt. It fails when the key is already claimed.
func (g *Guard) Begin(key string) (func(), string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, "", fmt.Errorf("aksi %q masih diproses, tunggu sampai selesai", key)
	}

	requestID := uuid.NewString()
	g.active[key] = requestID

	release := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.active, key)
	}
	return release, requestID, nil
}

// InFlight reports whether the key is currently claimed.
func (g *Guard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[key]
	return busy
}
