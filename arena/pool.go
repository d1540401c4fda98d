package arena

import (
	"sync"

	"github.com/grovekit/grove/meta"
)

// maxPoolGenerations caps how often one arena is recycled. Past the cap the
// arena is dropped instead of pooled, releasing backing storage that may
// have grown to fit an unusually large tree.
const maxPoolGenerations = 20

// Pool recycles reset arenas across short-lived trees, typically one per
// served request. Acquire prefers a previously released arena over
// allocating fresh backing storage. Safe for concurrent use; the lock
// covers free-list bookkeeping only.
type Pool struct {
	db       *meta.DB
	capacity int

	mu   sync.Mutex
	free []*Arena
}

// NewPool creates a pool whose arenas validate against db with the given
// per-store capacity (0 for DefaultCapacity).
func NewPool(db *meta.DB, capacity int) *Pool {
	return &Pool{db: db, capacity: capacity}
}

// Acquire returns an empty, ready-to-use arena.
func (p *Pool) Acquire() *Arena {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		a := p.free[n-1]
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return a
	}
	p.mu.Unlock()
	return New(p.db, p.capacity)
}

// Release resets the arena and returns it to the pool. Every handle the
// arena issued becomes invalid. Arenas past the recycle cap are dropped.
func (p *Pool) Release(a *Arena) {
	a.Reset()
	if a.Generation() >= maxPoolGenerations {
		return
	}
	p.mu.Lock()
	p.free = append(p.free, a)
	p.mu.Unlock()
}

// Idle returns the number of arenas currently pooled.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
