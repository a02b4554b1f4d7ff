package ledger

import (
	"sort"
	"sync"
)

// lockTable hands out one mutex per wallet so ledger operations serialize
// per wallet rather than globally. Multi-wallet operations must acquire
// their locks through acquire, which orders them by wallet identifier to
// rule out deadlock between crossing transfers.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *lockTable) get(id string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	return l
}

// acquire locks the given wallets in identifier order, deduplicating repeats,
// and returns the release function. Lock hold time is bounded to the
// in-memory mutation; callers must not perform I/O before releasing.
func (t *lockTable) acquire(ids ...string) func() {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	sort.Strings(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, id := range unique {
		l := t.get(id)
		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
