// Package store is the process-wide keyed store for swap and extension
// records. It is the unit of mutual exclusion: writes to one swap id are
// serialized behind a per-record lock, writes to different ids proceed
// independently. Collaborators subscribe to change notifications instead of
// holding their own copies.
package store

import (
	"log/slog"
	"sync"

	"bookswap-engine/internal/domain/extension"
	"bookswap-engine/internal/domain/swap"
	"bookswap-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrNotFound = errs.New("record not found")
	ErrExists   = errs.New("record already exists")
)

// Change is emitted to watchers after every successful swap write.
type Change struct {
	SwapID uuid.UUID
	Status swap.Status
}

type entry struct {
	mu   sync.Mutex
	swap *swap.Swap
}

type Store struct {
	logger *slog.Logger

	mu               sync.RWMutex
	swaps            map[uuid.UUID]*entry
	extensions       map[uuid.UUID]*extension.Request
	extensionsBySwap map[uuid.UUID][]uuid.UUID

	watchMu     sync.Mutex
	watchers    map[int]chan Change
	nextWatchID int
}

func New(logger *slog.Logger) *Store {
	return &Store{
		logger:           logger,
		swaps:            make(map[uuid.UUID]*entry),
		extensions:       make(map[uuid.UUID]*extension.Request),
		extensionsBySwap: make(map[uuid.UUID][]uuid.UUID),
		watchers:         make(map[int]chan Change),
	}
}

func (s *Store) InsertSwap(sw *swap.Swap) error {
	s.mu.Lock()
	if _, ok := s.swaps[sw.ID()]; ok {
		s.mu.Unlock()
		return ErrExists
	}
	s.swaps[sw.ID()] = &entry{swap: sw}
	s.mu.Unlock()

	s.notify(Change{SwapID: sw.ID(), Status: sw.Status()})
	return nil
}

func (s *Store) HasSwap(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.swaps[id]
	return ok
}

// GetSwap returns a detached deep copy; mutating it never touches the store.
func (s *Store) GetSwap(id uuid.UUID) (swap.Snapshot, error) {
	e, err := s.entryOf(id)
	if err != nil {
		return swap.Snapshot{}, err
	}

	e.mu.Lock()
	sn := e.swap.Snapshot()
	e.mu.Unlock()

	return s.detach(sn), nil
}

// UpdateSwap runs fn on the record while holding its lock. fn must be quick
// and must never block on I/O; remote calls happen outside the lock.
func (s *Store) UpdateSwap(id uuid.UUID, fn func(*swap.Swap) error) (swap.Snapshot, error) {
	return s.ReplaceSwap(id, func(current *swap.Swap) (*swap.Swap, error) {
		if err := fn(current); err != nil {
			return nil, err
		}
		return current, nil
	})
}

// ReplaceSwap is UpdateSwap for callers that need to swap in a rebuilt
// record, such as an optimistic rollback restoring a snapshot.
func (s *Store) ReplaceSwap(id uuid.UUID, fn func(current *swap.Swap) (*swap.Swap, error)) (swap.Snapshot, error) {
	e, err := s.entryOf(id)
	if err != nil {
		return swap.Snapshot{}, err
	}

	e.mu.Lock()
	next, err := fn(e.swap)
	if err != nil {
		e.mu.Unlock()
		return swap.Snapshot{}, err
	}
	e.swap = next
	sn := next.Snapshot()
	e.mu.Unlock()

	s.notify(Change{SwapID: sn.ID, Status: sn.Status})
	return s.detach(sn), nil
}

func (s *Store) ListSwaps() []swap.Snapshot {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.swaps))
	for _, e := range s.swaps {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]swap.Snapshot, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		sn := e.swap.Snapshot()
		e.mu.Unlock()
		out = append(out, s.detach(sn))
	}
	return out
}

func (s *Store) InsertExtension(r *extension.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.extensions[r.ID()]; ok {
		return ErrExists
	}
	s.extensions[r.ID()] = r
	s.extensionsBySwap[r.SwapID()] = append(s.extensionsBySwap[r.SwapID()], r.ID())
	return nil
}

func (s *Store) HasExtension(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.extensions[id]
	return ok
}

func (s *Store) GetExtension(id uuid.UUID) (extension.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.extensions[id]
	if !ok {
		return extension.Snapshot{}, ErrNotFound
	}
	return r.Snapshot(), nil
}

func (s *Store) UpdateExtension(id uuid.UUID, fn func(*extension.Request) error) (extension.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.extensions[id]
	if !ok {
		return extension.Snapshot{}, ErrNotFound
	}
	if err := fn(r); err != nil {
		return extension.Snapshot{}, err
	}
	return r.Snapshot(), nil
}

// ExtensionsOf returns the swap's extension requests in arrival order.
func (s *Store) ExtensionsOf(swapID uuid.UUID) []extension.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.extensionsBySwap[swapID]
	out := make([]extension.Snapshot, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.extensions[id]; ok {
			out = append(out, r.Snapshot())
		}
	}
	return out
}

// Watch returns a buffered change stream and a cancel func. Slow consumers
// lose notifications rather than stall writers; they can re-list on demand.
func (s *Store) Watch(buffer int) (<-chan Change, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Change, buffer)

	s.watchMu.Lock()
	id := s.nextWatchID
	s.nextWatchID++
	s.watchers[id] = ch
	s.watchMu.Unlock()

	cancel := func() {
		s.watchMu.Lock()
		if w, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(w)
		}
		s.watchMu.Unlock()
	}
	return ch, cancel
}

func (s *Store) notify(c Change) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	for _, w := range s.watchers {
		select {
		case w <- c:
		default:
			s.logger.Debug("dropping change notification for slow watcher", "swap_id", c.SwapID)
		}
	}
}

func (s *Store) entryOf(id uuid.UUID) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.swaps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *Store) detach(sn swap.Snapshot) swap.Snapshot {
	var out swap.Snapshot
	if err := copier.CopyWithOption(&out, &sn, copier.Option{DeepCopy: true}); err != nil {
		s.logger.Warn("deep copy of swap snapshot failed, returning shallow copy", "error", err)
		return sn
	}
	return out
}
