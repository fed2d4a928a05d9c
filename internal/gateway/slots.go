package gateway

import (
	"context"
	"sync"
)

// slotTable is the admission registry: it bounds how many commands may be
// in flight and tracks a cancel function per admitted command so a bulk
// cancel can force-complete all of them. All methods are safe for
// concurrent use.
type slotTable struct {
	mu     sync.Mutex
	max    int
	next   int
	active map[int]context.CancelFunc
}

func newSlotTable(max int) *slotTable {
	return &slotTable{
		max:    max,
		active: make(map[int]context.CancelFunc),
	}
}

// tryAcquire claims an admission slot for a command whose lifetime is
// controlled by cancel. It returns the slot id and true, or false when the
// table is at capacity. There is no queueing; rejection is immediate.
func (s *slotTable) tryAcquire(cancel context.CancelFunc) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.active) >= s.max {
		return 0, false
	}

	s.next++
	id := s.next
	s.active[id] = cancel
	return id, true
}

// release returns a slot. It is safe to call for a slot that was already
// cleared by cancelAll.
func (s *slotTable) release(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, id)
}

// count returns the number of currently admitted commands.
func (s *slotTable) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// cancelAll fires every admitted command's cancel function, clears the
// table, and returns how many commands were in flight.
func (s *slotTable) cancelAll() int {
	s.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(s.active))
	for _, cancel := range s.active {
		cancels = append(cancels, cancel)
	}
	n := len(s.active)
	s.active = make(map[int]context.CancelFunc)
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	return n
}
