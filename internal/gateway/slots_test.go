package gateway

import (
	"context"
	"testing"
)

func TestSlotTableAcquireRelease(t *testing.T) {
	s := newSlotTable(2)
	noop := func() {}

	a, ok := s.tryAcquire(noop)
	if !ok {
		t.Fatal("first acquire should succeed")
	}
	b, ok := s.tryAcquire(noop)
	if !ok {
		t.Fatal("second acquire should succeed")
	}
	if _, ok := s.tryAcquire(noop); ok {
		t.Fatal("third acquire should fail at capacity 2")
	}
	if got := s.count(); got != 2 {
		t.Errorf("count() = %d, want 2", got)
	}

	s.release(a)
	if got := s.count(); got != 1 {
		t.Errorf("count() after release = %d, want 1", got)
	}
	if _, ok := s.tryAcquire(noop); !ok {
		t.Error("acquire after release should succeed")
	}

	s.release(b)
}

func TestSlotTableReleaseIsIdempotent(t *testing.T) {
	s := newSlotTable(1)
	id, _ := s.tryAcquire(func() {})

	s.release(id)
	s.release(id)
	if got := s.count(); got != 0 {
		t.Errorf("count() = %d, want 0 after double release", got)
	}
}

func TestSlotTableCancelAll(t *testing.T) {
	s := newSlotTable(3)

	canceled := 0
	ctxs := make([]context.Context, 3)
	for i := range ctxs {
		ctx, cancel := context.WithCancel(context.Background())
		ctxs[i] = ctx
		wrapped := cancel
		if _, ok := s.tryAcquire(func() { canceled++; wrapped() }); !ok {
			t.Fatal("acquire failed")
		}
	}

	if n := s.cancelAll(); n != 3 {
		t.Errorf("cancelAll() = %d, want 3", n)
	}
	if canceled != 3 {
		t.Errorf("canceled %d contexts, want 3", canceled)
	}
	for i, ctx := range ctxs {
		if ctx.Err() == nil {
			t.Errorf("context %d not canceled", i)
		}
	}
	if got := s.count(); got != 0 {
		t.Errorf("count() = %d, want 0 after cancelAll", got)
	}
}

func TestSlotTableLateReleaseAfterCancelAll(t *testing.T) {
	s := newSlotTable(1)
	id, _ := s.tryAcquire(func() {})
	s.cancelAll()

	// The command's deferred release still fires after the bulk cancel.
	s.release(id)
	if got := s.count(); got != 0 {
		t.Errorf("count() = %d, want 0", got)
	}
	if _, ok := s.tryAcquire(func() {}); !ok {
		t.Error("table should be usable after cancelAll and late release")
	}
}
