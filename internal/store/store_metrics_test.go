package store

import (
	"testing"

	"github.com/amakane-hakari/kioku/internal/metrics"
)

func TestStore_MetricsBasic(t *testing.T) {
	simple := metrics.NewSimple()
	s, err := New[string, string](2, WithMetrics(simple))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Set("a", "1")
	s.Set("a", "2")
	s.Set("b", "3")
	_, _ = s.Get("a")
	_, _ = s.Get("missing")
	s.Set("c", "4") // b が victim（a は直前の Get で昇格済み）

	if simple.SetNew.Load() != 3 {
		t.Fatalf("SetNew want 3 got %d", simple.SetNew.Load())
	}
	if simple.SetUpdate.Load() != 1 {
		t.Fatalf("SetUpdate want 1 got %d", simple.SetUpdate.Load())
	}
	if simple.GetHit.Load() != 1 {
		t.Fatalf("GetHit want 1 got %d", simple.GetHit.Load())
	}
	if simple.GetMiss.Load() != 1 {
		t.Fatalf("GetMiss want 1 got %d", simple.GetMiss.Load())
	}
	if simple.Evicted.Load() != 1 {
		t.Fatalf("Evicted want 1 got %d", simple.Evicted.Load())
	}
	if simple.LRUSize.Load() != 2 {
		t.Fatalf("LRUSize want 2 got %d", simple.LRUSize.Load())
	}
}

type logEntry struct {
	msg  string
	args []any
}

type fakeLogger struct {
	entries []logEntry
}

func (f *fakeLogger) Debug(msg string, args ...any) {
	f.entries = append(f.entries, logEntry{msg: msg, args: args})
}
func (f *fakeLogger) Info(msg string, args ...any) {
	f.entries = append(f.entries, logEntry{msg: msg, args: args})
}
func (f *fakeLogger) Error(msg string, args ...any) {
	f.entries = append(f.entries, logEntry{msg: msg, args: args})
}

func TestStore_EvictionLogged(t *testing.T) {
	l := &fakeLogger{}
	s, err := New[string, string](1, WithLogger(l))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Set("a", "1")
	s.Set("b", "2")

	found := false
	for _, e := range l.entries {
		if e.msg == "store.evict" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected store.evict log entry, got %v", l.entries)
	}
}
