package memory

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestNotebook(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Notes(t *testing.T) {
	s := newTestNotebook(t)
	ctx := context.Background()

	if err := s.Remember(ctx, "capital", "Paris"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remember(ctx, "capital", "Lyon"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remember(ctx, "  ", "ignored"); err != nil {
		t.Fatal(err)
	}

	notes, err := s.Recall(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes["capital"] != "Lyon" {
		t.Errorf("last write should win, got %q", notes["capital"])
	}
}

func TestStore_Facts(t *testing.T) {
	s := newTestNotebook(t)
	ctx := context.Background()

	for _, f := range []string{"water boils at 100C", "water boils at 100C", ""} {
		if err := s.AddFact(ctx, f); err != nil {
			t.Fatal(err)
		}
	}
	n, err := s.CountFacts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("facts should dedupe and skip blanks, got %d", n)
	}
}

func TestStore_History(t *testing.T) {
	s := newTestNotebook(t)
	ctx := context.Background()

	pairs := [][2]string{{"q1", "a1"}, {"q2", "a2"}, {"q3", "a3"}}
	for _, p := range pairs {
		if err := s.LogInteraction(ctx, p[0], p[1]); err != nil {
			t.Fatal(err)
		}
	}

	history, err := s.RecentHistory(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 interactions, got %d", len(history))
	}
	if history[0].Question != "q2" || history[1].Question != "q3" {
		t.Errorf("expected the two most recent oldest-first, got %s then %s",
			history[0].Question, history[1].Question)
	}
	for _, it := range history {
		if it.ID == "" {
			t.Error("interaction id missing")
		}
	}
}
