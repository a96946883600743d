package notify

import "testing"

func TestPushAndDrain(t *testing.T) {
	n := NewNotifier(8)

	n.Success("added to cart")
	n.Error("out of stock")

	msgs := n.Drain()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Severity != SeveritySuccess || msgs[0].Text != "added to cart" {
		t.Fatalf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Severity != SeverityError {
		t.Fatalf("unexpected second message: %+v", msgs[1])
	}
	if msgs[0].ID == "" || msgs[0].At.IsZero() {
		t.Fatalf("message missing id or timestamp: %+v", msgs[0])
	}

	if got := n.Drain(); len(got) != 0 {
		t.Fatalf("expected drained notifier to be empty, got %d", len(got))
	}
}

func TestEvictsOldestWhenFull(t *testing.T) {
	n := NewNotifier(3)

	n.Info("one")
	n.Info("two")
	n.Info("three")
	n.Info("four")

	msgs := n.Drain()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "two" || msgs[2].Text != "four" {
		t.Fatalf("expected oldest message evicted, got %+v", msgs)
	}
}

func TestPeekDoesNotClear(t *testing.T) {
	n := NewNotifier(0)

	n.Warning("low stock")

	if got := n.Peek(); len(got) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got))
	}
	if n.Len() != 1 {
		t.Fatalf("peek should not clear, len = %d", n.Len())
	}
}

func TestDefaultCapacity(t *testing.T) {
	n := NewNotifier(-1)
	for i := 0; i < DefaultCapacity+5; i++ {
		n.Info("x")
	}
	if n.Len() != DefaultCapacity {
		t.Fatalf("expected capacity %d, got %d", DefaultCapacity, n.Len())
	}
}
