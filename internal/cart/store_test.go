package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/pkg/kvstore"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

func bookA() models.Book {
	return models.Book{BookID: 1, Title: "Dế Mèn Phiêu Lưu Ký", Price: decimal.NewFromInt(100000), StockQuantity: 12}
}

func bookB() models.Book {
	return models.Book{BookID: 2, Title: "Số Đỏ", Price: decimal.NewFromInt(50000), StockQuantity: 4}
}

func TestAddLineMergesByBookID(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine(bookA())
	store.AddLine(bookA())
	store.AddLine(bookA())

	lines := store.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
	if store.TotalItemCount() != 3 {
		t.Fatalf("expected item count 3, got %d", store.TotalItemCount())
	}
}

func TestTotalsDeriveFromLines(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine(bookA())
	store.AddLine(bookA())
	store.AddLine(bookB())

	if got := store.TotalItemCount(); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	want := decimal.NewFromInt(250000)
	if got := store.TotalPrice(); !got.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got)
	}
}

func TestAddTwiceScenario(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine(bookA())
	store.AddLine(bookA())

	lines := store.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected single line with quantity 2, got %+v", lines)
	}
	if got := store.TotalPrice(); !got.Equal(decimal.NewFromInt(200000)) {
		t.Fatalf("expected total 200000, got %s", got)
	}
}

func TestRemoveLeavesOtherLines(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine(bookA())
	store.AddLine(bookB())
	store.RemoveLine(bookA().BookID)

	lines := store.Lines()
	if len(lines) != 1 || lines[0].BookID != 2 {
		t.Fatalf("expected only book B to remain, got %+v", lines)
	}
	if got := store.TotalPrice(); !got.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("expected total 50000, got %s", got)
	}

	// removing a missing line is a no-op, not an error
	store.RemoveLine(999)
	if len(store.Lines()) != 1 {
		t.Fatalf("remove of absent line must not change the cart")
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	t.Parallel()

	viaRemove := NewStore()
	viaRemove.AddLine(bookA())
	viaRemove.AddLine(bookB())
	viaRemove.RemoveLine(1)

	viaZero := NewStore()
	viaZero.AddLine(bookA())
	viaZero.AddLine(bookB())
	viaZero.SetQuantity(1, 0)

	a, b := viaRemove.Lines(), viaZero.Lines()
	if len(a) != len(b) {
		t.Fatalf("cart states diverged: %+v vs %+v", a, b)
	}
	for i := range a {
		if a[i].BookID != b[i].BookID || a[i].Quantity != b[i].Quantity {
			t.Fatalf("cart states diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}

	// negative quantities behave exactly like zero
	viaZero.SetQuantity(2, -3)
	if len(viaZero.Lines()) != 0 {
		t.Fatalf("negative quantity should remove the line")
	}
}

func TestSetQuantityHasNoUpperBound(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine(bookB())
	store.SetQuantity(2, 100)

	lines := store.Lines()
	if lines[0].Quantity != 100 {
		t.Fatalf("expected quantity 100, got %d", lines[0].Quantity)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine(bookA())
	store.AddLine(bookB())
	store.Clear()

	if len(store.Lines()) != 0 {
		t.Fatalf("expected empty cart after clear")
	}
	if !store.TotalPrice().IsZero() {
		t.Fatalf("expected zero total after clear")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	t.Parallel()

	kv := kvstore.NewMemoryStore()

	original := NewStore()
	NewPersistence(kv, nil).Bind(original)
	original.AddLine(bookA())
	original.AddLine(bookB())
	original.AddLine(bookA())

	rehydrated := NewStore()
	NewPersistence(kv, nil).Bind(rehydrated)

	a, b := original.Lines(), rehydrated.Lines()
	if len(a) != len(b) {
		t.Fatalf("rehydrated cart has %d lines, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i].BookID != b[i].BookID || a[i].Quantity != b[i].Quantity || !a[i].UnitPrice.Equal(b[i].UnitPrice) {
			t.Fatalf("line %d mismatch: %+v vs %+v", i, a[i], b[i])
		}
	}
	if !rehydrated.TotalPrice().Equal(original.TotalPrice()) {
		t.Fatalf("totals diverged after round trip")
	}
}

func TestRehydrateMalformedSnapshotFailsOpen(t *testing.T) {
	t.Parallel()

	kv := kvstore.NewMemoryStore()
	if err := kv.Set(kvstore.KeyCart, "{not json"); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	store := NewStore()
	NewPersistence(kv, nil).Bind(store)

	if len(store.Lines()) != 0 {
		t.Fatalf("malformed snapshot must rehydrate as empty cart")
	}
	if _, ok, _ := kv.Get(kvstore.KeyCart); ok {
		t.Fatalf("malformed snapshot should be dropped from storage")
	}
}

func TestPersistOnEveryMutation(t *testing.T) {
	t.Parallel()

	kv := kvstore.NewMemoryStore()
	store := NewStore()
	NewPersistence(kv, nil).Bind(store)

	store.AddLine(bookA())
	raw, ok, _ := kv.Get(kvstore.KeyCart)
	if !ok || raw == "" {
		t.Fatalf("expected snapshot after add")
	}

	store.Clear()
	raw, ok, _ = kv.Get(kvstore.KeyCart)
	if !ok || raw != "[]" {
		t.Fatalf("expected empty snapshot after clear, got %q", raw)
	}
}
