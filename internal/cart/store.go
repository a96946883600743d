// Package cart holds the in-progress order lines for the storefront.
// Mutations never fail; persistence is handled by a subscriber so the store
// itself stays free of I/O.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

// Line is one cart entry. Display fields and the unit price are copied from
// the book at add time; a later price change on the backend does not reprice
// lines already in the cart.
type Line struct {
	BookID        int             `json:"bookId"`
	Title         string          `json:"title"`
	CoverImageURL string          `json:"coverImageUrl,omitempty"`
	UnitPrice     decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Quantity      int             `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Store maintains the ordered cart lines. At most one line exists per book;
// insertion order is preserved. Constructed once at startup and injected into
// the handlers that need it.
type Store struct {
	mu    sync.Mutex
	lines []Line
	subs  []func([]Line)
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a change listener invoked with a snapshot after every
// mutation. The persistence adapter is the expected subscriber.
func (s *Store) Subscribe(fn func([]Line)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddLine merges the book into the cart: an existing line gains one unit,
// otherwise a new line with quantity 1 is appended.
func (s *Store) AddLine(book models.Book) {
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].BookID == book.BookID {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{
			BookID:        book.BookID,
			Title:         book.Title,
			CoverImageURL: book.CoverImageURL,
			UnitPrice:     book.Price,
			StockQuantity: book.StockQuantity,
			Quantity:      1,
		})
	}
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// RemoveLine deletes the line for the book; absent lines are a no-op.
func (s *Store) RemoveLine(bookID int) {
	s.mu.Lock()
	changed := s.removeLocked(bookID)
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	if changed {
		notify(subs, snapshot)
	}
}

// SetQuantity replaces the line's quantity. Any quantity at or below zero
// removes the line instead; there is no upper bound here, stock sufficiency
// is the calling view's concern.
func (s *Store) SetQuantity(bookID, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(bookID)
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].BookID == bookID {
			changed = s.lines[i].Quantity != quantity
			s.lines[i].Quantity = quantity
			break
		}
	}
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	if changed {
		notify(subs, snapshot)
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalItemCount is the sum of all line quantities.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity across lines, using the
// denormalized add-time prices.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// replace swaps the whole cart content without notifying subscribers. The
// persistence adapter uses it during rehydration.
func (s *Store) replace(lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		s.lines = append(s.lines, line)
	}
}

func (s *Store) removeLocked(bookID int) bool {
	for i := range s.lines {
		if s.lines[i].BookID == bookID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) snapshotLocked() []Line {
	snapshot := make([]Line, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

func notify(subs []func([]Line), snapshot []Line) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
