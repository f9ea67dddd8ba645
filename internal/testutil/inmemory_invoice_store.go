package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/runforua/donorboard/internal/domain/invoice"
)

// InMemoryInvoiceStore implements invoice.Repository over a fixed fixture
// set, keyed by uppercased invoice number.
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices []invoice.Invoice

	// ListCalls counts fetches so tests can assert cache behavior
	ListCalls int

	// Err, when set, is returned by every call
	Err error
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{}
}

// Add seeds the store with invoices.
func (s *InMemoryInvoiceStore) Add(invoices ...invoice.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, invoices...)
}

// Clear removes all seeded invoices and resets the call counter.
func (s *InMemoryInvoiceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = nil
	s.ListCalls = 0
	s.Err = nil
}

func (s *InMemoryInvoiceStore) ListBySlug(_ context.Context, slug string) ([]invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ListCalls++
	if s.Err != nil {
		return nil, s.Err
	}

	var matched []invoice.Invoice
	for _, inv := range s.invoices {
		if strings.EqualFold(inv.InvoiceNumber, slug) {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}
