package repository

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[int64]domain.Ticket
	paidBy  map[int64]int64
}

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{
		tickets: make(map[int64]domain.Ticket),
		paidBy:  make(map[int64]int64),
	}
}

func (m *MemoryTicketRepository) Save(ctx context.Context, ticket domain.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *MemoryTicketRepository) GetById(ctx context.Context, id int64) (*domain.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ticket, ok := m.tickets[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &ticket, nil
}

func (m *MemoryTicketRepository) IsPaid(ctx context.Context, id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.tickets[id]; !ok {
		return false, domain.ErrRecordNotFound
	}

	_, paid := m.paidBy[id]
	return paid, nil
}

func (m *MemoryTicketRepository) MarkPaid(ctx context.Context, id int64, paymentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tickets[id]; !ok {
		return domain.ErrRecordNotFound
	}

	if _, paid := m.paidBy[id]; paid {
		return domain.ErrTicketAlreadyPaid
	}

	m.paidBy[id] = paymentID
	return nil
}
