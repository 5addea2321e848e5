package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

// JSONCustomerStore keeps every customer as a versioned JSON document. With a
// directory each document is also written to <dir>/<id>.json and read back by
// NewJSONCustomerStore.
type JSONCustomerStore struct {
	mu      sync.RWMutex
	dir     string
	docs    map[int][]byte
	byEmail map[string]int
	ids     *domain.Sequence
}

func NewJSONCustomerStore(dir string) (*JSONCustomerStore, error) {
	s := &JSONCustomerStore{
		dir:     dir,
		docs:    make(map[int][]byte),
		byEmail: make(map[string]int),
	}

	if dir == "" {
		s.ids = domain.NewSequence(0)
		return s, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating customer directory: %w", err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var last int
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading customer document: %w", err)
		}

		customer, err := domain.DecodeCustomer(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		email := normalizeEmail(customer.Email)
		if _, taken := s.byEmail[email]; taken {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), domain.ErrCustomerExists)
		}

		s.docs[customer.ID] = data
		s.byEmail[email] = customer.ID
		last = max(last, customer.ID)
	}

	s.ids = domain.NewSequence(int64(last))
	return s, nil
}

// Create assigns the next id to customer and stores it. The id is only
// consumed once the email is known to be free.
func (s *JSONCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(customer.Email)
	if _, taken := s.byEmail[email]; taken {
		return domain.ErrCustomerExists
	}

	record := *customer
	record.ID = int(s.ids.Current()) + 1

	data, err := domain.EncodeCustomer(&record)
	if err != nil {
		return err
	}

	if s.dir != "" {
		if err := writeFileAtomic(filepath.Join(s.dir, fmt.Sprintf("%d.json", record.ID)), data); err != nil {
			return err
		}
	}

	s.ids.Next()
	s.docs[record.ID] = data
	s.byEmail[email] = record.ID
	customer.ID = record.ID

	return nil
}

func (s *JSONCustomerStore) GetById(ctx context.Context, id int) (*domain.Customer, error) {
	s.mu.RLock()
	data, ok := s.docs[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return domain.DecodeCustomer(data)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".customer-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
