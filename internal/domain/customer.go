package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// CustomerSchemaVersion is the version written by EncodeCustomer. Decoding
// rejects any other version.
const CustomerSchemaVersion = 1

const passwordCost = 12

var recordValidator = validator.New(validator.WithRequiredStructEnabled())

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  password
	CreatedAt time.Time
}

// CustomerRepository assigns customer ids and enforces unique emails.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetById(ctx context.Context, id int) (*Customer, error)
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type customerRecord struct {
	ID           int       `json:"id" validate:"gte=1"`
	FirstName    string    `json:"firstName" validate:"required,max=100"`
	LastName     string    `json:"lastName" validate:"required,max=100"`
	Email        string    `json:"email" validate:"required,email"`
	Phone        string    `json:"phone,omitempty" validate:"omitempty,e164"`
	PasswordHash []byte    `json:"passwordHash" validate:"required"`
	CreatedAt    time.Time `json:"createdAt"`
}

type customerEnvelope struct {
	Version  int             `json:"version"`
	Customer *customerRecord `json:"customer"`
}

// EncodeCustomer writes the customer as a versioned JSON document. Only the
// password hash is stored.
func EncodeCustomer(c *Customer) ([]byte, error) {
	rec := customerRecord{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		PasswordHash: c.Password.Hash,
		CreatedAt:    c.CreatedAt,
	}

	if err := recordValidator.Struct(rec); err != nil {
		return nil, fmt.Errorf("invalid customer record: %w", err)
	}

	return json.Marshal(customerEnvelope{Version: CustomerSchemaVersion, Customer: &rec})
}

func DecodeCustomer(data []byte) (*Customer, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var env customerEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("malformed customer document: %w", err)
	}

	if env.Version != CustomerSchemaVersion {
		return nil, fmt.Errorf("%w: customer document version %d", ErrUnsupportedVersion, env.Version)
	}

	if env.Customer == nil {
		return nil, errors.New("customer document has no customer")
	}

	rec := env.Customer
	if err := recordValidator.Struct(rec); err != nil {
		return nil, fmt.Errorf("invalid customer record: %w", err)
	}

	return &Customer{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Password:  password{Hash: rec.PasswordHash},
		CreatedAt: rec.CreatedAt,
	}, nil
}
