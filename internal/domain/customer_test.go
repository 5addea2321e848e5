package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) *Customer {
	t.Helper()

	c := &Customer{
		ID:        7,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+905551112233",
		CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Password.Set("correct horse battery"))

	return c
}

func TestCustomerRoundTrip(t *testing.T) {
	original := testCustomer(t)

	data, err := EncodeCustomer(original)
	require.NoError(t, err)

	decoded, err := DecodeCustomer(data)
	require.NoError(t, err)

	if diff := cmp.Diff(original, decoded, cmpopts.IgnoreUnexported(password{}), cmp.AllowUnexported(Customer{})); diff != "" {
		t.Errorf("decoded customer mismatch (-want +got):\n%s", diff)
	}

	ok, err := decoded.Password.Matches("correct horse battery")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = decoded.Password.Matches("wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEncodeCustomerRejectsInvalidRecord(t *testing.T) {
	c := testCustomer(t)
	c.Email = "not-an-email"

	_, err := EncodeCustomer(c)

	assert.Error(t, err)
}

func TestDecodeCustomer(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErrIs error
	}{
		{
			name:      "newer schema version",
			input:     `{"version":2,"customer":{"id":1,"firstName":"A","lastName":"B","email":"a@b.co","passwordHash":"aGFzaA=="}}`,
			wantErrIs: ErrUnsupportedVersion,
		},
		{
			name:  "unknown field",
			input: `{"version":1,"customer":{"id":1,"firstName":"A","lastName":"B","email":"a@b.co","passwordHash":"aGFzaA==","isAdmin":true}}`,
		},
		{
			name:  "missing customer",
			input: `{"version":1}`,
		},
		{
			name:  "missing email",
			input: `{"version":1,"customer":{"id":1,"firstName":"A","lastName":"B","passwordHash":"aGFzaA=="}}`,
		},
		{
			name:  "not json",
			input: `customer`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := DecodeCustomer([]byte(tt.input))

			require.Error(t, err)
			assert.Nil(t, c)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
		})
	}
}
