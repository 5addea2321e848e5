package jsonutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type input struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid body", body: `{"name":"cola","count":2}`},
		{name: "empty body", body: ``, wantErr: "body must not be empty"},
		{name: "bad syntax", body: `{"name":}`, wantErr: "badly-formed JSON"},
		{name: "truncated", body: `{"name":"cola"`, wantErr: "badly-formed JSON"},
		{name: "wrong type", body: `{"count":"two"}`, wantErr: `incorrect JSON type for field "count"`},
		{name: "unknown key", body: `{"size":"L"}`, wantErr: `unknown key "size"`},
		{name: "two values", body: `{"name":"a"}{"name":"b"}`, wantErr: "single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst input
			err := ReadJSON(w, r, &dst)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, input{Name: "cola", Count: 2}, dst)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteJSON(w, http.StatusCreated, map[string]int{"id": 1}, http.Header{"Location": []string{"/bookings/1"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "/bookings/1", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}
