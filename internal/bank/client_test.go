package bank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		CardNumber: "4111111111111234",
		ExpiryDate: "7/2030",
		Currency:   "USD",
		Amount:     1599,
		CVV:        "123",
	}
}

func TestProcessPayment_Authorized(t *testing.T) {
	var received Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(Response{
			Authorized:        true,
			AuthorizationCode: "0bb07405-6d44-4b50-a14f-7ae0beff13ad",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.ProcessPayment(context.Background(), testRequest())

	require.NoError(t, err)
	assert.True(t, resp.Authorized)
	assert.Equal(t, "0bb07405-6d44-4b50-a14f-7ae0beff13ad", resp.AuthorizationCode)

	assert.Equal(t, testRequest(), received)
}

func TestProcessPayment_DeclinedIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Authorized: false, AuthorizationCode: ""})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.ProcessPayment(context.Background(), testRequest())

	require.NoError(t, err)
	assert.False(t, resp.Authorized)
}

func TestProcessPayment_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"bad request", http.StatusBadRequest},
		{"server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)
			resp, err := client.ProcessPayment(context.Background(), testRequest())

			assert.Nil(t, resp)
			var upstreamErr *UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, tt.status, upstreamErr.StatusCode)
		})
	}
}

func TestProcessPayment_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL, nil)
	resp, err := client.ProcessPayment(context.Background(), testRequest())

	assert.Nil(t, resp)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Zero(t, upstreamErr.StatusCode)
	assert.Error(t, upstreamErr.Unwrap())
}

func TestProcessPayment_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.ProcessPayment(context.Background(), testRequest())

	assert.Nil(t, resp)
	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}
