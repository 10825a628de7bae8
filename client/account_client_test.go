// file: client/account_client_test.go

package client

import (
	"context"
	"go-bank-client/common"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountClient_FetchAccounts(t *testing.T) {
	ctx := context.Background()

	// --- Test Case 1: Success decodes the collection, bearer attached ---
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/accounts/me", r.URL.Path)
			assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":1,"balance":100,"accountNumber":"1234567890"}]`))
		}))
		defer server.Close()

		accounts, err := NewAccountClient(server.URL, server.Client(), staticTokenProvider{token: "T1"}).FetchAccounts(ctx)
		assert.NoError(t, err)
		assert.Len(t, accounts, 1)
		assert.Equal(t, 1, accounts[0].ID)
		assert.Equal(t, 100.0, accounts[0].Balance)
		assert.Equal(t, "1234567890", accounts[0].AccountNumber)
	})

	// --- Test Case 2: Both rejection status classes map to AuthExpired ---
	t.Run("auth rejection", func(t *testing.T) {
		for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			_, err := NewAccountClient(server.URL, server.Client(), staticTokenProvider{token: "T1"}).FetchAccounts(ctx)
			assert.Error(t, err)
			assert.Equal(t, common.KindAuthExpired, common.KindOf(err))
			server.Close()
		}
	})

	// --- Test Case 3: No credential fails fast, nothing is sent ---
	t.Run("unauthenticated", func(t *testing.T) {
		var requests int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)
		}))
		defer server.Close()

		_, err := NewAccountClient(server.URL, server.Client(), staticTokenProvider{}).FetchAccounts(ctx)
		assert.Error(t, err)
		assert.Equal(t, common.KindUnauthenticated, common.KindOf(err))
		assert.Zero(t, atomic.LoadInt32(&requests))
	})

	// --- Test Case 4: Malformed payload is a remote failure ---
	t.Run("malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"`))
		}))
		defer server.Close()

		_, err := NewAccountClient(server.URL, server.Client(), staticTokenProvider{token: "T1"}).FetchAccounts(ctx)
		assert.Error(t, err)
		assert.Equal(t, common.KindRemoteFailure, common.KindOf(err))
	})

	// --- Test Case 5: Server error is a remote failure, not expiry ---
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewAccountClient(server.URL, server.Client(), staticTokenProvider{token: "T1"}).FetchAccounts(ctx)
		assert.Error(t, err)
		assert.Equal(t, common.KindRemoteFailure, common.KindOf(err))
	})
}
