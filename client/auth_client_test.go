// file: client/auth_client_test.go

package client

import (
	"context"
	"encoding/json"
	"go-bank-client/common"
	"go-bank-client/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthClient_Login(t *testing.T) {
	ctx := context.Background()
	req := model.LoginRequest{Email: "a@x.com", Password: "pw"}

	// --- Test Case 1: Successful exchange returns the token body ---
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)

			var payload map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "a@x.com", payload["email"])
			assert.Equal(t, "pw", payload["password"])

			w.Write([]byte("T1"))
		}))
		defer server.Close()

		token, err := NewAuthClient(server.URL, server.Client()).Login(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "T1", token)
	})

	// --- Test Case 2: Rejected exchange is InvalidCredentials ---
	t.Run("rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
		}))
		defer server.Close()

		token, err := NewAuthClient(server.URL, server.Client()).Login(ctx, req)
		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Equal(t, common.KindInvalidCredentials, common.KindOf(err))
	})

	// --- Test Case 3: Unreachable collaborator stays distinguishable ---
	t.Run("server down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := NewAuthClient(server.URL, &http.Client{}).Login(ctx, req)
		assert.Error(t, err)
		assert.Equal(t, common.KindRemoteFailure, common.KindOf(err))
	})

	// --- Test Case 4: An empty token body is a remote failure ---
	t.Run("empty token body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		_, err := NewAuthClient(server.URL, server.Client()).Login(ctx, req)
		assert.Error(t, err)
		assert.Equal(t, common.KindRemoteFailure, common.KindOf(err))
	})
}
