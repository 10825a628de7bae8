// file: client/auth_client.go

package client

import (
	"context"
	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
	"net/http"
)

// IAuthClient defines the contract for the auth collaborator.
type IAuthClient interface {
	Login(ctx context.Context, req model.LoginRequest) (string, error)
}

// AuthClient implements IAuthClient over HTTP.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthClient creates a new AuthClient.
func NewAuthClient(baseURL string, httpClient *http.Client) *AuthClient {
	return &AuthClient{baseURL: baseURL, httpClient: httpClient}
}

// Login exchanges identity/secret for a credential token. The collaborator
// returns the opaque token string as the response body. A rejected exchange
// is reported as InvalidCredentials; a transport fault as RemoteFailure so
// the two stay distinguishable internally.
func (c *AuthClient) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	log := logger.Log.WithField("email", req.Email)
	log.Info("Sending login request to auth collaborator")

	body, err := encodeJSON(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", body)
	if err != nil {
		return "", common.Remotef(err, "Could not build login request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Error("Login request failed before reaching the auth collaborator")
		return "", common.NewAppError(common.KindRemoteFailure, "Auth service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status_code", resp.StatusCode).Warn("Login rejected by auth collaborator")
		return "", common.NewAppError(common.KindInvalidCredentials, "Invalid credentials", nil)
	}

	token := readBody(resp)
	if token == "" {
		return "", common.NewAppError(common.KindRemoteFailure, "Auth service returned an empty token", nil)
	}
	return token, nil
}
