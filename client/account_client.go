// file: client/account_client.go

package client

import (
	"context"
	"encoding/json"
	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
	"net/http"
)

// IAccountClient defines the contract for the accounts collaborator.
type IAccountClient interface {
	FetchAccounts(ctx context.Context) ([]model.Account, error)
}

// AccountClient implements IAccountClient over HTTP.
type AccountClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// NewAccountClient creates a new AccountClient.
func NewAccountClient(baseURL string, httpClient *http.Client, tokens TokenProvider) *AccountClient {
	return &AccountClient{baseURL: baseURL, httpClient: httpClient, tokens: tokens}
}

// FetchAccounts retrieves the authenticated user's account collection.
// An authentication-rejection status is reported as AuthExpired; any other
// failure, including a malformed payload, as RemoteFailure.
func (c *AccountClient) FetchAccounts(ctx context.Context) ([]model.Account, error) {
	logger.Log.Info("Fetching account collection from accounts collaborator")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/accounts/me", nil)
	if err != nil {
		return nil, common.Remotef(err, "Could not build accounts request")
	}
	if err := attachCredential(httpReq, c.tokens); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Log.WithError(err).Error("Accounts request failed before reaching the collaborator")
		return nil, common.NewAppError(common.KindRemoteFailure, "Accounts service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyFailure(resp, "Could not load accounts")
	}

	var accounts []model.Account
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		logger.Log.WithError(err).Error("Accounts collaborator returned a malformed payload")
		return nil, common.NewAppError(common.KindRemoteFailure, "Malformed accounts response", err)
	}
	return accounts, nil
}
