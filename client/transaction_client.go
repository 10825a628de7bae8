// file: client/transaction_client.go

package client

import (
	"context"
	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ITransactionClient defines the contract for the transactions collaborator.
type ITransactionClient interface {
	SubmitTransfer(ctx context.Context, sourceAccountID int, req model.TransferRequest) error
}

// TransactionClient implements ITransactionClient over HTTP.
type TransactionClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// NewTransactionClient creates a new TransactionClient.
func NewTransactionClient(baseURL string, httpClient *http.Client, tokens TokenProvider) *TransactionClient {
	return &TransactionClient{baseURL: baseURL, httpClient: httpClient, tokens: tokens}
}

// transferPayload is the wire shape expected by the transactions collaborator.
type transferPayload struct {
	SourceAccountID int     `json:"sourceAccountId"`
	TargetAccountID int     `json:"targetAccountId"`
	Amount          float64 `json:"amount"`
}

// SubmitTransfer submits one transfer. Each submission carries a fresh
// client-generated request ID; the collaborator may use it for
// deduplication, the client never resubmits on its own.
func (c *TransactionClient) SubmitTransfer(ctx context.Context, sourceAccountID int, req model.TransferRequest) error {
	requestID := uuid.NewString()
	log := logger.Log.WithFields(logrus.Fields{
		"source_account_id": sourceAccountID,
		"target_account_id": req.TargetAccountID,
		"amount":            req.Amount,
		"request_id":        requestID,
	})
	log.Info("Submitting transfer to transactions collaborator")

	body, err := encodeJSON(transferPayload{
		SourceAccountID: sourceAccountID,
		TargetAccountID: req.TargetAccountID,
		Amount:          req.Amount,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/transactions/transfer", body)
	if err != nil {
		return common.Remotef(err, "Could not build transfer request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-Id", requestID)
	if err := attachCredential(httpReq, c.tokens); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Error("Transfer request failed before reaching the collaborator")
		return common.NewAppError(common.KindRemoteFailure, "Transactions service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyFailure(resp, "Verify the transfer details")
	}

	log.Info("Transfer accepted by transactions collaborator")
	return nil
}
