// file: service/transaction_service.go

package service

import (
	"context"
	"go-bank-client/client"
	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"

	"github.com/sirupsen/logrus"
)

// TransactionService validates and submits funds transfers. It owns no
// persistent state: the source account is always resolved from the current
// account collection, and the post-transfer balance is always re-fetched,
// never computed locally, so the view cannot drift from server-side rules
// (fees, rounding, concurrent transfers from other clients).
type TransactionService struct {
	transactionClient client.ITransactionClient
	accounts          *AccountService
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionClient client.ITransactionClient, accounts *AccountService) *TransactionService {
	return &TransactionService{
		transactionClient: transactionClient,
		accounts:          accounts,
	}
}

// Submit performs one transfer of req.Amount to req.TargetAccountID from
// the user's first account. Preconditions are checked before any network
// call: a non-empty account collection and a valid payload. On success a
// resynchronization is spawned and never awaited; on failure the account
// collection is presumed unchanged and no refresh happens. A failed
// submission is never resubmitted.
func (s *TransactionService) Submit(ctx context.Context, req model.TransferRequest) error {
	accounts := s.accounts.Accounts()
	if len(accounts) == 0 {
		return common.NewAppError(common.KindValidationFailure,
			"You have no source account", common.ErrNoSourceAccount)
	}

	if err := common.ValidateStruct(req); err != nil {
		return err
	}

	source := accounts[0]
	log := logger.Log.WithFields(logrus.Fields{
		"source_account_id": source.ID,
		"target_account_id": req.TargetAccountID,
		"amount":            req.Amount,
	})
	log.Info("Starting money transfer process")

	if err := s.transactionClient.SubmitTransfer(ctx, source.ID, req); err != nil {
		log.WithError(err).Warn("Transfer rejected")
		return err
	}

	log.Info("Transfer completed successfully")

	// Fire-and-forget resynchronization: the caller's result does not
	// depend on it, and a logout or newer credential in the meantime
	// discards its outcome.
	go func() {
		if err := s.accounts.Refresh(context.Background()); err != nil {
			logger.Log.WithError(err).Warn("Post-transfer account refresh failed")
		}
	}()

	return nil
}
