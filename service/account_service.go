// file: service/account_service.go

package service

import (
	"context"
	"go-bank-client/client"
	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
	"sync"
)

// AccountService keeps the local view of the user's account collection in
// sync with the accounts collaborator. It is the only writer of the
// collection. Every successful fetch replaces the collection wholesale; a
// failed fetch leaves the previous collection untouched.
type AccountService struct {
	accountClient      client.IAccountClient
	creds              *CredentialService
	autoLogoutOnExpiry bool

	mu             sync.Mutex
	accounts       []model.Account
	sessionExpired bool
}

// NewAccountService creates a new AccountService and subscribes it to the
// credential change signal: a new credential triggers an asynchronous
// refresh pinned to that credential's generation, an invalidated one clears
// the collection. autoLogoutOnExpiry controls whether a session-expiry
// response also destroys the credential (policy default: off, report only).
func NewAccountService(accountClient client.IAccountClient, creds *CredentialService, autoLogoutOnExpiry bool) *AccountService {
	s := &AccountService{
		accountClient:      accountClient,
		creds:              creds,
		autoLogoutOnExpiry: autoLogoutOnExpiry,
	}
	creds.Subscribe(s.onCredentialChange)
	return s
}

// Accounts returns a snapshot of the current account collection.
func (s *AccountService) Accounts() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]model.Account, len(s.accounts))
	copy(snapshot, s.accounts)
	return snapshot
}

// SessionExpired reports whether the last synchronization attempt came back
// with an authentication rejection. Cleared by the next successful refresh
// and by any credential change.
func (s *AccountService) SessionExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionExpired
}

// Refresh issues one authenticated fetch and reconciles the local
// collection. With no credential present it is a no-op.
func (s *AccountService) Refresh(ctx context.Context) error {
	token, generation := s.creds.Current()
	if token == "" {
		return nil
	}
	return s.refreshGeneration(ctx, generation)
}

// refreshGeneration performs the fetch for a specific credential
// generation. If the credential moved on while the fetch was in flight, the
// result is discarded rather than applied, so a stale response can never
// overwrite a collection that belongs to a newer credential.
func (s *AccountService) refreshGeneration(ctx context.Context, generation uint64) error {
	accounts, err := s.accountClient.FetchAccounts(ctx)
	if err != nil {
		if common.IsKind(err, common.KindAuthExpired) {
			s.mu.Lock()
			if generation == s.creds.Generation() {
				s.sessionExpired = true
			}
			s.mu.Unlock()
			logger.Log.WithError(err).Warn("Accounts collaborator rejected the session credential")
			if s.autoLogoutOnExpiry {
				s.creds.Logout()
			}
			return err
		}
		// Non-fatal: keep showing the previous collection.
		logger.Log.WithError(err).Warn("Account refresh failed, keeping previous collection")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.creds.Generation() {
		logger.Log.WithField("generation", generation).Info("Discarding account fetch for a superseded credential")
		return nil
	}
	s.accounts = accounts
	s.sessionExpired = false
	return nil
}

func (s *AccountService) onCredentialChange(token string, generation uint64) {
	if token == "" {
		s.mu.Lock()
		s.accounts = nil
		s.sessionExpired = false
		s.mu.Unlock()
		return
	}

	go func() {
		if err := s.refreshGeneration(context.Background(), generation); err != nil {
			logger.Log.WithError(err).Warn("Automatic account refresh failed")
		}
	}()
}
