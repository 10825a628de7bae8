// file: service/credential_service.go

package service

import (
	"context"
	"go-bank-client/client"
	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
	"go-bank-client/repository"
	"sync"
)

// CredentialService owns the session credential: acquisition, durable
// persistence, restoration and invalidation. It is the only writer of the
// credential. Every mutation bumps a generation counter and notifies
// subscribers, so dependents can react to the change and discard results
// that belong to an older credential.
type CredentialService struct {
	authClient client.IAuthClient
	repo       repository.ICredentialRepository

	mu         sync.Mutex
	token      string
	generation uint64
	listeners  []func(token string, generation uint64)
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(authClient client.IAuthClient, repo repository.ICredentialRepository) *CredentialService {
	return &CredentialService{
		authClient: authClient,
		repo:       repo,
	}
}

// Subscribe registers a listener invoked after every credential change,
// including invalidation (empty token). Listeners are called outside the
// service's lock, on the mutating goroutine.
func (s *CredentialService) Subscribe(fn func(token string, generation uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Token implements client.TokenProvider.
func (s *CredentialService) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Generation returns the marker of the current credential state. Results
// fetched under an older generation must be discarded, not applied.
func (s *CredentialService) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Current returns the credential and its generation as one consistent pair.
func (s *CredentialService) Current() (string, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.generation
}

// Login validates the payload, exchanges it for a credential via the auth
// collaborator, persists the credential durably and adopts it. On any
// failure the existing credential is left untouched. A rejected exchange
// comes back as InvalidCredentials, an unreachable collaborator as
// RemoteFailure; the presentation layer renders both the same way.
func (s *CredentialService) Login(ctx context.Context, req model.LoginRequest) error {
	if err := common.ValidateStruct(req); err != nil {
		return err
	}

	token, err := s.authClient.Login(ctx, req)
	if err != nil {
		return err
	}

	// The durable copy is best effort: a failed write costs reload
	// survival, not the session itself.
	if err := s.repo.Save(token); err != nil {
		logger.Log.WithError(err).Warn("Credential adopted in memory only; it will not survive a reload")
	}

	s.setCredential(token)
	logger.Log.WithField("email", req.Email).Info("Login succeeded, credential adopted")
	return nil
}

// Restore adopts the credential from the durable slot at process start,
// without contacting any collaborator. Validity is confirmed lazily by the
// next authenticated request. Returns whether a session was restored.
func (s *CredentialService) Restore() bool {
	token, err := s.repo.Load()
	if err != nil {
		logger.Log.WithError(err).Warn("Could not read durable credential slot")
		return false
	}
	if token == "" {
		return false
	}

	s.setCredential(token)
	logger.Log.Info("Session restored from durable slot")
	return true
}

// Logout clears the durable slot and the in-memory credential and signals
// dependents to discard credential-scoped state. Calling it when already
// logged out is a no-op.
func (s *CredentialService) Logout() {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.generation++
	generation := s.generation
	listeners := append([]func(string, uint64){}, s.listeners...)
	s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		logger.Log.WithError(err).Warn("Could not clear durable credential slot")
	}
	logger.Log.Info("Logged out, credential destroyed")

	for _, fn := range listeners {
		fn("", generation)
	}
}

func (s *CredentialService) setCredential(token string) {
	s.mu.Lock()
	s.token = token
	s.generation++
	generation := s.generation
	listeners := append([]func(string, uint64){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(token, generation)
	}
}
