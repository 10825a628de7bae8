// file: repository/credential_repository.go

package repository

import (
	"go-bank-client/logger"
	"os"
	"strings"
)

// ICredentialRepository defines the contract for the durable credential slot.
// It holds at most one credential string under a fixed, process-wide name;
// an empty load means "unauthenticated".
type ICredentialRepository interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// FileCredentialRepository implements ICredentialRepository on a single
// file, so the credential survives process reloads.
type FileCredentialRepository struct {
	Path string
}

// NewFileCredentialRepository creates a new FileCredentialRepository.
func NewFileCredentialRepository(path string) *FileCredentialRepository {
	return &FileCredentialRepository{Path: path}
}

// Save writes the credential to the durable slot, replacing any prior value.
func (r *FileCredentialRepository) Save(token string) error {
	log := logger.Log.WithField("path", r.Path)
	log.Info("Persisting credential to durable slot")

	if err := os.WriteFile(r.Path, []byte(token), 0o600); err != nil {
		log.WithError(err).Error("Failed to persist credential")
		return err
	}
	return nil
}

// Load reads the durable slot. A missing slot is not an error: it returns
// an empty string, meaning no session to restore.
func (r *FileCredentialRepository) Load() (string, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		logger.Log.WithField("path", r.Path).WithError(err).Error("Failed to read credential slot")
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the durable slot. Clearing an already-empty slot is a no-op.
func (r *FileCredentialRepository) Clear() error {
	log := logger.Log.WithField("path", r.Path)
	log.Info("Clearing durable credential slot")

	if err := os.Remove(r.Path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Error("Failed to clear credential slot")
		return err
	}
	return nil
}
