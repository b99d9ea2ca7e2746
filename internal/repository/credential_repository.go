package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
)

// CredentialRepository stores the user-supplied market-data API token,
// sealed with a fernet key so the token never sits in the database in
// plaintext. A single token row exists at most.
type CredentialRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewCredentialRepository creates a CredentialRepository sealing tokens with
// the given base64 fernet key. An empty key generates an ephemeral one, which
// keeps the repository usable but forgets stored tokens across restarts.
func NewCredentialRepository(db *sql.DB, encodedKey string) (*CredentialRepository, error) {
	if encodedKey == "" {
		key := &fernet.Key{}
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate credential key: %w", err)
		}
		return &CredentialRepository{db: db, key: key}, nil
	}

	keys, err := fernet.DecodeKeys(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode credential key: %w", err)
	}
	return &CredentialRepository{db: db, key: keys[0]}, nil
}

// SaveToken seals and stores the API token, replacing any previous one.
func (s *CredentialRepository) SaveToken(token string) error {
	sealed, err := fernet.EncryptAndSign([]byte(token), s.key)
	if err != nil {
		return fmt.Errorf("failed to seal credential: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO credential (id, token, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`, sealed, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// GetToken unseals and returns the stored API token.
func (s *CredentialRepository) GetToken() (string, error) {
	var sealed []byte
	err := s.db.QueryRow(`SELECT token FROM credential WHERE id = 1`).Scan(&sealed)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query credential: %w", err)
	}

	token := fernet.VerifyAndDecrypt(sealed, 0, []*fernet.Key{s.key})
	if token == nil {
		// Sealed with a different key; treat as absent.
		return "", apperrors.ErrCredentialNotFound
	}
	return string(token), nil
}

// HasToken reports whether a usable token is stored.
func (s *CredentialRepository) HasToken() bool {
	_, err := s.GetToken()
	return err == nil
}

// DeleteToken removes the stored API token if present.
func (s *CredentialRepository) DeleteToken() error {
	if _, err := s.db.Exec(`DELETE FROM credential WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
