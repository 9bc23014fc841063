package credential

import (
	"encoding/json"
	"fmt"

	"github.com/99designs/keyring"

	"github.com/nhle/demodash/internal/model"
)

const serviceName = "demodash"

// sessionKey is the single keyring item holding the current session.
const sessionKey = "session"

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/demodash/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("demodash-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Store persists the session credential in the system keyring.
// Set and Clear write through immediately; there is no in-memory copy
// with an independent lifetime. An absent credential is a valid state
// (anonymous) and is what every fresh install starts with.
type Store struct {
	ring keyring.Keyring
}

// Open creates a Store backed by the default system keyring.
func Open() (*Store, error) {
	ring, err := openKeyring()
	if err != nil {
		return nil, err
	}
	return &Store{ring: ring}, nil
}

// NewStore creates a Store backed by the given keyring. Tests pass an
// ArrayKeyring here.
func NewStore(ring keyring.Keyring) *Store {
	return &Store{ring: ring}
}

// Get returns the stored credential. ok is false when no session is
// stored or the stored item cannot be read; both mean anonymous.
func (s *Store) Get() (cred model.Credential, ok bool) {
	item, err := s.ring.Get(sessionKey)
	if err != nil {
		return model.Credential{}, false
	}
	if err := json.Unmarshal(item.Data, &cred); err != nil {
		return model.Credential{}, false
	}
	if cred.Token == "" {
		return model.Credential{}, false
	}
	return cred, true
}

// Set stores the credential, replacing any previous session.
func (s *Store) Set(cred model.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}

	err = s.ring.Set(keyring.Item{
		Key:  sessionKey,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}

	return nil
}

// Clear removes the stored credential. Clearing an absent credential
// is not an error; logout is idempotent.
func (s *Store) Clear() error {
	err := s.ring.Remove(sessionKey)
	if err != nil && err != keyring.ErrKeyNotFound {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}
