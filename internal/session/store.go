package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrPINMismatch is returned by Store.VerifyPIN for a wrong PIN.
var ErrPINMismatch = errors.New("pin does not match")

// ErrNoProfile is returned when no profile has been created yet.
var ErrNoProfile = errors.New("no profile on this device")

// Profile is the single on-device profile. The PIN is stored as a bcrypt
// hash; the plaintext never touches disk.
type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	PINHash   string    `json:"pin_hash"`
	Onboarded bool      `json:"onboarded"`
}

// Store persists the profile as a JSON file under the data directory.
type Store struct {
	path string
}

// NewStore creates a store rooted at dir. The directory is created on first
// write, not here.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "profile.json")}
}

// Load reads the profile. ErrNoProfile when the file does not exist; any
// other failure (unreadable, corrupt JSON) is surfaced as-is so the resolver
// can apply its conservative fallback.
func (s *Store) Load() (*Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

// Save writes the profile atomically (write temp, rename).
func (s *Store) Save(p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// Create hashes the PIN and persists a fresh profile.
func (s *Store) Create(name, pin string) (*Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	p := &Profile{
		UserID:  uuid.New(),
		Name:    name,
		PINHash: string(hash),
	}
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// VerifyPIN compares a candidate PIN against the stored hash.
func (s *Store) VerifyPIN(p *Profile, pin string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(p.PINHash), []byte(pin)); err != nil {
		return ErrPINMismatch
	}
	return nil
}
