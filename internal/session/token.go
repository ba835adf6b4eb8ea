package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenLifetime = 30 * 24 * time.Hour

// ErrTokenInvalid covers every token failure: bad signature, expiry, wrong
// subject. The resolver treats them all identically (degrade to login).
var ErrTokenInvalid = errors.New("device token invalid")

type tokenClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the device session token: an HS256 JWT
// signed with a secret generated on this device. The token only shortcuts
// the PIN prompt on the device that issued it; it is not portable identity.
type TokenService struct {
	dir        string
	signingKey []byte
	now        func() time.Time
}

// NewTokenService loads (or generates) the device secret under dir.
func NewTokenService(dir string) (*TokenService, error) {
	key, err := loadOrCreateSecret(filepath.Join(dir, "device.key"))
	if err != nil {
		return nil, err
	}
	return &TokenService{dir: dir, signingKey: key, now: time.Now}, nil
}

func loadOrCreateSecret(path string) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil && len(data) >= 32 {
		return data, nil
	}
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate device secret: %w", err)
	}
	key := []byte(hex.EncodeToString(raw))
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write device secret: %w", err)
	}
	return key, nil
}

func (t *TokenService) tokenPath() string {
	return filepath.Join(t.dir, "session.jwt")
}

// Issue signs a token for the user and persists it for the next start.
func (t *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := t.now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign device token: %w", err)
	}
	if err := os.WriteFile(t.tokenPath(), []byte(signed), 0o600); err != nil {
		return "", fmt.Errorf("persist device token: %w", err)
	}
	return signed, nil
}

// Verify parses the persisted token and returns the user it was issued for.
// Any failure, including a missing file, is ErrTokenInvalid.
func (t *TokenService) Verify() (uuid.UUID, error) {
	raw, err := os.ReadFile(t.tokenPath())
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	var claims tokenClaims
	_, err = jwt.ParseWithClaims(string(raw), &claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return t.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || claims.UserID == uuid.Nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return claims.UserID, nil
}

// Clear removes the persisted token. Called on logout.
func (t *TokenService) Clear() error {
	err := os.Remove(t.tokenPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear device token: %w", err)
	}
	return nil
}
