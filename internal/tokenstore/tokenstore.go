package tokenstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked_token:"

// TokenStore keeps revoked access tokens until they expire on their own.
// Logout revokes the presented token; the auth middleware rejects revoked
// tokens even though their signature is still valid.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a token store backed by the given redis client
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Tokens are long; store a digest instead of the raw credential.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}

// Revoke marks a token as revoked for the remainder of its lifetime
func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to track.
		return nil
	}
	if err := s.client.Set(ctx, tokenKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token has been revoked
func (s *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return true, nil
}
