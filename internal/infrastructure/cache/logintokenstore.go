package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"chefviral/internal/shared/errors"
)

const (
	loginTokenPrefix      = "auth:login:"
	loginTokenBytes       = 16 // 128 bits of entropy
	loginTokenRatePrefix  = "auth:login:rate:"
	loginTokenMaxRequests = 5
	loginTokenRateWindow  = 15 * time.Minute
)

// LoginTokenStore provides Redis-backed single-use tokens for email
// login links.
type LoginTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLoginTokenStore creates a LoginTokenStore with the given token TTL.
func NewLoginTokenStore(client *redis.Client, ttl time.Duration) *LoginTokenStore {
	return &LoginTokenStore{client: client, ttl: ttl}
}

// Issue generates a random token bound to the user ID and stores it with
// the configured TTL. It rate limits issuance per user.
func (s *LoginTokenStore) Issue(ctx context.Context, userID uint) (string, error) {
	rateKey := loginTokenRatePrefix + strconv.FormatUint(uint64(userID), 10)
	requests, err := s.client.Get(ctx, rateKey).Int()
	if err != nil && err != redis.Nil {
		return "", fmt.Errorf("failed to check rate limit: %w", err)
	}
	if requests >= loginTokenMaxRequests {
		return "", errors.NewRateLimitedError("Muitas solicitações. Aguarde um momento.")
	}

	bytes := make([]byte, loginTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := hex.EncodeToString(bytes)

	if err := s.client.Set(ctx, loginTokenPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store login token: %w", err)
	}

	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, rateKey)
	pipe.Expire(ctx, rateKey, loginTokenRateWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to update rate limit: %w", err)
	}
	_ = incr

	return token, nil
}

// Consume atomically retrieves and deletes the token, returning the
// associated user ID. A token can only be consumed once.
func (s *LoginTokenStore) Consume(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, errors.NewUnauthorizedError("link de acesso inválido ou expirado")
	}

	val, err := s.client.GetDel(ctx, loginTokenPrefix+token).Result()
	if err == redis.Nil {
		return 0, errors.NewUnauthorizedError("link de acesso inválido ou expirado")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to consume login token: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt login token value: %w", err)
	}
	return uint(userID), nil
}
