package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leadtrack/internal/adapters/persistence/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultTTL is how long a session lives without being touched (one week)
	DefaultTTL = 7 * 24 * time.Hour

	keyPrefix = "session:"
)

// ErrSessionNotFound is returned when the session ID is unknown or expired
var ErrSessionNotFound = errors.New("session not found")

// Store persists authenticated-employee identity in redis, keyed by an
// opaque session ID. Values expire after the configured TTL; reads
// refresh the expiry.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store with the given TTL. A zero TTL
// falls back to DefaultTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Create stores the employee under a fresh session ID and returns the ID
func (s *Store) Create(ctx context.Context, employee *models.Employee) (string, error) {
	payload, err := json.Marshal(employee)
	if err != nil {
		return "", err
	}

	sid := uuid.New().String()
	if err := s.client.Set(ctx, keyPrefix+sid, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

// Get resolves the employee for a session ID and refreshes the TTL
func (s *Store) Get(ctx context.Context, sid string) (*models.Employee, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var employee models.Employee
	if err := json.Unmarshal(payload, &employee); err != nil {
		return nil, err
	}

	// Sliding expiry: every authenticated request extends the session
	if err := s.client.Expire(ctx, keyPrefix+sid, s.ttl).Err(); err != nil {
		return nil, err
	}

	return &employee, nil
}

// Destroy removes the session. Destroying an unknown session is not an error.
func (s *Store) Destroy(ctx context.Context, sid string) error {
	return s.client.Del(ctx, keyPrefix+sid).Err()
}
