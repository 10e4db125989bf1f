package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-jobtracker-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long an abandoned popup session survives.
const sessionTTL = 24 * time.Hour

type sessionRepo struct {
	client *redis.Client
}

// NewSessionRepository creates the Redis-backed extension session store.
func NewSessionRepository(client *redis.Client) domain.SessionRepository {
	return &sessionRepo{client: client}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("ext:session:%s", userID)
}

// Get returns the user's analysis session, or an idle session when none is
// stored. A missing key is a valid state, not an error.
func (r *sessionRepo) Get(ctx context.Context, userID string) (*domain.AnalysisSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return &domain.AnalysisSession{Status: domain.SessionIdle}, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.AnalysisSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// Corrupt payload: fall back to idle rather than wedging the popup
		return &domain.AnalysisSession{Status: domain.SessionIdle}, nil
	}
	return &session, nil
}

// Save overwrites the user's analysis session.
func (r *sessionRepo) Save(ctx context.Context, userID string, session *domain.AnalysisSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(userID), raw, sessionTTL).Err()
}
