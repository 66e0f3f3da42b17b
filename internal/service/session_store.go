package service

import (
	"context"
	"encoding/json"
	"errors"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps live quiz sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*model.QuizSession, error)
	Save(ctx context.Context, session *model.QuizSession) error
	Delete(ctx context.Context, id string) error
}

const sessionKeyPrefix = "quiz:session:"

// RedisSessionStore stores sessions as JSON with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, util.Internal("load quiz session", err)
	}

	var session model.QuizSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, util.Internal("decode quiz session", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return util.Internal("encode quiz session", err)
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.ID, data, s.TTL).Err(); err != nil {
		return util.Internal("store quiz session", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return util.Internal("delete quiz session", err)
	}
	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySessionStore is a process-local store used when Redis is disabled.
// Sessions are copied through JSON so callers never share state.
type MemorySessionStore struct {
	TTL time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		TTL:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && s.TTL > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	var session model.QuizSession
	if err := json.Unmarshal(e.data, &session); err != nil {
		return nil, util.Internal("decode quiz session", err)
	}
	return &session, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return util.Internal("encode quiz session", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.ID] = memoryEntry{data: data, expiresAt: s.now().Add(s.TTL)}
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// NewSessionStore picks Redis when a client is available.
func NewSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if client != nil {
		return NewRedisSessionStore(client, ttl)
	}
	return NewMemorySessionStore(ttl)
}
