package service

import (
	"context"
	"errors"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func testSession(id string) *model.QuizSession {
	return &model.QuizSession{
		ID:         id,
		UserID:     3,
		ClassLevel: 8,
		Chapter:    "Mensuration",
		Questions:  sampleQuestions(2),
		States:     []model.QuestionState{{Status: model.StatusStarted}, {Status: model.StatusHidden}},
	}
}

func exerciseStore(t *testing.T, store SessionStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Errorf("Get(missing) err = %v", err)
	}

	s := testSession("abc")
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	s.States[0].Status = model.StatusAnswered

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.States[0].Status != model.StatusStarted {
		t.Errorf("stored session shares state with the caller")
	}
	if got.UserID != 3 || len(got.Questions) != 2 || got.Questions[1].CorrectAnswer != "A" {
		t.Errorf("round trip lost data: %+v", got)
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "abc"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Errorf("Get after Delete err = %v", err)
	}
}

func TestMemorySessionStore(t *testing.T) {
	exerciseStore(t, NewMemorySessionStore(time.Hour))
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	clock := newFakeClock()
	store := NewMemorySessionStore(time.Minute)
	store.now = clock.Now
	ctx := context.Background()

	if err := store.Save(ctx, testSession("x")); err != nil {
		t.Fatal(err)
	}
	clock.Advance(30 * time.Second)
	if _, err := store.Get(ctx, "x"); err != nil {
		t.Fatalf("session expired early: %v", err)
	}
	clock.Advance(31 * time.Second)
	if _, err := store.Get(ctx, "x"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Errorf("expired session err = %v", err)
	}
}

func TestRedisSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewSessionStore(client, time.Hour)
	if _, ok := store.(*RedisSessionStore); !ok {
		t.Fatalf("NewSessionStore with a client = %T", store)
	}
	exerciseStore(t, store)

	if err := store.Save(context.Background(), testSession("ttl")); err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL(sessionKeyPrefix + "ttl"); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}
	mr.FastForward(2 * time.Hour)
	if _, err := store.Get(context.Background(), "ttl"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Errorf("expired redis session err = %v", err)
	}
}

func TestNewSessionStoreWithoutRedis(t *testing.T) {
	if _, ok := NewSessionStore(nil, time.Hour).(*MemorySessionStore); !ok {
		t.Errorf("nil client should give the memory store")
	}
}
