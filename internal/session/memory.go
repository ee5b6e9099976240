package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"linkus-backend/internal/roster"
)

// Memory: 단일 인스턴스 배포용 인메모리 저장소.
// 만료 없음 — 프로세스 수명이 짧다는 전제.
type Memory struct {
	mu sync.RWMutex
	m  map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]Entry)}
}

func (s *Memory) Set(_ context.Context, userID string, id roster.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = Entry{UserID: userID, Identity: id, UpdatedAt: time.Now().UTC()}
	return nil
}

func (s *Memory) Get(_ context.Context, userID string) (roster.Identity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.m[userID]
	if !ok {
		return roster.Identity{}, false, nil
	}
	return e.Identity, true, nil
}

func (s *Memory) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.m))
	for _, e := range s.m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}
