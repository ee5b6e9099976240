// Package session: 채팅 사용자 id → 마지막 본인인증 결과.
// 사용자당 한 칸짜리 저장소다. 나중 쓰기가 이긴다.
package session

import (
	"context"
	"time"

	"linkus-backend/internal/roster"
)

type Store interface {
	Set(ctx context.Context, userID string, id roster.Identity) error
	Get(ctx context.Context, userID string) (roster.Identity, bool, error)
}

// Entry: 관리자 조회용 스냅샷 항목.
type Entry struct {
	UserID    string          `json:"user_id"`
	Identity  roster.Identity `json:"identity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Lister interface {
	List(ctx context.Context) ([]Entry, error)
}
