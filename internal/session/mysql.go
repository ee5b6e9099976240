package session

import (
	"context"
	"database/sql"

	"linkus-backend/internal/roster"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

// MySQL: 다중 인스턴스 배포용 외부 저장소.
// user_id가 UNIQUE라서 upsert가 그대로 last-write-wins가 된다.
type MySQL struct{ db DBTX }

func NewMySQL(db DBTX) *MySQL { return &MySQL{db: db} }

func (s *MySQL) Set(ctx context.Context, userID string, id roster.Identity) error {
	const q = `
	INSERT INTO sessions (user_id, role, name, phone4, team, university, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, UTC_TIMESTAMP())
	ON DUPLICATE KEY UPDATE
	role       = VALUES(role),
	name       = VALUES(name),
	phone4     = VALUES(phone4),
	team       = VALUES(team),
	university = VALUES(university),
	updated_at = VALUES(updated_at)`

	_, err := s.db.ExecContext(ctx, q, userID, string(id.Role), id.Name, id.Phone4, id.Team, id.University)
	return err
}

func (s *MySQL) Get(ctx context.Context, userID string) (roster.Identity, bool, error) {
	const q = `
	SELECT role, name, phone4, team, university
	FROM sessions WHERE user_id = ?`

	var role string
	var id roster.Identity
	err := s.db.QueryRowContext(ctx, q, userID).Scan(&role, &id.Name, &id.Phone4, &id.Team, &id.University)
	if err == sql.ErrNoRows {
		return roster.Identity{}, false, nil
	}
	if err != nil {
		return roster.Identity{}, false, err
	}
	id.Role = roster.Role(role)
	return id, true, nil
}

func (s *MySQL) List(ctx context.Context) ([]Entry, error) {
	const q = `
	SELECT user_id, role, name, phone4, team, university, updated_at
	FROM sessions ORDER BY updated_at DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var role string
		if err := rows.Scan(&e.UserID, &role, &e.Identity.Name, &e.Identity.Phone4,
			&e.Identity.Team, &e.Identity.University, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.Identity.Role = roster.Role(role)
		out = append(out, e)
	}
	return out, rows.Err()
}
