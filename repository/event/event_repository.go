package event

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ayoubkd/party-membership/model"
)

type SQL struct {
	conn *sqlx.DB
}

// EventRepository stores the append-only per-member activity log.
type EventRepository interface {
	Insert(ctx context.Context, memberID uint64, eventType, detail string) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, memberID uint64, eventType, detail string) error
	ListByMember(ctx context.Context, memberID uint64, limit int) ([]model.MemberEventEntity, error)
}

func NewEventRepository(conn *sqlx.DB) EventRepository {
	return &SQL{conn: conn}
}

const insertEventQuery = `INSERT INTO member_event (member_id, event_type, detail, created_at) VALUES (?, ?, ?, NOW())`

func (s *SQL) Insert(ctx context.Context, memberID uint64, eventType, detail string) error {
	_, err := s.conn.ExecContext(ctx, insertEventQuery, memberID, eventType, detail)
	return err
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, memberID uint64, eventType, detail string) error {
	_, err := tx.ExecContext(ctx, insertEventQuery, memberID, eventType, detail)
	return err
}

func (s *SQL) ListByMember(ctx context.Context, memberID uint64, limit int) ([]model.MemberEventEntity, error) {
	items := []model.MemberEventEntity{}
	err := s.conn.SelectContext(ctx, &items,
		`SELECT id, member_id, event_type, detail, created_at
		FROM member_event WHERE member_id = ? ORDER BY id DESC LIMIT ?`, memberID, limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}
