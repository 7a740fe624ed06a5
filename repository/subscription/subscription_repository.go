package subscription

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ayoubkd/party-membership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SubscriptionRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SubscriptionEntity) (uint64, error)
	ListByMember(ctx context.Context, memberID uint64) ([]model.SubscriptionEntity, error)
	ExistsForYear(ctx context.Context, memberID uint64, year int) (bool, error)
}

func NewSubscriptionRepository(conn *sqlx.DB) SubscriptionRepository {
	return &SQL{conn: conn}
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SubscriptionEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO subscription (member_id, year, amount_da, receipt_number, recorded_by, paid_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		data.MemberID, data.Year, data.AmountDA, data.ReceiptNumber, data.RecordedBy, data.PaidAt)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) ListByMember(ctx context.Context, memberID uint64) ([]model.SubscriptionEntity, error) {
	items := []model.SubscriptionEntity{}
	err := s.conn.SelectContext(ctx, &items,
		`SELECT id, member_id, year, amount_da, receipt_number, recorded_by, paid_at
		FROM subscription WHERE member_id = ? ORDER BY year DESC`, memberID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ExistsForYear(ctx context.Context, memberID uint64, year int) (bool, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx,
		"SELECT COUNT(*) FROM subscription WHERE member_id = ? AND year = ?", memberID, year).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
