package otp

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OTPRepository interface {
	Get(ctx context.Context, phone string, purpose constant.OTPPurpose) (*model.OTPEntity, error)
	Replace(ctx context.Context, data *model.OTPEntity) error
	UpdateAttempts(ctx context.Context, id uint64, attempts int) error
	MarkVerified(ctx context.Context, id uint64) error
	Delete(ctx context.Context, phone string, purpose constant.OTPPurpose) error
	DeleteExpired(ctx context.Context, phone string, purpose constant.OTPPurpose, now time.Time) (int64, error)
}

func NewOTPRepository(conn *sqlx.DB) OTPRepository {
	return &SQL{conn: conn}
}

const getOTPQuery = `SELECT id, phone, purpose, code, expires_at, attempts, verified, created_at
	FROM otp_code WHERE phone = ? AND purpose = ?`

func (s *SQL) Get(ctx context.Context, phone string, purpose constant.OTPPurpose) (*model.OTPEntity, error) {
	var entity model.OTPEntity
	if err := s.conn.QueryRowxContext(ctx, getOTPQuery, phone, purpose).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Replace supersedes any prior code for the (phone, purpose) pair. The table
// carries UNIQUE(phone, purpose), so REPLACE is an atomic delete-then-insert.
func (s *SQL) Replace(ctx context.Context, data *model.OTPEntity) error {
	result, err := s.conn.ExecContext(ctx,
		`REPLACE INTO otp_code (phone, purpose, code, expires_at, attempts, verified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		data.Phone, data.Purpose, data.Code, data.ExpiresAt, data.Attempts, data.Verified)
	if err != nil {
		return err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	data.ID = uint64(lastID)
	return nil
}

func (s *SQL) UpdateAttempts(ctx context.Context, id uint64, attempts int) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE otp_code SET attempts = ? WHERE id = ?", attempts, id)
	return err
}

func (s *SQL) MarkVerified(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE otp_code SET verified = true WHERE id = ?", id)
	return err
}

func (s *SQL) Delete(ctx context.Context, phone string, purpose constant.OTPPurpose) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM otp_code WHERE phone = ? AND purpose = ?", phone, purpose)
	return err
}

// DeleteExpired removes the row only when it is both stale and unverified.
// Used by the reaper; the lazy check at verify time stays authoritative.
func (s *SQL) DeleteExpired(ctx context.Context, phone string, purpose constant.OTPPurpose, now time.Time) (int64, error) {
	result, err := s.conn.ExecContext(ctx,
		"DELETE FROM otp_code WHERE phone = ? AND purpose = ? AND verified = false AND expires_at < ?",
		phone, purpose, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
