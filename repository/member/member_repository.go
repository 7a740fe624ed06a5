package member

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type MemberRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.MemberEntity) (uint64, error)
	CountByNumberPrefixTx(ctx context.Context, tx *sqlx.Tx, prefix string) (int64, error)
	Get(ctx context.Context, filter *model.MemberFilter) (*model.MemberEntity, error)
	List(ctx context.Context, filter *model.MemberListFilter) ([]model.MemberEntity, int64, error)
	UpdateProfile(ctx context.Context, id uint64, email, commune *string) error
	UpdatePhoto(ctx context.Context, id uint64, photoURL string) error
	UpdatePhone(ctx context.Context, id uint64, phone string) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	UpdateStatus(ctx context.Context, id uint64, status constant.MemberStatus) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status constant.MemberStatus) (int64, error)
	CountByJoinYear(ctx context.Context, year int) (int64, error)
	CountGroupByWilaya(ctx context.Context) ([]model.WilayaCount, error)
	CountGroupByJoinYear(ctx context.Context) ([]model.YearCount, error)
}

func NewMemberRepository(conn *sqlx.DB) MemberRepository {
	return &SQL{conn: conn}
}

const (
	insertMemberQuery = `INSERT INTO member
		(membership_number, first_name, last_name, phone, email, password_hash, wilaya, commune, foreign_resident, first_join_year, photo_url, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getMemberBase = `SELECT id, membership_number, first_name, last_name, phone, email, password_hash, wilaya, commune, foreign_resident, first_join_year, photo_url, status, created_at, updated_at
		FROM member WHERE true`
)

// CreateTx inserts the member inside the issuance transaction. The
// membership_number column carries a UNIQUE index; callers retry on
// duplicate-key (see IsDuplicateEntry).
func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.MemberEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertMemberQuery,
		data.MembershipNumber, data.FirstName, data.LastName, data.Phone, data.Email,
		data.PasswordHash, data.Wilaya, data.Commune, data.ForeignResident,
		data.FirstJoinYear, data.PhotoURL, data.Status)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

// CountByNumberPrefixTx counts members whose number starts with the given
// wilaya-code+year prefix. The LIKE on the indexed column is a range scan.
func (s *SQL) CountByNumberPrefixTx(ctx context.Context, tx *sqlx.Tx, prefix string) (int64, error) {
	var count int64
	err := tx.QueryRowxContext(ctx,
		"SELECT COUNT(*) FROM member WHERE membership_number LIKE ?", prefix+"%").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.MemberFilter) (*model.MemberEntity, error) {
	query := getMemberBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.MembershipNumber != "" {
		query += " AND membership_number = ?"
		args = append(args, filter.MembershipNumber)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.MemberEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.MemberListFilter) ([]model.MemberEntity, int64, error) {
	where := " WHERE true"
	args := make([]any, 0, 5)

	if filter.Wilaya != "" {
		where += " AND wilaya = ?"
		args = append(args, filter.Wilaya)
	}
	if filter.JoinYear != 0 {
		where += " AND first_join_year = ?"
		args = append(args, filter.JoinYear)
	}
	if filter.Status != 0 {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		where += " AND (first_name LIKE ? OR last_name LIKE ? OR phone LIKE ?)"
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}

	var total int64
	if err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM member"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := getMemberBase[:len(getMemberBase)-len(" WHERE true")] + where +
		" ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	items := []model.MemberEntity{}
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, email, commune *string) error {
	query := "UPDATE member SET updated_at = NOW()"
	args := make([]any, 0, 3)
	if email != nil {
		query += ", email = ?"
		args = append(args, *email)
	}
	if commune != nil {
		query += ", commune = ?"
		args = append(args, *commune)
	}
	query += " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) UpdatePhoto(ctx context.Context, id uint64, photoURL string) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE member SET photo_url = ?, updated_at = NOW() WHERE id = ?", photoURL, id)
	return err
}

func (s *SQL) UpdatePhone(ctx context.Context, id uint64, phone string) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE member SET phone = ?, updated_at = NOW() WHERE id = ?", phone, id)
	return err
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE member SET password_hash = ?, updated_at = NOW() WHERE id = ?", passwordHash, id)
	return err
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.MemberStatus) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE member SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	return err
}

func (s *SQL) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM member").Scan(&count)
	return count, err
}

func (s *SQL) CountByStatus(ctx context.Context, status constant.MemberStatus) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM member WHERE status = ?", status).Scan(&count)
	return count, err
}

func (s *SQL) CountByJoinYear(ctx context.Context, year int) (int64, error) {
	var count int64
	err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM member WHERE first_join_year = ?", year).Scan(&count)
	return count, err
}

func (s *SQL) CountGroupByWilaya(ctx context.Context) ([]model.WilayaCount, error) {
	rows := []model.WilayaCount{}
	err := s.conn.SelectContext(ctx, &rows,
		"SELECT wilaya, COUNT(*) AS count FROM member GROUP BY wilaya ORDER BY count DESC")
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SQL) CountGroupByJoinYear(ctx context.Context) ([]model.YearCount, error) {
	rows := []model.YearCount{}
	err := s.conn.SelectContext(ctx, &rows,
		"SELECT first_join_year AS year, COUNT(*) AS count FROM member GROUP BY first_join_year ORDER BY year")
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// IsDuplicateEntry reports whether err is a MySQL duplicate-key error (1062),
// raised when two concurrent registrations computed the same sequence number.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
