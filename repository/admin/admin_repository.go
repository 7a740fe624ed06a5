package admin

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ayoubkd/party-membership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.AdminEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.AdminEntity, error)
}

func NewAdminRepository(conn *sqlx.DB) AdminRepository {
	return &SQL{conn: conn}
}

const getAdminBase = `SELECT id, username, full_name, password_hash, created_at, updated_at FROM admin`

func (s *SQL) GetByUsername(ctx context.Context, username string) (*model.AdminEntity, error) {
	var entity model.AdminEntity
	if err := s.conn.QueryRowxContext(ctx, getAdminBase+" WHERE username = ?", username).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.AdminEntity, error) {
	var entity model.AdminEntity
	if err := s.conn.QueryRowxContext(ctx, getAdminBase+" WHERE id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
