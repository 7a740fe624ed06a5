package content

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ayoubkd/party-membership/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContentRepository interface {
	ListActivities(ctx context.Context, publishedOnly bool, page, perPage int) ([]model.ActivityEntity, int64, error)
	GetActivity(ctx context.Context, id uint64) (*model.ActivityEntity, error)
	InsertActivity(ctx context.Context, data *model.ActivityEntity) (uint64, error)
	UpdateActivity(ctx context.Context, data *model.ActivityEntity) error
	DeleteActivity(ctx context.Context, id uint64) error

	ListGalleryItems(ctx context.Context) ([]model.GalleryItemEntity, error)
	InsertGalleryItem(ctx context.Context, data *model.GalleryItemEntity) (uint64, error)
	DeleteGalleryItem(ctx context.Context, id uint64) error

	ListLeaders(ctx context.Context) ([]model.LeaderEntity, error)
	InsertLeader(ctx context.Context, data *model.LeaderEntity) (uint64, error)
	UpdateLeader(ctx context.Context, data *model.LeaderEntity) error
	DeleteLeader(ctx context.Context, id uint64) error
}

func NewContentRepository(conn *sqlx.DB) ContentRepository {
	return &SQL{conn: conn}
}

const getActivityBase = `SELECT id, title, body, event_date, image_url, published, created_at, updated_at FROM activity`

func (s *SQL) ListActivities(ctx context.Context, publishedOnly bool, page, perPage int) ([]model.ActivityEntity, int64, error) {
	where := " WHERE true"
	args := make([]any, 0, 3)
	if publishedOnly {
		where += " AND published = true"
	}

	var total int64
	if err := s.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM activity"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, perPage, (page-1)*perPage)
	items := []model.ActivityEntity{}
	if err := s.conn.SelectContext(ctx, &items, getActivityBase+where+" ORDER BY id DESC LIMIT ? OFFSET ?", args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetActivity(ctx context.Context, id uint64) (*model.ActivityEntity, error) {
	var entity model.ActivityEntity
	if err := s.conn.QueryRowxContext(ctx, getActivityBase+" WHERE id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) InsertActivity(ctx context.Context, data *model.ActivityEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		`INSERT INTO activity (title, body, event_date, image_url, published, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		data.Title, data.Body, data.EventDate, data.ImageURL, data.Published)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateActivity(ctx context.Context, data *model.ActivityEntity) error {
	_, err := s.conn.ExecContext(ctx,
		`UPDATE activity SET title = ?, body = ?, event_date = ?, image_url = ?, published = ?, updated_at = NOW()
		WHERE id = ?`,
		data.Title, data.Body, data.EventDate, data.ImageURL, data.Published, data.ID)
	return err
}

func (s *SQL) DeleteActivity(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM activity WHERE id = ?", id)
	return err
}

func (s *SQL) ListGalleryItems(ctx context.Context) ([]model.GalleryItemEntity, error) {
	items := []model.GalleryItemEntity{}
	err := s.conn.SelectContext(ctx, &items,
		"SELECT id, title, image_url, taken_at, created_at FROM gallery_item ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) InsertGalleryItem(ctx context.Context, data *model.GalleryItemEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO gallery_item (title, image_url, taken_at, created_at) VALUES (?, ?, ?, NOW())",
		data.Title, data.ImageURL, data.TakenAt)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) DeleteGalleryItem(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM gallery_item WHERE id = ?", id)
	return err
}

func (s *SQL) ListLeaders(ctx context.Context) ([]model.LeaderEntity, error) {
	items := []model.LeaderEntity{}
	err := s.conn.SelectContext(ctx, &items,
		"SELECT id, full_name, role, bio, photo_url, `rank`, created_at, updated_at FROM leader ORDER BY `rank` ASC")
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) InsertLeader(ctx context.Context, data *model.LeaderEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO leader (full_name, role, bio, photo_url, `rank`, created_at) VALUES (?, ?, ?, ?, ?, NOW())",
		data.FullName, data.Role, data.Bio, data.PhotoURL, data.Rank)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateLeader(ctx context.Context, data *model.LeaderEntity) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE leader SET full_name = ?, role = ?, bio = ?, photo_url = ?, `rank` = ?, updated_at = NOW() WHERE id = ?",
		data.FullName, data.Role, data.Bio, data.PhotoURL, data.Rank, data.ID)
	return err
}

func (s *SQL) DeleteLeader(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM leader WHERE id = ?", id)
	return err
}
