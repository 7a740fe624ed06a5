package content

import (
	"context"

	"go.uber.org/zap"

	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
	contentrepo "github.com/ayoubkd/party-membership/repository/content"
	"github.com/ayoubkd/party-membership/utils/errors"
	"github.com/ayoubkd/party-membership/utils/logger"
)

type ContentApp interface {
	ListActivities(ctx context.Context, includeUnpublished bool, page, perPage int) (*model.ActivityListResponse, error)
	GetActivity(ctx context.Context, id uint64) (*model.ActivityEntity, error)
	CreateActivity(ctx context.Context, req *model.ActivityRequest) (*model.ActivityEntity, error)
	UpdateActivity(ctx context.Context, id uint64, req *model.ActivityRequest) error
	DeleteActivity(ctx context.Context, id uint64) error

	ListGallery(ctx context.Context) ([]model.GalleryItemEntity, error)
	CreateGalleryItem(ctx context.Context, req *model.GalleryItemRequest) (*model.GalleryItemEntity, error)
	DeleteGalleryItem(ctx context.Context, id uint64) error

	ListLeaders(ctx context.Context) ([]model.LeaderEntity, error)
	CreateLeader(ctx context.Context, req *model.LeaderRequest) (*model.LeaderEntity, error)
	UpdateLeader(ctx context.Context, id uint64, req *model.LeaderRequest) error
	DeleteLeader(ctx context.Context, id uint64) error
}

type contentAppImpl struct {
	contentRepo contentrepo.ContentRepository
}

func NewContentApp(contentRepo contentrepo.ContentRepository) ContentApp {
	return &contentAppImpl{contentRepo: contentRepo}
}

func (s *contentAppImpl) ListActivities(ctx context.Context, includeUnpublished bool, page, perPage int) (*model.ActivityListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.contentRepo.ListActivities(ctx, !includeUnpublished, page, perPage)
	if err != nil {
		logger.Error("[ListActivities] err contentRepo.ListActivities", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ActivityListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *contentAppImpl) GetActivity(ctx context.Context, id uint64) (*model.ActivityEntity, error) {
	activity, err := s.contentRepo.GetActivity(ctx, id)
	if err != nil {
		logger.Error("[GetActivity] err contentRepo.GetActivity", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if activity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return activity, nil
}

func (s *contentAppImpl) CreateActivity(ctx context.Context, req *model.ActivityRequest) (*model.ActivityEntity, error) {
	entity := &model.ActivityEntity{
		Title:     req.Title,
		Body:      req.Body,
		EventDate: req.EventDate,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}

	id, err := s.contentRepo.InsertActivity(ctx, entity)
	if err != nil {
		logger.Error("[CreateActivity] err contentRepo.InsertActivity", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ID = id
	return entity, nil
}

func (s *contentAppImpl) UpdateActivity(ctx context.Context, id uint64, req *model.ActivityRequest) error {
	existing, err := s.contentRepo.GetActivity(ctx, id)
	if err != nil {
		logger.Error("[UpdateActivity] err contentRepo.GetActivity", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	existing.Title = req.Title
	existing.Body = req.Body
	existing.EventDate = req.EventDate
	existing.ImageURL = req.ImageURL
	existing.Published = req.Published

	if err := s.contentRepo.UpdateActivity(ctx, existing); err != nil {
		logger.Error("[UpdateActivity] err contentRepo.UpdateActivity", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *contentAppImpl) DeleteActivity(ctx context.Context, id uint64) error {
	if err := s.contentRepo.DeleteActivity(ctx, id); err != nil {
		logger.Error("[DeleteActivity] err contentRepo.DeleteActivity", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *contentAppImpl) ListGallery(ctx context.Context) ([]model.GalleryItemEntity, error) {
	items, err := s.contentRepo.ListGalleryItems(ctx)
	if err != nil {
		logger.Error("[ListGallery] err contentRepo.ListGalleryItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *contentAppImpl) CreateGalleryItem(ctx context.Context, req *model.GalleryItemRequest) (*model.GalleryItemEntity, error) {
	entity := &model.GalleryItemEntity{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		TakenAt:  req.TakenAt,
	}

	id, err := s.contentRepo.InsertGalleryItem(ctx, entity)
	if err != nil {
		logger.Error("[CreateGalleryItem] err contentRepo.InsertGalleryItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ID = id
	return entity, nil
}

func (s *contentAppImpl) DeleteGalleryItem(ctx context.Context, id uint64) error {
	if err := s.contentRepo.DeleteGalleryItem(ctx, id); err != nil {
		logger.Error("[DeleteGalleryItem] err contentRepo.DeleteGalleryItem", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *contentAppImpl) ListLeaders(ctx context.Context) ([]model.LeaderEntity, error) {
	items, err := s.contentRepo.ListLeaders(ctx)
	if err != nil {
		logger.Error("[ListLeaders] err contentRepo.ListLeaders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *contentAppImpl) CreateLeader(ctx context.Context, req *model.LeaderRequest) (*model.LeaderEntity, error) {
	entity := &model.LeaderEntity{
		FullName: req.FullName,
		Role:     req.Role,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		Rank:     req.Rank,
	}

	id, err := s.contentRepo.InsertLeader(ctx, entity)
	if err != nil {
		logger.Error("[CreateLeader] err contentRepo.InsertLeader", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ID = id
	return entity, nil
}

func (s *contentAppImpl) UpdateLeader(ctx context.Context, id uint64, req *model.LeaderRequest) error {
	entity := &model.LeaderEntity{
		ID:       id,
		FullName: req.FullName,
		Role:     req.Role,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		Rank:     req.Rank,
	}

	if err := s.contentRepo.UpdateLeader(ctx, entity); err != nil {
		logger.Error("[UpdateLeader] err contentRepo.UpdateLeader", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *contentAppImpl) DeleteLeader(ctx context.Context, id uint64) error {
	if err := s.contentRepo.DeleteLeader(ctx, id); err != nil {
		logger.Error("[DeleteLeader] err contentRepo.DeleteLeader", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
