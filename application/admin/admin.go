package admin

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayoubkd/party-membership/cmd/config"
	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
	adminrepo "github.com/ayoubkd/party-membership/repository/admin"
	eventrepo "github.com/ayoubkd/party-membership/repository/event"
	memberrepo "github.com/ayoubkd/party-membership/repository/member"
	redisrepo "github.com/ayoubkd/party-membership/repository/redis"
	subscriptionrepo "github.com/ayoubkd/party-membership/repository/subscription"
	txrepo "github.com/ayoubkd/party-membership/repository/tx"
	"github.com/ayoubkd/party-membership/utils/errors"
	"github.com/ayoubkd/party-membership/utils/logger"
)

type AdminApp interface {
	Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	ListMembers(ctx context.Context, filter *model.MemberListFilter) (*model.MemberListResponse, error)
	GetMember(ctx context.Context, memberID uint64) (*model.MemberEntity, error)
	UpdateMemberStatus(ctx context.Context, adminID, memberID uint64, req *model.UpdateMemberStatusRequest) error
	RecordSubscription(ctx context.Context, adminID uint64, req *model.RecordSubscriptionRequest) (*model.SubscriptionEntity, error)
	GetStatistics(ctx context.Context) (*model.StatisticsResponse, error)
}

type adminAppImpl struct {
	config           *config.Config
	txRepo           txrepo.TxRepository
	adminRepo        adminrepo.AdminRepository
	memberRepo       memberrepo.MemberRepository
	subscriptionRepo subscriptionrepo.SubscriptionRepository
	eventRepo        eventrepo.EventRepository
	redisRepo        redisrepo.Repository
}

func NewAdminApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	adminRepo adminrepo.AdminRepository,
	memberRepo memberrepo.MemberRepository,
	subscriptionRepo subscriptionrepo.SubscriptionRepository,
	eventRepo eventrepo.EventRepository,
	redisRepo redisrepo.Repository,
) AdminApp {
	return &adminAppImpl{
		config:           config,
		txRepo:           txRepo,
		adminRepo:        adminRepo,
		memberRepo:       memberRepo,
		subscriptionRepo: subscriptionRepo,
		eventRepo:        eventRepo,
		redisRepo:        redisRepo,
	}
}

func (s *adminAppImpl) Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Error("[AdminLogin] err adminRepo.GetByUsername", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(admin.ID)
	if err != nil {
		logger.Error("[AdminLogin] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetAdminSession(ctx, jti, admin.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[AdminLogin] err SetAdminSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AdminLoginResponse{
		FullName: admin.FullName,
		Token:    token,
	}, nil
}

func (s *adminAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	adminID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid admin id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// Admin sessions live under their own Redis prefix, so a member token
	// can never pass this check.
	sessionAdminID, err := s.redisRepo.GetAdminSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}
	if sessionAdminID != adminID {
		return 0, fmt.Errorf("token does not match admin session")
	}

	// A session can outlive the account; a removed admin keeps no access.
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		logger.Error("[ValidateToken] err adminRepo.GetByID", zap.String("error", err.Error()))
		return 0, fmt.Errorf("failed to load admin")
	}
	if admin == nil {
		return 0, fmt.Errorf("admin no longer exists")
	}

	return adminID, nil
}

func (s *adminAppImpl) ListMembers(ctx context.Context, filter *model.MemberListFilter) (*model.MemberListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}

	items, total, err := s.memberRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListMembers] err memberRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.MemberListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *adminAppImpl) GetMember(ctx context.Context, memberID uint64) (*model.MemberEntity, error) {
	member, err := s.memberRepo.Get(ctx, &model.MemberFilter{ID: memberID})
	if err != nil {
		logger.Error("[GetMember] err memberRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return member, nil
}

func (s *adminAppImpl) UpdateMemberStatus(ctx context.Context, adminID, memberID uint64, req *model.UpdateMemberStatusRequest) error {
	member, err := s.memberRepo.Get(ctx, &model.MemberFilter{ID: memberID})
	if err != nil {
		logger.Error("[UpdateMemberStatus] err memberRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	status := constant.MemberStatus(req.Status)
	if err := s.memberRepo.UpdateStatus(ctx, memberID, status); err != nil {
		logger.Error("[UpdateMemberStatus] err memberRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	detail := fmt.Sprintf("status %d by admin %d", req.Status, adminID)
	if req.Reason != "" {
		detail += ": " + req.Reason
	}
	if err := s.eventRepo.Insert(ctx, memberID, constant.EventStatusChanged, detail); err != nil {
		logger.Error("[UpdateMemberStatus] err eventRepo.Insert", zap.String("error", err.Error()))
	}

	logger.Info("member status updated",
		zap.Uint64("member_id", memberID),
		zap.Uint64("admin_id", adminID),
		zap.Int("status", req.Status))
	return nil
}

func (s *adminAppImpl) RecordSubscription(ctx context.Context, adminID uint64, req *model.RecordSubscriptionRequest) (*model.SubscriptionEntity, error) {
	member, err := s.memberRepo.Get(ctx, &model.MemberFilter{ID: req.MemberID})
	if err != nil {
		logger.Error("[RecordSubscription] err memberRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	exists, err := s.subscriptionRepo.ExistsForYear(ctx, req.MemberID, req.Year)
	if err != nil {
		logger.Error("[RecordSubscription] err subscriptionRepo.ExistsForYear", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity := &model.SubscriptionEntity{
		MemberID:      req.MemberID,
		Year:          req.Year,
		AmountDA:      req.AmountDA,
		ReceiptNumber: uuid.NewString(),
		RecordedBy:    adminID,
		PaidAt:        time.Now().UTC(),
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RecordSubscription] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.subscriptionRepo.InsertTx(ctx, tx, entity)
	if err != nil {
		logger.Error("[RecordSubscription] insert subscription", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	detail := fmt.Sprintf("year %d, receipt %s", req.Year, entity.ReceiptNumber)
	if err := s.eventRepo.InsertTx(ctx, tx, req.MemberID, constant.EventSubscriptionPaid, detail); err != nil {
		logger.Error("[RecordSubscription] insert event", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RecordSubscription] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	entity.ID = id
	return entity, nil
}

func (s *adminAppImpl) GetStatistics(ctx context.Context) (*model.StatisticsResponse, error) {
	total, err := s.memberRepo.CountAll(ctx)
	if err != nil {
		logger.Error("[GetStatistics] err memberRepo.CountAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	active, err := s.memberRepo.CountByStatus(ctx, constant.MemberStatusActive)
	if err != nil {
		logger.Error("[GetStatistics] err memberRepo.CountByStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	newThisYear, err := s.memberRepo.CountByJoinYear(ctx, time.Now().Year())
	if err != nil {
		logger.Error("[GetStatistics] err memberRepo.CountByJoinYear", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	perWilaya, err := s.memberRepo.CountGroupByWilaya(ctx)
	if err != nil {
		logger.Error("[GetStatistics] err memberRepo.CountGroupByWilaya", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	perYear, err := s.memberRepo.CountGroupByJoinYear(ctx)
	if err != nil {
		logger.Error("[GetStatistics] err memberRepo.CountGroupByJoinYear", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.StatisticsResponse{
		TotalMembers:     total,
		ActiveMembers:    active,
		NewThisYear:      newThisYear,
		MembersPerWilaya: perWilaya,
		MembersPerYear:   perYear,
	}, nil
}

// generateJWT creates a JWT token for the admin
func (s *adminAppImpl) generateJWT(adminID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", adminID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
