package member

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayoubkd/party-membership/application/otp"
	"github.com/ayoubkd/party-membership/cmd/config"
	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
	eventrepo "github.com/ayoubkd/party-membership/repository/event"
	memberrepo "github.com/ayoubkd/party-membership/repository/member"
	otprepo "github.com/ayoubkd/party-membership/repository/otp"
	redisrepo "github.com/ayoubkd/party-membership/repository/redis"
	subscriptionrepo "github.com/ayoubkd/party-membership/repository/subscription"
	txrepo "github.com/ayoubkd/party-membership/repository/tx"
	"github.com/ayoubkd/party-membership/utils/errors"
	"github.com/ayoubkd/party-membership/utils/logger"
	validatorx "github.com/ayoubkd/party-membership/utils/validator"
)

type MemberApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	QuickRegister(ctx context.Context, req *model.QuickRegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	GetProfile(ctx context.Context, memberID uint64) (*model.MemberEntity, error)
	UpdateProfile(ctx context.Context, memberID uint64, req *model.UpdateProfileRequest) error
	UpdatePhoto(ctx context.Context, memberID uint64, req *model.UpdatePhotoRequest) error
	GetCard(ctx context.Context, memberID uint64) (*model.MembershipCard, error)
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
	ChangePhone(ctx context.Context, memberID uint64, req *model.ChangePhoneRequest) error
	ListSubscriptions(ctx context.Context, memberID uint64) (*model.SubscriptionListResponse, error)
	ListEvents(ctx context.Context, memberID uint64) (*model.MemberEventListResponse, error)
}

type memberAppImpl struct {
	config           *config.Config
	txRepo           txrepo.TxRepository
	memberRepo       memberrepo.MemberRepository
	otpRepo          otprepo.OTPRepository
	otpApp           otp.OTPApp
	eventRepo        eventrepo.EventRepository
	subscriptionRepo subscriptionrepo.SubscriptionRepository
	redisRepo        redisrepo.Repository
}

// issueMaxRetries bounds the count-then-insert retry when the UNIQUE index
// on membership_number rejects a concurrently issued duplicate.
const issueMaxRetries = 3

const eventListLimit = 100

func NewMemberApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	memberRepo memberrepo.MemberRepository,
	otpRepo otprepo.OTPRepository,
	otpApp otp.OTPApp,
	eventRepo eventrepo.EventRepository,
	subscriptionRepo subscriptionrepo.SubscriptionRepository,
	redisRepo redisrepo.Repository,
) MemberApp {
	return &memberAppImpl{
		config:           config,
		txRepo:           txRepo,
		memberRepo:       memberRepo,
		otpRepo:          otpRepo,
		otpApp:           otpApp,
		eventRepo:        eventRepo,
		subscriptionRepo: subscriptionRepo,
		redisRepo:        redisRepo,
	}
}

func (s *memberAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	wilayaCode, err := resolveWilayaCode(req.Wilaya, req.ForeignResident)
	if err != nil {
		return nil, err
	}
	if err := validateJoinYear(req.FirstJoinYear); err != nil {
		return nil, err
	}

	phone := otp.NormalizePhone(req.Phone)
	if !validatorx.IsDZPhone(phone) {
		return nil, errors.SetCustomError(constant.ErrInvalidPhone)
	}

	if err := s.requireVerifiedOTP(ctx, phone, constant.OTPPurposeRegistration); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.Get(ctx, &model.MemberFilter{Phone: phone})
	if err != nil {
		logger.Error("[Register] err memberRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrPhoneExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.MemberEntity{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           phone,
		Email:           req.Email,
		PasswordHash:    string(hashedPassword),
		Wilaya:          req.Wilaya,
		Commune:         req.Commune,
		ForeignResident: req.ForeignResident,
		FirstJoinYear:   req.FirstJoinYear,
		Status:          constant.MemberStatusActive,
	}

	entity, err = s.createMemberWithNumber(ctx, entity, wilayaCode)
	if err != nil {
		return nil, err
	}

	// OTP has served its purpose
	if err := s.otpApp.ConsumeAndDelete(ctx, phone, constant.OTPPurposeRegistration); err != nil {
		logger.Error("[Register] err otpApp.ConsumeAndDelete", zap.String("error", err.Error()))
	}

	return &model.RegisterResponse{
		MembershipNumber: entity.MembershipNumber,
		FirstName:        entity.FirstName,
		LastName:         entity.LastName,
	}, nil
}

// QuickRegister issues a membership number from minimal applicant data; no
// portal password is set, so the member cannot log in until a password reset.
func (s *memberAppImpl) QuickRegister(ctx context.Context, req *model.QuickRegisterRequest) (*model.RegisterResponse, error) {
	wilayaCode, err := resolveWilayaCode(req.Wilaya, req.ForeignResident)
	if err != nil {
		return nil, err
	}
	if err := validateJoinYear(req.FirstJoinYear); err != nil {
		return nil, err
	}

	phone := otp.NormalizePhone(req.Phone)
	if !validatorx.IsDZPhone(phone) {
		return nil, errors.SetCustomError(constant.ErrInvalidPhone)
	}

	if err := s.requireVerifiedOTP(ctx, phone, constant.OTPPurposeRegistration); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.Get(ctx, &model.MemberFilter{Phone: phone})
	if err != nil {
		logger.Error("[QuickRegister] err memberRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrPhoneExists)
	}

	entity := &model.MemberEntity{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           phone,
		Wilaya:          req.Wilaya,
		ForeignResident: req.ForeignResident,
		FirstJoinYear:   req.FirstJoinYear,
		Status:          constant.MemberStatusActive,
	}

	entity, err = s.createMemberWithNumber(ctx, entity, wilayaCode)
	if err != nil {
		return nil, err
	}

	if err := s.otpApp.ConsumeAndDelete(ctx, phone, constant.OTPPurposeRegistration); err != nil {
		logger.Error("[QuickRegister] err otpApp.ConsumeAndDelete", zap.String("error", err.Error()))
	}

	return &model.RegisterResponse{
		MembershipNumber: entity.MembershipNumber,
		FirstName:        entity.FirstName,
		LastName:         entity.LastName,
	}, nil
}

// createMemberWithNumber derives the next sequence number for the
// (wilaya code, join year) prefix and inserts the member in one transaction.
// The count and the insert are not atomic on their own, so the UNIQUE index
// on membership_number backstops concurrent issuance; on a duplicate-key
// rejection the whole count-then-insert runs again.
func (s *memberAppImpl) createMemberWithNumber(ctx context.Context, entity *model.MemberEntity, wilayaCode string) (*model.MemberEntity, error) {
	prefix := fmt.Sprintf("%s%04d", wilayaCode, entity.FirstJoinYear)

	for attempt := 0; attempt < issueMaxRetries; attempt++ {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[createMemberWithNumber] begin tx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		committed := false
		rolledBack := false
		rollback := func() {
			if !committed && !rolledBack {
				_ = s.txRepo.RollbackTx(tx)
				rolledBack = true
			}
		}

		count, err := s.memberRepo.CountByNumberPrefixTx(ctx, tx, prefix)
		if err != nil {
			logger.Error("[createMemberWithNumber] count prefix", zap.String("error", err.Error()))
			rollback()
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if count >= constant.MaxWilayaYearMembers {
			rollback()
			return nil, errors.SetCustomError(constant.ErrSequenceExhausted)
		}

		entity.MembershipNumber = fmt.Sprintf("%s%06d", prefix, count+1)

		id, err := s.memberRepo.CreateTx(ctx, tx, entity)
		if err != nil {
			rollback()
			if memberrepo.IsDuplicateEntry(err) {
				logger.Warn("[createMemberWithNumber] duplicate number, retrying",
					zap.String("membership_number", entity.MembershipNumber))
				continue
			}
			logger.Error("[createMemberWithNumber] insert member", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		if err := s.eventRepo.InsertTx(ctx, tx, id, constant.EventRegistered, "membership number "+entity.MembershipNumber); err != nil {
			logger.Error("[createMemberWithNumber] insert event", zap.String("error", err.Error()))
			rollback()
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[createMemberWithNumber] commit tx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		committed = true

		entity.ID = id
		logger.Info("membership number issued",
			zap.String("membership_number", entity.MembershipNumber),
			zap.Uint64("member_id", id))
		return entity, nil
	}

	logger.Error("[createMemberWithNumber] retries exhausted", zap.String("prefix", prefix))
	return nil, errors.SetCustomError(constant.ErrInternal)
}

func (s *memberAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	filter := &model.MemberFilter{}
	if isMembershipNumber(req.Identifier) {
		filter.MembershipNumber = req.Identifier
	} else {
		filter.Phone = otp.NormalizePhone(req.Identifier)
	}

	member, err := s.memberRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err memberRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if member.Status == constant.MemberStatusSuspended {
		return nil, errors.SetCustomError(constant.ErrMemberSuspended)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(member.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, member.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.eventRepo.Insert(ctx, member.ID, constant.EventLoggedIn, ""); err != nil {
		logger.Error("[Login] err eventRepo.Insert", zap.String("error", err.Error()))
	}

	return &model.LoginResponse{
		FirstName:        member.FirstName,
		LastName:         member.LastName,
		MembershipNumber: member.MembershipNumber,
		Token:            token,
	}, nil
}

func (s *memberAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
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

	memberID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid member id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	sessionMemberID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}
	if sessionMemberID != memberID {
		return 0, fmt.Errorf("token does not match member session")
	}

	return memberID, nil
}

func (s *memberAppImpl) GetProfile(ctx context.Context, memberID uint64) (*model.MemberEntity, error) {
	member, err := s.memberRepo.Get(ctx, &model.MemberFilter{ID: memberID})
	if err != nil {
		logger.Error("[GetProfile] err memberRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return member, nil
}

func (s *memberAppImpl) UpdateProfile(ctx context.Context, memberID uint64, req *model.UpdateProfileRequest) error {
	if req.Email == nil && req.Commune == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.memberRepo.UpdateProfile(ctx, memberID, req.Email, req.Commune); err != nil {
		logger.Error("[UpdateProfile] err memberRepo.UpdateProfile", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.eventRepo.Insert(ctx, memberID, constant.EventProfileUpdated, ""); err != nil {
		logger.Error("[UpdateProfile] err eventRepo.Insert", zap.String("error", err.Error()))
	}
	return nil
}

func (s *memberAppImpl) UpdatePhoto(ctx context.Context, memberID uint64, req *model.UpdatePhotoRequest) error {
	if err := s.memberRepo.UpdatePhoto(ctx, memberID, req.PhotoURL); err != nil {
		logger.Error("[UpdatePhoto] err memberRepo.UpdatePhoto", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.eventRepo.Insert(ctx, memberID, constant.EventPhotoUpdated, ""); err != nil {
		logger.Error("[UpdatePhoto] err eventRepo.Insert", zap.String("error", err.Error()))
	}
	return nil
}

func (s *memberAppImpl) GetCard(ctx context.Context, memberID uint64) (*model.MembershipCard, error) {
	member, err := s.GetProfile(ctx, memberID)
	if err != nil {
		return nil, err
	}

	wilaya := member.Wilaya
	if member.ForeignResident && wilaya == "" {
		wilaya = "Etranger"
	}

	return &model.MembershipCard{
		MembershipNumber: member.MembershipNumber,
		FullName:         member.FirstName + " " + member.LastName,
		Wilaya:           wilaya,
		FirstJoinYear:    member.FirstJoinYear,
		Status:           member.Status,
		PhotoURL:         member.PhotoURL,
	}, nil
}

// ResetPassword completes the forgot-password flow; the caller must have
// verified a password_reset OTP for this phone first.
func (s *memberAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	phone := otp.NormalizePhone(req.Phone)

	member, err := s.memberRepo.Get(ctx, &model.MemberFilter{Phone: phone})
	if err != nil {
		logger.Error("[ResetPassword] err memberRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.requireVerifiedOTP(ctx, phone, constant.OTPPurposePasswordReset); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.memberRepo.UpdatePassword(ctx, member.ID, string(hashedPassword)); err != nil {
		logger.Error("[ResetPassword] err memberRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.otpApp.ConsumeAndDelete(ctx, phone, constant.OTPPurposePasswordReset); err != nil {
		logger.Error("[ResetPassword] err otpApp.ConsumeAndDelete", zap.String("error", err.Error()))
	}

	if err := s.eventRepo.Insert(ctx, member.ID, constant.EventPasswordChanged, ""); err != nil {
		logger.Error("[ResetPassword] err eventRepo.Insert", zap.String("error", err.Error()))
	}
	return nil
}

// ChangePhone moves the account to a new phone; the phone_change OTP must
// have been verified on the NEW number.
func (s *memberAppImpl) ChangePhone(ctx context.Context, memberID uint64, req *model.ChangePhoneRequest) error {
	newPhone := otp.NormalizePhone(req.NewPhone)
	if !validatorx.IsDZPhone(newPhone) {
		return errors.SetCustomError(constant.ErrInvalidPhone)
	}

	member, err := s.memberRepo.Get(ctx, &model.MemberFilter{ID: memberID})
	if err != nil {
		logger.Error("[ChangePhone] err memberRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if member == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	taken, err := s.memberRepo.Get(ctx, &model.MemberFilter{Phone: newPhone})
	if err != nil {
		logger.Error("[ChangePhone] err memberRepo.Get new phone", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if taken != nil {
		return errors.SetCustomError(constant.ErrPhoneExists)
	}

	if err := s.requireVerifiedOTP(ctx, newPhone, constant.OTPPurposePhoneChange); err != nil {
		return err
	}

	if err := s.memberRepo.UpdatePhone(ctx, memberID, newPhone); err != nil {
		logger.Error("[ChangePhone] err memberRepo.UpdatePhone", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.otpApp.ConsumeAndDelete(ctx, newPhone, constant.OTPPurposePhoneChange); err != nil {
		logger.Error("[ChangePhone] err otpApp.ConsumeAndDelete", zap.String("error", err.Error()))
	}

	detail := fmt.Sprintf("%s -> %s", member.Phone, newPhone)
	if err := s.eventRepo.Insert(ctx, memberID, constant.EventPhoneChanged, detail); err != nil {
		logger.Error("[ChangePhone] err eventRepo.Insert", zap.String("error", err.Error()))
	}
	return nil
}

func (s *memberAppImpl) ListSubscriptions(ctx context.Context, memberID uint64) (*model.SubscriptionListResponse, error) {
	items, err := s.subscriptionRepo.ListByMember(ctx, memberID)
	if err != nil {
		logger.Error("[ListSubscriptions] err subscriptionRepo.ListByMember", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.SubscriptionListResponse{Items: items}, nil
}

func (s *memberAppImpl) ListEvents(ctx context.Context, memberID uint64) (*model.MemberEventListResponse, error) {
	items, err := s.eventRepo.ListByMember(ctx, memberID, eventListLimit)
	if err != nil {
		logger.Error("[ListEvents] err eventRepo.ListByMember", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.MemberEventListResponse{Items: items}, nil
}

func (s *memberAppImpl) requireVerifiedOTP(ctx context.Context, phone string, purpose constant.OTPPurpose) error {
	rec, err := s.otpRepo.Get(ctx, phone, purpose)
	if err != nil {
		logger.Error("[requireVerifiedOTP] err otpRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil || !rec.Verified {
		return errors.SetCustomError(constant.ErrOTPNotVerified)
	}
	return nil
}

// generateJWT creates a JWT token for the member
func (s *memberAppImpl) generateJWT(memberID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", memberID),
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

func resolveWilayaCode(wilaya string, foreignResident bool) (string, error) {
	if foreignResident {
		return constant.ForeignWilayaCode, nil
	}
	code, ok := constant.WilayaCodes[wilaya]
	if !ok {
		return "", errors.SetCustomError(constant.ErrUnknownWilaya)
	}
	return code, nil
}

func validateJoinYear(year int) error {
	if year < constant.MinJoinYear || year > time.Now().Year() {
		return errors.SetCustomError(constant.ErrInvalidJoinYear)
	}
	return nil
}

// isMembershipNumber checks if identifier looks like a 12-digit membership number
func isMembershipNumber(identifier string) bool {
	if len(identifier) != constant.MembershipNumberLen {
		return false
	}
	for _, r := range identifier {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
