package otp

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ayoubkd/party-membership/cmd/config"
	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
	memberrepo "github.com/ayoubkd/party-membership/repository/member"
	otprepo "github.com/ayoubkd/party-membership/repository/otp"
	"github.com/ayoubkd/party-membership/thirdparty/rabbitmq"
	"github.com/ayoubkd/party-membership/utils/errors"
	"github.com/ayoubkd/party-membership/utils/logger"
	validatorx "github.com/ayoubkd/party-membership/utils/validator"
	"go.uber.org/zap"
)

type OTPApp interface {
	RequestCode(ctx context.Context, req *model.OTPRequestRequest) (*model.OTPRequestResponse, error)
	VerifyCode(ctx context.Context, req *model.OTPVerifyRequest) (*model.OTPVerifyResponse, error)
	CheckStatus(ctx context.Context, phone, purpose string) (*model.OTPStatusResponse, error)
	ConsumeAndDelete(ctx context.Context, phone string, purpose constant.OTPPurpose) error
	CleanupExpired(ctx context.Context, phone, purpose string) error
}

type otpAppImpl struct {
	config     *config.Config
	otpRepo    otprepo.OTPRepository
	memberRepo memberrepo.MemberRepository
	publisher  *rabbitmq.Publisher
}

func NewOTPApp(config *config.Config, otpRepo otprepo.OTPRepository, memberRepo memberrepo.MemberRepository, publisher *rabbitmq.Publisher) OTPApp {
	return &otpAppImpl{config: config, otpRepo: otpRepo, memberRepo: memberRepo, publisher: publisher}
}

func (s *otpAppImpl) RequestCode(ctx context.Context, req *model.OTPRequestRequest) (*model.OTPRequestResponse, error) {
	purpose := constant.OTPPurpose(req.Purpose)
	if !purpose.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	phone := NormalizePhone(req.Phone)
	if !validatorx.IsDZPhone(phone) {
		return nil, errors.SetCustomError(constant.ErrInvalidPhone)
	}

	// A registration code for an already-registered phone is pointless and
	// would leak into a duplicate account.
	if purpose == constant.OTPPurposeRegistration {
		existing, err := s.memberRepo.Get(ctx, &model.MemberFilter{Phone: phone})
		if err != nil {
			logger.Error("[RequestCode] err memberRepo.Get", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrPhoneExists)
		}
	}

	code, err := generateCode()
	if err != nil {
		logger.Error("[RequestCode] err generateCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	expiresAt := time.Now().Add(s.config.OTP.CodeExpiration)
	entity := &model.OTPEntity{
		Phone:     phone,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: expiresAt,
		Attempts:  0,
		Verified:  false,
	}

	// Supersedes any prior code for this (phone, purpose) pair
	if err := s.otpRepo.Replace(ctx, entity); err != nil {
		logger.Error("[RequestCode] err otpRepo.Replace", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		sms := rabbitmq.SMSMessage{
			Phone: phone,
			Body:  fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(s.config.OTP.CodeExpiration.Minutes())),
		}
		if err := s.publisher.PublishSMS(sms); err != nil {
			logger.Error("[RequestCode] err PublishSMS", zap.String("error", err.Error()))
		}

		exp := rabbitmq.OTPExpirationMessage{
			Phone:     phone,
			Purpose:   string(purpose),
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishOTPExpiration(exp); err != nil {
			logger.Error("[RequestCode] err PublishOTPExpiration", zap.String("error", err.Error()))
		}
	}

	res := &model.OTPRequestResponse{
		Message: "verification code sent",
	}
	if s.config.Environment != "production" {
		res.DevCode = code
	}
	return res, nil
}

func (s *otpAppImpl) VerifyCode(ctx context.Context, req *model.OTPVerifyRequest) (*model.OTPVerifyResponse, error) {
	purpose := constant.OTPPurpose(req.Purpose)
	if !purpose.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	phone := NormalizePhone(req.Phone)

	rec, err := s.otpRepo.Get(ctx, phone, purpose)
	if err != nil {
		logger.Error("[VerifyCode] err otpRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil {
		return nil, errors.SetCustomError(constant.ErrOTPNotFound)
	}

	if rec.Attempts >= constant.OTPMaxAttempts {
		if err := s.otpRepo.Delete(ctx, phone, purpose); err != nil {
			logger.Error("[VerifyCode] err otpRepo.Delete attempts", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return nil, errors.SetCustomError(constant.ErrOTPAttemptsExceeded)
	}

	if time.Now().After(rec.ExpiresAt) {
		if err := s.otpRepo.Delete(ctx, phone, purpose); err != nil {
			logger.Error("[VerifyCode] err otpRepo.Delete expired", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return nil, errors.SetCustomError(constant.ErrOTPExpired)
	}

	if req.Code != rec.Code {
		attempts := rec.Attempts + 1
		// Final failed attempt exhausts the record outright instead of
		// reporting "0 attempts remaining" as if a retry were possible.
		if attempts >= constant.OTPMaxAttempts {
			if err := s.otpRepo.Delete(ctx, phone, purpose); err != nil {
				logger.Error("[VerifyCode] err otpRepo.Delete exhausted", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			return nil, errors.SetCustomError(constant.ErrOTPAttemptsExceeded)
		}

		if err := s.otpRepo.UpdateAttempts(ctx, rec.ID, attempts); err != nil {
			logger.Error("[VerifyCode] err otpRepo.UpdateAttempts", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		remaining := constant.OTPMaxAttempts - attempts
		return nil, errors.SetCustomErrorDetail(constant.ErrOTPIncorrect,
			fmt.Sprintf("incorrect code, %d attempts remaining", remaining))
	}

	if err := s.otpRepo.MarkVerified(ctx, rec.ID); err != nil {
		logger.Error("[VerifyCode] err otpRepo.MarkVerified", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OTPVerifyResponse{Message: "phone number verified"}, nil
}

// CheckStatus is a read-only probe; it never deletes a stale row. Only
// VerifyCode performs the expiry-triggered delete.
func (s *otpAppImpl) CheckStatus(ctx context.Context, phone, purpose string) (*model.OTPStatusResponse, error) {
	p := constant.OTPPurpose(purpose)
	if !p.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	rec, err := s.otpRepo.Get(ctx, NormalizePhone(phone), p)
	if err != nil {
		logger.Error("[CheckStatus] err otpRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil {
		return &model.OTPStatusResponse{Exists: false}, nil
	}

	return &model.OTPStatusResponse{
		Exists:   true,
		Verified: rec.Verified,
		Expired:  time.Now().After(rec.ExpiresAt),
	}, nil
}

func (s *otpAppImpl) ConsumeAndDelete(ctx context.Context, phone string, purpose constant.OTPPurpose) error {
	if err := s.otpRepo.Delete(ctx, NormalizePhone(phone), purpose); err != nil {
		logger.Error("[ConsumeAndDelete] err otpRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// CleanupExpired is the reaper entry point invoked via the internal API when
// a delayed expiration message fires. It only removes rows that are already
// expired and unverified, so observable behavior is unchanged.
func (s *otpAppImpl) CleanupExpired(ctx context.Context, phone, purpose string) error {
	p := constant.OTPPurpose(purpose)
	if !p.Valid() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	deleted, err := s.otpRepo.DeleteExpired(ctx, NormalizePhone(phone), p, time.Now())
	if err != nil {
		logger.Error("[CleanupExpired] err otpRepo.DeleteExpired", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if deleted > 0 {
		logger.Debug("[CleanupExpired] removed stale OTP", zap.String("phone", phone), zap.String("purpose", purpose))
	}
	return nil
}

// NormalizePhone strips whitespace before validation and lookup.
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func generateCode() (string, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(constant.OTPCodeMax-constant.OTPCodeMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+constant.OTPCodeMin, 10), nil
}
