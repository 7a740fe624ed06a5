package otp_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appotp "github.com/ayoubkd/party-membership/application/otp"
	"github.com/ayoubkd/party-membership/cmd/config"
	"github.com/ayoubkd/party-membership/constant"
	membermocks "github.com/ayoubkd/party-membership/mocks/repository/member"
	otpmocks "github.com/ayoubkd/party-membership/mocks/repository/otp"
	"github.com/ayoubkd/party-membership/model"
	cerr "github.com/ayoubkd/party-membership/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestOTPApp_RequestCode(t *testing.T) {
	type fields struct {
		config     *config.Config
		otpRepo    *otpmocks.OTPRepository
		memberRepo *membermocks.MemberRepository
	}
	type args struct {
		ctx context.Context
		req *model.OTPRequestRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		check    func(t *testing.T, got *model.OTPRequestResponse)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: registration code with dev code outside production",
			fields: fields{
				config: &config.Config{
					Environment: "development",
					OTP:         config.OTPConfig{CodeExpiration: 5 * time.Minute},
				},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPRequestRequest{
					Phone:   "0561234567",
					Purpose: "registration",
				},
			},
			mockCall: func(f fields) {
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(nil, nil).
					Once()

				f.otpRepo.
					On("Replace", mock.Anything, mock.MatchedBy(func(ent *model.OTPEntity) bool {
						return ent.Phone == "0561234567" &&
							ent.Purpose == constant.OTPPurposeRegistration &&
							len(ent.Code) == 6 &&
							ent.Attempts == 0 &&
							!ent.Verified
					})).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.OTPRequestResponse) {
				if got.Message != "verification code sent" {
					t.Fatalf("message = %q", got.Message)
				}
				if len(got.DevCode) != 6 {
					t.Fatalf("dev code = %q, want 6 digits", got.DevCode)
				}
			},
		},
		{
			name: "success: no dev code in production",
			fields: fields{
				config: &config.Config{
					Environment: "production",
					OTP:         config.OTPConfig{CodeExpiration: 5 * time.Minute},
				},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPRequestRequest{
					Phone:   "+213561234567",
					Purpose: "password_reset",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Replace", mock.Anything, mock.AnythingOfType("*model.OTPEntity")).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.OTPRequestResponse) {
				if got.DevCode != "" {
					t.Fatalf("dev code leaked in production: %q", got.DevCode)
				}
			},
		},
		{
			name: "success: whitespace in phone is stripped before storage",
			fields: fields{
				config: &config.Config{
					Environment: "development",
					OTP:         config.OTPConfig{CodeExpiration: 5 * time.Minute},
				},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPRequestRequest{
					Phone:   " 0561 23 45 67 ",
					Purpose: "phone_change",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Replace", mock.Anything, mock.MatchedBy(func(ent *model.OTPEntity) bool {
						return ent.Phone == "0561234567"
					})).
					Return(nil).
					Once()
			},
			check: func(t *testing.T, got *model.OTPRequestResponse) {},
		},
		{
			name: "error: unknown purpose",
			fields: fields{
				config:     &config.Config{OTP: config.OTPConfig{CodeExpiration: 5 * time.Minute}},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPRequestRequest{
					Phone:   "0561234567",
					Purpose: "login",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: phone not a valid Algerian mobile",
			fields: fields{
				config:     &config.Config{OTP: config.OTPConfig{CodeExpiration: 5 * time.Minute}},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPRequestRequest{
					Phone:   "0461234567",
					Purpose: "registration",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidPhone,
		},
		{
			name: "error: registration code for already-registered phone",
			fields: fields{
				config:     &config.Config{OTP: config.OTPConfig{CodeExpiration: 5 * time.Minute}},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPRequestRequest{
					Phone:   "0561234567",
					Purpose: "registration",
				},
			},
			mockCall: func(f fields) {
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(&model.MemberEntity{ID: 1, Phone: "0561234567"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrPhoneExists,
		},
		{
			name: "error: repository Replace fails",
			fields: fields{
				config:     &config.Config{OTP: config.OTPConfig{CodeExpiration: 5 * time.Minute}},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPRequestRequest{
					Phone:   "0561234567",
					Purpose: "password_reset",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Replace", mock.Anything, mock.AnythingOfType("*model.OTPEntity")).
					Return(errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appotp.NewOTPApp(tt.fields.config, tt.fields.otpRepo, tt.fields.memberRepo, nil)

			got, err := app.RequestCode(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequestCode() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			tt.check(t, got)
		})
	}
}

func TestOTPApp_VerifyCode(t *testing.T) {
	type fields struct {
		config     *config.Config
		otpRepo    *otpmocks.OTPRepository
		memberRepo *membermocks.MemberRepository
	}
	type args struct {
		ctx context.Context
		req *model.OTPVerifyRequest
	}

	activeRecord := func(attempts int) *model.OTPEntity {
		return &model.OTPEntity{
			ID:        7,
			Phone:     "0561234567",
			Purpose:   constant.OTPPurposeRegistration,
			Code:      "654321",
			ExpiresAt: time.Now().Add(3 * time.Minute),
			Attempts:  attempts,
		}
	}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantMsg  string
	}{
		{
			name: "success: correct code marks record verified",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPVerifyRequest{
					Phone:   "0561234567",
					Purpose: "registration",
					Code:    "654321",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(activeRecord(2), nil).
					Once()
				f.otpRepo.
					On("MarkVerified", mock.Anything, uint64(7)).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: no code was ever sent",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPVerifyRequest{
					Phone:   "0561234567",
					Purpose: "registration",
					Code:    "654321",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPNotFound,
		},
		{
			name: "error: expired code is deleted on verify",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPVerifyRequest{
					Phone:   "0561234567",
					Purpose: "registration",
					Code:    "654321",
				},
			},
			mockCall: func(f fields) {
				rec := activeRecord(0)
				rec.ExpiresAt = time.Now().Add(-time.Second)
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(rec, nil).
					Once()
				f.otpRepo.
					On("Delete", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPExpired,
		},
		{
			name: "error: record already at the attempt ceiling",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPVerifyRequest{
					Phone:   "0561234567",
					Purpose: "registration",
					Code:    "654321",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(activeRecord(5), nil).
					Once()
				f.otpRepo.
					On("Delete", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPAttemptsExceeded,
		},
		{
			name: "error: wrong code increments attempts and reports remaining",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPVerifyRequest{
					Phone:   "0561234567",
					Purpose: "registration",
					Code:    "111111",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(activeRecord(0), nil).
					Once()
				f.otpRepo.
					On("UpdateAttempts", mock.Anything, uint64(7), 1).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPIncorrect,
			wantMsg: "incorrect code, 4 attempts remaining",
		},
		{
			name: "error: fifth wrong attempt deletes record instead of reporting zero remaining",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPVerifyRequest{
					Phone:   "0561234567",
					Purpose: "registration",
					Code:    "111111",
				},
			},
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(activeRecord(4), nil).
					Once()
				f.otpRepo.
					On("Delete", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPAttemptsExceeded,
		},
		{
			name: "error: unknown purpose",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OTPVerifyRequest{
					Phone:   "0561234567",
					Purpose: "login",
					Code:    "654321",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appotp.NewOTPApp(tt.fields.config, tt.fields.otpRepo, tt.fields.memberRepo, nil)

			got, err := app.VerifyCode(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyCode() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.wantMsg != "" && ce.Error() != tt.wantMsg {
					t.Fatalf("error message = %q, want %q", ce.Error(), tt.wantMsg)
				}
				return
			}

			if got == nil || got.Message != "phone number verified" {
				t.Fatalf("VerifyCode() = %+v", got)
			}
		})
	}
}

func TestOTPApp_CheckStatus(t *testing.T) {
	type fields struct {
		config     *config.Config
		otpRepo    *otpmocks.OTPRepository
		memberRepo *membermocks.MemberRepository
	}
	tests := []struct {
		name     string
		fields   fields
		phone    string
		purpose  string
		mockCall func(f fields)
		want     *model.OTPStatusResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: no active code",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			phone:   "0561234567",
			purpose: "registration",
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(nil, nil).
					Once()
			},
			want: &model.OTPStatusResponse{Exists: false},
		},
		{
			name: "success: expired code is reported but not deleted",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			phone:   "0561234567",
			purpose: "registration",
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(&model.OTPEntity{
						ID:        3,
						Phone:     "0561234567",
						Purpose:   constant.OTPPurposeRegistration,
						Code:      "654321",
						ExpiresAt: time.Now().Add(-time.Minute),
					}, nil).
					Once()
			},
			want: &model.OTPStatusResponse{Exists: true, Expired: true},
		},
		{
			name: "success: verified code",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			phone:   "0561234567",
			purpose: "phone_change",
			mockCall: func(f fields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposePhoneChange).
					Return(&model.OTPEntity{
						ID:        4,
						Phone:     "0561234567",
						Purpose:   constant.OTPPurposePhoneChange,
						Code:      "654321",
						ExpiresAt: time.Now().Add(time.Minute),
						Verified:  true,
					}, nil).
					Once()
			},
			want: &model.OTPStatusResponse{Exists: true, Verified: true},
		},
		{
			name: "error: unknown purpose",
			fields: fields{
				config:     &config.Config{},
				otpRepo:    otpmocks.NewOTPRepository(t),
				memberRepo: membermocks.NewMemberRepository(t),
			},
			phone:   "0561234567",
			purpose: "login",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appotp.NewOTPApp(tt.fields.config, tt.fields.otpRepo, tt.fields.memberRepo, nil)

			got, err := app.CheckStatus(context.Background(), tt.phone, tt.purpose)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Exists != tt.want.Exists || got.Verified != tt.want.Verified || got.Expired != tt.want.Expired {
				t.Fatalf("CheckStatus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOTPApp_ConsumeAndDelete(t *testing.T) {
	t.Run("success: removes the pair after the flow completes", func(t *testing.T) {
		otpRepo := otpmocks.NewOTPRepository(t)
		otpRepo.
			On("Delete", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
			Return(nil).
			Once()

		app := appotp.NewOTPApp(&config.Config{}, otpRepo, membermocks.NewMemberRepository(t), nil)
		if err := app.ConsumeAndDelete(context.Background(), "0561234567", constant.OTPPurposeRegistration); err != nil {
			t.Fatalf("ConsumeAndDelete() error = %v", err)
		}
	})

	t.Run("success: phone is normalized before the delete", func(t *testing.T) {
		otpRepo := otpmocks.NewOTPRepository(t)
		otpRepo.
			On("Delete", mock.Anything, "0561234567", constant.OTPPurposePasswordReset).
			Return(nil).
			Once()

		app := appotp.NewOTPApp(&config.Config{}, otpRepo, membermocks.NewMemberRepository(t), nil)
		if err := app.ConsumeAndDelete(context.Background(), " 0561 23 45 67 ", constant.OTPPurposePasswordReset); err != nil {
			t.Fatalf("ConsumeAndDelete() error = %v", err)
		}
	})

	t.Run("error: repository failure surfaces as internal", func(t *testing.T) {
		otpRepo := otpmocks.NewOTPRepository(t)
		otpRepo.
			On("Delete", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
			Return(errors.New("db gone")).
			Once()

		app := appotp.NewOTPApp(&config.Config{}, otpRepo, membermocks.NewMemberRepository(t), nil)
		err := app.ConsumeAndDelete(context.Background(), "0561234567", constant.OTPPurposeRegistration)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("error code = %s", ce.ErrorCode())
		}
	})
}

func TestOTPApp_CleanupExpired(t *testing.T) {
	t.Run("success: removes only stale rows", func(t *testing.T) {
		otpRepo := otpmocks.NewOTPRepository(t)
		otpRepo.
			On("DeleteExpired", mock.Anything, "0561234567", constant.OTPPurposeRegistration, mock.AnythingOfType("time.Time")).
			Return(int64(1), nil).
			Once()

		app := appotp.NewOTPApp(&config.Config{}, otpRepo, membermocks.NewMemberRepository(t), nil)
		if err := app.CleanupExpired(context.Background(), "0561234567", "registration"); err != nil {
			t.Fatalf("CleanupExpired() error = %v", err)
		}
	})

	t.Run("error: unknown purpose", func(t *testing.T) {
		app := appotp.NewOTPApp(&config.Config{}, otpmocks.NewOTPRepository(t), membermocks.NewMemberRepository(t), nil)
		err := app.CleanupExpired(context.Background(), "0561234567", "login")

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidRequest] {
			t.Fatalf("error code = %s", ce.ErrorCode())
		}
	})
}
