package member_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appmember "github.com/ayoubkd/party-membership/application/member"
	"github.com/ayoubkd/party-membership/cmd/config"
	"github.com/ayoubkd/party-membership/constant"
	otpappmocks "github.com/ayoubkd/party-membership/mocks/application/otp"
	eventmocks "github.com/ayoubkd/party-membership/mocks/repository/event"
	membermocks "github.com/ayoubkd/party-membership/mocks/repository/member"
	otpmocks "github.com/ayoubkd/party-membership/mocks/repository/otp"
	redismocks "github.com/ayoubkd/party-membership/mocks/repository/redis"
	subscriptionmocks "github.com/ayoubkd/party-membership/mocks/repository/subscription"
	txmocks "github.com/ayoubkd/party-membership/mocks/repository/tx"
	"github.com/ayoubkd/party-membership/model"
	cerr "github.com/ayoubkd/party-membership/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type memberAppFields struct {
	config           *config.Config
	txRepo           *txmocks.TxRepository
	memberRepo       *membermocks.MemberRepository
	otpRepo          *otpmocks.OTPRepository
	otpApp           *otpappmocks.OTPApp
	eventRepo        *eventmocks.EventRepository
	subscriptionRepo *subscriptionmocks.SubscriptionRepository
	redisRepo        *redismocks.RedisRepository
}

func newMemberAppFields(t *testing.T) memberAppFields {
	return memberAppFields{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:      "test-secret-key-for-jwt-signing",
				JWTExpiration:  time.Hour,
				SessionExpTime: time.Hour,
			},
		},
		txRepo:           txmocks.NewTxRepository(t),
		memberRepo:       membermocks.NewMemberRepository(t),
		otpRepo:          otpmocks.NewOTPRepository(t),
		otpApp:           otpappmocks.NewOTPApp(t),
		eventRepo:        eventmocks.NewEventRepository(t),
		subscriptionRepo: subscriptionmocks.NewSubscriptionRepository(t),
		redisRepo:        redismocks.NewRedisRepository(t),
	}
}

func newMemberApp(f memberAppFields) appmember.MemberApp {
	return appmember.NewMemberApp(f.config, f.txRepo, f.memberRepo, f.otpRepo, f.otpApp, f.eventRepo, f.subscriptionRepo, f.redisRepo)
}

func verifiedOTP(phone string, purpose constant.OTPPurpose) *model.OTPEntity {
	return &model.OTPEntity{
		ID:        1,
		Phone:     phone,
		Purpose:   purpose,
		Code:      "654321",
		ExpiresAt: time.Now().Add(time.Minute),
		Verified:  true,
	}
}

func TestMemberApp_Register(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name       string
		req        *model.RegisterRequest
		mockCall   func(f memberAppFields)
		wantNumber string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: first member of Alger gets sequence 000001",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0561234567",
				Password:      "secret123",
				Wilaya:        "Alger",
				Commune:       "Bab El Oued",
				FirstJoinYear: 2024,
			},
			mockCall: func(f memberAppFields) {
				tx := &sqlx.Tx{}
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(verifiedOTP("0561234567", constant.OTPPurposeRegistration), nil).
					Once()
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(nil, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.memberRepo.
					On("CountByNumberPrefixTx", mock.Anything, tx, "162024").
					Return(int64(0), nil).
					Once()
				f.memberRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.MemberEntity) bool {
						return ent.MembershipNumber == "162024000001" &&
							ent.Status == constant.MemberStatusActive &&
							ent.PasswordHash != ""
					})).
					Return(uint64(41), nil).
					Once()
				f.eventRepo.
					On("InsertTx", mock.Anything, tx, uint64(41), constant.EventRegistered, mock.AnythingOfType("string")).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.otpApp.
					On("ConsumeAndDelete", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(nil).
					Once()
			},
			wantNumber: "162024000001",
		},
		{
			name: "success: existing members shift the sequence",
			req: &model.RegisterRequest{
				FirstName:     "Sara",
				LastName:      "Khelifi",
				Phone:         "0661234567",
				Password:      "secret123",
				Wilaya:        "Alger",
				FirstJoinYear: 2024,
			},
			mockCall: func(f memberAppFields) {
				tx := &sqlx.Tx{}
				f.otpRepo.
					On("Get", mock.Anything, "0661234567", constant.OTPPurposeRegistration).
					Return(verifiedOTP("0661234567", constant.OTPPurposeRegistration), nil).
					Once()
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0661234567"}).
					Return(nil, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.memberRepo.
					On("CountByNumberPrefixTx", mock.Anything, tx, "162024").
					Return(int64(1), nil).
					Once()
				f.memberRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.MemberEntity) bool {
						return ent.MembershipNumber == "162024000002"
					})).
					Return(uint64(42), nil).
					Once()
				f.eventRepo.
					On("InsertTx", mock.Anything, tx, uint64(42), constant.EventRegistered, mock.AnythingOfType("string")).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.otpApp.
					On("ConsumeAndDelete", mock.Anything, "0661234567", constant.OTPPurposeRegistration).
					Return(nil).
					Once()
			},
			wantNumber: "162024000002",
		},
		{
			name: "success: foreign resident uses the 88 prefix",
			req: &model.RegisterRequest{
				FirstName:       "Yacine",
				LastName:        "Hadj",
				Phone:           "+213761234567",
				Password:        "secret123",
				ForeignResident: true,
				FirstJoinYear:   1997,
			},
			mockCall: func(f memberAppFields) {
				tx := &sqlx.Tx{}
				f.otpRepo.
					On("Get", mock.Anything, "+213761234567", constant.OTPPurposeRegistration).
					Return(verifiedOTP("+213761234567", constant.OTPPurposeRegistration), nil).
					Once()
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "+213761234567"}).
					Return(nil, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.memberRepo.
					On("CountByNumberPrefixTx", mock.Anything, tx, "881997").
					Return(int64(41), nil).
					Once()
				f.memberRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.MemberEntity) bool {
						return ent.MembershipNumber == "881997000042"
					})).
					Return(uint64(43), nil).
					Once()
				f.eventRepo.
					On("InsertTx", mock.Anything, tx, uint64(43), constant.EventRegistered, mock.AnythingOfType("string")).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.otpApp.
					On("ConsumeAndDelete", mock.Anything, "+213761234567", constant.OTPPurposeRegistration).
					Return(nil).
					Once()
			},
			wantNumber: "881997000042",
		},
		{
			name: "success: duplicate number from a concurrent insert triggers one retry",
			req: &model.RegisterRequest{
				FirstName:     "Nour",
				LastName:      "Saidi",
				Phone:         "0571234567",
				Password:      "secret123",
				Wilaya:        "Oran",
				FirstJoinYear: 2023,
			},
			mockCall: func(f memberAppFields) {
				tx := &sqlx.Tx{}
				f.otpRepo.
					On("Get", mock.Anything, "0571234567", constant.OTPPurposeRegistration).
					Return(verifiedOTP("0571234567", constant.OTPPurposeRegistration), nil).
					Once()
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0571234567"}).
					Return(nil, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				f.memberRepo.
					On("CountByNumberPrefixTx", mock.Anything, tx, "312023").
					Return(int64(7), nil).
					Once()
				f.memberRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.MemberEntity) bool {
						return ent.MembershipNumber == "312023000008"
					})).
					Return(uint64(0), &mysql.MySQLError{Number: 1062}).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.memberRepo.
					On("CountByNumberPrefixTx", mock.Anything, tx, "312023").
					Return(int64(8), nil).
					Once()
				f.memberRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.MemberEntity) bool {
						return ent.MembershipNumber == "312023000009"
					})).
					Return(uint64(44), nil).
					Once()
				f.eventRepo.
					On("InsertTx", mock.Anything, tx, uint64(44), constant.EventRegistered, mock.AnythingOfType("string")).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.otpApp.
					On("ConsumeAndDelete", mock.Anything, "0571234567", constant.OTPPurposeRegistration).
					Return(nil).
					Once()
			},
			wantNumber: "312023000009",
		},
		{
			name: "error: unknown wilaya",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0561234567",
				Password:      "secret123",
				Wilaya:        "Atlantis",
				FirstJoinYear: 2024,
			},
			wantErr: true,
			errCode: constant.ErrUnknownWilaya,
		},
		{
			name: "error: join year before 1997",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0561234567",
				Password:      "secret123",
				Wilaya:        "Alger",
				FirstJoinYear: 1996,
			},
			wantErr: true,
			errCode: constant.ErrInvalidJoinYear,
		},
		{
			name: "error: join year in the future",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0561234567",
				Password:      "secret123",
				Wilaya:        "Alger",
				FirstJoinYear: currentYear + 1,
			},
			wantErr: true,
			errCode: constant.ErrInvalidJoinYear,
		},
		{
			name: "error: phone not a valid Algerian mobile",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0123456789",
				Password:      "secret123",
				Wilaya:        "Alger",
				FirstJoinYear: 2024,
			},
			wantErr: true,
			errCode: constant.ErrInvalidPhone,
		},
		{
			name: "error: registration OTP never verified",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0561234567",
				Password:      "secret123",
				Wilaya:        "Alger",
				FirstJoinYear: 2024,
			},
			mockCall: func(f memberAppFields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPNotVerified,
		},
		{
			name: "error: phone already registered",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0561234567",
				Password:      "secret123",
				Wilaya:        "Alger",
				FirstJoinYear: 2024,
			},
			mockCall: func(f memberAppFields) {
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(verifiedOTP("0561234567", constant.OTPPurposeRegistration), nil).
					Once()
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(&model.MemberEntity{ID: 9, Phone: "0561234567"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrPhoneExists,
		},
		{
			name: "error: wilaya-year capacity exhausted",
			req: &model.RegisterRequest{
				FirstName:     "Amine",
				LastName:      "Benali",
				Phone:         "0561234567",
				Password:      "secret123",
				Wilaya:        "Alger",
				FirstJoinYear: 2024,
			},
			mockCall: func(f memberAppFields) {
				tx := &sqlx.Tx{}
				f.otpRepo.
					On("Get", mock.Anything, "0561234567", constant.OTPPurposeRegistration).
					Return(verifiedOTP("0561234567", constant.OTPPurposeRegistration), nil).
					Once()
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(nil, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.memberRepo.
					On("CountByNumberPrefixTx", mock.Anything, tx, "162024").
					Return(int64(999999), nil).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrSequenceExhausted,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newMemberAppFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newMemberApp(f)

			got, err := app.Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.MembershipNumber != tt.wantNumber {
				t.Fatalf("membership number = %s, want %s", got.MembershipNumber, tt.wantNumber)
			}
			if len(got.MembershipNumber) != constant.MembershipNumberLen {
				t.Fatalf("membership number length = %d", len(got.MembershipNumber))
			}
		})
	}
}

func TestMemberApp_QuickRegister(t *testing.T) {
	t.Run("success: minimal data still issues a number, no password set", func(t *testing.T) {
		f := newMemberAppFields(t)
		tx := &sqlx.Tx{}

		f.otpRepo.
			On("Get", mock.Anything, "0551234567", constant.OTPPurposeRegistration).
			Return(verifiedOTP("0551234567", constant.OTPPurposeRegistration), nil).
			Once()
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{Phone: "0551234567"}).
			Return(nil, nil).
			Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.memberRepo.
			On("CountByNumberPrefixTx", mock.Anything, tx, "252020").
			Return(int64(12), nil).
			Once()
		f.memberRepo.
			On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.MemberEntity) bool {
				return ent.MembershipNumber == "252020000013" && ent.PasswordHash == ""
			})).
			Return(uint64(50), nil).
			Once()
		f.eventRepo.
			On("InsertTx", mock.Anything, tx, uint64(50), constant.EventRegistered, mock.AnythingOfType("string")).
			Return(nil).
			Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.otpApp.
			On("ConsumeAndDelete", mock.Anything, "0551234567", constant.OTPPurposeRegistration).
			Return(nil).
			Once()

		app := newMemberApp(f)
		got, err := app.QuickRegister(context.Background(), &model.QuickRegisterRequest{
			FirstName:     "Lina",
			LastName:      "Mansouri",
			Phone:         "0551234567",
			Wilaya:        "Constantine",
			FirstJoinYear: 2020,
		})
		if err != nil {
			t.Fatalf("QuickRegister() error = %v", err)
		}
		if got.MembershipNumber != "252020000013" {
			t.Fatalf("membership number = %s", got.MembershipNumber)
		}
	})

	t.Run("error: unverified OTP blocks quick registration", func(t *testing.T) {
		f := newMemberAppFields(t)
		f.otpRepo.
			On("Get", mock.Anything, "0551234567", constant.OTPPurposeRegistration).
			Return(&model.OTPEntity{Phone: "0551234567", Verified: false}, nil).
			Once()

		app := newMemberApp(f)
		_, err := app.QuickRegister(context.Background(), &model.QuickRegisterRequest{
			FirstName:     "Lina",
			LastName:      "Mansouri",
			Phone:         "0551234567",
			Wilaya:        "Constantine",
			FirstJoinYear: 2020,
		})

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrOTPNotVerified] {
			t.Fatalf("error code = %s", ce.ErrorCode())
		}
	})
}

func TestMemberApp_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	activeMember := &model.MemberEntity{
		ID:               41,
		MembershipNumber: "162024000001",
		FirstName:        "Amine",
		LastName:         "Benali",
		Phone:            "0561234567",
		PasswordHash:     string(hashed),
		Status:           constant.MemberStatusActive,
	}

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f memberAppFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with phone",
			req:  &model.LoginRequest{Identifier: "0561234567", Password: "secret123"},
			mockCall: func(f memberAppFields) {
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(activeMember, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(41), time.Hour).
					Return(nil).
					Once()
				f.eventRepo.
					On("Insert", mock.Anything, uint64(41), constant.EventLoggedIn, "").
					Return(nil).
					Once()
			},
		},
		{
			name: "success: login with membership number",
			req:  &model.LoginRequest{Identifier: "162024000001", Password: "secret123"},
			mockCall: func(f memberAppFields) {
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{MembershipNumber: "162024000001"}).
					Return(activeMember, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(41), time.Hour).
					Return(nil).
					Once()
				f.eventRepo.
					On("Insert", mock.Anything, uint64(41), constant.EventLoggedIn, "").
					Return(nil).
					Once()
			},
		},
		{
			name: "error: unknown identifier",
			req:  &model.LoginRequest{Identifier: "0599999999", Password: "secret123"},
			mockCall: func(f memberAppFields) {
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0599999999"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: suspended member cannot log in",
			req:  &model.LoginRequest{Identifier: "0561234567", Password: "secret123"},
			mockCall: func(f memberAppFields) {
				suspended := *activeMember
				suspended.Status = constant.MemberStatusSuspended
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(&suspended, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrMemberSuspended,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "0561234567", Password: "wrong"},
			mockCall: func(f memberAppFields) {
				f.memberRepo.
					On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
					Return(activeMember, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newMemberAppFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newMemberApp(f)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Token == "" {
				t.Fatal("expected a signed token")
			}
			if got.MembershipNumber != "162024000001" {
				t.Fatalf("membership number = %s", got.MembershipNumber)
			}
		})
	}
}

func TestMemberApp_ResetPassword(t *testing.T) {
	t.Run("success: verified reset OTP allows a new password", func(t *testing.T) {
		f := newMemberAppFields(t)
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
			Return(&model.MemberEntity{ID: 41, Phone: "0561234567"}, nil).
			Once()
		f.otpRepo.
			On("Get", mock.Anything, "0561234567", constant.OTPPurposePasswordReset).
			Return(verifiedOTP("0561234567", constant.OTPPurposePasswordReset), nil).
			Once()
		f.memberRepo.
			On("UpdatePassword", mock.Anything, uint64(41), mock.AnythingOfType("string")).
			Return(nil).
			Once()
		f.otpApp.
			On("ConsumeAndDelete", mock.Anything, "0561234567", constant.OTPPurposePasswordReset).
			Return(nil).
			Once()
		f.eventRepo.
			On("Insert", mock.Anything, uint64(41), constant.EventPasswordChanged, "").
			Return(nil).
			Once()

		app := newMemberApp(f)
		if err := app.ResetPassword(context.Background(), &model.ResetPasswordRequest{
			Phone:       "0561234567",
			NewPassword: "newsecret1",
		}); err != nil {
			t.Fatalf("ResetPassword() error = %v", err)
		}
	})

	t.Run("error: reset without a verified OTP", func(t *testing.T) {
		f := newMemberAppFields(t)
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{Phone: "0561234567"}).
			Return(&model.MemberEntity{ID: 41, Phone: "0561234567"}, nil).
			Once()
		f.otpRepo.
			On("Get", mock.Anything, "0561234567", constant.OTPPurposePasswordReset).
			Return(nil, nil).
			Once()

		app := newMemberApp(f)
		err := app.ResetPassword(context.Background(), &model.ResetPasswordRequest{
			Phone:       "0561234567",
			NewPassword: "newsecret1",
		})

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrOTPNotVerified] {
			t.Fatalf("error code = %s", ce.ErrorCode())
		}
	})
}

func TestMemberApp_ChangePhone(t *testing.T) {
	t.Run("success: OTP verified on the new number", func(t *testing.T) {
		f := newMemberAppFields(t)
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{ID: uint64(41)}).
			Return(&model.MemberEntity{ID: 41, Phone: "0561234567"}, nil).
			Once()
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{Phone: "0661234567"}).
			Return(nil, nil).
			Once()
		f.otpRepo.
			On("Get", mock.Anything, "0661234567", constant.OTPPurposePhoneChange).
			Return(verifiedOTP("0661234567", constant.OTPPurposePhoneChange), nil).
			Once()
		f.memberRepo.
			On("UpdatePhone", mock.Anything, uint64(41), "0661234567").
			Return(nil).
			Once()
		f.otpApp.
			On("ConsumeAndDelete", mock.Anything, "0661234567", constant.OTPPurposePhoneChange).
			Return(nil).
			Once()
		f.eventRepo.
			On("Insert", mock.Anything, uint64(41), constant.EventPhoneChanged, "0561234567 -> 0661234567").
			Return(nil).
			Once()

		app := newMemberApp(f)
		if err := app.ChangePhone(context.Background(), 41, &model.ChangePhoneRequest{NewPhone: "0661234567"}); err != nil {
			t.Fatalf("ChangePhone() error = %v", err)
		}
	})

	t.Run("error: new phone already belongs to another member", func(t *testing.T) {
		f := newMemberAppFields(t)
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{ID: uint64(41)}).
			Return(&model.MemberEntity{ID: 41, Phone: "0561234567"}, nil).
			Once()
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{Phone: "0661234567"}).
			Return(&model.MemberEntity{ID: 77, Phone: "0661234567"}, nil).
			Once()

		app := newMemberApp(f)
		err := app.ChangePhone(context.Background(), 41, &model.ChangePhoneRequest{NewPhone: "0661234567"})

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrPhoneExists] {
			t.Fatalf("error code = %s", ce.ErrorCode())
		}
	})
}

func TestMemberApp_GetCard(t *testing.T) {
	t.Run("success: foreign resident card shows Etranger", func(t *testing.T) {
		f := newMemberAppFields(t)
		f.memberRepo.
			On("Get", mock.Anything, &model.MemberFilter{ID: uint64(43)}).
			Return(&model.MemberEntity{
				ID:               43,
				MembershipNumber: "881997000042",
				FirstName:        "Yacine",
				LastName:         "Hadj",
				ForeignResident:  true,
				FirstJoinYear:    1997,
				Status:           constant.MemberStatusActive,
			}, nil).
			Once()

		app := newMemberApp(f)
		card, err := app.GetCard(context.Background(), 43)
		if err != nil {
			t.Fatalf("GetCard() error = %v", err)
		}
		if card.Wilaya != "Etranger" {
			t.Fatalf("wilaya = %q", card.Wilaya)
		}
		if card.FullName != "Yacine Hadj" {
			t.Fatalf("full name = %q", card.FullName)
		}
	})
}
