package model

import (
	"time"

	"github.com/ayoubkd/party-membership/constant"
)

// OTPEntity represents the otp_code table entity. At most one row exists per
// (phone, purpose) pair, enforced by a unique index.
type OTPEntity struct {
	ID        uint64              `db:"id" json:"id"`
	Phone     string              `db:"phone" json:"phone"`
	Purpose   constant.OTPPurpose `db:"purpose" json:"purpose"`
	Code      string              `db:"code" json:"-"`
	ExpiresAt time.Time           `db:"expires_at" json:"expires_at"`
	Attempts  int                 `db:"attempts" json:"attempts"`
	Verified  bool                `db:"verified" json:"verified"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
}

type OTPRequestRequest struct {
	Phone   string `json:"phone" validate:"required"`
	Purpose string `json:"purpose" validate:"required"`
}

type OTPRequestResponse struct {
	Message string `json:"message"`
	// DevCode carries the raw code outside production only.
	DevCode string `json:"dev_code,omitempty"`
}

type OTPVerifyRequest struct {
	Phone   string `json:"phone" validate:"required"`
	Purpose string `json:"purpose" validate:"required"`
	Code    string `json:"code" validate:"required,len=6,numeric"`
}

type OTPVerifyResponse struct {
	Message string `json:"message"`
}

type OTPStatusResponse struct {
	Exists   bool `json:"exists"`
	Verified bool `json:"verified"`
	Expired  bool `json:"expired,omitempty"`
}
