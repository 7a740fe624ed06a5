package model

import (
	"time"

	"github.com/ayoubkd/party-membership/constant"
)

// MemberEntity represents the member table entity
type MemberEntity struct {
	ID               uint64                `db:"id" json:"id"`
	MembershipNumber string                `db:"membership_number" json:"membership_number"`
	FirstName        string                `db:"first_name" json:"first_name"`
	LastName         string                `db:"last_name" json:"last_name"`
	Phone            string                `db:"phone" json:"phone"`
	Email            string                `db:"email" json:"email,omitempty"`
	PasswordHash     string                `db:"password_hash" json:"-"`
	Wilaya           string                `db:"wilaya" json:"wilaya"`
	Commune          string                `db:"commune" json:"commune,omitempty"`
	ForeignResident  bool                  `db:"foreign_resident" json:"foreign_resident"`
	FirstJoinYear    int                   `db:"first_join_year" json:"first_join_year"`
	PhotoURL         string                `db:"photo_url" json:"photo_url,omitempty"`
	Status           constant.MemberStatus `db:"status" json:"status"`
	CreatedAt        time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

// MemberFilter for querying a single member
type MemberFilter struct {
	ID               uint64
	MembershipNumber string
	Phone            string
}

// MemberListFilter for the admin member listing
type MemberListFilter struct {
	Wilaya   string `json:"wilaya"`
	JoinYear int    `json:"join_year"`
	Status   int    `json:"status"`
	Search   string `json:"search"` // matches name or phone
	Page     int    `json:"page"`
	PerPage  int    `json:"per_page"`
}

type MemberListResponse struct {
	Items      []MemberEntity `json:"items"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
}

// RegisterRequest for full member registration
type RegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Wilaya          string `json:"wilaya"`
	Commune         string `json:"commune"`
	ForeignResident bool   `json:"foreign_resident"`
	FirstJoinYear   int    `json:"first_join_year" validate:"required"`
}

// QuickRegisterRequest for the short registration flow (no portal account yet)
type QuickRegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Wilaya          string `json:"wilaya"`
	ForeignResident bool   `json:"foreign_resident"`
	FirstJoinYear   int    `json:"first_join_year" validate:"required"`
}

type RegisterResponse struct {
	MembershipNumber string `json:"membership_number"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
}

// LoginRequest accepts phone or membership number as identifier
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	MembershipNumber string `json:"membership_number"`
	Token            string `json:"token"`
}

// UpdateProfileRequest carries the member-editable profile fields
type UpdateProfileRequest struct {
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Commune *string `json:"commune,omitempty"`
}

type UpdatePhotoRequest struct {
	PhotoURL string `json:"photo_url" validate:"required,url"`
}

// ResetPasswordRequest completes a password reset after OTP verification
type ResetPasswordRequest struct {
	Phone       string `json:"phone" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ChangePhoneRequest moves the account to a new, OTP-verified phone
type ChangePhoneRequest struct {
	NewPhone string `json:"new_phone" validate:"required"`
}

// MembershipCard is the payload rendered on the digital card
type MembershipCard struct {
	MembershipNumber string                `json:"membership_number"`
	FullName         string                `json:"full_name"`
	Wilaya           string                `json:"wilaya"`
	FirstJoinYear    int                   `json:"first_join_year"`
	Status           constant.MemberStatus `json:"status"`
	PhotoURL         string                `json:"photo_url,omitempty"`
}
