package model

import "time"

// AdminEntity represents the admin table entity
type AdminEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	FullName     string     `db:"full_name" json:"full_name"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	FullName string `json:"full_name"`
	Token    string `json:"token"`
}

type UpdateMemberStatusRequest struct {
	Status int    `json:"status" validate:"required,oneof=1 2"`
	Reason string `json:"reason"`
}

// WilayaCount is one row of the members-per-wilaya statistic
type WilayaCount struct {
	Wilaya string `db:"wilaya" json:"wilaya"`
	Count  int64  `db:"count" json:"count"`
}

// YearCount is one row of the members-per-join-year statistic
type YearCount struct {
	Year  int   `db:"year" json:"year"`
	Count int64 `db:"count" json:"count"`
}

type StatisticsResponse struct {
	TotalMembers     int64         `json:"total_members"`
	ActiveMembers    int64         `json:"active_members"`
	NewThisYear      int64         `json:"new_this_year"`
	MembersPerWilaya []WilayaCount `json:"members_per_wilaya"`
	MembersPerYear   []YearCount   `json:"members_per_year"`
}
