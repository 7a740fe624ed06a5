package model

import "time"

// ActivityEntity is a public activity (news or event) shown on the site
type ActivityEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	EventDate *time.Time `db:"event_date" json:"event_date,omitempty"`
	ImageURL  string     `db:"image_url" json:"image_url,omitempty"`
	Published bool       `db:"published" json:"published"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// GalleryItemEntity is one photo of the public gallery
type GalleryItemEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	TakenAt   *time.Time `db:"taken_at" json:"taken_at,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LeaderEntity is one leadership bio, ordered by rank on the public page
type LeaderEntity struct {
	ID        uint64     `db:"id" json:"id"`
	FullName  string     `db:"full_name" json:"full_name"`
	Role      string     `db:"role" json:"role"`
	Bio       string     `db:"bio" json:"bio"`
	PhotoURL  string     `db:"photo_url" json:"photo_url,omitempty"`
	Rank      int        `db:"rank" json:"rank"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type ActivityRequest struct {
	Title     string     `json:"title" validate:"required"`
	Body      string     `json:"body" validate:"required"`
	EventDate *time.Time `json:"event_date,omitempty"`
	ImageURL  string     `json:"image_url" validate:"omitempty,url"`
	Published bool       `json:"published"`
}

type GalleryItemRequest struct {
	Title    string     `json:"title" validate:"required"`
	ImageURL string     `json:"image_url" validate:"required,url"`
	TakenAt  *time.Time `json:"taken_at,omitempty"`
}

type LeaderRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
	Rank     int    `json:"rank"`
}

type ActivityListResponse struct {
	Items      []ActivityEntity `json:"items"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
}
