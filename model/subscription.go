package model

import "time"

// SubscriptionEntity is a recorded annual subscription payment
type SubscriptionEntity struct {
	ID            uint64    `db:"id" json:"id"`
	MemberID      uint64    `db:"member_id" json:"member_id"`
	Year          int       `db:"year" json:"year"`
	AmountDA      int64     `db:"amount_da" json:"amount_da"`
	ReceiptNumber string    `db:"receipt_number" json:"receipt_number"`
	RecordedBy    uint64    `db:"recorded_by" json:"recorded_by"`
	PaidAt        time.Time `db:"paid_at" json:"paid_at"`
}

type RecordSubscriptionRequest struct {
	MemberID uint64 `json:"member_id" validate:"required"`
	Year     int    `json:"year" validate:"required"`
	AmountDA int64  `json:"amount_da" validate:"required,gt=0"`
}

type SubscriptionListResponse struct {
	Items []SubscriptionEntity `json:"items"`
}
