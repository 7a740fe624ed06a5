package model

import "time"

// MemberEventEntity is one append-only entry of a member's personal activity log
type MemberEventEntity struct {
	ID        uint64    `db:"id" json:"id"`
	MemberID  uint64    `db:"member_id" json:"member_id"`
	EventType string    `db:"event_type" json:"event_type"`
	Detail    string    `db:"detail" json:"detail,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type MemberEventListResponse struct {
	Items []MemberEventEntity `json:"items"`
}
