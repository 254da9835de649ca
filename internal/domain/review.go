package domain

import "time"

type Review struct {
	ID        int32     `json:"id"`
	EventID   int32     `json:"event_id"`
	UserID    int32     `json:"user_id"`
	Rating    int32     `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	IsVisible bool      `json:"is_visible"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Discussion is one node in an event's flat two-level thread: a top-level
// post (ParentID nil) or a single-depth reply.
type Discussion struct {
	ID        int32     `json:"id"`
	EventID   int32     `json:"event_id"`
	UserID    int32     `json:"user_id"`
	ParentID  *int32    `json:"parent_id,omitempty"`
	Content   string    `json:"content"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedOn time.Time `json:"created_on"`
}
