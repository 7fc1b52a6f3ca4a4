package models

import (
	"time"
)

// Comment is a remark left on an issue. Immutable once created; the
// issue's comment list is append-only in insertion order.
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
