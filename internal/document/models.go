package document

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Document is the persistent note model. Content is an opaque HTML string
// produced by the editor frontend; the backend never interprets it beyond
// carrying it to and from storage. UpdatedAt is milliseconds since epoch to
// stay byte-compatible with the payloads the web client stores and sorts on.
type Document struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Content   string `json:"content" bson:"content"`
	UpdatedAt int64  `json:"updatedAt" bson:"updatedAt"`
}

// Fields carries a partial update. Nil pointers leave the field untouched.
type Fields struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// NewID returns a random 16-hex-char id. Uniqueness is probabilistic:
// collisions across the lifetime of a single installation are accepted as
// negligible, not impossible.
func NewID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Now returns the current time in epoch milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}
