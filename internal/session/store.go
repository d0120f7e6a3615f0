// Package session keeps in-progress booking dialogues between chat requests.
package session

import (
	"context"
	"time"

	"bodyshop-chat/internal/booking"
)

// DefaultTTL bounds how long an unconfirmed booking dialogue is kept.
const DefaultTTL = 30 * time.Minute

// Store persists booking sessions keyed by session id. Entries expire after
// the store's TTL; an expired session behaves as if it never existed.
type Store interface {
	Get(ctx context.Context, id string) (booking.Session, bool, error)
	Set(ctx context.Context, s booking.Session) error
	Delete(ctx context.Context, id string) error
}
