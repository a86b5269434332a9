package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the current state of a subscription as reported by the
// billing subsystem. The engine only reads it.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Subscription is the user's current subscription record. Lifecycle is owned
// by the billing subsystem: pending -> active on payment confirmation,
// active -> cancelled on user cancellation (usable until EndDate),
// active/cancelled -> expired once EndDate passes.
//
// The absence of a record is equivalent to an implicit free plan with active
// status and no end date; callers represent that as a nil *Subscription.
type Subscription struct {
	ID              string
	UserID          uuid.UUID
	PlanName        string
	Status          Status
	StartDate       time.Time
	EndDate         *time.Time
	AutoRenew       bool
	NextBillingDate *time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the subscription currently grants paid access.
func (s *Subscription) IsActive() bool {
	return s.IsActiveAt(time.Now().UTC())
}

// IsActiveAt is the fixed-time variant of IsActive. Only the active status
// grants access, and a past EndDate revokes it even if the billing side has
// not yet flipped the status to expired.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	if s == nil {
		return true // implicit free plan
	}
	if s.Status != StatusActive {
		return false
	}
	if s.EndDate != nil && now.After(*s.EndDate) {
		return false
	}
	return true
}

// IsCancelled reports whether the subscription has been cancelled.
func (s *Subscription) IsCancelled() bool {
	return s != nil && s.Status == StatusCancelled
}

// Plan returns the subscription's plan name, or empty for the implicit free
// plan of a nil subscription.
func (s *Subscription) Plan() string {
	if s == nil {
		return ""
	}
	return s.PlanName
}
