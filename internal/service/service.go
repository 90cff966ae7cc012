package service

import (
	"context"
	"time"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
	"github.com/vodninamlyn/wedding-rsvp/internal/pkg/countdown"
)

// RsvpService covers the public side of the site: submitting the form and
// the presentational data (wedding info, countdown, catalogs).
type RsvpService interface {
	Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error)
	WeddingInfo() *entity.WeddingInfo
	Countdown(now time.Time) *CountdownResult
}

// AdminService covers the dashboard: listing, editing and deleting
// submissions plus the derived statistics.
type AdminService interface {
	List(ctx context.Context) ([]entity.RsvpSubmission, error)
	UpdateAttendee(ctx context.Context, attendeeID string, req *UpdateAttendeeRequest) error
	DeleteGroup(ctx context.Context, primaryID string, confirmed bool) error
	Stats(ctx context.Context) (*entity.RsvpStats, error)

	// RefreshStats recomputes the aggregates bypassing the cache; the
	// background worker uses it to keep the dashboard warm.
	RefreshStats(ctx context.Context) (*entity.RsvpStats, error)
}

// AuthService issues and verifies the admin session tokens. Session storage
// and refresh stay with the client; the backend only answers "is this token
// a current session".
type AuthService interface {
	Login(username, password string) (string, error)
	VerifySession(token string) (string, error)
}

// SubmitRequest is the public RSVP form payload.
type SubmitRequest struct {
	Names               []string `json:"names"`
	Attending           string   `json:"attending"`
	Accommodation       string   `json:"accommodation"`
	DrinkChoice         string   `json:"drinkChoice"`
	CustomDrink         string   `json:"customDrink"`
	DietaryRestrictions string   `json:"dietaryRestrictions"`
	ChildrenCount       int      `json:"childrenCount"`
	PetsCount           int      `json:"petsCount"`
	Message             string   `json:"message"`
}

// SubmitResult reports the created group plus the success screen payload:
// one illustration picked uniformly from a fixed set.
type SubmitResult struct {
	PrimaryID    string   `json:"primary_id"`
	Names        []string `json:"names"`
	Illustration string   `json:"illustration"`
	ThankYou     string   `json:"thank_you"`
}

// UpdateAttendeeRequest is the admin edit payload for one attendee row.
type UpdateAttendeeRequest struct {
	Attending           string `json:"attending"`
	Accommodation       string `json:"accommodation"`
	DrinkChoice         string `json:"drinkChoice"`
	CustomDrink         string `json:"customDrink"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	ChildrenCount       int    `json:"childrenCount"`
	PetsCount           int    `json:"petsCount"`
}

type CountdownResult struct {
	Target    entity.CustomTime       `json:"target"`
	Remaining countdown.TimeRemaining `json:"remaining"`
	IsPast    bool                    `json:"is_past"`
}

// StatsCache memoizes computed statistics between data changes. Every
// mutation invalidates; a fetch after the TTL recomputes.
type StatsCache interface {
	Get(ctx context.Context) (*entity.RsvpStats, bool)
	Set(ctx context.Context, stats *entity.RsvpStats)
	Invalidate(ctx context.Context)
}
