package repository

import (
	"context"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
)

type RsvpRepository interface {
	// Submit inserts one primary row plus one row per extra guest in a
	// single transaction via the submit_rsvp database function and returns
	// the primary record id.
	Submit(ctx context.Context, params *entity.SubmitRsvpParams) (string, error)

	// Read model
	GetAllSubmissions(ctx context.Context) ([]entity.RsvpSubmission, error)
	GetByID(ctx context.Context, id string) (*entity.Rsvp, error)

	// Admin mutations operate on the base table, never on the view.
	UpdateAttendee(ctx context.Context, attendeeID string, params *entity.UpdateAttendeeParams) error
	DeleteGroup(ctx context.Context, primaryID string) error
}
