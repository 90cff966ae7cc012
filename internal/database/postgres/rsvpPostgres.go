package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
)

type rsvpRepository struct {
	db *sql.DB
}

func NewRsvpRepository(db *sql.DB) RsvpRepository {
	return &rsvpRepository{db: db}
}

// Submit delegates the whole group insert to the submit_rsvp function so the
// primary row and its siblings are created atomically.
func (r *rsvpRepository) Submit(ctx context.Context, params *entity.SubmitRsvpParams) (string, error) {
	query := `SELECT submit_rsvp($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var primaryID string
	err := r.db.QueryRowContext(ctx, query,
		pq.Array(params.Names),
		params.Attending,
		params.Accommodation,
		params.DrinkChoice,
		params.CustomDrink,
		params.DietaryRestrictions,
		params.ChildrenCount,
		params.PetsCount,
		params.Message,
	).Scan(&primaryID)

	if err != nil {
		return "", fmt.Errorf("failed to submit rsvp: %v", err)
	}

	return primaryID, nil
}

// GetAllSubmissions reads the denormalized rsvp_submissions view, newest
// group first, attendees of a group together.
func (r *rsvpRepository) GetAllSubmissions(ctx context.Context) ([]entity.RsvpSubmission, error) {
	query := `
		SELECT
			attendee_id, attendee_name, primary_rsvp_id, primary_name,
			is_primary, attending, accommodation, drink_choice, custom_drink,
			dietary_restrictions, children_count, pets_count, message, created_at
		FROM rsvp_submissions
		ORDER BY created_at DESC, is_primary DESC, attendee_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvp submissions: %v", err)
	}
	defer rows.Close()

	submissions := []entity.RsvpSubmission{}
	for rows.Next() {
		var s entity.RsvpSubmission
		err := rows.Scan(
			&s.AttendeeID,
			&s.AttendeeName,
			&s.PrimaryRsvpID,
			&s.PrimaryName,
			&s.IsPrimary,
			&s.Attending,
			&s.Accommodation,
			&s.DrinkChoice,
			&s.CustomDrink,
			&s.DietaryRestrictions,
			&s.ChildrenCount,
			&s.PetsCount,
			&s.Message,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp submission: %v", err)
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rsvp submissions: %v", err)
	}

	return submissions, nil
}

func (r *rsvpRepository) GetByID(ctx context.Context, id string) (*entity.Rsvp, error) {
	query := `
		SELECT
			id, primary_rsvp_id, is_primary, name, attending, accommodation,
			drink_choice, custom_drink, dietary_restrictions, children_count,
			pets_count, message, created_at
		FROM rsvps
		WHERE id = $1
	`

	var rsvp entity.Rsvp
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rsvp.ID,
		&rsvp.PrimaryRsvpID,
		&rsvp.IsPrimary,
		&rsvp.Name,
		&rsvp.Attending,
		&rsvp.Accommodation,
		&rsvp.DrinkChoice,
		&rsvp.CustomDrink,
		&rsvp.DietaryRestrictions,
		&rsvp.ChildrenCount,
		&rsvp.PetsCount,
		&rsvp.Message,
		&rsvp.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrRsvpNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp: %v", err)
	}

	return &rsvp, nil
}

// UpdateAttendee applies a partial update to one row of the base table,
// keyed by attendee id.
func (r *rsvpRepository) UpdateAttendee(ctx context.Context, attendeeID string, params *entity.UpdateAttendeeParams) error {
	query := `
		UPDATE rsvps SET
			attending = $2,
			accommodation = $3,
			drink_choice = $4,
			custom_drink = $5,
			dietary_restrictions = $6,
			children_count = $7,
			pets_count = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		attendeeID,
		params.Attending,
		params.Accommodation,
		params.DrinkChoice,
		params.CustomDrink,
		params.DietaryRestrictions,
		params.ChildrenCount,
		params.PetsCount,
	)
	if err != nil {
		return fmt.Errorf("failed to update rsvp: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %v", err)
	}
	if affected == 0 {
		return entity.ErrRsvpNotFound
	}

	return nil
}

// DeleteGroup deletes the primary row; sibling attendee rows go with it via
// ON DELETE CASCADE. Deleting by a non-primary id is refused.
func (r *rsvpRepository) DeleteGroup(ctx context.Context, primaryID string) error {
	rsvp, err := r.GetByID(ctx, primaryID)
	if err != nil {
		return err
	}
	if !rsvp.IsPrimary {
		return entity.ErrNotPrimary
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM rsvps WHERE id = $1`, primaryID)
	if err != nil {
		return fmt.Errorf("failed to delete rsvp group: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %v", err)
	}
	if affected == 0 {
		return entity.ErrRsvpNotFound
	}

	return nil
}
